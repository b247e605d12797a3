package notification

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/darkkaiser/storefront-server/internal/config"
	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

const (
	// messageMaxLength 텔레그램 메시지 1건의 최대 바이트 수입니다.
	// 공식 제한은 4096자이지만 HTML 태그 오버헤드를 고려하여 여유를 둡니다.
	messageMaxLength = 3900

	// maxSendAttempts 메시지 1건에 대한 최대 전송 시도 횟수
	maxSendAttempts = 3

	defaultRetryDelay        = 1 * time.Second
	defaultRateLimit         = 1
	defaultRateBurst         = 5
	defaultHTTPClientTimeout = 30 * time.Second
)

// botClient 텔레그램 봇 API와의 통신을 추상화한 인터페이스입니다.
type botClient interface {
	GetSelf() tgbotapi.User
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// tgClient tgbotapi.BotAPI를 botClient 인터페이스에 맞게 래핑합니다.
type tgClient struct {
	*tgbotapi.BotAPI
}

func (c *tgClient) GetSelf() tgbotapi.User {
	return c.Self
}

// telegramSender 텔레그램 채팅방으로 메시지를 전송하는 Sender 구현체입니다.
type telegramSender struct {
	chatID int64

	client botClient

	retryDelay time.Duration

	// rateLimiter 채팅방당 전송 속도 제한(초당 1회)을 지키기 위해 사용합니다.
	rateLimiter *rate.Limiter
}

var _ Sender = (*telegramSender)(nil)

// NewTelegramSender 봇 토큰으로 텔레그램 API 클라이언트를 초기화하여 Sender를 생성합니다.
func NewTelegramSender(cfg config.TelegramConfig, debug bool) (Sender, error) {
	// 기본 http.Client는 타임아웃이 없어 네트워크 장애 시 전송이 무한히 대기할 수 있습니다.
	httpClient := &http.Client{Timeout: defaultHTTPClientTimeout}

	botAPI, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "텔레그램 봇 API 클라이언트 초기화에 실패했습니다. BotToken이 올바른지 확인해주세요")
	}
	botAPI.Debug = debug

	return newTelegramSender(&tgClient{BotAPI: botAPI}, cfg.ChatID), nil
}

func newTelegramSender(client botClient, chatID int64) *telegramSender {
	s := &telegramSender{
		chatID: chatID,

		client: client,

		retryDelay: defaultRetryDelay,

		rateLimiter: rate.NewLimiter(rate.Limit(defaultRateLimit), defaultRateBurst),
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"bot_username": client.GetSelf().UserName,
		"chat_id":      chatID,
	}).Info("텔레그램 Sender 초기화 완료")

	return s
}

func (s *telegramSender) Name() string {
	return "telegram"
}

// Send 메시지를 전송합니다. 길이 제한을 넘는 메시지는 줄 단위로 나누어 순서대로 전송하며,
// 한 조각이라도 전송에 실패하면 나머지는 보내지 않고 에러를 반환합니다.
func (s *telegramSender) Send(ctx context.Context, message string) error {
	for _, chunk := range splitMessage(message, messageMaxLength) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.attemptSendWithRetry(ctx, chunk, true); err != nil {
			return err
		}
	}
	return nil
}

// attemptSendWithRetry 메시지 1건의 전송을 시도하며, 일시적인 오류는 재시도합니다.
//
// HTML 파싱 오류(400)가 발생하면 같은 내용을 PlainText 모드로 다시 전송하고,
// 429 응답의 Retry-After 값이 있으면 그만큼 대기한 후 재시도합니다.
func (s *telegramSender) attemptSendWithRetry(ctx context.Context, message string, useHTML bool) error {
	messageConfig := tgbotapi.NewMessage(s.chatID, message)
	if useHTML {
		messageConfig.ParseMode = tgbotapi.ModeHTML
	}

	if err := s.rateLimiter.Wait(ctx); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
			"limit": s.rateLimiter.Limit(),
			"burst": s.rateLimiter.Burst(),
		}).Debug("작업 중단: RateLimiter 대기 중 컨텍스트가 취소되었습니다")

		return err
	}

	var lastErr error
	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, err := s.client.Send(messageConfig)
		if err == nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"chat_id":        s.chatID,
				"attempt":        attempt,
				"mode":           formatParseMode(messageConfig.ParseMode),
				"message_length": len(message),
			}).Info("발송 성공: 텔레그램 API로 메시지가 정상 전송되었습니다")

			return nil
		}

		lastErr = err
		errCode, retryAfter := parseTelegramError(err)

		applog.WithComponentAndFields(component, applog.Fields{
			"chat_id": s.chatID,
			"attempt": attempt,
			"code":    errCode,
			"error":   err,
			"mode":    formatParseMode(messageConfig.ParseMode),
		}).Warn("발송 실패: 텔레그램 API 호출에서 오류가 발생했습니다")

		if useHTML && errCode == http.StatusBadRequest {
			applog.WithComponent(component).Warn("HTML 파싱 오류(400): PlainText 모드로 전환하여 재전송합니다")
			return s.attemptSendWithRetry(ctx, message, false)
		}

		if !shouldRetry(errCode) {
			return err
		}
		if attempt == maxSendAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.delayForRetry(retryAfter)):
		}
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"chat_id":      s.chatID,
		"error":        lastErr,
		"max_attempts": maxSendAttempts,
	}).Error("전송 최종 실패: 최대 재시도 횟수를 초과하였습니다")

	return lastErr
}

func (s *telegramSender) delayForRetry(retryAfter int) time.Duration {
	if retryAfter > 0 {
		return time.Duration(retryAfter) * time.Second
	}
	return s.retryDelay
}

// shouldRetry 4xx 오류는 429(Too Many Requests)를 제외하고 재시도하지 않습니다.
// 네트워크 오류처럼 코드가 없는 경우(0)는 재시도합니다.
func shouldRetry(statusCode int) bool {
	if statusCode >= 400 && statusCode < 500 {
		return statusCode == http.StatusTooManyRequests
	}
	return true
}

func formatParseMode(mode string) string {
	if mode == tgbotapi.ModeHTML {
		return "HTML"
	}
	return "PlainText"
}

// parseTelegramError 텔레그램 API 에러에서 에러 코드와 Retry-After(초)를 추출합니다.
func parseTelegramError(err error) (code int, retryAfter int) {
	var apiErr tgbotapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code, apiErr.ResponseParameters.RetryAfter
	}

	var apiErrPtr *tgbotapi.Error
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, apiErrPtr.ResponseParameters.RetryAfter
	}

	return 0, 0
}

// splitMessage 메시지를 limit 바이트 이하의 조각으로 나눕니다.
// 가능한 한 줄 단위로 나누고, 한 줄이 limit를 넘는 경우에만 UTF-8 문자 경계에서 자릅니다.
func splitMessage(message string, limit int) []string {
	if len(message) <= limit {
		return []string{message}
	}

	var chunks []string
	var sb strings.Builder
	sb.Grow(limit)

	flush := func() {
		if sb.Len() > 0 {
			chunks = append(chunks, sb.String())
			sb.Reset()
		}
	}

	for line := range strings.SplitSeq(message, "\n") {
		needed := len(line)
		if sb.Len() > 0 {
			needed++
		}

		if sb.Len()+needed <= limit {
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(line)
			continue
		}

		flush()

		for len(line) > limit {
			var chunk string
			chunk, line = safeSplit(line, limit)
			chunks = append(chunks, chunk)
		}
		sb.WriteString(line)
	}
	flush()

	return chunks
}

// safeSplit 멀티바이트 문자가 깨지지 않도록 limit 바이트 이내의 룬 경계에서 문자열을 나눕니다.
func safeSplit(s string, limit int) (chunk, remainder string) {
	if len(s) <= limit {
		return s, ""
	}

	splitIndex := limit
	for splitIndex > 0 && !utf8.RuneStart(s[splitIndex]) {
		splitIndex--
	}

	// limit 이전에 룬 시작점이 없는 비정상 문자열은 그대로 자릅니다.
	if splitIndex == 0 {
		return s[:limit], s[limit:]
	}

	return s[:splitIndex], s[splitIndex:]
}
