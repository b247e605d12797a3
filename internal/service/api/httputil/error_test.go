package httputil

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// =============================================================================
// 전역 에러 핸들러
// =============================================================================

// TestErrorHandler 로거의 전역 출력을 교체하므로 t.Parallel()을 사용하지 않습니다.
func TestErrorHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := applog.StandardLogger()
	origOut, origFormatter := logger.Out, logger.Formatter
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	defer func() {
		logger.SetOutput(origOut)
		logger.SetFormatter(origFormatter)
	}()

	tests := []struct {
		name         string
		method       string
		err          error
		committed    bool
		wantStatus   int
		wantBody     string
		wantLogLevel string
	}{
		{
			name:         "라우팅 실패 404는 한국어 메시지로 변환",
			method:       http.MethodGet,
			err:          echo.ErrNotFound,
			wantStatus:   http.StatusNotFound,
			wantBody:     `{"result_code":404,"message":"요청한 리소스를 찾을 수 없습니다"}`,
			wantLogLevel: `"level":"warning"`,
		},
		{
			name:         "문자열 메시지 유지",
			method:       http.MethodGet,
			err:          echo.NewHTTPError(http.StatusBadRequest, "잘못된 값"),
			wantStatus:   http.StatusBadRequest,
			wantBody:     `{"result_code":400,"message":"잘못된 값"}`,
			wantLogLevel: `"level":"warning"`,
		},
		{
			name:         "ErrorResponse 메시지 유지",
			method:       http.MethodGet,
			err:          NewConflictError("동기화 진행 중"),
			wantStatus:   http.StatusConflict,
			wantBody:     `{"result_code":409,"message":"동기화 진행 중"}`,
			wantLogLevel: `"level":"warning"`,
		},
		{
			name:         "일반 에러는 500",
			method:       http.MethodGet,
			err:          errors.New("unexpected"),
			wantStatus:   http.StatusInternalServerError,
			wantBody:     `{"result_code":500,"message":"내부 서버 오류가 발생했습니다"}`,
			wantLogLevel: `"level":"error"`,
		},
		{
			name:         "원인 에러가 있는 502",
			method:       http.MethodGet,
			err:          NewErrorWithCause(http.StatusBadGateway, "백엔드 오류", errors.New("dial tcp")),
			wantStatus:   http.StatusBadGateway,
			wantBody:     `{"result_code":502,"message":"백엔드 오류"}`,
			wantLogLevel: `"level":"error"`,
		},
		{
			name:         "HEAD 요청은 본문 없이 응답",
			method:       http.MethodHead,
			err:          NewServiceUnavailableError("점검 중"),
			wantStatus:   http.StatusServiceUnavailable,
			wantLogLevel: `"level":"error"`,
		},
		{
			name:       "이미 응답이 전송된 경우",
			method:     http.MethodGet,
			err:        NewBadRequestError("late"),
			committed:  true,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()

			e := echo.New()
			req := httptest.NewRequest(tt.method, "/api/v1/products", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if tt.committed {
				_ = c.NoContent(http.StatusOK)
			}

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			} else if !tt.committed {
				assert.Empty(t, rec.Body.String())
			}
			if tt.wantLogLevel != "" {
				assert.Contains(t, buf.String(), tt.wantLogLevel)
				assert.Contains(t, buf.String(), `"path":"/api/v1/products"`)
			}
		})
	}
}
