package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "storefront-server"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 읽는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 계층은 이중 언더스코어로 구분합니다. 예: STOREFRONT_BACKEND__BASE_URL -> backend.base_url
	EnvPrefix = "STOREFRONT_"
)

// 기본값
const (
	DefaultBackendTimeout      = 10 * time.Second
	DefaultMaxRetries          = 3
	DefaultRetryDelay          = 1 * time.Second
	DefaultMaxBodyBytes  int64 = 10 << 20

	DefaultSyncTimeSpec = "0 */10 * * * *"
	DefaultSnapshotDir  = "snapshots"

	DefaultListenPort     = 8080
	DefaultRequestTimeout = 30 * time.Second
	DefaultRateLimitRPS   = 20.0
	DefaultRateLimitBurst = 40
)

// newDefaultConfig 설정 파일 없이 기본값만으로 구성된 AppConfig를 반환합니다.
// 설정 로드 시 가장 낮은 우선순위로 병합됩니다.
func newDefaultConfig() *AppConfig {
	return &AppConfig{
		Backend: BackendConfig{
			Timeout:      DefaultBackendTimeout,
			MaxRetries:   DefaultMaxRetries,
			RetryDelay:   DefaultRetryDelay,
			MaxBodyBytes: DefaultMaxBodyBytes,
		},
		Sync: SyncConfig{
			Enabled:     true,
			TimeSpec:    DefaultSyncTimeSpec,
			SnapshotDir: DefaultSnapshotDir,
		},
		StorefrontAPI: StorefrontAPIConfig{
			WS:             WSConfig{ListenPort: DefaultListenPort},
			CORS:           CORSConfig{AllowOrigins: []string{"*"}},
			RequestTimeout: DefaultRequestTimeout,
			RateLimit: RateLimitConfig{
				RequestsPerSecond: DefaultRateLimitRPS,
				Burst:             DefaultRateLimitBurst,
			},
		},
	}
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 기본값, JSON 설정 파일, 환경 변수 순으로 설정을 병합한 뒤 유효성을 검증합니다.
// 뒤에 로드된 값이 앞의 값을 덮어씁니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	var appConfig AppConfig
	if err := unmarshal(k, &appConfig); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

// unmarshal 병합된 설정을 구조체로 변환합니다.
// 구조체에 정의되지 않은 키가 있으면 오타로 간주하여 에러를 반환합니다.
func unmarshal(k *koanf.Koanf, out *AppConfig) error {
	return k.UnmarshalWithConf("", out, koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           out,
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	})
}

// normalizeEnvKey 환경 변수 이름을 koanf 키 경로로 변환합니다.
//
//	STOREFRONT_BACKEND__MAX_RETRIES -> backend.max_retries
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
