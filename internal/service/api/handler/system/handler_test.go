package system

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	"github.com/darkkaiser/storefront-server/internal/pkg/version"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/model/system"
	"github.com/darkkaiser/storefront-server/internal/service/contract/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h echo.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), rec)
	require.NoError(t, h(c))

	return rec
}

// =============================================================================
// 생성자
// =============================================================================

func TestNewHandler_Panics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, constants.PanicMsgNotificationSenderRequired, func() {
		NewHandler(nil, &mocks.MockCatalogReader{}, version.Info{})
	})
	assert.PanicsWithValue(t, constants.PanicMsgCatalogReaderRequired, func() {
		NewHandler(&mocks.MockNotificationHealthChecker{}, nil, version.Info{})
	})
}

// =============================================================================
// 헬스체크
// =============================================================================

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	fetchedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		notifyErr    error
		synced       bool
		wantStatus   string
		wantNotify   string
		wantCatalog  string
		wantCatalogM string
	}{
		{
			name:        "모두 정상",
			synced:      true,
			wantStatus:  constants.HealthStatusHealthy,
			wantNotify:  constants.HealthStatusHealthy,
			wantCatalog: constants.HealthStatusHealthy,
		},
		{
			name:        "알림 서비스 중지",
			notifyErr:   errors.New("서비스가 실행 중이 아닙니다"),
			synced:      true,
			wantStatus:  constants.HealthStatusUnhealthy,
			wantNotify:  constants.HealthStatusUnhealthy,
			wantCatalog: constants.HealthStatusHealthy,
		},
		{
			name:         "카탈로그 미동기화",
			wantStatus:   constants.HealthStatusUnhealthy,
			wantNotify:   constants.HealthStatusHealthy,
			wantCatalog:  constants.HealthStatusUnhealthy,
			wantCatalogM: constants.MsgDepStatusNotSynced,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			notifier := &mocks.MockNotificationHealthChecker{}
			notifier.On("Health").Return(tt.notifyErr)

			reader := &mocks.MockCatalogReader{}
			if tt.synced {
				reader.On("Products").Return([]catalog.Product{{ID: "p1"}}, fetchedAt, true)
			} else {
				reader.On("Products").Return(nil, time.Time{}, false)
			}

			h := NewHandler(notifier, reader, version.Info{})
			rec := serve(t, h.HealthCheckHandler, "/health")
			require.Equal(t, http.StatusOK, rec.Code)

			var resp system.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantNotify, resp.Dependencies[constants.DependencyNotificationService].Status)
			assert.Equal(t, tt.wantCatalog, resp.Dependencies[constants.DependencyCatalogSync].Status)
			if tt.wantCatalogM != "" {
				assert.Equal(t, tt.wantCatalogM, resp.Dependencies[constants.DependencyCatalogSync].Message)
			}
			if tt.synced {
				assert.Contains(t, resp.Dependencies[constants.DependencyCatalogSync].Message, "상품 1개")
			}
		})
	}
}

// =============================================================================
// 버전 정보
// =============================================================================

func TestVersionHandler(t *testing.T) {
	t.Parallel()

	info := version.Info{
		Version:     "v1.0.0",
		Commit:      "abc1234",
		BuildDate:   "2026-03-01T09:00:00Z",
		BuildNumber: "42",
		GoVersion:   "go1.24.0",
	}
	h := NewHandler(&mocks.MockNotificationHealthChecker{}, &mocks.MockCatalogReader{}, info)

	rec := serve(t, h.VersionHandler, "/version")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp system.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, system.VersionResponse{
		Version:     "v1.0.0",
		Commit:      "abc1234",
		BuildDate:   "2026-03-01T09:00:00Z",
		BuildNumber: "42",
		GoVersion:   "go1.24.0",
	}, resp)
}
