package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	v1response "github.com/darkkaiser/storefront-server/internal/service/api/v1/model/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// 사용자별 주문 목록
// =============================================================================

func TestListOrdersByUserHandler(t *testing.T) {
	t.Parallel()

	t.Run("주문일 순으로 묶음", func(t *testing.T) {
		t.Parallel()

		day := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }
		orders := []catalog.Order{
			{ID: "o3", User: catalog.OrderUser{ID: "u1", FirstName: "Jane", LastName: "Doe"}, OrderedOn: day(3)},
			{ID: "o1", User: catalog.OrderUser{ID: "u2", FirstName: "John"}, OrderedOn: day(1)},
			{ID: "o2", OrderedOn: day(2)},
			{ID: "o4", User: catalog.OrderUser{ID: "u2", FirstName: "John"}, OrderedOn: day(4)},
		}

		env := newTestEnv(t)
		env.orders.On("ListAllOrders", mock.Anything).Return(orders, nil).Once()

		rec := env.do(http.MethodGet, "/api/v1/admin/orders")
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[v1response.UserOrdersResponse](t, rec)
		assert.Equal(t, 4, resp.TotalOrders)
		require.Len(t, resp.Users, 3)

		assert.Equal(t, "u2", resp.Users[0].UserID)
		assert.Equal(t, "John", resp.Users[0].UserName)
		require.Len(t, resp.Users[0].Orders, 2)
		assert.Equal(t, "o1", resp.Users[0].Orders[0].ID)
		assert.Equal(t, "o4", resp.Users[0].Orders[1].ID)

		assert.Equal(t, catalog.UnknownUserID, resp.Users[1].UserID)
		assert.Equal(t, catalog.UnknownUserName, resp.Users[1].UserName)

		assert.Equal(t, "u1", resp.Users[2].UserID)
		assert.Equal(t, "Jane Doe", resp.Users[2].UserName)
	})

	t.Run("백엔드 오류", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		env.orders.On("ListAllOrders", mock.Anything).Return(nil, apperrors.New(apperrors.Timeout, "slow")).Once()

		rec := env.do(http.MethodGet, "/api/v1/admin/orders")
		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	})
}
