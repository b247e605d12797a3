package handler

import (
	"net/http"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/v1/model/response"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ListOrdersByUserHandler godoc
// @Summary 사용자별 주문 목록 (관리자)
// @Description 전체 주문을 주문일 순으로 정렬한 뒤 주문자별로 묶어 반환합니다.
// @Description 주문자를 알 수 없는 주문은 Unknown 그룹에 모입니다.
// @Tags Admin
// @Produce json
// @Param X-Admin-Token header string true "관리자 토큰"
// @Success 200 {object} response.UserOrdersResponse
// @Failure 401 {object} response.ErrorResponse "관리자 인증 실패"
// @Failure 502 {object} response.ErrorResponse "백엔드 오류"
// @Router /api/v1/admin/orders [get]
func (h *Handler) ListOrdersByUserHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgOrderList)

	orders, err := h.orderSource.ListAllOrders(c.Request().Context())
	if err != nil {
		return backendError(err)
	}

	return c.JSON(http.StatusOK, response.UserOrdersResponse{
		Users:       catalog.GroupOrdersByUser(orders),
		TotalOrders: len(orders),
	})
}
