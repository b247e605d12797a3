package handler

import (
	"errors"
	"net/http"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/v1/model/response"
	"github.com/darkkaiser/storefront-server/internal/service/contract"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ListFacetsHandler godoc
// @Summary 카테고리 패싯
// @Description 마지막으로 동기화된 전체 카탈로그에서 판매 중인 상품의 카테고리별 상품 수와 가격 범위를 반환합니다.
// @Description 백엔드를 호출하지 않으며, 카탈로그가 아직 동기화되지 않았으면 503을 반환합니다.
// @Tags Products
// @Produce json
// @Success 200 {object} response.FacetsResponse
// @Failure 503 {object} response.ErrorResponse "카탈로그 미동기화"
// @Router /api/v1/facets [get]
func (h *Handler) ListFacetsHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgFacetList)

	products, syncedAt, ok := h.catalogReader.Products()
	if !ok {
		return NewErrCatalogNotSynced()
	}

	active := catalog.Select(products, catalog.VisibleActive)

	resp := response.FacetsResponse{
		Facets:   catalog.SortedFacets(catalog.CountFacets(active)),
		Total:    len(active),
		SyncedAt: syncedAt,
	}
	if r, ok := catalog.PriceBounds(active); ok {
		resp.PriceRange = &r
	}

	return c.JSON(http.StatusOK, resp)
}

// SyncCatalogHandler godoc
// @Summary 카탈로그 수동 동기화
// @Description 백엔드에서 전체 카탈로그를 즉시 가져와 이전 스냅샷과 비교합니다.
// @Description 신상품이나 가격 변동이 있으면 알림이 발송됩니다.
// @Tags Admin
// @Produce json
// @Param X-Admin-Token header string true "관리자 토큰"
// @Success 200 {object} response.SyncResponse
// @Failure 401 {object} response.ErrorResponse "관리자 인증 실패"
// @Failure 409 {object} response.ErrorResponse "동기화 진행 중"
// @Failure 502 {object} response.ErrorResponse "백엔드 오류"
// @Router /api/v1/catalog/sync [post]
func (h *Handler) SyncCatalogHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"remote_ip": c.RealIP(),
	}).Info(constants.LogMsgCatalogSync)

	result, err := h.catalogSyncer.SyncNow(c.Request().Context())
	if err != nil {
		if errors.Is(err, contract.ErrSyncInProgress) {
			return NewErrSyncInProgress()
		}
		return backendError(err)
	}

	return c.JSON(http.StatusOK, response.SyncResponse{
		FetchedAt:    result.FetchedAt,
		Total:        result.Total,
		Added:        len(result.Changes.Added),
		PriceChanged: len(result.Changes.PriceChanged),
		Removed:      len(result.Changes.Removed),
	})
}
