package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	"github.com/darkkaiser/storefront-server/internal/pkg/validator"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/storefront-server/internal/service/api/v1/model/response"
	"github.com/darkkaiser/storefront-server/internal/service/storefront"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ListProductsHandler godoc
// @Summary 전체 상품 목록
// @Description 판매 중인 상품 목록에 필터와 정렬을 적용하여 반환합니다.
// @Description 패싯과 가격 범위는 필터와 무관하게 전체 목록을 기준으로 집계됩니다.
// @Description 백엔드 갱신에 실패하면 마지막으로 가져온 목록으로 응답하고 X-Catalog-Stale 헤더를 설정합니다.
// @Tags Products
// @Produce json
// @Param minPrice query number false "최소 가격 (포함)"
// @Param maxPrice query number false "최대 가격 (포함)"
// @Param sortBy query string false "정렬 기준" Enums(name, priceLow, priceHigh, newest)
// @Param categories query string false "쉼표로 구분된 카테고리 목록"
// @Success 200 {object} response.ProductListResponse
// @Failure 502 {object} response.ErrorResponse "백엔드 오류"
// @Failure 503 {object} response.ErrorResponse "백엔드 사용 불가"
// @Router /api/v1/products [get]
func (h *Handler) ListProductsHandler(c echo.Context) error {
	return h.servePage(c, storefront.AllProducts(false))
}

// ListAllProductsHandler godoc
// @Summary 전체 상품 목록 (관리자)
// @Description 판매 중지된 상품을 포함한 전체 상품 목록에 필터와 정렬을 적용하여 반환합니다.
// @Tags Admin
// @Produce json
// @Param X-Admin-Token header string true "관리자 토큰"
// @Param minPrice query number false "최소 가격 (포함)"
// @Param maxPrice query number false "최대 가격 (포함)"
// @Param sortBy query string false "정렬 기준" Enums(name, priceLow, priceHigh, newest)
// @Param categories query string false "쉼표로 구분된 카테고리 목록"
// @Success 200 {object} response.ProductListResponse
// @Failure 401 {object} response.ErrorResponse "관리자 인증 실패"
// @Router /api/v1/admin/products [get]
func (h *Handler) ListAllProductsHandler(c echo.Context) error {
	return h.servePage(c, storefront.AllProducts(true))
}

// ListCategoryProductsHandler godoc
// @Summary 카테고리 상품 목록
// @Description 지정한 카테고리의 판매 중인 상품 목록을 반환합니다. 카테고리 페이지는 카테고리 패싯을 포함하지 않습니다.
// @Tags Products
// @Produce json
// @Param category path string true "카테고리 이름"
// @Param minPrice query number false "최소 가격 (포함)"
// @Param maxPrice query number false "최대 가격 (포함)"
// @Param sortBy query string false "정렬 기준" Enums(name, priceLow, priceHigh, newest)
// @Success 200 {object} response.ProductListResponse
// @Failure 400 {object} response.ErrorResponse "잘못된 카테고리"
// @Router /api/v1/categories/{category}/products [get]
func (h *Handler) ListCategoryProductsHandler(c echo.Context) error {
	req := new(request.CategoryRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidRequest()
	}

	category, err := unescapePathParam(c, req.Category)
	if err != nil {
		return NewErrInvalidRequest()
	}
	req.Category = category

	if err := validator.Struct(req); err != nil {
		return NewErrValidationFailed(validator.FormatValidationError(err))
	}

	return h.servePage(c, storefront.Category(req.Category))
}

// GetProductHandler godoc
// @Summary 상품 상세 조회
// @Description 식별자로 판매 중인 단일 상품을 조회합니다. 판매 중지된 상품은 404로 응답합니다.
// @Tags Products
// @Produce json
// @Param id path string true "상품 식별자"
// @Success 200 {object} response.ProductResponse
// @Failure 400 {object} response.ErrorResponse "잘못된 상품 식별자"
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Failure 502 {object} response.ErrorResponse "백엔드 오류"
// @Failure 503 {object} response.ErrorResponse "백엔드 사용 불가"
// @Router /api/v1/products/{id} [get]
func (h *Handler) GetProductHandler(c echo.Context) error {
	req := new(request.ProductRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidRequest()
	}

	id, err := unescapePathParam(c, req.ID)
	if err != nil {
		return NewErrInvalidRequest()
	}
	req.ID = id

	if err := validator.Struct(req); err != nil {
		return NewErrValidationFailed(validator.FormatValidationError(err))
	}

	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"product_id": req.ID,
		"remote_ip":  c.RealIP(),
	}).Debug(constants.LogMsgProductDetail)

	p, err := h.pages.Source().GetProduct(c.Request().Context(), req.ID)
	if err != nil {
		return backendError(err)
	}
	if !catalog.VisibleActive(p) {
		return NewErrProductNotFound()
	}

	return c.JSON(http.StatusOK, response.ProductResponse{Product: p})
}

// ListNewArrivalsHandler godoc
// @Summary 신상품 목록
// @Description 신상품으로 지정된 판매 중인 상품 목록을 반환합니다.
// @Tags Products
// @Produce json
// @Param minPrice query number false "최소 가격 (포함)"
// @Param maxPrice query number false "최대 가격 (포함)"
// @Param sortBy query string false "정렬 기준" Enums(name, priceLow, priceHigh, newest)
// @Param categories query string false "쉼표로 구분된 카테고리 목록"
// @Success 200 {object} response.ProductListResponse
// @Router /api/v1/products/new-arrivals [get]
func (h *Handler) ListNewArrivalsHandler(c echo.Context) error {
	return h.servePage(c, storefront.NewArrivals())
}

// SearchProductsHandler godoc
// @Summary 상품 이름 검색
// @Description 이름으로 상품을 검색합니다. 검색어가 비어 있으면 빈 목록을 반환합니다.
// @Description 패싯은 검색 결과를 기준으로 집계됩니다.
// @Tags Products
// @Produce json
// @Param q query string false "검색어 (최대 100자)"
// @Param minPrice query number false "최소 가격 (포함)"
// @Param maxPrice query number false "최대 가격 (포함)"
// @Param sortBy query string false "정렬 기준" Enums(name, priceLow, priceHigh, newest)
// @Param categories query string false "쉼표로 구분된 카테고리 목록"
// @Success 200 {object} response.ProductListResponse
// @Failure 400 {object} response.ErrorResponse "잘못된 검색어"
// @Router /api/v1/products/search [get]
func (h *Handler) SearchProductsHandler(c echo.Context) error {
	req := new(request.SearchRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidRequest()
	}

	if err := validator.Struct(req); err != nil {
		return NewErrValidationFailed(validator.FormatValidationError(err))
	}

	return h.servePage(c, storefront.Search(req.Query))
}

// servePage 페이지를 갱신한 뒤 요청의 필터 상태로 파생 뷰를 만들어 응답합니다.
func (h *Handler) servePage(c echo.Context, adapter storefront.Adapter) error {
	filter := catalog.DecodeQuery(c.QueryParams())
	page := h.pages.Page(adapter)

	fields := applog.Fields{
		"page":      adapter.Key(),
		"filter":    filter.String(),
		"remote_ip": c.RealIP(),
	}
	applog.WithComponentAndFields(constants.ComponentHandler, fields).Debug(constants.LogMsgProductList)

	stale := false
	if err := page.Refresh(c.Request().Context()); err != nil {
		switch {
		case errors.Is(err, storefront.ErrStaleResponse):
			// 더 최신 세대의 응답이 이미 반영되었으므로 그 데이터로 응답합니다.
		case page.Loaded():
			stale = true
			fields["error"] = err
			applog.WithComponentAndFields(constants.ComponentHandler, fields).Warn(constants.LogMsgServeStale)
		default:
			return backendError(err)
		}
	}

	if !page.Loaded() {
		return NewErrPageNotLoaded()
	}

	view := page.View(filter)
	resp := response.ProductListResponse{
		Items:    view.Items,
		Total:    len(view.Items),
		Facets:   catalog.SortedFacets(view.FacetCounts),
		Filter:   filter.String(),
		LoadedAt: page.LoadedAt(),
		Stale:    stale,
	}
	if r, ok := page.PriceBounds(); ok {
		resp.PriceRange = &r
		resp.PriceOutOfRange = !r.Overlaps(filter)
	}

	if stale {
		c.Response().Header().Set(constants.XCatalogStale, "true")
	}

	return c.JSON(http.StatusOK, resp)
}

// unescapePathParam 경로 파라미터를 디코딩합니다.
//
// Echo는 요청 URL에 RawPath가 있을 때만 인코딩된 원본 경로로 라우팅하므로, 그 경우에만 값이 인코딩된 채로
// 전달됩니다. RawPath가 없으면 이미 디코딩된 값이므로 그대로 반환합니다.
func unescapePathParam(c echo.Context, value string) (string, error) {
	if c.Request().URL.RawPath == "" {
		return value, nil
	}
	return url.PathUnescape(value)
}
