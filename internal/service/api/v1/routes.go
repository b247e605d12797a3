// Package v1 스토어프론트 API의 v1 버전 라우트를 정의합니다.
//
// 주요 엔드포인트:
//   - GET  /api/v1/products                      - 전체 상품 목록
//   - GET  /api/v1/products/new-arrivals         - 신상품 목록
//   - GET  /api/v1/products/search?q=            - 상품 이름 검색
//   - GET  /api/v1/products/:id                  - 상품 상세
//   - GET  /api/v1/categories/:category/products - 카테고리 상품 목록
//   - GET  /api/v1/facets                        - 전체 카탈로그 기준 카테고리 패싯
//   - POST /api/v1/catalog/sync                  - 카탈로그 수동 동기화 (관리자)
//   - GET  /api/v1/admin/products                - 판매 중지 상품 포함 목록 (관리자)
//   - GET  /api/v1/admin/orders                  - 사용자별 주문 목록 (관리자)
package v1

import (
	"github.com/darkkaiser/storefront-server/internal/service/api/middleware"
	"github.com/darkkaiser/storefront-server/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 등록합니다.
// 관리자 엔드포인트에는 X-Admin-Token 헤더를 검증하는 미들웨어가 적용됩니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, adminKey string) {
	v1Group := e.Group("/api/v1")

	v1Group.GET("/products", h.ListProductsHandler)
	v1Group.GET("/products/new-arrivals", h.ListNewArrivalsHandler)
	v1Group.GET("/products/search", h.SearchProductsHandler)
	v1Group.GET("/products/:id", h.GetProductHandler)
	v1Group.GET("/categories/:category/products", h.ListCategoryProductsHandler)
	v1Group.GET("/facets", h.ListFacetsHandler)

	adminAuth := middleware.RequireAdminToken(adminKey)

	v1Group.POST("/catalog/sync", h.SyncCatalogHandler, adminAuth)

	adminGroup := v1Group.Group("/admin", adminAuth)
	adminGroup.GET("/products", h.ListAllProductsHandler)
	adminGroup.GET("/orders", h.ListOrdersByUserHandler)
}
