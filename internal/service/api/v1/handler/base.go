// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// 요청을 바인딩하고 검증한 뒤 스토어프론트 페이지, 카탈로그 동기화, 주문 조회 기능을 호출하여
// 응답을 생성합니다.
package handler

import (
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/contract"
	"github.com/darkkaiser/storefront-server/internal/service/storefront"
)

// Handler v1 API 요청을 처리하는 핸들러입니다.
type Handler struct {
	// pages 어댑터별 상품 목록 페이지 저장소
	pages *storefront.Registry

	orderSource contract.OrderSource

	catalogSyncer contract.CatalogSyncer
	catalogReader contract.CatalogReader
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(pages *storefront.Registry, orderSource contract.OrderSource, catalogSyncer contract.CatalogSyncer, catalogReader contract.CatalogReader) *Handler {
	if pages == nil {
		panic(constants.PanicMsgProductSourceRequired)
	}
	if orderSource == nil {
		panic(constants.PanicMsgOrderSourceRequired)
	}
	if catalogSyncer == nil {
		panic(constants.PanicMsgCatalogSyncerRequired)
	}
	if catalogReader == nil {
		panic(constants.PanicMsgCatalogReaderRequired)
	}

	return &Handler{
		pages: pages,

		orderSource: orderSource,

		catalogSyncer: catalogSyncer,
		catalogReader: catalogReader,
	}
}
