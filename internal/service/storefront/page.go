// Package storefront 스토어프론트의 상품 목록 페이지(전체, 카테고리, 신상품, 검색)를 구현합니다.
//
// 네 페이지는 하나의 Page 구현을 공유하고 Adapter만 다릅니다. Page는 백엔드 로드마다 세대(Generation)
// 토큰을 발급하여, 늦게 도착한 이전 세대의 응답이 최신 데이터를 덮어쓰지 못하도록 합니다.
package storefront

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/internal/service/contract"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
)

const component = "storefront.page"

// ErrStaleResponse 더 최신 세대의 응답이 이미 반영된 상태에서 이전 세대의 응답이 도착했을 때 반환됩니다.
// 이 응답은 폐기되며 페이지의 데이터는 변경되지 않습니다.
var ErrStaleResponse = apperrors.New(apperrors.Conflict, "더 최신 요청이 있어 이전 응답을 폐기했습니다")

// Generation 페이지 로드 요청마다 발급되는 단조 증가 토큰입니다.
type Generation uint64

// Page 하나의 어댑터에 대한 상품 컬렉션과 그 파생 뷰를 관리합니다.
type Page struct {
	adapter Adapter
	source  contract.ProductSource

	// issued 마지막으로 발급한 세대
	issued atomic.Uint64

	mu       sync.RWMutex
	accepted Generation
	products []catalog.Product
	loadedAt time.Time
}

// NewPage 새 페이지를 생성합니다. 로드하기 전의 페이지는 빈 컬렉션을 가집니다.
func NewPage(source contract.ProductSource, adapter Adapter) *Page {
	if source == nil {
		panic("ProductSource는 필수입니다")
	}

	return &Page{
		adapter:  adapter,
		source:   source,
		products: []catalog.Product{},
	}
}

// Adapter 페이지의 어댑터를 반환합니다.
func (p *Page) Adapter() Adapter {
	return p.adapter
}

// NextGeneration 새 세대 토큰을 발급합니다.
func (p *Page) NextGeneration() Generation {
	return Generation(p.issued.Add(1))
}

// Load 주어진 세대로 원본 컬렉션을 가져와 노출 정책을 적용한 뒤 페이지 데이터를 교체합니다.
//
// 응답이 도착했을 때 gen보다 새로운 세대의 응답이 이미 반영되어 있으면 결과를 버리고 ErrStaleResponse를 반환합니다.
// 새로운 세대가 발급만 되고 아직 완료되지 않았다면 이 응답을 반영하고, 이후 도착하는 새 세대의 응답이 다시 덮어씁니다.
// 백엔드 오류가 발생하면 기존 데이터를 유지한 채 에러를 반환합니다.
func (p *Page) Load(ctx context.Context, gen Generation) error {
	raw, err := p.adapter.fetch(ctx, p.source)
	if err != nil {
		return err
	}

	return p.accept(gen, catalog.Select(raw, p.adapter.visible))
}

// Refresh 새 세대를 발급하고 즉시 로드합니다.
func (p *Page) Refresh(ctx context.Context) error {
	return p.Load(ctx, p.NextGeneration())
}

func (p *Page) accept(gen Generation, products []catalog.Product) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if gen < p.accepted {
		applog.WithComponentAndFields(component, applog.Fields{
			"page":       p.adapter.Key(),
			"generation": gen,
			"accepted":   p.accepted,
		}).Debug("이전 세대의 응답을 폐기합니다")

		return ErrStaleResponse
	}

	p.accepted = gen
	p.products = products
	p.loadedAt = time.Now()

	return nil
}

// Loaded 한 번이라도 로드에 성공했는지 여부를 반환합니다.
func (p *Page) Loaded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.accepted > 0
}

// LoadedAt 마지막으로 데이터가 교체된 시각을 반환합니다.
func (p *Page) LoadedAt() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.loadedAt
}

// Products 노출 정책이 적용된 현재 컬렉션의 복사본을 반환합니다.
func (p *Page) Products() []catalog.Product {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return slices.Clone(p.products)
}

// View 현재 컬렉션에 필터 상태를 적용한 파생 뷰를 반환합니다.
// 패싯 수는 필터와 무관하게 페이지의 전체 컬렉션에서 집계합니다.
func (p *Page) View(f catalog.FilterState) catalog.DerivedView {
	p.mu.RLock()
	products := p.products
	p.mu.RUnlock()

	view := catalog.DeriveView(products, f)
	if !p.adapter.categoryFacets {
		view.FacetCounts = map[string]int{}
	}
	return view
}

// PriceBounds 현재 컬렉션의 가격 범위를 반환합니다. 컬렉션이 비어 있으면 false입니다.
func (p *Page) PriceBounds() (catalog.PriceRange, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return catalog.PriceBounds(p.products)
}
