package storefront

import (
	"sync"

	"github.com/darkkaiser/storefront-server/internal/service/contract"
)

// defaultMaxPages Registry가 보관하는 페이지 수의 기본 상한
const defaultMaxPages = 256

// Registry 어댑터 키별로 Page를 재사용하는 저장소입니다.
//
// 같은 페이지에 대한 동시 요청은 하나의 Page를 공유하며, 세대 토큰에 의해 이전 세대의 응답이 이미 반영된
// 새 세대의 데이터를 덮어쓰지 못합니다. 상한을 넘는 새 키에 대해서는 보관하지 않는 일회용 Page를 반환합니다.
type Registry struct {
	source contract.ProductSource

	maxPages int

	mu    sync.Mutex
	pages map[string]*Page
}

func NewRegistry(source contract.ProductSource, maxPages int) *Registry {
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	return &Registry{
		source:   source,
		maxPages: maxPages,
		pages:    make(map[string]*Page),
	}
}

// Page 어댑터에 해당하는 Page를 반환합니다. 없으면 새로 만듭니다.
// 검색 페이지는 검색어마다 결과가 달라 재사용 가치가 없으므로 항상 일회용 Page를 반환합니다.
func (r *Registry) Page(adapter Adapter) *Page {
	if adapter.kind == KindSearch {
		return NewPage(r.source, adapter)
	}

	key := adapter.Key()

	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.pages[key]; ok {
		return p
	}

	p := NewPage(r.source, adapter)
	if len(r.pages) < r.maxPages {
		r.pages[key] = p
	}
	return p
}

// Source 페이지들이 공유하는 상품 원본을 반환합니다.
func (r *Registry) Source() contract.ProductSource {
	return r.source
}

// Len 보관 중인 페이지 수를 반환합니다.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.pages)
}
