package request

// SearchRequest 상품 이름 검색 요청
type SearchRequest struct {
	// 검색어 (비어 있으면 빈 결과를 반환합니다)
	Query string `query:"q" validate:"max=100" korean:"검색어" example:"가방"`
}

// CategoryRequest 카테고리 페이지 요청
type CategoryRequest struct {
	// 카테고리 이름 (쉼표는 허용되지 않습니다)
	Category string `param:"category" validate:"required,max=100,excludesall=0x2C" korean:"카테고리" example:"Bags"`
}


// ProductRequest 상품 상세 조회 요청
type ProductRequest struct {
	ID string `param:"id" validate:"required,max=100" korean:"상품 식별자" example:"p1"`
}
