package catalog

import (
	"slices"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/tidwall/gjson"
)

const (
	// UnknownUserID 주문자 정보가 없는 주문을 모으는 그룹의 식별자입니다.
	UnknownUserID = "Unknown"

	// UnknownUserName 주문자 이름을 알 수 없을 때 표시하는 이름입니다.
	UnknownUserName = "Unknown User"
)

// OrderUser 주문자 정보입니다.
type OrderUser struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

// DisplayName "이름 성" 형태의 표시 이름을 반환합니다. 이름이 없으면 UnknownUserName입니다.
func (u OrderUser) DisplayName() string {
	if u.FirstName == "" {
		return UnknownUserName
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// OrderItem 주문에 포함된 상품입니다.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Subtotal 상품 가격과 수량의 곱을 반환합니다.
func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Order 정규화된 주문 정보입니다.
type Order struct {
	ID         string      `json:"id"`
	User       OrderUser   `json:"user"`
	Items      []OrderItem `json:"items"`
	TotalPrice float64     `json:"totalPrice"`
	Status     string      `json:"status,omitempty"`
	OrderedOn  time.Time   `json:"orderedOn,omitzero"`
}

// UserOrders 한 사용자의 주문 묶음입니다.
type UserOrders struct {
	UserID   string  `json:"userId"`
	UserName string  `json:"userName"`
	Orders   []Order `json:"orders"`
}

// GroupOrdersByUser 주문을 주문일 오름차순으로 정렬한 뒤 주문자별로 묶습니다.
//
// 주문자 식별자가 없으면 UnknownUserID 그룹에 모입니다. 그룹은 처음 등장한 순서를 따르며
// 표시 이름은 그룹의 첫 주문을 기준으로 정합니다. 입력 슬라이스는 변경되지 않습니다.
func GroupOrdersByUser(orders []Order) []UserOrders {
	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b Order) int { return a.OrderedOn.Compare(b.OrderedOn) })

	var groups []UserOrders
	index := make(map[string]int)
	for _, o := range sorted {
		userID := o.User.ID
		if userID == "" {
			userID = UnknownUserID
		}

		i, ok := index[userID]
		if !ok {
			i = len(groups)
			index[userID] = i
			groups = append(groups, UserOrders{UserID: userID, UserName: o.User.DisplayName()})
		}
		groups[i].Orders = append(groups[i].Orders, o)
	}
	return groups
}

// NormalizeOrders 백엔드의 주문 목록 JSON({orders: [...]} 또는 배열)을 Order 목록으로 변환합니다.
// userId와 productId는 식별자 문자열이거나 상세 정보가 채워진 객체일 수 있습니다.
func NormalizeOrders(data []byte) ([]Order, error) {
	if !gjson.ValidBytes(data) {
		return nil, apperrors.New(apperrors.ParsingFailed, "주문 목록 응답이 올바른 JSON 형식이 아닙니다")
	}

	root := gjson.ParseBytes(data)
	list := root
	if !root.IsArray() {
		list = root.Get("orders")
	}
	if !list.IsArray() {
		return nil, apperrors.New(apperrors.ParsingFailed, "주문 목록 응답에서 주문 배열을 찾을 수 없습니다")
	}

	records := list.Array()
	orders := make([]Order, 0, len(records))
	for _, r := range records {
		orders = append(orders, normalizeOrder(r))
	}
	return orders, nil
}

func normalizeOrder(r gjson.Result) Order {
	o := Order{
		ID:         firstExisting(r, idPaths).String(),
		User:       normalizeOrderUser(r.Get("userId")),
		TotalPrice: parsePrice(r.Get("totalPrice")),
		Status:     r.Get("status").String(),
		OrderedOn:  parseTimestamp(firstExisting(r, []string{"orderedOn", "createdAt"})),
	}

	for _, item := range r.Get("productsOrdered").Array() {
		product := item.Get("productId")
		oi := OrderItem{Quantity: int(item.Get("quantity").Int())}
		if product.IsObject() {
			oi.ProductID = firstExisting(product, idPaths).String()
			oi.Name = product.Get("name").String()
			oi.Price = parsePrice(product.Get("price"))
		} else {
			oi.ProductID = product.String()
		}
		o.Items = append(o.Items, oi)
	}
	return o
}

func normalizeOrderUser(v gjson.Result) OrderUser {
	if !v.IsObject() {
		return OrderUser{ID: strings.TrimSpace(v.String())}
	}
	return OrderUser{
		ID:        strings.TrimSpace(firstExisting(v, idPaths).String()),
		FirstName: strings.TrimSpace(v.Get("firstName").String()),
		LastName:  strings.TrimSpace(v.Get("lastName").String()),
		Email:     strings.TrimSpace(v.Get("email").String()),
	}
}
