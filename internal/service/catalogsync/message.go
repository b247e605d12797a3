package catalogsync

import (
	"fmt"
	"html"
	"strings"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	"github.com/darkkaiser/storefront-server/pkg/strutil"
)

// maxListedProducts 알림 메시지 한 섹션에 나열하는 최대 상품 수
const maxListedProducts = 30

// buildChangeMessage 판매 중인 상품의 신규 등록과 가격 변동을 알림 메시지(HTML)로 만듭니다.
// 알릴 내용이 없으면 빈 문자열을 반환합니다.
func buildChangeMessage(changes catalog.Changes) string {
	added := catalog.Select(changes.Added, catalog.VisibleActive)

	var priceChanged []catalog.PriceChange
	for _, c := range changes.PriceChanged {
		if c.Product.IsActive {
			priceChanged = append(priceChanged, c)
		}
	}

	if len(added) == 0 && len(priceChanged) == 0 {
		return ""
	}

	var sb strings.Builder

	if len(added) > 0 {
		fmt.Fprintf(&sb, "<b>【 신상품 %d개 】</b>\n", len(added))
		for i, p := range added {
			if i == maxListedProducts {
				fmt.Fprintf(&sb, "… 외 %d개\n", len(added)-maxListedProducts)
				break
			}
			fmt.Fprintf(&sb, "☞ %s (%s)%s\n", html.EscapeString(p.Name), html.EscapeString(p.Category), formatPrice(p.Price))
		}
	}

	if len(priceChanged) > 0 {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "<b>【 가격 변동 %d개 】</b>\n", len(priceChanged))
		for i, c := range priceChanged {
			if i == maxListedProducts {
				fmt.Fprintf(&sb, "… 외 %d개\n", len(priceChanged)-maxListedProducts)
				break
			}
			fmt.Fprintf(&sb, "☞ %s %s ⇒ %s\n", html.EscapeString(c.Product.Name), strutil.FormatPrice(c.OldPrice), strutil.FormatPrice(c.Product.Price))
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func formatPrice(price float64) string {
	return " " + strutil.FormatPrice(price)
}
