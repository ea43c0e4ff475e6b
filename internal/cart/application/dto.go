package application

import (
	"github.com/shopspring/decimal"

	"github.com/wyfcoding/pizzeria/internal/cart/domain"
)

// CartItemDTO 购物车行项目视图
type CartItemDTO struct {
	ID              string          `json:"id"`
	Pizza           domain.Pizza    `json:"pizza"`
	ToppingsSummary string          `json:"toppingsSummary"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
}

// CartDTO 购物车视图，总金额在组装时派生
type CartDTO struct {
	ID          string          `json:"id"`
	Items       []CartItemDTO   `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// NewCartDTO 由购物车聚合组装视图
func NewCartDTO(cart *domain.Cart) *CartDTO {
	items := make([]CartItemDTO, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartItemDTO{
			ID:              item.ID,
			Pizza:           item.Pizza,
			ToppingsSummary: domain.SummarizeToppings(item.Pizza.Toppings, item.Pizza.ToppingExclusions),
			UnitPrice:       item.Pizza.UnitPrice(),
		})
	}
	return &CartDTO{
		ID:          cart.ID,
		Items:       items,
		TotalAmount: cart.TotalAmount(),
	}
}
