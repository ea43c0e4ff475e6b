package domain

import "context"

// CatalogSource 上游菜单数据来源（外部披萨 API）
type CatalogSource interface {
	SpecialtyPizzas(ctx context.Context) ([]SpecialtyPizza, error)
	PricingTable(ctx context.Context) (*PricingTable, error)
}

// MenuCache 菜单数据的本地缓存
type MenuCache interface {
	GetCatalog(ctx context.Context) ([]SpecialtyPizza, error)
	SetCatalog(ctx context.Context, pizzas []SpecialtyPizza) error
	GetPricing(ctx context.Context) (*PricingTable, error)
	SetPricing(ctx context.Context, table *PricingTable) error
}
