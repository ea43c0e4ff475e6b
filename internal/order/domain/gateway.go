package domain

import "context"

// OrderGateway 外部披萨 API 的订单端口。
// 订单的事实状态由外部系统持有，本服务不落库。
type OrderGateway interface {
	// Create 提交订单并返回外部系统生成的订单
	Create(ctx context.Context, req *OrderRequest) (*Order, error)
	// Get 按订单 ID 回读订单
	Get(ctx context.Context, orderID string) (*Order, error)
	// Cancel 取消订单
	Cancel(ctx context.Context, orderID string) (*Order, error)
	// UpdateStatus 推进订单状态
	UpdateStatus(ctx context.Context, orderID string, status OrderStatus) (*Order, error)
	// ListByLocation 列出门店的全部订单
	ListByLocation(ctx context.Context, locationID string) ([]*Order, error)
}
