package application

import (
	"context"

	"github.com/wyfcoding/pizzeria/internal/order/domain"
)

// OrderQueryService 处理订单相关的查询操作
type OrderQueryService struct {
	gateway domain.OrderGateway
}

// NewOrderQueryService 创建订单查询服务实例
func NewOrderQueryService(gateway domain.OrderGateway) *OrderQueryService {
	return &OrderQueryService{gateway: gateway}
}

// GetOrder 按订单 ID 获取订单
func (s *OrderQueryService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.gateway.Get(ctx, orderID)
}

// ListOrders 列出门店的全部订单
func (s *OrderQueryService) ListOrders(ctx context.Context, locationID string) ([]*domain.Order, error) {
	return s.gateway.ListByLocation(ctx, locationID)
}
