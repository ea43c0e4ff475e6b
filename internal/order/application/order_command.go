package application

import (
	"context"
	"fmt"
	"time"

	"github.com/wyfcoding/pizzeria/internal/order/domain"
	"github.com/wyfcoding/pizzeria/pkg/logger"
)

// CancelOrderCommand 取消订单命令
type CancelOrderCommand struct {
	OrderID string
}

// UpdateStatusCommand 推进订单状态命令
type UpdateStatusCommand struct {
	OrderID string
	Status  domain.OrderStatus
}

// OrderCommandService 处理订单相关的命令操作
type OrderCommandService struct {
	gateway   domain.OrderGateway
	publisher domain.EventPublisher
}

// NewOrderCommandService 创建订单命令服务实例
func NewOrderCommandService(gateway domain.OrderGateway, publisher domain.EventPublisher) *OrderCommandService {
	return &OrderCommandService{gateway: gateway, publisher: publisher}
}

// Cancel 取消订单。仅 pending 状态的订单可以取消。
func (s *OrderCommandService) Cancel(ctx context.Context, cmd CancelOrderCommand) (*domain.Order, error) {
	order, err := s.gateway.Get(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}
	if !order.Cancellable() {
		return nil, fmt.Errorf("%w: status is %s", domain.ErrNotCancellable, order.Status)
	}

	cancelled, err := s.gateway.Cancel(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "order.cancelled", cancelled.ID, domain.OrderCancelledEvent{
		OrderID:   cancelled.ID,
		Timestamp: time.Now(),
	})
	return cancelled, nil
}

// UpdateStatus 推进订单状态
func (s *OrderCommandService) UpdateStatus(ctx context.Context, cmd UpdateStatusCommand) (*domain.Order, error) {
	if !cmd.Status.Valid() {
		return nil, fmt.Errorf("invalid order status %q", cmd.Status)
	}

	order, err := s.gateway.UpdateStatus(ctx, cmd.OrderID, cmd.Status)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "order.status.changed", order.ID, domain.OrderStatusChangedEvent{
		OrderID:   order.ID,
		NewStatus: order.Status,
		Timestamp: time.Now(),
	})
	return order, nil
}

func (s *OrderCommandService) publish(ctx context.Context, topic string, key string, event any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, topic, key, event); err != nil {
		logger.Warn(ctx, "failed to publish order event", "topic", topic, "error", err)
	}
}
