package application

import (
	"context"
	"time"

	cartdomain "github.com/wyfcoding/pizzeria/internal/cart/domain"
	"github.com/wyfcoding/pizzeria/internal/order/domain"
	"github.com/wyfcoding/pizzeria/pkg/logger"
	"github.com/wyfcoding/pizzeria/pkg/metrics"
)

// SubmitOrderCommand 提交订单命令
type SubmitOrderCommand struct {
	CartID   string
	Type     domain.OrderType
	Customer domain.Customer
	Address  *domain.Address
	Payment  domain.PaymentMethod
	Card     *domain.CardDetails
}

// CheckoutService 结账服务。
// 把购物车快照成订单提交给外部披萨 API；
// 只有提交成功才清空购物车，失败时购物车原样保留。
type CheckoutService struct {
	cartRepo   cartdomain.CartRepository
	gateway    domain.OrderGateway
	publisher  domain.EventPublisher
	locationID string
	metrics    *metrics.Metrics
}

// NewCheckoutService 创建结账服务实例
func NewCheckoutService(
	cartRepo cartdomain.CartRepository,
	gateway domain.OrderGateway,
	publisher domain.EventPublisher,
	locationID string,
	m *metrics.Metrics,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:   cartRepo,
		gateway:    gateway,
		publisher:  publisher,
		locationID: locationID,
		metrics:    m,
	}
}

// Submit 提交订单
func (s *CheckoutService) Submit(ctx context.Context, cmd SubmitOrderCommand) (*domain.Order, error) {
	cart, err := s.cartRepo.Get(ctx, cmd.CartID)
	if err != nil {
		return nil, err
	}
	if cart.Empty() {
		return nil, domain.ErrEmptyOrder
	}

	items := make([]domain.OrderItem, 0, len(cart.Items))
	for _, li := range cart.Items {
		items = append(items, domain.OrderItem{ID: li.ID, Pizza: li.Pizza})
	}
	total := cart.TotalAmount()

	var req *domain.OrderRequest
	if cmd.Type == domain.OrderTypeDelivery {
		if cmd.Address == nil {
			return nil, domain.ErrMissingAddress
		}
		req = domain.NewDeliveryOrder(s.locationID, items, total, cmd.Customer, *cmd.Address)
	} else {
		req = domain.NewPickupOrder(s.locationID, items, total, cmd.Customer)
	}
	if cmd.Payment == domain.PaymentCreditCard {
		if cmd.Card == nil {
			return nil, domain.ErrMissingCard
		}
		req.WithCardPayment(*cmd.Card)
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	order, err := s.gateway.Create(ctx, req)
	if err != nil {
		if s.metrics != nil {
			s.metrics.OrdersFailedTotal.Inc()
		}
		return nil, err
	}

	// 提交成功后清空购物车；清空失败不影响已创建的订单
	if err := s.cartRepo.Delete(ctx, cmd.CartID); err != nil {
		logger.Warn(ctx, "order created but cart not cleared", "cart_id", cmd.CartID, "order_id", order.ID, "error", err)
	}

	if s.metrics != nil {
		s.metrics.OrdersSubmittedTotal.Inc()
	}
	s.publish(ctx, "order.submitted", order.ID, domain.OrderSubmittedEvent{
		OrderID:     order.ID,
		CartID:      cmd.CartID,
		LocationID:  s.locationID,
		Type:        req.Type,
		ItemCount:   len(items),
		TotalAmount: total.String(),
		Status:      order.Status,
		Timestamp:   time.Now(),
	})
	return order, nil
}

func (s *CheckoutService) publish(ctx context.Context, topic string, key string, event any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, topic, key, event); err != nil {
		logger.Warn(ctx, "failed to publish order event", "topic", topic, "error", err)
	}
}
