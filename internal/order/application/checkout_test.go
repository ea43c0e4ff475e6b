package application

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/wyfcoding/pizzeria/internal/cart/domain"
	"github.com/wyfcoding/pizzeria/internal/cart/infrastructure/persistence/memory"
	menudomain "github.com/wyfcoding/pizzeria/internal/menu/domain"
	"github.com/wyfcoding/pizzeria/internal/order/domain"
)

type fakeGateway struct {
	created   *domain.OrderRequest
	createErr error
	orders    map[string]*domain.Order
}

func (g *fakeGateway) Create(_ context.Context, req *domain.OrderRequest) (*domain.Order, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.created = req
	order := &domain.Order{
		ID:          "ord-1",
		LocationID:  req.LocationID,
		Status:      domain.OrderStatusPending,
		Items:       req.Items,
		TotalAmount: req.TotalAmount,
		Customer:    req.Customer,
		Type:        req.Type,
		Payment:     req.Payment,
	}
	if g.orders == nil {
		g.orders = map[string]*domain.Order{}
	}
	g.orders[order.ID] = order
	return order, nil
}

func (g *fakeGateway) Get(_ context.Context, orderID string) (*domain.Order, error) {
	if o, ok := g.orders[orderID]; ok {
		return o, nil
	}
	return nil, errors.New("order not found")
}

func (g *fakeGateway) Cancel(_ context.Context, orderID string) (*domain.Order, error) {
	o, ok := g.orders[orderID]
	if !ok {
		return nil, errors.New("order not found")
	}
	o.Status = domain.OrderStatusCancelled
	return o, nil
}

func (g *fakeGateway) UpdateStatus(_ context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	o, ok := g.orders[orderID]
	if !ok {
		return nil, errors.New("order not found")
	}
	o.Status = status
	return o, nil
}

func (g *fakeGateway) ListByLocation(context.Context, string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range g.orders {
		out = append(out, o)
	}
	return out, nil
}

func seedCart(t *testing.T, repo cartdomain.CartRepository, cartID string) decimal.Decimal {
	t.Helper()
	cart := cartdomain.NewCart(cartID)
	cart.AddItem(cartdomain.LineItem{
		ID: "item-1",
		Pizza: cartdomain.Pizza{
			Name:       "Hawaiian",
			Type:       cartdomain.PizzaTypeSpecialty,
			Size:       menudomain.SizeMedium,
			Quantity:   2,
			TotalPrice: decimal.RequireFromString("26.98"),
		},
	})
	require.NoError(t, repo.Save(context.Background(), cart))
	return cart.TotalAmount()
}

func TestSubmitPickupOrderClearsCart(t *testing.T) {
	repo := memory.NewCartMemoryRepository()
	gateway := &fakeGateway{}
	svc := NewCheckoutService(repo, gateway, nil, "loc-1", nil)
	ctx := context.Background()

	total := seedCart(t, repo, "c1")

	order, err := svc.Submit(ctx, SubmitOrderCommand{
		CartID:   "c1",
		Type:     domain.OrderTypePickup,
		Customer: domain.Customer{Name: "Sam", Phone: "555-0101"},
		Payment:  domain.PaymentCash,
	})
	require.NoError(t, err)

	assert.Equal(t, "ord-1", order.ID)
	assert.True(t, total.Equal(order.TotalAmount))
	require.NotNil(t, gateway.created)
	assert.Nil(t, gateway.created.Customer.Address)

	cart, err := repo.Get(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, cart.Empty())
}

func TestSubmitDeliveryOrderCarriesAddress(t *testing.T) {
	repo := memory.NewCartMemoryRepository()
	gateway := &fakeGateway{}
	svc := NewCheckoutService(repo, gateway, nil, "loc-1", nil)

	seedCart(t, repo, "c1")

	_, err := svc.Submit(context.Background(), SubmitOrderCommand{
		CartID:   "c1",
		Type:     domain.OrderTypeDelivery,
		Customer: domain.Customer{Name: "Sam", Phone: "555-0101"},
		Address:  &domain.Address{Street: "1 Main St", City: "Springfield", State: "IL", Zip: "62701"},
		Payment:  domain.PaymentCreditCard,
		Card:     &domain.CardDetails{Number: "4111111111111111", Expiry: "12/27", CVV: "123"},
	})
	require.NoError(t, err)

	require.NotNil(t, gateway.created.Customer.Address)
	assert.Equal(t, "Springfield", gateway.created.Customer.Address.City)
	assert.Equal(t, domain.PaymentCreditCard, gateway.created.Payment)
	require.NotNil(t, gateway.created.Card)
}

func TestSubmitEmptyCartRejected(t *testing.T) {
	repo := memory.NewCartMemoryRepository()
	svc := NewCheckoutService(repo, &fakeGateway{}, nil, "loc-1", nil)

	_, err := svc.Submit(context.Background(), SubmitOrderCommand{
		CartID:   "empty",
		Type:     domain.OrderTypePickup,
		Customer: domain.Customer{Name: "Sam", Phone: "555-0101"},
		Payment:  domain.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestSubmitDeliveryWithoutAddressRejected(t *testing.T) {
	repo := memory.NewCartMemoryRepository()
	svc := NewCheckoutService(repo, &fakeGateway{}, nil, "loc-1", nil)
	seedCart(t, repo, "c1")

	_, err := svc.Submit(context.Background(), SubmitOrderCommand{
		CartID:   "c1",
		Type:     domain.OrderTypeDelivery,
		Customer: domain.Customer{Name: "Sam", Phone: "555-0101"},
		Payment:  domain.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrMissingAddress)
}

func TestSubmitCardPaymentWithoutCardRejected(t *testing.T) {
	repo := memory.NewCartMemoryRepository()
	svc := NewCheckoutService(repo, &fakeGateway{}, nil, "loc-1", nil)
	seedCart(t, repo, "c1")

	_, err := svc.Submit(context.Background(), SubmitOrderCommand{
		CartID:   "c1",
		Type:     domain.OrderTypePickup,
		Customer: domain.Customer{Name: "Sam", Phone: "555-0101"},
		Payment:  domain.PaymentCreditCard,
	})
	assert.ErrorIs(t, err, domain.ErrMissingCard)
}

func TestSubmitFailureKeepsCart(t *testing.T) {
	repo := memory.NewCartMemoryRepository()
	gateway := &fakeGateway{createErr: errors.New("upstream down")}
	svc := NewCheckoutService(repo, gateway, nil, "loc-1", nil)
	ctx := context.Background()

	total := seedCart(t, repo, "c1")

	_, err := svc.Submit(ctx, SubmitOrderCommand{
		CartID:   "c1",
		Type:     domain.OrderTypePickup,
		Customer: domain.Customer{Name: "Sam", Phone: "555-0101"},
		Payment:  domain.PaymentCash,
	})
	require.Error(t, err)

	cart, err := repo.Get(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, cart.Empty())
	assert.True(t, total.Equal(cart.TotalAmount()))
}

func TestCancelPendingOrder(t *testing.T) {
	repo := memory.NewCartMemoryRepository()
	gateway := &fakeGateway{}
	checkout := NewCheckoutService(repo, gateway, nil, "loc-1", nil)
	cmd := NewOrderCommandService(gateway, nil)
	ctx := context.Background()

	seedCart(t, repo, "c1")
	order, err := checkout.Submit(ctx, SubmitOrderCommand{
		CartID:   "c1",
		Type:     domain.OrderTypePickup,
		Customer: domain.Customer{Name: "Sam", Phone: "555-0101"},
		Payment:  domain.PaymentCash,
	})
	require.NoError(t, err)

	cancelled, err := cmd.Cancel(ctx, CancelOrderCommand{OrderID: order.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, cancelled.Status)
}

func TestCancelPreparingOrderRejected(t *testing.T) {
	gateway := &fakeGateway{orders: map[string]*domain.Order{
		"ord-9": {ID: "ord-9", Status: domain.OrderStatusPreparing},
	}}
	cmd := NewOrderCommandService(gateway, nil)

	_, err := cmd.Cancel(context.Background(), CancelOrderCommand{OrderID: "ord-9"})
	assert.ErrorIs(t, err, domain.ErrNotCancellable)
}

func TestUpdateStatusValidatesValue(t *testing.T) {
	gateway := &fakeGateway{orders: map[string]*domain.Order{
		"ord-9": {ID: "ord-9", Status: domain.OrderStatusPending},
	}}
	cmd := NewOrderCommandService(gateway, nil)
	ctx := context.Background()

	order, err := cmd.UpdateStatus(ctx, UpdateStatusCommand{OrderID: "ord-9", Status: domain.OrderStatusReady})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusReady, order.Status)

	_, err = cmd.UpdateStatus(ctx, UpdateStatusCommand{OrderID: "ord-9", Status: "burnt"})
	assert.Error(t, err)
}
