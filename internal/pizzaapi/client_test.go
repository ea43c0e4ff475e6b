package pizzaapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	menudomain "github.com/wyfcoding/pizzeria/internal/menu/domain"
	orderdomain "github.com/wyfcoding/pizzeria/internal/order/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "loc-1", 2*time.Second, nil)
}

func TestSpecialtyPizzasUnwrapsEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/location/loc-1/specialty-pizzas", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"specialtyPizzas": []map[string]any{
				{
					"id":       "hawaiian",
					"name":     "Hawaiian",
					"toppings": []string{"cheese", "ham"},
					"price":    map[string]string{"small": "10.99", "medium": "13.49", "large": "15.99"},
				},
			},
		})
	})

	pizzas, err := client.SpecialtyPizzas(context.Background())
	require.NoError(t, err)
	require.Len(t, pizzas, 1)
	assert.Equal(t, "Hawaiian", pizzas[0].Name)
	assert.True(t, decimal.RequireFromString("13.49").Equal(pizzas[0].Price[menudomain.SizeMedium]))
}

func TestPricingTable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/location/loc-1/pizza-pricing", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"size": map[string]string{"small": "8.99", "medium": "10.99", "large": "12.99"},
			"toppingPrices": map[string]map[string]string{
				"cheese": {"regular": "1.00", "extra": "1.75"},
			},
		})
	})

	table, err := client.PricingTable(context.Background())
	require.NoError(t, err)

	base, err := table.BasePrice(menudomain.SizeLarge)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.99").Equal(base))

	tp, err := table.ToppingPrice("cheese", menudomain.QuantityExtra)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1.75").Equal(tp))
}

func TestCreateOrderPostsAndUnwraps(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/pizza", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req orderdomain.OrderRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, orderdomain.OrderTypePickup, req.Type)
		assert.Nil(t, req.Customer.Address)

		json.NewEncoder(w).Encode(map[string]any{
			"order": map[string]any{
				"id":          "ord-42",
				"locationId":  "loc-1",
				"status":      "pending",
				"totalAmount": "26.98",
			},
		})
	})

	req := orderdomain.NewPickupOrder("loc-1",
		[]orderdomain.OrderItem{{ID: "i1"}},
		decimal.RequireFromString("26.98"),
		orderdomain.Customer{Name: "Sam", Phone: "555-0101"},
	)
	order, err := client.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "ord-42", order.ID)
	assert.Equal(t, orderdomain.OrderStatusPending, order.Status)
}

func TestGetOrderByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ord-42", r.URL.Query().Get("orderId"))
		json.NewEncoder(w).Encode(map[string]any{
			"order": map[string]any{"id": "ord-42", "status": "preparing"},
		})
	})

	order, err := client.Get(context.Background(), "ord-42")
	require.NoError(t, err)
	assert.Equal(t, orderdomain.OrderStatusPreparing, order.Status)
}

func TestListByLocation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/pizzas", r.URL.Path)
		assert.Equal(t, "loc-1", r.URL.Query().Get("locationId"))
		json.NewEncoder(w).Encode(map[string]any{
			"orders": []map[string]any{
				{"id": "ord-1", "status": "ready"},
				{"id": "ord-2", "status": "pending"},
			},
		})
	})

	orders, err := client.ListByLocation(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ord-1", orders[0].ID)
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "order not found", http.StatusNotFound)
	})

	_, err := client.Get(context.Background(), "ghost")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "order not found", apiErr.Message)
}

func TestAPIErrorExtractsMessageField(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid status transition"})
	})

	_, err := client.UpdateStatus(context.Background(), "ord-1", orderdomain.OrderStatusDelivered)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid status transition", apiErr.Message)
}
