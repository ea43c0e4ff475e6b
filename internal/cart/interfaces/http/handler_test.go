package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/pizzeria/internal/cart/application"
	"github.com/wyfcoding/pizzeria/internal/cart/infrastructure/persistence/memory"
	menudomain "github.com/wyfcoding/pizzeria/internal/menu/domain"
)

type menuFixture struct{}

func (menuFixture) GetSpecialtyPizza(_ context.Context, id string) (*menudomain.SpecialtyPizza, error) {
	if id != "hawaiian" {
		return nil, menudomain.ErrPizzaNotFound
	}
	return &menudomain.SpecialtyPizza{
		ID:       "hawaiian",
		Name:     "Hawaiian",
		Toppings: []string{"cheese", "ham", "pineapple"},
		Price: map[menudomain.Size]decimal.Decimal{
			menudomain.SizeSmall:  decimal.RequireFromString("10.99"),
			menudomain.SizeMedium: decimal.RequireFromString("13.49"),
			menudomain.SizeLarge:  decimal.RequireFromString("15.99"),
		},
	}, nil
}

func (menuFixture) GetPricing(context.Context) (*menudomain.PricingTable, error) {
	return &menudomain.PricingTable{
		Size: map[menudomain.Size]decimal.Decimal{
			menudomain.SizeSmall:  decimal.RequireFromString("8.99"),
			menudomain.SizeMedium: decimal.RequireFromString("10.99"),
			menudomain.SizeLarge:  decimal.RequireFromString("12.99"),
		},
		ToppingPrices: map[string]map[menudomain.ToppingQuantity]decimal.Decimal{
			"cheese": {
				menudomain.QuantityRegular: decimal.RequireFromString("1.00"),
				menudomain.QuantityExtra:   decimal.RequireFromString("1.75"),
			},
		},
	}, nil
}

type namerFixture struct{}

func (namerFixture) SuggestName(context.Context, []menudomain.Topping) string {
	return "Custom Pizza"
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := memory.NewCartMemoryRepository()
	app := application.NewCartApplicationService(repo, menuFixture{}, namerFixture{}, nil, nil)

	engine := gin.New()
	NewCartHandler(app).RegisterRoutes(engine.Group(""))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAddSpecialtyEndpoint(t *testing.T) {
	engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/carts/c1/items/specialty", gin.H{
		"pizzaId":  "hawaiian",
		"size":     "medium",
		"quantity": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int                 `json:"code"`
		Data application.CartDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Code)
	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, "Hawaiian", resp.Data.Items[0].Pizza.Name)
	assert.True(t, decimal.RequireFromString("26.98").Equal(resp.Data.TotalAmount))
}

func TestAddSpecialtyUnknownPizzaReturns404(t *testing.T) {
	engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/carts/c1/items/specialty", gin.H{
		"pizzaId":  "ghost",
		"size":     "medium",
		"quantity": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddSpecialtyMissingFieldsReturns400(t *testing.T) {
	engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/carts/c1/items/specialty", gin.H{
		"size": "medium",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartLifecycleOverHTTP(t *testing.T) {
	engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/carts/c1/items/custom", gin.H{
		"size":     "large",
		"quantity": 1,
		"toppings": []gin.H{{"name": "cheese", "quantity": "extra"}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data application.CartDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Items, 1)
	itemID := resp.Data.Items[0].ID
	assert.Equal(t, "Custom Pizza", resp.Data.Items[0].Pizza.Name)

	w = doJSON(t, engine, http.MethodPatch, "/api/v1/carts/c1/items/"+itemID, gin.H{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodDelete, "/api/v1/carts/c1/items/"+itemID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/carts/c1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Items)
	assert.True(t, resp.Data.TotalAmount.IsZero())
}

func TestUpdateQuantityZeroReturns400(t *testing.T) {
	engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/carts/c1/items/specialty", gin.H{
		"pizzaId":  "hawaiian",
		"size":     "small",
		"quantity": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data application.CartDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	itemID := resp.Data.Items[0].ID

	w = doJSON(t, engine, http.MethodPatch, "/api/v1/carts/c1/items/"+itemID, gin.H{"quantity": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
