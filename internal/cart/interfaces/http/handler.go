package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wyfcoding/pizzeria/internal/cart/application"
	"github.com/wyfcoding/pizzeria/internal/cart/domain"
	menudomain "github.com/wyfcoding/pizzeria/internal/menu/domain"
	"github.com/wyfcoding/pizzeria/pkg/logger"
	"github.com/wyfcoding/pizzeria/pkg/response"
)

// CartHandler 购物车 HTTP 处理器
type CartHandler struct {
	app *application.CartApplicationService
}

func NewCartHandler(app *application.CartApplicationService) *CartHandler {
	return &CartHandler{app: app}
}

// RegisterRoutes 注册路由
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v1/carts")
	{
		api.GET("/:id", h.GetCart)
		api.POST("/:id/items/specialty", h.AddSpecialty)
		api.POST("/:id/items/custom", h.AddCustom)
		api.PATCH("/:id/items/:itemId", h.UpdateQuantity)
		api.DELETE("/:id/items/:itemId", h.RemoveItem)
		api.DELETE("/:id", h.ClearCart)
	}
}

// AddSpecialtyRequest 添加招牌披萨请求。
// 尺寸缺省为 medium，份数缺省为 1。
type AddSpecialtyRequest struct {
	PizzaID          string            `json:"pizzaId" binding:"required"`
	Size             string            `json:"size"`
	Quantity         int               `json:"quantity"`
	ToppingOverrides map[string]string `json:"toppingOverrides"`
}

// ToppingRequest 自选披萨的单个配料
type ToppingRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity string `json:"quantity" binding:"required"`
}

// AddCustomRequest 添加自选披萨请求。
// 尺寸缺省为 medium，份数缺省为 1。
type AddCustomRequest struct {
	Size     string           `json:"size"`
	Quantity int              `json:"quantity"`
	Toppings []ToppingRequest `json:"toppings"`
}

func defaultSize(s string) menudomain.Size {
	if s == "" {
		return menudomain.SizeMedium
	}
	return menudomain.Size(s)
}

func defaultQuantity(q int) int {
	if q == 0 {
		return 1
	}
	return q
}

// UpdateQuantityRequest 修改份数请求
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GetCart 获取购物车
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.app.GetCart(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, cart)
}

// AddSpecialty 添加招牌披萨
func (h *CartHandler) AddSpecialty(c *gin.Context) {
	var req AddSpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	cart, err := h.app.AddSpecialty(c.Request.Context(), application.AddSpecialtyCommand{
		CartID:           c.Param("id"),
		PizzaID:          req.PizzaID,
		Size:             defaultSize(req.Size),
		Quantity:         defaultQuantity(req.Quantity),
		ToppingOverrides: req.ToppingOverrides,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, cart)
}

// AddCustom 添加自选披萨
func (h *CartHandler) AddCustom(c *gin.Context) {
	var req AddCustomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	toppings := make([]application.ToppingSelection, 0, len(req.Toppings))
	for _, t := range req.Toppings {
		toppings = append(toppings, application.ToppingSelection{
			Name:     t.Name,
			Quantity: menudomain.ToppingQuantity(t.Quantity),
		})
	}

	cart, err := h.app.AddCustom(c.Request.Context(), application.AddCustomCommand{
		CartID:   c.Param("id"),
		Size:     defaultSize(req.Size),
		Quantity: defaultQuantity(req.Quantity),
		Toppings: toppings,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, cart)
}

// UpdateQuantity 修改行项目份数
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	cart, err := h.app.UpdateQuantity(c.Request.Context(), application.UpdateQuantityCommand{
		CartID:   c.Param("id"),
		ItemID:   c.Param("itemId"),
		Quantity: req.Quantity,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, cart)
}

// RemoveItem 移除行项目
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.app.RemoveItem(c.Request.Context(), application.RemoveItemCommand{
		CartID: c.Param("id"),
		ItemID: c.Param("itemId"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, cart)
}

// ClearCart 清空购物车
func (h *CartHandler) ClearCart(c *gin.Context) {
	err := h.app.ClearCart(c.Request.Context(), application.ClearCartCommand{CartID: c.Param("id")})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}

func (h *CartHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, menudomain.ErrPizzaNotFound), errors.Is(err, domain.ErrItemNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidSize),
		errors.Is(err, domain.ErrToppingNotOnPizza),
		errors.Is(err, menudomain.ErrInvalidQuantity),
		errors.Is(err, menudomain.ErrSizeNotPriced),
		errors.Is(err, menudomain.ErrToppingNotPriced):
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid request", err.Error())
	default:
		logger.Error(c.Request.Context(), "cart operation failed", "error", err)
		response.Error(c, err)
	}
}
