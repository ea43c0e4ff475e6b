package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wyfcoding/pizzeria/internal/order/application"
	"github.com/wyfcoding/pizzeria/internal/order/domain"
	"github.com/wyfcoding/pizzeria/internal/pizzaapi"
	"github.com/wyfcoding/pizzeria/pkg/logger"
	"github.com/wyfcoding/pizzeria/pkg/response"
)

// OrderHandler 订单 HTTP 处理器
type OrderHandler struct {
	checkout *application.CheckoutService
	cmd      *application.OrderCommandService
	query    *application.OrderQueryService
}

// NewOrderHandler 创建订单处理器实例
func NewOrderHandler(
	checkout *application.CheckoutService,
	cmd *application.OrderCommandService,
	query *application.OrderQueryService,
) *OrderHandler {
	return &OrderHandler{checkout: checkout, cmd: cmd, query: query}
}

// RegisterRoutes 注册路由
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/v1/checkout", h.Checkout)
	api := router.Group("/api/v1/orders")
	{
		api.GET("", h.ListOrders)
		api.GET("/:id", h.GetOrder)
		api.POST("/:id/cancel", h.CancelOrder)
		api.PUT("/:id/status", h.UpdateStatus)
	}
}

// AddressRequest 配送地址
type AddressRequest struct {
	Street string `json:"street" binding:"required"`
	City   string `json:"city" binding:"required"`
	State  string `json:"state" binding:"required"`
	Zip    string `json:"zip" binding:"required"`
}

// CardRequest 刷卡信息
type CardRequest struct {
	Number string `json:"number" binding:"required"`
	Expiry string `json:"expiry" binding:"required"`
	CVV    string `json:"cvv" binding:"required"`
}

// CheckoutRequest 结账请求
type CheckoutRequest struct {
	CartID  string          `json:"cartId" binding:"required"`
	Type    string          `json:"type" binding:"required,oneof=pickup delivery"`
	Payment string          `json:"payment" binding:"required,oneof=credit_card cash"`
	Name    string          `json:"name" binding:"required"`
	Phone   string          `json:"phone" binding:"required"`
	Email   string          `json:"email"`
	Address *AddressRequest `json:"address"`
	Card    *CardRequest    `json:"card"`
}

// UpdateStatusRequest 状态推进请求
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Checkout 提交订单
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	cmd := application.SubmitOrderCommand{
		CartID: req.CartID,
		Type:   domain.OrderType(req.Type),
		Customer: domain.Customer{
			Name:  req.Name,
			Phone: req.Phone,
			Email: req.Email,
		},
		Payment: domain.PaymentMethod(req.Payment),
	}
	if req.Address != nil {
		cmd.Address = &domain.Address{
			Street: req.Address.Street,
			City:   req.Address.City,
			State:  req.Address.State,
			Zip:    req.Address.Zip,
		}
	}
	if req.Card != nil {
		cmd.Card = &domain.CardDetails{
			Number: req.Card.Number,
			Expiry: req.Card.Expiry,
			CVV:    req.Card.CVV,
		}
	}

	order, err := h.checkout.Submit(c.Request.Context(), cmd)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, gin.H{"order": order})
}

// GetOrder 获取订单详情
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.query.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, gin.H{"order": order})
}

// ListOrders 列出门店订单
func (h *OrderHandler) ListOrders(c *gin.Context) {
	locationID := c.Query("location_id")
	orders, err := h.query.ListOrders(c.Request.Context(), locationID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, gin.H{"orders": orders})
}

// CancelOrder 取消订单
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	order, err := h.cmd.Cancel(c.Request.Context(), application.CancelOrderCommand{OrderID: c.Param("id")})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, gin.H{"order": order})
}

// UpdateStatus 推进订单状态
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	order, err := h.cmd.UpdateStatus(c.Request.Context(), application.UpdateStatusCommand{
		OrderID: c.Param("id"),
		Status:  domain.OrderStatus(req.Status),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, gin.H{"order": order})
}

func (h *OrderHandler) writeError(c *gin.Context, err error) {
	var apiErr *pizzaapi.APIError
	switch {
	case errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrMissingAddress),
		errors.Is(err, domain.ErrUnexpectedAddress),
		errors.Is(err, domain.ErrMissingCard),
		errors.Is(err, domain.ErrUnexpectedCard),
		errors.Is(err, domain.ErrMissingCustomer):
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid order", err.Error())
	case errors.Is(err, domain.ErrNotCancellable):
		response.ErrorWithStatus(c, http.StatusConflict, "order not cancellable", err.Error())
	case errors.As(err, &apiErr):
		logger.Error(c.Request.Context(), "upstream order call failed", "status", apiErr.StatusCode, "error", err)
		if apiErr.StatusCode == http.StatusNotFound {
			response.ErrorWithStatus(c, http.StatusNotFound, "order not found", apiErr.Message)
			return
		}
		response.ErrorWithStatus(c, http.StatusBadGateway, "order service unavailable", apiErr.Message)
	default:
		logger.Error(c.Request.Context(), "order operation failed", "error", err)
		response.Error(c, err)
	}
}
