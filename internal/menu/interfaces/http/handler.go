package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pizzeria/internal/menu/application"
	"github.com/wyfcoding/pizzeria/pkg/logger"
	"github.com/wyfcoding/pizzeria/pkg/response"
)

// MenuHandler 菜单 HTTP 处理器
type MenuHandler struct {
	query *application.MenuQueryService
}

func NewMenuHandler(query *application.MenuQueryService) *MenuHandler {
	return &MenuHandler{query: query}
}

// RegisterRoutes 注册路由
func (h *MenuHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v1/menu")
	{
		api.GET("/specialty-pizzas", h.GetSpecialtyPizzas)
		api.GET("/pricing", h.GetPricing)
	}
}

// GetSpecialtyPizzas 获取招牌披萨列表
func (h *MenuHandler) GetSpecialtyPizzas(c *gin.Context) {
	pizzas, err := h.query.GetSpecialtyPizzas(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to fetch specialty pizzas", "error", err)
		response.ErrorWithStatus(c, http.StatusBadGateway, "menu is temporarily unavailable", err.Error())
		return
	}

	response.Success(c, gin.H{"specialtyPizzas": pizzas})
}

// GetPricing 获取价格表
func (h *MenuHandler) GetPricing(c *gin.Context) {
	table, err := h.query.GetPricing(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to fetch pizza pricing", "error", err)
		response.ErrorWithStatus(c, http.StatusBadGateway, "pricing is temporarily unavailable", err.Error())
		return
	}

	response.Success(c, table)
}
