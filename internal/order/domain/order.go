// Package domain 包含订单的领域模型。
// 订单由外部披萨 API 持有，这里只定义提交与回读的模型和网关端口。
package domain

import (
	"time"

	"github.com/shopspring/decimal"

	cartdomain "github.com/wyfcoding/pizzeria/internal/cart/domain"
)

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid 校验状态取值
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem 订单中的一行，提交时从购物车行项快照而来
type OrderItem struct {
	ID    string           `json:"id"`
	Pizza cartdomain.Pizza `json:"pizza"`
}

// Order 外部 API 回读的订单实体
type Order struct {
	ID          string          `json:"id"`
	LocationID  string          `json:"locationId"`
	Status      OrderStatus     `json:"status"`
	Items       []OrderItem     `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Customer    Customer        `json:"customer"`
	Type        OrderType       `json:"type"`
	Payment     PaymentMethod   `json:"payment"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Cancellable 订单是否还能取消。开始备餐后不可取消。
func (o *Order) Cancellable() bool {
	return o.Status == OrderStatusPending
}
