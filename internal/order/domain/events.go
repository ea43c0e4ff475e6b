package domain

import "time"

// OrderSubmittedEvent 订单提交成功事件
type OrderSubmittedEvent struct {
	OrderID     string      `json:"order_id"`
	CartID      string      `json:"cart_id"`
	LocationID  string      `json:"location_id"`
	Type        OrderType   `json:"type"`
	ItemCount   int         `json:"item_count"`
	TotalAmount string      `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	Timestamp   time.Time   `json:"timestamp"`
}

// OrderCancelledEvent 订单取消事件
type OrderCancelledEvent struct {
	OrderID   string    `json:"order_id"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderStatusChangedEvent 订单状态变更事件
type OrderStatusChangedEvent struct {
	OrderID   string      `json:"order_id"`
	NewStatus OrderStatus `json:"new_status"`
	Timestamp time.Time   `json:"timestamp"`
}
