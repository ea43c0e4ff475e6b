package domain

import "time"

// CartItemAddedEvent 购物车添加行项事件
type CartItemAddedEvent struct {
	CartID     string    `json:"cart_id"`
	ItemID     string    `json:"item_id"`
	PizzaName  string    `json:"pizza_name"`
	PizzaType  PizzaType `json:"pizza_type"`
	Quantity   int       `json:"quantity"`
	TotalPrice string    `json:"total_price"`
	Timestamp  time.Time `json:"timestamp"`
}

// CartItemRemovedEvent 购物车移除行项事件
type CartItemRemovedEvent struct {
	CartID    string    `json:"cart_id"`
	ItemID    string    `json:"item_id"`
	Timestamp time.Time `json:"timestamp"`
}

// CartQuantityUpdatedEvent 购物车行项数量变更事件
type CartQuantityUpdatedEvent struct {
	CartID      string    `json:"cart_id"`
	ItemID      string    `json:"item_id"`
	OldQuantity int       `json:"old_quantity"`
	NewQuantity int       `json:"new_quantity"`
	Timestamp   time.Time `json:"timestamp"`
}

// CartClearedEvent 购物车清空事件
type CartClearedEvent struct {
	CartID    string    `json:"cart_id"`
	Timestamp time.Time `json:"timestamp"`
}
