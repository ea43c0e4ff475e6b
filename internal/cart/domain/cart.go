// Package domain 包含购物车的领域模型：行项目、配料选择与派生总价
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	menudomain "github.com/wyfcoding/pizzeria/internal/menu/domain"
)

var (
	// ErrInvalidQuantity 行项目份数必须大于等于 1
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrItemNotFound 购物车中不存在该行项目
	ErrItemNotFound = errors.New("cart item not found")
	// ErrInvalidSize 尺寸必须是 small、medium 或 large
	ErrInvalidSize = errors.New("invalid pizza size")
)

// PizzaType 披萨类型：招牌或自选
type PizzaType string

const (
	PizzaTypeSpecialty PizzaType = "specialty"
	PizzaTypeCustom    PizzaType = "custom"
)

// Pizza 一个配置完成的披萨。
// TotalPrice 是派生值（单价乘份数），必须始终与尺寸、配料、份数保持一致。
type Pizza struct {
	Name              string               `json:"name"`
	Type              PizzaType            `json:"type"`
	Size              menudomain.Size      `json:"size"`
	Toppings          []menudomain.Topping `json:"toppings"`
	ToppingExclusions []string             `json:"toppingExclusions,omitempty"`
	Quantity          int                  `json:"quantity"`
	TotalPrice        decimal.Decimal      `json:"totalPrice"`
}

// UnitPrice 返回单价（总价除以份数）
func (p *Pizza) UnitPrice() decimal.Decimal {
	if p.Quantity < 1 {
		return decimal.Zero
	}
	return p.TotalPrice.Div(decimal.NewFromInt(int64(p.Quantity)))
}

// LineItem 购物车中的一行：客户端生成的唯一 ID 加一个披萨配置。
// 同样的披萨配置允许作为多个独立行存在。
type LineItem struct {
	ID    string `json:"id"`
	Pizza Pizza  `json:"pizza"`
}

// Cart 购物车聚合。行项目按插入顺序保存。
type Cart struct {
	ID        string     `json:"id"`
	Items     []LineItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// NewCart 创建空购物车
func NewCart(id string) *Cart {
	return &Cart{ID: id, UpdatedAt: time.Now()}
}

// TotalAmount 购物车总金额，每次读取时重新计算，从不单独存储
func (c *Cart) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Pizza.TotalPrice)
	}
	return total
}

// AddItem 追加一个行项目。不去重，相同配置允许重复出现。
func (c *Cart) AddItem(item LineItem) {
	c.Items = append(c.Items, item)
	c.UpdatedAt = time.Now()
}

// RemoveItem 删除指定行项目。ID 不存在时静默忽略。
func (c *Cart) RemoveItem(id string) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now()
			return
		}
	}
}

// Item 按 ID 查找行项目
func (c *Cart) Item(id string) (*LineItem, bool) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i], true
		}
	}
	return nil, false
}

// UpdateQuantity 修改行项目份数并按单价重新缩放总价。
// 单价由当前总价除以当前份数得出，不回查价格表。
func (c *Cart) UpdateQuantity(id string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	item, ok := c.Item(id)
	if !ok {
		return ErrItemNotFound
	}

	unit := item.Pizza.UnitPrice()
	item.Pizza.Quantity = quantity
	item.Pizza.TotalPrice = unit.Mul(decimal.NewFromInt(int64(quantity)))
	c.UpdatedAt = time.Now()
	return nil
}

// Clear 清空购物车
func (c *Cart) Clear() {
	c.Items = nil
	c.UpdatedAt = time.Now()
}

// Empty 判断购物车是否为空
func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}
