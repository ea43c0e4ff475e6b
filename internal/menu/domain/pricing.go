package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrSizeNotPriced 价格表中没有该尺寸的基础价
	ErrSizeNotPriced = errors.New("size not present in pricing table")
	// ErrToppingNotPriced 价格表中没有该配料或该档位的价格
	ErrToppingNotPriced = errors.New("topping not present in pricing table")
	// ErrInvalidQuantity 份数必须大于等于 1
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// PricingTable 服务端下发的价格表：尺寸到基础价、配料到各档位增量价。
// 只读数据，随菜单一起获取。
type PricingTable struct {
	Size          map[Size]decimal.Decimal                       `json:"size"`
	ToppingPrices map[string]map[ToppingQuantity]decimal.Decimal `json:"toppingPrices"`
}

// BasePrice 返回尺寸的基础价。尺寸缺失视为不可购买，直接拒绝。
func (t *PricingTable) BasePrice(size Size) (decimal.Decimal, error) {
	price, ok := t.Size[size]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrSizeNotPriced, size)
	}
	return price, nil
}

// ToppingPrice 返回配料在给定档位的增量价。
// 配料或档位缺失同样视为不可购买，不做静默的零价处理。
func (t *PricingTable) ToppingPrice(name string, quantity ToppingQuantity) (decimal.Decimal, error) {
	tiers, ok := t.ToppingPrices[name]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrToppingNotPriced, name)
	}
	price, ok := tiers[quantity]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s (%s)", ErrToppingNotPriced, name, quantity)
	}
	return price, nil
}

// ComputeCustomPrice 计算自选披萨的总价：基础价加所有配料增量，再乘以份数。
// 纯函数，无副作用；尺寸、配料或份数变化后必须重新计算。
func ComputeCustomPrice(table *PricingTable, size Size, toppings []Topping, quantity int) (decimal.Decimal, error) {
	if quantity < 1 {
		return decimal.Zero, ErrInvalidQuantity
	}

	unit, err := table.BasePrice(size)
	if err != nil {
		return decimal.Zero, err
	}

	for _, topping := range toppings {
		increment, err := table.ToppingPrice(topping.Name, topping.Quantity)
		if err != nil {
			return decimal.Zero, err
		}
		unit = unit.Add(increment)
	}

	return unit.Mul(decimal.NewFromInt(int64(quantity))), nil
}
