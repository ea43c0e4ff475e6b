package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrPizzaNotFound 菜单中不存在该招牌披萨
	ErrPizzaNotFound = errors.New("specialty pizza not found")
)

// SpecialtyPizza 菜单中的招牌披萨：固定的默认配料组合，按尺寸定价。
// 配料修改（去掉/加量）不改变招牌披萨的单价。
type SpecialtyPizza struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Group       string                   `json:"group"`
	Description string                   `json:"description"`
	Toppings    []string                 `json:"toppings"`
	Price       map[Size]decimal.Decimal `json:"price"`
}

// UnitPrice 返回该披萨在给定尺寸下的单价。尺寸未定价则拒绝。
func (p *SpecialtyPizza) UnitPrice(size Size) (decimal.Decimal, error) {
	price, ok := p.Price[size]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrSizeNotPriced, size)
	}
	return price, nil
}

// TotalPrice 返回单价乘以份数的总价
func (p *SpecialtyPizza) TotalPrice(size Size, quantity int) (decimal.Decimal, error) {
	if quantity < 1 {
		return decimal.Zero, ErrInvalidQuantity
	}
	unit, err := p.UnitPrice(size)
	if err != nil {
		return decimal.Zero, err
	}
	return unit.Mul(decimal.NewFromInt(int64(quantity))), nil
}

// HasTopping 判断配料是否属于该披萨的默认配料
func (p *SpecialtyPizza) HasTopping(name string) bool {
	for _, t := range p.Toppings {
		if t == name {
			return true
		}
	}
	return false
}
