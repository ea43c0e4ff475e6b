package domain

import (
	"errors"
	"fmt"

	menudomain "github.com/wyfcoding/pizzeria/internal/menu/domain"
)

// ErrToppingNotOnPizza 招牌披萨只能修改它默认自带的配料
var ErrToppingNotOnPizza = errors.New("topping is not part of this pizza")

// ToppingState 招牌披萨上单个配料的三态
type ToppingState int

const (
	ToppingRemoved ToppingState = iota
	ToppingRegular
	ToppingExtra
)

// ParseToppingState 解析请求中的配料状态
func ParseToppingState(s string) (ToppingState, error) {
	switch s {
	case "removed":
		return ToppingRemoved, nil
	case "regular":
		return ToppingRegular, nil
	case "extra":
		return ToppingExtra, nil
	}
	return ToppingRegular, fmt.Errorf("unknown topping state %q", s)
}

type toppingEntry struct {
	name  string
	state ToppingState
}

// SpecialtySelection 招牌披萨的配料修改状态。
// 由菜单默认配料初始化，每个配料都有显式三态；
// 不属于默认配料的名字不可加入。顺序跟随菜单定义。
type SpecialtySelection struct {
	entries []toppingEntry
}

// NewSpecialtySelection 以菜单默认配料初始化，全部置为 regular
func NewSpecialtySelection(defaults []string) *SpecialtySelection {
	entries := make([]toppingEntry, 0, len(defaults))
	for _, name := range defaults {
		entries = append(entries, toppingEntry{name: name, state: ToppingRegular})
	}
	return &SpecialtySelection{entries: entries}
}

// Set 修改单个配料的状态
func (s *SpecialtySelection) Set(name string, state ToppingState) error {
	for i := range s.entries {
		if s.entries[i].name == name {
			s.entries[i].state = state
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrToppingNotOnPizza, name)
}

// Toppings 输出保留的配料（regular 或 extra）。
// 与 Exclusions 互斥：一个配料名只会出现在其中一个列表里。
func (s *SpecialtySelection) Toppings() []menudomain.Topping {
	toppings := make([]menudomain.Topping, 0, len(s.entries))
	for _, e := range s.entries {
		switch e.state {
		case ToppingRegular:
			toppings = append(toppings, menudomain.Topping{Name: e.name, Quantity: menudomain.QuantityRegular})
		case ToppingExtra:
			toppings = append(toppings, menudomain.Topping{Name: e.name, Quantity: menudomain.QuantityExtra})
		}
	}
	return toppings
}

// Exclusions 输出被去掉的配料名
func (s *SpecialtySelection) Exclusions() []string {
	var excluded []string
	for _, e := range s.entries {
		if e.state == ToppingRemoved {
			excluded = append(excluded, e.name)
		}
	}
	return excluded
}

// CustomSelection 自选披萨的配料集合。
// 按配料名构成一个集合：重复设置原地替换档位，设为 none 则整体移除。
// 自选披萨没有排除列表的概念。
type CustomSelection struct {
	chosen []menudomain.Topping
}

// NewCustomSelection 创建空选择
func NewCustomSelection() *CustomSelection {
	return &CustomSelection{}
}

// Set 设置某个配料的档位；已存在时原地替换，不追加重复项
func (s *CustomSelection) Set(name string, quantity menudomain.ToppingQuantity) {
	for i := range s.chosen {
		if s.chosen[i].Name == name {
			s.chosen[i].Quantity = quantity
			return
		}
	}
	s.chosen = append(s.chosen, menudomain.Topping{Name: name, Quantity: quantity})
}

// Remove 将配料整体移出选择（对应 UI 的 none 档）
func (s *CustomSelection) Remove(name string) {
	for i := range s.chosen {
		if s.chosen[i].Name == name {
			s.chosen = append(s.chosen[:i], s.chosen[i+1:]...)
			return
		}
	}
}

// Toppings 输出当前选择，顺序为首次加入顺序
func (s *CustomSelection) Toppings() []menudomain.Topping {
	out := make([]menudomain.Topping, len(s.chosen))
	copy(out, s.chosen)
	return out
}
