package domain

import (
	"strings"

	menudomain "github.com/wyfcoding/pizzeria/internal/menu/domain"
)

// SummarizeToppings 生成购物车行项的配料描述文本。
// extra 档配料加 "extra " 前缀，被去掉的默认配料以 "no X" 形式列出。
// 同名配料出现多次时折叠为一条 extra，而不是重复列出。
func SummarizeToppings(toppings []menudomain.Topping, exclusions []string) string {
	parts := make([]string, 0, len(toppings)+len(exclusions))
	index := make(map[string]int, len(toppings))

	for _, t := range toppings {
		name := menudomain.ToppingDisplayName(t.Name)
		label := name
		if t.Quantity == menudomain.QuantityExtra {
			label = "extra " + name
		}

		if i, seen := index[t.Name]; seen {
			parts[i] = "extra " + name
			continue
		}
		index[t.Name] = len(parts)
		parts = append(parts, label)
	}

	for _, name := range exclusions {
		parts = append(parts, "no "+menudomain.ToppingDisplayName(name))
	}
	return strings.Join(parts, ", ")
}
