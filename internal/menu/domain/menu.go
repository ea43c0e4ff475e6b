// Package domain 包含菜单服务的领域模型：尺寸、配料、价格表
package domain

import "strings"

// Size 披萨尺寸
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Valid 判断尺寸是否合法
func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// ToppingQuantity 配料分量档位
type ToppingQuantity string

const (
	QuantityRegular ToppingQuantity = "regular"
	QuantityExtra   ToppingQuantity = "extra"
)

// Valid 判断分量档位是否合法
func (q ToppingQuantity) Valid() bool {
	return q == QuantityRegular || q == QuantityExtra
}

// Topping 一份配料选择：配料名（存储形式）加分量档位
type Topping struct {
	Name     string          `json:"name"`
	Quantity ToppingQuantity `json:"quantity"`
}

// ToppingDisplayName 将存储形式的配料名转为展示形式。
// 存储形式使用下划线（sun_dried_tomato），展示形式使用空格。
// 所有下划线都要替换，多下划线名称必须可以无损往返。
func ToppingDisplayName(wireName string) string {
	return strings.ReplaceAll(wireName, "_", " ")
}

// ToppingWireName 将展示形式的配料名转回存储形式
func ToppingWireName(displayName string) string {
	return strings.ReplaceAll(displayName, " ", "_")
}
