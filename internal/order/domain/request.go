package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyOrder 空购物车不能提交订单
	ErrEmptyOrder = errors.New("order must contain at least one item")
	// ErrMissingAddress 配送订单必须带收货地址
	ErrMissingAddress = errors.New("delivery order requires an address")
	// ErrUnexpectedAddress 自取订单不携带地址
	ErrUnexpectedAddress = errors.New("pickup order must not carry an address")
	// ErrMissingCard 刷卡支付必须带卡信息
	ErrMissingCard = errors.New("card payment requires card details")
	// ErrUnexpectedCard 现金支付不携带卡信息
	ErrUnexpectedCard = errors.New("cash payment must not carry card details")
	// ErrMissingCustomer 订单必须有客户姓名和电话
	ErrMissingCustomer = errors.New("customer name and phone are required")
	// ErrNotCancellable 订单当前状态不允许取消
	ErrNotCancellable = errors.New("order can no longer be cancelled")
)

// OrderType 履约方式
type OrderType string

const (
	OrderTypePickup   OrderType = "pickup"
	OrderTypeDelivery OrderType = "delivery"
)

// PaymentMethod 支付方式
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentCash       PaymentMethod = "cash"
)

// Address 配送地址
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Customer 下单客户。Address 仅在配送订单上出现。
type Customer struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email,omitempty"`
	Address *Address `json:"address,omitempty"`
}

// CardDetails 刷卡支付信息。仅在刷卡订单上出现。
type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// OrderRequest 向外部 API 提交的订单。
// 通过构造函数组装，保证履约方式与字段组合始终合法：
// 自取订单没有地址，现金订单没有卡信息。
type OrderRequest struct {
	LocationID  string          `json:"locationId"`
	Items       []OrderItem     `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Type        OrderType       `json:"type"`
	Payment     PaymentMethod   `json:"payment"`
	Customer    Customer        `json:"customer"`
	Card        *CardDetails    `json:"card,omitempty"`
}

// NewPickupOrder 组装自取订单
func NewPickupOrder(locationID string, items []OrderItem, total decimal.Decimal, customer Customer) *OrderRequest {
	customer.Address = nil
	return &OrderRequest{
		LocationID:  locationID,
		Items:       items,
		TotalAmount: total,
		Type:        OrderTypePickup,
		Payment:     PaymentCash,
		Customer:    customer,
	}
}

// NewDeliveryOrder 组装配送订单
func NewDeliveryOrder(locationID string, items []OrderItem, total decimal.Decimal, customer Customer, address Address) *OrderRequest {
	customer.Address = &address
	return &OrderRequest{
		LocationID:  locationID,
		Items:       items,
		TotalAmount: total,
		Type:        OrderTypeDelivery,
		Payment:     PaymentCash,
		Customer:    customer,
	}
}

// WithCardPayment 切换为刷卡支付
func (r *OrderRequest) WithCardPayment(card CardDetails) *OrderRequest {
	r.Payment = PaymentCreditCard
	r.Card = &card
	return r
}

// WithCashPayment 切换为现金支付
func (r *OrderRequest) WithCashPayment() *OrderRequest {
	r.Payment = PaymentCash
	r.Card = nil
	return r
}

// Validate 校验订单的字段组合
func (r *OrderRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrEmptyOrder
	}
	if r.Customer.Name == "" || r.Customer.Phone == "" {
		return ErrMissingCustomer
	}

	switch r.Type {
	case OrderTypeDelivery:
		if r.Customer.Address == nil {
			return ErrMissingAddress
		}
	case OrderTypePickup:
		if r.Customer.Address != nil {
			return ErrUnexpectedAddress
		}
	default:
		return errors.New("unknown order type")
	}

	switch r.Payment {
	case PaymentCreditCard:
		if r.Card == nil {
			return ErrMissingCard
		}
	case PaymentCash:
		if r.Card != nil {
			return ErrUnexpectedCard
		}
	default:
		return errors.New("unknown payment method")
	}
	return nil
}
