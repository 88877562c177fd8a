package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderState string

const (
	OrderPending    OrderState = "Pending"
	OrderConfirmed  OrderState = "Confirmed"
	OrderNoResponse OrderState = "No Response"
	OrderCancelled  OrderState = "Cancelled"
	OrderDelivered  OrderState = "Delivered"
)

func (s OrderState) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderNoResponse, OrderCancelled, OrderDelivered:
		return true
	}
	return false
}

type PaymentMethod string

const (
	CashOnDelivery PaymentMethod = "Cash on Delivery"
	CreditCard     PaymentMethod = "Credit Card"
	PayPal         PaymentMethod = "PayPal"
)

type Order struct {
	OrderID     uuid.UUID       `json:"id"`
	OrderNumber int64           `json:"order_number"`
	UserID      *int64          `json:"user_id,omitempty"`

	CustomerName    string  `json:"customer_name"`
	CustomerEmail   *string `json:"customer_email,omitempty"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerAddress string  `json:"customer_address"`
	City            string  `json:"city"`

	Color   string `json:"color,omitempty"`
	Size    string `json:"size,omitempty"`
	Options string `json:"options,omitempty"`

	PaymentMethod PaymentMethod   `json:"payment_method"`
	State         OrderState      `json:"state"`
	Total         decimal.Decimal `json:"total"`
	CouponUsed    bool            `json:"coupon_used"`
	IsCompleted   bool            `json:"is_completed"`
	CreatedAt     *time.Time      `json:"created_at,omitempty"`
}

// OrderLine snapshots a cart line at the time of purchase: quantity and the
// unit price the customer actually paid.
type OrderLine struct {
	OrderLineID int64           `json:"id"`
	OrderID     uuid.UUID       `json:"order_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// OrderResponse is what order placement returns to the client.
type OrderResponse struct {
	Order Order       `json:"order"`
	Items []OrderLine `json:"items"`
	Quote Quote       `json:"quote"`
}
