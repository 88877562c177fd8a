package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pricing rules. For each type the "current" rule is the most recently created
// active row; several rows may be flagged active, only the newest is read.

type Discount struct {
	DiscountID int64           `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percent    decimal.Decimal `json:"percent"`
	Active     bool            `json:"active"`
	CreatedAt  *time.Time      `json:"created_at,omitempty"`
}

type Tax struct {
	TaxID     int64           `json:"id"`
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	Active    bool            `json:"active"`
	CreatedAt *time.Time      `json:"created_at,omitempty"`
}

type ShippingFee struct {
	ShippingFeeID int64           `json:"id"`
	Region        string          `json:"region"`
	Cost          decimal.Decimal `json:"cost"`
	EstimatedDays int             `json:"estimated_days"`
	Active        bool            `json:"active"`
	CreatedAt     *time.Time      `json:"created_at,omitempty"`
}

type ServiceFee struct {
	ServiceFeeID int64           `json:"id"`
	Name         string          `json:"name"`
	Cost         decimal.Decimal `json:"cost"`
	Active       bool            `json:"active"`
	CreatedAt    *time.Time      `json:"created_at,omitempty"`
}

// Quote is the priced breakdown of a cart.
type Quote struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount_amount"`
	Tax        decimal.Decimal `json:"tax_amount"`
	Shipping   decimal.Decimal `json:"shipping_amount"`
	ServiceFee decimal.Decimal `json:"service_fee_amount"`
	Total      decimal.Decimal `json:"total"`
}
