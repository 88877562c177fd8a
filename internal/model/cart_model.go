package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Cart struct {
	CartID    uuid.UUID  `json:"id"`
	UserID    int64      `json:"user_id"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// CartLine is one product-plus-variant-plus-quantity entry. Ordered flips to
// true exactly once, at order placement; restoring the line to the cart is the
// only way back.
type CartLine struct {
	LineID    int64     `json:"id"`
	CartID    uuid.UUID `json:"cart_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Color     string    `json:"color,omitempty"`
	Size      string    `json:"size,omitempty"`
	Options   string    `json:"options,omitempty"`
	Ordered   bool      `json:"ordered"`
}

// CartItem is what the API exposes (line joined with the product).
type CartItem struct {
	LineID    int64           `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
	Color     string          `json:"color,omitempty"`
	Size      string          `json:"size,omitempty"`
	Options   string          `json:"options,omitempty"`
	Total     decimal.Decimal `json:"total"`
}

// CartResponse is returned when calling GET /cart
type CartResponse struct {
	Items []CartItem `json:"items"`
	Quote *Quote     `json:"quote,omitempty"`
}
