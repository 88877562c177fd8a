package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WishlistItem struct {
	ItemID    int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	ProductID uuid.UUID  `json:"product_id"`
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// resolved product fields for listing
	Name  string          `json:"name,omitempty"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image,omitempty"`
}
