package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID    uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Price        decimal.Decimal  `json:"price"`
	OldPrice     *decimal.Decimal `json:"old_price,omitempty"`
	Discount     decimal.Decimal  `json:"discount"`
	Description1 string           `json:"description_1"`
	Description2 *string          `json:"description_2,omitempty"`
	Description3 *string          `json:"description_3,omitempty"`
	Image        string           `json:"image_1"`
	IsActive     bool             `json:"is_active"`
	SalesCount   int              `json:"sales_count"`
	CategoryIDs  []int64          `json:"categories,omitempty"`
	OptionIDs    []int64          `json:"options,omitempty"`
	CreatedAt    *time.Time       `json:"created_at,omitempty"`
	UpdatedAt    *time.Time       `json:"updated_at,omitempty"`

	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}

type Category struct {
	CategoryID int64  `json:"id"`
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
}

// Option is a selectable product attribute (e.g. "Gift wrap").
type Option struct {
	OptionID int64  `json:"id"`
	Name     string `json:"name"`
}

type Rating struct {
	RatingID  uuid.UUID  `json:"id"`
	ProductID uuid.UUID  `json:"product_id"`
	Name      string     `json:"name"`
	Email     *string    `json:"email,omitempty"`
	Rating    int        `json:"rating"`
	Review    *string    `json:"review,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ProductFilter holds the shop listing query parameters.
type ProductFilter struct {
	CategoryID *int64
	OptionID   *int64
	PriceMin   *decimal.Decimal
	PriceMax   *decimal.Decimal
	Name       string
	Limit      int
	Offset     int
}
