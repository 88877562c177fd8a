package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Coupon struct {
	CouponID        int64           `json:"id"`
	Code            string          `json:"code"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Active          bool            `json:"active"`
	UsageLimit      int             `json:"usage_limit"`
	UsedCount       int             `json:"used_count"`
	ValidFrom       *time.Time      `json:"valid_from,omitempty"`
	ValidTo         *time.Time      `json:"valid_to,omitempty"`
	CreatedAt       *time.Time      `json:"created_at,omitempty"`
}

// CouponUsage records one redemption; (coupon, user) is unique so a user can
// redeem a given coupon at most once.
type CouponUsage struct {
	CouponID int64      `json:"coupon_id"`
	UserID   int64      `json:"user_id"`
	UsedAt   *time.Time `json:"used_at,omitempty"`
}
