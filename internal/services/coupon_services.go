package services

import (
	"context"
	"errors"
	"time"

	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/repository"
)

var (
	ErrCouponNotFound    = errors.New("coupon not found")
	ErrCouponExpired     = errors.New("coupon expired")
	ErrCouponExhausted   = errors.New("coupon usage limit reached")
	ErrCouponAlreadyUsed = errors.New("coupon already redeemed")
)

// CouponStore is the persistence surface the redemption gate needs.
type CouponStore interface {
	GetActiveByCode(ctx context.Context, code string) (*model.Coupon, error)
	UsageExists(ctx context.Context, couponID, userID int64) (bool, error)
}

type CouponService struct {
	Store CouponStore
	Admin *repository.CouponRepository
}

func NewCouponService(store CouponStore, admin *repository.CouponRepository) *CouponService {
	return &CouponService{Store: store, Admin: admin}
}

// Apply checks whether the user may redeem the coupon and returns it. The
// usage row itself is written at order placement; the unique (coupon, user)
// constraint keeps concurrent redemptions down to one.
func (s *CouponService) Apply(ctx context.Context, code string, userID int64) (*model.Coupon, error) {
	c, err := s.Store.GetActiveByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCouponNotFound
	}

	now := time.Now()
	if c.ValidFrom != nil && now.Before(*c.ValidFrom) {
		return nil, ErrCouponExpired
	}
	if c.ValidTo != nil && now.After(*c.ValidTo) {
		return nil, ErrCouponExpired
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return nil, ErrCouponExhausted
	}

	used, err := s.Store.UsageExists(ctx, c.CouponID, userID)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, ErrCouponAlreadyUsed
	}
	return c, nil
}

// ===== admin management =====

func (s *CouponService) List(ctx context.Context) ([]model.Coupon, error) {
	return s.Admin.ListCoupons(ctx)
}

func (s *CouponService) Create(ctx context.Context, c *model.Coupon) (int64, error) {
	if c.Code == "" {
		return 0, errors.New("code is required")
	}
	if c.DiscountPercent.IsNegative() || c.DiscountPercent.GreaterThan(oneHundred) {
		return 0, errors.New("discount_percent must be between 0 and 100")
	}
	return s.Admin.CreateCoupon(ctx, c)
}

func (s *CouponService) Update(ctx context.Context, c *model.Coupon) error {
	if c.Code == "" {
		return errors.New("code is required")
	}
	if c.DiscountPercent.IsNegative() || c.DiscountPercent.GreaterThan(oneHundred) {
		return errors.New("discount_percent must be between 0 and 100")
	}
	return s.Admin.UpdateCoupon(ctx, c)
}

func (s *CouponService) Delete(ctx context.Context, id int64) error {
	return s.Admin.DeleteCoupon(ctx, id)
}
