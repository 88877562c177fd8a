package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"StorefrontAPI/internal/model"
)

type fakeCouponStore struct {
	coupon *model.Coupon
	used   bool
}

func (f *fakeCouponStore) GetActiveByCode(_ context.Context, code string) (*model.Coupon, error) {
	if f.coupon != nil && f.coupon.Code == code {
		return f.coupon, nil
	}
	return nil, nil
}

func (f *fakeCouponStore) UsageExists(context.Context, int64, int64) (bool, error) {
	return f.used, nil
}

func TestApplyUnknownCode(t *testing.T) {
	svc := NewCouponService(&fakeCouponStore{}, nil)

	if _, err := svc.Apply(context.Background(), "NOPE", 1); !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("err = %v, want ErrCouponNotFound", err)
	}
}

func TestApplyOutsideWindow(t *testing.T) {
	past := time.Now().Add(-48 * time.Hour)
	future := time.Now().Add(48 * time.Hour)

	cases := []struct {
		name string
		from *time.Time
		to   *time.Time
	}{
		{"not yet valid", &future, nil},
		{"expired", nil, &past},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewCouponService(&fakeCouponStore{coupon: &model.Coupon{
				CouponID:        1,
				Code:            "SAVE10",
				DiscountPercent: dec("10"),
				ValidFrom:       tc.from,
				ValidTo:         tc.to,
			}}, nil)

			if _, err := svc.Apply(context.Background(), "SAVE10", 1); !errors.Is(err, ErrCouponExpired) {
				t.Fatalf("err = %v, want ErrCouponExpired", err)
			}
		})
	}
}

func TestApplyExhausted(t *testing.T) {
	svc := NewCouponService(&fakeCouponStore{coupon: &model.Coupon{
		CouponID:        1,
		Code:            "SAVE10",
		DiscountPercent: dec("10"),
		UsageLimit:      5,
		UsedCount:       5,
	}}, nil)

	if _, err := svc.Apply(context.Background(), "SAVE10", 1); !errors.Is(err, ErrCouponExhausted) {
		t.Fatalf("err = %v, want ErrCouponExhausted", err)
	}
}

func TestApplyAlreadyRedeemed(t *testing.T) {
	svc := NewCouponService(&fakeCouponStore{
		coupon: &model.Coupon{CouponID: 1, Code: "SAVE10", DiscountPercent: dec("10")},
		used:   true,
	}, nil)

	if _, err := svc.Apply(context.Background(), "SAVE10", 1); !errors.Is(err, ErrCouponAlreadyUsed) {
		t.Fatalf("err = %v, want ErrCouponAlreadyUsed", err)
	}
}

func TestApplyAccepts(t *testing.T) {
	from := time.Now().Add(-time.Hour)
	to := time.Now().Add(time.Hour)
	svc := NewCouponService(&fakeCouponStore{coupon: &model.Coupon{
		CouponID:        7,
		Code:            "SAVE10",
		DiscountPercent: dec("10"),
		UsageLimit:      100,
		UsedCount:       3,
		ValidFrom:       &from,
		ValidTo:         &to,
	}}, nil)

	c, err := svc.Apply(context.Background(), "SAVE10", 1)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if c.CouponID != 7 {
		t.Fatalf("coupon id = %d, want 7", c.CouponID)
	}
}

func TestApplyNoUsageLimit(t *testing.T) {
	svc := NewCouponService(&fakeCouponStore{coupon: &model.Coupon{
		CouponID:        2,
		Code:            "FOREVER",
		DiscountPercent: dec("5"),
		UsageLimit:      0,
		UsedCount:       9999,
	}}, nil)

	if _, err := svc.Apply(context.Background(), "FOREVER", 1); err != nil {
		t.Fatalf("Apply: %v", err)
	}
}
