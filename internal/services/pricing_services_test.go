package services

import (
	"context"
	"testing"

	"StorefrontAPI/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeRuleStore struct {
	discount *model.Discount
	tax      *model.Tax
	shipping *model.ShippingFee
	service  *model.ServiceFee
}

func (f *fakeRuleStore) CurrentDiscount(context.Context) (*model.Discount, error) {
	return f.discount, nil
}

func (f *fakeRuleStore) CurrentTax(context.Context) (*model.Tax, error) {
	return f.tax, nil
}

func (f *fakeRuleStore) CurrentShippingFee(context.Context) (*model.ShippingFee, error) {
	return f.shipping, nil
}

func (f *fakeRuleStore) CurrentServiceFee(context.Context) (*model.ServiceFee, error) {
	return f.service, nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestQuoteNoRules(t *testing.T) {
	svc := NewPricingService(&fakeRuleStore{})

	q, err := svc.Quote(context.Background(), []model.CartItem{
		{Price: dec("50"), Quantity: 2},
	})
	require.NoError(t, err)

	require.Equal(t, "100.00", q.Subtotal.StringFixed(2))
	require.True(t, q.Discount.IsZero())
	require.True(t, q.Tax.IsZero())
	require.Equal(t, "100.00", q.Total.StringFixed(2))
}

func TestQuoteFullRuleSet(t *testing.T) {
	svc := NewPricingService(&fakeRuleStore{
		discount: &model.Discount{Percent: dec("10")},
		tax:      &model.Tax{Rate: dec("20")},
		shipping: &model.ShippingFee{Cost: dec("15")},
		service:  &model.ServiceFee{Cost: dec("5")},
	})

	q, err := svc.Quote(context.Background(), []model.CartItem{
		{Price: dec("100"), Quantity: 2},
	})
	require.NoError(t, err)

	require.Equal(t, "200.00", q.Subtotal.StringFixed(2))
	require.Equal(t, "20.00", q.Discount.StringFixed(2))
	require.Equal(t, "36.00", q.Tax.StringFixed(2))
	require.Equal(t, "15.00", q.Shipping.StringFixed(2))
	require.Equal(t, "5.00", q.ServiceFee.StringFixed(2))
	// 236 plus the historical flat addend of the tax rate
	require.Equal(t, "256.00", q.Total.StringFixed(2))
}

func TestQuoteAmountDiscount(t *testing.T) {
	svc := NewPricingService(&fakeRuleStore{
		discount: &model.Discount{Amount: dec("30")},
	})

	q, err := svc.Quote(context.Background(), []model.CartItem{
		{Price: dec("100"), Quantity: 1},
	})
	require.NoError(t, err)

	require.Equal(t, "30.00", q.Discount.StringFixed(2))
	require.Equal(t, "70.00", q.Total.StringFixed(2))
}

func TestQuotePercentWinsOverAmount(t *testing.T) {
	svc := NewPricingService(&fakeRuleStore{
		discount: &model.Discount{Percent: dec("50"), Amount: dec("99")},
	})

	q, err := svc.Quote(context.Background(), []model.CartItem{
		{Price: dec("100"), Quantity: 1},
	})
	require.NoError(t, err)

	require.Equal(t, "50.00", q.Discount.StringFixed(2))
}

func TestQuoteRoundsToCents(t *testing.T) {
	svc := NewPricingService(&fakeRuleStore{})

	q, err := svc.Quote(context.Background(), []model.CartItem{
		{Price: dec("3.333"), Quantity: 3},
	})
	require.NoError(t, err)

	require.Equal(t, "10.00", q.Total.StringFixed(2))
}

func TestQuoteEmptyCart(t *testing.T) {
	svc := NewPricingService(&fakeRuleStore{
		tax: &model.Tax{Rate: dec("20")},
	})

	q, err := svc.Quote(context.Background(), nil)
	require.NoError(t, err)

	require.True(t, q.Subtotal.IsZero())
	// the flat addend applies even to an empty quote
	require.Equal(t, "20.00", q.Total.StringFixed(2))
}
