package services

import (
	"context"
	"errors"
	"fmt"

	"StorefrontAPI/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrUserBanned   = errors.New("user is banned")
	ErrInvalidState = errors.New("invalid order state")
)

// OrderStore persists materialized orders.
type OrderStore interface {
	Create(ctx context.Context, o *model.Order, items []model.CartItem, couponID *int64) error
	GetByID(ctx context.Context, orderID uuid.UUID) (*model.Order, error)
	GetLines(ctx context.Context, orderID uuid.UUID) ([]model.OrderLine, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListAll(ctx context.Context, limit, offset int) ([]model.Order, error)
	SetState(ctx context.Context, orderID uuid.UUID, state model.OrderState) error
}

// UserFinder resolves an account; order placement rejects banned users.
type UserFinder interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

type PlaceOrderInput struct {
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   *string `json:"customer_email,omitempty"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerAddress string  `json:"customer_address"`
	City            string  `json:"city"`
	Color           string  `json:"color,omitempty"`
	Size            string  `json:"size,omitempty"`
	Options         string  `json:"options,omitempty"`
	CouponCode      string  `json:"coupon_code,omitempty"`
}

type OrderService struct {
	Store   OrderStore
	Cart    CartStore
	Users   UserFinder
	Pricing *PricingService
	Coupons *CouponService
}

func NewOrderService(store OrderStore, cart CartStore, users UserFinder, pricing *PricingService, coupons *CouponService) *OrderService {
	return &OrderService{Store: store, Cart: cart, Users: users, Pricing: pricing, Coupons: coupons}
}

// Place materializes the user's open cart lines into an order: one Pending
// cash-on-delivery order, line snapshots, flagged cart lines, bumped sales
// counters and (when a coupon rides along) one usage row — all committed
// together.
func (s *OrderService) Place(ctx context.Context, userID int64, in PlaceOrderInput) (*model.OrderResponse, error) {
	if err := validateCustomer(in); err != nil {
		return nil, err
	}

	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.DeletedAt != nil {
		return nil, ErrUserBanned
	}

	items, err := s.Cart.OpenLines(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	quote, err := s.Pricing.Quote(ctx, items)
	if err != nil {
		return nil, err
	}

	var couponID *int64
	couponUsed := false
	if in.CouponCode != "" {
		coupon, err := s.Coupons.Apply(ctx, in.CouponCode, userID)
		if err != nil {
			return nil, err
		}
		// coupon percent comes off the subtotal, on top of the rule pipeline
		couponCut := quote.Subtotal.Mul(coupon.DiscountPercent).Div(oneHundred)
		quote.Discount = quote.Discount.Add(couponCut)
		quote.Total = quote.Total.Sub(couponCut).Round(2)
		if quote.Total.IsNegative() {
			quote.Total = decimal.Zero
		}
		couponID = &coupon.CouponID
		couponUsed = true
	}

	order := &model.Order{
		UserID:          &userID,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		City:            in.City,
		Color:           in.Color,
		Size:            in.Size,
		Options:         in.Options,
		PaymentMethod:   model.CashOnDelivery,
		State:           model.OrderPending,
		Total:           quote.Total,
		CouponUsed:      couponUsed,
	}
	if err := s.Store.Create(ctx, order, items, couponID); err != nil {
		return nil, err
	}

	lines := make([]model.OrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, model.OrderLine{
			OrderID:   order.OrderID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Image:     it.Image,
			Quantity:  it.Quantity,
			UnitPrice: it.Price,
		})
	}
	return &model.OrderResponse{Order: *order, Items: lines, Quote: *quote}, nil
}

func validateCustomer(in PlaceOrderInput) error {
	switch {
	case in.CustomerName == "":
		return fmt.Errorf("%w: customer_name is required", ErrValidation)
	case in.CustomerPhone == "":
		return fmt.Errorf("%w: customer_phone is required", ErrValidation)
	case in.CustomerAddress == "":
		return fmt.Errorf("%w: customer_address is required", ErrValidation)
	case in.City == "":
		return fmt.Errorf("%w: city is required", ErrValidation)
	}
	return nil
}

func (s *OrderService) Get(ctx context.Context, orderID uuid.UUID) (*model.OrderResponse, error) {
	o, err := s.Store.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	lines, err := s.Store.GetLines(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &model.OrderResponse{Order: *o, Items: lines}, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return s.Store.ListByUser(ctx, userID)
}

func (s *OrderService) ListAll(ctx context.Context, limit, offset int) ([]model.Order, error) {
	return s.Store.ListAll(ctx, limit, offset)
}

// SetState moves an order through its lifecycle. Pending is the only entry
// state; Delivered latches is_completed on save.
func (s *OrderService) SetState(ctx context.Context, orderID uuid.UUID, state model.OrderState) error {
	if !state.Valid() {
		return ErrInvalidState
	}
	return s.Store.SetState(ctx, orderID, state)
}
