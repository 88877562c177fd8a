package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"StorefrontAPI/internal/model"

	"github.com/google/uuid"
)

type fakeOrderStore struct {
	orders     []*model.Order
	lastItems  []model.CartItem
	lastCoupon *int64
	states     map[uuid.UUID]model.OrderState
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{states: map[uuid.UUID]model.OrderState{}}
}

func (f *fakeOrderStore) Create(_ context.Context, o *model.Order, items []model.CartItem, couponID *int64) error {
	o.OrderID = uuid.New()
	o.OrderNumber = int64(len(f.orders)) + 1
	f.orders = append(f.orders, o)
	f.lastItems = items
	f.lastCoupon = couponID
	return nil
}

func (f *fakeOrderStore) GetByID(_ context.Context, orderID uuid.UUID) (*model.Order, error) {
	for _, o := range f.orders {
		if o.OrderID == orderID {
			return o, nil
		}
	}
	return nil, errors.New("order not found")
}

func (f *fakeOrderStore) GetLines(context.Context, uuid.UUID) ([]model.OrderLine, error) {
	return nil, nil
}

func (f *fakeOrderStore) ListByUser(context.Context, int64) ([]model.Order, error) {
	return nil, nil
}

func (f *fakeOrderStore) ListAll(context.Context, int, int) ([]model.Order, error) {
	return nil, nil
}

func (f *fakeOrderStore) SetState(_ context.Context, orderID uuid.UUID, state model.OrderState) error {
	f.states[orderID] = state
	return nil
}

type fakeUserFinder struct {
	users map[int64]*model.User
}

func (f *fakeUserFinder) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return u, nil
}

type orderFixture struct {
	svc     *OrderService
	store   *fakeOrderStore
	cart    *fakeCartStore
	coupons *fakeCouponStore
}

func newOrderFixture() *orderFixture {
	store := newFakeOrderStore()
	cart := newFakeCartStore()
	users := &fakeUserFinder{users: map[int64]*model.User{
		1: {UserID: 1, Username: "alice", Email: "alice@example.com"},
	}}
	couponStore := &fakeCouponStore{}
	pricing := NewPricingService(&fakeRuleStore{})
	svc := NewOrderService(store, cart, users, pricing, NewCouponService(couponStore, nil))
	return &orderFixture{svc: svc, store: store, cart: cart, coupons: couponStore}
}

func validInput() PlaceOrderInput {
	return PlaceOrderInput{
		CustomerName:    "Alice",
		CustomerPhone:   "0100000000",
		CustomerAddress: "5 Main St",
		City:            "Cairo",
	}
}

func TestPlaceValidatesCustomer(t *testing.T) {
	fx := newOrderFixture()

	for _, mutate := range []func(*PlaceOrderInput){
		func(in *PlaceOrderInput) { in.CustomerName = "" },
		func(in *PlaceOrderInput) { in.CustomerPhone = "" },
		func(in *PlaceOrderInput) { in.CustomerAddress = "" },
		func(in *PlaceOrderInput) { in.City = "" },
	} {
		in := validInput()
		mutate(&in)
		if _, err := fx.svc.Place(context.Background(), 1, in); !errors.Is(err, ErrValidation) {
			t.Fatalf("err = %v, want ErrValidation", err)
		}
	}
	if len(fx.store.orders) != 0 {
		t.Fatalf("orders created = %d, want 0", len(fx.store.orders))
	}
}

func TestPlaceRejectsBannedUser(t *testing.T) {
	fx := newOrderFixture()
	now := time.Now()
	fx.svc.Users = &fakeUserFinder{users: map[int64]*model.User{
		1: {UserID: 1, Username: "alice", DeletedAt: &now},
	}}

	if _, err := fx.svc.Place(context.Background(), 1, validInput()); !errors.Is(err, ErrUserBanned) {
		t.Fatalf("err = %v, want ErrUserBanned", err)
	}
}

func TestPlaceEmptyCart(t *testing.T) {
	fx := newOrderFixture()

	if _, err := fx.svc.Place(context.Background(), 1, validInput()); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
	if len(fx.store.orders) != 0 {
		t.Fatalf("orders created = %d, want 0", len(fx.store.orders))
	}
}

func TestPlaceMaterializesOrder(t *testing.T) {
	fx := newOrderFixture()
	productID := uuid.New()
	fx.cart.items = []model.CartItem{
		{LineID: 1, ProductID: productID, Name: "Desk Lamp", Price: dec("45"), Quantity: 2, Total: dec("90")},
		{LineID: 2, ProductID: uuid.New(), Name: "Rug", Price: dec("110"), Quantity: 1, Total: dec("110")},
	}

	resp, err := fx.svc.Place(context.Background(), 1, validInput())
	if err != nil {
		t.Fatalf("Place: %v", err)
	}

	if resp.Order.State != model.OrderPending {
		t.Fatalf("state = %q, want Pending", resp.Order.State)
	}
	if resp.Order.PaymentMethod != model.CashOnDelivery {
		t.Fatalf("payment = %q, want cash on delivery", resp.Order.PaymentMethod)
	}
	if resp.Order.Total.StringFixed(2) != "200.00" {
		t.Fatalf("total = %s, want 200.00", resp.Order.Total.StringFixed(2))
	}
	if len(resp.Items) != 2 {
		t.Fatalf("snapshot lines = %d, want 2", len(resp.Items))
	}
	if !resp.Items[0].UnitPrice.Equal(dec("45")) {
		t.Fatalf("unit price = %s, want 45", resp.Items[0].UnitPrice)
	}
	if fx.store.lastCoupon != nil {
		t.Fatal("no coupon was sent, none should be recorded")
	}
}

func TestPlaceOrderNumbersIncrease(t *testing.T) {
	fx := newOrderFixture()
	fx.cart.items = []model.CartItem{
		{LineID: 1, ProductID: uuid.New(), Name: "Rug", Price: dec("110"), Quantity: 1, Total: dec("110")},
	}

	first, err := fx.svc.Place(context.Background(), 1, validInput())
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	second, err := fx.svc.Place(context.Background(), 1, validInput())
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if second.Order.OrderNumber != first.Order.OrderNumber+1 {
		t.Fatalf("order numbers %d, %d; want consecutive", first.Order.OrderNumber, second.Order.OrderNumber)
	}
}

func TestPlaceWithCoupon(t *testing.T) {
	fx := newOrderFixture()
	fx.cart.items = []model.CartItem{
		{LineID: 1, ProductID: uuid.New(), Name: "Rug", Price: dec("100"), Quantity: 2, Total: dec("200")},
	}
	fx.coupons.coupon = &model.Coupon{CouponID: 7, Code: "SAVE10", DiscountPercent: dec("10")}

	in := validInput()
	in.CouponCode = "SAVE10"
	resp, err := fx.svc.Place(context.Background(), 1, in)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}

	// 200 subtotal minus a 10 percent coupon cut
	if resp.Order.Total.StringFixed(2) != "180.00" {
		t.Fatalf("total = %s, want 180.00", resp.Order.Total.StringFixed(2))
	}
	if !resp.Order.CouponUsed {
		t.Fatal("coupon_used not set")
	}
	if fx.store.lastCoupon == nil || *fx.store.lastCoupon != 7 {
		t.Fatalf("coupon id recorded = %v, want 7", fx.store.lastCoupon)
	}
}

func TestPlaceWithBadCoupon(t *testing.T) {
	fx := newOrderFixture()
	fx.cart.items = []model.CartItem{
		{LineID: 1, ProductID: uuid.New(), Name: "Rug", Price: dec("100"), Quantity: 1, Total: dec("100")},
	}

	in := validInput()
	in.CouponCode = "NOPE"
	if _, err := fx.svc.Place(context.Background(), 1, in); !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("err = %v, want ErrCouponNotFound", err)
	}
	if len(fx.store.orders) != 0 {
		t.Fatalf("orders created = %d, want 0", len(fx.store.orders))
	}
}

func TestSetStateRejectsUnknown(t *testing.T) {
	fx := newOrderFixture()

	if err := fx.svc.SetState(context.Background(), uuid.New(), "Shipped"); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("err = %v, want ErrInvalidState", err)
	}
}

func TestSetStateAccepted(t *testing.T) {
	fx := newOrderFixture()
	id := uuid.New()

	if err := fx.svc.SetState(context.Background(), id, model.OrderDelivered); err != nil {
		t.Fatalf("SetState: %v", err)
	}
	if fx.store.states[id] != model.OrderDelivered {
		t.Fatalf("state = %q, want Delivered", fx.store.states[id])
	}
}
