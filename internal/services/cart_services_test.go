package services

import (
	"context"
	"errors"
	"testing"

	"StorefrontAPI/internal/model"

	"github.com/google/uuid"
)

type fakeCartStore struct {
	cartID  uuid.UUID
	nextID  int64
	lines   map[int64]*model.CartLine
	items   []model.CartItem
	deleted []int64
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{cartID: uuid.New(), lines: map[int64]*model.CartLine{}}
}

func (f *fakeCartStore) GetOrCreateCart(context.Context, int64) (uuid.UUID, error) {
	return f.cartID, nil
}

func (f *fakeCartStore) FindLine(_ context.Context, cartID, productID uuid.UUID, color, size, options string) (*model.CartLine, error) {
	for _, l := range f.lines {
		if l.CartID == cartID && l.ProductID == productID && l.Color == color && l.Size == size && l.Options == options {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeCartStore) InsertLine(_ context.Context, l *model.CartLine) (int64, error) {
	f.nextID++
	cp := *l
	cp.LineID = f.nextID
	f.lines[cp.LineID] = &cp
	return cp.LineID, nil
}

func (f *fakeCartStore) RestoreLine(_ context.Context, lineID int64, quantity int) error {
	l, ok := f.lines[lineID]
	if !ok {
		return errors.New("line not found")
	}
	l.Ordered = false
	l.Quantity = quantity
	return nil
}

func (f *fakeCartStore) GetLine(_ context.Context, _ int64, lineID int64) (*model.CartLine, error) {
	l, ok := f.lines[lineID]
	if !ok {
		return nil, errors.New("line not found")
	}
	return l, nil
}

func (f *fakeCartStore) SetQuantity(_ context.Context, lineID int64, quantity int) error {
	l, ok := f.lines[lineID]
	if !ok {
		return errors.New("line not found")
	}
	l.Quantity = quantity
	return nil
}

func (f *fakeCartStore) DeleteLine(_ context.Context, lineID int64) error {
	if _, ok := f.lines[lineID]; !ok {
		return errors.New("line not found")
	}
	delete(f.lines, lineID)
	f.deleted = append(f.deleted, lineID)
	return nil
}

func (f *fakeCartStore) OpenLines(context.Context, int64) ([]model.CartItem, error) {
	return f.items, nil
}

type fakeProductFinder struct {
	products map[uuid.UUID]*model.Product
}

func (f *fakeProductFinder) GetByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, errors.New("product not found")
	}
	return p, nil
}

func newCartFixture() (*CartService, *fakeCartStore, uuid.UUID) {
	store := newFakeCartStore()
	productID := uuid.New()
	finder := &fakeProductFinder{products: map[uuid.UUID]*model.Product{
		productID: {ProductID: productID, Name: "Desk Lamp", Price: dec("45")},
	}}
	pricing := NewPricingService(&fakeRuleStore{})
	return NewCartService(store, finder, pricing), store, productID
}

func TestAddLineDefaultsQuantity(t *testing.T) {
	svc, store, productID := newCartFixture()

	line, err := svc.AddLine(context.Background(), 1, productID, 0, "", "", "")
	if err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	if line.Quantity != 1 {
		t.Fatalf("quantity = %d, want 1", line.Quantity)
	}
	if len(store.lines) != 1 {
		t.Fatalf("stored lines = %d, want 1", len(store.lines))
	}
}

func TestAddLineUnknownProduct(t *testing.T) {
	svc, store, _ := newCartFixture()

	if _, err := svc.AddLine(context.Background(), 1, uuid.New(), 1, "", "", ""); err == nil {
		t.Fatal("expected error for unknown product")
	}
	if len(store.lines) != 0 {
		t.Fatalf("stored lines = %d, want 0", len(store.lines))
	}
}

func TestAddLineDuplicateVariant(t *testing.T) {
	svc, _, productID := newCartFixture()

	first, err := svc.AddLine(context.Background(), 1, productID, 2, "red", "M", "")
	if err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	line, err := svc.AddLine(context.Background(), 1, productID, 5, "red", "M", "")
	if !errors.Is(err, ErrAlreadyInCart) {
		t.Fatalf("err = %v, want ErrAlreadyInCart", err)
	}
	if line.LineID != first.LineID {
		t.Fatalf("line id = %d, want %d", line.LineID, first.LineID)
	}
	if line.Quantity != 2 {
		t.Fatalf("quantity = %d, want untouched 2", line.Quantity)
	}
}

func TestAddLineDifferentVariantIsNewLine(t *testing.T) {
	svc, store, productID := newCartFixture()

	if _, err := svc.AddLine(context.Background(), 1, productID, 1, "red", "M", ""); err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	if _, err := svc.AddLine(context.Background(), 1, productID, 1, "blue", "M", ""); err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	if len(store.lines) != 2 {
		t.Fatalf("stored lines = %d, want 2", len(store.lines))
	}
}

func TestAddLineRestoresOrderedLine(t *testing.T) {
	svc, store, productID := newCartFixture()

	first, err := svc.AddLine(context.Background(), 1, productID, 1, "", "", "")
	if err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	store.lines[first.LineID].Ordered = true

	line, err := svc.AddLine(context.Background(), 1, productID, 3, "", "", "")
	if err != nil {
		t.Fatalf("AddLine after order: %v", err)
	}
	if line.LineID != first.LineID {
		t.Fatalf("line id = %d, want restored %d", line.LineID, first.LineID)
	}
	if line.Ordered {
		t.Fatal("line still flagged ordered")
	}
	if store.lines[first.LineID].Quantity != 3 {
		t.Fatalf("quantity = %d, want 3", store.lines[first.LineID].Quantity)
	}
}

func TestChangeQuantityDelta(t *testing.T) {
	svc, store, productID := newCartFixture()

	line, _ := svc.AddLine(context.Background(), 1, productID, 2, "", "", "")

	if err := svc.ChangeQuantity(context.Background(), 1, line.LineID, 3); err != nil {
		t.Fatalf("ChangeQuantity: %v", err)
	}
	if store.lines[line.LineID].Quantity != 5 {
		t.Fatalf("quantity = %d, want 5", store.lines[line.LineID].Quantity)
	}
}

func TestChangeQuantityToZeroDeletes(t *testing.T) {
	svc, store, productID := newCartFixture()

	line, _ := svc.AddLine(context.Background(), 1, productID, 2, "", "", "")

	if err := svc.ChangeQuantity(context.Background(), 1, line.LineID, -2); err != nil {
		t.Fatalf("ChangeQuantity: %v", err)
	}
	if _, ok := store.lines[line.LineID]; ok {
		t.Fatal("line should have been deleted")
	}
}

func TestSetQuantityNeverNegative(t *testing.T) {
	svc, store, productID := newCartFixture()

	line, _ := svc.AddLine(context.Background(), 1, productID, 2, "", "", "")

	if err := svc.SetQuantity(context.Background(), 1, line.LineID, -4); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	if _, ok := store.lines[line.LineID]; ok {
		t.Fatal("line should have been deleted, not left negative")
	}
}

func TestGetPricesCart(t *testing.T) {
	svc, store, productID := newCartFixture()
	store.items = []model.CartItem{
		{LineID: 1, ProductID: productID, Name: "Desk Lamp", Price: dec("45"), Quantity: 2, Total: dec("90")},
	}

	resp, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(resp.Items))
	}
	if resp.Quote == nil || resp.Quote.Subtotal.StringFixed(2) != "90.00" {
		t.Fatalf("quote subtotal = %v, want 90.00", resp.Quote)
	}
}
