package services

import (
	"context"
	"errors"

	"StorefrontAPI/internal/model"

	"github.com/google/uuid"
)

var (
	ErrAlreadyInCart = errors.New("product already in your cart")
	ErrBadQuantity   = errors.New("quantity must be > 0")
)

// CartStore is the persistence surface the cart logic needs.
type CartStore interface {
	GetOrCreateCart(ctx context.Context, userID int64) (uuid.UUID, error)
	FindLine(ctx context.Context, cartID, productID uuid.UUID, color, size, options string) (*model.CartLine, error)
	InsertLine(ctx context.Context, l *model.CartLine) (int64, error)
	RestoreLine(ctx context.Context, lineID int64, quantity int) error
	GetLine(ctx context.Context, userID, lineID int64) (*model.CartLine, error)
	SetQuantity(ctx context.Context, lineID int64, quantity int) error
	DeleteLine(ctx context.Context, lineID int64) error
	OpenLines(ctx context.Context, userID int64) ([]model.CartItem, error)
}

// ProductFinder resolves a product by id.
type ProductFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
}

type CartService struct {
	Store    CartStore
	Products ProductFinder
	Pricing  *PricingService
}

func NewCartService(store CartStore, products ProductFinder, pricing *PricingService) *CartService {
	return &CartService{Store: store, Products: products, Pricing: pricing}
}

// AddLine puts a product variant into the user's cart. Adding the exact same
// (product, color, size, options) tuple again is a no-op; if the matching line
// was already ordered it is restored into the active cart instead.
func (s *CartService) AddLine(ctx context.Context, userID int64, productID uuid.UUID, quantity int, color, size, options string) (*model.CartLine, error) {
	if quantity <= 0 {
		quantity = 1
	}

	if _, err := s.Products.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	cartID, err := s.Store.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.Store.FindLine(ctx, cartID, productID, color, size, options)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if !existing.Ordered {
			return existing, ErrAlreadyInCart
		}
		// recovery path: bring a purchased line back into the cart
		if err := s.Store.RestoreLine(ctx, existing.LineID, quantity); err != nil {
			return nil, err
		}
		existing.Ordered = false
		existing.Quantity = quantity
		return existing, nil
	}

	line := &model.CartLine{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
		Color:     color,
		Size:      size,
		Options:   options,
	}
	id, err := s.Store.InsertLine(ctx, line)
	if err != nil {
		return nil, err
	}
	line.LineID = id
	return line, nil
}

// ChangeQuantity applies a delta to a line; the line is deleted when the
// resulting quantity drops to zero or below.
func (s *CartService) ChangeQuantity(ctx context.Context, userID, lineID int64, delta int) error {
	line, err := s.Store.GetLine(ctx, userID, lineID)
	if err != nil {
		return err
	}
	qty := line.Quantity + delta
	if qty <= 0 {
		return s.Store.DeleteLine(ctx, line.LineID)
	}
	return s.Store.SetQuantity(ctx, line.LineID, qty)
}

// SetQuantity sets an absolute quantity; zero or below removes the line.
func (s *CartService) SetQuantity(ctx context.Context, userID, lineID int64, quantity int) error {
	line, err := s.Store.GetLine(ctx, userID, lineID)
	if err != nil {
		return err
	}
	if quantity <= 0 {
		return s.Store.DeleteLine(ctx, line.LineID)
	}
	return s.Store.SetQuantity(ctx, line.LineID, quantity)
}

func (s *CartService) RemoveLine(ctx context.Context, userID, lineID int64) error {
	line, err := s.Store.GetLine(ctx, userID, lineID)
	if err != nil {
		return err
	}
	return s.Store.DeleteLine(ctx, line.LineID)
}

// Get returns the cart items plus a priced quote.
func (s *CartService) Get(ctx context.Context, userID int64) (*model.CartResponse, error) {
	items, err := s.Store.OpenLines(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.CartItem{}
	}
	quote, err := s.Pricing.Quote(ctx, items)
	if err != nil {
		return nil, err
	}
	return &model.CartResponse{Items: items, Quote: quote}, nil
}
