package services

import (
	"context"

	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/repository"

	"github.com/google/uuid"
)

type WishlistService struct {
	Repo     *repository.WishlistRepository
	Products ProductFinder
}

func NewWishlistService(r *repository.WishlistRepository, products ProductFinder) *WishlistService {
	return &WishlistService{Repo: r, Products: products}
}

// Add saves a product to the user's wishlist. Added is false when the product
// was already there; callers treat that as an informational success.
func (s *WishlistService) Add(ctx context.Context, userID int64, productID uuid.UUID) (added bool, err error) {
	if _, err := s.Products.GetByID(ctx, productID); err != nil {
		return false, err
	}
	return s.Repo.Add(ctx, userID, productID)
}

func (s *WishlistService) Remove(ctx context.Context, userID int64, productID uuid.UUID) error {
	return s.Repo.Remove(ctx, userID, productID)
}

func (s *WishlistService) List(ctx context.Context, userID int64) ([]model.WishlistItem, error) {
	return s.Repo.List(ctx, userID)
}
