package services

import (
	"context"
	"errors"

	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/repository"
)

type StorefrontService struct {
	Repo *repository.StorefrontRepository
}

func NewStorefrontService(r *repository.StorefrontRepository) *StorefrontService {
	return &StorefrontService{Repo: r}
}

func (s *StorefrontService) SubmitInquiry(ctx context.Context, q *model.SupplierInquiry) (int64, error) {
	if q.Item == "" {
		return 0, errors.New("item is required")
	}
	if q.Quantity <= 0 {
		return 0, errors.New("quantity must be > 0")
	}
	if q.Phone == "" {
		return 0, errors.New("phone is required")
	}
	return s.Repo.CreateInquiry(ctx, q)
}

func (s *StorefrontService) ListInquiries(ctx context.Context) ([]model.SupplierInquiry, error) {
	return s.Repo.ListInquiries(ctx)
}

func (s *StorefrontService) Settings(ctx context.Context) (*model.StoreSettings, error) {
	return s.Repo.GetSettings(ctx)
}

func (s *StorefrontService) SaveSettings(ctx context.Context, st *model.StoreSettings) error {
	return s.Repo.SaveSettings(ctx, st)
}

func (s *StorefrontService) HeroImages(ctx context.Context) ([]model.HeroImage, error) {
	return s.Repo.ListHeroImages(ctx, 10)
}

func (s *StorefrontService) AddHeroImage(ctx context.Context, h *model.HeroImage) (int64, error) {
	if h.Image == "" || h.SlideName == "" {
		return 0, errors.New("image and slide_name are required")
	}
	return s.Repo.CreateHeroImage(ctx, h)
}

func (s *StorefrontService) RemoveHeroImage(ctx context.Context, id int64) error {
	return s.Repo.DeleteHeroImage(ctx, id)
}
