package services

import (
	"context"
	"errors"

	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/repository"

	"github.com/google/uuid"
)

type ProductService struct {
	Repo *repository.ProductRepository
}

func NewProductService(r *repository.ProductRepository) *ProductService {
	return &ProductService{Repo: r}
}

func (s *ProductService) Create(ctx context.Context, p *model.Product) (uuid.UUID, error) {
	if p.Name == "" {
		return uuid.Nil, errors.New("name is required")
	}
	if p.Price.IsNegative() {
		return uuid.Nil, errors.New("price must not be negative")
	}
	return s.Repo.CreateProduct(ctx, p)
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context, f model.ProductFilter) ([]model.Product, error) {
	return s.Repo.List(ctx, f)
}

// Home returns the landing-page selections: most discounted and newest.
func (s *ProductService) Home(ctx context.Context) (top []model.Product, newest []model.Product, err error) {
	top, err = s.Repo.TopDiscounted(ctx, 5)
	if err != nil {
		return nil, nil, err
	}
	newest, err = s.Repo.Newest(ctx, 10)
	if err != nil {
		return nil, nil, err
	}
	return top, newest, nil
}

func (s *ProductService) Update(ctx context.Context, p *model.Product) error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Price.IsNegative() {
		return errors.New("price must not be negative")
	}
	return s.Repo.UpdateProduct(ctx, p)
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.Repo.DeleteProduct(ctx, id)
}

func (s *ProductService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.Repo.ListCategories(ctx)
}

func (s *ProductService) CreateCategory(ctx context.Context, name, image string) (int64, error) {
	if name == "" {
		return 0, errors.New("name is required")
	}
	return s.Repo.CreateCategory(ctx, name, image)
}

func (s *ProductService) ListOptions(ctx context.Context) ([]model.Option, error) {
	return s.Repo.ListOptions(ctx)
}

func (s *ProductService) CreateOption(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, errors.New("name is required")
	}
	return s.Repo.CreateOption(ctx, name)
}

// Rate records a 1..5 star review for a product.
func (s *ProductService) Rate(ctx context.Context, rt *model.Rating) (uuid.UUID, error) {
	if rt.Rating < 1 || rt.Rating > 5 {
		return uuid.Nil, errors.New("rating must be between 1 and 5")
	}
	if rt.Name == "" {
		return uuid.Nil, errors.New("name is required")
	}
	if _, err := s.Repo.GetByID(ctx, rt.ProductID); err != nil {
		return uuid.Nil, err
	}
	return s.Repo.CreateRating(ctx, rt)
}

func (s *ProductService) Ratings(ctx context.Context, productID uuid.UUID) ([]model.Rating, error) {
	return s.Repo.ListRatings(ctx, productID)
}
