package repository

import (
	"context"
	"errors"
	"time"

	"StorefrontAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StorefrontRepository struct {
	DB *pgxpool.Pool
}

func NewStorefrontRepository(db *pgxpool.Pool) *StorefrontRepository {
	return &StorefrontRepository{DB: db}
}

func (r *StorefrontRepository) CreateInquiry(ctx context.Context, q *model.SupplierInquiry) (int64, error) {
	var id int64
	query := `INSERT INTO supplier_inquiries (item, details, quantity, phone, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING inquiryid`
	if err := r.DB.QueryRow(ctx, query, q.Item, q.Details, q.Quantity, q.Phone, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *StorefrontRepository) ListInquiries(ctx context.Context) ([]model.SupplierInquiry, error) {
	query := `SELECT inquiryid, item, details, quantity, phone, created_at FROM supplier_inquiries ORDER BY created_at DESC`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.SupplierInquiry{}
	for rows.Next() {
		var q model.SupplierInquiry
		if err := rows.Scan(&q.InquiryID, &q.Item, &q.Details, &q.Quantity, &q.Phone, &q.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, q)
	}
	return list, rows.Err()
}

// GetSettings reads the single settings row; nil when the store is not yet
// configured.
func (r *StorefrontRepository) GetSettings(ctx context.Context) (*model.StoreSettings, error) {
	var s model.StoreSettings
	query := `SELECT logo, youtube, instagram, facebook, whatsapp, address, phone, working_hours, location_map_link FROM store_settings LIMIT 1`
	err := r.DB.QueryRow(ctx, query).Scan(
		&s.Logo, &s.Youtube, &s.Instagram, &s.Facebook, &s.Whatsapp, &s.Address, &s.Phone, &s.WorkingHours, &s.LocationMapLink,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StorefrontRepository) SaveSettings(ctx context.Context, s *model.StoreSettings) error {
	// single-row table: update, insert on first save
	query := `
		UPDATE store_settings SET logo=$1, youtube=$2, instagram=$3, facebook=$4, whatsapp=$5,
			address=$6, phone=$7, working_hours=$8, location_map_link=$9
	`
	tag, err := r.DB.Exec(ctx, query, s.Logo, s.Youtube, s.Instagram, s.Facebook, s.Whatsapp, s.Address, s.Phone, s.WorkingHours, s.LocationMapLink)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	insert := `
		INSERT INTO store_settings (logo, youtube, instagram, facebook, whatsapp, address, phone, working_hours, location_map_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.DB.Exec(ctx, insert, s.Logo, s.Youtube, s.Instagram, s.Facebook, s.Whatsapp, s.Address, s.Phone, s.WorkingHours, s.LocationMapLink)
	return err
}

func (r *StorefrontRepository) ListHeroImages(ctx context.Context, limit int) ([]model.HeroImage, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	query := `SELECT heroimageid, image, slide_name, slide_description, created_at FROM hero_images ORDER BY created_at DESC LIMIT $1`
	rows, err := r.DB.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.HeroImage{}
	for rows.Next() {
		var h model.HeroImage
		if err := rows.Scan(&h.HeroImageID, &h.Image, &h.SlideName, &h.SlideDesc, &h.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

func (r *StorefrontRepository) CreateHeroImage(ctx context.Context, h *model.HeroImage) (int64, error) {
	var id int64
	query := `INSERT INTO hero_images (image, slide_name, slide_description, created_at) VALUES ($1, $2, $3, $4) RETURNING heroimageid`
	if err := r.DB.QueryRow(ctx, query, h.Image, h.SlideName, h.SlideDesc, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *StorefrontRepository) DeleteHeroImage(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM hero_images WHERE heroimageid=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("hero image not found")
	}
	return nil
}
