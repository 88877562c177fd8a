package repository

import (
	"context"
	"errors"
	"time"

	"StorefrontAPI/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WishlistRepository struct {
	DB *pgxpool.Pool
}

func NewWishlistRepository(db *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{DB: db}
}

// Add inserts a wishlist entry. Returns false when the (user, product) pair
// already exists; the UNIQUE constraint makes the add idempotent.
func (r *WishlistRepository) Add(ctx context.Context, userID int64, productID uuid.UUID) (bool, error) {
	query := `INSERT INTO wishlist_items (userid, productid, created_at) VALUES ($1, $2, $3) ON CONFLICT (userid, productid) DO NOTHING`
	tag, err := r.DB.Exec(ctx, query, userID, productID, time.Now())
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *WishlistRepository) Remove(ctx context.Context, userID int64, productID uuid.UUID) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM wishlist_items WHERE userid=$1 AND productid=$2`, userID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("wishlist item not found")
	}
	return nil
}

// List returns the user's wishlist resolved to products.
func (r *WishlistRepository) List(ctx context.Context, userID int64) ([]model.WishlistItem, error) {
	query := `
		SELECT wi.itemid, wi.userid, wi.productid, wi.created_at, p.name, p.price, p.image_1
		FROM wishlist_items wi
		JOIN products p ON p.productid = wi.productid
		WHERE wi.userid=$1
		ORDER BY wi.created_at DESC
	`
	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.WishlistItem{}
	for rows.Next() {
		var it model.WishlistItem
		if err := rows.Scan(&it.ItemID, &it.UserID, &it.ProductID, &it.CreatedAt, &it.Name, &it.Price, &it.Image); err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
