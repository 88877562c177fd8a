package repository

import (
	"context"
	"errors"
	"time"

	"StorefrontAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CouponRepository struct {
	DB *pgxpool.Pool
}

func NewCouponRepository(db *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{DB: db}
}

// GetActiveByCode returns the active coupon for a code, or nil when no such
// coupon exists.
func (r *CouponRepository) GetActiveByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var c model.Coupon
	query := `
		SELECT couponid, code, discount_percent, active, usage_limit, used_count, valid_from, valid_to, created_at
		FROM coupons WHERE code=$1 AND active
	`
	err := r.DB.QueryRow(ctx, query, code).Scan(
		&c.CouponID, &c.Code, &c.DiscountPercent, &c.Active, &c.UsageLimit, &c.UsedCount,
		&c.ValidFrom, &c.ValidTo, &c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepository) UsageExists(ctx context.Context, couponID, userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM coupon_usages WHERE couponid=$1 AND userid=$2)`
	if err := r.DB.QueryRow(ctx, query, couponID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CouponRepository) CreateCoupon(ctx context.Context, c *model.Coupon) (int64, error) {
	var id int64
	query := `
		INSERT INTO coupons (code, discount_percent, active, usage_limit, used_count, valid_from, valid_to, created_at)
		VALUES ($1, $2, $3, $4, 0, $5, $6, $7) RETURNING couponid
	`
	if err := r.DB.QueryRow(ctx, query, c.Code, c.DiscountPercent, c.Active, c.UsageLimit, c.ValidFrom, c.ValidTo, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CouponRepository) ListCoupons(ctx context.Context) ([]model.Coupon, error) {
	query := `
		SELECT couponid, code, discount_percent, active, usage_limit, used_count, valid_from, valid_to, created_at
		FROM coupons ORDER BY couponid
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Coupon
	for rows.Next() {
		var c model.Coupon
		if err := rows.Scan(
			&c.CouponID, &c.Code, &c.DiscountPercent, &c.Active, &c.UsageLimit, &c.UsedCount,
			&c.ValidFrom, &c.ValidTo, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CouponRepository) UpdateCoupon(ctx context.Context, c *model.Coupon) error {
	query := `
		UPDATE coupons SET code=$1, discount_percent=$2, active=$3, usage_limit=$4, valid_from=$5, valid_to=$6
		WHERE couponid=$7
	`
	tag, err := r.DB.Exec(ctx, query, c.Code, c.DiscountPercent, c.Active, c.UsageLimit, c.ValidFrom, c.ValidTo, c.CouponID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("coupon not found")
	}
	return nil
}

func (r *CouponRepository) DeleteCoupon(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM coupons WHERE couponid=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("coupon not found")
	}
	return nil
}
