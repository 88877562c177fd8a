package repository

import (
	"context"
	"errors"
	"time"

	"StorefrontAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PricingRepository struct {
	DB *pgxpool.Pool
}

func NewPricingRepository(db *pgxpool.Pool) *PricingRepository {
	return &PricingRepository{DB: db}
}

// The "current" rule of each type is the most recently created active row.
// Several rows may be active at once; only the newest is read.

func (r *PricingRepository) CurrentDiscount(ctx context.Context) (*model.Discount, error) {
	var d model.Discount
	query := `SELECT discountid, name, amount, percent, active, created_at FROM discounts WHERE active ORDER BY created_at DESC, discountid DESC LIMIT 1`
	err := r.DB.QueryRow(ctx, query).Scan(&d.DiscountID, &d.Name, &d.Amount, &d.Percent, &d.Active, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PricingRepository) CurrentTax(ctx context.Context) (*model.Tax, error) {
	var t model.Tax
	query := `SELECT taxid, name, rate, active, created_at FROM taxes WHERE active ORDER BY created_at DESC, taxid DESC LIMIT 1`
	err := r.DB.QueryRow(ctx, query).Scan(&t.TaxID, &t.Name, &t.Rate, &t.Active, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PricingRepository) CurrentShippingFee(ctx context.Context) (*model.ShippingFee, error) {
	var f model.ShippingFee
	query := `SELECT shippingfeeid, region, cost, estimated_days, active, created_at FROM shipping_fees WHERE active ORDER BY created_at DESC, shippingfeeid DESC LIMIT 1`
	err := r.DB.QueryRow(ctx, query).Scan(&f.ShippingFeeID, &f.Region, &f.Cost, &f.EstimatedDays, &f.Active, &f.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PricingRepository) CurrentServiceFee(ctx context.Context) (*model.ServiceFee, error) {
	var f model.ServiceFee
	query := `SELECT servicefeeid, name, cost, active, created_at FROM service_fees WHERE active ORDER BY created_at DESC, servicefeeid DESC LIMIT 1`
	err := r.DB.QueryRow(ctx, query).Scan(&f.ServiceFeeID, &f.Name, &f.Cost, &f.Active, &f.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ===== admin CRUD =====

func (r *PricingRepository) CreateDiscount(ctx context.Context, d *model.Discount) (int64, error) {
	var id int64
	query := `INSERT INTO discounts (name, amount, percent, active, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING discountid`
	if err := r.DB.QueryRow(ctx, query, d.Name, d.Amount, d.Percent, d.Active, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PricingRepository) ListDiscounts(ctx context.Context) ([]model.Discount, error) {
	query := `SELECT discountid, name, amount, percent, active, created_at FROM discounts ORDER BY discountid`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Discount
	for rows.Next() {
		var d model.Discount
		if err := rows.Scan(&d.DiscountID, &d.Name, &d.Amount, &d.Percent, &d.Active, &d.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, nil
}

func (r *PricingRepository) UpdateDiscount(ctx context.Context, d *model.Discount) error {
	query := `UPDATE discounts SET name=$1, amount=$2, percent=$3, active=$4 WHERE discountid=$5`
	tag, err := r.DB.Exec(ctx, query, d.Name, d.Amount, d.Percent, d.Active, d.DiscountID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("discount not found")
	}
	return nil
}

func (r *PricingRepository) DeleteDiscount(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM discounts WHERE discountid=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("discount not found")
	}
	return nil
}

func (r *PricingRepository) CreateTax(ctx context.Context, t *model.Tax) (int64, error) {
	var id int64
	query := `INSERT INTO taxes (name, rate, active, created_at) VALUES ($1, $2, $3, $4) RETURNING taxid`
	if err := r.DB.QueryRow(ctx, query, t.Name, t.Rate, t.Active, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PricingRepository) ListTaxes(ctx context.Context) ([]model.Tax, error) {
	query := `SELECT taxid, name, rate, active, created_at FROM taxes ORDER BY taxid`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Tax
	for rows.Next() {
		var t model.Tax
		if err := rows.Scan(&t.TaxID, &t.Name, &t.Rate, &t.Active, &t.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, nil
}

func (r *PricingRepository) UpdateTax(ctx context.Context, t *model.Tax) error {
	query := `UPDATE taxes SET name=$1, rate=$2, active=$3 WHERE taxid=$4`
	tag, err := r.DB.Exec(ctx, query, t.Name, t.Rate, t.Active, t.TaxID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("tax not found")
	}
	return nil
}

func (r *PricingRepository) DeleteTax(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM taxes WHERE taxid=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("tax not found")
	}
	return nil
}

func (r *PricingRepository) CreateShippingFee(ctx context.Context, f *model.ShippingFee) (int64, error) {
	var id int64
	query := `INSERT INTO shipping_fees (region, cost, estimated_days, active, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING shippingfeeid`
	if err := r.DB.QueryRow(ctx, query, f.Region, f.Cost, f.EstimatedDays, f.Active, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PricingRepository) ListShippingFees(ctx context.Context) ([]model.ShippingFee, error) {
	query := `SELECT shippingfeeid, region, cost, estimated_days, active, created_at FROM shipping_fees ORDER BY shippingfeeid`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.ShippingFee
	for rows.Next() {
		var f model.ShippingFee
		if err := rows.Scan(&f.ShippingFeeID, &f.Region, &f.Cost, &f.EstimatedDays, &f.Active, &f.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	return list, nil
}

func (r *PricingRepository) UpdateShippingFee(ctx context.Context, f *model.ShippingFee) error {
	query := `UPDATE shipping_fees SET region=$1, cost=$2, estimated_days=$3, active=$4 WHERE shippingfeeid=$5`
	tag, err := r.DB.Exec(ctx, query, f.Region, f.Cost, f.EstimatedDays, f.Active, f.ShippingFeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("shipping fee not found")
	}
	return nil
}

func (r *PricingRepository) DeleteShippingFee(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM shipping_fees WHERE shippingfeeid=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("shipping fee not found")
	}
	return nil
}

func (r *PricingRepository) CreateServiceFee(ctx context.Context, f *model.ServiceFee) (int64, error) {
	var id int64
	query := `INSERT INTO service_fees (name, cost, active, created_at) VALUES ($1, $2, $3, $4) RETURNING servicefeeid`
	if err := r.DB.QueryRow(ctx, query, f.Name, f.Cost, f.Active, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PricingRepository) ListServiceFees(ctx context.Context) ([]model.ServiceFee, error) {
	query := `SELECT servicefeeid, name, cost, active, created_at FROM service_fees ORDER BY servicefeeid`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.ServiceFee
	for rows.Next() {
		var f model.ServiceFee
		if err := rows.Scan(&f.ServiceFeeID, &f.Name, &f.Cost, &f.Active, &f.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	return list, nil
}

func (r *PricingRepository) UpdateServiceFee(ctx context.Context, f *model.ServiceFee) error {
	query := `UPDATE service_fees SET name=$1, cost=$2, active=$3 WHERE servicefeeid=$4`
	tag, err := r.DB.Exec(ctx, query, f.Name, f.Cost, f.Active, f.ServiceFeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("service fee not found")
	}
	return nil
}

func (r *PricingRepository) DeleteServiceFee(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM service_fees WHERE servicefeeid=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("service fee not found")
	}
	return nil
}
