package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"StorefrontAPI/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

const productColumns = `p.productid, p.name, p.price, p.old_price, p.discount, p.description_1, p.description_2, p.description_3,
	p.image_1, p.is_active, p.sales_count, p.created_at, p.updated_at,
	COALESCE(ROUND(AVG(rt.rating), 2), 0) AS average_rating, COUNT(rt.ratingid) AS total_reviews`

func (r *ProductRepository) CreateProduct(ctx context.Context, p *model.Product) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	query := `
		INSERT INTO products (productid, name, price, old_price, discount, description_1, description_2, description_3,
			image_1, is_active, sales_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 0, $11, $11)
	`
	if _, err := r.DB.Exec(ctx, query,
		id, p.Name, p.Price, p.OldPrice, p.Discount, p.Description1, p.Description2, p.Description3,
		p.Image, p.IsActive, now,
	); err != nil {
		return uuid.Nil, err
	}
	for _, cid := range p.CategoryIDs {
		if _, err := r.DB.Exec(ctx, `INSERT INTO product_categories (productid, categoryid) VALUES ($1, $2) ON CONFLICT DO NOTHING`, id, cid); err != nil {
			return uuid.Nil, err
		}
	}
	for _, oid := range p.OptionIDs {
		if _, err := r.DB.Exec(ctx, `INSERT INTO product_options (productid, optionid) VALUES ($1, $2) ON CONFLICT DO NOTHING`, id, oid); err != nil {
			return uuid.Nil, err
		}
	}
	return id, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN ratings rt ON rt.productid = p.productid
		WHERE p.productid=$1
		GROUP BY p.productid
	`
	var p model.Product
	if err := r.DB.QueryRow(ctx, query, id).Scan(
		&p.ProductID, &p.Name, &p.Price, &p.OldPrice, &p.Discount, &p.Description1, &p.Description2, &p.Description3,
		&p.Image, &p.IsActive, &p.SalesCount, &p.CreatedAt, &p.UpdatedAt, &p.AverageRating, &p.TotalReviews,
	); err != nil {
		return nil, errors.New("product not found")
	}
	return &p, nil
}

// List applies the shop filters: category, option, price bounds, name
// substring, limit/offset.
func (r *ProductRepository) List(ctx context.Context, f model.ProductFilter) ([]model.Product, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 12
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN ratings rt ON rt.productid = p.productid
	`
	args := []any{}
	where := " WHERE p.is_active"
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		query += ` JOIN product_categories pc ON pc.productid = p.productid`
		where += fmt.Sprintf(" AND pc.categoryid=$%d", len(args))
	}
	if f.OptionID != nil {
		args = append(args, *f.OptionID)
		query += ` JOIN product_options po ON po.productid = p.productid`
		where += fmt.Sprintf(" AND po.optionid=$%d", len(args))
	}
	if f.PriceMin != nil {
		args = append(args, *f.PriceMin)
		where += fmt.Sprintf(" AND p.price >= $%d", len(args))
	}
	if f.PriceMax != nil {
		args = append(args, *f.PriceMax)
		where += fmt.Sprintf(" AND p.price <= $%d", len(args))
	}
	if f.Name != "" {
		args = append(args, "%"+f.Name+"%")
		where += fmt.Sprintf(" AND p.name ILIKE $%d", len(args))
	}
	args = append(args, f.Limit, f.Offset)
	query += where + fmt.Sprintf(" GROUP BY p.productid ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return r.scanProducts(ctx, query, args...)
}

// TopDiscounted returns the most discounted active products for the home page.
func (r *ProductRepository) TopDiscounted(ctx context.Context, limit int) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN ratings rt ON rt.productid = p.productid
		WHERE p.is_active AND p.discount > 0
		GROUP BY p.productid
		ORDER BY p.discount DESC LIMIT $1
	`
	return r.scanProducts(ctx, query, limit)
}

func (r *ProductRepository) Newest(ctx context.Context, limit int) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN ratings rt ON rt.productid = p.productid
		WHERE p.is_active
		GROUP BY p.productid
		ORDER BY p.created_at DESC LIMIT $1
	`
	return r.scanProducts(ctx, query, limit)
}

func (r *ProductRepository) scanProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ProductID, &p.Name, &p.Price, &p.OldPrice, &p.Discount, &p.Description1, &p.Description2, &p.Description3,
			&p.Image, &p.IsActive, &p.SalesCount, &p.CreatedAt, &p.UpdatedAt, &p.AverageRating, &p.TotalReviews,
		); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, p *model.Product) error {
	query := `
		UPDATE products SET name=$1, price=$2, old_price=$3, discount=$4, description_1=$5, description_2=$6,
			description_3=$7, image_1=$8, is_active=$9, updated_at=$10
		WHERE productid=$11
	`
	tag, err := r.DB.Exec(ctx, query,
		p.Name, p.Price, p.OldPrice, p.Discount, p.Description1, p.Description2, p.Description3,
		p.Image, p.IsActive, time.Now(), p.ProductID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("product not found")
	}
	return nil
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	tag, err := r.DB.Exec(ctx, `UPDATE products SET is_active=false, updated_at=$1 WHERE productid=$2 AND is_active`, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("product not found or already inactive")
	}
	return nil
}

// ===== categories / options =====

func (r *ProductRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := r.DB.Query(ctx, `SELECT categoryid, name, image FROM categories ORDER BY categoryid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.CategoryID, &c.Name, &c.Image); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *ProductRepository) CreateCategory(ctx context.Context, name, image string) (int64, error) {
	var id int64
	if err := r.DB.QueryRow(ctx, `INSERT INTO categories (name, image) VALUES ($1, $2) RETURNING categoryid`, name, image).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProductRepository) ListOptions(ctx context.Context) ([]model.Option, error) {
	rows, err := r.DB.Query(ctx, `SELECT optionid, name FROM options ORDER BY optionid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Option{}
	for rows.Next() {
		var o model.Option
		if err := rows.Scan(&o.OptionID, &o.Name); err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func (r *ProductRepository) CreateOption(ctx context.Context, name string) (int64, error) {
	var id int64
	if err := r.DB.QueryRow(ctx, `INSERT INTO options (name) VALUES ($1) RETURNING optionid`, name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// ===== ratings =====

func (r *ProductRepository) CreateRating(ctx context.Context, rt *model.Rating) (uuid.UUID, error) {
	id := uuid.New()
	query := `INSERT INTO ratings (ratingid, productid, name, email, rating, review, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.DB.Exec(ctx, query, id, rt.ProductID, rt.Name, rt.Email, rt.Rating, rt.Review, time.Now()); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *ProductRepository) ListRatings(ctx context.Context, productID uuid.UUID) ([]model.Rating, error) {
	query := `SELECT ratingid, productid, name, email, rating, review, created_at FROM ratings WHERE productid=$1 ORDER BY created_at DESC`
	rows, err := r.DB.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Rating{}
	for rows.Next() {
		var rt model.Rating
		if err := rows.Scan(&rt.RatingID, &rt.ProductID, &rt.Name, &rt.Email, &rt.Rating, &rt.Review, &rt.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, rt)
	}
	return list, rows.Err()
}
