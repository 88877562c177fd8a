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

type OrderRepository struct {
	DB   *pgxpool.Pool
	Cart *CartRepository
}

func NewOrderRepository(db *pgxpool.Pool, cart *CartRepository) *OrderRepository {
	return &OrderRepository{DB: db, Cart: cart}
}

// Create materializes a priced cart into an order. Order insert, line
// snapshots, product-set attachment, cart-line flagging, sales counters and
// coupon usage all commit in one transaction; the order number is assigned
// inside that transaction so sequential placements get a strictly increasing
// sequence.
func (r *OrderRepository) Create(ctx context.Context, o *model.Order, items []model.CartItem, couponID *int64) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `SELECT COALESCE(MAX(order_number), 0) + 1 FROM orders`).Scan(&o.OrderNumber); err != nil {
		return fmt.Errorf("next order number: %w", err)
	}

	o.OrderID = uuid.New()
	now := time.Now()
	o.CreatedAt = &now
	insert := `
		INSERT INTO orders (orderid, order_number, userid, customer_name, customer_email, customer_phone,
			customer_address, city, color, size, options, payment_method, state, total, coupon_used, is_completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, false, $16)
	`
	if _, err := tx.Exec(ctx, insert,
		o.OrderID, o.OrderNumber, o.UserID, o.CustomerName, o.CustomerEmail, o.CustomerPhone,
		o.CustomerAddress, o.City, o.Color, o.Size, o.Options, o.PaymentMethod, o.State, o.Total, o.CouponUsed, now,
	); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	lineIDs := make([]int64, 0, len(items))
	for _, it := range items {
		lineIDs = append(lineIDs, it.LineID)

		lineInsert := `INSERT INTO order_lines (orderid, productid, quantity, unit_price) VALUES ($1, $2, $3, $4)`
		if _, err := tx.Exec(ctx, lineInsert, o.OrderID, it.ProductID, it.Quantity, it.Price); err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}

		// denormalized product set kept alongside the line snapshot
		setInsert := `INSERT INTO order_products (orderid, productid) VALUES ($1, $2) ON CONFLICT DO NOTHING`
		if _, err := tx.Exec(ctx, setInsert, o.OrderID, it.ProductID); err != nil {
			return fmt.Errorf("attach product: %w", err)
		}

		bump := `UPDATE products SET sales_count = sales_count + $1 WHERE productid=$2`
		if _, err := tx.Exec(ctx, bump, it.Quantity, it.ProductID); err != nil {
			return fmt.Errorf("bump sales count: %w", err)
		}
	}

	if err := r.Cart.MarkOrderedTx(ctx, tx, lineIDs); err != nil {
		return fmt.Errorf("flag cart lines: %w", err)
	}

	if couponID != nil && o.UserID != nil {
		usage := `INSERT INTO coupon_usages (couponid, userid, used_at) VALUES ($1, $2, $3) ON CONFLICT (couponid, userid) DO NOTHING`
		tag, err := tx.Exec(ctx, usage, *couponID, *o.UserID, now)
		if err != nil {
			return fmt.Errorf("record coupon usage: %w", err)
		}
		if tag.RowsAffected() > 0 {
			if _, err := tx.Exec(ctx, `UPDATE coupons SET used_count = used_count + 1 WHERE couponid=$1`, *couponID); err != nil {
				return fmt.Errorf("bump coupon usage: %w", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID uuid.UUID) (*model.Order, error) {
	var o model.Order
	query := `
		SELECT orderid, order_number, userid, customer_name, customer_email, customer_phone,
			customer_address, city, color, size, options, payment_method, state, total, coupon_used, is_completed, created_at
		FROM orders WHERE orderid=$1
	`
	if err := r.DB.QueryRow(ctx, query, orderID).Scan(
		&o.OrderID, &o.OrderNumber, &o.UserID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.CustomerAddress, &o.City, &o.Color, &o.Size, &o.Options, &o.PaymentMethod, &o.State, &o.Total,
		&o.CouponUsed, &o.IsCompleted, &o.CreatedAt,
	); err != nil {
		return nil, errors.New("order not found")
	}
	return &o, nil
}

func (r *OrderRepository) GetLines(ctx context.Context, orderID uuid.UUID) ([]model.OrderLine, error) {
	query := `
		SELECT ol.orderlineid, ol.orderid, ol.productid, p.name, p.image_1, ol.quantity, ol.unit_price
		FROM order_lines ol
		JOIN products p ON p.productid = ol.productid
		WHERE ol.orderid=$1
		ORDER BY ol.orderlineid
	`
	rows, err := r.DB.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []model.OrderLine
	for rows.Next() {
		var l model.OrderLine
		if err := rows.Scan(&l.OrderLineID, &l.OrderID, &l.ProductID, &l.Name, &l.Image, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `
		SELECT orderid, order_number, userid, customer_name, customer_email, customer_phone,
			customer_address, city, color, size, options, payment_method, state, total, coupon_used, is_completed, created_at
		FROM orders WHERE userid=$1 ORDER BY order_number DESC
	`
	return r.scanOrders(ctx, query, userID)
}

func (r *OrderRepository) ListAll(ctx context.Context, limit, offset int) ([]model.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT orderid, order_number, userid, customer_name, customer_email, customer_phone,
			customer_address, city, color, size, options, payment_method, state, total, coupon_used, is_completed, created_at
		FROM orders ORDER BY order_number DESC LIMIT $1 OFFSET $2
	`
	return r.scanOrders(ctx, query, limit, offset)
}

func (r *OrderRepository) scanOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.OrderID, &o.OrderNumber, &o.UserID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
			&o.CustomerAddress, &o.City, &o.Color, &o.Size, &o.Options, &o.PaymentMethod, &o.State, &o.Total,
			&o.CouponUsed, &o.IsCompleted, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// SetState saves a new lifecycle state. Delivered latches is_completed; the
// flag is never cleared by later saves.
func (r *OrderRepository) SetState(ctx context.Context, orderID uuid.UUID, state model.OrderState) error {
	query := `
		UPDATE orders
		SET state=$1,
		    is_completed = is_completed OR ($1 = 'Delivered')
		WHERE orderid=$2
	`
	tag, err := r.DB.Exec(ctx, query, state, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("order not found")
	}
	return nil
}
