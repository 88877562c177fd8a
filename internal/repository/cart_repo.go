package repository

import (
	"context"
	"errors"
	"time"

	"StorefrontAPI/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type CartRepository struct {
	DB *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{DB: db}
}

// GetOrCreateCart returns the user's cart id, creating the cart lazily.
func (r *CartRepository) GetOrCreateCart(ctx context.Context, userID int64) (uuid.UUID, error) {
	var id uuid.UUID
	query := `SELECT cartid FROM carts WHERE userid=$1`
	err := r.DB.QueryRow(ctx, query, userID).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, err
	}
	id = uuid.New()
	insert := `INSERT INTO carts (cartid, userid, created_at) VALUES ($1, $2, $3)`
	if _, err := r.DB.Exec(ctx, insert, id, userID, time.Now()); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// FindLine looks up a line by its exact (product, color, size, options) tuple,
// ordered lines included.
func (r *CartRepository) FindLine(ctx context.Context, cartID, productID uuid.UUID, color, size, options string) (*model.CartLine, error) {
	var l model.CartLine
	query := `
		SELECT lineid, cartid, productid, quantity, color, size, options, ordered
		FROM cart_lines
		WHERE cartid=$1 AND productid=$2 AND color=$3 AND size=$4 AND options=$5
		ORDER BY lineid DESC LIMIT 1
	`
	err := r.DB.QueryRow(ctx, query, cartID, productID, color, size, options).
		Scan(&l.LineID, &l.CartID, &l.ProductID, &l.Quantity, &l.Color, &l.Size, &l.Options, &l.Ordered)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *CartRepository) InsertLine(ctx context.Context, l *model.CartLine) (int64, error) {
	var id int64
	query := `INSERT INTO cart_lines (cartid, productid, quantity, color, size, options, ordered) VALUES ($1, $2, $3, $4, $5, $6, false) RETURNING lineid`
	if err := r.DB.QueryRow(ctx, query, l.CartID, l.ProductID, l.Quantity, l.Color, l.Size, l.Options).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// RestoreLine puts a previously ordered line back into the active cart.
func (r *CartRepository) RestoreLine(ctx context.Context, lineID int64, quantity int) error {
	query := `UPDATE cart_lines SET ordered=false, quantity=$1 WHERE lineid=$2`
	tag, err := r.DB.Exec(ctx, query, quantity, lineID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("cart line not found")
	}
	return nil
}

func (r *CartRepository) GetLine(ctx context.Context, userID, lineID int64) (*model.CartLine, error) {
	var l model.CartLine
	query := `
		SELECT cl.lineid, cl.cartid, cl.productid, cl.quantity, cl.color, cl.size, cl.options, cl.ordered
		FROM cart_lines cl
		JOIN carts c ON c.cartid = cl.cartid
		WHERE cl.lineid=$1 AND c.userid=$2
	`
	if err := r.DB.QueryRow(ctx, query, lineID, userID).
		Scan(&l.LineID, &l.CartID, &l.ProductID, &l.Quantity, &l.Color, &l.Size, &l.Options, &l.Ordered); err != nil {
		return nil, errors.New("cart line not found")
	}
	return &l, nil
}

func (r *CartRepository) SetQuantity(ctx context.Context, lineID int64, quantity int) error {
	query := `UPDATE cart_lines SET quantity=$1 WHERE lineid=$2 AND NOT ordered`
	tag, err := r.DB.Exec(ctx, query, quantity, lineID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("cart line not found")
	}
	return nil
}

func (r *CartRepository) DeleteLine(ctx context.Context, lineID int64) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM cart_lines WHERE lineid=$1`, lineID)
	return err
}

// OpenLines returns the user's unordered lines resolved to their products.
func (r *CartRepository) OpenLines(ctx context.Context, userID int64) ([]model.CartItem, error) {
	query := `
		SELECT cl.lineid, cl.productid, p.name, p.price, p.image_1, cl.quantity, cl.color, cl.size, cl.options
		FROM cart_lines cl
		JOIN carts c ON c.cartid = cl.cartid
		JOIN products p ON p.productid = cl.productid
		WHERE c.userid=$1 AND NOT cl.ordered
		ORDER BY cl.lineid
	`
	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.CartItem
	for rows.Next() {
		var it model.CartItem
		if err := rows.Scan(&it.LineID, &it.ProductID, &it.Name, &it.Price, &it.Image, &it.Quantity, &it.Color, &it.Size, &it.Options); err != nil {
			return nil, err
		}
		it.Total = it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		items = append(items, it)
	}
	return items, rows.Err()
}

// MarkOrderedTx flags lines as ordered inside the order placement transaction.
func (r *CartRepository) MarkOrderedTx(ctx context.Context, tx pgx.Tx, lineIDs []int64) error {
	query := `UPDATE cart_lines SET ordered=true WHERE lineid = ANY($1)`
	_, err := tx.Exec(ctx, query, lineIDs)
	return err
}
