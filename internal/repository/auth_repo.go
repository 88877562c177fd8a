package repository

import (
	"context"
	"errors"
	"time"

	"StorefrontAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthRepository struct {
	DB *pgxpool.Pool
}

func NewAuthRepository(db *pgxpool.Pool) *AuthRepository {
	return &AuthRepository{DB: db}
}

// CreateUser inserts a new user and returns the created id
func (r *AuthRepository) CreateUser(ctx context.Context, username, email, passwordhash, role string) (int64, error) {
	var id int64
	query := `INSERT INTO users (username, email, passwordhash, role, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING userid`
	if err := r.DB.QueryRow(ctx, query, username, email, passwordhash, role, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *AuthRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	query := `SELECT userid, username, email, passwordhash, role, created_at, deleted_at
			FROM users
			WHERE email=$1`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&u.UserID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.DeletedAt); err != nil {
		return nil, errors.New("user not found")
	}
	return &u, nil
}

func (r *AuthRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	query := `SELECT userid, username, email, role, created_at, deleted_at FROM users WHERE userid=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&u.UserID, &u.Username, &u.Email, &u.Role, &u.CreatedAt, &u.DeletedAt); err != nil {
		return nil, errors.New("user not found")
	}
	return &u, nil
}

func (r *AuthRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *AuthRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username=$1)`
	if err := r.DB.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListUsersOnly lists customer accounts (role=user)
func (r *AuthRepository) ListUsersOnly(ctx context.Context) ([]model.User, error) {
	q := `
        SELECT userid, username, email, role, created_at, deleted_at
        FROM users
        WHERE role = 'user'
        ORDER BY userid;
    `
	rows, err := r.DB.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.UserID, &u.Username, &u.Email, &u.Role, &u.CreatedAt, &u.DeletedAt); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// BanUser soft-deletes a user (sets deleted_at)
func (r *AuthRepository) BanUser(ctx context.Context, userID int64) error {
	query := `UPDATE users SET deleted_at=$1 WHERE userid=$2 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, time.Now(), userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("user not found or already banned")
	}
	return nil
}

func (r *AuthRepository) UnBanUser(ctx context.Context, userID int64) error {
	query := `UPDATE users SET deleted_at=NULL WHERE userid=$1 AND deleted_at IS NOT NULL`
	tag, err := r.DB.Exec(ctx, query, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("user not found or already unbanned")
	}
	return nil
}
