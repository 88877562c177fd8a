package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLen = 8
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

type AuthService struct {
	Users *repository.AuthRepository
}

func NewAuthService(u *repository.AuthRepository) *AuthService {
	return &AuthService{Users: u}
}

func (s *AuthService) validateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("invalid email format")
	}
	return nil
}

func (s *AuthService) validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return fmt.Errorf("password too short: must be at least %d characters", MinPasswordLen)
	}
	return nil
}

// RegisterPublic creates a customer account with role "user".
func (s *AuthService) RegisterPublic(ctx context.Context, username, email, password string) (int64, error) {
	if username == "" {
		return 0, errors.New("username is required")
	}
	if err := s.validateEmail(email); err != nil {
		return 0, err
	}
	if err := s.validatePassword(password); err != nil {
		return 0, err
	}
	exists, err := s.Users.EmailExists(ctx, email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, errors.New("email already registered")
	}
	taken, err := s.Users.UsernameExists(ctx, username)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, errors.New("username already taken")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	return s.Users.CreateUser(ctx, username, email, string(hash), "user")
}

// RegisterByAdmin creates staff accounts; admin endpoints must not mint plain users here.
func (s *AuthService) RegisterByAdmin(ctx context.Context, username, email, password, role string) (int64, error) {
	if role == "" {
		return 0, errors.New("role required")
	}
	if role == "user" {
		return 0, errors.New("admins cannot create user accounts")
	}
	if username == "" {
		return 0, errors.New("username is required")
	}
	if err := s.validateEmail(email); err != nil {
		return 0, err
	}
	if err := s.validatePassword(password); err != nil {
		return 0, err
	}
	exists, err := s.Users.EmailExists(ctx, email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, errors.New("email already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	return s.Users.CreateUser(ctx, username, email, string(hash), role)
}

// Login authenticates email + password and returns the user (without passwordhash).
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		// do not reveal whether email exists
		return nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}
	if u.DeletedAt != nil {
		return nil, ErrUserBanned
	}
	// zero out password before returning
	u.PasswordHash = ""
	return u, nil
}

func (s *AuthService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.Users.GetByID(ctx, id)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.Users.ListUsersOnly(ctx)
}

func (s *AuthService) Ban(ctx context.Context, userID int64) error {
	return s.Users.BanUser(ctx, userID)
}

func (s *AuthService) UnBan(ctx context.Context, userID int64) error {
	return s.Users.UnBanUser(ctx, userID)
}
