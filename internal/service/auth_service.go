package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"rolsa/internal/models"
	"rolsa/internal/repository"
)

const kindUser = "user"

// AuthService handles account registration and credential checks.
type AuthService struct {
	users    repository.Users
	validate *validator.Validate
	rec      Recorder
}

func NewAuthService(users repository.Users, v *validator.Validate, rec Recorder) *AuthService {
	return &AuthService{users: users, validate: v, rec: rec}
}

// Register validates the form, hashes the password and creates the account.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (int, error) {
	p.normalize()
	if err := validate(s.validate, p); err != nil {
		return 0, err
	}

	hash, err := hashPassword(p.Password)
	if err != nil {
		return 0, err
	}

	id, err := s.users.Create(ctx, models.User{
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, ErrDuplicateEmail
		}
		return 0, err
	}
	s.rec.RecordCreated(kindUser)
	return id, nil
}

// Authenticate returns the user for a matching email and password.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, p LoginParams) (*models.User, error) {
	p.Email = normalizeEmail(p.Email)
	if p.Email == "" || p.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, p.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, p.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
