package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"helloteam.app/api/internal/model"
	"helloteam.app/api/internal/store"
)

// CredentialStore is the user lookup and password surface the issuer needs.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	Create(ctx context.Context, user *model.User, password string) error
	SetPassword(ctx context.Context, userID int64, password string) error
	VerifyPassword(user *model.User, password string) bool
	TouchLastLogin(ctx context.Context, userID int64) error
}

type credentialStore struct {
	users store.UserStore
}

func NewCredentialStore(users store.UserStore) CredentialStore {
	return &credentialStore{users: users}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindByEmail returns store.ErrNotFound for unknown addresses.
func (s *credentialStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.users.GetByEmail(ctx, NormalizeEmail(email))
}

func (s *credentialStore) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	return s.users.GetByID(ctx, userID)
}

// Create hashes password (when given) and inserts the user with a normalized
// email. An empty password leaves the account without a usable password.
func (s *credentialStore) Create(ctx context.Context, user *model.User, password string) error {
	user.Email = NormalizeEmail(user.Email)
	if password != "" {
		hash, err := HashPassword(password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}
	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

func (s *credentialStore) SetPassword(ctx context.Context, userID int64, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.users.SetPassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("setting password: %w", err)
	}
	return nil
}

func (s *credentialStore) VerifyPassword(user *model.User, password string) bool {
	return user != nil && CheckPassword(user.PasswordHash, password)
}

func (s *credentialStore) TouchLastLogin(ctx context.Context, userID int64) error {
	err := s.users.SetLastLogin(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("updating last login: %w", err)
	}
	return nil
}
