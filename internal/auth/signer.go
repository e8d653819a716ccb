package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"helloteam.app/api/common/errs"
	"helloteam.app/api/common/id"
	"helloteam.app/api/core/config"
)

type TokenType string

const (
	TokenTypeAccess            TokenType = "access"
	TokenTypeRefresh           TokenType = "refresh"
	TokenTypeEmailVerification TokenType = "email_verification"
)

const emailVerificationTTL = 72 * time.Hour

// Claims is the signed payload. IDs travel as decimal strings so JavaScript
// clients can read them without precision loss.
type Claims struct {
	jwt.RegisteredClaims
	UserID      string    `json:"user_id"`
	WorkspaceID string    `json:"workspace_id,omitempty"`
	TokenType   TokenType `json:"token_type"`
}

type TokenPair struct {
	Access           string
	Refresh          string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
	WorkspaceID      OptionalID
}

// Signer signs and verifies HS256 tokens with the server key. The algorithm is
// fixed: tokens signed with anything else are rejected.
type Signer struct {
	key        []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

type SignerOption func(*Signer)

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) SignerOption {
	return func(s *Signer) { s.now = now }
}

func NewSigner(cfg config.JWTConfig, opts ...SignerOption) (*Signer, error) {
	if len(cfg.SigningKey) == 0 {
		return nil, errors.New("signing key is required")
	}
	s := &Signer{
		key:        []byte(cfg.SigningKey),
		issuer:     cfg.Issuer,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Pair signs an access and a refresh token carrying the same workspace claim.
func (s *Signer) Pair(userID int64, workspaceID OptionalID) (*TokenPair, error) {
	access, accessExp, err := s.sign(userID, workspaceID, TokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, refreshExp, err := s.sign(userID, workspaceID, TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		Access:           access,
		Refresh:          refresh,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
		WorkspaceID:      workspaceID,
	}, nil
}

// EmailVerificationToken signs a token that proves control of the user's inbox.
func (s *Signer) EmailVerificationToken(userID int64) (string, error) {
	token, _, err := s.sign(userID, NoID, TokenTypeEmailVerification, emailVerificationTTL)
	return token, err
}

func (s *Signer) sign(userID int64, workspaceID OptionalID, typ TokenType, ttl time.Duration) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(ttl)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   id.String(userID),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:    id.String(userID),
		TokenType: typ,
	}
	if ws, ok := workspaceID.Get(); ok {
		claims.WorkspaceID = id.String(ws)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing %s token: %w", typ, err)
	}
	return signed, expiresAt, nil
}

// Parse verifies signature, algorithm, issuer, expiry and token type, and
// decodes the identity claims. Every failure is KindInvalidToken.
func (s *Signer) Parse(token string, want TokenType) (Principal, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Principal{}, errs.Wrap(errs.KindInvalidToken, "token is invalid or expired", err)
	}

	if claims.TokenType != want {
		return Principal{}, errs.InvalidToken(fmt.Sprintf("expected %s token", want))
	}

	userID, err := id.Parse(claims.UserID)
	if err != nil {
		return Principal{}, errs.Wrap(errs.KindInvalidToken, "token has a malformed user_id claim", err)
	}

	p := Principal{UserID: userID}
	if claims.WorkspaceID != "" {
		ws, err := id.Parse(claims.WorkspaceID)
		if err != nil {
			return Principal{}, errs.Wrap(errs.KindInvalidToken, "token has a malformed workspace_id claim", err)
		}
		p.WorkspaceID = SomeID(ws)
	}
	return p, nil
}
