package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/workos/workos-go/v6/pkg/usermanagement"

	"helloteam.app/api/core/config"
)

var ErrInvalidCode = errors.New("invalid authorization code")

// FederatedProfile is the identity returned by the external provider.
type FederatedProfile struct {
	ProviderID string
	Email      string
	FirstName  string
	LastName   string
	AvatarURL  string
}

// FederatedProvider exchanges a one-time code from the provider's redirect
// for a verified profile.
type FederatedProvider interface {
	AuthorizationURL(state string) (string, error)
	Authenticate(ctx context.Context, code string) (*FederatedProfile, error)
}

type workOSProvider struct {
	cfg config.WorkOSConfig
}

func NewWorkOSProvider(cfg config.WorkOSConfig) FederatedProvider {
	usermanagement.SetAPIKey(cfg.APIKey)
	return &workOSProvider{cfg: cfg}
}

func (p *workOSProvider) AuthorizationURL(state string) (string, error) {
	u, err := usermanagement.GetAuthorizationURL(usermanagement.GetAuthorizationURLOpts{
		ClientID:    p.cfg.ClientID,
		RedirectURI: p.cfg.RedirectURI,
		State:       state,
		Provider:    p.cfg.Provider,
	})
	if err != nil {
		return "", fmt.Errorf("generating authorization URL: %w", err)
	}
	return u.String(), nil
}

func (p *workOSProvider) Authenticate(ctx context.Context, code string) (*FederatedProfile, error) {
	resp, err := usermanagement.AuthenticateWithCode(ctx, usermanagement.AuthenticateWithCodeOpts{
		ClientID: p.cfg.ClientID,
		Code:     code,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to authenticate with code", "error", err)
		return nil, ErrInvalidCode
	}

	u := resp.User
	return &FederatedProfile{
		ProviderID: u.ID,
		Email:      NormalizeEmail(u.Email),
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		AvatarURL:  u.ProfilePictureURL,
	}, nil
}
