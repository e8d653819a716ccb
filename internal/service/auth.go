package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/crypto/bcrypt"

	"helloteam.app/api/common/errs"
	"helloteam.app/api/common/id"
	"helloteam.app/api/common/logger"
	"helloteam.app/api/internal/auth"
	"helloteam.app/api/internal/mail"
	"helloteam.app/api/internal/model"
	"helloteam.app/api/internal/store"
	"helloteam.app/api/internal/tenant"
)

var (
	ErrFederatedDisabled     = errs.NotFound("federated sign-in is not configured")
	ErrFederatedUnknownUser  = errs.InvalidToken("user not found")
	ErrNoAssociatedWorkspace = errs.Forbidden("user is not associated to any workspace")
	ErrSwitchNotFound        = errs.NotFound("workspace not found or the user doesn't belong to it")
	ErrInvalidVerification   = errs.Forbidden("invalid token")
	ErrResetTokenNotFound    = errs.NotFound("token does not exist")
	ErrResetTokenExpired     = errs.NotFound("token has expired")
	ErrUserEmailNotFound     = errs.NotFound("user with this email does not exist")
	ErrInvalidOrgType        = errs.Validation("invalid organization type", "organization_type")
)

type SignUpInput struct {
	Email              string
	Password           string
	WorkspaceName      string
	OrganizationTypeID int64
	FirstName          string
	LastName           string
	Phone              *string
}

type SocialSignUpInput struct {
	FirstName          string
	LastName           string
	Email              string
	WorkspaceName      string
	OrganizationTypeID int64
	Phone              string
	SocialProvider     string
	// SocialToken is the one-time code returned by the provider redirect.
	SocialToken string
	Password    string
}

type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (*auth.LoginResult, error)
	SocialSignUp(ctx context.Context, in SocialSignUpInput) (*auth.LoginResult, error)
	Login(ctx context.Context, creds auth.Credentials) (*auth.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
	FederatedAuthorizationURL(state string) (string, error)
	LoginWithFederated(ctx context.Context, code string) (*auth.LoginResult, error)
	SwitchWorkspace(ctx context.Context, user *model.User, workspaceID int64) (*auth.LoginResult, error)
	SendVerificationEmail(ctx context.Context, user *model.User) error
	VerifyEmail(ctx context.Context, user *model.User, token string) (*model.User, error)
	RecoverPassword(ctx context.Context, email string) error
	CheckResetToken(ctx context.Context, tokenID string) error
	ResetPassword(ctx context.Context, tokenID, newPassword string) error
	// EmailOwner returns the user holding email, or nil when it is free.
	EmailOwner(ctx context.Context, email string) (*model.User, error)
}

type AuthServiceConfig struct {
	Users       store.UserStore
	Workspaces  store.WorkspaceStore
	OrgTypes    store.OrganizationTypeStore
	Resets      store.PasswordResetStore
	TxRunner    TxRunner
	Issuer      auth.Issuer
	Signer      *auth.Signer
	Federated   auth.FederatedProvider
	Notifier    mail.Notifier
	FrontendURL string
	Now         func() time.Time
}

type authService struct {
	cfg AuthServiceConfig
	now func() time.Time
}

func NewAuthService(cfg AuthServiceConfig) AuthService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	cfg.FrontendURL = strings.TrimRight(cfg.FrontendURL, "/")
	return &authService{cfg: cfg, now: now}
}

func (s *authService) SignUp(ctx context.Context, in SignUpInput) (_ *auth.LoginResult, err error) {
	span := logger.StartSpan(ctx, "auth.sign_up")
	defer func() { span.Finish(err) }()
	ctx = span.Context()

	in.Email = auth.NormalizeEmail(in.Email)
	if err := requireFields(map[string]bool{
		"email":             in.Email != "",
		"password":          in.Password != "",
		"workspace_name":    strings.TrimSpace(in.WorkspaceName) != "",
		"organization_type": in.OrganizationTypeID != 0,
	}, "email", "password", "workspace_name", "organization_type"); err != nil {
		return nil, err
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}
	if err := s.checkAvailable(ctx, in.Email, in.WorkspaceName, in.OrganizationTypeID); err != nil {
		return nil, err
	}

	var user *model.User
	var ws *model.Workspace
	err = s.cfg.TxRunner.WithTx(ctx, func(sp StoreProvider) error {
		user = &model.User{
			ID:        id.New(),
			Email:     in.Email,
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Phone:     in.Phone,
			IsActive:  true,
			IsStaff:   true,
		}
		if err := auth.NewCredentialStore(sp.Users()).Create(ctx, user, in.Password); err != nil {
			return translateUserDuplicate(err)
		}

		var err error
		ws, err = createOwnedWorkspace(ctx, sp.Workspaces(), in.WorkspaceName, in.OrganizationTypeID, user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.completeSignUp(ctx, user, ws)
}

func (s *authService) SocialSignUp(ctx context.Context, in SocialSignUpInput) (_ *auth.LoginResult, err error) {
	span := logger.StartSpan(ctx, "auth.social_sign_up")
	defer func() { span.Finish(err) }()
	ctx = span.Context()

	in.Email = auth.NormalizeEmail(in.Email)
	if err := requireFields(map[string]bool{
		"first_name":        in.FirstName != "",
		"last_name":         in.LastName != "",
		"email":             in.Email != "",
		"workspace_name":    strings.TrimSpace(in.WorkspaceName) != "",
		"organization_type": in.OrganizationTypeID != 0,
		"phone_number":      in.Phone != "",
		"social_provider":   in.SocialProvider != "",
		"social_token":      in.SocialToken != "",
	}, "first_name", "last_name", "email", "workspace_name", "organization_type",
		"phone_number", "social_provider", "social_token"); err != nil {
		return nil, err
	}
	if in.Password != "" {
		if err := validatePassword(in.Password); err != nil {
			return nil, err
		}
	}
	if s.cfg.Federated == nil {
		return nil, ErrFederatedDisabled
	}
	if err := s.checkAvailable(ctx, in.Email, in.WorkspaceName, in.OrganizationTypeID); err != nil {
		return nil, err
	}

	profile, err := s.cfg.Federated.Authenticate(ctx, in.SocialToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCode) {
			return nil, errs.Wrap(errs.KindInvalidToken, "invalid social token", err)
		}
		return nil, err
	}
	if profile.Email != in.Email {
		if taken, err := s.cfg.Users.EmailExists(ctx, profile.Email); err != nil {
			return nil, fmt.Errorf("checking email: %w", err)
		} else if taken {
			return nil, ErrEmailInUse
		}
	}

	phone := in.Phone
	var user *model.User
	var ws *model.Workspace
	err = s.cfg.TxRunner.WithTx(ctx, func(sp StoreProvider) error {
		user = &model.User{
			ID:            id.New(),
			Email:         profile.Email,
			FirstName:     firstNonEmpty(profile.FirstName, in.FirstName),
			LastName:      firstNonEmpty(profile.LastName, in.LastName),
			Phone:         &phone,
			WorkOSID:      &profile.ProviderID,
			IsActive:      true,
			VerifiedEmail: true,
		}
		if profile.AvatarURL != "" {
			user.AvatarURL = &profile.AvatarURL
		}
		if err := auth.NewCredentialStore(sp.Users()).Create(ctx, user, in.Password); err != nil {
			return translateUserDuplicate(err)
		}

		var err error
		ws, err = createOwnedWorkspace(ctx, sp.Workspaces(), in.WorkspaceName, in.OrganizationTypeID, user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user signed up with federated identity",
		"user_id", user.ID,
		"workspace_id", ws.ID,
		"provider", in.SocialProvider)

	tokens, err := s.cfg.Issuer.Issue(ctx, user, auth.SomeID(ws.ID))
	if err != nil {
		return nil, err
	}
	return &auth.LoginResult{Tokens: tokens, User: user, Workspace: ws}, nil
}

func (s *authService) completeSignUp(ctx context.Context, user *model.User, ws *model.Workspace) (*auth.LoginResult, error) {
	slog.InfoContext(ctx, "user signed up",
		"user_id", user.ID,
		"workspace_id", ws.ID,
		"email", logger.MaskEmail(user.Email))

	tokens, err := s.cfg.Issuer.Issue(ctx, user, auth.SomeID(ws.ID))
	if err != nil {
		return nil, err
	}

	if err := s.SendVerificationEmail(ctx, user); err != nil {
		slog.WarnContext(ctx, "failed to queue verification email", "error", err, "user_id", user.ID)
	}

	return &auth.LoginResult{Tokens: tokens, User: user, Workspace: ws}, nil
}

// checkAvailable reports collisions before any write.
func (s *authService) checkAvailable(ctx context.Context, email, workspaceName string, orgTypeID int64) error {
	taken, err := s.cfg.Users.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("checking email: %w", err)
	}
	if taken {
		return ErrEmailInUse
	}

	taken, err = s.cfg.Workspaces.NameExists(ctx, strings.TrimSpace(workspaceName))
	if err != nil {
		return fmt.Errorf("checking workspace name: %w", err)
	}
	if taken {
		return ErrWorkspaceNameInUse
	}

	orgType, err := s.cfg.OrgTypes.GetByID(ctx, orgTypeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidOrgType
		}
		return fmt.Errorf("getting organization type: %w", err)
	}
	if !orgType.IsActive {
		return ErrInvalidOrgType
	}
	return nil
}

func (s *authService) Login(ctx context.Context, creds auth.Credentials) (*auth.LoginResult, error) {
	if err := requireFields(map[string]bool{
		"email":    strings.TrimSpace(creds.Email) != "",
		"password": creds.Password != "",
	}, "email", "password"); err != nil {
		return nil, err
	}
	return s.cfg.Issuer.Validate(ctx, creds)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	if refreshToken == "" {
		return nil, errs.Validation("the following required fields are missing", "refresh")
	}
	return s.cfg.Issuer.Refresh(ctx, refreshToken)
}

func (s *authService) FederatedAuthorizationURL(state string) (string, error) {
	if s.cfg.Federated == nil {
		return "", ErrFederatedDisabled
	}
	return s.cfg.Federated.AuthorizationURL(state)
}

func (s *authService) LoginWithFederated(ctx context.Context, code string) (*auth.LoginResult, error) {
	if code == "" {
		return nil, errs.Validation("the following required fields are missing", "code")
	}
	if s.cfg.Federated == nil {
		return nil, ErrFederatedDisabled
	}

	profile, err := s.cfg.Federated.Authenticate(ctx, code)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCode) {
			return nil, errs.Wrap(errs.KindInvalidToken, "invalid authorization code", err)
		}
		return nil, err
	}

	user, err := s.cfg.Users.GetByEmail(ctx, profile.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrFederatedUnknownUser
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrFederatedUnknownUser
	}

	if user.WorkOSID == nil && profile.ProviderID != "" {
		if err := s.cfg.Users.LinkWorkOSID(ctx, user.ID, profile.ProviderID); err != nil {
			slog.WarnContext(ctx, "failed to link federated identity", "error", err, "user_id", user.ID)
		}
	}

	ws, err := s.cfg.Issuer.DefaultWorkspace(ctx, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoAssociatedWorkspace
		}
		return nil, err
	}

	tokens, err := s.cfg.Issuer.Issue(ctx, user, auth.SomeID(ws.ID))
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user logged in with federated identity", "user_id", user.ID, "workspace_id", ws.ID)
	return &auth.LoginResult{Tokens: tokens, User: user, Workspace: ws}, nil
}

func (s *authService) SwitchWorkspace(ctx context.Context, user *model.User, workspaceID int64) (_ *auth.LoginResult, err error) {
	span := logger.StartSpan(ctx, "auth.switch_workspace",
		attribute.Int64("user.id", user.ID),
		attribute.Int64("workspace.id", workspaceID))
	defer func() { span.Finish(err) }()
	ctx = span.Context()

	if workspaceID == 0 {
		return nil, errs.Validation("the following required fields are missing", "workspace_id")
	}

	ws, err := s.cfg.Workspaces.GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSwitchNotFound
		}
		return nil, fmt.Errorf("getting workspace: %w", err)
	}

	if !tenant.IsPrivileged(user) {
		member, err := s.cfg.Workspaces.IsMember(ctx, ws.ID, user.ID)
		if err != nil {
			return nil, fmt.Errorf("checking membership: %w", err)
		}
		if !member {
			return nil, ErrSwitchNotFound
		}
	}

	tokens, err := s.cfg.Issuer.Issue(ctx, user, auth.SomeID(ws.ID))
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "workspace switched", "user_id", user.ID, "workspace_id", ws.ID)
	return &auth.LoginResult{Tokens: tokens, User: user, Workspace: ws}, nil
}

func (s *authService) SendVerificationEmail(ctx context.Context, user *model.User) error {
	token, err := s.cfg.Signer.EmailVerificationToken(user.ID)
	if err != nil {
		return err
	}
	return s.cfg.Notifier.Send(ctx, mail.TemplateVerifyEmail, user.Email, map[string]string{
		"name": user.FullName(),
		"url":  fmt.Sprintf("%s/panel/verify-email/%s", s.cfg.FrontendURL, token),
	})
}

func (s *authService) VerifyEmail(ctx context.Context, user *model.User, token string) (*model.User, error) {
	p, err := s.cfg.Signer.Parse(token, auth.TokenTypeEmailVerification)
	if err != nil || p.UserID != user.ID {
		return nil, ErrInvalidVerification
	}

	if err := s.cfg.Users.MarkEmailVerified(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("marking email verified: %w", err)
	}
	user.VerifiedEmail = true

	slog.InfoContext(ctx, "email verified", "user_id", user.ID)
	return user, nil
}

func (s *authService) RecoverPassword(ctx context.Context, email string) error {
	email = auth.NormalizeEmail(email)
	if email == "" {
		return errs.Validation("'email' is required", "email")
	}

	user, err := s.cfg.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserEmailNotFound
		}
		return fmt.Errorf("getting user: %w", err)
	}

	var token *model.PasswordResetToken
	err = s.cfg.TxRunner.WithTx(ctx, func(sp StoreProvider) error {
		if err := sp.PasswordResets().DeleteForUser(ctx, user.ID); err != nil {
			return fmt.Errorf("deleting previous reset tokens: %w", err)
		}
		var err error
		token, err = sp.PasswordResets().Create(ctx, user.ID, uuid.New(), s.now().Add(model.PasswordResetTTL))
		if err != nil {
			return fmt.Errorf("creating reset token: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "password reset requested", "user_id", user.ID)

	return s.cfg.Notifier.Send(ctx, mail.TemplateResetPassword, user.Email, map[string]string{
		"name": user.FullName(),
		"url":  fmt.Sprintf("%s/reset-password/%s", s.cfg.FrontendURL, token.ID),
	})
}

func (s *authService) CheckResetToken(ctx context.Context, tokenID string) error {
	_, err := s.validResetToken(ctx, s.cfg.Resets, tokenID)
	return err
}

func (s *authService) ResetPassword(ctx context.Context, tokenID, newPassword string) error {
	if newPassword == "" {
		return errs.Validation("'new_password' is required", "new_password")
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	return s.cfg.TxRunner.WithTx(ctx, func(sp StoreProvider) error {
		token, err := s.validResetToken(ctx, sp.PasswordResets(), tokenID)
		if err != nil {
			return err
		}
		if err := auth.NewCredentialStore(sp.Users()).SetPassword(ctx, token.UserID, newPassword); err != nil {
			return err
		}
		if err := sp.PasswordResets().Delete(ctx, token.ID); err != nil {
			return fmt.Errorf("deleting reset token: %w", err)
		}
		slog.InfoContext(ctx, "password reset", "user_id", token.UserID)
		return nil
	})
}

func (s *authService) validResetToken(ctx context.Context, resets store.PasswordResetStore, tokenID string) (*model.PasswordResetToken, error) {
	parsed, err := uuid.Parse(tokenID)
	if err != nil {
		return nil, ErrResetTokenNotFound
	}
	token, err := resets.Get(ctx, parsed)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrResetTokenNotFound
		}
		return nil, fmt.Errorf("getting reset token: %w", err)
	}
	if !token.IsValid(s.now()) {
		return nil, ErrResetTokenExpired
	}
	return token, nil
}

func (s *authService) EmailOwner(ctx context.Context, email string) (*model.User, error) {
	email = auth.NormalizeEmail(email)
	if email == "" {
		return nil, errs.Validation("missing e-mail to query", "email")
	}
	user, err := s.cfg.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

// requireFields returns a Validation error naming every field whose presence
// flag is false, in the given order.
func requireFields(present map[string]bool, order ...string) error {
	var missing []string
	for _, f := range order {
		if !present[f] {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return errs.Validation("the following required fields are missing", missing...)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < auth.MinPasswordLength {
		return errs.Validation(auth.ErrPasswordTooShort.Error(), "password")
	}
	if len(password) > 72 {
		return errs.Validation(bcrypt.ErrPasswordTooLong.Error(), "password")
	}
	return nil
}

func translateUserDuplicate(err error) error {
	if errors.Is(err, store.ErrDuplicate) {
		switch store.DuplicateConstraint(err) {
		case store.ConstraintUserEmail:
			return ErrEmailInUse
		case store.ConstraintUserWorkOSID:
			return errs.Duplicate("this social account is already registered")
		}
	}
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
