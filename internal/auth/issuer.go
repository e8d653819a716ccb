package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"helloteam.app/api/common/errs"
	"helloteam.app/api/internal/model"
	"helloteam.app/api/internal/store"
)

var (
	ErrBadCredentials     = errs.InvalidToken("no active account found with the given credentials")
	ErrNoWorkspace        = errs.NoWorkspace("user doesn't belong to any workspace")
	ErrInvalidWorkspace   = errs.NotFound("invalid workspace id")
	ErrWorkspaceRequired  = errs.NotFound("workspace id is required")
	ErrWorkspaceForbidden = errs.Forbidden("user is not allowed to login on this workspace")
)

// WorkspaceLookup is the slice of the tenant store the issuer reads.
type WorkspaceLookup interface {
	GetByID(ctx context.Context, id int64) (*model.Workspace, error)
	GetEarliestForUser(ctx context.Context, userID int64) (*model.Workspace, error)
	IsMember(ctx context.Context, workspaceID, userID int64) (bool, error)
}

type Credentials struct {
	Email       string
	Password    string
	WorkspaceID OptionalID
}

type LoginResult struct {
	Tokens *TokenPair
	User   *model.User
	// Workspace is nil when the tokens carry no workspace claim.
	Workspace *model.Workspace
}

type Issuer interface {
	// Issue mints a pair for an already authenticated user. An explicit
	// workspace is trusted; callers check membership first.
	Issue(ctx context.Context, user *model.User, workspaceID OptionalID) (*TokenPair, error)
	// Validate checks a password login and returns tokens bound to the
	// requested or default workspace.
	Validate(ctx context.Context, creds Credentials) (*LoginResult, error)
	// Refresh exchanges a refresh token for a new pair with the same claim.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// DefaultWorkspace is the oldest workspace the user owns or staffs.
	DefaultWorkspace(ctx context.Context, userID int64) (*model.Workspace, error)
}

type issuer struct {
	signer      *Signer
	credentials CredentialStore
	workspaces  WorkspaceLookup
}

func NewIssuer(signer *Signer, credentials CredentialStore, workspaces WorkspaceLookup) Issuer {
	return &issuer{signer: signer, credentials: credentials, workspaces: workspaces}
}

func (i *issuer) Issue(ctx context.Context, user *model.User, workspaceID OptionalID) (*TokenPair, error) {
	if !workspaceID.IsSet() && !user.IsSuperuser {
		ws, err := i.DefaultWorkspace(ctx, user.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrNoWorkspace
			}
			return nil, err
		}
		workspaceID = SomeID(ws.ID)
	}

	pair, err := i.signer.Pair(user.ID, workspaceID)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "tokens issued",
		"user_id", user.ID,
		"workspace_id", workspaceID.String(),
	)
	return pair, nil
}

func (i *issuer) Validate(ctx context.Context, creds Credentials) (*LoginResult, error) {
	user, err := i.credentials.FindByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if !i.credentials.VerifyPassword(user, creds.Password) || !user.IsActive {
		return nil, ErrBadCredentials
	}

	var ws *model.Workspace
	if wsID, ok := creds.WorkspaceID.Get(); ok {
		ws, err = i.workspaces.GetByID(ctx, wsID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrInvalidWorkspace
			}
			return nil, fmt.Errorf("getting workspace: %w", err)
		}
		if !user.IsSuperuser {
			member, err := i.workspaces.IsMember(ctx, ws.ID, user.ID)
			if err != nil {
				return nil, fmt.Errorf("checking membership: %w", err)
			}
			if !member {
				slog.WarnContext(ctx, "login denied for workspace",
					"user_id", user.ID,
					"workspace_id", ws.ID,
				)
				return nil, ErrWorkspaceForbidden
			}
		}
	} else if !user.IsSuperuser {
		ws, err = i.DefaultWorkspace(ctx, user.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrWorkspaceRequired
			}
			return nil, err
		}
	}

	wsClaim := NoID
	if ws != nil {
		wsClaim = SomeID(ws.ID)
	}
	pair, err := i.Issue(ctx, user, wsClaim)
	if err != nil {
		return nil, err
	}
	// Only a password login counts as a login; switch, sign-up and refresh do not.
	if err := i.credentials.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}
	return &LoginResult{Tokens: pair, User: user, Workspace: ws}, nil
}

func (i *issuer) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	p, err := i.signer.Parse(refreshToken, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	user, err := i.credentials.FindByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errs.InvalidToken("user not found")
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	if !user.IsActive {
		return nil, errs.InvalidToken("user is inactive")
	}

	return i.signer.Pair(user.ID, p.WorkspaceID)
}

func (i *issuer) DefaultWorkspace(ctx context.Context, userID int64) (*model.Workspace, error) {
	ws, err := i.workspaces.GetEarliestForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("getting default workspace: %w", err)
	}
	return ws, nil
}
