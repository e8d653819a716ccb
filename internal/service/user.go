package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"helloteam.app/api/common/errs"
	"helloteam.app/api/internal/model"
	"helloteam.app/api/internal/store"
	"helloteam.app/api/internal/tenant"
)

var (
	ErrCallerNotStaff       = errs.Forbidden("request's user is not a staff member")
	ErrTargetNotInWorkspace = errs.Forbidden("user doesn't belong to the workspace")
	ErrUserNotFound         = errs.NotFound("user not found")
	ErrWorkspaceNotFound    = errs.NotFound("workspace not found")
)

// WorkspacePatch carries the workspace fields a profile update may change.
type WorkspacePatch struct {
	ID       int64
	Name     *string
	Country  *string
	ZipCode  *string
	Timezone *string
}

type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Country   *string
	ZipCode   *string
	Timezone  *string
	AvatarURL *string
	// WorkspaceID names the workspace a staff caller edits the target through.
	WorkspaceID     *int64
	UpdateWorkspace *WorkspacePatch
	IsSigningUp     bool
}

type UpdateUserResult struct {
	User      *model.User
	Workspace *model.Workspace
}

type verificationSender interface {
	SendVerificationEmail(ctx context.Context, user *model.User) error
}

type UserService interface {
	Get(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, caller *model.User, targetID int64, in UpdateUserInput) (*UpdateUserResult, error)
}

type userService struct {
	users        store.UserStore
	workspaces   store.WorkspaceStore
	txRunner     TxRunner
	verification verificationSender
}

func NewUserService(users store.UserStore, workspaces store.WorkspaceStore, txRunner TxRunner, verification verificationSender) UserService {
	return &userService{
		users:        users,
		workspaces:   workspaces,
		txRunner:     txRunner,
		verification: verification,
	}
}

func (s *userService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, caller *model.User, targetID int64, in UpdateUserInput) (*UpdateUserResult, error) {
	if err := s.authorizeUpdate(ctx, caller, targetID, in.WorkspaceID); err != nil {
		return nil, err
	}

	target, err := s.Get(ctx, targetID)
	if err != nil {
		return nil, err
	}
	applyProfile(target, in)

	var ws *model.Workspace
	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if err := sp.Users().UpdateProfile(ctx, target); err != nil {
			return fmt.Errorf("updating user: %w", err)
		}
		if in.UpdateWorkspace == nil {
			return nil
		}
		var err error
		ws, err = s.patchWorkspace(ctx, sp.Workspaces(), caller, in.UpdateWorkspace)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user updated",
		"user_id", target.ID,
		"caller_id", caller.ID,
		"workspace_updated", ws != nil)

	if in.IsSigningUp && !target.VerifiedEmail {
		if err := s.verification.SendVerificationEmail(ctx, target); err != nil {
			slog.WarnContext(ctx, "failed to queue verification email", "error", err, "user_id", target.ID)
		}
	}

	return &UpdateUserResult{User: target, Workspace: ws}, nil
}

// authorizeUpdate allows self edits and superusers. Anyone else must be staff
// of the named workspace the target belongs to.
func (s *userService) authorizeUpdate(ctx context.Context, caller *model.User, targetID int64, workspaceID *int64) error {
	if caller.ID == targetID || tenant.IsPrivileged(caller) {
		return nil
	}
	if !caller.IsStaff {
		return ErrCallerNotStaff
	}
	if workspaceID == nil {
		return errs.Validation("the following required fields are missing", "workspace")
	}

	callerMember, err := s.workspaces.IsMember(ctx, *workspaceID, caller.ID)
	if err != nil {
		return fmt.Errorf("checking caller membership: %w", err)
	}
	if !callerMember {
		return tenant.ErrNotMember
	}

	targetMember, err := s.workspaces.IsMember(ctx, *workspaceID, targetID)
	if err != nil {
		return fmt.Errorf("checking target membership: %w", err)
	}
	if !targetMember {
		return ErrTargetNotInWorkspace
	}
	return nil
}

func (s *userService) patchWorkspace(ctx context.Context, workspaces store.WorkspaceStore, caller *model.User, patch *WorkspacePatch) (*model.Workspace, error) {
	ws, err := workspaces.GetByID(ctx, patch.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("getting workspace: %w", err)
	}

	if !tenant.IsPrivileged(caller) {
		member, err := workspaces.IsMember(ctx, ws.ID, caller.ID)
		if err != nil {
			return nil, fmt.Errorf("checking membership: %w", err)
		}
		if !member {
			return nil, tenant.ErrNotMember
		}
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, errs.Validation("workspace name cannot be blank", "name")
		}
		ws.Name = name
	}
	if patch.Country != nil {
		ws.Country = patch.Country
	}
	if patch.ZipCode != nil {
		ws.ZipCode = patch.ZipCode
	}
	if patch.Timezone != nil {
		ws.Timezone = patch.Timezone
	}

	if err := workspaces.Update(ctx, ws); err != nil {
		if errors.Is(err, store.ErrDuplicate) && store.DuplicateConstraint(err) == store.ConstraintWorkspaceName {
			return nil, ErrWorkspaceNameInUse
		}
		return nil, fmt.Errorf("updating workspace: %w", err)
	}
	return ws, nil
}

func applyProfile(u *model.User, in UpdateUserInput) {
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.Phone != nil {
		u.Phone = in.Phone
	}
	if in.Country != nil {
		u.Country = in.Country
	}
	if in.ZipCode != nil {
		u.ZipCode = in.ZipCode
	}
	if in.Timezone != nil {
		u.Timezone = in.Timezone
	}
	if in.AvatarURL != nil {
		u.AvatarURL = in.AvatarURL
	}
}
