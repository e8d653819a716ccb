package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"helloteam.app/api/common/errs"
	"helloteam.app/api/internal/auth"
	"helloteam.app/api/internal/mail"
	"helloteam.app/api/internal/model"
	"helloteam.app/api/internal/store"
	"helloteam.app/api/internal/tenant"
)

const (
	InviteCodeLength   = 5
	maxInviteCodeTries = 5
)

var (
	ErrInviteNotFound      = errs.NotFound("invitation not found")
	ErrInviteExpired       = errs.NotFound("invitation has expired")
	ErrInviteAlreadyUsed   = errs.NotFound("invitation has already been accepted")
	ErrInviteEmailMismatch = errs.Forbidden("authenticated email does not match invitation")
	ErrOnlyOwnerInvites    = errs.Validation("only workspace owners can invite staff", "created_by")
	ErrAlreadyStaff        = errs.Validation("this email belongs to a user that is already part of this workspace staff", "email")
)

type CreateInvitationInput struct {
	Email       string
	WorkspaceID *int64
}

type StaffInvitationService interface {
	List(ctx context.Context, scope tenant.Scope) ([]model.StaffInvitation, error)
	Create(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in CreateInvitationInput) (*model.StaffInvitation, error)
	Get(ctx context.Context, scope tenant.Scope, code string) (*model.StaffInvitation, error)
	Delete(ctx context.Context, scope tenant.Scope, code string) error
	// Accept is not tenant-scoped: the invitee joins a workspace they are not yet part of.
	Accept(ctx context.Context, user *model.User, code string, role model.StaffRole) (*model.WorkspaceStaff, error)
}

type staffInvitationService struct {
	invitations store.StaffInvitationStore
	workspaces  store.WorkspaceStore
	staff       store.StaffStore
	txRunner    TxRunner
	gate        *tenant.Gate
	notifier    mail.Notifier
	frontendURL string
	now         func() time.Time
}

func NewStaffInvitationService(
	invitations store.StaffInvitationStore,
	workspaces store.WorkspaceStore,
	staff store.StaffStore,
	txRunner TxRunner,
	gate *tenant.Gate,
	notifier mail.Notifier,
	frontendURL string,
) StaffInvitationService {
	return &staffInvitationService{
		invitations: invitations,
		workspaces:  workspaces,
		staff:       staff,
		txRunner:    txRunner,
		gate:        gate,
		notifier:    notifier,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		now:         time.Now,
	}
}

func (s *staffInvitationService) List(ctx context.Context, scope tenant.Scope) ([]model.StaffInvitation, error) {
	invs, err := s.invitations.List(ctx, scope.Filter())
	if err != nil {
		return nil, fmt.Errorf("listing invitations: %w", err)
	}
	return invs, nil
}

func (s *staffInvitationService) Create(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in CreateInvitationInput) (*model.StaffInvitation, error) {
	email := auth.NormalizeEmail(in.Email)
	if email == "" {
		return nil, errs.Validation("the following required fields are missing", "email")
	}

	workspaceID, err := s.gate.TargetWorkspace(ctx, rc, scope, in.WorkspaceID)
	if err != nil {
		return nil, err
	}

	ws, err := s.workspaces.GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("getting workspace: %w", err)
	}
	if !ws.IsOwnedBy(rc.UserID()) && !tenant.IsPrivileged(rc.User) {
		return nil, ErrOnlyOwnerInvites
	}

	isStaff, err := s.staff.IsStaffEmail(ctx, ws.ID, email)
	if err != nil {
		return nil, fmt.Errorf("checking staff email: %w", err)
	}
	if isStaff {
		return nil, ErrAlreadyStaff
	}

	createdBy := rc.UserID()
	inv := &model.StaffInvitation{
		Email:       email,
		CreatedBy:   &createdBy,
		WorkspaceID: ws.ID,
	}
	if err := s.insertWithFreshCode(ctx, inv); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "staff invitation created",
		"workspace_id", ws.ID,
		"code", inv.Code,
		"created_by", createdBy)

	err = s.notifier.Send(ctx, mail.TemplateStaffInvitation, email, map[string]string{
		"workspace": ws.Name,
		"code":      inv.Code,
		"url":       fmt.Sprintf("%s/invitation/%s", s.frontendURL, inv.Code),
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to queue invitation email", "error", err, "code", inv.Code)
	}

	return inv, nil
}

// insertWithFreshCode retries on primary key collisions, which the short code
// makes possible.
func (s *staffInvitationService) insertWithFreshCode(ctx context.Context, inv *model.StaffInvitation) error {
	for range maxInviteCodeTries {
		inv.Code = generateInviteCode()
		err := s.invitations.Create(ctx, inv)
		if err == nil {
			return nil
		}
		if errors.Is(err, store.ErrDuplicate) && store.DuplicateConstraint(err) == store.ConstraintInvitationPK {
			continue
		}
		return fmt.Errorf("creating invitation: %w", err)
	}
	return fmt.Errorf("creating invitation: no free code after %d attempts", maxInviteCodeTries)
}

func (s *staffInvitationService) Get(ctx context.Context, scope tenant.Scope, code string) (*model.StaffInvitation, error) {
	inv, err := s.invitations.Get(ctx, normalizeCode(code), scope.Filter())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, fmt.Errorf("getting invitation: %w", err)
	}
	return inv, nil
}

func (s *staffInvitationService) Delete(ctx context.Context, scope tenant.Scope, code string) error {
	if err := s.invitations.Delete(ctx, normalizeCode(code), scope.Filter()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInviteNotFound
		}
		return fmt.Errorf("deleting invitation: %w", err)
	}
	slog.InfoContext(ctx, "staff invitation deleted", "code", code)
	return nil
}

func (s *staffInvitationService) Accept(ctx context.Context, user *model.User, code string, role model.StaffRole) (*model.WorkspaceStaff, error) {
	if role == "" {
		role = model.StaffRoleAssistant
	}
	if !role.IsValid() {
		return nil, errs.Validation("invalid staff role", "role")
	}

	var staff *model.WorkspaceStaff
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		inv, err := sp.StaffInvitations().GetByCode(ctx, normalizeCode(code))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteNotFound
			}
			return fmt.Errorf("getting invitation: %w", err)
		}
		if inv.AcceptedAt != nil {
			return ErrInviteAlreadyUsed
		}
		if !inv.IsValid(s.now()) {
			return ErrInviteExpired
		}
		if !strings.EqualFold(inv.Email, user.Email) {
			return ErrInviteEmailMismatch
		}

		staff = &model.WorkspaceStaff{WorkspaceID: inv.WorkspaceID, UserID: user.ID, Role: role}
		if err := sp.Staff().Add(ctx, staff); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return ErrAlreadyStaff
			}
			return fmt.Errorf("adding staff: %w", err)
		}

		if _, err := sp.StaffInvitations().Accept(ctx, inv.Code); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteAlreadyUsed
			}
			return fmt.Errorf("accepting invitation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "staff invitation accepted",
		"workspace_id", staff.WorkspaceID,
		"user_id", user.ID,
		"role", string(role))
	return staff, nil
}

func generateInviteCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:InviteCodeLength])
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
