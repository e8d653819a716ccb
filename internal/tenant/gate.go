// Package tenant decides, once per request, which workspace's rows a caller
// may read and write.
package tenant

import (
	"context"
	"fmt"
	"log/slog"

	"helloteam.app/api/common/errs"
	"helloteam.app/api/internal/auth"
	"helloteam.app/api/internal/model"
)

var (
	ErrWorkspaceRequired = errs.Forbidden("must specify workspace")
	ErrNotMember         = errs.Forbidden("user is not a member of this workspace")
	ErrUnauthenticated   = errs.InvalidToken("authentication credentials were not provided")
	ErrNoTargetWorkspace = errs.Validation("workspace is required", "workspace")
)

// MembershipChecker reports whether a user owns or staffs a workspace.
type MembershipChecker interface {
	IsMember(ctx context.Context, workspaceID, userID int64) (bool, error)
}

// IsPrivileged is the only place superuser bypass is decided.
func IsPrivileged(user *model.User) bool {
	return user != nil && user.IsSuperuser
}

type scopeKind int

const (
	scopeEmpty scopeKind = iota
	scopeWorkspace
	scopeUnscoped
)

// emptyFilter matches no row: snowflake ids are always positive.
var emptyFilter int64 = 0

// Scope is the outcome of a successful authorization. The zero value sees
// nothing.
type Scope struct {
	kind        scopeKind
	workspaceID int64
}

func Workspace(id int64) Scope {
	return Scope{kind: scopeWorkspace, workspaceID: id}
}

func Unscoped() Scope {
	return Scope{kind: scopeUnscoped}
}

func Empty() Scope {
	return Scope{kind: scopeEmpty}
}

// Filter is handed to every tenant-scoped store query. It is nil only for a
// privileged caller with no workspace claim.
func (s Scope) Filter() *int64 {
	switch s.kind {
	case scopeWorkspace:
		id := s.workspaceID
		return &id
	case scopeUnscoped:
		return nil
	default:
		id := emptyFilter
		return &id
	}
}

func (s Scope) WorkspaceID() (int64, bool) {
	return s.workspaceID, s.kind == scopeWorkspace
}

func (s Scope) IsUnscoped() bool {
	return s.kind == scopeUnscoped
}

func (s Scope) String() string {
	switch s.kind {
	case scopeWorkspace:
		return fmt.Sprintf("workspace:%d", s.workspaceID)
	case scopeUnscoped:
		return "unscoped"
	default:
		return "empty"
	}
}

type Gate struct {
	members MembershipChecker
}

func NewGate(members MembershipChecker) *Gate {
	return &Gate{members: members}
}

// Authorize moves a request from WorkspaceResolved to Authorized or Denied.
// A denial is returned as an error and the Scope must not be used.
func (g *Gate) Authorize(ctx context.Context, rc auth.RequestContext) (Scope, error) {
	user := rc.User
	if user == nil {
		return Scope{}, ErrUnauthenticated
	}

	wsID, ok := rc.WorkspaceID.Get()
	if !ok {
		switch {
		case IsPrivileged(user):
			return Unscoped(), nil
		case user.IsStaff:
			return Empty(), nil
		default:
			return Scope{}, ErrWorkspaceRequired
		}
	}

	if err := g.checkMember(ctx, user, wsID); err != nil {
		return Scope{}, err
	}
	return Workspace(wsID), nil
}

// TargetWorkspace resolves the workspace a write lands in. An explicit value
// from the payload wins over the ambient one, and must itself pass the
// membership check when it differs.
func (g *Gate) TargetWorkspace(ctx context.Context, rc auth.RequestContext, scope Scope, explicit *int64) (int64, error) {
	ambient, hasAmbient := scope.WorkspaceID()

	if explicit == nil {
		if !hasAmbient {
			return 0, ErrNoTargetWorkspace
		}
		return ambient, nil
	}

	if hasAmbient && *explicit == ambient {
		return ambient, nil
	}
	if err := g.checkMember(ctx, rc.User, *explicit); err != nil {
		return 0, err
	}
	return *explicit, nil
}

func (g *Gate) checkMember(ctx context.Context, user *model.User, workspaceID int64) error {
	if user == nil {
		return ErrUnauthenticated
	}
	if IsPrivileged(user) {
		return nil
	}
	member, err := g.members.IsMember(ctx, workspaceID, user.ID)
	if err != nil {
		return fmt.Errorf("checking workspace membership: %w", err)
	}
	if !member {
		slog.WarnContext(ctx, "workspace access denied",
			"user_id", user.ID,
			"workspace_id", workspaceID,
		)
		return ErrNotMember
	}
	return nil
}
