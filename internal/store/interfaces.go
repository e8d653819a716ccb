package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"helloteam.app/api/internal/model"
)

var (
	// ErrNotFound is returned when a requested entity does not exist, or exists
	// outside the workspace the query was filtered to.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate wraps unique constraint violations. Use DuplicateConstraint
	// to learn which constraint fired.
	ErrDuplicate = errors.New("duplicate")
)

// Tenant-scoped methods take workspaceID as a filter: nil means unscoped
// (privileged callers only), otherwise rows outside that workspace are invisible.

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByWorkOSID(ctx context.Context, workosID string) (*model.User, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *model.User) error
	UpdateProfile(ctx context.Context, user *model.User) error
	SetPassword(ctx context.Context, id int64, passwordHash string) error
	SetLastLogin(ctx context.Context, id int64) error
	MarkEmailVerified(ctx context.Context, id int64) error
	LinkWorkOSID(ctx context.Context, id int64, workosID string) error
}

type OrganizationTypeStore interface {
	GetByID(ctx context.Context, id int64) (*model.OrganizationType, error)
	ListActive(ctx context.Context) ([]model.OrganizationType, error)
	Create(ctx context.Context, orgType *model.OrganizationType) error
}

type WorkspaceStore interface {
	GetByID(ctx context.Context, id int64) (*model.Workspace, error)
	// GetEarliestForUser returns the oldest workspace the user owns or staffs.
	GetEarliestForUser(ctx context.Context, userID int64) (*model.Workspace, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Workspace, error)
	IsMember(ctx context.Context, workspaceID, userID int64) (bool, error)
	NameExists(ctx context.Context, name string) (bool, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, ws *model.Workspace) error
	Update(ctx context.Context, ws *model.Workspace) error
}

type StaffStore interface {
	Add(ctx context.Context, staff *model.WorkspaceStaff) error
	Get(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceStaff, error)
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.WorkspaceStaff, error)
	Remove(ctx context.Context, workspaceID, userID int64) error
	IsStaffEmail(ctx context.Context, workspaceID int64, email string) (bool, error)
}

type StaffInvitationStore interface {
	Create(ctx context.Context, inv *model.StaffInvitation) error
	GetByCode(ctx context.Context, code string) (*model.StaffInvitation, error)
	Get(ctx context.Context, code string, workspaceID *int64) (*model.StaffInvitation, error)
	List(ctx context.Context, workspaceID *int64) ([]model.StaffInvitation, error)
	Delete(ctx context.Context, code string, workspaceID *int64) error
	Accept(ctx context.Context, code string) (*model.StaffInvitation, error)
}

type PasswordResetStore interface {
	Create(ctx context.Context, userID int64, id uuid.UUID, validThrough time.Time) (*model.PasswordResetToken, error)
	Get(ctx context.Context, id uuid.UUID) (*model.PasswordResetToken, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteForUser(ctx context.Context, userID int64) error
}

type LeadStore interface {
	Upsert(ctx context.Context, lead *model.Lead) error
}

type PostStore interface {
	Create(ctx context.Context, post *model.Post) error
	Get(ctx context.Context, id int64, workspaceID *int64) (*model.Post, error)
	List(ctx context.Context, workspaceID *int64, limit, offset int32) ([]model.Post, error)
	UpdateContent(ctx context.Context, post *model.Post, workspaceID *int64) error
	Delete(ctx context.Context, id int64, workspaceID *int64) error
}

type CommentStore interface {
	Create(ctx context.Context, comment *model.Comment) error
	Get(ctx context.Context, id int64, workspaceID *int64) (*model.Comment, error)
	List(ctx context.Context, workspaceID *int64, postID *int64) ([]model.Comment, error)
	ListForPosts(ctx context.Context, postIDs []int64) ([]model.Comment, error)
	UpdateContent(ctx context.Context, comment *model.Comment, workspaceID *int64) error
	Delete(ctx context.Context, id int64, workspaceID *int64) error
}

type ActivityStore interface {
	Create(ctx context.Context, activity *model.Activity) error
	Get(ctx context.Context, id int64, workspaceID *int64) (*model.Activity, error)
	List(ctx context.Context, workspaceID *int64, targetType *model.TargetType, targetID *int64) ([]model.Activity, error)
	ListForTargets(ctx context.Context, activityType model.ActivityType, targetType model.TargetType, targetIDs []int64) ([]model.Activity, error)
	Delete(ctx context.Context, id int64, workspaceID *int64) error
}

type ImageStore interface {
	Create(ctx context.Context, img *model.Image) error
	Get(ctx context.Context, id int64, workspaceID *int64) (*model.Image, error)
	List(ctx context.Context, workspaceID *int64) ([]model.Image, error)
	ListForPosts(ctx context.Context, postIDs []int64) ([]model.Image, error)
	AttachToPost(ctx context.Context, postID, workspaceID int64, ids []int64) (int64, error)
	Delete(ctx context.Context, id int64, workspaceID *int64) error
}

type VideoStore interface {
	Create(ctx context.Context, video *model.Video) error
	Get(ctx context.Context, id int64, workspaceID *int64) (*model.Video, error)
	List(ctx context.Context, workspaceID *int64) ([]model.Video, error)
	ListForPosts(ctx context.Context, postIDs []int64) ([]model.Video, error)
	AttachToPost(ctx context.Context, postID, workspaceID int64, ids []int64) (int64, error)
	Delete(ctx context.Context, id int64, workspaceID *int64) error
}
