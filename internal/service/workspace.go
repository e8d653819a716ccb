package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"helloteam.app/api/common"
	"helloteam.app/api/common/errs"
	"helloteam.app/api/common/id"
	"helloteam.app/api/internal/model"
	"helloteam.app/api/internal/store"
)

const maxSlugAttempts = 20

var (
	ErrEmailInUse         = errs.Duplicate("this email is already in use")
	ErrWorkspaceNameInUse = errs.Duplicate("this workspace name is already in use")
)

type WorkspaceService interface {
	ListForUser(ctx context.Context, userID int64) ([]model.Workspace, error)
	ListOrganizationTypes(ctx context.Context) ([]model.OrganizationType, error)
	// IsNameAvailable compares case-insensitively.
	IsNameAvailable(ctx context.Context, name string) (bool, error)
}

type workspaceService struct {
	workspaces store.WorkspaceStore
	orgTypes   store.OrganizationTypeStore
}

func NewWorkspaceService(workspaces store.WorkspaceStore, orgTypes store.OrganizationTypeStore) WorkspaceService {
	return &workspaceService{workspaces: workspaces, orgTypes: orgTypes}
}

func (s *workspaceService) ListForUser(ctx context.Context, userID int64) ([]model.Workspace, error) {
	ws, err := s.workspaces.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing workspaces: %w", err)
	}
	return ws, nil
}

func (s *workspaceService) ListOrganizationTypes(ctx context.Context) ([]model.OrganizationType, error) {
	types, err := s.orgTypes.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing organization types: %w", err)
	}
	return types, nil
}

func (s *workspaceService) IsNameAvailable(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, errs.Validation("missing name to query", "name")
	}
	exists, err := s.workspaces.NameExists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("checking workspace name: %w", err)
	}
	return !exists, nil
}

// createOwnedWorkspace inserts a workspace owned by ownerID with a slug that
// is free at the time of the check. Unique constraints still arbitrate races.
func createOwnedWorkspace(ctx context.Context, workspaces store.WorkspaceStore, name string, orgTypeID, ownerID int64) (*model.Workspace, error) {
	slug, err := uniqueSlug(ctx, workspaces, name)
	if err != nil {
		return nil, err
	}

	ws := &model.Workspace{
		ID:                 id.New(),
		Name:               strings.TrimSpace(name),
		Slug:               slug,
		OwnerID:            &ownerID,
		OrganizationTypeID: &orgTypeID,
	}
	if err := workspaces.Create(ctx, ws); err != nil {
		if errors.Is(err, store.ErrDuplicate) && store.DuplicateConstraint(err) == store.ConstraintWorkspaceName {
			return nil, ErrWorkspaceNameInUse
		}
		return nil, fmt.Errorf("creating workspace: %w", err)
	}
	return ws, nil
}

func uniqueSlug(ctx context.Context, workspaces store.WorkspaceStore, name string) (string, error) {
	base, err := common.Slugify(name, "workspace")
	if err != nil {
		return "", errs.Validation("workspace name must contain letters or digits", "workspace_name")
	}

	candidate := base
	for n := 2; n < maxSlugAttempts+2; n++ {
		exists, err := workspaces.SlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("checking slug: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = common.WithSuffix(base, n)
	}
	return "", fmt.Errorf("no free slug for %q after %d attempts", base, maxSlugAttempts)
}
