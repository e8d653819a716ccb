package store

import (
	"helloteam.app/api/core/db/sqlc"
)

// Stores hands out stores bound to one Queries, either the pool or a transaction.
type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) OrganizationTypes() OrganizationTypeStore {
	return newOrganizationTypeStore(s.queries)
}

func (s *Stores) Workspaces() WorkspaceStore {
	return newWorkspaceStore(s.queries)
}

func (s *Stores) Staff() StaffStore {
	return newStaffStore(s.queries)
}

func (s *Stores) StaffInvitations() StaffInvitationStore {
	return newStaffInvitationStore(s.queries)
}

func (s *Stores) PasswordResets() PasswordResetStore {
	return newPasswordResetStore(s.queries)
}

func (s *Stores) Leads() LeadStore {
	return newLeadStore(s.queries)
}

func (s *Stores) Posts() PostStore {
	return newPostStore(s.queries)
}

func (s *Stores) Comments() CommentStore {
	return newCommentStore(s.queries)
}

func (s *Stores) Activities() ActivityStore {
	return newActivityStore(s.queries)
}

func (s *Stores) Images() ImageStore {
	return newImageStore(s.queries)
}

func (s *Stores) Videos() VideoStore {
	return newVideoStore(s.queries)
}
