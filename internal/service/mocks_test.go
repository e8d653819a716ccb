package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"helloteam.app/api/internal/auth"
	"helloteam.app/api/internal/model"
	"helloteam.app/api/internal/queue"
	"helloteam.app/api/internal/service"
	"helloteam.app/api/internal/store"
)

type mockUserStore struct {
	getByIDFn           func(ctx context.Context, id int64) (*model.User, error)
	getByEmailFn        func(ctx context.Context, email string) (*model.User, error)
	listByIDsFn         func(ctx context.Context, ids []int64) ([]model.User, error)
	emailExistsFn       func(ctx context.Context, email string) (bool, error)
	createFn            func(ctx context.Context, user *model.User) error
	updateProfileFn     func(ctx context.Context, user *model.User) error
	setPasswordFn       func(ctx context.Context, id int64, hash string) error
	markEmailVerifiedFn func(ctx context.Context, id int64) error
	linkWorkOSIDFn      func(ctx context.Context, id int64, workosID string) error
	createCalls         int
	lastLoginCalls      int
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) GetByWorkOSID(_ context.Context, _ string) (*model.User, error) {
	return nil, store.ErrNotFound
}

func (m *mockUserStore) ListByIDs(ctx context.Context, ids []int64) ([]model.User, error) {
	if m.listByIDsFn != nil {
		return m.listByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.emailExistsFn != nil {
		return m.emailExistsFn(ctx, email)
	}
	return false, nil
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) UpdateProfile(ctx context.Context, user *model.User) error {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) SetPassword(ctx context.Context, id int64, hash string) error {
	if m.setPasswordFn != nil {
		return m.setPasswordFn(ctx, id, hash)
	}
	return nil
}

func (m *mockUserStore) SetLastLogin(_ context.Context, _ int64) error {
	m.lastLoginCalls++
	return nil
}

func (m *mockUserStore) MarkEmailVerified(ctx context.Context, id int64) error {
	if m.markEmailVerifiedFn != nil {
		return m.markEmailVerifiedFn(ctx, id)
	}
	return nil
}

func (m *mockUserStore) LinkWorkOSID(ctx context.Context, id int64, workosID string) error {
	if m.linkWorkOSIDFn != nil {
		return m.linkWorkOSIDFn(ctx, id, workosID)
	}
	return nil
}

type mockOrgTypeStore struct {
	getByIDFn func(ctx context.Context, id int64) (*model.OrganizationType, error)
}

func (m *mockOrgTypeStore) GetByID(ctx context.Context, id int64) (*model.OrganizationType, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &model.OrganizationType{ID: id, Name: "Club", IsActive: true}, nil
}

func (m *mockOrgTypeStore) ListActive(_ context.Context) ([]model.OrganizationType, error) {
	return nil, nil
}

func (m *mockOrgTypeStore) Create(_ context.Context, _ *model.OrganizationType) error {
	return nil
}

type mockWorkspaceStore struct {
	getByIDFn    func(ctx context.Context, id int64) (*model.Workspace, error)
	earliestFn   func(ctx context.Context, userID int64) (*model.Workspace, error)
	isMemberFn   func(ctx context.Context, workspaceID, userID int64) (bool, error)
	nameExistsFn func(ctx context.Context, name string) (bool, error)
	slugExistsFn func(ctx context.Context, slug string) (bool, error)
	createFn     func(ctx context.Context, ws *model.Workspace) error
	updateFn     func(ctx context.Context, ws *model.Workspace) error
}

func (m *mockWorkspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockWorkspaceStore) GetEarliestForUser(ctx context.Context, userID int64) (*model.Workspace, error) {
	if m.earliestFn != nil {
		return m.earliestFn(ctx, userID)
	}
	return nil, store.ErrNotFound
}

func (m *mockWorkspaceStore) ListByUser(_ context.Context, _ int64) ([]model.Workspace, error) {
	return nil, nil
}

func (m *mockWorkspaceStore) IsMember(ctx context.Context, workspaceID, userID int64) (bool, error) {
	if m.isMemberFn != nil {
		return m.isMemberFn(ctx, workspaceID, userID)
	}
	return false, nil
}

func (m *mockWorkspaceStore) NameExists(ctx context.Context, name string) (bool, error) {
	if m.nameExistsFn != nil {
		return m.nameExistsFn(ctx, name)
	}
	return false, nil
}

func (m *mockWorkspaceStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.slugExistsFn != nil {
		return m.slugExistsFn(ctx, slug)
	}
	return false, nil
}

func (m *mockWorkspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	if m.createFn != nil {
		return m.createFn(ctx, ws)
	}
	return nil
}

func (m *mockWorkspaceStore) Update(ctx context.Context, ws *model.Workspace) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, ws)
	}
	return nil
}

type mockStaffStore struct {
	addFn          func(ctx context.Context, staff *model.WorkspaceStaff) error
	isStaffEmailFn func(ctx context.Context, workspaceID int64, email string) (bool, error)
}

func (m *mockStaffStore) Add(ctx context.Context, staff *model.WorkspaceStaff) error {
	if m.addFn != nil {
		return m.addFn(ctx, staff)
	}
	return nil
}

func (m *mockStaffStore) Get(_ context.Context, _, _ int64) (*model.WorkspaceStaff, error) {
	return nil, store.ErrNotFound
}

func (m *mockStaffStore) ListByWorkspace(_ context.Context, _ int64) ([]model.WorkspaceStaff, error) {
	return nil, nil
}

func (m *mockStaffStore) Remove(_ context.Context, _, _ int64) error {
	return nil
}

func (m *mockStaffStore) IsStaffEmail(ctx context.Context, workspaceID int64, email string) (bool, error) {
	if m.isStaffEmailFn != nil {
		return m.isStaffEmailFn(ctx, workspaceID, email)
	}
	return false, nil
}

type mockInvitationStore struct {
	createFn    func(ctx context.Context, inv *model.StaffInvitation) error
	getByCodeFn func(ctx context.Context, code string) (*model.StaffInvitation, error)
	getFn       func(ctx context.Context, code string, workspaceID *int64) (*model.StaffInvitation, error)
	listFn      func(ctx context.Context, workspaceID *int64) ([]model.StaffInvitation, error)
	acceptFn    func(ctx context.Context, code string) (*model.StaffInvitation, error)
	createCalls int
}

func (m *mockInvitationStore) Create(ctx context.Context, inv *model.StaffInvitation) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, inv)
	}
	return nil
}

func (m *mockInvitationStore) GetByCode(ctx context.Context, code string) (*model.StaffInvitation, error) {
	if m.getByCodeFn != nil {
		return m.getByCodeFn(ctx, code)
	}
	return nil, store.ErrNotFound
}

func (m *mockInvitationStore) Get(ctx context.Context, code string, workspaceID *int64) (*model.StaffInvitation, error) {
	if m.getFn != nil {
		return m.getFn(ctx, code, workspaceID)
	}
	return nil, store.ErrNotFound
}

func (m *mockInvitationStore) List(ctx context.Context, workspaceID *int64) ([]model.StaffInvitation, error) {
	if m.listFn != nil {
		return m.listFn(ctx, workspaceID)
	}
	return nil, nil
}

func (m *mockInvitationStore) Delete(_ context.Context, _ string, _ *int64) error {
	return nil
}

func (m *mockInvitationStore) Accept(ctx context.Context, code string) (*model.StaffInvitation, error) {
	if m.acceptFn != nil {
		return m.acceptFn(ctx, code)
	}
	now := time.Now()
	return &model.StaffInvitation{Code: code, AcceptedAt: &now}, nil
}

type mockResetStore struct {
	tokens         map[uuid.UUID]*model.PasswordResetToken
	deletedForUser []int64
}

func newMockResetStore() *mockResetStore {
	return &mockResetStore{tokens: map[uuid.UUID]*model.PasswordResetToken{}}
}

func (m *mockResetStore) Create(_ context.Context, userID int64, id uuid.UUID, validThrough time.Time) (*model.PasswordResetToken, error) {
	t := &model.PasswordResetToken{ID: id, UserID: userID, ValidThrough: validThrough, CreatedAt: time.Now()}
	m.tokens[id] = t
	return t, nil
}

func (m *mockResetStore) Get(_ context.Context, id uuid.UUID) (*model.PasswordResetToken, error) {
	t, ok := m.tokens[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return t, nil
}

func (m *mockResetStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.tokens[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.tokens, id)
	return nil
}

func (m *mockResetStore) DeleteForUser(_ context.Context, userID int64) error {
	m.deletedForUser = append(m.deletedForUser, userID)
	for id, t := range m.tokens {
		if t.UserID == userID {
			delete(m.tokens, id)
		}
	}
	return nil
}

type mockPostStore struct {
	posts   map[int64]*model.Post
	deleted []int64
}

func newMockPostStore(posts ...model.Post) *mockPostStore {
	m := &mockPostStore{posts: map[int64]*model.Post{}}
	for i := range posts {
		m.posts[posts[i].ID] = &posts[i]
	}
	return m
}

func (m *mockPostStore) Create(_ context.Context, post *model.Post) error {
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostStore) Get(_ context.Context, id int64, workspaceID *int64) (*model.Post, error) {
	p, ok := m.posts[id]
	if !ok || (workspaceID != nil && p.WorkspaceID != *workspaceID) {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockPostStore) List(_ context.Context, workspaceID *int64, _, _ int32) ([]model.Post, error) {
	var out []model.Post
	for _, p := range m.posts {
		if workspaceID == nil || p.WorkspaceID == *workspaceID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockPostStore) UpdateContent(_ context.Context, post *model.Post, workspaceID *int64) error {
	p, ok := m.posts[post.ID]
	if !ok || (workspaceID != nil && p.WorkspaceID != *workspaceID) {
		return store.ErrNotFound
	}
	p.Content = post.Content
	return nil
}

func (m *mockPostStore) Delete(_ context.Context, id int64, workspaceID *int64) error {
	p, ok := m.posts[id]
	if !ok || (workspaceID != nil && p.WorkspaceID != *workspaceID) {
		return store.ErrNotFound
	}
	delete(m.posts, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockCommentStore struct {
	comments []model.Comment
	created  []*model.Comment
}

func (m *mockCommentStore) Create(_ context.Context, comment *model.Comment) error {
	m.created = append(m.created, comment)
	return nil
}

func (m *mockCommentStore) Get(_ context.Context, id int64, workspaceID *int64) (*model.Comment, error) {
	for i := range m.comments {
		c := m.comments[i]
		if c.ID == id && (workspaceID == nil || c.WorkspaceID == *workspaceID) {
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockCommentStore) List(_ context.Context, workspaceID *int64, postID *int64) ([]model.Comment, error) {
	var out []model.Comment
	for _, c := range m.comments {
		if (workspaceID == nil || c.WorkspaceID == *workspaceID) && (postID == nil || c.PostID == *postID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCommentStore) ListForPosts(_ context.Context, postIDs []int64) ([]model.Comment, error) {
	var out []model.Comment
	for _, c := range m.comments {
		for _, id := range postIDs {
			if c.PostID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (m *mockCommentStore) UpdateContent(_ context.Context, _ *model.Comment, _ *int64) error {
	return nil
}

func (m *mockCommentStore) Delete(_ context.Context, _ int64, _ *int64) error {
	return nil
}

type mockActivityStore struct {
	activities []model.Activity
	createFn   func(ctx context.Context, activity *model.Activity) error
}

func (m *mockActivityStore) Create(ctx context.Context, activity *model.Activity) error {
	if m.createFn != nil {
		return m.createFn(ctx, activity)
	}
	m.activities = append(m.activities, *activity)
	return nil
}

func (m *mockActivityStore) Get(_ context.Context, id int64, workspaceID *int64) (*model.Activity, error) {
	for i := range m.activities {
		a := m.activities[i]
		if a.ID == id && (workspaceID == nil || a.WorkspaceID == *workspaceID) {
			return &a, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockActivityStore) List(_ context.Context, workspaceID *int64, targetType *model.TargetType, targetID *int64) ([]model.Activity, error) {
	var out []model.Activity
	for _, a := range m.activities {
		if workspaceID != nil && a.WorkspaceID != *workspaceID {
			continue
		}
		if targetType != nil && a.TargetType != *targetType {
			continue
		}
		if targetID != nil && a.TargetID != *targetID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *mockActivityStore) ListForTargets(_ context.Context, activityType model.ActivityType, targetType model.TargetType, targetIDs []int64) ([]model.Activity, error) {
	var out []model.Activity
	for _, a := range m.activities {
		if a.ActivityType != activityType || a.TargetType != targetType {
			continue
		}
		for _, id := range targetIDs {
			if a.TargetID == id {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

func (m *mockActivityStore) Delete(_ context.Context, _ int64, _ *int64) error {
	return nil
}

type mockImageStore struct {
	images      []model.Image
	attachFn    func(ctx context.Context, postID, workspaceID int64, ids []int64) (int64, error)
	createdWith *model.Image
}

func (m *mockImageStore) Create(_ context.Context, img *model.Image) error {
	m.createdWith = img
	return nil
}

func (m *mockImageStore) Get(_ context.Context, id int64, workspaceID *int64) (*model.Image, error) {
	for i := range m.images {
		img := m.images[i]
		if img.ID == id && (workspaceID == nil || img.WorkspaceID == *workspaceID) {
			return &img, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockImageStore) List(_ context.Context, _ *int64) ([]model.Image, error) {
	return m.images, nil
}

func (m *mockImageStore) ListForPosts(_ context.Context, _ []int64) ([]model.Image, error) {
	return m.images, nil
}

func (m *mockImageStore) AttachToPost(ctx context.Context, postID, workspaceID int64, ids []int64) (int64, error) {
	if m.attachFn != nil {
		return m.attachFn(ctx, postID, workspaceID, ids)
	}
	return int64(len(ids)), nil
}

func (m *mockImageStore) Delete(_ context.Context, _ int64, _ *int64) error {
	return nil
}

type mockVideoStore struct {
	attachFn func(ctx context.Context, postID, workspaceID int64, ids []int64) (int64, error)
}

func (m *mockVideoStore) Create(_ context.Context, _ *model.Video) error {
	return nil
}

func (m *mockVideoStore) Get(_ context.Context, _ int64, _ *int64) (*model.Video, error) {
	return nil, store.ErrNotFound
}

func (m *mockVideoStore) List(_ context.Context, _ *int64) ([]model.Video, error) {
	return nil, nil
}

func (m *mockVideoStore) ListForPosts(_ context.Context, _ []int64) ([]model.Video, error) {
	return nil, nil
}

func (m *mockVideoStore) AttachToPost(ctx context.Context, postID, workspaceID int64, ids []int64) (int64, error) {
	if m.attachFn != nil {
		return m.attachFn(ctx, postID, workspaceID, ids)
	}
	return int64(len(ids)), nil
}

func (m *mockVideoStore) Delete(_ context.Context, _ int64, _ *int64) error {
	return nil
}

type mockLeadStore struct {
	upserted []model.Lead
}

func (m *mockLeadStore) Upsert(_ context.Context, lead *model.Lead) error {
	m.upserted = append(m.upserted, *lead)
	return nil
}

// mockStoreProvider hands the same mocks to code running "inside" a transaction.
type mockStoreProvider struct {
	users       store.UserStore
	workspaces  store.WorkspaceStore
	staff       store.StaffStore
	invitations store.StaffInvitationStore
	resets      store.PasswordResetStore
	posts       store.PostStore
	images      store.ImageStore
	videos      store.VideoStore
}

func (p *mockStoreProvider) Users() store.UserStore                        { return p.users }
func (p *mockStoreProvider) Workspaces() store.WorkspaceStore              { return p.workspaces }
func (p *mockStoreProvider) Staff() store.StaffStore                       { return p.staff }
func (p *mockStoreProvider) StaffInvitations() store.StaffInvitationStore { return p.invitations }
func (p *mockStoreProvider) PasswordResets() store.PasswordResetStore      { return p.resets }
func (p *mockStoreProvider) Posts() store.PostStore                        { return p.posts }
func (p *mockStoreProvider) Images() store.ImageStore                      { return p.images }
func (p *mockStoreProvider) Videos() store.VideoStore                      { return p.videos }

type mockTxRunner struct {
	provider service.StoreProvider
	calls    int
}

func (r *mockTxRunner) WithTx(_ context.Context, fn func(stores service.StoreProvider) error) error {
	r.calls++
	return fn(r.provider)
}

type sentMail struct {
	template  queue.TemplateID
	recipient string
	data      map[string]string
}

type mockNotifier struct {
	sent   []sentMail
	sendFn func(ctx context.Context, templateID queue.TemplateID, recipient string, data map[string]string) error
}

func (m *mockNotifier) Send(ctx context.Context, templateID queue.TemplateID, recipient string, data map[string]string) error {
	m.sent = append(m.sent, sentMail{template: templateID, recipient: recipient, data: data})
	if m.sendFn != nil {
		return m.sendFn(ctx, templateID, recipient, data)
	}
	return nil
}

type mockIssuer struct {
	issueFn    func(ctx context.Context, user *model.User, ws auth.OptionalID) (*auth.TokenPair, error)
	validateFn func(ctx context.Context, creds auth.Credentials) (*auth.LoginResult, error)
	defaultFn  func(ctx context.Context, userID int64) (*model.Workspace, error)
	issued     []auth.OptionalID
}

func (m *mockIssuer) Issue(ctx context.Context, user *model.User, ws auth.OptionalID) (*auth.TokenPair, error) {
	m.issued = append(m.issued, ws)
	if m.issueFn != nil {
		return m.issueFn(ctx, user, ws)
	}
	return &auth.TokenPair{Access: "access", Refresh: "refresh", WorkspaceID: ws}, nil
}

func (m *mockIssuer) Validate(ctx context.Context, creds auth.Credentials) (*auth.LoginResult, error) {
	if m.validateFn != nil {
		return m.validateFn(ctx, creds)
	}
	return nil, auth.ErrBadCredentials
}

func (m *mockIssuer) Refresh(_ context.Context, _ string) (*auth.TokenPair, error) {
	return &auth.TokenPair{Access: "access", Refresh: "refresh"}, nil
}

func (m *mockIssuer) DefaultWorkspace(ctx context.Context, userID int64) (*model.Workspace, error) {
	if m.defaultFn != nil {
		return m.defaultFn(ctx, userID)
	}
	return nil, store.ErrNotFound
}

type mockFederated struct {
	profile *auth.FederatedProfile
	err     error
}

func (m *mockFederated) AuthorizationURL(state string) (string, error) {
	return "https://auth.example.com/authorize?state=" + state, nil
}

func (m *mockFederated) Authenticate(_ context.Context, _ string) (*auth.FederatedProfile, error) {
	return m.profile, m.err
}

func storeDuplicateActivity() error {
	return store.NewDuplicate(store.ConstraintActivityTarget)
}
