package service

import (
	"helloteam.app/api/core/config"
	"helloteam.app/api/internal/auth"
	"helloteam.app/api/internal/mail"
	"helloteam.app/api/internal/store"
	"helloteam.app/api/internal/tenant"
)

type Deps struct {
	Stores    *store.Stores
	TxRunner  TxRunner
	Signer    *auth.Signer
	Federated auth.FederatedProvider
	Notifier  mail.Notifier
	Config    config.Config
}

type Services struct {
	deps   Deps
	issuer auth.Issuer
	gate   *tenant.Gate
	auth   AuthService
}

func NewServices(deps Deps) *Services {
	stores := deps.Stores
	issuer := auth.NewIssuer(deps.Signer, auth.NewCredentialStore(stores.Users()), stores.Workspaces())
	gate := tenant.NewGate(stores.Workspaces())

	s := &Services{deps: deps, issuer: issuer, gate: gate}
	s.auth = NewAuthService(AuthServiceConfig{
		Users:       stores.Users(),
		Workspaces:  stores.Workspaces(),
		OrgTypes:    stores.OrganizationTypes(),
		Resets:      stores.PasswordResets(),
		TxRunner:    deps.TxRunner,
		Issuer:      issuer,
		Signer:      deps.Signer,
		Federated:   deps.Federated,
		Notifier:    deps.Notifier,
		FrontendURL: deps.Config.FrontendURL,
	})
	return s
}

func (s *Services) Gate() *tenant.Gate {
	return s.gate
}

func (s *Services) Resolver() *auth.Resolver {
	return auth.NewResolver(s.deps.Signer)
}

func (s *Services) Auth() AuthService {
	return s.auth
}

func (s *Services) Users() UserService {
	return NewUserService(s.deps.Stores.Users(), s.deps.Stores.Workspaces(), s.deps.TxRunner, s.auth)
}

func (s *Services) Workspaces() WorkspaceService {
	return NewWorkspaceService(s.deps.Stores.Workspaces(), s.deps.Stores.OrganizationTypes())
}

func (s *Services) StaffInvitations() StaffInvitationService {
	stores := s.deps.Stores
	return NewStaffInvitationService(
		stores.StaffInvitations(),
		stores.Workspaces(),
		stores.Staff(),
		s.deps.TxRunner,
		s.gate,
		s.deps.Notifier,
		s.deps.Config.FrontendURL,
	)
}

func (s *Services) Feed() FeedService {
	stores := s.deps.Stores
	return NewFeedService(FeedStores{
		Users:      stores.Users(),
		Posts:      stores.Posts(),
		Comments:   stores.Comments(),
		Activities: stores.Activities(),
		Images:     stores.Images(),
		Videos:     stores.Videos(),
	}, s.deps.TxRunner, s.gate)
}

func (s *Services) Media() MediaService {
	return NewMediaService(s.deps.Stores.Images(), s.deps.Stores.Videos(), s.gate)
}

func (s *Services) Renditions() *Renditions {
	return NewRenditions(s.deps.Config.Media)
}

func (s *Services) Leads() LeadService {
	return NewLeadService(s.deps.Stores.Leads())
}

// UserLookup loads the authenticated user for each request.
func (s *Services) UserLookup() store.UserStore {
	return s.deps.Stores.Users()
}
