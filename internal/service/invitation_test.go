package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"helloteam.app/api/internal/auth"
	"helloteam.app/api/internal/mail"
	"helloteam.app/api/internal/model"
	"helloteam.app/api/internal/service"
	"helloteam.app/api/internal/store"
	"helloteam.app/api/internal/tenant"
)

var _ = Describe("StaffInvitationService", func() {
	var (
		ctx         context.Context
		invitations *mockInvitationStore
		workspaces  *mockWorkspaceStore
		staff       *mockStaffStore
		txRunner    *mockTxRunner
		notifier    *mockNotifier
		svc         service.StaffInvitationService
		owner       *model.User
		ownerRC     auth.RequestContext
	)

	BeforeEach(func() {
		ctx = context.Background()
		ownerID := int64(1)
		owner = &model.User{ID: ownerID, Email: "owner@example.com", IsStaff: true}
		ownerRC = auth.RequestContext{User: owner, WorkspaceID: auth.SomeID(10)}

		invitations = &mockInvitationStore{}
		staff = &mockStaffStore{}
		notifier = &mockNotifier{}
		workspaces = &mockWorkspaceStore{
			getByIDFn: func(_ context.Context, id int64) (*model.Workspace, error) {
				return &model.Workspace{ID: id, Name: "Tigers", OwnerID: &ownerID}, nil
			},
			isMemberFn: func(_ context.Context, wsID, userID int64) (bool, error) {
				return wsID == 10 && (userID == 1 || userID == 2), nil
			},
		}
		txRunner = &mockTxRunner{provider: &mockStoreProvider{staff: staff, invitations: invitations}}
		svc = service.NewStaffInvitationService(invitations, workspaces, staff, txRunner,
			tenant.NewGate(workspaces), notifier, "https://app.helloteam.test")
	})

	Describe("Create", func() {
		It("creates a 5 character code in the ambient workspace and mails it", func() {
			inv, err := svc.Create(ctx, ownerRC, tenant.Workspace(10), service.CreateInvitationInput{Email: " New@Example.com "})

			Expect(err).NotTo(HaveOccurred())
			Expect(inv.Code).To(MatchRegexp(`^[0-9A-F]{5}$`))
			Expect(inv.WorkspaceID).To(Equal(int64(10)))
			Expect(inv.Email).To(Equal("new@example.com"))
			Expect(inv.CreatedBy).To(HaveValue(Equal(int64(1))))

			Expect(notifier.sent).To(HaveLen(1))
			Expect(notifier.sent[0].template).To(Equal(mail.TemplateStaffInvitation))
			Expect(notifier.sent[0].data["code"]).To(Equal(inv.Code))
			Expect(notifier.sent[0].data["workspace"]).To(Equal("Tigers"))
		})

		It("only lets the owner invite", func() {
			staffRC := auth.RequestContext{User: &model.User{ID: 2, IsStaff: true}, WorkspaceID: auth.SomeID(10)}

			_, err := svc.Create(ctx, staffRC, tenant.Workspace(10), service.CreateInvitationInput{Email: "x@example.com"})

			Expect(err).To(MatchError(service.ErrOnlyOwnerInvites))
			Expect(invitations.createCalls).To(Equal(0))
		})

		It("rejects emails already in the staff", func() {
			staff.isStaffEmailFn = func(_ context.Context, _ int64, _ string) (bool, error) { return true, nil }

			_, err := svc.Create(ctx, ownerRC, tenant.Workspace(10), service.CreateInvitationInput{Email: "x@example.com"})

			Expect(err).To(MatchError(service.ErrAlreadyStaff))
		})

		It("rejects an explicit workspace the caller is not part of", func() {
			foreign := int64(20)

			_, err := svc.Create(ctx, ownerRC, tenant.Workspace(10), service.CreateInvitationInput{
				Email:       "x@example.com",
				WorkspaceID: &foreign,
			})

			Expect(err).To(MatchError(tenant.ErrNotMember))
		})

		It("retries when a code collides", func() {
			invitations.createFn = func(_ context.Context, _ *model.StaffInvitation) error {
				if invitations.createCalls == 1 {
					return store.NewDuplicate(store.ConstraintInvitationPK)
				}
				return nil
			}

			_, err := svc.Create(ctx, ownerRC, tenant.Workspace(10), service.CreateInvitationInput{Email: "x@example.com"})

			Expect(err).NotTo(HaveOccurred())
			Expect(invitations.createCalls).To(Equal(2))
		})
	})

	Describe("List", func() {
		It("filters by the scope", func() {
			var filter *int64
			invitations.listFn = func(_ context.Context, wsID *int64) ([]model.StaffInvitation, error) {
				filter = wsID
				return nil, nil
			}

			_, err := svc.List(ctx, tenant.Workspace(10))

			Expect(err).NotTo(HaveOccurred())
			Expect(filter).To(HaveValue(Equal(int64(10))))
		})
	})

	Describe("Accept", func() {
		invitee := &model.User{ID: 5, Email: "new@example.com"}

		pending := func(createdAt time.Time) *model.StaffInvitation {
			return &model.StaffInvitation{Code: "AB12C", Email: "new@example.com", WorkspaceID: 10, CreatedAt: createdAt}
		}

		It("adds the invitee to the workspace staff", func() {
			invitations.getByCodeFn = func(_ context.Context, code string) (*model.StaffInvitation, error) {
				Expect(code).To(Equal("AB12C"))
				return pending(time.Now().Add(-time.Hour)), nil
			}
			var added *model.WorkspaceStaff
			staff.addFn = func(_ context.Context, s *model.WorkspaceStaff) error {
				added = s
				return nil
			}

			result, err := svc.Accept(ctx, invitee, " ab12c ", "")

			Expect(err).NotTo(HaveOccurred())
			Expect(added.WorkspaceID).To(Equal(int64(10)))
			Expect(added.UserID).To(Equal(int64(5)))
			Expect(result.Role).To(Equal(model.StaffRoleAssistant))
		})

		It("fails for an invitation older than a day", func() {
			invitations.getByCodeFn = func(_ context.Context, _ string) (*model.StaffInvitation, error) {
				return pending(time.Now().Add(-25 * time.Hour)), nil
			}

			_, err := svc.Accept(ctx, invitee, "AB12C", "")

			Expect(err).To(MatchError(service.ErrInviteExpired))
		})

		It("fails when the email does not match", func() {
			invitations.getByCodeFn = func(_ context.Context, _ string) (*model.StaffInvitation, error) {
				return pending(time.Now()), nil
			}

			_, err := svc.Accept(ctx, &model.User{ID: 6, Email: "other@example.com"}, "AB12C", "")

			Expect(err).To(MatchError(service.ErrInviteEmailMismatch))
		})

		It("fails for an accepted invitation", func() {
			invitations.getByCodeFn = func(_ context.Context, _ string) (*model.StaffInvitation, error) {
				inv := pending(time.Now())
				at := time.Now()
				inv.AcceptedAt = &at
				return inv, nil
			}

			_, err := svc.Accept(ctx, invitee, "AB12C", "")

			Expect(err).To(MatchError(service.ErrInviteAlreadyUsed))
		})

		It("fails for unknown codes", func() {
			_, err := svc.Accept(ctx, invitee, "ZZZZZ", "")

			Expect(err).To(MatchError(service.ErrInviteNotFound))
		})
	})
})

