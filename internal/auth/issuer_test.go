package auth_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"helloteam.app/api/common/errs"
	"helloteam.app/api/internal/auth"
	"helloteam.app/api/internal/model"
)

func ownerOf(userID int64) *int64 {
	return &userID
}

var _ = Describe("Issuer", func() {
	var (
		ctx        context.Context
		signer     *auth.Signer
		resolver   *auth.Resolver
		creds      *mockCredentialStore
		workspaces *mockWorkspaceLookup
		issuer     auth.Issuer

		member    *model.User
		outsider  *model.User
		superuser *model.User
		inactive  *model.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		signer, err = auth.NewSigner(testJWTConfig())
		Expect(err).NotTo(HaveOccurred())
		resolver = auth.NewResolver(signer)
		creds = newMockCredentialStore()
		workspaces = newMockWorkspaceLookup()
		issuer = auth.NewIssuer(signer, creds, workspaces)

		member = &model.User{ID: 1, Email: "coach@example.com", IsActive: true}
		outsider = &model.User{ID: 2, Email: "outsider@example.com", IsActive: true}
		superuser = &model.User{ID: 3, Email: "root@example.com", IsActive: true, IsSuperuser: true}
		inactive = &model.User{ID: 4, Email: "gone@example.com", IsActive: false}
		creds.add(member, "password-1")
		creds.add(outsider, "password-2")
		creds.add(superuser, "password-3")
		creds.add(inactive, "password-4")

		workspaces.addWorkspace(&model.Workspace{ID: 10, Name: "Tigers", OwnerID: ownerOf(member.ID)})
		workspaces.addWorkspace(&model.Workspace{ID: 20, Name: "Lions"}, member.ID)
		workspaces.earliest[member.ID] = 10
	})

	resolve := func(token string) auth.Principal {
		p, err := resolver.Resolve(token)
		Expect(err).NotTo(HaveOccurred())
		return p
	}

	Describe("Issue", func() {
		It("embeds the explicit workspace", func() {
			pair, err := issuer.Issue(ctx, member, auth.SomeID(20))
			Expect(err).NotTo(HaveOccurred())
			Expect(resolve(pair.Access).WorkspaceID).To(Equal(auth.SomeID(20)))
			Expect(pair.WorkspaceID).To(Equal(auth.SomeID(20)))
		})

		It("falls back to the earliest workspace for a non-superuser", func() {
			pair, err := issuer.Issue(ctx, member, auth.NoID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resolve(pair.Access).WorkspaceID).To(Equal(auth.SomeID(10)))
		})

		It("fails with NoWorkspace when the user belongs nowhere", func() {
			_, err := issuer.Issue(ctx, outsider, auth.NoID)
			Expect(errs.IsKind(err, errs.KindNoWorkspace)).To(BeTrue())
			Expect(creds.touchCalls).To(BeEmpty())
		})

		It("issues no workspace claim for a superuser without one", func() {
			pair, err := issuer.Issue(ctx, superuser, auth.NoID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resolve(pair.Access).WorkspaceID.IsSet()).To(BeFalse())
		})

		It("leaves last login alone", func() {
			_, err := issuer.Issue(ctx, member, auth.SomeID(10))
			Expect(err).NotTo(HaveOccurred())
			Expect(creds.touchCalls).To(BeEmpty())
		})
	})

	Describe("Validate", func() {
		It("logs in with the default workspace", func() {
			res, err := issuer.Validate(ctx, auth.Credentials{Email: "COACH@example.com", Password: "password-1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.User.ID).To(Equal(member.ID))
			Expect(res.Workspace.ID).To(Equal(int64(10)))
			Expect(resolve(res.Tokens.Access)).To(Equal(auth.Principal{UserID: 1, WorkspaceID: auth.SomeID(10)}))
		})

		It("updates last login on a successful password login", func() {
			_, err := issuer.Validate(ctx, auth.Credentials{Email: member.Email, Password: "password-1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(creds.touchCalls).To(Equal([]int64{member.ID}))
		})

		It("does not update last login for a rejected password", func() {
			_, err := issuer.Validate(ctx, auth.Credentials{Email: member.Email, Password: "nope"})
			Expect(err).To(HaveOccurred())
			Expect(creds.touchCalls).To(BeEmpty())
		})

		It("logs in to a staffed workspace", func() {
			res, err := issuer.Validate(ctx, auth.Credentials{Email: member.Email, Password: "password-1", WorkspaceID: auth.SomeID(20)})
			Expect(err).NotTo(HaveOccurred())
			Expect(resolve(res.Tokens.Access).WorkspaceID).To(Equal(auth.SomeID(20)))
		})

		It("rejects a wrong password", func() {
			_, err := issuer.Validate(ctx, auth.Credentials{Email: member.Email, Password: "nope"})
			Expect(err).To(MatchError(auth.ErrBadCredentials))
		})

		It("rejects an unknown email", func() {
			_, err := issuer.Validate(ctx, auth.Credentials{Email: "nobody@example.com", Password: "x"})
			Expect(errs.IsKind(err, errs.KindInvalidToken)).To(BeTrue())
		})

		It("rejects an inactive user", func() {
			_, err := issuer.Validate(ctx, auth.Credentials{Email: inactive.Email, Password: "password-4"})
			Expect(err).To(MatchError(auth.ErrBadCredentials))
		})

		It("propagates store failures", func() {
			creds.findByEmailErr = errors.New("connection reset")
			_, err := issuer.Validate(ctx, auth.Credentials{Email: member.Email, Password: "password-1"})
			Expect(err).To(HaveOccurred())
			Expect(errs.As(err)).To(BeNil())
		})

		It("returns NotFound for a missing workspace", func() {
			_, err := issuer.Validate(ctx, auth.Credentials{Email: member.Email, Password: "password-1", WorkspaceID: auth.SomeID(99)})
			Expect(err).To(MatchError(auth.ErrInvalidWorkspace))
		})

		It("forbids a workspace the user has no relation to", func() {
			_, err := issuer.Validate(ctx, auth.Credentials{Email: outsider.Email, Password: "password-2", WorkspaceID: auth.SomeID(10)})
			Expect(errs.IsKind(err, errs.KindForbidden)).To(BeTrue())
			Expect(creds.touchCalls).To(BeEmpty())
		})

		It("requires a workspace for a non-superuser with none", func() {
			_, err := issuer.Validate(ctx, auth.Credentials{Email: outsider.Email, Password: "password-2"})
			Expect(err).To(MatchError(auth.ErrWorkspaceRequired))
		})

		It("lets a superuser into any workspace", func() {
			res, err := issuer.Validate(ctx, auth.Credentials{Email: superuser.Email, Password: "password-3", WorkspaceID: auth.SomeID(20)})
			Expect(err).NotTo(HaveOccurred())
			Expect(resolve(res.Tokens.Access).WorkspaceID).To(Equal(auth.SomeID(20)))
		})

		It("lets a superuser log in without a workspace", func() {
			res, err := issuer.Validate(ctx, auth.Credentials{Email: superuser.Email, Password: "password-3"})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Workspace).To(BeNil())
			Expect(resolve(res.Tokens.Access).WorkspaceID.IsSet()).To(BeFalse())
		})
	})

	Describe("Refresh", func() {
		It("keeps the workspace claim and leaves last login alone", func() {
			pair, err := signer.Pair(member.ID, auth.SomeID(20))
			Expect(err).NotTo(HaveOccurred())

			refreshed, err := issuer.Refresh(ctx, pair.Refresh)
			Expect(err).NotTo(HaveOccurred())
			Expect(resolve(refreshed.Access)).To(Equal(auth.Principal{UserID: member.ID, WorkspaceID: auth.SomeID(20)}))
			Expect(creds.touchCalls).To(BeEmpty())
		})

		It("rejects an access token", func() {
			pair, err := signer.Pair(member.ID, auth.SomeID(20))
			Expect(err).NotTo(HaveOccurred())

			_, err = issuer.Refresh(ctx, pair.Access)
			Expect(errs.IsKind(err, errs.KindInvalidToken)).To(BeTrue())
		})

		It("rejects tokens of inactive users", func() {
			pair, err := signer.Pair(inactive.ID, auth.NoID)
			Expect(err).NotTo(HaveOccurred())

			_, err = issuer.Refresh(ctx, pair.Refresh)
			Expect(errs.IsKind(err, errs.KindInvalidToken)).To(BeTrue())
		})
	})

	It("issues tokens that expire with the configured TTL", func() {
		pair, err := issuer.Issue(ctx, member, auth.SomeID(10))
		Expect(err).NotTo(HaveOccurred())
		Expect(pair.AccessExpiresAt).To(BeTemporally("~", time.Now().Add(15*time.Minute), 5*time.Second))
	})
})
