package handler_test

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"helloteam.app/api/internal/auth"
	"helloteam.app/api/internal/http/handler"
	"helloteam.app/api/internal/model"
	"helloteam.app/api/internal/service"
	"helloteam.app/api/internal/tenant"
)

var _ = Describe("UserHandler", func() {
	var (
		router  *gin.Engine
		userSvc *mockUserService
		wsSvc   *mockWorkspaceService
		authSvc *mockAuthService
		caller  *model.User
	)

	BeforeEach(func() {
		router = gin.New()
		userSvc = &mockUserService{}
		wsSvc = &mockWorkspaceService{}
		authSvc = &mockAuthService{}
		caller = &model.User{ID: 1, Email: "coach@example.com", IsActive: true, IsStaff: true}
		h := handler.NewUserHandler(userSvc, wsSvc, authSvc)

		rc := auth.RequestContext{User: caller, WorkspaceID: auth.SomeID(10)}
		g := router.Group("/user", asCaller(rc, tenant.Workspace(10)))
		g.GET("/workspaces", h.Workspaces)
		g.POST("/switch-workspace", h.SwitchWorkspace)
		g.GET("/verify-email/:token/", h.VerifyEmail)
		g.PATCH("/:id", h.Update)
	})

	It("lists the caller's workspaces", func() {
		wsSvc.listForUserFn = func(_ context.Context, userID int64) ([]model.Workspace, error) {
			Expect(userID).To(Equal(int64(1)))
			return []model.Workspace{{ID: 10, Name: "Tigers"}, {ID: 11, Name: "Lions"}}, nil
		}

		w := doJSON(router, http.MethodGet, "/user/workspaces", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decodeList(w)).To(HaveLen(2))
	})

	Describe("SwitchWorkspace", func() {
		It("returns 201 with tokens for the new workspace", func() {
			authSvc.switchFn = func(_ context.Context, user *model.User, workspaceID int64) (*auth.LoginResult, error) {
				Expect(user.ID).To(Equal(int64(1)))
				return loginResult(workspaceID), nil
			}

			w := doJSON(router, http.MethodPost, "/user/switch-workspace", map[string]any{"workspace_id": "11"})

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(decode(w)["workspace_id"]).To(Equal("11"))
		})

		It("returns 404 when the user has no relation to the workspace", func() {
			authSvc.switchFn = func(context.Context, *model.User, int64) (*auth.LoginResult, error) {
				return nil, service.ErrSwitchNotFound
			}

			w := doJSON(router, http.MethodPost, "/user/switch-workspace", map[string]any{"workspace_id": 99})

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	It("returns 403 for an invalid verification token", func() {
		authSvc.verifyEmailFn = func(context.Context, *model.User, string) (*model.User, error) {
			return nil, service.ErrInvalidVerification
		}

		w := doJSON(router, http.MethodGet, "/user/verify-email/bad/", nil)

		Expect(w.Code).To(Equal(http.StatusForbidden))
	})

	Describe("Update", func() {
		It("passes the profile fields and workspace patch through", func() {
			var got service.UpdateUserInput
			userSvc.updateFn = func(_ context.Context, c *model.User, targetID int64, in service.UpdateUserInput) (*service.UpdateUserResult, error) {
				Expect(c).To(Equal(caller))
				Expect(targetID).To(Equal(int64(2)))
				got = in
				return &service.UpdateUserResult{
					User:      &model.User{ID: 2, FirstName: "Sam"},
					Workspace: &model.Workspace{ID: 10, Name: "Tigers FC"},
				}, nil
			}

			w := doJSON(router, http.MethodPatch, "/user/2", map[string]any{
				"first_name":       "Sam",
				"workspace":        "10",
				"update_workspace": map[string]any{"id": 10, "name": "Tigers FC"},
			})

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(*got.FirstName).To(Equal("Sam"))
			Expect(*got.WorkspaceID).To(Equal(int64(10)))
			Expect(got.UpdateWorkspace.ID).To(Equal(int64(10)))
			Expect(*got.UpdateWorkspace.Name).To(Equal("Tigers FC"))

			resp := decode(w)
			Expect(resp["workspace"]).To(HaveKeyWithValue("name", "Tigers FC"))
		})

		It("returns 403 when the caller may not edit the target", func() {
			userSvc.updateFn = func(context.Context, *model.User, int64, service.UpdateUserInput) (*service.UpdateUserResult, error) {
				return nil, service.ErrCallerNotStaff
			}

			w := doJSON(router, http.MethodPatch, "/user/2", map[string]any{"first_name": "Sam"})

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("returns 404 for a malformed id", func() {
			w := doJSON(router, http.MethodPatch, "/user/abc", map[string]any{})

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
