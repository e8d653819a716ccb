package handler_test

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"helloteam.app/api/internal/http/handler"
	"helloteam.app/api/internal/model"
)

var _ = Describe("PublicHandler", func() {
	var (
		router  *gin.Engine
		authSvc *mockAuthService
		wsSvc   *mockWorkspaceService
		leadSvc *mockLeadService
	)

	BeforeEach(func() {
		router = gin.New()
		authSvc = &mockAuthService{}
		wsSvc = &mockWorkspaceService{}
		leadSvc = &mockLeadService{}
		h := handler.NewPublicHandler(authSvc, wsSvc, leadSvc)

		router.GET("/public/users/check-email-availability", h.CheckEmailAvailability)
		router.GET("/public/users/check-workspace-name-availability", h.CheckWorkspaceNameAvailability)
		router.GET("/public/workspace/organization-types", h.OrganizationTypes)
		router.POST("/public/lead/", h.CaptureLead)
	})

	Describe("CheckEmailAvailability", func() {
		It("returns 400 with the owner's email and first name when taken", func() {
			authSvc.emailOwnerFn = func(_ context.Context, email string) (*model.User, error) {
				return &model.User{ID: 3, Email: email, FirstName: "Dana"}, nil
			}

			w := doJSON(router, http.MethodGet, "/public/users/check-email-availability?email=dana@example.com", nil)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			resp := decode(w)
			Expect(resp["email"]).To(Equal("dana@example.com"))
			Expect(resp["first_name"]).To(Equal("Dana"))
		})

		It("returns 202 when free", func() {
			w := doJSON(router, http.MethodGet, "/public/users/check-email-availability?email=new@example.com", nil)

			Expect(w.Code).To(Equal(http.StatusAccepted))
			Expect(decode(w)["detail"]).To(Equal("Email is available"))
		})
	})

	Describe("CheckWorkspaceNameAvailability", func() {
		It("returns 406 when taken", func() {
			wsSvc.nameAvailableFn = func(context.Context, string) (bool, error) { return false, nil }

			w := doJSON(router, http.MethodGet, "/public/users/check-workspace-name-availability?name=Tigers", nil)

			Expect(w.Code).To(Equal(http.StatusNotAcceptable))
		})

		It("returns 202 when free", func() {
			w := doJSON(router, http.MethodGet, "/public/users/check-workspace-name-availability?name=Lions", nil)

			Expect(w.Code).To(Equal(http.StatusAccepted))
		})
	})

	It("lists organization types with string ids", func() {
		wsSvc.orgTypesFn = func(context.Context) ([]model.OrganizationType, error) {
			return []model.OrganizationType{{ID: 1, Name: "School", IsActive: true}}, nil
		}

		w := doJSON(router, http.MethodGet, "/public/workspace/organization-types", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		list := decodeList(w)
		Expect(list).To(HaveLen(1))
		Expect(list[0]["id"]).To(Equal("1"))
	})

	It("captures a lead with 201", func() {
		w := doJSON(router, http.MethodPost, "/public/lead/", map[string]any{"email": "fan@example.com", "last_interaction": "pricing"})

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(decode(w)["last_interaction"]).To(Equal("pricing"))
	})
})
