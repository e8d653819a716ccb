package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helloteam.app/api/internal/http/dto"
	"helloteam.app/api/internal/http/middleware"
	"helloteam.app/api/internal/service"
)

// PublicHandler serves the unauthenticated lookups the sign-up flow needs.
type PublicHandler struct {
	authService      service.AuthService
	workspaceService service.WorkspaceService
	leadService      service.LeadService
}

func NewPublicHandler(authService service.AuthService, workspaceService service.WorkspaceService, leadService service.LeadService) *PublicHandler {
	return &PublicHandler{
		authService:      authService,
		workspaceService: workspaceService,
		leadService:      leadService,
	}
}

func (h *PublicHandler) CheckEmailAvailability(c *gin.Context) {
	owner, err := h.authService.EmailOwner(c.Request.Context(), c.Query("email"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	if owner != nil {
		c.JSON(http.StatusBadRequest, dto.EmailAvailabilityResponse{
			Detail:    "Email is already in use",
			Email:     owner.Email,
			FirstName: owner.FirstName,
		})
		return
	}
	c.JSON(http.StatusAccepted, dto.EmailAvailabilityResponse{Detail: "Email is available"})
}

func (h *PublicHandler) CheckWorkspaceNameAvailability(c *gin.Context) {
	available, err := h.workspaceService.IsNameAvailable(c.Request.Context(), c.Query("name"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	if !available {
		detail(c, http.StatusNotAcceptable, "Workspace name is already in use")
		return
	}
	detail(c, http.StatusAccepted, "Workspace name is available")
}

func (h *PublicHandler) OrganizationTypes(c *gin.Context) {
	types, err := h.workspaceService.ListOrganizationTypes(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationTypeResponses(types))
}

func (h *PublicHandler) CaptureLead(c *gin.Context) {
	var req dto.LeadRequest
	if !bindJSON(c, &req) {
		return
	}

	lead, err := h.leadService.Capture(c.Request.Context(), req.Email, req.LastInteraction)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToLeadResponse(lead))
}
