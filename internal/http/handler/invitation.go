package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"helloteam.app/api/internal/http/dto"
	"helloteam.app/api/internal/http/middleware"
	"helloteam.app/api/internal/model"
	"helloteam.app/api/internal/service"
)

type InvitationHandler struct {
	invService service.StaffInvitationService
	now        func() time.Time
}

func NewInvitationHandler(invService service.StaffInvitationService) *InvitationHandler {
	return &InvitationHandler{invService: invService, now: time.Now}
}

func (h *InvitationHandler) List(c *gin.Context) {
	invitations, err := h.invService.List(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInvitationResponses(invitations, h.now()))
}

func (h *InvitationHandler) Create(c *gin.Context) {
	var req dto.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "a valid email is required")
		return
	}

	inv, err := h.invService.Create(c.Request.Context(), middleware.GetRequestContext(c), middleware.GetScope(c), service.CreateInvitationInput{
		Email:       req.Email,
		WorkspaceID: req.Workspace.Ptr(),
	})
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvitationResponse(inv, h.now()))
}

func (h *InvitationHandler) Get(c *gin.Context) {
	inv, err := h.invService.Get(c.Request.Context(), middleware.GetScope(c), c.Param("code"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInvitationResponse(inv, h.now()))
}

func (h *InvitationHandler) Delete(c *gin.Context) {
	if err := h.invService.Delete(c.Request.Context(), middleware.GetScope(c), c.Param("code")); err != nil {
		middleware.RespondError(c, err)
		return
	}
	noContent(c)
}

// Accept runs outside the workspace gate: the invitee is not a member of the
// invitation's workspace until this succeeds.
func (h *InvitationHandler) Accept(c *gin.Context) {
	rc := middleware.GetRequestContext(c)

	var req dto.AcceptInvitationRequest
	if !bindJSON(c, &req) {
		return
	}

	staff, err := h.invService.Accept(c.Request.Context(), rc.User, c.Param("code"), model.StaffRole(req.Role))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToStaffResponse(staff))
}
