package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helloteam.app/api/internal/http/dto"
	"helloteam.app/api/internal/http/middleware"
	"helloteam.app/api/internal/service"
)

type UserHandler struct {
	userService      service.UserService
	workspaceService service.WorkspaceService
	authService      service.AuthService
}

func NewUserHandler(userService service.UserService, workspaceService service.WorkspaceService, authService service.AuthService) *UserHandler {
	return &UserHandler{
		userService:      userService,
		workspaceService: workspaceService,
		authService:      authService,
	}
}

// Workspaces lists every workspace the caller owns or staffs, whatever the
// token's workspace claim.
func (h *UserHandler) Workspaces(c *gin.Context) {
	rc := middleware.GetRequestContext(c)

	workspaces, err := h.workspaceService.ListForUser(c.Request.Context(), rc.UserID())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponses(workspaces))
}

func (h *UserHandler) SwitchWorkspace(c *gin.Context) {
	rc := middleware.GetRequestContext(c)

	var req dto.SwitchWorkspaceRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.SwitchWorkspace(c.Request.Context(), rc.User, int64(req.WorkspaceID))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToLoginResponse(result))
}

func (h *UserHandler) VerifyEmail(c *gin.Context) {
	rc := middleware.GetRequestContext(c)

	user, err := h.authService.VerifyEmail(c.Request.Context(), rc.User, c.Param("token"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) Update(c *gin.Context) {
	rc := middleware.GetRequestContext(c)

	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	in := service.UpdateUserInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Country:     req.Country,
		ZipCode:     req.ZipCode,
		Timezone:    req.Timezone,
		AvatarURL:   req.AvatarURL,
		WorkspaceID: req.Workspace.Ptr(),
		IsSigningUp: req.IsSigningUp,
	}
	if p := req.UpdateWorkspace; p != nil {
		in.UpdateWorkspace = &service.WorkspacePatch{
			ID:       int64(p.ID),
			Name:     p.Name,
			Country:  p.Country,
			ZipCode:  p.ZipCode,
			Timezone: p.Timezone,
		}
	}

	result, err := h.userService.Update(c.Request.Context(), rc.User, targetID, in)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UpdateUserResponse{
		User:      dto.ToUserResponse(result.User),
		Workspace: dto.ToWorkspaceResponse(result.Workspace),
	})
}
