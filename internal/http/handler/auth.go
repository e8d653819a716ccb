package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"helloteam.app/api/internal/auth"
	"helloteam.app/api/internal/http/dto"
	"helloteam.app/api/internal/http/middleware"
	"helloteam.app/api/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "I'm feeling healthy :)")
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SignUpRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.SignUp(ctx, service.SignUpInput{
		Email:              req.Email,
		Password:           req.Password,
		WorkspaceName:      req.WorkspaceName,
		OrganizationTypeID: int64(req.OrganizationType),
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Phone:              req.Phone,
	})
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLoginResponse(result))
}

func (h *AuthHandler) SocialSignUp(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SocialSignUpRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.SocialSignUp(ctx, service.SocialSignUpInput{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		WorkspaceName:      req.WorkspaceName,
		OrganizationTypeID: int64(req.OrganizationType),
		Phone:              req.Phone,
		SocialProvider:     req.SocialProvider,
		SocialToken:        req.SocialToken,
		Password:           req.Password,
	})
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLoginResponse(result))
}

func (h *AuthHandler) Token(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.TokenRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(ctx, auth.Credentials{
		Email:       req.Email,
		Password:    req.Password,
		WorkspaceID: auth.OptionalFromPtr(req.WorkspaceID.Ptr()),
	})
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(result))
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	pair, err := h.authService.Refresh(ctx, req.Refresh)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTokenResponse(pair))
}

func (h *AuthHandler) AuthorizationURL(c *gin.Context) {
	url, err := h.authService.FederatedAuthorizationURL(c.Query("state"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AuthorizationURLResponse{URL: url})
}

func (h *AuthHandler) LoginWithFederated(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CodeRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.LoginWithFederated(ctx, req.Code)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(result))
}

func (h *AuthHandler) RecoverPassword(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RecoverPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authService.RecoverPassword(ctx, req.Email); err != nil {
		middleware.RespondError(c, err)
		return
	}

	detail(c, http.StatusOK, "OK")
}

func (h *AuthHandler) CheckResetToken(c *gin.Context) {
	if err := h.authService.CheckResetToken(c.Request.Context(), c.Param("token_id")); err != nil {
		middleware.RespondError(c, err)
		return
	}
	detail(c, http.StatusOK, "OK")
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(ctx, c.Param("token_id"), req.NewPassword); err != nil {
		middleware.RespondError(c, err)
		return
	}

	slog.InfoContext(ctx, "password reset completed")
	detail(c, http.StatusOK, "OK")
}
