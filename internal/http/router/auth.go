package router

import (
	"github.com/gin-gonic/gin"

	"helloteam.app/api/internal/http/handler"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler) {
	rg.POST("/sign-up/", h.SignUp)
	rg.POST("/social-sign-up/", h.SocialSignUp)
	rg.POST("/token/", h.Token)
	rg.POST("/token/refresh/", h.Refresh)
	rg.POST("/login-with-google/", h.LoginWithFederated)
	rg.GET("/federated/authorize-url", h.AuthorizationURL)
	rg.POST("/recover-password/", h.RecoverPassword)
	rg.GET("/reset-password/:token_id", h.CheckResetToken)
	rg.POST("/reset-password/:token_id", h.ResetPassword)
}

func PublicRouter(rg *gin.RouterGroup, h *handler.PublicHandler) {
	rg.GET("/users/check-email-availability", h.CheckEmailAvailability)
	rg.GET("/users/check-workspace-name-availability", h.CheckWorkspaceNameAvailability)
	rg.GET("/workspace/organization-types", h.OrganizationTypes)
	rg.POST("/lead/", h.CaptureLead)
}

func UserRouter(rg *gin.RouterGroup, h *handler.UserHandler) {
	rg.GET("/workspaces", h.Workspaces)
	rg.POST("/switch-workspace", h.SwitchWorkspace)
	rg.GET("/verify-email/:token/", h.VerifyEmail)
	rg.PATCH("/:id", h.Update)
	rg.PUT("/:id", h.Update)
}
