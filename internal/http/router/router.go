package router

import (
	"github.com/gin-gonic/gin"

	"helloteam.app/api/internal/http/handler"
	"helloteam.app/api/internal/http/middleware"
	"helloteam.app/api/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services) {
	authHandler := handler.NewAuthHandler(services.Auth())
	router.GET("/health-check", authHandler.Health)
	AuthRouter(router.Group("/auth"), authHandler)

	publicHandler := handler.NewPublicHandler(services.Auth(), services.Workspaces(), services.Leads())
	PublicRouter(router.Group("/public"), publicHandler)

	authed := router.Group("")
	authed.Use(middleware.RequireAuth(services.Resolver(), services.UserLookup()))

	userHandler := handler.NewUserHandler(services.Users(), services.Workspaces(), services.Auth())
	UserRouter(authed.Group("/user"), userHandler)

	invHandler := handler.NewInvitationHandler(services.StaffInvitations())
	authed.POST("/workspace/invitation/staff/:code/accept", invHandler.Accept)

	scoped := authed.Group("")
	scoped.Use(middleware.RequireWorkspaceScope(services.Gate()))

	InvitationRouter(scoped.Group("/workspace/invitation/staff"), invHandler)

	renditions := services.Renditions()
	FeedRouter(scoped.Group("/feed"),
		handler.NewFeedHandler(services.Feed(), renditions),
		handler.NewMediaHandler(services.Media(), renditions),
	)
}
