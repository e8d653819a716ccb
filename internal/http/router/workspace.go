package router

import (
	"github.com/gin-gonic/gin"

	"helloteam.app/api/internal/http/handler"
)

// InvitationRouter mounts the gated invitation routes. Accept is mounted
// separately because it runs before the caller is a member.
func InvitationRouter(rg *gin.RouterGroup, h *handler.InvitationHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:code", h.Get)
	rg.DELETE("/:code", h.Delete)
}

func FeedRouter(rg *gin.RouterGroup, feed *handler.FeedHandler, media *handler.MediaHandler) {
	posts := rg.Group("/post")
	{
		posts.GET("/", feed.ListPosts)
		posts.POST("/", feed.CreatePost)
		posts.GET("/:id", feed.GetPost)
		posts.PATCH("/:id", feed.UpdatePost)
		posts.PUT("/:id", feed.UpdatePost)
		posts.DELETE("/:id", feed.DeletePost)
		posts.GET("/:id/likes", feed.PostLikes)
	}

	comments := rg.Group("/comment")
	{
		comments.GET("/", feed.ListComments)
		comments.POST("/", feed.CreateComment)
		comments.GET("/:id", feed.GetComment)
		comments.PATCH("/:id", feed.UpdateComment)
		comments.PUT("/:id", feed.UpdateComment)
		comments.DELETE("/:id", feed.DeleteComment)
	}

	activities := rg.Group("/activity")
	{
		activities.GET("/", feed.ListActivities)
		activities.POST("/", feed.CreateActivity)
		activities.DELETE("/:id", feed.DeleteActivity)
	}

	images := rg.Group("/image")
	{
		images.GET("/", media.ListImages)
		images.POST("/", media.CreateImage)
		images.GET("/:id", media.GetImage)
		images.DELETE("/:id", media.DeleteImage)
	}

	videos := rg.Group("/video")
	{
		videos.GET("/", media.ListVideos)
		videos.POST("/", media.CreateVideo)
		videos.GET("/:id", media.GetVideo)
		videos.DELETE("/:id", media.DeleteVideo)
	}
}
