package handler_test

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"helloteam.app/api/core/config"
	"helloteam.app/api/internal/auth"
	"helloteam.app/api/internal/http/handler"
	"helloteam.app/api/internal/model"
	"helloteam.app/api/internal/service"
	"helloteam.app/api/internal/tenant"
)

var _ = Describe("FeedHandler", func() {
	var (
		router   *gin.Engine
		feedSvc  *mockFeedService
		mediaSvc *mockMediaService
		caller   *model.User
	)

	BeforeEach(func() {
		router = gin.New()
		feedSvc = &mockFeedService{}
		mediaSvc = &mockMediaService{}
		caller = &model.User{ID: 1, FirstName: "Dana", IsActive: true}
		renditions := service.NewRenditions(config.MediaConfig{
			ImageHandlerURL: "https://img.example.com",
			Bucket:          "media-bucket",
			BaseURL:         "https://cdn.example.com",
			Thumb:           config.Size{Width: 150, Height: 150},
		})
		feed := handler.NewFeedHandler(feedSvc, renditions)
		media := handler.NewMediaHandler(mediaSvc, renditions)

		rc := auth.RequestContext{User: caller, WorkspaceID: auth.SomeID(10)}
		g := router.Group("/feed", asCaller(rc, tenant.Workspace(10)))
		g.GET("/post/", feed.ListPosts)
		g.POST("/post/", feed.CreatePost)
		g.GET("/post/:id", feed.GetPost)
		g.DELETE("/post/:id", feed.DeletePost)
		g.GET("/post/:id/likes", feed.PostLikes)
		g.POST("/comment/", feed.CreateComment)
		g.GET("/comment/", feed.ListComments)
		g.POST("/activity/", feed.CreateActivity)
		g.GET("/activity/", feed.ListActivities)
		g.POST("/image/", media.CreateImage)
		g.GET("/video/:id", media.GetVideo)
	})

	Describe("ListPosts", func() {
		It("renders the assembled feed", func() {
			likeID := int64(900)
			feedSvc.listPostsFn = func(_ context.Context, rc auth.RequestContext, scope tenant.Scope, limit, offset int32) ([]model.FeedPost, error) {
				Expect(rc.UserID()).To(Equal(int64(1)))
				Expect(scope).To(Equal(tenant.Workspace(10)))
				Expect(limit).To(Equal(int32(5)))
				Expect(offset).To(Equal(int32(10)))
				return []model.FeedPost{{
					Post:          model.Post{ID: 100, WorkspaceID: 10, AuthorID: 1, Content: "Game day", CreatedAt: time.Now()},
					Author:        caller,
					LikesCount:    2,
					LikeID:        &likeID,
					CommentsCount: 1,
					Comments: []model.FeedComment{{
						Comment: model.Comment{ID: 200, PostID: 100, Content: "Go team"},
						Author:  caller,
						Replies: []model.FeedComment{{Comment: model.Comment{ID: 201, Content: "Yes"}}},
					}},
					Images: []model.Image{{ID: 300, FileKey: "a.png"}},
				}}, nil
			}

			w := doJSON(router, http.MethodGet, "/feed/post/?limit=5&offset=10", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			posts := decodeList(w)
			Expect(posts).To(HaveLen(1))
			post := posts[0]
			Expect(post["id"]).To(Equal("100"))
			Expect(post["is_liked"]).To(BeTrue())
			Expect(post["like_id"]).To(Equal("900"))
			Expect(post["likes_count"]).To(BeNumerically("==", 2))
			Expect(post["author"]).To(HaveKeyWithValue("first_name", "Dana"))

			comments := post["comments"].([]any)
			Expect(comments).To(HaveLen(1))
			Expect(comments[0].(map[string]any)["replies"]).To(HaveLen(1))

			images := post["images"].([]any)
			Expect(images[0].(map[string]any)["thumb"]).To(HavePrefix("https://img.example.com/"))
		})

		It("rejects a negative offset", func() {
			w := doJSON(router, http.MethodGet, "/feed/post/?offset=-1", nil)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects an offset beyond 32 bits instead of wrapping it", func() {
			called := false
			feedSvc.listPostsFn = func(_ context.Context, _ auth.RequestContext, _ tenant.Scope, _, _ int32) ([]model.FeedPost, error) {
				called = true
				return nil, nil
			}

			w := doJSON(router, http.MethodGet, "/feed/post/?offset=4294967301", nil)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(called).To(BeFalse())
		})
	})

	It("creates a post with string media ids", func() {
		var got service.CreatePostInput
		feedSvc.createPostFn = func(_ context.Context, _ auth.RequestContext, _ tenant.Scope, in service.CreatePostInput) (*model.FeedPost, error) {
			got = in
			return &model.FeedPost{Post: model.Post{ID: 101, WorkspaceID: 10, Content: in.Content}}, nil
		}

		w := doJSON(router, http.MethodPost, "/feed/post/", map[string]any{
			"content":   "Practice moved",
			"image_ids": []string{"300", "301"},
			"video_ids": []int{400},
		})

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(got.ImageIDs).To(Equal([]int64{300, 301}))
		Expect(got.VideoIDs).To(Equal([]int64{400}))
		Expect(got.WorkspaceID).To(BeNil())
	})

	It("returns 404 for a post in another workspace", func() {
		feedSvc.getPostFn = func(context.Context, auth.RequestContext, tenant.Scope, int64) (*model.FeedPost, error) {
			return nil, service.ErrPostNotFound
		}

		w := doJSON(router, http.MethodGet, "/feed/post/555", nil)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("returns 403 when a non-author deletes", func() {
		feedSvc.deletePostFn = func(context.Context, auth.RequestContext, tenant.Scope, int64) error {
			return service.ErrNotAuthor
		}

		w := doJSON(router, http.MethodDelete, "/feed/post/100", nil)

		Expect(w.Code).To(Equal(http.StatusForbidden))
	})

	It("lists the likes of a post", func() {
		feedSvc.postLikesFn = func(_ context.Context, _ tenant.Scope, postID int64) ([]model.Activity, error) {
			Expect(postID).To(Equal(int64(100)))
			return []model.Activity{{ID: 900, UserID: 2, ActivityType: model.ActivityTypeLike, TargetType: model.TargetTypePost, TargetID: 100}}, nil
		}

		w := doJSON(router, http.MethodGet, "/feed/post/100/likes", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decodeList(w)[0]["target_id"]).To(Equal("100"))
	})

	It("creates a reply comment", func() {
		var got service.CreateCommentInput
		feedSvc.createCommentFn = func(_ context.Context, _ auth.RequestContext, _ tenant.Scope, in service.CreateCommentInput) (*model.Comment, error) {
			got = in
			return &model.Comment{ID: 202, PostID: in.PostID, ParentID: in.ParentID, Content: in.Content}, nil
		}

		w := doJSON(router, http.MethodPost, "/feed/comment/", map[string]any{"post": "100", "parent": "200", "content": "Agreed"})

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(got.PostID).To(Equal(int64(100)))
		Expect(*got.ParentID).To(Equal(int64(200)))
		Expect(decode(w)["parent"]).To(Equal("200"))
	})

	It("filters comments by post", func() {
		feedSvc.listCommentsFn = func(_ context.Context, _ tenant.Scope, postID *int64) ([]model.Comment, error) {
			Expect(postID).NotTo(BeNil())
			Expect(*postID).To(Equal(int64(100)))
			return nil, nil
		}

		w := doJSON(router, http.MethodGet, "/feed/comment/?post=100", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("returns 400 for a duplicate like", func() {
		feedSvc.createActivityFn = func(context.Context, auth.RequestContext, tenant.Scope, service.CreateActivityInput) (*model.Activity, error) {
			return nil, service.ErrAlreadyLiked
		}

		w := doJSON(router, http.MethodPost, "/feed/activity/", map[string]any{"target_type": "post", "target_id": "100"})

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("passes activity filters", func() {
		feedSvc.listActivitiesFn = func(_ context.Context, _ tenant.Scope, targetType *model.TargetType, targetID *int64) ([]model.Activity, error) {
			Expect(*targetType).To(Equal(model.TargetTypeComment))
			Expect(*targetID).To(Equal(int64(200)))
			return nil, nil
		}

		w := doJSON(router, http.MethodGet, "/feed/activity/?target_type=comment&target_id=200", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	Describe("media", func() {
		It("returns 400 for an unsupported image type", func() {
			mediaSvc.createImageFn = func(context.Context, auth.RequestContext, tenant.Scope, service.CreateImageInput) (*model.Image, error) {
				return nil, service.ErrImageExtension
			}

			w := doJSON(router, http.MethodPost, "/feed/image/", map[string]any{"file": "notes.pdf", "size_in_bytes": 10})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["missing_fields"]).To(ConsistOf("file"))
		})

		It("renders the video url", func() {
			mediaSvc.getVideoFn = func(_ context.Context, _ tenant.Scope, videoID int64) (*model.Video, error) {
				return &model.Video{ID: videoID, WorkspaceID: 10, FileKey: "clip.mp4"}, nil
			}

			w := doJSON(router, http.MethodGet, "/feed/video/400", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["url"]).To(Equal("https://cdn.example.com/media/clip.mp4"))
		})
	})
})
