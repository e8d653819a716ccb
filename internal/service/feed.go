package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"helloteam.app/api/common/errs"
	"helloteam.app/api/common/id"
	"helloteam.app/api/internal/auth"
	"helloteam.app/api/internal/model"
	"helloteam.app/api/internal/store"
	"helloteam.app/api/internal/tenant"
)

const (
	DefaultFeedPageSize = 20
	MaxFeedPageSize     = 100
)

var (
	ErrPostNotFound     = errs.NotFound("post not found")
	ErrCommentNotFound  = errs.NotFound("comment not found")
	ErrActivityNotFound = errs.NotFound("activity not found")
	ErrNotAuthor        = errs.Forbidden("only the author can modify this content")
	ErrAlreadyLiked     = errs.Duplicate("this content is already liked")
	ErrUnknownMedia     = errs.Validation("some media ids do not exist in this workspace", "image_ids", "video_ids")
)

type CreatePostInput struct {
	Content     string
	WorkspaceID *int64
	ImageIDs    []int64
	VideoIDs    []int64
}

type CreateCommentInput struct {
	PostID      int64
	ParentID    *int64
	Content     string
	WorkspaceID *int64
}

type CreateActivityInput struct {
	TargetType  model.TargetType
	TargetID    int64
	WorkspaceID *int64
}

type FeedService interface {
	ListPosts(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, limit, offset int32) ([]model.FeedPost, error)
	CreatePost(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in CreatePostInput) (*model.FeedPost, error)
	GetPost(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, postID int64) (*model.FeedPost, error)
	UpdatePost(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, postID int64, content string) (*model.FeedPost, error)
	DeletePost(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, postID int64) error
	PostLikes(ctx context.Context, scope tenant.Scope, postID int64) ([]model.Activity, error)

	ListComments(ctx context.Context, scope tenant.Scope, postID *int64) ([]model.Comment, error)
	CreateComment(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in CreateCommentInput) (*model.Comment, error)
	GetComment(ctx context.Context, scope tenant.Scope, commentID int64) (*model.Comment, error)
	UpdateComment(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, commentID int64, content string) (*model.Comment, error)
	DeleteComment(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, commentID int64) error

	ListActivities(ctx context.Context, scope tenant.Scope, targetType *model.TargetType, targetID *int64) ([]model.Activity, error)
	CreateActivity(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in CreateActivityInput) (*model.Activity, error)
	DeleteActivity(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, activityID int64) error
}

type FeedStores struct {
	Users      store.UserStore
	Posts      store.PostStore
	Comments   store.CommentStore
	Activities store.ActivityStore
	Images     store.ImageStore
	Videos     store.VideoStore
}

type feedService struct {
	stores   FeedStores
	txRunner TxRunner
	gate     *tenant.Gate
}

func NewFeedService(stores FeedStores, txRunner TxRunner, gate *tenant.Gate) FeedService {
	return &feedService{stores: stores, txRunner: txRunner, gate: gate}
}

func (s *feedService) ListPosts(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, limit, offset int32) ([]model.FeedPost, error) {
	if limit <= 0 {
		limit = DefaultFeedPageSize
	}
	limit = min(limit, MaxFeedPageSize)
	offset = max(offset, 0)

	posts, err := s.stores.Posts.List(ctx, scope.Filter(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return s.assemble(ctx, rc.UserID(), posts)
}

func (s *feedService) CreatePost(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in CreatePostInput) (*model.FeedPost, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, errs.Validation("the following required fields are missing", "content")
	}

	workspaceID, err := s.gate.TargetWorkspace(ctx, rc, scope, in.WorkspaceID)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		ID:          id.New(),
		WorkspaceID: workspaceID,
		AuthorID:    rc.UserID(),
		Content:     content,
	}
	imageIDs, videoIDs := dedupe(in.ImageIDs), dedupe(in.VideoIDs)

	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if err := sp.Posts().Create(ctx, post); err != nil {
			return fmt.Errorf("creating post: %w", err)
		}
		if len(imageIDs) > 0 {
			n, err := sp.Images().AttachToPost(ctx, post.ID, workspaceID, imageIDs)
			if err != nil {
				return fmt.Errorf("attaching images: %w", err)
			}
			if n != int64(len(imageIDs)) {
				return ErrUnknownMedia
			}
		}
		if len(videoIDs) > 0 {
			n, err := sp.Videos().AttachToPost(ctx, post.ID, workspaceID, videoIDs)
			if err != nil {
				return fmt.Errorf("attaching videos: %w", err)
			}
			if n != int64(len(videoIDs)) {
				return ErrUnknownMedia
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "post created",
		"post_id", post.ID,
		"workspace_id", workspaceID,
		"images", len(imageIDs),
		"videos", len(videoIDs))

	return s.single(ctx, rc.UserID(), *post)
}

func (s *feedService) GetPost(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, postID int64) (*model.FeedPost, error) {
	post, err := s.visiblePost(ctx, scope, postID)
	if err != nil {
		return nil, err
	}
	return s.single(ctx, rc.UserID(), *post)
}

func (s *feedService) UpdatePost(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, postID int64, content string) (*model.FeedPost, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errs.Validation("the following required fields are missing", "content")
	}

	post, err := s.visiblePost(ctx, scope, postID)
	if err != nil {
		return nil, err
	}
	if !canModify(rc, post.AuthorID) {
		return nil, ErrNotAuthor
	}

	post.Content = content
	if err := s.stores.Posts.UpdateContent(ctx, post, scope.Filter()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("updating post: %w", err)
	}
	return s.single(ctx, rc.UserID(), *post)
}

func (s *feedService) DeletePost(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, postID int64) error {
	post, err := s.visiblePost(ctx, scope, postID)
	if err != nil {
		return err
	}
	if !canModify(rc, post.AuthorID) {
		return ErrNotAuthor
	}

	if err := s.stores.Posts.Delete(ctx, post.ID, scope.Filter()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("deleting post: %w", err)
	}
	slog.InfoContext(ctx, "post deleted", "post_id", post.ID, "workspace_id", post.WorkspaceID)
	return nil
}

func (s *feedService) PostLikes(ctx context.Context, scope tenant.Scope, postID int64) ([]model.Activity, error) {
	post, err := s.visiblePost(ctx, scope, postID)
	if err != nil {
		return nil, err
	}

	target := model.TargetTypePost
	activities, err := s.stores.Activities.List(ctx, scope.Filter(), &target, &post.ID)
	if err != nil {
		return nil, fmt.Errorf("listing post likes: %w", err)
	}

	likes := activities[:0]
	for _, a := range activities {
		if a.ActivityType == model.ActivityTypeLike {
			likes = append(likes, a)
		}
	}
	return likes, nil
}

func (s *feedService) visiblePost(ctx context.Context, scope tenant.Scope, postID int64) (*model.Post, error) {
	post, err := s.stores.Posts.Get(ctx, postID, scope.Filter())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("getting post: %w", err)
	}
	return post, nil
}

func (s *feedService) single(ctx context.Context, viewerID int64, post model.Post) (*model.FeedPost, error) {
	feed, err := s.assemble(ctx, viewerID, []model.Post{post})
	if err != nil {
		return nil, err
	}
	return &feed[0], nil
}

// canModify lets authors and superusers edit or delete content.
func canModify(rc auth.RequestContext, authorID int64) bool {
	return rc.UserID() == authorID || tenant.IsPrivileged(rc.User)
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, v := range ids {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
