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

func (s *feedService) ListComments(ctx context.Context, scope tenant.Scope, postID *int64) ([]model.Comment, error) {
	comments, err := s.stores.Comments.List(ctx, scope.Filter(), postID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}

func (s *feedService) CreateComment(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in CreateCommentInput) (*model.Comment, error) {
	content, err := validCommentContent(in.Content)
	if err != nil {
		return nil, err
	}
	if in.PostID == 0 {
		return nil, errs.Validation("the following required fields are missing", "post")
	}

	workspaceID, err := s.gate.TargetWorkspace(ctx, rc, scope, in.WorkspaceID)
	if err != nil {
		return nil, err
	}

	// The post must live in the workspace the comment is written to.
	post, err := s.visiblePost(ctx, tenant.Workspace(workspaceID), in.PostID)
	if err != nil {
		return nil, err
	}

	if in.ParentID != nil {
		parent, err := s.stores.Comments.Get(ctx, *in.ParentID, &workspaceID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, errs.Validation("parent comment does not exist", "parent")
			}
			return nil, fmt.Errorf("getting parent comment: %w", err)
		}
		if parent.PostID != post.ID {
			return nil, errs.Validation("parent comment belongs to another post", "parent")
		}
	}

	comment := &model.Comment{
		ID:          id.New(),
		WorkspaceID: workspaceID,
		PostID:      post.ID,
		AuthorID:    rc.UserID(),
		ParentID:    in.ParentID,
		Content:     content,
	}
	if err := s.stores.Comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	slog.InfoContext(ctx, "comment created",
		"comment_id", comment.ID,
		"post_id", post.ID,
		"workspace_id", workspaceID,
		"is_reply", in.ParentID != nil)
	return comment, nil
}

func (s *feedService) GetComment(ctx context.Context, scope tenant.Scope, commentID int64) (*model.Comment, error) {
	comment, err := s.stores.Comments.Get(ctx, commentID, scope.Filter())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("getting comment: %w", err)
	}
	return comment, nil
}

func (s *feedService) UpdateComment(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, commentID int64, content string) (*model.Comment, error) {
	content, err := validCommentContent(content)
	if err != nil {
		return nil, err
	}

	comment, err := s.GetComment(ctx, scope, commentID)
	if err != nil {
		return nil, err
	}
	if !canModify(rc, comment.AuthorID) {
		return nil, ErrNotAuthor
	}

	comment.Content = content
	if err := s.stores.Comments.UpdateContent(ctx, comment, scope.Filter()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("updating comment: %w", err)
	}
	return comment, nil
}

func (s *feedService) DeleteComment(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, commentID int64) error {
	comment, err := s.GetComment(ctx, scope, commentID)
	if err != nil {
		return err
	}
	if !canModify(rc, comment.AuthorID) {
		return ErrNotAuthor
	}

	if err := s.stores.Comments.Delete(ctx, comment.ID, scope.Filter()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("deleting comment: %w", err)
	}
	slog.InfoContext(ctx, "comment deleted", "comment_id", comment.ID)
	return nil
}

func (s *feedService) ListActivities(ctx context.Context, scope tenant.Scope, targetType *model.TargetType, targetID *int64) ([]model.Activity, error) {
	if targetType != nil && !targetType.IsValid() {
		return nil, errs.Validation("invalid target type", "target_type")
	}
	activities, err := s.stores.Activities.List(ctx, scope.Filter(), targetType, targetID)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	return activities, nil
}

func (s *feedService) CreateActivity(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in CreateActivityInput) (*model.Activity, error) {
	if !in.TargetType.IsValid() {
		return nil, errs.Validation("invalid target type", "target_type")
	}
	if in.TargetID == 0 {
		return nil, errs.Validation("the following required fields are missing", "target_id")
	}

	workspaceID, err := s.gate.TargetWorkspace(ctx, rc, scope, in.WorkspaceID)
	if err != nil {
		return nil, err
	}
	if err := s.targetExists(ctx, workspaceID, in.TargetType, in.TargetID); err != nil {
		return nil, err
	}

	activity := &model.Activity{
		ID:           id.New(),
		WorkspaceID:  workspaceID,
		UserID:       rc.UserID(),
		ActivityType: model.ActivityTypeLike,
		TargetType:   in.TargetType,
		TargetID:     in.TargetID,
	}
	if err := s.stores.Activities.Create(ctx, activity); err != nil {
		if errors.Is(err, store.ErrDuplicate) && store.DuplicateConstraint(err) == store.ConstraintActivityTarget {
			return nil, ErrAlreadyLiked
		}
		return nil, fmt.Errorf("creating activity: %w", err)
	}

	slog.InfoContext(ctx, "content liked",
		"activity_id", activity.ID,
		"target_type", string(in.TargetType),
		"target_id", in.TargetID)
	return activity, nil
}

func (s *feedService) DeleteActivity(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, activityID int64) error {
	activity, err := s.stores.Activities.Get(ctx, activityID, scope.Filter())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrActivityNotFound
		}
		return fmt.Errorf("getting activity: %w", err)
	}
	if !canModify(rc, activity.UserID) {
		return ErrNotAuthor
	}

	if err := s.stores.Activities.Delete(ctx, activity.ID, scope.Filter()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrActivityNotFound
		}
		return fmt.Errorf("deleting activity: %w", err)
	}
	return nil
}

func (s *feedService) targetExists(ctx context.Context, workspaceID int64, targetType model.TargetType, targetID int64) error {
	var err error
	switch targetType {
	case model.TargetTypePost:
		_, err = s.stores.Posts.Get(ctx, targetID, &workspaceID)
	case model.TargetTypeComment:
		_, err = s.stores.Comments.Get(ctx, targetID, &workspaceID)
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errs.Validation("target does not exist", "target_id")
		}
		return fmt.Errorf("getting target: %w", err)
	}
	return nil
}

func validCommentContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", errs.Validation("the following required fields are missing", "content")
	}
	if len([]rune(content)) > model.MaxCommentLength {
		return "", errs.Validation(fmt.Sprintf("content must be at most %d characters", model.MaxCommentLength), "content")
	}
	return content, nil
}
