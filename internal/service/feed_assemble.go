package service

import (
	"context"
	"fmt"
	"slices"

	"helloteam.app/api/internal/model"
)

// assemble loads everything the feed renders for posts with one query per
// relation, keeping the input order.
func (s *feedService) assemble(ctx context.Context, viewerID int64, posts []model.Post) ([]model.FeedPost, error) {
	if len(posts) == 0 {
		return []model.FeedPost{}, nil
	}

	postIDs := make([]int64, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	comments, err := s.stores.Comments.ListForPosts(ctx, postIDs)
	if err != nil {
		return nil, fmt.Errorf("loading comments: %w", err)
	}
	images, err := s.stores.Images.ListForPosts(ctx, postIDs)
	if err != nil {
		return nil, fmt.Errorf("loading images: %w", err)
	}
	videos, err := s.stores.Videos.ListForPosts(ctx, postIDs)
	if err != nil {
		return nil, fmt.Errorf("loading videos: %w", err)
	}
	postLikes, err := s.stores.Activities.ListForTargets(ctx, model.ActivityTypeLike, model.TargetTypePost, postIDs)
	if err != nil {
		return nil, fmt.Errorf("loading post likes: %w", err)
	}

	commentIDs := make([]int64, len(comments))
	for i, c := range comments {
		commentIDs[i] = c.ID
	}
	var commentLikes []model.Activity
	if len(commentIDs) > 0 {
		commentLikes, err = s.stores.Activities.ListForTargets(ctx, model.ActivityTypeLike, model.TargetTypeComment, commentIDs)
		if err != nil {
			return nil, fmt.Errorf("loading comment likes: %w", err)
		}
	}

	authors, err := s.loadAuthors(ctx, posts, comments)
	if err != nil {
		return nil, err
	}

	postLikeIndex := indexLikes(postLikes, viewerID)
	commentLikeIndex := indexLikes(commentLikes, viewerID)

	imagesByPost := make(map[int64][]model.Image)
	for _, img := range images {
		if img.PostID != nil {
			imagesByPost[*img.PostID] = append(imagesByPost[*img.PostID], img)
		}
	}
	videosByPost := make(map[int64][]model.Video)
	for _, v := range videos {
		if v.PostID != nil {
			videosByPost[*v.PostID] = append(videosByPost[*v.PostID], v)
		}
	}

	children := make(map[int64][]model.Comment)
	topLevel := make(map[int64][]model.Comment)
	commentsPerPost := make(map[int64]int)
	for _, c := range comments {
		commentsPerPost[c.PostID]++
		if c.ParentID == nil {
			topLevel[c.PostID] = append(topLevel[c.PostID], c)
		} else {
			children[*c.ParentID] = append(children[*c.ParentID], c)
		}
	}

	var build func(c model.Comment) model.FeedComment
	build = func(c model.Comment) model.FeedComment {
		likes := commentLikeIndex[c.ID]
		fc := model.FeedComment{
			Comment:    c,
			Author:     authors[c.AuthorID],
			LikesCount: likes.count,
			LikeID:     likes.viewerLike,
			Replies:    []model.FeedComment{},
		}
		for _, reply := range children[c.ID] {
			fc.Replies = append(fc.Replies, build(reply))
		}
		return fc
	}

	result := make([]model.FeedPost, len(posts))
	for i, p := range posts {
		likes := postLikeIndex[p.ID]

		roots := topLevel[p.ID]
		slices.Reverse(roots)
		feedComments := make([]model.FeedComment, 0, len(roots))
		for _, c := range roots {
			feedComments = append(feedComments, build(c))
		}

		result[i] = model.FeedPost{
			Post:          p,
			Author:        authors[p.AuthorID],
			Comments:      feedComments,
			CommentsCount: commentsPerPost[p.ID],
			Images:        nonNil(imagesByPost[p.ID]),
			Videos:        nonNil(videosByPost[p.ID]),
			LikesCount:    likes.count,
			LikeID:        likes.viewerLike,
		}
	}
	return result, nil
}

func (s *feedService) loadAuthors(ctx context.Context, posts []model.Post, comments []model.Comment) (map[int64]*model.User, error) {
	ids := make([]int64, 0, len(posts)+len(comments))
	for _, p := range posts {
		ids = append(ids, p.AuthorID)
	}
	for _, c := range comments {
		ids = append(ids, c.AuthorID)
	}

	users, err := s.stores.Users.ListByIDs(ctx, dedupe(ids))
	if err != nil {
		return nil, fmt.Errorf("loading authors: %w", err)
	}
	byID := make(map[int64]*model.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	return byID, nil
}

type likeSummary struct {
	count      int
	viewerLike *int64
}

func indexLikes(likes []model.Activity, viewerID int64) map[int64]likeSummary {
	index := make(map[int64]likeSummary)
	for _, l := range likes {
		sum := index[l.TargetID]
		sum.count++
		if l.UserID == viewerID {
			likeID := l.ID
			sum.viewerLike = &likeID
		}
		index[l.TargetID] = sum
	}
	return index
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
