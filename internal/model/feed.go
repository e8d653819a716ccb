package model

import "time"

type Post struct {
	ID          int64     `json:"id"`
	WorkspaceID int64     `json:"workspace_id"`
	AuthorID    int64     `json:"author_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const MaxCommentLength = 254

type Comment struct {
	ID          int64     `json:"id"`
	WorkspaceID int64     `json:"workspace_id"`
	PostID      int64     `json:"post_id"`
	AuthorID    int64     `json:"author_id"`
	ParentID    *int64    `json:"parent_id,omitempty"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ActivityType string

const ActivityTypeLike ActivityType = "L"

type TargetType string

const (
	TargetTypePost    TargetType = "post"
	TargetTypeComment TargetType = "comment"
)

func (t TargetType) IsValid() bool {
	return t == TargetTypePost || t == TargetTypeComment
}

// Activity records a user's reaction to a post or comment. At most one
// activity of a type exists per user and target.
type Activity struct {
	ID           int64        `json:"id"`
	WorkspaceID  int64        `json:"workspace_id"`
	UserID       int64        `json:"user_id"`
	ActivityType ActivityType `json:"activity_type"`
	TargetType   TargetType   `json:"target_type"`
	TargetID     int64        `json:"target_id"`
	CreatedAt    time.Time    `json:"created_at"`
}

// FeedComment is a top-level comment or reply with its like state.
type FeedComment struct {
	Comment
	Author     *User
	Replies    []FeedComment
	LikesCount int
	LikeID     *int64
}

func (c *FeedComment) IsLiked() bool {
	return c.LikeID != nil
}

// FeedPost is a post with everything the feed renders alongside it.
type FeedPost struct {
	Post
	Author *User
	// Comments holds top-level comments, newest first.
	Comments      []FeedComment
	CommentsCount int
	Images        []Image
	Videos        []Video
	LikesCount    int
	// LikeID is the caller's like on this post, if any.
	LikeID *int64
}

func (p *FeedPost) IsLiked() bool {
	return p.LikeID != nil
}
