// Package services contains the application services behind the CLI
// commands: feed, search, composing, liking and deleting posts, and
// profile viewing/editing.
package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"linkfeed/internal/client/api"
	"linkfeed/internal/client/models"
)

var (
	// ErrEmptyContent: a post must contain some text.
	ErrEmptyContent = errors.New("content is required")
	// ErrContentTooLong: content exceeds models.MaxPostContentLen characters.
	ErrContentTooLong = errors.New("content exceeds 1000 characters")
	// ErrEmptyQuery: search needs a non-empty query.
	ErrEmptyQuery = errors.New("search query is required")
)

// PostService defines feed and post operations for the CLI.
//
// Contract:
//   - Feed: newest-first list of all posts.
//   - Search: posts matching the query by content or author name.
//   - Compose: create a post; content is validated before dispatch.
//   - ToggleLike: flip the caller's like on a post; returns the refreshed
//     count and flag from the server.
//   - Delete: remove the caller's own post.
//   - UserPosts: newest-first posts by one author.
type PostService interface {
	Feed(ctx context.Context) ([]models.Post, error)
	Search(ctx context.Context, query string) ([]models.Post, error)
	Compose(ctx context.Context, content string) (*models.Post, error)
	ToggleLike(ctx context.Context, postID int64) (*models.LikeResult, error)
	Delete(ctx context.Context, postID int64) error
	UserPosts(ctx context.Context, userID int64) ([]models.Post, error)
}

type postService struct {
	client api.Client
}

// NewPostService constructs a PostService bound to the given API client.
func NewPostService(client api.Client) PostService {
	return &postService{client: client}
}

func (s *postService) Feed(ctx context.Context) ([]models.Post, error) {
	return s.client.ListPosts(ctx)
}

func (s *postService) Search(ctx context.Context, query string) ([]models.Post, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	res, err := s.client.SearchPosts(ctx, query)
	if err != nil {
		return nil, err
	}
	return res.Posts, nil
}

// Compose validates the content locally and only then dispatches the
// request. The limit counts characters, not bytes.
func (s *postService) Compose(ctx context.Context, content string) (*models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > models.MaxPostContentLen {
		return nil, ErrContentTooLong
	}
	return s.client.CreatePost(ctx, content)
}

func (s *postService) ToggleLike(ctx context.Context, postID int64) (*models.LikeResult, error) {
	return s.client.ToggleLike(ctx, postID)
}

func (s *postService) Delete(ctx context.Context, postID int64) error {
	return s.client.DeletePost(ctx, postID)
}

func (s *postService) UserPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	return s.client.UserPosts(ctx, userID)
}
