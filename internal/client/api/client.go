// Package api talks to the LinkFeed REST backend. The Client interface is
// the only surface the rest of the client sees; the concrete HTTPClient
// attaches the stored bearer credential and normalizes every failure into
// the package's error taxonomy.
package api

import (
	"context"

	"linkfeed/internal/client/models"
)

// TokenSource supplies the bearer credential attached to outgoing requests.
// An empty token with a nil error means "no credential stored" and the
// request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// AuthResult is the payload of a successful login or register exchange.
type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Client defines the backend operations used by the LinkFeed client.
//
// All methods honor context cancellation. Failures are always one of the
// package sentinel errors (wrapped); the *Error type additionally carries
// the backend message for display.
type Client interface {
	Close() error

	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, name, email, password, bio string) (*AuthResult, error)
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)

	ListPosts(ctx context.Context) ([]models.Post, error)
	SearchPosts(ctx context.Context, query string) (*models.SearchResult, error)
	CreatePost(ctx context.Context, content string) (*models.Post, error)
	ToggleLike(ctx context.Context, postID int64) (*models.LikeResult, error)
	DeletePost(ctx context.Context, postID int64) error
	UserPosts(ctx context.Context, userID int64) ([]models.Post, error)

	GetUser(ctx context.Context, userID int64) (*models.User, error)

	Ping(ctx context.Context) error
}
