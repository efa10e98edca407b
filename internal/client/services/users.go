package services

import (
	"context"

	"linkfeed/internal/client/api"
	"linkfeed/internal/client/models"
	"linkfeed/internal/client/session"
)

// UserService covers viewing profiles and editing one's own.
type UserService interface {
	Get(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
}

type userService struct {
	client   api.Client
	sessions *session.Manager
}

// NewUserService constructs a UserService. Confirmed profile edits are
// pushed into the session manager so every consumer observes the new
// identity.
func NewUserService(client api.Client, sessions *session.Manager) UserService {
	return &userService{client: client, sessions: sessions}
}

func (s *userService) Get(ctx context.Context, userID int64) (*models.User, error) {
	return s.client.GetUser(ctx, userID)
}

// UpdateProfile sends the edit to the backend and, once confirmed, replaces
// the identity held by the session manager wholesale.
func (s *userService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	user, err := s.client.UpdateProfile(ctx, upd)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.UpdateUser(*user); err != nil {
		return nil, err
	}
	return user, nil
}
