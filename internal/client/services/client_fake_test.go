package services

import (
	"context"

	"linkfeed/internal/client/api"
	"linkfeed/internal/client/models"
)

// fakeAPI implements api.Client with canned results and call recording,
// shared by the service tests in this package.
type fakeAPI struct {
	LoginRes    *api.AuthResult
	LoginErr    error
	RegisterRes *api.AuthResult
	RegisterErr error

	ProfileRes *models.User
	ProfileErr error
	UpdateRes  *models.User
	UpdateErr  error

	Posts     []models.Post
	SearchRes *models.SearchResult

	CreateRes *models.Post
	CreateErr error

	// likes holds the server-side like state keyed by post id, so a
	// toggle flips it the way the backend would.
	likes     map[int64]bool
	baseLikes map[int64]int64

	DeleteErr error

	UserRes *models.User
	UserErr error

	LastQuery     string
	LastContent   string
	LastUpdate    models.ProfileUpdate
	LastUserID    int64
	CreateCalls   int
	LastDeletedID int64
}

func (f *fakeAPI) Close() error { return nil }

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*api.AuthResult, error) {
	return f.LoginRes, f.LoginErr
}

func (f *fakeAPI) Register(ctx context.Context, name, email, password, bio string) (*api.AuthResult, error) {
	return f.RegisterRes, f.RegisterErr
}

func (f *fakeAPI) Profile(ctx context.Context) (*models.User, error) {
	return f.ProfileRes, f.ProfileErr
}

func (f *fakeAPI) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	f.LastUpdate = upd
	return f.UpdateRes, f.UpdateErr
}

func (f *fakeAPI) ListPosts(ctx context.Context) ([]models.Post, error) {
	return f.Posts, nil
}

func (f *fakeAPI) SearchPosts(ctx context.Context, q string) (*models.SearchResult, error) {
	f.LastQuery = q
	return f.SearchRes, nil
}

func (f *fakeAPI) CreatePost(ctx context.Context, content string) (*models.Post, error) {
	f.CreateCalls++
	f.LastContent = content
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	return f.CreateRes, nil
}

func (f *fakeAPI) ToggleLike(ctx context.Context, postID int64) (*models.LikeResult, error) {
	if f.likes == nil {
		f.likes = make(map[int64]bool)
	}
	f.likes[postID] = !f.likes[postID]
	count := f.baseLikes[postID]
	if f.likes[postID] {
		count++
	}
	return &models.LikeResult{
		Liked:       f.likes[postID],
		LikesCount:  count,
		LikedByUser: f.likes[postID],
	}, nil
}

func (f *fakeAPI) DeletePost(ctx context.Context, postID int64) error {
	f.LastDeletedID = postID
	return f.DeleteErr
}

func (f *fakeAPI) UserPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	f.LastUserID = userID
	return f.Posts, nil
}

func (f *fakeAPI) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	f.LastUserID = userID
	return f.UserRes, f.UserErr
}

func (f *fakeAPI) Ping(ctx context.Context) error { return nil }
