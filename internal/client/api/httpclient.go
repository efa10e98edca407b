package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"linkfeed/internal/client/models"
)

// HTTPClient is the Client implementation over the REST backend.
// It is safe for concurrent use.
type HTTPClient struct {
	baseURL string
	pingURL string
	hc      *http.Client
	tokens  TokenSource
}

// NewHTTPClient builds a client for the given API base URL, e.g.
// "http://localhost:5000/api". The ping URL is derived from the host root,
// where the backend serves its health route.
func NewHTTPClient(baseURL string, hc *http.Client, tokens TokenSource) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host required", baseURL)
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		pingURL: u.Scheme + "://" + u.Host + "/",
		hc:      hc,
		tokens:  tokens,
	}, nil
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

// errorBody is the backend's uniform failure payload.
type errorBody struct {
	Message string `json:"message"`
}

// do performs one request against the API. A JSON body is sent when in is
// non-nil; the response is decoded into out when out is non-nil. Non-2xx
// responses are turned into a typed *Error via the taxonomy in errors.go.
func (c *HTTPClient) do(ctx context.Context, method, rawurl string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawurl, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("load credential: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return newError(resp.StatusCode, eb.Message)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return transportError(fmt.Errorf("decode response: %w", err))
		}
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	in := map[string]string{"email": email, "password": password}
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/auth/login", in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password, bio string) (*AuthResult, error) {
	in := map[string]string{"name": name, "email": email, "password": password}
	if bio != "" {
		in["bio"] = bio
	}
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/auth/register", in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/auth/profile", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPut, c.baseURL+"/auth/profile", upd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) SearchPosts(ctx context.Context, query string) (*models.SearchResult, error) {
	var res models.SearchResult
	rawurl := c.baseURL + "/posts/search?q=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, rawurl, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, content string) (*models.Post, error) {
	in := map[string]string{"content": content}
	var p models.Post
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/posts", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) ToggleLike(ctx context.Context, postID int64) (*models.LikeResult, error) {
	var res models.LikeResult
	rawurl := fmt.Sprintf("%s/posts/%d/like", c.baseURL, postID)
	if err := c.do(ctx, http.MethodPost, rawurl, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, postID int64) error {
	rawurl := fmt.Sprintf("%s/posts/%d", c.baseURL, postID)
	return c.do(ctx, http.MethodDelete, rawurl, nil, nil)
}

func (c *HTTPClient) UserPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	var posts []models.Post
	rawurl := fmt.Sprintf("%s/posts/user/%d", c.baseURL, userID)
	if err := c.do(ctx, http.MethodGet, rawurl, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	var u models.User
	rawurl := fmt.Sprintf("%s/users/%d", c.baseURL, userID)
	if err := c.do(ctx, http.MethodGet, rawurl, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Ping probes the backend's health route at the server root.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.pingURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 500 {
		return ErrUnavailable
	}
	return nil
}
