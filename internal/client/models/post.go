package models

// MaxPostContentLen is the backend's limit on post content, in characters.
// The client enforces it before dispatching a create request.
const MaxPostContentLen = 1000

// Post is a feed item as returned by the backend. Author fields are
// denormalized into the post payload. LikesCount and LikedByUser reflect
// the latest server response for this item and are not recomputed locally.
type Post struct {
	ID             int64  `json:"id"`
	Content        string `json:"content"`
	CreatedAt      string `json:"created_at"`
	AuthorID       int64  `json:"author_id"`
	AuthorName     string `json:"author_name"`
	AuthorAvatar   string `json:"author_avatar,omitempty"`
	AuthorJobTitle string `json:"author_job_title,omitempty"`
	LikesCount     int64  `json:"likes_count"`
	LikedByUser    bool   `json:"liked_by_user"`
}

// LikeResult is the payload of POST /posts/{id}/like: the toggled state
// plus the refreshed post.
type LikeResult struct {
	Post        Post  `json:"post"`
	Liked       bool  `json:"liked"`
	LikesCount  int64 `json:"likes_count"`
	LikedByUser bool  `json:"liked_by_user"`
}

// SearchResult is the payload of GET /posts/search.
type SearchResult struct {
	Posts []Post `json:"posts"`
	Query string `json:"query"`
	Count int    `json:"count"`
}
