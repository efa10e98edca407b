// Package models defines the data shapes exchanged with the LinkFeed backend.
package models

// User is a resolved profile, either the authenticated account or a
// profile being viewed. Optional fields are empty strings when the
// backend omits them.
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Bio        string `json:"bio,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
	JobTitle   string `json:"job_title,omitempty"`
	Location   string `json:"location,omitempty"`
	PostsCount int64  `json:"posts_count,omitempty"`
}

// ProfileUpdate carries the editable profile fields for PUT /auth/profile.
// Nil pointers mean "leave unchanged"; the backend only touches keys that
// are present in the request body.
type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	JobTitle *string `json:"job_title,omitempty"`
	Location *string `json:"location,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}
