// Package session holds the single authoritative "who is logged in" state
// for the client and the operations that move it: startup resolution,
// login, register, logout and profile replacement.
package session

import "linkfeed/internal/client/models"

// Status is the authentication phase of the session.
type Status int

const (
	// StatusUninitialized: before startup resolution has begun.
	StatusUninitialized Status = iota
	// StatusLoading: a stored credential is being resolved against the backend.
	StatusLoading
	// StatusAuthenticated: a user is logged in.
	StatusAuthenticated
	// StatusAnonymous: nobody is logged in.
	StatusAnonymous
)

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusLoading:
		return "loading"
	case StatusAuthenticated:
		return "authenticated"
	case StatusAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// State is a snapshot of the session. User is non-nil exactly when Status
// is StatusAuthenticated.
type State struct {
	Status Status
	User   *models.User
}
