// Package routes decides whether a screen may render for the current
// session state. The policy is pure and must be re-evaluated on every
// state transition, never cached.
package routes

import "linkfeed/internal/client/session"

// ScreenCategory classifies screens by their authentication requirement.
type ScreenCategory int

const (
	// Public screens render for everybody.
	Public ScreenCategory = iota
	// RequiresAuth screens render only for an authenticated session.
	RequiresAuth
)

// Decision is the outcome of a guard evaluation.
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
)

// Decide maps (session status, screen category) to a decision.
//
// RequiresAuth screens allow only an authenticated session; an unresolved
// session (uninitialized or loading) fails closed to RedirectToLogin.
// Public screens always allow.
func Decide(status session.Status, category ScreenCategory) Decision {
	if category == Public {
		return Allow
	}
	if status == session.StatusAuthenticated {
		return Allow
	}
	return RedirectToLogin
}
