// Package credentials persists the single bearer token across client
// restarts.
package credentials

import "context"

// Repository is the durable store for the bearer credential.
//
// Contract:
//   - Save: persist the token, replacing any previous one.
//   - Load: return the stored token, or "" when none is stored.
//   - Clear: remove the stored token; clearing an empty store is not an error.
type Repository interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
