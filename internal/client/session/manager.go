package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"linkfeed/internal/client/api"
	"linkfeed/internal/client/models"
	"linkfeed/internal/client/repositories/credentials"
	"linkfeed/internal/logging"
)

var (
	// ErrSuperseded: the operation settled after a conflicting transition
	// and its result was discarded.
	ErrSuperseded = errors.New("session state superseded")
	// ErrNotAuthenticated: the operation requires an authenticated session.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Manager is the process-wide session state machine. Exactly one instance
// exists per running client; consumers receive it by injection and observe
// transitions via Subscribe or by polling Current.
//
// Transitions are strictly ordered through a monotonically increasing
// epoch: every applied transition bumps it, and every asynchronous
// operation records the epoch it started from and discards its result if
// the epoch has moved by the time it settles. A login that resolves after
// a logout therefore never resurrects the authenticated state.
type Manager struct {
	api   api.Client
	creds credentials.Repository
	log   logging.Logger

	mu        sync.Mutex
	status    Status
	user      *models.User
	epoch     uint64
	listeners []func(State)
}

// NewManager creates a Manager in the uninitialized state. Call Resolve
// once at startup to derive the session from the stored credential.
func NewManager(apiClient api.Client, creds credentials.Repository, log logging.Logger) *Manager {
	return &Manager{
		api:    apiClient,
		creds:  creds,
		log:    log,
		status: StatusUninitialized,
	}
}

// Current returns a snapshot of the session state.
func (m *Manager) Current() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return State{Status: m.status, User: m.user}
}

// Subscribe registers fn to be called after every applied transition.
// Callbacks run outside the manager's lock, in transition order.
func (m *Manager) Subscribe(fn func(State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// applyLocked bumps the epoch and installs the new state. The caller holds
// m.mu and must invoke notify with the returned values after unlocking.
func (m *Manager) applyLocked(status Status, user *models.User) ([]func(State), State) {
	m.epoch++
	m.status = status
	m.user = user
	fns := make([]func(State), len(m.listeners))
	copy(fns, m.listeners)
	return fns, State{Status: status, User: user}
}

func (m *Manager) notify(fns []func(State), st State) {
	for _, fn := range fns {
		fn(st)
	}
}

// Resolve derives the session from the stored credential. Absent credential
// means anonymous. A present credential puts the session into the loading
// state while the identity is resolved; if resolution fails for any reason
// the credential is discarded and the session degrades to anonymous. There
// is nobody to report the failure to at startup, so it is only logged.
func (m *Manager) Resolve(ctx context.Context) {
	token, err := m.creds.Load(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to load stored credential", "error", err)
	}
	if token == "" {
		m.mu.Lock()
		fns, st := m.applyLocked(StatusAnonymous, nil)
		m.mu.Unlock()
		m.notify(fns, st)
		return
	}

	m.mu.Lock()
	fns, st := m.applyLocked(StatusLoading, nil)
	epoch := m.epoch
	m.mu.Unlock()
	m.notify(fns, st)

	user, err := m.api.Profile(ctx)

	m.mu.Lock()
	if m.epoch != epoch {
		m.mu.Unlock()
		return
	}
	if err != nil {
		m.log.Warn(ctx, "stored credential rejected, starting anonymous", "error", err)
		if cerr := m.creds.Clear(ctx); cerr != nil {
			m.log.Error(ctx, "failed to clear rejected credential", "error", cerr)
		}
		fns, st = m.applyLocked(StatusAnonymous, nil)
	} else {
		fns, st = m.applyLocked(StatusAuthenticated, user)
	}
	m.mu.Unlock()
	m.notify(fns, st)
}

// Login performs the login exchange. On success the token is persisted and
// the session becomes authenticated. On backend failure the state is left
// untouched and the error carries the backend message. If a conflicting
// transition (e.g. logout) settled while the exchange was in flight, the
// result is discarded and ErrSuperseded is returned.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	epoch := m.snapshotEpoch()
	res, err := m.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return m.adopt(ctx, epoch, res)
}

// Register creates an account and logs it in, with the same contract as
// Login. Validation failures (e.g. duplicate email) surface verbatim.
func (m *Manager) Register(ctx context.Context, name, email, password, bio string) error {
	epoch := m.snapshotEpoch()
	res, err := m.api.Register(ctx, name, email, password, bio)
	if err != nil {
		return err
	}
	return m.adopt(ctx, epoch, res)
}

func (m *Manager) snapshotEpoch() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.epoch
}

// adopt persists the token from a settled auth exchange and transitions to
// authenticated, unless the session moved on in the meantime.
func (m *Manager) adopt(ctx context.Context, epoch uint64, res *api.AuthResult) error {
	m.mu.Lock()
	if m.epoch != epoch {
		m.mu.Unlock()
		return ErrSuperseded
	}
	if err := m.creds.Save(ctx, res.Token); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("persist credential: %w", err)
	}
	user := res.User
	fns, st := m.applyLocked(StatusAuthenticated, &user)
	m.mu.Unlock()
	m.notify(fns, st)
	return nil
}

// Logout clears the credential and transitions to anonymous,
// unconditionally and regardless of the prior state. The bearer token is
// stateless so no backend call is made. A failure to clear the store is
// logged but does not prevent the transition.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	if err := m.creds.Clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear credential on logout", "error", err)
	}
	fns, st := m.applyLocked(StatusAnonymous, nil)
	m.mu.Unlock()
	m.notify(fns, st)
}

// UpdateUser replaces the held identity wholesale after a confirmed profile
// edit. Calling it while not authenticated is a caller error and returns
// ErrNotAuthenticated without touching the state.
func (m *Manager) UpdateUser(user models.User) error {
	m.mu.Lock()
	if m.status != StatusAuthenticated {
		m.mu.Unlock()
		return ErrNotAuthenticated
	}
	fns, st := m.applyLocked(StatusAuthenticated, &user)
	m.mu.Unlock()
	m.notify(fns, st)
	return nil
}
