// Package cli implements the interactive terminal UI: a REPL dispatching
// to command handlers on App, gated by the route guard.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"linkfeed/internal/client/api"
	"linkfeed/internal/client/config"
	"linkfeed/internal/client/repositories/credentials"
	"linkfeed/internal/client/services"
	"linkfeed/internal/client/session"
	"linkfeed/internal/client/storage"
	"linkfeed/internal/logging"
)

// Mode reflects backend reachability as seen by the status watcher.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// App wires configuration, storage, the API client, the session manager
// and the services behind the REPL commands.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	client   api.Client
	sessions *session.Manager
	posts    services.PostService
	users    services.UserService
	reader   *bufio.Reader
	out      io.Writer

	mu   sync.Mutex
	mode Mode
}

// NewApp builds a fully wired App from the given configuration.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	log := logging.NewDefault(os.Stderr, level)

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init local database: %w", err)
	}

	creds := credentials.NewSQLiteRepository(db)

	apiClient, err := api.NewHTTPClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.RequestTimeout}, creds)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessions := session.NewManager(apiClient, creds, log)

	return &App{
		config:   cfg,
		log:      log,
		db:       db,
		client:   apiClient,
		sessions: sessions,
		posts:    services.NewPostService(apiClient),
		users:    services.NewUserService(apiClient, sessions),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run resolves the session from the stored credential, starts the online
// status watcher and enters the REPL. It returns when the user quits or
// stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	defer a.client.Close()

	a.sessions.Subscribe(func(st session.State) {
		a.log.Debug(ctx, "session transition", "status", st.Status.String())
	})

	a.sessions.Resolve(ctx)
	if st := a.sessions.Current(); st.Status == session.StatusAuthenticated {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", st.User.Name)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	fmt.Fprintln(a.out, "Welcome to LinkFeed CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) sessionStatus() session.Status {
	return a.sessions.Current().Status
}

func (a *App) getMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()
	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

// getStatus renders the prompt suffix, e.g. "(alice online)".
func (a *App) getStatus() string {
	s := ""
	if st := a.sessions.Current(); st.Status == session.StatusAuthenticated {
		s = st.User.Name + " "
	}
	if mode := a.getMode(); mode != "" {
		s += string(mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartOnlineStatusWatcher periodically pings the backend and flips the
// connectivity mode shown in the prompt. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.client.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
