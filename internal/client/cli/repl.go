package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"linkfeed/internal/client/routes"
	"linkfeed/internal/client/session"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	sessionStatus() session.Status
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Feed(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Compose(ctx context.Context) error
	Like(ctx context.Context, idArg string) error
	Delete(ctx context.Context, idArg string) error
	Mine(ctx context.Context) error
	ShowUser(ctx context.Context, idArg string) error
	EditProfile(ctx context.Context) error
}

// commandCategories classifies REPL commands for the route guard. Commands
// absent from the map need no gating (auth flows, help, exit).
var commandCategories = map[string]routes.ScreenCategory{
	"feed":   routes.Public,
	"search": routes.Public,
	"user":   routes.Public,
	"post":   routes.RequiresAuth,
	"like":   routes.RequiresAuth,
	"delete": routes.RequiresAuth,
	"mine":   routes.RequiresAuth,
	"whoami": routes.RequiresAuth,
	"edit":   routes.RequiresAuth,
}

// runREPL starts a read-eval-print loop for the LinkFeed CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The route guard runs on every dispatch against the current session state:
// when a command requiring authentication is entered while the session is
// not authenticated, the user is sent to the login flow instead (the
// terminal equivalent of a redirect to the login screen).
//
// Any errors returned by command handlers are ignored here; handlers
// surface their own errors inline. This keeps the loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("lf %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if category, gated := commandCategories[cmd]; gated {
			if routes.Decide(a.sessionStatus(), category) == routes.RedirectToLogin {
				printlnFn("You need to login first.")
				_ = a.Login(ctx)
				continue
			}
		}

		switch cmd {
		case "help":
			if a.sessionStatus() == session.StatusAuthenticated {
				printlnFn("Available commands: feed, search <text>, post, like <id>, delete <id>, mine, user <id>, whoami, edit, logout, exit")
			} else {
				printlnFn("Available commands: feed, search <text>, user <id>, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "f", "feed":
			_ = a.Feed(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "post":
			_ = a.Compose(ctx)

		case "like":
			_ = a.Like(ctx, firstArg(args))

		case "delete":
			_ = a.Delete(ctx, firstArg(args))

		case "mine":
			_ = a.Mine(ctx)

		case "user":
			_ = a.ShowUser(ctx, firstArg(args))

		case "edit":
			_ = a.EditProfile(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
