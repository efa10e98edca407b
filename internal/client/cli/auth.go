package cli

import (
	"context"
	"errors"
	"fmt"

	"linkfeed/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email, password and an optional bio and
// attempts to create an account. A successful registration also logs the
// session in. Validation failures from the backend (e.g. a duplicate
// email) are shown verbatim.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	bio, err := getSimpleText(a.reader, "Enter bio (optional)", a.out)
	if err != nil {
		return err
	}

	if err := a.sessions.Register(ctx, name, email, password, bio); err != nil {
		if errors.Is(err, session.ErrSuperseded) {
			return err
		}
		fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Account created, you are now logged in.")
	return nil
}

// Login prompts for credentials and tries to authenticate. On failure the
// backend message is shown inline and the session stays as it was.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.sessions.Login(ctx, email, password); err != nil {
		if errors.Is(err, session.ErrSuperseded) {
			return err
		}
		fmt.Fprintf(a.out, "Login failed: %v\n", err)
		return err
	}

	if st := a.sessions.Current(); st.User != nil {
		fmt.Fprintf(a.out, "Logged in as %s.\n", st.User.Name)
	}
	return nil
}

// Logout clears the stored credential and the in-memory session.
func (a *App) Logout(ctx context.Context) error {
	a.sessions.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the authenticated profile.
func (a *App) WhoAmI(ctx context.Context) error {
	st := a.sessions.Current()
	if st.Status != session.StatusAuthenticated {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	printUser(a.out, st.User)
	return nil
}
