package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"linkfeed/internal/client/session"
)

type fakeExec struct {
	status session.Status

	calls []string
}

func (f *fakeExec) sessionStatus() session.Status { return f.status }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.status = session.StatusAuthenticated
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.status = session.StatusAnonymous
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Feed(ctx context.Context) error { f.calls = append(f.calls, "feed"); return nil }
func (f *fakeExec) Search(ctx context.Context, query string) error {
	f.calls = append(f.calls, "search:"+query)
	return nil
}
func (f *fakeExec) Compose(ctx context.Context) error {
	f.calls = append(f.calls, "post")
	return nil
}
func (f *fakeExec) Like(ctx context.Context, idArg string) error {
	f.calls = append(f.calls, "like:"+idArg)
	return nil
}
func (f *fakeExec) Delete(ctx context.Context, idArg string) error {
	f.calls = append(f.calls, "delete:"+idArg)
	return nil
}
func (f *fakeExec) Mine(ctx context.Context) error { f.calls = append(f.calls, "mine"); return nil }
func (f *fakeExec) ShowUser(ctx context.Context, idArg string) error {
	f.calls = append(f.calls, "user:"+idArg)
	return nil
}
func (f *fakeExec) EditProfile(ctx context.Context) error {
	f.calls = append(f.calls, "edit")
	return nil
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runInput(t *testing.T, exec *fakeExec, input string) {
	t.Helper()
	sc := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), exec, func() string { return "status" }, sc)
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{status: session.StatusAnonymous}
	runInput(t, exec, strings.Join([]string{
		"help",
		"login",
		"help",
		"feed",
		"post",
		"like 42",
		"mine",
		"search golang jobs",
		"foobar",
		"exit",
	}, "\n"))

	wantOrder := []string{"login", "feed", "post", "like:42", "mine", "search:golang jobs"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_GuardRedirectsToLoginWhenAnonymous(t *testing.T) {
	lines := silencePrintln(t)

	exec := &fakeExec{status: session.StatusAnonymous}
	runInput(t, exec, "post\nexit\n")

	// the gated command must not have run; the login flow ran instead
	for _, c := range exec.calls {
		if c == "post" {
			t.Fatalf("gated command dispatched while anonymous: %v", exec.calls)
		}
	}
	if len(exec.calls) == 0 || exec.calls[0] != "login" {
		t.Fatalf("expected login flow, got %v", exec.calls)
	}

	found := false
	for _, l := range *lines {
		if strings.Contains(l, "You need to login first.") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected login notice in output: %v", *lines)
	}
}

func TestRunREPL_GuardFailsClosedWhileLoading(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{status: session.StatusLoading}
	runInput(t, exec, "whoami\nexit\n")

	if len(exec.calls) == 0 || exec.calls[0] != "login" {
		t.Fatalf("expected login flow while loading, got %v", exec.calls)
	}
}

func TestRunREPL_PublicCommandsBypassGuard(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{status: session.StatusAnonymous}
	runInput(t, exec, "feed\nuser 9\nexit\n")

	want := []string{"feed", "user:9"}
	if len(exec.calls) != len(want) {
		t.Fatalf("got %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("got %v, want %v", exec.calls, want)
		}
	}
}

func TestRunREPL_QuitStopsLoop(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{status: session.StatusAuthenticated}
	runInput(t, exec, "quit\nfeed\n")

	if len(exec.calls) != 0 {
		t.Fatalf("no commands should run after quit: %v", exec.calls)
	}
}
