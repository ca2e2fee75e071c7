package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Gallery(ctx context.Context) error {
	f.calls = append(f.calls, "gallery")
	return nil
}
func (f *fakeExec) Search(ctx context.Context, term string) error {
	f.calls = append(f.calls, "search")
	f.arg = term
	return nil
}
func (f *fakeExec) Page(ctx context.Context, arg string) error {
	f.calls = append(f.calls, "page")
	f.arg = arg
	return nil
}
func (f *fakeExec) Next(ctx context.Context) error { f.calls = append(f.calls, "next"); return nil }
func (f *fakeExec) Prev(ctx context.Context) error { f.calls = append(f.calls, "prev"); return nil }
func (f *fakeExec) Show(ctx context.Context, id string) error {
	f.calls = append(f.calls, "show")
	f.arg = id
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func noNotice() (string, bool) { return "", false }

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"gallery",
		"search john doe",
		"page 2",
		"next",
		"prev",
		"show 42",
		"whoami",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, func() {}, noNotice, sc)

	wantOrder := []string{"login", "gallery", "search", "page", "next", "prev", "show", "whoami"}
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

func TestRunREPL_SearchJoinsArgs(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("search john doe\nexit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, func() {}, noNotice, sc)

	if exec.arg != "john doe" {
		t.Fatalf("search term = %q, want %q", exec.arg, "john doe")
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("page\nshow\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, func() {}, noNotice, sc)

	for _, c := range exec.calls {
		if c == "page" || c == "show" {
			t.Fatalf("handler called without argument: %v", exec.calls)
		}
	}
}

func TestRunREPL_EveryCommandTouches(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("help\n\nwhoami\nexit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	touches := 0
	runREPL(context.Background(), exec, func() string { return "" }, func() { touches++ }, noNotice, sc)

	// help, whoami, exit; the blank line is not an interaction
	if touches != 3 {
		t.Fatalf("touches = %d, want 3", touches)
	}
}

func TestRunREPL_PrintsPendingNotice(t *testing.T) {
	var lines []string
	origPrint := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	notices := []string{"You've been logged out due to inactivity"}
	noticeFn := func() (string, bool) {
		if len(notices) == 0 {
			return "", false
		}
		msg := notices[0]
		notices = notices[1:]
		return msg, true
	}

	input := strings.NewReader("exit\n")
	sc := bufio.NewScanner(input)
	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, func() {}, noticeFn, sc)

	found := false
	for _, l := range lines {
		if l == "You've been logged out due to inactivity" {
			found = true
		}
	}
	if !found {
		t.Fatalf("notice not printed, lines: %v", lines)
	}
}
