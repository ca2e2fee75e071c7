package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Gallery(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Page(ctx context.Context, arg string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Show(ctx context.Context, id string) error
	WhoAmI(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the picshelf client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Before each prompt any pending forced-logout notice (from noticeFn) is
// printed. Every non-empty line counts as a user-interaction event and is
// reported via touchFn, which resets the idle timer.
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - gallery | g    — fetch the listing and show the first page
//	  - search <term>  — filter by author, resets to page 1
//	  - page <n>       — jump to a page
//	  - next | prev    — move one page
//	  - show <id>      — show one image's details
//	  - whoami         — print the session's user
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, touchFn func(), noticeFn func() (string, bool), scanner *bufio.Scanner) {
	for {
		if msg, ok := noticeFn(); ok {
			printlnFn(msg)
		}

		printlnFn(fmt.Sprintf("psh> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		touchFn()

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (g)allery, search <term>, page <n>, next, prev, show <id>, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "g", "gallery":
			_ = a.Gallery(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "page":
			if len(args) == 0 {
				printlnFn("Usage: page <n>")
				continue
			}
			_ = a.Page(ctx, args[0])

		case "next":
			_ = a.Next(ctx)

		case "prev":
			_ = a.Prev(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
