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
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Recover(ctx context.Context) error
	CheckUsername(ctx context.Context) error
	SubmitRecheck(ctx context.Context) error
	MyRechecks(ctx context.Context) error
	PendingRechecks(ctx context.Context) error
	DecideRecheck(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a read-eval-print loop over the records commands.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - recover        — request password recovery
//	  - check          — check username availability
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - recheck        — submit a result recheck request
//	  - myrechecks     — list own recheck requests
//	  - pending        — list requests awaiting review (admin)
//	  - decide         — approve or reject a request (admin)
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("urec> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				if a.isAdmin() {
					printlnFn("Available commands: recheck, myrechecks, pending, decide, logout, exit")
				} else {
					printlnFn("Available commands: recheck, myrechecks, logout, exit")
				}
			} else {
				printlnFn("Available commands: register, login, recover, check, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "recover":
			_ = a.Recover(ctx)

		case "check":
			_ = a.CheckUsername(ctx)

		case "recheck":
			_ = a.SubmitRecheck(ctx)

		case "myrechecks":
			_ = a.MyRechecks(ctx)

		case "pending":
			_ = a.PendingRechecks(ctx)

		case "decide":
			_ = a.DecideRecheck(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
