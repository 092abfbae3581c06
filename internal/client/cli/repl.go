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
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Select(ctx context.Context, path string) error
	Upload(ctx context.Context) error
	Preview(ctx context.Context) error
	Errors(ctx context.Context) error
	Ask(ctx context.Context, question string) error
	History(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the salesdesk CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The rest of the line is passed verbatim to
// commands that take an argument, so paths and questions may contain spaces.
// The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help          : show available commands
//	  - signup        : create an account
//	  - login         : authenticate
//	  - exit | quit   : leave the program
//
//	Logged in:
//	  - help          : show available commands
//	  - select <path> : pick the sales file (a dropped path works too)
//	  - upload        : upload and clean the selected file
//	  - preview       : show the first rows of the cleaned data
//	  - errors        : list mapping errors of the last upload
//	  - ask <question>: ask the assistant about the data
//	  - history       : show the chat transcript
//	  - dashboard     : print the dashboard link
//	  - logout        : log out
//	  - exit | quit   : leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sd %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)
		if cmd == "" {
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: select <path>, upload, preview, errors, ask <question>, history, dashboard, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, exit")
			}

		case "signup", "register":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "select":
			if arg == "" {
				printlnFn("Usage: select <path>")
				continue
			}
			_ = a.Select(ctx, arg)

		case "upload":
			_ = a.Upload(ctx)

		case "preview":
			_ = a.Preview(ctx)

		case "errors":
			_ = a.Errors(ctx)

		case "ask":
			if arg == "" {
				printlnFn("Usage: ask <question>")
				continue
			}
			_ = a.Ask(ctx, arg)

		case "history":
			_ = a.History(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
