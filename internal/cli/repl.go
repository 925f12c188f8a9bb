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
	Login(ctx context.Context, args []string) error
	OrgLogin(ctx context.Context, args []string) error
	Register(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	View(ctx context.Context, args []string) error
	Notifications(ctx context.Context, args []string) error
	MarkRead(ctx context.Context, args []string) error
	MarkAllRead(ctx context.Context, args []string) error
	Broadcasts(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Broadcast(ctx context.Context, args []string) error
	Jobs(ctx context.Context, args []string) error
	AddJob(ctx context.Context, args []string) error
	EditJob(ctx context.Context, args []string) error
	DeleteJob(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
	SetTheme(ctx context.Context, args []string) error
	Status(ctx context.Context, args []string) error
}

// runREPL reads a line, parses the first token as the command and dispatches
// to methods on 'a'. Unknown commands are reported back to the user. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Handlers log their own errors; the loop ignores returned errors so a
// failed command never ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("hl %s> ", statusFn()))
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

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: view, (n)otifications, read, readall, broadcasts, filter, broadcast, jobs, addjob, editjob, deljob, upload, theme, status, logout, exit")
			} else {
				printlnFn("Available commands: login, orglogin, register, theme, status, exit")
			}

		case "login":
			_ = a.Login(ctx, args)

		case "orglogin":
			_ = a.OrgLogin(ctx, args)

		case "register":
			_ = a.Register(ctx, args)

		case "logout":
			_ = a.Logout(ctx, args)

		case "view":
			_ = a.View(ctx, args)

		case "n", "notifications":
			_ = a.Notifications(ctx, args)

		case "read":
			_ = a.MarkRead(ctx, args)

		case "readall":
			_ = a.MarkAllRead(ctx, args)

		case "broadcasts":
			_ = a.Broadcasts(ctx, args)

		case "filter":
			_ = a.Filter(ctx, args)

		case "broadcast":
			_ = a.Broadcast(ctx, args)

		case "jobs":
			_ = a.Jobs(ctx, args)

		case "addjob":
			_ = a.AddJob(ctx, args)

		case "editjob":
			_ = a.EditJob(ctx, args)

		case "deljob":
			_ = a.DeleteJob(ctx, args)

		case "upload":
			_ = a.Upload(ctx, args)

		case "theme":
			_ = a.SetTheme(ctx, args)

		case "status":
			_ = a.Status(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
