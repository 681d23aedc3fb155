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
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Tools(ctx context.Context) error
	Keys(ctx context.Context) error
	GenerateKey(ctx context.Context, keyType string) error
	Scan(ctx context.Context, tool, domain string) error
	History(ctx context.Context, limit string) error
	Result(ctx context.Context, id string) error
	Profile(ctx context.Context) error
	Pay(ctx context.Context, amount string) error
	Theme(ctx context.Context, value string) error
	Admin(ctx context.Context, args []string) error
}

// runREPL starts the read–eval–print loop for the recondesk CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit". Handler errors are printed and the loop continues; no
// failure here is fatal.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("recondesk CLI (type 'help' for commands)")

	for {
		printlnFn(fmt.Sprintf("rd %s> ", statusFn()))
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

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: tools, keys, genkey <free|paid>, scan <tool> <domain>,")
				printlnFn("  history [limit], result <id>, profile, pay <amount>, theme [dark|light],")
				printlnFn("  admin <users|keys|bump <key>>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "tools":
			err = a.Tools(ctx)

		case "keys":
			err = a.Keys(ctx)

		case "genkey":
			if len(args) != 1 {
				printlnFn("Usage: genkey <free|paid>")
				continue
			}
			err = a.GenerateKey(ctx, args[0])

		case "scan":
			if len(args) != 2 {
				printlnFn("Usage: scan <tool> <domain>")
				continue
			}
			err = a.Scan(ctx, args[0], args[1])

		case "history":
			limit := ""
			if len(args) > 0 {
				limit = args[0]
			}
			err = a.History(ctx, limit)

		case "result":
			if len(args) != 1 {
				printlnFn("Usage: result <scan id>")
				continue
			}
			err = a.Result(ctx, args[0])

		case "profile":
			err = a.Profile(ctx)

		case "pay":
			if len(args) != 1 {
				printlnFn("Usage: pay <amount>")
				continue
			}
			err = a.Pay(ctx, args[0])

		case "theme":
			value := ""
			if len(args) > 0 {
				value = args[0]
			}
			err = a.Theme(ctx, value)

		case "admin":
			err = a.Admin(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
