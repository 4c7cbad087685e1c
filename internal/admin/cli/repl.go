package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL dispatches to. App
// satisfies it; tests provide a stub.
type execIface interface {
	isAuthorized() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	OpenPending(ctx context.Context) error
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	DeletePending(ctx context.Context, id string) error
	Sellers(ctx context.Context) error
	OpenSellerItems(ctx context.Context, sellerID string) error
	RemoveSellerItem(ctx context.Context, id string) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on a. Protected commands are refused until the
// session is authorized, which is the console's routing gate. The loop exits
// on scanner EOF or "exit"/"quit".
//
// Commands:
//
//	Not authorized:
//	  - help, login, exit | quit
//
//	Authorized:
//	  - pending                — open the moderation workspace
//	  - approve <id>           — approve a pending item
//	  - reject <id>            — reject a pending item (asks for a reason)
//	  - delete <id>            — delete a pending item (asks to confirm)
//	  - sellers                — list sellers
//	  - items <sellerID>       — list a seller's items
//	  - rmitem <id>            — delete an item from the open seller view
//	  - logout, exit | quit
//
// Handlers report their own failures; the loop itself never dies on a
// command error.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("Marketplace moderation console (type 'help' for commands)")

	for {
		printlnFn(fmt.Sprintf("admin (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isAuthorized() {
				printlnFn("Available commands: pending, approve <id>, reject <id>, delete <id>, sellers, items <sellerID>, rmitem <id>, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			if !requireAuth(a) {
				continue
			}
			_ = a.Logout(ctx)

		case "pending":
			if !requireAuth(a) {
				continue
			}
			_ = a.OpenPending(ctx)

		case "approve":
			if !requireAuth(a) {
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: approve <id>")
				continue
			}
			_ = a.Approve(ctx, args[0])

		case "reject":
			if !requireAuth(a) {
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: reject <id>")
				continue
			}
			_ = a.Reject(ctx, args[0])

		case "delete":
			if !requireAuth(a) {
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.DeletePending(ctx, args[0])

		case "sellers":
			if !requireAuth(a) {
				continue
			}
			_ = a.Sellers(ctx)

		case "items":
			if !requireAuth(a) {
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: items <sellerID>")
				continue
			}
			_ = a.OpenSellerItems(ctx, args[0])

		case "rmitem":
			if !requireAuth(a) {
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: rmitem <id>")
				continue
			}
			_ = a.RemoveSellerItem(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func requireAuth(a execIface) bool {
	if !a.isAuthorized() {
		printlnFn("Please login first.")
		return false
	}
	return true
}
