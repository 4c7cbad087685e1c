package cli

import (
	"context"
	"os"

	"github.com/dhanya-017/infinart-admin/internal/common"
)

// Input indirections used to stub interactive helpers in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for operator credentials and authenticates through the
// session guard. On failure the operator sees one generic message whatever
// the cause; the password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.guard.Login(ctx, email, password); err != nil {
		printlnFn("Invalid email or password.")
		return err
	}

	printlnFn("Logged in.")
	return nil
}

// Logout clears the stored credential and drops any open views, returning
// the console to its pre-login state.
func (a *App) Logout(ctx context.Context) error {
	if a.workspace != nil {
		a.workspace.Close()
		a.workspace = nil
	}
	a.itemsView = nil

	if err := a.guard.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}
