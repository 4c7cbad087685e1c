package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhanya-017/infinart-admin/internal/admin/services"
)

// OpenPending opens (or reopens) the moderation workspace and performs its
// single fetch. A previously open workspace is closed first so a late result
// cannot mutate a view the operator has left.
func (a *App) OpenPending(ctx context.Context) error {
	if a.workspace != nil {
		a.workspace.Close()
	}
	a.workspace = services.NewWorkspace(a.client, a.prompter, a.guard, a.log)
	a.workspace.Load(ctx)
	a.renderWorkspace()
	return nil
}

// Approve approves one pending item.
func (a *App) Approve(ctx context.Context, id string) error {
	return a.runAction(ctx, id, func(w *services.Workspace) error {
		return w.Approve(ctx, id)
	})
}

// Reject rejects one pending item, prompting for a reason.
func (a *App) Reject(ctx context.Context, id string) error {
	return a.runAction(ctx, id, func(w *services.Workspace) error {
		return w.Reject(ctx, id)
	})
}

// DeletePending permanently deletes one pending item, asking to confirm.
func (a *App) DeletePending(ctx context.Context, id string) error {
	return a.runAction(ctx, id, func(w *services.Workspace) error {
		return w.Delete(ctx, id)
	})
}

func (a *App) runAction(ctx context.Context, id string, action func(*services.Workspace) error) error {
	if a.workspace == nil {
		printlnFn("Open the pending list first ('pending').")
		return nil
	}

	err := action(a.workspace)
	switch {
	case err == nil:
		a.renderWorkspace()
	case errors.Is(err, services.ErrUnknownItem):
		printlnFn("No pending item with id", id)
	case errors.Is(err, services.ErrActionInFlight):
		printlnFn("An action on this item is already in progress.")
	default:
		// Alert-level notice; network and remote rejection read the same to
		// the operator.
		printlnFn("Action failed, the item was left untouched. Please try again.")
	}
	return err
}

// renderWorkspace shows exactly one display mode: the loading indicator, the
// error message, or the item list. The error wins over the list.
func (a *App) renderWorkspace() {
	w := a.workspace
	if w.Loading() {
		printlnFn("Loading...")
		return
	}
	if msg := w.ErrorMessage(); msg != "" {
		printlnFn("Error:", msg)
		return
	}

	items := w.Items()
	if len(items) == 0 {
		printlnFn("No items pending.")
		return
	}
	for _, it := range items {
		printlnFn(fmt.Sprintf("%s  %-20s  %8.2f  %-12s  %s",
			it.ID, it.Name, it.Price, it.Category, it.Seller.StoreName))
	}
}
