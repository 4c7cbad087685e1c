// Package services contains the application services of the console: the
// moderation workspace owning the pending-item working set, and the
// read-only seller directory.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dhanya-017/infinart-admin/internal/admin/api"
	"github.com/dhanya-017/infinart-admin/internal/admin/models"
	"github.com/dhanya-017/infinart-admin/internal/logging"
)

// FetchFailureMessage is the single generic message shown when the initial
// pending-item fetch fails, whatever the cause.
const FetchFailureMessage = "failed to load pending items"

var (
	// ErrActionInFlight: the id is already under mutation; refused before any
	// remote call so rapid repeated submissions cannot double-fire.
	ErrActionInFlight = errors.New("action already in flight for this item")

	// ErrUnknownItem: the id is not in the local working set.
	ErrUnknownItem = errors.New("item not in the pending set")

	// ErrWorkspaceClosed: the workspace has been closed and accepts no actions.
	ErrWorkspaceClosed = errors.New("workspace closed")
)

// Prompter is the blocking-dialog capability the workspace depends on.
// Production wires terminal prompts; tests substitute deterministic stubs.
type Prompter interface {
	// Confirm asks a yes/no question.
	Confirm(prompt string) (bool, error)

	// PromptText asks for one line of text. ok is false when the operator
	// cancelled the prompt.
	PromptText(prompt string) (text string, ok bool, err error)
}

// SessionResetter receives authorization failures. Satisfied by the session
// guard.
type SessionResetter interface {
	ForceLogout(ctx context.Context)
}

// Workspace owns the mutable working set of pending items and applies the
// three terminal moderation actions against the authority.
//
// State model: while loading only a spinner is rendered; while errorMessage
// is non-empty only the error is rendered, taking priority over any item
// list. The two are mutually exclusive display modes.
//
// Mutation policy is optimistic-on-confirmation: an item is removed from the
// working set only after the authority confirms the action, and the set is
// not re-fetched afterwards. A failed call leaves the set untouched.
type Workspace struct {
	mu       sync.Mutex
	loading  bool
	items    []models.Item
	errMsg   string
	inflight map[string]struct{}
	closed   bool

	client   api.Client
	prompter Prompter
	sessions SessionResetter
	log      logging.Logger
}

func NewWorkspace(client api.Client, prompter Prompter, sessions SessionResetter, log logging.Logger) *Workspace {
	return &Workspace{
		inflight: make(map[string]struct{}),
		client:   client,
		prompter: prompter,
		sessions: sessions,
		log:      log,
	}
}

// Load fetches the authority's current pending set, replacing the working
// set on success and recording the generic fetch-failure message on any
// failure. loading is true for the duration and false afterwards in every
// case. A result arriving after Close is discarded.
func (w *Workspace) Load(ctx context.Context) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.loading = true
	w.mu.Unlock()

	items, err := w.client.PendingItems(ctx)

	w.mu.Lock()
	w.loading = false
	if w.closed {
		w.mu.Unlock()
		return
	}
	if err != nil {
		w.errMsg = FetchFailureMessage
		w.mu.Unlock()
		w.log.Error(ctx, "pending items fetch failed", "error", err)
		if api.IsAuthFailure(err) {
			w.sessions.ForceLogout(ctx)
		}
		return
	}
	w.items = items
	w.errMsg = ""
	w.mu.Unlock()
	w.log.Info(ctx, "pending items loaded", "count", len(items))
}

// Approve marks the item approved at the authority and, on confirmation,
// drops it from the working set.
func (w *Workspace) Approve(ctx context.Context, id string) error {
	if err := w.begin(id); err != nil {
		return err
	}
	err := w.client.ApproveItem(ctx, id)
	w.finish(ctx, id, err)
	if err != nil {
		return fmt.Errorf("approve %s: %w", id, err)
	}
	return nil
}

// Reject asks the operator for a reason, then marks the item rejected with
// that reason attached. An empty or cancelled reason aborts before any
// remote call and is not an error.
func (w *Workspace) Reject(ctx context.Context, id string) error {
	if err := w.begin(id); err != nil {
		return err
	}

	reason, ok, err := w.prompter.PromptText("Rejection reason")
	if err != nil {
		w.release(id)
		return fmt.Errorf("read rejection reason: %w", err)
	}
	if !ok || strings.TrimSpace(reason) == "" {
		w.release(id)
		w.log.Debug(ctx, "reject aborted, no reason given", "item", id)
		return nil
	}

	err = w.client.RejectItem(ctx, id, reason)
	w.finish(ctx, id, err)
	if err != nil {
		return fmt.Errorf("reject %s: %w", id, err)
	}
	return nil
}

// Delete asks for confirmation, then permanently removes the item record at
// the authority. A declined confirmation aborts before any remote call and
// is not an error.
func (w *Workspace) Delete(ctx context.Context, id string) error {
	if err := w.begin(id); err != nil {
		return err
	}

	confirmed, err := w.prompter.Confirm("Permanently delete this item?")
	if err != nil {
		w.release(id)
		return fmt.Errorf("read confirmation: %w", err)
	}
	if !confirmed {
		w.release(id)
		w.log.Debug(ctx, "delete aborted", "item", id)
		return nil
	}

	err = w.client.DeleteItem(ctx, id)
	w.finish(ctx, id, err)
	if err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	return nil
}

// Close marks the workspace dead, as when its view unmounts. In-flight
// requests run to completion but their resolutions no longer mutate state.
func (w *Workspace) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
}

// Loading reports whether the initial fetch is still in flight.
func (w *Workspace) Loading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loading
}

// ErrorMessage returns the inline fetch-failure message, or "". When
// non-empty it is the only thing the shell should render.
func (w *Workspace) ErrorMessage() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errMsg
}

// Items returns a copy of the working set in authority order.
func (w *Workspace) Items() []models.Item {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]models.Item, len(w.items))
	copy(out, w.items)
	return out
}

// begin validates the client-side preconditions shared by all three actions
// and claims the per-id in-flight slot.
func (w *Workspace) begin(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWorkspaceClosed
	}
	if !w.has(id) {
		return ErrUnknownItem
	}
	if _, busy := w.inflight[id]; busy {
		return ErrActionInFlight
	}
	w.inflight[id] = struct{}{}
	return nil
}

// release frees the in-flight slot without touching the working set. Used
// when an action aborts before its remote call.
func (w *Workspace) release(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.inflight, id)
}

// finish resolves an action: frees the in-flight slot, removes the id from
// the working set on confirmed success (order preserved), and routes
// authorization failures to the session reset. A resolution after Close
// never mutates the working set.
func (w *Workspace) finish(ctx context.Context, id string, err error) {
	w.mu.Lock()
	delete(w.inflight, id)
	if err == nil && !w.closed {
		w.remove(id)
	}
	w.mu.Unlock()

	if err != nil {
		w.log.Error(ctx, "moderation action failed", "item", id, "error", err)
		if api.IsAuthFailure(err) {
			w.sessions.ForceLogout(ctx)
		}
	}
}

func (w *Workspace) has(id string) bool {
	for _, it := range w.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

func (w *Workspace) remove(id string) {
	for i, it := range w.items {
		if it.ID == id {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return
		}
	}
}
