// Package api talks to the remote authority: credential issuance and
// verification, the pending-item set, the sellers directory, and the three
// moderation actions.
package api

import (
	"context"

	"github.com/dhanya-017/infinart-admin/internal/admin/models"
)

// TokenSource yields the current session credential, or "" when absent.
// Satisfied by the credential store; the client only ever reads.
type TokenSource interface {
	Get(ctx context.Context) (string, error)
}

// Client is the full authority surface the console consumes.
type Client interface {
	// Login exchanges operator credentials for a session token. The token is
	// returned, not stored; persisting it is the session guard's job.
	Login(ctx context.Context, email string, password []byte) (string, error)

	// Verify checks the stored credential against the authority. Any failure,
	// transport or rejection, is reported as an error.
	Verify(ctx context.Context) error

	PendingItems(ctx context.Context) ([]models.Item, error)
	ApproveItem(ctx context.Context, id string) error
	RejectItem(ctx context.Context, id string, reason string) error
	DeleteItem(ctx context.Context, id string) error

	Sellers(ctx context.Context) ([]models.Seller, error)
	SellerItems(ctx context.Context, sellerID string) ([]models.Item, error)
}
