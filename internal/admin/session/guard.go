// Package session owns the operator's session lifecycle. The guard is the
// only component allowed to write the credential store; everything else
// reads the credential through the API client.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dhanya-017/infinart-admin/internal/admin/api"
	"github.com/dhanya-017/infinart-admin/internal/admin/credential"
	"github.com/dhanya-017/infinart-admin/internal/logging"
)

// State is the tri-state authorization signal gating protected views.
// It moves forward only: Unverified resolves once to Authorized or
// Unauthorized. The sole way back to Unverified is a logout, which is
// defined as a full guard restart.
type State string

const (
	StateUnverified   State = "unverified"
	StateAuthorized   State = "authorized"
	StateUnauthorized State = "unauthorized"
)

type Guard struct {
	mu       sync.Mutex
	state    State
	verified bool

	creds  credential.Store
	client api.Client
	log    logging.Logger
}

func NewGuard(creds credential.Store, client api.Client, log logging.Logger) *Guard {
	return &Guard{state: StateUnverified, creds: creds, client: client, log: log}
}

// State returns the current authorization signal.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Verify resolves the session state from the stored credential. It runs the
// remote check at most once per guard lifetime; later calls return the
// already-resolved state without touching the network.
//
// An absent credential resolves Unauthorized immediately, no network call.
// A present credential is checked against the authority exactly once: any
// failure, transport or rejection alike, clears the credential and resolves
// Unauthorized. Treating a transient network error the same as an invalid
// credential is a deliberate fail-closed choice, kept as-is pending product
// confirmation (see DESIGN.md).
func (g *Guard) Verify(ctx context.Context) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.verified {
		return g.state, nil
	}
	g.verified = true

	token, err := g.creds.Get(ctx)
	if err != nil {
		g.state = StateUnauthorized
		return g.state, fmt.Errorf("read credential: %w", err)
	}
	if token == "" {
		g.state = StateUnauthorized
		return g.state, nil
	}

	if err := g.client.Verify(ctx); err != nil {
		g.log.Warn(ctx, "credential verification failed", "error", err)
		if err := g.creds.Clear(ctx); err != nil {
			g.log.Error(ctx, "failed to clear credential", "error", err)
		}
		g.state = StateUnauthorized
		return g.state, nil
	}

	g.state = StateAuthorized
	return g.state, nil
}

// Login exchanges operator credentials for a session token, stores it, and
// flips the session to Authorized. On any failure the session is left
// Unauthorized and the caller gets one generic invalid-credentials error; no
// distinction between a bad password and a server fault survives this layer.
func (g *Guard) Login(ctx context.Context, email string, password []byte) error {
	token, err := g.client.Login(ctx, email, password)
	if err != nil {
		g.mu.Lock()
		g.verified = true
		g.state = StateUnauthorized
		g.mu.Unlock()
		return api.ErrInvalidCredentials
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.creds.Set(ctx, token); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	g.verified = true
	g.state = StateAuthorized
	g.log.Info(ctx, "operator logged in")
	return nil
}

// Logout clears the credential synchronously and resets the guard to
// Unverified, as if the process had just started.
func (g *Guard) Logout(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.creds.Clear(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	g.verified = false
	g.state = StateUnverified
	g.log.Info(ctx, "operator logged out")
	return nil
}

// ForceLogout is the sink for authorization failures observed anywhere in
// the console: the credential is wiped and the session resets, regardless of
// which component hit the failure.
func (g *Guard) ForceLogout(ctx context.Context) {
	g.log.Warn(ctx, "authorization failure, resetting session")
	if err := g.Logout(ctx); err != nil {
		g.log.Error(ctx, "forced logout failed", "error", err)
	}
}
