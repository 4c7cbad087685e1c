// Package credential persists the operator's session credential so it
// survives console restarts. The token is opaque: no validation of its shape
// happens here. Only the session guard writes to the store; every other
// component just reads.
package credential

import "context"

// Store holds at most one credential.
//
// Contract:
//   - Set: replace the stored credential.
//   - Get: return the credential, or "" when absent. Absence is not an error.
//   - Clear: remove the credential; clearing an empty store succeeds.
type Store interface {
	Set(ctx context.Context, token string) error
	Get(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
