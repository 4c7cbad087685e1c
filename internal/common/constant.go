// Package common contains shared constants and small helpers used across
// the admin console components.
package common

const (
	// AuthHeaderName carries the session credential on outbound requests.
	AuthHeaderName = "Authorization"

	// RequestIDHeaderName carries a per-request id for log correlation.
	RequestIDHeaderName = "X-Request-Id"
)
