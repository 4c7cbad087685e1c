package api

import "errors"

// Sentinel errors returned by the authority client. Callers match them with
// errors.Is. ErrUnavailable and ErrRejected both render as a generic failure
// in the console; only ErrUnauthorized carries control-flow weight (it forces
// a session reset wherever it surfaces).
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUnavailable        = errors.New("authority unavailable")
	ErrRejected           = errors.New("request rejected by authority")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
