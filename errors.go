package brunetlezine

import "errors"

var (
	// ErrEngineNotReady is an exported constant or variable used by the console core.
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrInvalidCredentials is an exported constant or variable used by the console core.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrBackendUnavailable is an exported constant or variable used by the console core.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrMalformedResponse is an exported constant or variable used by the console core.
	ErrMalformedResponse = errors.New("malformed login response")
	// ErrLoginSuperseded is an exported constant or variable used by the console core.
	ErrLoginSuperseded = errors.New("login superseded by a newer attempt")
	// ErrLogoutFailed is an exported constant or variable used by the console core.
	ErrLogoutFailed = errors.New("session store could not be cleared")
)
