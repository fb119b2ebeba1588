package brunetlezine

import (
	"time"

	"github.com/Alexnarea/brunet-lezine/route"
	"github.com/Alexnarea/brunet-lezine/token"
)

// SessionState is the derived view of the current session: recomputed from
// the store plus the token decoder on every call, never stored. Roles is
// always empty when Authenticated is false.
type SessionState struct {
	Authenticated bool
	Subject       string
	Roles         token.RoleSet
	ExpiresAt     time.Time
	UserID        int64
}

// GuardView adapts the state to the route guard's input.
func (s SessionState) GuardView() route.Session {
	return route.Session{
		Authenticated: s.Authenticated,
		Roles:         s.Roles,
	}
}

// loginRequest is the transient credential payload. It exists only for the
// duration of the login call and is never persisted.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse mirrors the backend's success body. Only the jwt field is
// required; userId is a denormalized convenience some deployments include.
type loginResponse struct {
	JWT    string `json:"jwt"`
	UserID int64  `json:"userId,omitempty"`
}
