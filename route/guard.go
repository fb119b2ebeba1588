package route

import "github.com/Alexnarea/brunet-lezine/token"

// Session is the guard's view of the current session: whether a token is
// present and which roles it carries. It is derived by the caller on every
// navigation attempt, never cached here.
type Session struct {
	Authenticated bool
	Roles         token.RoleSet
}

// Outcome defines a public type used by the console core APIs.
type Outcome uint8

const (
	// OutcomeRender is an exported constant or variable used by the console core.
	OutcomeRender Outcome = iota
	// OutcomeRedirectLogin is an exported constant or variable used by the console core.
	OutcomeRedirectLogin
	// OutcomeRedirectHome is an exported constant or variable used by the console core.
	OutcomeRedirectHome
)

// String describes the string operation and its observable behavior.
func (o Outcome) String() string {
	switch o {
	case OutcomeRender:
		return "render"
	case OutcomeRedirectLogin:
		return "redirect-login"
	case OutcomeRedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// Decision is the terminal result of one navigation attempt. Target is the
// path that should actually be shown: the requested destination when the
// outcome is render, the login or home path otherwise.
type Decision struct {
	Outcome Outcome
	Target  string
}

// Guard defines a public type used by the console core APIs.
//
// Guard instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Guard struct {
	table     *Table
	loginPath string
	homePath  string
}

// NewGuard creates a guard over the given table. loginPath and homePath
// default to "/login" and "/" when empty.
func NewGuard(table *Table, loginPath, homePath string) *Guard {
	if loginPath == "" {
		loginPath = "/login"
	}
	if homePath == "" {
		homePath = "/"
	}
	return &Guard{
		table:     table,
		loginPath: normalizePath(loginPath),
		homePath:  normalizePath(homePath),
	}
}

// LoginPath returns the destination unauthenticated sessions are sent to.
func (g *Guard) LoginPath() string { return g.loginPath }

// HomePath returns the destination role-mismatched sessions are sent to.
func (g *Guard) HomePath() string { return g.homePath }

// Evaluate runs one navigation attempt through the admission state machine:
//
//   - no session → every destination except the login path redirects to login;
//   - session present but the destination's requirement set is non-empty and
//     disjoint from the session's roles → silent redirect to home;
//   - otherwise → render the destination.
//
// A role mismatch is a normal outcome, not an error, so Evaluate has no
// error return.
func (g *Guard) Evaluate(sess Session, path string) Decision {
	path = normalizePath(path)

	if path == g.loginPath {
		return Decision{Outcome: OutcomeRender, Target: g.loginPath}
	}

	if !sess.Authenticated {
		return Decision{Outcome: OutcomeRedirectLogin, Target: g.loginPath}
	}

	dest, known := g.table.Lookup(path)
	if !known {
		return Decision{Outcome: OutcomeRedirectHome, Target: g.homePath}
	}

	if !dest.Requires.IsEmpty() && !sess.Roles.HasAny(dest.Requires) {
		return Decision{Outcome: OutcomeRedirectHome, Target: g.homePath}
	}

	return Decision{Outcome: OutcomeRender, Target: dest.Path}
}

// Menu derives the visible menu for the session: table order preserved,
// destinations the session may not render hidden by the same OR rule as
// [Guard.Evaluate]. An unauthenticated session sees no menu. The result is
// recomputed on every call so login and logout transitions are always
// reflected.
func (g *Guard) Menu(sess Session) []Route {
	if !sess.Authenticated {
		return nil
	}

	var visible []Route
	for _, dest := range g.table.Routes() {
		if !dest.Requires.IsEmpty() && !sess.Roles.HasAny(dest.Requires) {
			continue
		}
		visible = append(visible, dest)
	}
	return visible
}
