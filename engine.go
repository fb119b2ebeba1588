package brunetlezine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Alexnarea/brunet-lezine/gateway"
	"github.com/Alexnarea/brunet-lezine/route"
	"github.com/Alexnarea/brunet-lezine/store"
	"github.com/Alexnarea/brunet-lezine/token"
	"github.com/google/uuid"
)

// Engine defines a public type used by the console core APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config  Config
	store   store.Store
	gateway *gateway.Client
	guard   *route.Guard
	metrics *Metrics

	// mu serializes session mutation. activeAttempt identifies the most
	// recent login call; a response arriving for an older attempt must not
	// commit a session the user has since abandoned.
	mu            sync.Mutex
	activeAttempt string
}

// Login calls the backend credential endpoint and, on success, persists the
// returned token together with its decoded role set. On any failure —
// rejected credentials, transport error, or an undecodable token after a
// structurally valid response — nothing is persisted.
//
// The credential values are used for the single request body and discarded.
func (e *Engine) Login(ctx context.Context, username, password string) error {
	if e == nil || e.store == nil || e.gateway == nil {
		return ErrEngineNotReady
	}

	e.mu.Lock()
	attemptID := uuid.NewString()
	e.activeAttempt = attemptID
	e.mu.Unlock()

	var resp loginResponse
	err := e.gateway.Post(ctx, e.config.API.LoginPath, loginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		e.metricInc(MetricLoginFailure)
		return e.mapLoginError(err)
	}

	if resp.JWT == "" {
		e.metricInc(MetricLoginFailure)
		return fmt.Errorf("%w: missing jwt field", ErrMalformedResponse)
	}

	claims, err := token.Decode(resp.JWT)
	if err != nil {
		e.metricInc(MetricDecodeFailure)
		e.metricInc(MetricLoginFailure)
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.activeAttempt != attemptID {
		e.metricInc(MetricLoginSuperseded)
		return ErrLoginSuperseded
	}

	rec := store.Record{
		Token:  resp.JWT,
		Roles:  rolesToCSV(claims.Roles),
		UserID: resp.UserID,
	}
	if err := e.store.Save(ctx, rec); err != nil {
		e.metricInc(MetricLoginFailure)
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	e.metricInc(MetricLoginSuccess)
	return nil
}

// Logout clears the session store unconditionally and invalidates any login
// attempt still in flight. Logging out with no session is a no-op.
func (e *Engine) Logout(ctx context.Context) error {
	if e == nil || e.store == nil {
		return ErrEngineNotReady
	}

	e.mu.Lock()
	e.activeAttempt = ""
	e.mu.Unlock()

	if err := e.store.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrLogoutFailed, err)
	}

	e.metricInc(MetricLogout)
	return nil
}

// IsAuthenticated reports whether a decodable token is currently persisted.
// Store and decode failures are absorbed and read as "logged out".
func (e *Engine) IsAuthenticated(ctx context.Context) bool {
	return e.Snapshot(ctx).Authenticated
}

// CurrentRoles returns the normalized role set of the current session, or
// the empty set when no session exists or the token cannot be decoded.
func (e *Engine) CurrentRoles(ctx context.Context) token.RoleSet {
	return e.Snapshot(ctx).Roles
}

// Snapshot recomputes the session view from the store and decoder. It never
// fails: every storage or decode problem collapses to the unauthenticated
// state with an empty role set.
func (e *Engine) Snapshot(ctx context.Context) SessionState {
	loggedOut := SessionState{Roles: token.NewRoleSet()}
	if e == nil || e.store == nil {
		return loggedOut
	}

	rec, err := e.store.Load(ctx)
	if err != nil || rec == nil || rec.Token == "" {
		return loggedOut
	}

	claims, err := token.Decode(rec.Token)
	if err != nil {
		e.metricInc(MetricDecodeFailure)
		return loggedOut
	}

	return SessionState{
		Authenticated: true,
		Subject:       claims.Subject,
		Roles:         claims.Roles,
		ExpiresAt:     claims.ExpiresAt,
		UserID:        rec.UserID,
	}
}

// Token implements [gateway.TokenSource]: the raw persisted token, or
// ok=false when no session exists.
func (e *Engine) Token(ctx context.Context) (string, bool) {
	if e == nil || e.store == nil {
		return "", false
	}

	rec, err := e.store.Load(ctx)
	if err != nil || rec == nil || rec.Token == "" {
		return "", false
	}
	return rec.Token, true
}

// API returns the authenticated gateway client for backend resources.
func (e *Engine) API() *gateway.Client {
	if e == nil {
		return nil
	}
	return e.gateway
}

// Guard returns the route guard configured at build time.
func (e *Engine) Guard() *route.Guard {
	if e == nil {
		return nil
	}
	return e.guard
}

// Navigate evaluates one navigation attempt against the current session.
func (e *Engine) Navigate(ctx context.Context, path string) route.Decision {
	return e.guard.Evaluate(e.Snapshot(ctx).GuardView(), path)
}

// Menu derives the visible menu for the current session.
func (e *Engine) Menu(ctx context.Context) []route.Route {
	return e.guard.Menu(e.Snapshot(ctx).GuardView())
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) mapLoginError(err error) error {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		if apiErr.IsAuthFailure() {
			if apiErr.Message != "" {
				return fmt.Errorf("%w: %s", ErrInvalidCredentials, apiErr.Message)
			}
			return ErrInvalidCredentials
		}
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, apiErr)
	}
	if errors.Is(err, gateway.ErrTransport) {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
}

func rolesToCSV(roles token.RoleSet) string {
	list := roles.List()
	parts := make([]string, len(list))
	for i, r := range list {
		parts[i] = string(r)
	}
	return strings.Join(parts, ",")
}
