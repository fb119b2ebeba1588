package route

import (
	"errors"
	"strings"
	"sync"

	"github.com/Alexnarea/brunet-lezine/token"
)

// Route defines a public type used by the console core APIs.
//
// Route instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Route struct {
	Path  string
	Title string

	// Requires lists the roles that admit this destination. Empty means
	// any authenticated session may render it.
	Requires token.RoleSet
}

// Table is the static route surface: an ordered list of destinations with
// their role requirements, registered during startup and then frozen.
type Table struct {
	mu     sync.RWMutex
	order  []Route
	byPath map[string]int
	frozen bool
}

// NewTable describes the newtable operation and its observable behavior.
//
// NewTable does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewTable() *Table {
	return &Table{byPath: make(map[string]int)}
}

// Register adds a destination to the table. Registration order is menu
// order. Register fails after [Table.Freeze], on an empty path, and on a
// duplicate path.
func (t *Table) Register(r Route) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.frozen {
		return errors.New("route table frozen")
	}

	r.Path = normalizePath(r.Path)
	if r.Path == "" {
		return errors.New("route path empty")
	}
	if _, exists := t.byPath[r.Path]; exists {
		return errors.New("route already registered: " + r.Path)
	}
	if r.Requires == nil {
		r.Requires = token.NewRoleSet()
	}

	t.byPath[r.Path] = len(t.order)
	t.order = append(t.order, r)
	return nil
}

// Freeze marks the table immutable. Further Register calls fail.
func (t *Table) Freeze() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frozen = true
}

// Lookup returns the route registered at path.
func (t *Table) Lookup(path string) (Route, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	idx, ok := t.byPath[normalizePath(path)]
	if !ok {
		return Route{}, false
	}
	return t.order[idx], true
}

// Routes returns the destinations in registration order.
func (t *Table) Routes() []Route {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Route, len(t.order))
	copy(out, t.order)
	return out
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if path != "/" {
		path = strings.TrimRight(path, "/")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// DefaultTable returns the console's static route surface: the home page
// open to any authenticated session, user and evaluator administration
// restricted to administrators, and the assessment pages shared between
// administrators and evaluators.
func DefaultTable() *Table {
	table := NewTable()

	anyAuthenticated := token.NewRoleSet()
	adminOnly := token.NewRoleSet(token.RoleAdmin)
	adminOrEvaluator := token.NewRoleSet(token.RoleAdmin, token.RoleEvaluator)

	routes := []Route{
		{Path: "/", Title: "Inicio", Requires: anyAuthenticated},
		{Path: "/users", Title: "Usuarios", Requires: adminOnly},
		{Path: "/children", Title: "Niños", Requires: anyAuthenticated},
		{Path: "/evaluators", Title: "Evaluadores", Requires: adminOnly},
		{Path: "/evaluations", Title: "Evaluaciones", Requires: adminOrEvaluator},
		{Path: "/test-items", Title: "Ítems de prueba", Requires: adminOrEvaluator},
		{Path: "/reports", Title: "Reportes", Requires: adminOrEvaluator},
	}
	for _, r := range routes {
		// Paths are hardcoded and unique; Register cannot fail here.
		_ = table.Register(r)
	}

	table.Freeze()
	return table
}
