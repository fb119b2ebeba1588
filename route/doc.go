// Package route decides, per navigation attempt, whether the current
// session may render a destination, and derives the visible menu from the
// session's roles.
//
// Authorization here is satisfied if the session holds AT LEAST ONE of a
// destination's required roles (logical OR). An empty requirement set means
// "any authenticated session". Every evaluation is independent: the guard
// keeps no memory of prior attempts.
//
// # Architecture boundaries
//
// The route table is registered during startup and then frozen; evaluation
// is read-only and allocation-light. This layer is UX routing only — the
// backend is the actual enforcement point for every resource access.
//
// # What this package must NOT do
//
//   - Read tokens or storage (callers pass the derived session view in).
//   - Mutate the table after Freeze.
//   - Treat a role mismatch as an error; it is a normal redirect outcome.
package route
