// Package store persists the current bearer credential (and its denormalized
// role string and user id) across console restarts, the way the browser
// original kept them in origin-scoped localStorage.
//
// Three backends share one [Store] contract: [Memory] for tests and
// single-run sessions, [File] for the CLI's per-user config directory, and
// [Redis] for consoles that share a session across processes.
//
// # Architecture boundaries
//
// The store is a dumb key-value resource. It has a single writer path (the
// session engine) and many readers; Save, Load, and Clear are synchronous
// from the caller's point of view, so a Clear followed by a Load always
// observes the cleared state.
//
// # What this package must NOT do
//
//   - Interpret or enforce token expiry (expiry is a claim, consumers decide).
//   - Decode tokens or validate roles.
//   - Cache records across Clear.
package store
