// Package assess provides the client-side scoring helpers for a
// Brunet-Lézine evaluation: chronological age, development age, the
// development coefficient (QD) and its display classification.
//
// These are preview values computed while an evaluation is being filled
// in. The backend recomputes the authoritative result when the
// evaluation is submitted; nothing in this package is persisted.
//
// # Architecture boundaries
//
// This package depends only on the standard library and performs no
// I/O. It must not call the backend, read stored sessions, or inspect
// tokens.
//
// # What this package must NOT do
//
//   - No network or storage access.
//   - No authorization decisions.
//   - No locale handling beyond the fixed Spanish display labels.
package assess
