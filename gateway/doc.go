// Package gateway is the single outbound path to the assessment backend.
// Every request is decorated with "Authorization: Bearer <token>" when the
// configured [TokenSource] yields one; requests proceed without the header
// when no session exists, and the backend decides whether that is
// acceptable.
//
// # Architecture boundaries
//
// gateway translates typed calls into HTTP and back. It owns the JSON
// envelope quirk of the upstream backend (some endpoints wrap payloads in
// {"data": ...}, some do not) so callers only ever see decoded values.
//
// # What this package must NOT do
//
//   - Retry, refresh tokens, or log the session out on 401 — a 401 surfaces
//     as an ordinary [*APIError] and the caller decides.
//   - Persist or decode tokens (that is the store's and decoder's job).
//   - Make authorization decisions.
package gateway
