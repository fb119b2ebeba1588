// Package brunetlezine is the session core of the Brunet-Lézine assessment
// console: login against the backend credential endpoint, persisted bearer
// sessions, role-derived navigation, and an authenticated gateway for every
// other API call.
//
// The package is the public surface. It exposes [Engine], [Builder],
// [Config], and the [SessionState] view. Storage backends, token decoding,
// the HTTP gateway, and route admission live in their own subpackages and
// are composed through [Builder.Build].
//
// # Architecture boundaries
//
// The Engine is the only component permitted to mutate the session store.
// Session state is always recomputed from the store plus the token decoder
// on demand, never cached across a login or logout transition.
//
// # What this package must NOT do
//
//   - Verify token signatures or enforce authorization. Claims decoded here
//     drive menus and redirects only; the backend enforces every access.
//   - Retry logins or refresh tokens. A 401 from the backend surfaces as an
//     ordinary failure.
//   - Keep credential material beyond the login call: the username and
//     password are discarded once the call returns.
package brunetlezine
