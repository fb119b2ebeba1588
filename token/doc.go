// Package token decodes bearer tokens issued by the assessment backend into
// a normalized claim set (subject, role set, expiry).
//
// Decoding is presentation-layer trust only: the payload segment is parsed
// WITHOUT signature verification. The backend remains the enforcement point
// for every resource access; claims extracted here drive menu visibility and
// route admission, nothing else.
//
// # Architecture boundaries
//
// token is a pure leaf package. [Decode] takes a string and returns
// [*Claims] or [ErrMalformedToken]; there is no I/O, no caching, and no
// package-level state.
//
// # What this package must NOT do
//
//   - Verify signatures or reject expired tokens (consumers interpret expiry).
//   - Reach into storage or the network.
//   - Leak the string-vs-array authorities quirk past its boundary — callers
//     only ever see a [RoleSet].
package token
