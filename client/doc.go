// Package client provides typed access to the assessment backend's REST
// resources: children, evaluators, evaluations, test items, users, global
// results, and reports. Every call goes through the authenticated gateway,
// so the bearer token is attached automatically while a session exists.
//
// # Architecture boundaries
//
// Services here are thin I/O wrappers: they name endpoints and shapes, and
// delegate transport, header injection, and envelope unwrapping to the
// gateway. Validation and scoring are owned by the backend.
//
// # What this package must NOT do
//
//   - Cache responses or invent client-side state.
//   - Inspect or mutate the session (read-only consumers of the gateway).
//   - Re-implement scoring; [assess] holds the preview-only helpers.
package client
