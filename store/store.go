package store

import (
	"context"
	"errors"
)

// ErrUnavailable is an exported constant or variable used by the console core.
var ErrUnavailable = errors.New("session store unavailable")

// ErrCorruptRecord is returned when a persisted record cannot be read back.
// Callers treat it as equivalent to "no session".
var ErrCorruptRecord = errors.New("session record corrupt")

// Record is the persisted session entry: the bearer token plus the
// denormalized comma-joined role string and numeric user id the original
// storage layout carried alongside it.
type Record struct {
	Token  string `json:"token"`
	Roles  string `json:"roles,omitempty"`
	UserID int64  `json:"userId,omitempty"`
}

// Store defines a public type used by the console core APIs.
//
// Implementations must be safe for concurrent use. Save overwrites any
// existing record, Load returns (nil, nil) when no record exists, and Clear
// is idempotent: clearing an empty store is not an error.
type Store interface {
	Save(ctx context.Context, rec Record) error
	Load(ctx context.Context) (*Record, error)
	Clear(ctx context.Context) error
}
