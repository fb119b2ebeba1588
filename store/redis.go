package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	fieldToken  = "token"
	fieldRoles  = "roles"
	fieldUserID = "userId"
)

// Redis is a [Store] backed by a Redis hash, for consoles that share one
// session across processes (the same operator logged in from several
// terminals). prefix namespaces the key so unrelated deployments can share
// a Redis instance.
type Redis struct {
	client redis.UniversalClient
	key    string
}

// NewRedis creates a Redis-backed store. prefix sets the key namespace;
// an empty prefix falls back to "bl".
func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	if prefix == "" {
		prefix = "bl"
	}
	return &Redis{
		client: client,
		key:    prefix + ":session",
	}
}

// Save overwrites the persisted record in a single HSET so readers never
// observe a partially written session.
func (r *Redis) Save(ctx context.Context, rec Record) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.key)
	pipe.HSet(ctx, r.key,
		fieldToken, rec.Token,
		fieldRoles, rec.Roles,
		fieldUserID, strconv.FormatInt(rec.UserID, 10),
	)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Load reads the persisted record, or (nil, nil) when the hash is absent.
func (r *Redis) Load(ctx context.Context) (*Record, error) {
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	rec := &Record{
		Token: fields[fieldToken],
		Roles: fields[fieldRoles],
	}
	if raw, ok := fields[fieldUserID]; ok && raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad user id %q", ErrCorruptRecord, raw)
		}
		rec.UserID = userID
	}
	return rec, nil
}

// Clear deletes the session hash. Deleting an absent key is a no-op.
func (r *Redis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
