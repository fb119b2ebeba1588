package client

import (
	"context"
	"fmt"

	"github.com/Alexnarea/brunet-lezine/gateway"
)

const usersPath = "/users"

// UsersService defines a public type used by the console core APIs.
//
// UsersService instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type UsersService struct {
	api *gateway.Client
}

// NewUsersService describes the newusersservice operation and its observable behavior.
//
// NewUsersService does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewUsersService(api *gateway.Client) *UsersService {
	return &UsersService{api: api}
}

// List returns every console account.
func (s *UsersService) List(ctx context.Context) ([]User, error) {
	var out []User
	if err := s.api.Get(ctx, usersPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registers a console account.
func (s *UsersService) Create(ctx context.Context, payload UserPayload) (*User, error) {
	var out User
	if err := s.api.Post(ctx, usersPath, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update overwrites a console account. Zero-valued optional fields are
// omitted from the body so partial updates stay partial.
func (s *UsersService) Update(ctx context.Context, id int64, payload UserPayload) (*User, error) {
	var out User
	if err := s.api.Put(ctx, fmt.Sprintf("%s/%d", usersPath, id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a console account.
func (s *UsersService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("%s/%d", usersPath, id))
}
