package token

import "sort"

// Role is a capability label carried in the token's authorities claim.
//
// Role values are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Role string

const (
	// RoleAdmin is an exported constant or variable used by the console core.
	RoleAdmin Role = "ROLE_ADMIN"
	// RoleEvaluator is an exported constant or variable used by the console core.
	RoleEvaluator Role = "ROLE_EVALUADOR"
)

// RoleSet is an unordered set of roles. Roles are only ever membership
// checked, never ordered or weighted.
type RoleSet map[Role]struct{}

// NewRoleSet describes the newroleset operation and its observable behavior.
//
// NewRoleSet does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		if r != "" {
			set[r] = struct{}{}
		}
	}
	return set
}

// Has reports whether the set contains the given role.
func (s RoleSet) Has(role Role) bool {
	_, ok := s[role]
	return ok
}

// HasAny reports whether the set shares at least one role with other.
// An empty other set never matches.
func (s RoleSet) HasAny(other RoleSet) bool {
	if len(s) == 0 || len(other) == 0 {
		return false
	}
	for r := range other {
		if _, ok := s[r]; ok {
			return true
		}
	}
	return false
}

// Equal reports whether both sets contain exactly the same roles.
func (s RoleSet) Equal(other RoleSet) bool {
	if len(s) != len(other) {
		return false
	}
	for r := range s {
		if _, ok := other[r]; !ok {
			return false
		}
	}
	return true
}

// List returns the roles in sorted order for stable display and logging.
func (s RoleSet) List() []Role {
	out := make([]Role, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsEmpty reports whether the set holds no roles.
func (s RoleSet) IsEmpty() bool {
	return len(s) == 0
}
