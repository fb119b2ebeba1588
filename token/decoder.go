package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken is an exported constant or variable used by the console core.
var ErrMalformedToken = errors.New("malformed token")

// Claims is the normalized claim set derived from a bearer token.
//
// Claims instances are derived, never authored: every field comes from the
// token payload and is recomputed on each [Decode] call.
type Claims struct {
	Subject   string
	Roles     RoleSet
	ExpiresAt time.Time
	IssuedAt  time.Time
	Issuer    string
}

// Expired reports whether the token's exp claim lies at or before now.
// Tokens without an exp claim never expire from this layer's point of view.
func (c *Claims) Expired(now time.Time) bool {
	if c == nil || c.ExpiresAt.IsZero() {
		return false
	}
	return !c.ExpiresAt.After(now)
}

// authoritiesValue is the tagged representation of the backend's authorities
// claim. The upstream issuer emits either a single comma-joined string or a
// native JSON array of strings; both physical encodings must stay supported.
type authoritiesValue struct {
	joined string
	list   []string
	isList bool
}

// Decode parses the payload segment of raw and returns the normalized
// claim set. The signature is NOT verified; callers must treat the result
// as routing hints, not as an authorization proof.
//
// Decode never panics. Every failure mode (wrong segment count, bad base64,
// invalid JSON, non-string subject) is reported as [ErrMalformedToken] so
// callers can treat an undecodable token as "no session".
func Decode(raw string) (*Claims, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedToken)
	}

	parser := jwt.NewParser()
	parsed, _, err := parser.ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	payload, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected claims shape", ErrMalformedToken)
	}

	claims := &Claims{Roles: NewRoleSet()}

	if sub, err := payload.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if iss, err := payload.GetIssuer(); err == nil {
		claims.Issuer = iss
	}
	if exp, err := payload.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	if iat, err := payload.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}

	authorities, err := authoritiesFromClaim(payload["authorities"])
	if err != nil {
		return nil, err
	}
	claims.Roles = authorities.normalize()

	return claims, nil
}

func authoritiesFromClaim(value interface{}) (authoritiesValue, error) {
	switch v := value.(type) {
	case nil:
		return authoritiesValue{}, nil
	case string:
		return authoritiesValue{joined: v}, nil
	case []interface{}:
		list := make([]string, 0, len(v))
		for _, entry := range v {
			s, ok := entry.(string)
			if !ok {
				return authoritiesValue{}, fmt.Errorf("%w: non-string authority entry", ErrMalformedToken)
			}
			list = append(list, s)
		}
		return authoritiesValue{list: list, isList: true}, nil
	case []string:
		return authoritiesValue{list: v, isList: true}, nil
	default:
		return authoritiesValue{}, fmt.Errorf("%w: unsupported authorities encoding", ErrMalformedToken)
	}
}

func (a authoritiesValue) normalize() RoleSet {
	var parts []string
	if a.isList {
		parts = a.list
	} else {
		parts = strings.Split(a.joined, ",")
	}

	set := NewRoleSet()
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		set[Role(name)] = struct{}{}
	}
	return set
}
