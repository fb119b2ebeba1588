package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testKey = []byte("decoder-test-key")

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestDecodeRoleNormalization(t *testing.T) {
	tests := []struct {
		name        string
		authorities interface{}
		want        RoleSet
	}{
		{
			name:        "comma joined string",
			authorities: "ROLE_ADMIN,ROLE_EVALUADOR",
			want:        NewRoleSet(RoleAdmin, RoleEvaluator),
		},
		{
			name:        "native array",
			authorities: []string{"ROLE_ADMIN", "ROLE_EVALUADOR"},
			want:        NewRoleSet(RoleAdmin, RoleEvaluator),
		},
		{
			name:        "single role string",
			authorities: "ROLE_ADMIN",
			want:        NewRoleSet(RoleAdmin),
		},
		{
			name:        "string with spaces and empty segments",
			authorities: " ROLE_ADMIN , ,ROLE_EVALUADOR ",
			want:        NewRoleSet(RoleAdmin, RoleEvaluator),
		},
		{
			name:        "missing claim",
			authorities: nil,
			want:        NewRoleSet(),
		},
		{
			name:        "empty string",
			authorities: "",
			want:        NewRoleSet(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			claims := jwt.MapClaims{"sub": "alice"}
			if tc.authorities != nil {
				claims["authorities"] = tc.authorities
			}

			decoded, err := Decode(mintToken(t, claims))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !decoded.Roles.Equal(tc.want) {
				t.Fatalf("roles = %v, want %v", decoded.Roles.List(), tc.want.List())
			}
		})
	}
}

func TestDecodeBothEncodingsAgree(t *testing.T) {
	joined := mintToken(t, jwt.MapClaims{
		"sub":         "alice",
		"authorities": "ROLE_ADMIN,ROLE_EVALUADOR",
	})
	array := mintToken(t, jwt.MapClaims{
		"sub":         "alice",
		"authorities": []string{"ROLE_ADMIN", "ROLE_EVALUADOR"},
	})

	fromJoined, err := Decode(joined)
	if err != nil {
		t.Fatalf("Decode joined: %v", err)
	}
	fromArray, err := Decode(array)
	if err != nil {
		t.Fatalf("Decode array: %v", err)
	}

	if !fromJoined.Roles.Equal(fromArray.Roles) {
		t.Fatalf("encodings disagree: %v vs %v", fromJoined.Roles.List(), fromArray.Roles.List())
	}
}

func TestDecodeRegisteredClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	iat := time.Now().Truncate(time.Second)

	decoded, err := Decode(mintToken(t, jwt.MapClaims{
		"sub":         "alice",
		"iss":         "brunet-lezine",
		"exp":         exp.Unix(),
		"iat":         iat.Unix(),
		"authorities": "ROLE_ADMIN",
	}))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if decoded.Subject != "alice" {
		t.Fatalf("subject = %q", decoded.Subject)
	}
	if decoded.Issuer != "brunet-lezine" {
		t.Fatalf("issuer = %q", decoded.Issuer)
	}
	if !decoded.ExpiresAt.Equal(exp) {
		t.Fatalf("expiresAt = %v, want %v", decoded.ExpiresAt, exp)
	}
	if !decoded.IssuedAt.Equal(iat) {
		t.Fatalf("issuedAt = %v, want %v", decoded.IssuedAt, iat)
	}
	if decoded.Expired(time.Now()) {
		t.Fatal("token reported expired before exp")
	}
	if !decoded.Expired(exp.Add(time.Minute)) {
		t.Fatal("token not reported expired after exp")
	}
}

func TestDecodeMalformedInputs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "plain string", raw: "not-a-jwt"},
		{name: "empty", raw: ""},
		{name: "whitespace", raw: "   "},
		{name: "two segments", raw: "aaaa.bbbb"},
		{name: "bad base64 payload", raw: "aaaa.!!!!.cccc"},
		{name: "payload not json", raw: "eyJhbGciOiJIUzI1NiJ9.bm90LWpzb24.sig"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := Decode(tc.raw)
			if !errors.Is(err, ErrMalformedToken) {
				t.Fatalf("err = %v, want ErrMalformedToken", err)
			}
			if claims != nil {
				t.Fatalf("claims = %+v, want nil", claims)
			}
		})
	}
}

func TestDecodeRejectsNonStringAuthorityEntry(t *testing.T) {
	_, err := Decode(mintToken(t, jwt.MapClaims{
		"sub":         "alice",
		"authorities": []interface{}{"ROLE_ADMIN", 42},
	}))
	if !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("err = %v, want ErrMalformedToken", err)
	}
}

func TestClaimsWithoutExpNeverExpire(t *testing.T) {
	decoded, err := Decode(mintToken(t, jwt.MapClaims{"sub": "alice"}))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Expired(time.Now().Add(100 * 365 * 24 * time.Hour)) {
		t.Fatal("token without exp reported expired")
	}
}
