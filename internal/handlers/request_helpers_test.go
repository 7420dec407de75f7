package handlers

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("could not sign token: %v", err)
	}
	return token
}

func TestCustomerIDFromHeaderGuest(t *testing.T) {
	for _, header := range []string{"", "   "} {
		id, err := customerIDFromHeader(header, testSecret)
		if err != nil {
			t.Fatalf("guest header %q must not error: %v", header, err)
		}
		if id != "" {
			t.Fatalf("guest header %q must yield empty id, got %q", header, id)
		}
	}
}

func TestCustomerIDFromHeaderValidToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"userId": "user-42"})

	id, err := customerIDFromHeader("Bearer "+token, testSecret)
	if err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	if id != "user-42" {
		t.Fatalf("expected user-42, got %q", id)
	}
}

func TestCustomerIDFromHeaderRejectsBadInput(t *testing.T) {
	valid := signedToken(t, jwt.MapClaims{"userId": "user-42"})
	missingClaim := signedToken(t, jwt.MapClaims{"email": "a@b.c"})

	cases := []struct {
		name   string
		header string
	}{
		{"malformed header", "Bearer"},
		{"wrong scheme", "Basic " + valid},
		{"garbage token", "Bearer not-a-jwt"},
		{"missing userId claim", "Bearer " + missingClaim},
	}

	for _, tc := range cases {
		if _, err := customerIDFromHeader(tc.header, testSecret); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestCustomerIDFromHeaderRejectsWrongSecret(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"userId": "user-42"})

	if _, err := customerIDFromHeader("Bearer "+token, "other-secret"); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
}
