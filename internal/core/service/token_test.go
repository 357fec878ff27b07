package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/membercore/rbac-member-system/internal/core/domain"
)

const (
	testSecret   = "test-signing-secret"
	testIssuer   = "member-api"
	testAudience = "member-clients"
)

func newTestTokenService() *TokenService {
	return NewTokenService(testSecret, testIssuer, testAudience, time.Hour)
}

func testUser() *domain.User {
	return &domain.User{
		ID:       "64f1b2c3d4e5f60718293a4b",
		Username: "alice",
		Email:    "a@x.com",
		Active:   true,
	}
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := newTestTokenService()

	token, expiresAt, err := svc.Issue(testUser(), []string{"User", "Manager"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty string")
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.UserID != "64f1b2c3d4e5f60718293a4b" {
		t.Fatalf("unexpected subject: %s", claims.UserID)
	}
	if claims.Username != "alice" || claims.Email != "a@x.com" {
		t.Fatalf("unexpected identity claims: %+v", claims)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != "User" || claims.Roles[1] != "Manager" {
		t.Fatalf("unexpected roles: %v", claims.Roles)
	}

	// jwt stores exp with second precision
	if delta := expiresAt.Sub(claims.ExpiresAt); delta < 0 || delta >= time.Second {
		t.Fatalf("expiry mismatch: issued %v, claims %v", expiresAt, claims.ExpiresAt)
	}
}

func TestTokenService_ExpiryFromTTL(t *testing.T) {
	svc := NewTokenService(testSecret, testIssuer, testAudience, 30*time.Minute)

	before := time.Now().UTC()
	_, expiresAt, err := svc.Issue(testUser(), nil)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	want := before.Add(30 * time.Minute)
	if expiresAt.Before(want) || expiresAt.After(want.Add(time.Second)) {
		t.Fatalf("expected expiry ~%v, got %v", want, expiresAt)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := newTestTokenService()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "64f1b2c3d4e5f60718293a4b",
		"username": "alice",
		"email":    "a@x.com",
		"roles":    []string{"User"},
		"iss":      testIssuer,
		"aud":      testAudience,
		"exp":      time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(signed); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := newTestTokenService()

	token, _, err := svc.Issue(testUser(), []string{"User"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Corrupt the first character of the signature segment; all six of its
	// bits are significant, so the decoded signature is guaranteed to change.
	dot := strings.LastIndexByte(token, '.')
	mutated := token[:dot+1] + flipChar(token[dot+1]) + token[dot+2:]

	if _, err := svc.Validate(mutated); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_TamperedPayload(t *testing.T) {
	svc := newTestTokenService()

	token, _, err := svc.Issue(testUser(), []string{"User"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Mutating the payload either breaks the signature or the structure;
	// it must never validate.
	first := strings.IndexByte(token, '.')
	mid := first + 1 + (strings.LastIndexByte(token, '.')-first-1)/2
	mutated := token[:mid] + flipChar(token[mid]) + token[mid+1:]

	_, err = svc.Validate(mutated)
	if !errors.Is(err, domain.ErrTokenSignatureInvalid) && !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected signature or malformed failure, got %v", err)
	}
}

func flipChar(b byte) string {
	if b == 'A' {
		return "B"
	}
	return "A"
}

func TestTokenService_WrongSecret(t *testing.T) {
	other := NewTokenService("another-secret", testIssuer, testAudience, time.Hour)
	token, _, err := other.Issue(testUser(), []string{"User"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	svc := newTestTokenService()
	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_WrongIssuerOrAudience(t *testing.T) {
	svc := newTestTokenService()

	byIssuer := NewTokenService(testSecret, "someone-else", testAudience, time.Hour)
	token, _, err := byIssuer.Issue(testUser(), nil)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("wrong issuer: expected ErrTokenSignatureInvalid, got %v", err)
	}

	byAudience := NewTokenService(testSecret, testIssuer, "other-audience", time.Hour)
	token, _, err = byAudience.Issue(testUser(), nil)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("wrong audience: expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := newTestTokenService()

	for _, tok := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := svc.Validate(tok); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", tok, err)
		}
	}
}
