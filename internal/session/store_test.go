package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barber-app-web/internal/models"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("segredo"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestCreateRejectsExpiredToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"role": "ADMIN",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})

	// a rejeição acontece antes de qualquer ida ao redis
	store := NewStore(nil, 12*time.Hour)

	_, err := store.Create(context.Background(), token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenClaimsReadUnverified(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	token := signedToken(t, jwt.MapClaims{
		"role": "BARBER",
		"exp":  exp.Unix(),
	})

	if got := tokenRole(token); got != models.RoleBarber {
		t.Errorf("role = %q", got)
	}

	parsed := tokenExpiry(token)
	if parsed.IsZero() || parsed.Unix() != exp.Unix() {
		t.Errorf("expiry = %v, want %v", parsed, exp)
	}
}

func TestTokenClaimsToleratesGarbage(t *testing.T) {
	if role := tokenRole("not-a-jwt"); role != "" {
		t.Errorf("garbage token must yield empty role, got %q", role)
	}
	if exp := tokenExpiry("not-a-jwt"); !exp.IsZero() {
		t.Errorf("garbage token must yield zero expiry, got %v", exp)
	}
}
