package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key-for-unit-tests-only"

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func newTestTokens(t *testing.T, clock *fakeClock) *TokenService {
	t.Helper()
	svc, err := NewTokenService(testSecret, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("new token service: %v", err)
	}
	return svc
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	if _, err := NewTokenService(""); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestTokens(t, clock)

	token, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	got, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != "user-123" {
		t.Errorf("expected user-123, got %q", got)
	}
}

func TestTokenService_ExpiresAfterOneHour(t *testing.T) {
	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: issuedAt}
	svc := newTestTokens(t, clock)

	token, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	clock.t = issuedAt.Add(TokenTTL - time.Second)
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("expected token valid just before expiry: %v", err)
	}

	clock.t = issuedAt.Add(TokenTTL)
	if _, err := svc.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired at expiry, got %v", err)
	}

	clock.t = issuedAt.Add(2 * TokenTTL)
	if _, err := svc.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired after expiry, got %v", err)
	}
}

func TestTokenService_Rejects(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	svc := newTestTokens(t, clock)
	valid, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other, err := NewTokenService("another-secret", WithClock(clock.Now))
	if err != nil {
		t.Fatalf("new token service: %v", err)
	}
	foreign, err := other.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(valid, ".")
	tamperedPayload := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "admin",
		"exp":    clock.t.Add(time.Hour).Unix(),
	})
	forged, _ := tamperedPayload.SigningString()
	tampered := forged + "." + parts[2]

	sign := func(claims jwt.MapClaims, method jwt.SigningMethod, key any) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return s
	}
	exp := clock.t.Add(time.Hour).Unix()

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"garbage", "not-a-token", ErrTokenMalformed},
		{"empty", "", ErrTokenMalformed},
		{"wrong secret", foreign, ErrTokenSignatureInvalid},
		{"tampered payload", tampered, ErrTokenSignatureInvalid},
		{"none algorithm", sign(jwt.MapClaims{"userId": "u", "exp": exp}, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType), ErrTokenSignatureInvalid},
		{"numeric user id", sign(jwt.MapClaims{"userId": 42, "exp": exp}, jwt.SigningMethodHS256, []byte(testSecret)), ErrTokenClaimsInvalid},
		{"missing user id", sign(jwt.MapClaims{"sub": "u", "exp": exp}, jwt.SigningMethodHS256, []byte(testSecret)), ErrTokenClaimsInvalid},
		{"missing expiry", sign(jwt.MapClaims{"userId": "u"}, jwt.SigningMethodHS256, []byte(testSecret)), ErrTokenClaimsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestTokenService_IssueRequiresUserID(t *testing.T) {
	svc := newTestTokens(t, &fakeClock{t: time.Now()})
	if _, err := svc.Issue(""); err == nil {
		t.Fatal("expected error for empty user id")
	}
}
