package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lojaviva/lojaviva-api/internal/config"
)

// sealTestToken builds a token with a caller-chosen issuedAt so that
// expiry can be tested without sleeping.
func sealTestToken(t *testing.T, secret, email string, issuedAt time.Time) string {
	t.Helper()
	key := make([]byte, tokenKeySize)
	copy(key, []byte(secret))

	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatalf("new cipher failed: %v", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		t.Fatalf("new gcm failed: %v", err)
	}
	nonce := make([]byte, tokenNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		t.Fatalf("nonce failed: %v", err)
	}

	payload := fmt.Sprintf("%s:%s:%d", email, secret, issuedAt.Unix())
	sealed := gcm.Seal(nil, nonce, []byte(payload), nil)
	ciphertext := sealed[:len(sealed)-tokenTagSize]
	tag := sealed[len(sealed)-tokenTagSize:]

	buf := make([]byte, 0, tokenNonceSize+tokenTagSize+len(ciphertext))
	buf = append(buf, nonce...)
	buf = append(buf, tag...)
	buf = append(buf, ciphertext...)
	return base64.StdEncoding.EncodeToString(buf)
}

func TestTokenGenerateValidateRoundTrip(t *testing.T) {
	svc := NewTokenService(&config.ResetTokenConfig{Secret: "unit-test-secret", ExpireMinutes: 30})

	token, err := svc.Generate("ana@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if err := svc.Validate(token, "ana@example.com"); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
}

func TestTokenValidateWrongEmail(t *testing.T) {
	svc := NewTokenService(&config.ResetTokenConfig{Secret: "unit-test-secret", ExpireMinutes: 30})

	token, err := svc.Generate("ana@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if err := svc.Validate(token, "outra@example.com"); !errors.Is(err, ErrTokenInvalido) {
		t.Fatalf("want ErrTokenInvalido got %v", err)
	}
}

func TestTokenValidateWrongSecret(t *testing.T) {
	issuer := NewTokenService(&config.ResetTokenConfig{Secret: "secret-a", ExpireMinutes: 30})
	verifier := NewTokenService(&config.ResetTokenConfig{Secret: "secret-b", ExpireMinutes: 30})

	token, err := issuer.Generate("ana@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if err := verifier.Validate(token, "ana@example.com"); !errors.Is(err, ErrTokenInvalido) {
		t.Fatalf("want ErrTokenInvalido got %v", err)
	}
}

func TestTokenValidateTampered(t *testing.T) {
	svc := NewTokenService(&config.ResetTokenConfig{Secret: "unit-test-secret", ExpireMinutes: 30})

	token, err := svc.Generate("ana@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	raw[len(raw)-1] ^= 0x01
	tampered := base64.StdEncoding.EncodeToString(raw)

	if err := svc.Validate(tampered, "ana@example.com"); !errors.Is(err, ErrTokenInvalido) {
		t.Fatalf("want ErrTokenInvalido got %v", err)
	}
}

func TestTokenValidateGarbage(t *testing.T) {
	svc := NewTokenService(&config.ResetTokenConfig{Secret: "unit-test-secret", ExpireMinutes: 30})

	cases := []string{"", "não-é-base64!", base64.StdEncoding.EncodeToString([]byte("short"))}
	for _, token := range cases {
		if err := svc.Validate(token, "ana@example.com"); !errors.Is(err, ErrTokenInvalido) {
			t.Fatalf("token %q: want ErrTokenInvalido got %v", token, err)
		}
	}
}

func TestTokenValidateExpired(t *testing.T) {
	const secret = "unit-test-secret"
	svc := NewTokenService(&config.ResetTokenConfig{Secret: secret, ExpireMinutes: 15})

	old := sealTestToken(t, secret, "ana@example.com", time.Now().Add(-time.Hour))
	if err := svc.Validate(old, "ana@example.com"); !errors.Is(err, ErrTokenExpirado) {
		t.Fatalf("want ErrTokenExpirado got %v", err)
	}

	fresh := sealTestToken(t, secret, "ana@example.com", time.Now())
	if err := svc.Validate(fresh, "ana@example.com"); err != nil {
		t.Fatalf("fresh token should validate, got %v", err)
	}
}

func TestTokenSecretWithColonRoundTrips(t *testing.T) {
	svc := NewTokenService(&config.ResetTokenConfig{Secret: "left:right:extra", ExpireMinutes: 30})

	token, err := svc.Generate("ana@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if err := svc.Validate(token, "ana@example.com"); err != nil {
		t.Fatalf("colon-bearing secret should round-trip, got %v", err)
	}
	if err := svc.Validate(token, "outra@example.com"); !errors.Is(err, ErrTokenInvalido) {
		t.Fatalf("wrong email: want ErrTokenInvalido got %v", err)
	}
}

func TestTokenValidateNoExpiry(t *testing.T) {
	const secret = "unit-test-secret"
	svc := NewTokenService(&config.ResetTokenConfig{Secret: secret, ExpireMinutes: 0})

	old := sealTestToken(t, secret, "ana@example.com", time.Now().Add(-24*time.Hour))
	if err := svc.Validate(old, "ana@example.com"); err != nil {
		t.Fatalf("expiry disabled, old token should validate, got %v", err)
	}
}
