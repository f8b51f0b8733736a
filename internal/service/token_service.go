package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lojaviva/lojaviva-api/internal/config"
)

const (
	tokenNonceSize = 12
	tokenTagSize   = 16
	tokenKeySize   = 32
)

// TokenService issues and validates password-reset tokens. Tokens are
// AES-256-GCM over "email:secret:issuedAtUnix", serialized as
// base64(nonce || tag || ciphertext).
type TokenService struct {
	cfg *config.ResetTokenConfig
}

// NewTokenService creates a token service.
func NewTokenService(cfg *config.ResetTokenConfig) *TokenService {
	return &TokenService{cfg: cfg}
}

// tokenKey pads or truncates the configured secret to 32 bytes.
func (s *TokenService) tokenKey() []byte {
	key := make([]byte, tokenKeySize)
	copy(key, []byte(s.cfg.Secret))
	return key
}

// Generate encrypts a reset token bound to the given e-mail.
func (s *TokenService) Generate(email string) (string, error) {
	block, err := aes.NewCipher(s.tokenKey())
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, tokenNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	payload := fmt.Sprintf("%s:%s:%d", email, s.cfg.Secret, time.Now().Unix())
	sealed := gcm.Seal(nil, nonce, []byte(payload), nil)

	// Seal appends the tag after the ciphertext; the wire format
	// carries nonce, tag, ciphertext in that order.
	ciphertext := sealed[:len(sealed)-tokenTagSize]
	tag := sealed[len(sealed)-tokenTagSize:]

	buf := make([]byte, 0, tokenNonceSize+tokenTagSize+len(ciphertext))
	buf = append(buf, nonce...)
	buf = append(buf, tag...)
	buf = append(buf, ciphertext...)
	return base64.StdEncoding.EncodeToString(buf), nil
}

// Validate decrypts the token and checks it against the e-mail and
// the configured lifetime. ExpireMinutes of 0 disables the age check.
func (s *TokenService) Validate(token, email string) error {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return ErrTokenInvalido
	}
	if len(raw) < tokenNonceSize+tokenTagSize {
		return ErrTokenInvalido
	}
	nonce := raw[:tokenNonceSize]
	tag := raw[tokenNonceSize : tokenNonceSize+tokenTagSize]
	ciphertext := raw[tokenNonceSize+tokenTagSize:]

	block, err := aes.NewCipher(s.tokenKey())
	if err != nil {
		return ErrTokenInvalido
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return ErrTokenInvalido
	}

	sealed := make([]byte, 0, len(ciphertext)+tokenTagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	payload, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return ErrTokenInvalido
	}

	// The secret may itself contain colons, so the issued-at field is
	// split off from the right and the rest compared as one unit.
	text := string(payload)
	sep := strings.LastIndex(text, ":")
	if sep < 0 {
		return ErrTokenInvalido
	}
	if text[:sep] != email+":"+s.cfg.Secret {
		return ErrTokenInvalido
	}

	if s.cfg.ExpireMinutes > 0 {
		issuedAt, err := strconv.ParseInt(text[sep+1:], 10, 64)
		if err != nil {
			return ErrTokenInvalido
		}
		age := time.Since(time.Unix(issuedAt, 0))
		if age > time.Duration(s.cfg.ExpireMinutes)*time.Minute {
			return ErrTokenExpirado
		}
	}
	return nil
}
