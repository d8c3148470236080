package security

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

const (
	sessionKeyInfo = "remedywhisper.profile-session.v1"
	sessionIssuer  = "remedywhisper"
)

var ErrInvalidSessionToken = errors.New("invalid session token")

type profileClaims struct {
	ProfileID string `json:"pid"`
	jwt.RegisteredClaims
}

// SessionSigner issues and verifies the signed token that binds a browser to
// its profile id.
type SessionSigner struct {
	key []byte
	ttl time.Duration
}

// NewSessionSigner derives the HS256 signing key from secret with HKDF.
func NewSessionSigner(secret string, ttl time.Duration) (*SessionSigner, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("session secret is required")
	}
	if ttl <= 0 {
		return nil, errors.New("session ttl must be positive")
	}

	key := make([]byte, 32)
	reader := hkdf.New(sha256.New, []byte(secret), nil, []byte(sessionKeyInfo))
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive session key: %w", err)
	}
	return &SessionSigner{key: key, ttl: ttl}, nil
}

func (signer *SessionSigner) TTL() time.Duration {
	return signer.ttl
}

func (signer *SessionSigner) Issue(profileID string, now time.Time) (string, error) {
	if !IsProfileID(profileID) {
		return "", fmt.Errorf("issue session token: %w", ErrInvalidSessionToken)
	}

	claims := profileClaims{
		ProfileID: profileID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   profileID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(signer.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signer.key)
}

// Parse verifies the token and returns the profile id it carries.
func (signer *SessionSigner) Parse(rawToken string, now time.Time) (string, error) {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return "", ErrInvalidSessionToken
	}

	claims := &profileClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(*jwt.Token) (interface{}, error) {
		return signer.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidSessionToken
	}
	if !IsProfileID(claims.ProfileID) || claims.Subject != claims.ProfileID {
		return "", ErrInvalidSessionToken
	}
	return claims.ProfileID, nil
}
