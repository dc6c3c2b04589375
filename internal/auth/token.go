package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers bad signatures, malformed tokens and expiry.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrMissingClaims is returned when a structurally valid token lacks
	// one of the claims every handler relies on.
	ErrMissingClaims = errors.New("token is missing required claims")
)

// Claims is the fixed-shape identity extracted from a verified token.
type Claims struct {
	Username string
	UserID   uint
	Role     string
}

// TokenManager issues and verifies signed bearer tokens.
type TokenManager struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenManager creates a manager for the given secret, algorithm name
// (e.g. "HS256") and token lifetime.
func NewTokenManager(secret, algorithm string, ttl time.Duration) (*TokenManager, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	return &TokenManager{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
	}, nil
}

// Issue signs a token embedding the user's identity and role with an
// absolute expiry of now + ttl.
func (t *TokenManager) Issue(username string, userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"id":   userID,
		"role": role,
		"exp":  time.Now().Add(t.ttl).Unix(),
	}
	token := jwt.NewWithClaims(t.method, claims)
	return token.SignedString(t.secret)
}

// Verify parses and validates a token string and returns its identity
// claims. Any signature, format or expiry problem yields ErrInvalidToken;
// a valid token without the three required claims yields ErrMissingClaims.
func (t *TokenManager) Verify(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != t.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", tok.Method.Alg())
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	return claimsFromMap(mapClaims)
}

func claimsFromMap(m jwt.MapClaims) (Claims, error) {
	username, ok := m["sub"].(string)
	if !ok || username == "" {
		return Claims{}, ErrMissingClaims
	}
	id, ok := m["id"].(float64)
	if !ok {
		return Claims{}, ErrMissingClaims
	}
	role, ok := m["role"].(string)
	if !ok || role == "" {
		return Claims{}, ErrMissingClaims
	}
	return Claims{Username: username, UserID: uint(id), Role: role}, nil
}
