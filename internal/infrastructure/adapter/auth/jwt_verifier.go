package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session token payload issued by the identity provider
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// TokenVerifier validates HS256 session tokens
type TokenVerifier struct {
	secret       []byte
	issuer       string
	timeProvider coreport.TimeProvider
}

// NewTokenVerifier creates a verifier. An empty issuer accepts any issuer.
func NewTokenVerifier(secret, issuer string, timeProvider coreport.TimeProvider) (*TokenVerifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &TokenVerifier{secret: []byte(secret), issuer: issuer, timeProvider: timeProvider}, nil
}

// Verify parses token and returns the identity it asserts. Every failure
// wraps ErrUnauthorized.
func (v *TokenVerifier) Verify(token string) (usecase.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return usecase.Identity{}, fmt.Errorf("%w: missing token", errs.ErrUnauthorized)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.timeProvider.Now),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return usecase.Identity{}, fmt.Errorf("%w: %s", errs.ErrUnauthorized, err.Error())
	}
	if !parsed.Valid {
		return usecase.Identity{}, fmt.Errorf("%w: invalid token", errs.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return usecase.Identity{}, fmt.Errorf("%w: token has no subject", errs.ErrUnauthorized)
	}

	return usecase.Identity{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
	}, nil
}

// Sign issues a token for identity valid for ttl. Used by the token command
// and tests.
func (v *TokenVerifier) Sign(identity usecase.Identity, ttl time.Duration) (string, error) {
	now := v.timeProvider.Now()
	claims := &Claims{
		Email: identity.Email,
		Name:  identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
