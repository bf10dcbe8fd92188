package service

//go:generate mockgen -destination=../../mocks/mock_token_issuer.go -package=mocks github.com/Rosanadeaibes/my-notes/internal/auth/service TokenIssuer

import (
	"errors"
	"fmt"
	"time"

	"github.com/Rosanadeaibes/my-notes/internal/apperror"
	"github.com/golang-jwt/jwt/v5"
)

// TokenKind selects which of the two token classes is being issued or
// verified. Each kind has its own signing secret and lifetime, so a
// compromised access secret cannot forge refresh tokens and vice versa.
type TokenKind int

const (
	KindAccess TokenKind = iota
	KindRefresh
)

func (k TokenKind) String() string {
	if k == KindRefresh {
		return "refresh"
	}
	return "access"
}

type TokenIssuer interface {
	Issue(kind TokenKind, userID string) (string, error)
	Verify(kind TokenKind, tokenString string) (string, error)
	Expiry(kind TokenKind) time.Duration
}

type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

func NewTokenService(accessSecret, refreshSecret string, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

func (ts *TokenService) secret(kind TokenKind) []byte {
	if kind == KindRefresh {
		return []byte(ts.RefreshTokenSecret)
	}
	return []byte(ts.AccessTokenSecret)
}

func (ts *TokenService) Expiry(kind TokenKind) time.Duration {
	if kind == KindRefresh {
		return ts.RefreshTokenExpiry
	}
	return ts.AccessTokenExpiry
}

// Issue produces a signed, self-contained token embedding the user id and an
// expiry set by the kind's lifetime.
func (ts *TokenService) Issue(kind TokenKind, userID string) (string, error) {
	now := time.Now()

	claims := JWTCustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.Expiry(kind))),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret(kind))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", kind, err)
	}

	return token, nil
}

// Verify parses and validates the given token against the kind's secret and
// returns the embedded user id. An elapsed lifetime yields
// apperror.ErrTokenExpired; any other failure yields apperror.ErrTokenInvalid.
func (ts *TokenService) Verify(kind TokenKind, tokenString string) (string, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secret(kind), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperror.ErrTokenExpired
		}
		return "", apperror.ErrTokenInvalid
	}

	if !token.Valid || claims.UserID == "" {
		return "", apperror.ErrTokenInvalid
	}

	return claims.UserID, nil
}
