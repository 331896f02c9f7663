package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/dwiprasetyo/auth-session-service/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenGenerator issues and verifies signed access tokens. Refresh tokens
// are opaque strings minted by the auth service, not signed credentials,
// so they are out of this interface's scope.
type TokenGenerator interface {
	Sign(userID string) (string, time.Time, error)
	Verify(tokenString string) (*AccessTokenClaims, error)
}

type TokenService struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

type AccessTokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

func NewTokenService(secret string, accessMinutes int) *TokenService {
	return &TokenService{
		Secret:            secret,
		AccessTokenExpiry: time.Duration(accessMinutes) * time.Minute,
	}
}

// Sign creates an access token carrying the user id, expiring after the
// configured duration.
func (ts *TokenService) Sign(userID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.AccessTokenExpiry)

	claims := AccessTokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Verify parses and validates the given access token string.
func (ts *TokenService) Verify(tokenString string) (*AccessTokenClaims, error) {
	claims := &AccessTokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
