package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/RadhepS/E-Commerce-Platform/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Issue(userID, username string) (string, error)
	Verify(tokenString string) (*SessionClaims, error)
}

// TokenService signs and verifies the session claim carried by the
// access_token cookie. Tokens are self-contained: validity is signature plus
// embedded expiry, nothing is tracked server-side.
type TokenService struct {
	Secret string
	Expiry time.Duration
}

type SessionClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

func NewTokenService(secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		Secret: secret,
		Expiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

func (ts *TokenService) Issue(userID, username string) (string, error) {
	now := time.Now()

	claims := SessionClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.Expiry)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// Verify parses and validates the given token string. Any failure (malformed
// input, tampered payload, wrong secret, expired claim) comes back as an
// error; callers treat all of them as "unauthenticated".
func (ts *TokenService) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
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
