package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	appErrors "aircast/internal/shared/errors"
)

const TokenTypeAccess = "access"

// Claims carries the recipient identity used to scope every
// notification operation.
type Claims struct {
	UserSID   string `json:"user_sid"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// JWTService verifies the HMAC-signed access tokens issued by the main
// application.
type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

// Verify parses and validates an access token, returning its claims.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, appErrors.NewUnauthorizedError("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, appErrors.NewUnauthorizedError("invalid token")
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, appErrors.NewUnauthorizedError("invalid token type")
	}
	if claims.UserSID == "" {
		return nil, appErrors.NewUnauthorizedError("token missing user identity")
	}

	return claims, nil
}

// Generate issues an access token for the given user. Mainly used by
// local tooling and tests; production tokens come from the main
// application sharing the same secret.
func (s *JWTService) Generate(userSID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserSID:   userSID,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userSID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
