package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"wittycar/internal/errors"
)

// TokenExpiry is the validity window of issued bearer tokens. Tokens are
// stateless; there is no server-side session table to revoke against.
const TokenExpiry = 24 * time.Hour

// Claims carried by every bearer token.
type Claims struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies bearer credentials.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a JWT service signing with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

// GenerateToken issues a signed token carrying the user's uid and email.
func (s *JWTService) GenerateToken(uid, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UID:   uid,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies signature and expiry and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Unauthenticated("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Unauthenticated("invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UID == "" {
		return nil, errors.Unauthenticated("invalid or expired token")
	}
	return claims, nil
}
