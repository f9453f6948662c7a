package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "assignment-admin-backend"

// AuthClaims are the claims carried by bearer tokens issued by the login service.
// UserID identifies the acting user recorded as an assignment's creator.
type AuthClaims struct {
	UserID string `json:"user_id" example:"3f0e7c9e-1b7a-4f55-9a55-1f3c3c1f0b6e"`
	Email  string `json:"email,omitempty" example:"jane.doe@example.com"`
	Role   string `json:"role,omitempty" example:"ADMIN"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// ActorID parses UserID
func (c *AuthClaims) ActorID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}

// AuthService verifies HS256 bearer tokens. Tokens are issued elsewhere with the same secret.
type AuthService struct {
	secret []byte
}

// NewAuthService creates a new auth service
func NewAuthService(secret string) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	return &AuthService{secret: []byte(secret)}, nil
}

// GenerateJWT signs a token for userID valid for ttl
func (s *AuthService) GenerateJWT(userID uuid.UUID, email, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: userID.String(),
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if _, err := claims.ActorID(); err != nil {
		return nil, fmt.Errorf("invalid user_id claim: %w", err)
	}
	return claims, nil
}
