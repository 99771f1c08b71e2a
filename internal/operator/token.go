package operator

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// FeedClaims is the JWT payload for operator feed access.
type FeedClaims struct {
	Operator string `json:"operator"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256 feed tokens.
type TokenService struct {
	secret    []byte
	expiresIn time.Duration
}

// NewTokenService returns configured token service.
func NewTokenService(secret string, expiresIn time.Duration) *TokenService {
	if expiresIn <= 0 {
		expiresIn = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), expiresIn: expiresIn}
}

// Generate issues a feed token for the named operator.
func (t *TokenService) Generate(operator string) (string, error) {
	if operator == "" {
		return "", errors.New("token: operator name is required")
	}

	now := time.Now().UTC()
	claims := FeedClaims{
		Operator: operator,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiresIn)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Validate verifies and decodes a feed token.
func (t *TokenService) Validate(tokenString string) (*FeedClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &FeedClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("token: unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*FeedClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("token: invalid claims")
}
