package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotInitialized = errors.New("auth not initialized")
)

var jwtSecret []byte

type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Init installs the HS256 signing secret. It panics on an empty secret.
func Init(secret string) {
	if secret == "" {
		panic("JWT_SECRET must not be empty")
	}
	jwtSecret = []byte(secret)
}

func Enabled() bool {
	return len(jwtSecret) > 0
}

func GenerateJWT(userID, role string, duration time.Duration) (string, error) {
	if !Enabled() {
		return "", ErrNotInitialized
	}
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidateJWT(tokenStr string) (*Claims, error) {
	if !Enabled() {
		return nil, ErrNotInitialized
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if claims.UserID == "" {
		return nil, ErrUnauthorized
	}
	return claims, nil
}
