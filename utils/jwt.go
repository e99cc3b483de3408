package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims del token local de la terminal
type Claims struct {
	OperatorID uint   `json:"operatorId"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken firma el JWT de sesión local del operador
func GenerateToken(operatorID uint, role string, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		OperatorID: operatorID,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Claims que mete el backend en su token de login
type backendClaims struct {
	TenantID string `json:"tenantId"`
	jwt.RegisteredClaims
}

var ErrTokenExpired = errors.New("token vencido")

// TenantFromToken saca el tenantId del token del backend. No valida la
// firma (el secreto es del backend); solo lee claims y respeta el exp.
func TenantFromToken(tokenStr string) (string, error) {
	claims := &backendClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return "", err
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return "", ErrTokenExpired
	}
	if claims.TenantID == "" {
		return "", errors.New("token sin tenantId")
	}
	return claims.TenantID, nil
}
