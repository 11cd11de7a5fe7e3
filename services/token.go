package services

import (
	"fmt"

	"workzen/errors"

	"github.com/dgrijalva/jwt-go"
)

// GetUserIDFromToken verifies the token signature and expiry, then extracts
// the user id and role from the claims. Tokens signed with anything other
// than the shared HMAC secret are rejected.
func GetUserIDFromToken(tokenString string) (uint, string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", err)
	}
	if !token.Valid {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", nil)
	}
	if claims.UserInfo.UserId == 0 || claims.UserInfo.Role == "" {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "No user info in token", nil)
	}

	return claims.UserInfo.UserId, claims.UserInfo.Role, nil
}
