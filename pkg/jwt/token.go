package jwtPkg

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const secretEnvKey = "JWT_ACCESS_TOKEN_SECRET"

// ErrExpired reports that a token was well formed but past its expiry.
var ErrExpired = jwt.ErrTokenExpired

func Sign(data map[string]interface{}, expiresIn time.Duration) (string, int64, error) {
	expiredAt := time.Now().Add(expiresIn).Unix()

	secret := os.Getenv(secretEnvKey)
	if secret == "" {
		return "", 0, fmt.Errorf("%s not set", secretEnvKey)
	}

	claims := jwt.MapClaims{}
	claims["exp"] = expiredAt

	for k, v := range data {
		claims[k] = v
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(secret))
	if err != nil {
		logrus.WithError(err).Error("Failed to sign token")
		return "", 0, err
	}

	return accessToken, expiredAt, nil
}

// Verify parses and validates an access token and returns its claims.
// Expiry surfaces as an error matching ErrExpired; every other failure
// means the token is invalid.
func Verify(accessToken string) (jwt.MapClaims, error) {
	secret := os.Getenv(secretEnvKey)
	if secret == "" {
		return nil, fmt.Errorf("%s not set", secretEnvKey)
	}

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
