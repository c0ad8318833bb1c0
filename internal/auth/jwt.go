package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret = []byte("super-secret-key") // overridden from config at startup

// SetSecret replaces the signing secret. Called once during startup.
func SetSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

// GenerateAdminToken issues a short-lived token for the admin surface.
func GenerateAdminToken() (string, error) {
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"exp":  time.Now().Add(15 * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseToken(tokenStr string) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return jwtSecret, nil
	})
}

// SignSessionID wraps a session id in a signed token for the session cookie.
func SignSessionID(sid string) (string, error) {
	claims := jwt.MapClaims{"sid": sid}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
}

// SessionIDFromToken returns the session id embedded in a cookie token, or
// "" when the token is missing, tampered with, or of the wrong shape.
func SessionIDFromToken(tokenStr string) string {
	token, err := ParseToken(tokenStr)
	if err != nil || !token.Valid {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sid, _ := claims["sid"].(string)
	return sid
}
