package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"giftbox/backend/config"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "giftbox_session"

var ErrInvalidSessionToken = errors.New("invalid session token")

// GenerateSessionToken signs a token naming the session. It expires with the session TTL, or
// after a day when expiry is disabled.
func GenerateSessionToken(sessionID string, cfg *config.Config) (string, error) {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ExtractSessionID validates tokenString and returns the session ID it carries.
func ExtractSessionID(tokenString string, cfg *config.Config) (string, error) {
	if tokenString == "" {
		return "", ErrInvalidSessionToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSessionToken
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return "", ErrInvalidSessionToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidSessionToken
	}

	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return "", ErrInvalidSessionToken
	}

	return sessionID, nil
}
