// Package auth выпускает и проверяет JWT-токены доступа.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fairplay10x/internal/model"
)

// Issuer — значение claim iss в токенах сервиса.
const Issuer = "fairplay10x"

// ErrInvalidToken возвращается для подделанного, просроченного или неполного токена.
var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	UserID   string `json:"uid"`
	Role     string `json:"role"`
	PlayerID string `json:"pid,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager подписывает токены HS256 общим секретом.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager создаёт менеджер токенов.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue выпускает токен для пользователя и возвращает время его истечения.
func (m *TokenManager) Issue(u model.User) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(m.ttl)

	c := claims{
		UserID: u.ID,
		Role:   string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    Issuer,
		},
	}
	if u.PlayerID != nil {
		c.PlayerID = *u.PlayerID
	}

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return s, expires, nil
}

// Parse проверяет токен и возвращает описание пользователя.
func (m *TokenManager) Parse(token string) (model.Viewer, error) {
	tok, err := jwt.ParseWithClaims(token, &claims{}, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(Issuer), jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return model.Viewer{}, ErrInvalidToken
	}

	c, ok := tok.Claims.(*claims)
	if !ok || c.UserID == "" || !model.Role(c.Role).Valid() {
		return model.Viewer{}, ErrInvalidToken
	}
	return model.Viewer{UserID: c.UserID, Role: model.Role(c.Role), PlayerID: c.PlayerID}, nil
}
