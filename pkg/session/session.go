package session

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the cookie carrying the signed session token
const CookieName = "ts_session"

const issuer = "talent-sift"

var ErrInvalidSession = errors.New("invalid session token")

// Claims identify one browser session; the page state is keyed by SessionID
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Manager issues and verifies HS256-signed session tokens
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a session manager. An empty secret gets a random one,
// so sessions do not survive a restart.
func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{secret: key, ttl: ttl}, nil
}

// TTL is how long an issued token stays valid
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue starts a new session and returns its id with the signed token
func (m *Manager) Issue() (string, string, error) {
	sessionID := uuid.NewString()
	now := time.Now()

	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", "", fmt.Errorf("sign session token: %w", err)
	}
	return sessionID, token, nil
}

// Parse verifies a token and returns its session id
func (m *Manager) Parse(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil || !token.Valid {
		return "", ErrInvalidSession
	}
	if _, err := uuid.Parse(claims.SessionID); err != nil {
		return "", ErrInvalidSession
	}
	return claims.SessionID, nil
}
