// Package auth is the boundary to the external authentication collaborator.
// The core consumes a verified (userID, role) pair per request; tokens are
// issued elsewhere and only verified here.
package auth

import (
	"fmt"
	"time"

	model "bidwars/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Manager verifies HS256 bearer tokens and extracts the caller's identity.
type Manager struct {
	secret []byte
	issuer string
}

// NewManager creates a token manager with the shared HS256 secret.
func NewManager(secret, issuer string) *Manager {
	return &Manager{secret: []byte(secret), issuer: issuer}
}

// claims extends the registered JWT claims with the user's name and role.
type claims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Verify parses and validates a bearer token and returns the verified user.
func (m *Manager) Verify(tokenString string) (model.User, error) {
	if tokenString == "" {
		return model.User{}, fmt.Errorf("auth: token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return model.User{}, fmt.Errorf("auth: parse token: %w", err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return model.User{}, fmt.Errorf("auth: invalid token claims")
	}
	if c.Issuer != m.issuer {
		return model.User{}, fmt.Errorf("auth: invalid issuer %q", c.Issuer)
	}
	if c.Subject == "" {
		return model.User{}, fmt.Errorf("auth: missing subject")
	}
	if c.Role != model.RoleAdmin && c.Role != model.RolePlayer {
		return model.User{}, fmt.Errorf("auth: unknown role %q", c.Role)
	}

	return model.User{UserID: c.Subject, Username: c.Username, Role: c.Role}, nil
}

// Issue signs a token for the given user. The server itself never issues
// tokens to clients; this exists for the demo seeder and tests.
func (m *Manager) Issue(user model.User, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: user.Username,
		Role:     user.Role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}
