package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// Gate is the login gate: a single hardcoded credential pair, no user
// accounts and no server-side sessions behind it. The configured password
// is hashed once at startup so login compares against a hash.
type Gate struct {
	username     string
	passwordHash []byte
}

func NewGate(username, password string) (*Gate, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Gate{username: username, passwordHash: hash}, nil
}

// Verify reports whether the submitted pair matches the configured one.
func (g *Gate) Verify(username, password string) bool {
	if username != g.username {
		return false
	}
	return bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password)) == nil
}
