package auth

import (
	"crypto/subtle"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash keeps the bcrypt cost paid even for unknown usernames, so a
// failed login takes the same time either way.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// CredentialStore holds the admin username/secret table loaded from
// configuration at startup. Secrets are bcrypt hashes or, for local
// development, plaintext passwords. Reload is the rotation hook.
type CredentialStore struct {
	mu    sync.RWMutex
	creds map[string]string
}

func NewCredentialStore(creds map[string]string) *CredentialStore {
	return &CredentialStore{creds: cloneCreds(creds)}
}

// Reload swaps in a new credential table, e.g. after a secret rotation.
func (s *CredentialStore) Reload(creds map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = cloneCreds(creds)
}

// Verify reports whether the username/password pair matches the table.
func (s *CredentialStore) Verify(username, password string) bool {
	s.mu.RLock()
	secret, ok := s.creds[username]
	s.mu.RUnlock()

	if !ok {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return false
	}

	if strings.HasPrefix(secret, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(secret), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(password)) == 1
}

func cloneCreds(creds map[string]string) map[string]string {
	out := make(map[string]string, len(creds))
	for user, secret := range creds {
		out[user] = secret
	}
	return out
}
