package connector

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"path/filepath"
	"runtime"

	"github.com/99designs/keyring"
)

const (
	keychainService = "w3account"
	emailKey        = keychainService + ".auth.email"
)

// ErrNoSession is returned when the auth connector has no stored session.
var ErrNoSession = errors.New("no auth session")

// SessionStore keeps the auth connector's login in the OS keychain.
type SessionStore struct {
	ring keyring.Keyring
}

// NewSessionStore wraps an already opened keyring.
func NewSessionStore(ring keyring.Keyring) *SessionStore {
	return &SessionStore{ring: ring}
}

// DefaultSessionStore returns a session store backed by the OS keychain,
// falling back to an encrypted file under dir.
func DefaultSessionStore(dir string) *SessionStore {
	cfg := keyring.Config{
		ServiceName:              keychainService,
		KeychainTrustApplication: true,
		FileDir:                  filepath.Join(dir, "keys"),
		FilePasswordFunc:         filePassword,
	}

	// On Linux without a GUI, fall back to file-based storage.
	if runtime.GOOS == "linux" {
		cfg.AllowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.FileBackend,
		}
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		cfg.AllowedBackends = []keyring.BackendType{keyring.FileBackend}
		ring, _ = keyring.Open(cfg)
	}
	return &SessionStore{ring: ring}
}

// W3ACCOUNT_KEYRING_PASSWORD unlocks the file backend non-interactively.
func filePassword(prompt string) (string, error) {
	if pw := os.Getenv("W3ACCOUNT_KEYRING_PASSWORD"); pw != "" {
		return pw, nil
	}
	return keyring.TerminalPrompt(prompt)
}

// SaveEmail stores the email the auth connector signed in with.
func (s *SessionStore) SaveEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("invalid email %q: %w", email, err)
	}
	if s.ring == nil {
		return fmt.Errorf("keystore not available")
	}
	if err := s.ring.Set(keyring.Item{Key: emailKey, Data: []byte(addr.Address)}); err != nil {
		return fmt.Errorf("keychain store: %w", err)
	}
	return nil
}

// Email returns the stored login email, or ErrNoSession.
func (s *SessionStore) Email() (string, error) {
	if s.ring == nil {
		return "", ErrNoSession
	}
	item, err := s.ring.Get(emailKey)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("keychain retrieve: %w", err)
	}
	return string(item.Data), nil
}

// Clear removes the stored session. Clearing an empty store is not an error.
func (s *SessionStore) Clear() error {
	if s.ring == nil {
		return nil
	}
	err := s.ring.Remove(emailKey)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return nil
	}
	return err
}
