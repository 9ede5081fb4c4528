package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrCorruptDocument is returned when the stored credential document is not valid JSON.
var ErrCorruptDocument = errors.New("corrupt credential document")

// Credentials is the persisted network configuration of the device.
type Credentials struct {
	// SSID is the network to join. Empty means no credentials are configured.
	SSID string `json:"WiFiSSID"`

	// Password is the network passphrase (may be empty for open networks).
	Password string `json:"WiFiPW"`

	// Hostname is the name the device registers on the local network.
	Hostname string `json:"WiFiHostname"`
}

// IsConfigured returns true if an SSID is present.
func (c Credentials) IsConfigured() bool {
	return c.SSID != ""
}

// CredentialFileStore persists credentials to a JSON file.
type CredentialFileStore struct {
	mu   sync.Mutex
	path string
}

// NewCredentialFileStore creates a new credential store backed by path.
func NewCredentialFileStore(path string) *CredentialFileStore {
	return &CredentialFileStore{path: path}
}

// Path returns the location of the credential document.
func (s *CredentialFileStore) Path() string {
	return s.path
}

// Load reads the credential document.
// A missing file yields empty credentials and no error.
func (s *CredentialFileStore) Load() (Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Credentials{}, nil
	}
	if err != nil {
		return Credentials{}, err
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	return creds, nil
}

// Save writes the credential document, replacing any previous one.
func (s *CredentialFileStore) Save(creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".credentials-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, s.path)
}

// Clear removes the credential document.
func (s *CredentialFileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryCredentialStore keeps credentials in memory.
// Useful for tests and for devices without writable storage.
type MemoryCredentialStore struct {
	mu    sync.Mutex
	creds Credentials
	saves int
}

// NewMemoryCredentialStore creates a memory store seeded with creds.
func NewMemoryCredentialStore(creds Credentials) *MemoryCredentialStore {
	return &MemoryCredentialStore{creds: creds}
}

// Load returns the stored credentials.
func (s *MemoryCredentialStore) Load() (Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds, nil
}

// Save replaces the stored credentials.
func (s *MemoryCredentialStore) Save(creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = creds
	s.saves++
	return nil
}

// Saves returns how many times Save was called.
func (s *MemoryCredentialStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
