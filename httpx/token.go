package httpx

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore persists the bearer token between requests. Implementations do
// no expiry tracking; an expired token is only discovered through a 401.
type TokenStore interface {
	// Token returns the stored token, if any.
	Token() (string, bool)
	// SetToken replaces the stored token.
	SetToken(token string) error
	// ClearToken removes the stored token. Clearing an empty store is a no-op.
	ClearToken() error
}

// MemoryStore keeps the token in memory only. Useful for tests and for
// short-lived processes that log in on every run.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) ClearToken() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}

// FileStore persists the token as a 0600 file so it survives process
// restarts. The file holds the raw token and nothing else.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// DefaultTokenPath is the token location under the user config dir when no
// explicit path is given.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "invoices-client", "auth_token"), nil
}

// NewFileStore creates a store writing to path. An empty path selects
// DefaultTokenPath.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		p, err := DefaultTokenPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(b))
	return token, token != ""
}

func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	// Write-then-rename so a crash never leaves a truncated token behind.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(token), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
