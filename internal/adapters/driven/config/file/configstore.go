package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/noamoss/yamly-sub000/internal/core/domain"
	"github.com/noamoss/yamly-sub000/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.RuleStore = (*ConfigStore)(nil)

// configFile is the on-disk TOML schema.
type configFile struct {
	// Color controls terminal colour: "auto", "always" or "never".
	Color string `toml:"color"`

	// HistoryLimit is the default number of runs shown by history.
	HistoryLimit int `toml:"history_limit"`

	// Rules are the default identity rules, in priority order.
	Rules []domain.IdentityRule `toml:"rules"`
}

// ConfigStore is a file-based configuration store using TOML.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     configFile
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.yamly/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".yamly")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}

	// Load existing data if file exists
	if err := s.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return s, nil
}

// Load reads the configuration file from disk.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	var parsed configFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return err
	}
	s.data = parsed
	return nil
}

// Save writes the configuration file to disk.
func (s *ConfigStore) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := toml.Marshal(s.data)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Rules returns the configured default identity rules.
func (s *ConfigStore) Rules() ([]domain.IdentityRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rules := make([]domain.IdentityRule, len(s.data.Rules))
	copy(rules, s.data.Rules)
	return rules, nil
}

// SetRules replaces the configured identity rules.
func (s *ConfigStore) SetRules(rules []domain.IdentityRule) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Rules = make([]domain.IdentityRule, len(rules))
	copy(s.data.Rules, rules)
}

// Color returns the configured colour mode, defaulting to "auto".
func (s *ConfigStore) Color() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data.Color == "" {
		return "auto"
	}
	return s.data.Color
}

// HistoryLimit returns the default history listing size.
func (s *ConfigStore) HistoryLimit() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data.HistoryLimit <= 0 {
		return 20
	}
	return s.data.HistoryLimit
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
