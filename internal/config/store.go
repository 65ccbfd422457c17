package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Section/key names mirror the sections of the config file on disk.
const (
	SectionDatabase = "Database"
	SectionFakeData = "FakeData"
	SectionAdmin    = "Admin"
	SectionUser     = "User"
	SectionSettings = "Settings"

	KeyIsCreated    = "is_created"
	KeyAdminCreated = "admin_created"
	KeyEmail        = "email"
	KeyPassword     = "password"
	KeyCurrentUser  = "current_user"
	KeyTheme        = "theme"
)

const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// Store is a section-scoped key/value store persisted to a TOML file.
// It tracks one-time setup flags, the cached admin login and the UI theme.
type Store struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

func NewStore(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.SetDefault(storeKey(SectionDatabase, KeyIsCreated), "False")
	v.SetDefault(storeKey(SectionFakeData, KeyIsCreated), "False")
	v.SetDefault(storeKey(SectionAdmin, KeyAdminCreated), "False")
	v.SetDefault(storeKey(SectionUser, KeyCurrentUser), RoleStaff)
	v.SetDefault(storeKey(SectionSettings, KeyTheme), "dark")

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
				return nil, fmt.Errorf("create config dir: %w", mkErr)
			}
			if writeErr := v.WriteConfigAs(path); writeErr != nil {
				return nil, fmt.Errorf("create config file: %w", writeErr)
			}
		} else {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return &Store{v: v, path: path}, nil
}

func (s *Store) GetValue(section, key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.GetString(storeKey(section, key))
}

func (s *Store) SetValue(section, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(storeKey(section, key), value)
}

func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.WriteConfigAs(s.path)
}

func storeKey(section, key string) string {
	return strings.ToLower(section) + "." + key
}
