// SPDX-License-Identifier: Apache-2.0
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// FileStore keeps settings in a single yaml file
type FileStore struct {
	mu   sync.Mutex
	path string
	v    *viper.Viper
}

// NewFileStore opens the settings file at path. A missing file is not an
// error; it is created on the first Set.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("settings file path is empty")
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
		}
	}

	log.Debugf("settings: using file store %s", path)

	return &FileStore{path: path, v: v}, nil
}

// GetInt implements Reader
func (s *FileStore) GetInt(key string, def int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.v.IsSet(key) {
		return def
	}
	return s.v.GetInt(key)
}

// Set stores value under key and writes the file
func (s *FileStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	s.v.Set(key, value)

	if err := s.v.SafeWriteConfigAs(s.path); err != nil {
		if _, ok := err.(viper.ConfigFileAlreadyExistsError); ok {
			if err := s.v.WriteConfigAs(s.path); err != nil {
				return fmt.Errorf("failed to write settings: %w", err)
			}
		} else {
			return fmt.Errorf("failed to create settings: %w", err)
		}
	}

	log.Debugf("settings: %s = %v", key, value)
	return nil
}

// Path returns the backing file
func (s *FileStore) Path() string {
	return s.path
}

// Close implements Store
func (s *FileStore) Close() error {
	return nil
}
