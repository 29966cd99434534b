// Package fs provides file-based storage for user preferences.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/flixsearch"
)

// countriesKey is the settings key holding the active countries.
const countriesKey = "countries"

// Ensure PreferenceStore implements flixsearch.PreferenceStore at compile time.
var _ flixsearch.PreferenceStore = (*PreferenceStore)(nil)

// PreferenceStore keeps preferences in a JSON settings file of the form
// {"countries": ["UK", "USA"]}. Unknown keys in the file are preserved.
// Every write replaces the whole file through a rename, so readers never
// see a partial document.
type PreferenceStore struct {
	mu   sync.Mutex
	path string
}

// NewPreferenceStore creates a store backed by the file at path.
// The file and its directory are created on first write.
func NewPreferenceStore(path string) *PreferenceStore {
	return &PreferenceStore{path: path}
}

// Path returns the settings file location.
func (s *PreferenceStore) Path() string {
	return s.path
}

// ActiveCountries returns the saved countries, or an empty list if
// nothing was saved yet.
func (s *PreferenceStore) ActiveCountries(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.read()
	if err != nil {
		return nil, err
	}

	countries := []string{}
	if raw, ok := settings[countriesKey]; ok {
		if err := json.Unmarshal(raw, &countries); err != nil {
			return nil, flixsearch.Errorf(flixsearch.EINVALID, "invalid %q in %s: %v", countriesKey, s.path, err)
		}
	}
	if countries == nil {
		countries = []string{}
	}
	return countries, nil
}

// SetActiveCountries replaces the saved countries.
func (s *PreferenceStore) SetActiveCountries(ctx context.Context, countries []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.read()
	if err != nil {
		return err
	}

	if countries == nil {
		countries = []string{}
	}
	raw, err := json.Marshal(countries)
	if err != nil {
		return err
	}
	settings[countriesKey] = raw

	return s.write(settings)
}

// Reset removes the settings file.
func (s *PreferenceStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove settings: %w", err)
	}
	return nil
}

func (s *PreferenceStore) read() (map[string]json.RawMessage, error) {
	settings := make(map[string]json.RawMessage)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, flixsearch.Errorf(flixsearch.EINVALID, "invalid settings file %s: %v", s.path, err)
	}
	if settings == nil {
		// The file held a JSON null.
		settings = make(map[string]json.RawMessage)
	}
	return settings, nil
}

// write saves settings to a temporary file next to the target and renames
// it into place.
func (s *PreferenceStore) write(settings map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}
