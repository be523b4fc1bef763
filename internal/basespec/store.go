// Package basespec loads base mission spec profiles. A profile is a YAML
// file in the profile directory; its stem is the profile name referenced
// by a document's template field. Exports merge the conops patch over the
// selected profile.
package basespec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotFound reports a profile that has no file in the store.
var ErrNotFound = errors.New("base spec profile not found")

// Profile identifies one base spec file.
type Profile struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Store reads profiles from a single directory. The directory may not
// exist yet; that just means no profiles.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

// Path returns where the named profile lives, whether or not it exists.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+".yaml")
}

// List returns the available profiles in name order. A missing profile
// directory is not an error, only an empty list.
func (s *Store) List() ([]Profile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading profile directory: %w", err)
	}

	var profiles []Profile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".yaml")
		profiles = append(profiles, Profile{Name: name, Path: filepath.Join(s.dir, e.Name())})
	}
	return profiles, nil
}

// Get parses the named profile into a spec map. A missing file reports
// ErrNotFound so callers can fall back to exporting the bare patch.
func (s *Store) Get(name string) (map[string]interface{}, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("profile %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("reading profile %q: %w", name, err)
	}

	var spec map[string]interface{}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing profile %q: %w", name, err)
	}
	return spec, nil
}
