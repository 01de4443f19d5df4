// Package profile manages user conversion profiles stored in
// ~/.findingaid/profiles.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/findingaid/mapping"
)

// ErrNotFound is returned when a named user profile does not exist.
var ErrNotFound = errors.New("profile not found")

// configDirOverride holds a user-specified configuration directory.
// When empty, the default $HOME/.findingaid is used.
var configDirOverride string

// SetConfigDir overrides the default configuration directory.
func SetConfigDir(dir string) {
	configDirOverride = dir
}

// ConfigDir returns the findingaid configuration directory.
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".findingaid"), nil
}

// ProfilesDir returns the profiles directory.
func ProfilesDir() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "profiles"), nil
}

// EnsureProfilesDir creates the profiles directory if it doesn't exist.
func EnsureProfilesDir() error {
	dir, err := ProfilesDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// ProfilePath returns the path for a profile file.
func ProfilePath(name string) (string, error) {
	dir, err := ProfilesDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, sanitize(name)+".yaml"), nil
}

func sanitize(name string) string {
	name = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '-'
		}
		return r
	}, name)
}

// Save validates the profile and writes it to disk.
func Save(p *mapping.Profile) error {
	if p.Name == "" {
		return errors.New("profile has no name")
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if err := EnsureProfilesDir(); err != nil {
		return fmt.Errorf("creating profiles directory: %w", err)
	}

	path, err := ProfilePath(p.Name)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}

	return nil
}

// Load reads a profile from disk.
func Load(name string) (*mapping.Profile, error) {
	path, err := ProfilePath(name)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	p, err := mapping.LoadProfile(path)
	if err != nil {
		return nil, fmt.Errorf("loading profile %q: %w", name, err)
	}
	if p.Name == "" {
		p.Name = sanitize(name)
	}
	return p, nil
}

// List returns all available profile names, sorted.
func List() ([]string, error) {
	dir, err := ProfilesDir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading profiles directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") {
			names = append(names, strings.TrimSuffix(name, ".yaml"))
		}
	}
	slices.Sort(names)

	return names, nil
}

// Delete removes a profile.
func Delete(name string) error {
	path, err := ProfilePath(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return fmt.Errorf("deleting profile: %w", err)
	}

	return nil
}

// Exists checks if a profile exists.
func Exists(name string) bool {
	path, err := ProfilePath(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}
