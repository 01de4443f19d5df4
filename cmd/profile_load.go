package cmd

import (
	"fmt"
	"log/slog"

	"github.com/lehigh-university-libraries/findingaid/mapping"
	"github.com/lehigh-university-libraries/findingaid/profile"
)

// loadProfile resolves the conversion profile: a profile file wins, then a
// user profile in ~/.findingaid/profiles, then an embedded one. The result
// is merged over the default profile.
func loadProfile(name, file string) (*mapping.Profile, error) {
	if file != "" {
		p, err := mapping.LoadProfile(file)
		if err != nil {
			return nil, err
		}
		return mapping.Resolve(p), nil
	}

	if name == "" {
		return mapping.Default(), nil
	}

	if profile.Exists(name) {
		p, err := profile.Load(name)
		if err != nil {
			return nil, fmt.Errorf("loading user profile: %w", err)
		}
		slog.Debug("using user profile", "name", p.Name)
		return mapping.Resolve(p), nil
	}

	registry, err := mapping.NewProfileRegistry()
	if err != nil {
		return nil, err
	}
	p, ok := registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown profile: %s (not found in ~/.findingaid/profiles/ or embedded profiles)", name)
	}
	return mapping.Resolve(p), nil
}
