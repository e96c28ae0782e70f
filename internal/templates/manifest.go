package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// ErrNoManifest is returned when a store has no store.yaml.
var ErrNoManifest = errors.New("template store has no " + ManifestFile)

// Manifest describes a template store (store.yaml at its root).
type Manifest struct {
	Name     string            `yaml:"name"`
	Version  string            `yaml:"version"`
	Requires string            `yaml:"requires,omitempty"` // semver constraint on the CLI version
	Stack    map[string]string `yaml:"stack,omitempty"`
}

// Manifest reads and parses store.yaml.
func (s *Store) Manifest() (*Manifest, error) {
	data, err := fs.ReadFile(s.fsys, ManifestFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoManifest
		}
		return nil, fmt.Errorf("reading %s: %w", ManifestFile, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ManifestFile, err)
	}
	if m.Version != "" {
		if _, err := parseSemver(m.Version); err != nil {
			return nil, fmt.Errorf("%s: invalid version %q: %w", ManifestFile, m.Version, err)
		}
	}
	return &m, nil
}

// CheckCompatible verifies that cliVersion satisfies the store's requires
// constraint. Development builds whose version is not semver always pass.
func (m *Manifest) CheckCompatible(cliVersion string) error {
	if m.Requires == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(m.Requires)
	if err != nil {
		return fmt.Errorf("parsing requires constraint %q: %w", m.Requires, err)
	}
	v, err := parseSemver(cliVersion)
	if err != nil {
		return nil
	}
	if !constraint.Check(v) {
		return fmt.Errorf("template store %s %s requires CLI %s, running %s", m.Name, m.Version, m.Requires, cliVersion)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
