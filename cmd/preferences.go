package cmd

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/vsariola/motif"
	"github.com/vsariola/motif/perf"
	"gopkg.in/yaml.v2"
)

// Preferences are the user's defaults for playing scores. Flags override
// them.
type Preferences struct {
	Port       string        // prefix of the MIDI output to play to
	MinLatency time.Duration `yaml:"minlatency"`
	MaxLatency time.Duration `yaml:"maxlatency"`
	Player     string        // player of scores that do not name one
	YmlError   error         `yaml:"-"`
}

//go:embed preferences.yml
var defaultPreferencesYaml []byte

func loadDefaultPreferences() Preferences {
	p, err := parsePreferences(defaultPreferencesYaml, Preferences{})
	if err != nil {
		panic(fmt.Errorf("invalid default preferences: %w", err))
	}
	return p
}

// parsePreferences overlays the yaml on base. Fields missing from the yaml
// keep the values of base.
func parsePreferences(data []byte, base Preferences) (Preferences, error) {
	p := base
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return base, err
	}
	if err := p.validate(); err != nil {
		return base, err
	}
	return p, nil
}

func (p Preferences) validate() error {
	if err := checkLatencies(p.MinLatency, p.MaxLatency); err != nil {
		return err
	}
	if p.Player != "" && !slices.Contains(perf.DefaultPlayers[motif.Pitch]().Names(), p.Player) {
		return fmt.Errorf("unknown player %q", p.Player)
	}
	return nil
}

// checkLatencies reports latencies the MIDI player cannot sleep with.
func checkLatencies(minLatency, maxLatency time.Duration) error {
	if minLatency <= 0 || maxLatency < minLatency {
		return fmt.Errorf("invalid latencies: min %v, max %v", minLatency, maxLatency)
	}
	return nil
}

// preferencesPath is where the user's preferences.yml lives.
func preferencesPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "motif", "preferences.yml"), nil
}

// LoadPreferences reads the preferences file at path over the defaults. A
// missing file is not an error. If the file is invalid the defaults are
// returned with the error.
func LoadPreferences(path string) (Preferences, error) {
	def := loadDefaultPreferences()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	p, err := parsePreferences(data, def)
	if err != nil {
		return def, fmt.Errorf("%v: %w", path, err)
	}
	return p, nil
}

// MakePreferences loads the user's preferences, keeping any error in
// YmlError for the commands to report.
func MakePreferences() Preferences {
	path, err := preferencesPath()
	if err != nil {
		return loadDefaultPreferences()
	}
	p, err := LoadPreferences(path)
	p.YmlError = err
	return p
}
