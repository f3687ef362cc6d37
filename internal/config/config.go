// Package config resolves CLI defaults from the environment and merges
// user-supplied profile and charset definitions over the builtin tables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/passforge/passforge-go/internal/password"
)

type Config struct {
	Length     int
	Count      int
	Profile    string
	ConfigFile string
}

func Load() Config {
	return Config{
		Length:     getEnvInt("PASSFORGE_LENGTH", 16),
		Count:      getEnvInt("PASSFORGE_COUNT", 1),
		Profile:    getEnv("PASSFORGE_PROFILE", ""),
		ConfigFile: getEnv("PASSFORGE_CONFIG", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// File is the on-disk config format: extra profiles and named charsets that
// overlay the builtins. All fields are optional.
type File struct {
	Profiles map[string]FileProfile `yaml:"profiles"`
	Charsets map[string]string      `yaml:"charsets"`
}

// FileProfile mirrors password.Profile with yaml tags.
type FileProfile struct {
	Length    int  `yaml:"length"`
	Lowercase bool `yaml:"lowercase"`
	Uppercase bool `yaml:"uppercase"`
	Digits    bool `yaml:"digits"`
	Symbols   bool `yaml:"symbols"`
}

// LoadFile parses and validates a YAML config file. The filesystem is
// injected so tests can run against an in-memory fs.
func LoadFile(fs afero.Fs, path string) (File, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return File{}, fmt.Errorf("reading config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	for name, p := range f.Profiles {
		if p.Length < 1 {
			return File{}, fmt.Errorf("config file %s: profile %q: length must be positive, got %d", path, name, p.Length)
		}
		if !p.Lowercase && !p.Uppercase && !p.Digits && !p.Symbols {
			return File{}, fmt.Errorf("config file %s: profile %q: no character classes enabled", path, name)
		}
	}
	for name, charset := range f.Charsets {
		if charset == "" {
			return File{}, fmt.Errorf("config file %s: charset %q is empty", path, name)
		}
	}

	return f, nil
}

// MergedProfiles returns the builtin profile table overlaid with the file's
// profiles. The builtin table itself is never mutated.
func (f File) MergedProfiles() map[string]password.Profile {
	merged := make(map[string]password.Profile, len(password.Profiles)+len(f.Profiles))
	for name, p := range password.Profiles {
		merged[name] = p
	}
	for name, p := range f.Profiles {
		merged[name] = password.Profile{
			Length:    p.Length,
			Lowercase: p.Lowercase,
			Uppercase: p.Uppercase,
			Digits:    p.Digits,
			Symbols:   p.Symbols,
		}
	}
	return merged
}

// MergedCharsets returns the builtin named charsets overlaid with the file's.
func (f File) MergedCharsets() map[string]string {
	merged := make(map[string]string, len(password.NamedCharsets)+len(f.Charsets))
	for name, cs := range password.NamedCharsets {
		merged[name] = cs
	}
	for name, cs := range f.Charsets {
		merged[name] = cs
	}
	return merged
}
