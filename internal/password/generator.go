// Package password generates random passwords and scores their strength.
// Generation draws from a cryptographically secure source; every call is
// independent and the package holds no mutable state.
package password

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig  = errors.New("invalid generation config")
	ErrUnknownProfile = errors.New("unknown profile")
)

// GenerationConfig selects the length and effective alphabet of a password.
// A non-empty Charset overrides the class flags entirely.
type GenerationConfig struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Digits    bool
	Symbols   bool
	Charset   string
}

// DefaultConfig returns sensible defaults: 16 characters with all classes enabled.
func DefaultConfig() GenerationConfig {
	return GenerationConfig{
		Length:    16,
		Lowercase: true,
		Uppercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Generator produces passwords from an injected random Source.
type Generator struct {
	src Source
}

// New creates a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{src: CryptoSource{}}
}

// NewWithSource creates a Generator over a caller-supplied Source. Intended
// for tests; production callers should use New.
func NewWithSource(src Source) *Generator {
	return &Generator{src: src}
}

// Generate creates one random password satisfying cfg.
//
// In class mode every enabled class is guaranteed at least one character in
// the output, provided cfg.Length is at least the number of enabled classes.
// When the length is smaller than that, the guarantee cannot hold for all
// classes and is dropped entirely: all positions draw uniformly from the
// effective alphabet. Custom-charset mode never applies the guarantee.
func (g *Generator) Generate(cfg GenerationConfig) (string, error) {
	if cfg.Length <= 0 {
		return "", fmt.Errorf("%w: length must be positive, got %d", ErrInvalidConfig, cfg.Length)
	}

	var pool string
	var requiredSets []string

	if cfg.Charset != "" {
		pool = dedupCharset(cfg.Charset)
	} else {
		if cfg.Lowercase {
			pool += LowercaseChars
			requiredSets = append(requiredSets, LowercaseChars)
		}
		if cfg.Uppercase {
			pool += UppercaseChars
			requiredSets = append(requiredSets, UppercaseChars)
		}
		if cfg.Digits {
			pool += DigitChars
			requiredSets = append(requiredSets, DigitChars)
		}
		if cfg.Symbols {
			pool += SymbolChars
			requiredSets = append(requiredSets, SymbolChars)
		}
	}

	if pool == "" {
		return "", fmt.Errorf("%w: effective alphabet is empty", ErrInvalidConfig)
	}

	if cfg.Length < len(requiredSets) {
		requiredSets = nil
	}

	result := make([]rune, cfg.Length)

	// Seed one character from each enabled class.
	for i, charset := range requiredSets {
		ch, err := g.src.Choice(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Fill the remaining positions from the full pool.
	for i := len(requiredSets); i < cfg.Length; i++ {
		ch, err := g.src.Choice(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Shuffle so seeded characters are not predictably positioned.
	if err := g.src.Shuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// GenerateMany creates count passwords by independent Generate calls. Outputs
// are not deduplicated. On any error no partial result is returned.
func (g *Generator) GenerateMany(cfg GenerationConfig, count int) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", ErrInvalidConfig, count)
	}

	passwords := make([]string, count)
	for i := range passwords {
		pw, err := g.Generate(cfg)
		if err != nil {
			return nil, err
		}
		passwords[i] = pw
	}
	return passwords, nil
}

// GenerateWithProfile resolves a builtin profile by name and delegates to
// Generate.
func (g *Generator) GenerateWithProfile(name string) (string, error) {
	profile, ok := Profiles[name]
	if !ok {
		return "", fmt.Errorf("%w: %q (available: %s)", ErrUnknownProfile, name, ProfileNames())
	}
	return g.Generate(profile.Config())
}

// GenerateWithCustomCharset builds a custom-alphabet config from the
// deduplicated characters of charset and delegates to Generate.
func (g *Generator) GenerateWithCustomCharset(length int, charset string) (string, error) {
	deduped := dedupCharset(charset)
	if deduped == "" {
		return "", fmt.Errorf("%w: custom charset is empty", ErrInvalidConfig)
	}
	return g.Generate(GenerationConfig{Length: length, Charset: deduped})
}

var defaultGenerator = New()

// Generate creates one password using the default crypto/rand generator.
func Generate(cfg GenerationConfig) (string, error) {
	return defaultGenerator.Generate(cfg)
}

// GenerateMany creates count passwords using the default generator.
func GenerateMany(cfg GenerationConfig, count int) ([]string, error) {
	return defaultGenerator.GenerateMany(cfg, count)
}

// GenerateWithProfile creates a password from a builtin profile using the
// default generator.
func GenerateWithProfile(name string) (string, error) {
	return defaultGenerator.GenerateWithProfile(name)
}

// GenerateWithCustomCharset creates a password over a custom alphabet using
// the default generator.
func GenerateWithCustomCharset(length int, charset string) (string, error) {
	return defaultGenerator.GenerateWithCustomCharset(length, charset)
}
