// Package passforge generates random passwords and estimates their strength.
// It is a thin facade over the internal generator; see cmd/passforge for the
// command-line interface.
package passforge

import "github.com/passforge/passforge-go/internal/password"

// Re-exported core types.
type (
	GenerationConfig = password.GenerationConfig
	Profile          = password.Profile
	Report           = password.Report
	Category         = password.Category
	Audit            = password.Audit
)

// Strength categories, weakest first.
const (
	Weak       = password.Weak
	Medium     = password.Medium
	Strong     = password.Strong
	VeryStrong = password.VeryStrong
)

var (
	ErrInvalidConfig  = password.ErrInvalidConfig
	ErrUnknownProfile = password.ErrUnknownProfile
)

// DefaultConfig returns 16 characters with all classes enabled.
func DefaultConfig() GenerationConfig { return password.DefaultConfig() }

// Generate creates one random password satisfying cfg.
func Generate(cfg GenerationConfig) (string, error) { return password.Generate(cfg) }

// GenerateMany creates count independent passwords.
func GenerateMany(cfg GenerationConfig, count int) ([]string, error) {
	return password.GenerateMany(cfg, count)
}

// GenerateWithProfile creates a password from a builtin profile
// (weak, medium, strong, very_strong).
func GenerateWithProfile(name string) (string, error) {
	return password.GenerateWithProfile(name)
}

// GenerateWithCustomCharset creates a password over the deduplicated
// characters of charset.
func GenerateWithCustomCharset(length int, charset string) (string, error) {
	return password.GenerateWithCustomCharset(length, charset)
}

// GeneratePassphrase produces random words joined by separator.
func GeneratePassphrase(words int, separator string) (string, error) {
	return password.GeneratePassphrase(words, separator)
}

// GenerateMemorable produces a capitalized random word followed by two digits
// and a symbol.
func GenerateMemorable() (string, error) {
	return password.GenerateMemorable()
}

// GeneratePattern produces a password following per-position class codes
// (l=lowercase, u=uppercase, d=digit, s=symbol).
func GeneratePattern(pattern string) (string, error) {
	return password.GeneratePattern(pattern)
}

// EstimateStrength scores a candidate from its length and character-class
// diversity.
func EstimateStrength(candidate string) Report {
	return password.EstimateStrength(candidate)
}

// AuditStrength runs a dictionary-aware zxcvbn analysis of candidate.
// userInputs lists strings the candidate should not resemble; may be nil.
func AuditStrength(candidate string, userInputs []string) Audit {
	return password.AuditStrength(candidate, userInputs)
}
