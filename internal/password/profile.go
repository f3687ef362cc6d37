package password

import (
	"sort"
	"strings"
)

// Profile is a named preset generation configuration.
type Profile struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Digits    bool
	Symbols   bool
}

// Config converts the profile into a GenerationConfig.
func (p Profile) Config() GenerationConfig {
	return GenerationConfig{
		Length:    p.Length,
		Lowercase: p.Lowercase,
		Uppercase: p.Uppercase,
		Digits:    p.Digits,
		Symbols:   p.Symbols,
	}
}

// Profiles holds the builtin presets. Defined at process start, never mutated.
var Profiles = map[string]Profile{
	"weak": {
		Length:    8,
		Lowercase: true,
		Digits:    true,
	},
	"medium": {
		Length:    12,
		Lowercase: true,
		Uppercase: true,
		Digits:    true,
	},
	"strong": {
		Length:    16,
		Lowercase: true,
		Uppercase: true,
		Digits:    true,
		Symbols:   true,
	},
	"very_strong": {
		Length:    20,
		Lowercase: true,
		Uppercase: true,
		Digits:    true,
		Symbols:   true,
	},
}

// ProfileNames returns the builtin profile names, sorted, comma separated.
func ProfileNames() string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
