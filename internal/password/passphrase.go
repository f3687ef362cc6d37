package password

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/brianvoe/gofakeit/v7/source"
)

// DefaultSeparator joins passphrase words unless the caller overrides it.
const DefaultSeparator = "-"

// faker draws words from gofakeit over a crypto-secure source, keeping the
// secure-RNG requirement intact for word selection. The lock flag makes it
// safe for concurrent use.
var faker = gofakeit.NewFaker(source.NewCrypto(), true)

// GeneratePassphrase produces words random words joined by separator. An
// empty separator falls back to DefaultSeparator.
func GeneratePassphrase(words int, separator string) (string, error) {
	if words < 1 {
		return "", fmt.Errorf("%w: word count must be positive, got %d", ErrInvalidConfig, words)
	}
	if separator == "" {
		separator = DefaultSeparator
	}

	parts := make([]string, words)
	for i := range parts {
		parts[i] = faker.Word()
	}
	return strings.Join(parts, separator), nil
}

// GenerateMemorable produces a password that is easy to retype: a capitalized
// random word followed by two digits and a symbol.
func GenerateMemorable() (string, error) {
	word := faker.Word()
	if len(word) > 0 {
		word = strings.ToUpper(word[:1]) + word[1:]
	}

	src := defaultGenerator.src
	var b strings.Builder
	b.WriteString(word)
	for i := 0; i < 2; i++ {
		d, err := src.Choice(DigitChars)
		if err != nil {
			return "", err
		}
		b.WriteRune(d)
	}
	s, err := src.Choice(SymbolChars)
	if err != nil {
		return "", err
	}
	b.WriteRune(s)

	return b.String(), nil
}
