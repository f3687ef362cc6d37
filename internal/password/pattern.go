package password

import "fmt"

// patternClasses maps pattern codes to class alphabets.
var patternClasses = map[byte]string{
	'l': LowercaseChars,
	'u': UppercaseChars,
	'd': DigitChars,
	's': SymbolChars,
}

// GeneratePattern produces a password whose positions follow pattern: each
// byte of pattern is a class code (l=lowercase, u=uppercase, d=digit,
// s=symbol) and the output draws one random character of that class for the
// matching position. Positions are not shuffled; the pattern fixes them.
func (g *Generator) GeneratePattern(pattern string) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("%w: pattern is empty", ErrInvalidConfig)
	}

	result := make([]rune, len(pattern))
	for i := 0; i < len(pattern); i++ {
		alphabet, ok := patternClasses[pattern[i]]
		if !ok {
			return "", fmt.Errorf("%w: unknown pattern code %q (want l, u, d or s)", ErrInvalidConfig, string(pattern[i]))
		}
		ch, err := g.src.Choice(alphabet)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}
	return string(result), nil
}

// GeneratePattern produces a pattern password using the default generator.
func GeneratePattern(pattern string) (string, error) {
	return defaultGenerator.GeneratePattern(pattern)
}
