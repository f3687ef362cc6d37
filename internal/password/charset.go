package password

import "strings"

// Class alphabets. Constant, never mutated.
const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars     = "0123456789"
	SymbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// NamedCharsets maps charset names accepted by the CLI's --use flag to their
// alphabets. no_similar excludes characters that are easy to confuse when read
// aloud or transcribed (0/O, 1/l/I, 2/Z).
var NamedCharsets = map[string]string{
	"hexadecimal":  "0123456789ABCDEF",
	"alphanumeric": LowercaseChars + UppercaseChars + DigitChars,
	"letters_only": LowercaseChars + UppercaseChars,
	"easy_symbols": "!@#$%&*+-=?",
	"no_similar":   "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ23456789!@#$%&*",
}

// dedupCharset removes repeated runes, keeping first occurrence order.
// Rune-based so multi-byte alphabets survive intact.
func dedupCharset(charset string) string {
	seen := make(map[rune]bool, len(charset))
	var b strings.Builder
	b.Grow(len(charset))
	for _, r := range charset {
		if !seen[r] {
			seen[r] = true
			b.WriteRune(r)
		}
	}
	return b.String()
}
