package password

import (
	"errors"
	"strings"
	"testing"
)

func TestGeneratePattern(t *testing.T) {
	gen := New()

	pw, err := gen.GeneratePattern("lluudds")
	if err != nil {
		t.Fatalf("GeneratePattern() unexpected error: %v", err)
	}
	if len(pw) != 7 {
		t.Fatalf("length = %d, want 7", len(pw))
	}

	wantClasses := []string{
		LowercaseChars, LowercaseChars,
		UppercaseChars, UppercaseChars,
		DigitChars, DigitChars,
		SymbolChars,
	}
	for i, alphabet := range wantClasses {
		if !strings.Contains(alphabet, string(pw[i])) {
			t.Errorf("position %d: %q not in expected class", i, string(pw[i]))
		}
	}
}

func TestGeneratePatternDeterministic(t *testing.T) {
	gen := NewWithSource(fakeSource{})
	pw, err := gen.GeneratePattern("luds")
	if err != nil {
		t.Fatalf("GeneratePattern() unexpected error: %v", err)
	}
	if pw != "aA0!" {
		t.Errorf("GeneratePattern() = %q, want %q", pw, "aA0!")
	}
}

func TestGeneratePatternErrors(t *testing.T) {
	gen := New()

	if _, err := gen.GeneratePattern(""); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("empty pattern error = %v, want ErrInvalidConfig", err)
	}
	if _, err := gen.GeneratePattern("llx"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown code error = %v, want ErrInvalidConfig", err)
	}
}
