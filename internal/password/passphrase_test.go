package password

import (
	"errors"
	"strings"
	"testing"
)

func TestGeneratePassphrase(t *testing.T) {
	phrase, err := GeneratePassphrase(4, "-")
	if err != nil {
		t.Fatalf("GeneratePassphrase() unexpected error: %v", err)
	}

	words := strings.Split(phrase, "-")
	if len(words) != 4 {
		t.Fatalf("got %d words, want 4: %q", len(words), phrase)
	}
	for _, w := range words {
		if w == "" {
			t.Errorf("empty word in passphrase %q", phrase)
		}
	}
}

func TestGeneratePassphraseCustomSeparator(t *testing.T) {
	phrase, err := GeneratePassphrase(3, ".")
	if err != nil {
		t.Fatalf("GeneratePassphrase() unexpected error: %v", err)
	}
	if got := len(strings.Split(phrase, ".")); got != 3 {
		t.Errorf("got %d words, want 3: %q", got, phrase)
	}
}

func TestGeneratePassphraseRejectsNonPositiveCount(t *testing.T) {
	for _, words := range []int{0, -1} {
		if _, err := GeneratePassphrase(words, "-"); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("GeneratePassphrase(%d) error = %v, want ErrInvalidConfig", words, err)
		}
	}
}

func TestGenerateMemorable(t *testing.T) {
	pw, err := GenerateMemorable()
	if err != nil {
		t.Fatalf("GenerateMemorable() unexpected error: %v", err)
	}
	if len(pw) < 4 {
		t.Fatalf("GenerateMemorable() = %q, too short", pw)
	}

	if pw[0] < 'A' || pw[0] > 'Z' {
		t.Errorf("first character %q is not uppercase", string(pw[0]))
	}
	if !strings.Contains(SymbolChars, string(pw[len(pw)-1])) {
		t.Errorf("last character %q is not a symbol", string(pw[len(pw)-1]))
	}
	for _, ch := range pw[len(pw)-3 : len(pw)-1] {
		if ch < '0' || ch > '9' {
			t.Errorf("expected digit before trailing symbol, got %q in %q", string(ch), pw)
		}
	}
}
