package passforge

import (
	"errors"
	"testing"
)

func TestFacade(t *testing.T) {
	pw, err := Generate(DefaultConfig())
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if len(pw) != 16 {
		t.Errorf("length = %d, want 16", len(pw))
	}

	if report := EstimateStrength(pw); report.Category != VeryStrong {
		// 16 chars with all classes guaranteed scores the maximum.
		t.Errorf("category = %s, want %s", report.Category, VeryStrong)
	}

	if _, err := GenerateWithProfile("unknown-name"); !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("error = %v, want ErrUnknownProfile", err)
	}
	if _, err := Generate(GenerationConfig{Length: 0}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}

	// Every exported type is producible through the facade alone.
	var audit Audit = AuditStrength("password", nil)
	if audit.Score > 1 {
		t.Errorf("audit score for common word = %d, want <= 1", audit.Score)
	}
	memorable, err := GenerateMemorable()
	if err != nil {
		t.Fatalf("GenerateMemorable() unexpected error: %v", err)
	}
	if len(memorable) < 4 {
		t.Errorf("GenerateMemorable() = %q, too short", memorable)
	}
}
