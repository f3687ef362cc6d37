package password

import (
	"reflect"
	"testing"
)

func TestEstimateStrength(t *testing.T) {
	tests := []struct {
		name         string
		candidate    string
		wantCategory Category
		wantScore    int
	}{
		{
			name:         "empty string is weakest",
			candidate:    "",
			wantCategory: Weak,
			wantScore:    0,
		},
		{
			name:         "short lowercase",
			candidate:    "abcdefg",
			wantCategory: Weak,
			wantScore:    1,
		},
		{
			name:         "eight lowercase",
			candidate:    "abcdefgh",
			wantCategory: Weak,
			wantScore:    2,
		},
		{
			name:         "nine chars three classes",
			candidate:    "Abcdefgh1",
			wantCategory: Medium,
			wantScore:    4,
		},
		{
			name:         "twelve chars three classes",
			candidate:    "Abcdefghijk1",
			wantCategory: Strong,
			wantScore:    5,
		},
		{
			name:         "sixteen lowercase only",
			candidate:    "abcdefghijklmnop",
			wantCategory: Medium,
			wantScore:    4,
		},
		{
			name:         "sixteen chars all classes is strongest",
			candidate:    "Abcdefghijklm1!x",
			wantCategory: VeryStrong,
			wantScore:    7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := EstimateStrength(tt.candidate)
			if report.Category != tt.wantCategory {
				t.Errorf("category = %s, want %s", report.Category, tt.wantCategory)
			}
			if report.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", report.Score, tt.wantScore)
			}
		})
	}
}

func TestEstimateStrengthIsPure(t *testing.T) {
	const candidate = "Tr0ub4dor&3"
	first := EstimateStrength(candidate)
	for i := 0; i < 10; i++ {
		if got := EstimateStrength(candidate); !reflect.DeepEqual(got, first) {
			t.Fatalf("EstimateStrength not pure: %+v != %+v", got, first)
		}
	}
}

func TestEstimateStrengthCriteria(t *testing.T) {
	report := EstimateStrength("Abcdefghijklm1!x")
	want := []string{
		"length >= 8",
		"length >= 12",
		"length >= 16",
		"contains lowercase",
		"contains uppercase",
		"contains digit",
		"contains symbol",
	}
	if !reflect.DeepEqual(report.Criteria, want) {
		t.Errorf("criteria = %v, want %v", report.Criteria, want)
	}
}

func TestCategoryString(t *testing.T) {
	if VeryStrong.String() != "Very Strong" {
		t.Errorf("VeryStrong.String() = %q", VeryStrong.String())
	}
	if Weak >= Medium || Medium >= Strong || Strong >= VeryStrong {
		t.Error("categories must be ordered Weak < Medium < Strong < VeryStrong")
	}
}
