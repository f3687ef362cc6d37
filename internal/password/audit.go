package password

import (
	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

// Audit is a dictionary-aware strength analysis. Unlike Report it accounts
// for common words, keyboard walks and repeat patterns, so a long but
// guessable candidate can audit much worse than its structural estimate.
type Audit struct {
	Score            int
	Entropy          float64
	CrackTimeSeconds float64
	CrackTimeDisplay string
}

// AuditStrength runs a zxcvbn analysis of candidate. userInputs lists strings
// the candidate should not resemble (usernames, site names); may be nil.
func AuditStrength(candidate string, userInputs []string) Audit {
	result := zxcvbn.PasswordStrength(candidate, userInputs)
	return Audit{
		Score:            result.Score,
		Entropy:          result.Entropy,
		CrackTimeSeconds: result.CrackTime,
		CrackTimeDisplay: result.CrackTimeDisplay,
	}
}
