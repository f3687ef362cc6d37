package password

import (
	"crypto/rand"
	"math/big"
)

// Source supplies the two random operations the generator needs. The default
// is backed by crypto/rand; tests inject a scripted implementation. Any
// production Source must draw from a cryptographically secure generator —
// output feeds authentication secrets.
//
// Alphabets are rune sequences: custom charsets may contain multi-byte
// characters and selection must be uniform over characters, not encoding
// bytes.
type Source interface {
	// Choice returns one uniformly chosen rune of alphabet.
	Choice(alphabet string) (rune, error)
	// Shuffle applies a uniformly random permutation to buf in place.
	Shuffle(buf []rune) error
}

// CryptoSource is the default Source, backed by crypto/rand. Safe for
// concurrent use.
type CryptoSource struct{}

func (CryptoSource) Choice(alphabet string) (rune, error) {
	runes := []rune(alphabet)
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(runes))))
	if err != nil {
		return 0, err
	}
	return runes[n.Int64()], nil
}

// Shuffle performs a Fisher-Yates shuffle using crypto/rand.
func (CryptoSource) Shuffle(buf []rune) error {
	for i := len(buf) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		buf[i], buf[j.Int64()] = buf[j.Int64()], buf[i]
	}
	return nil
}
