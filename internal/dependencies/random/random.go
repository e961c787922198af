package random

import (
	"crypto/rand"
	"math/big"
)

// Random abstracts randomness so that code generation and answer
// selection can be made deterministic in tests
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String generates a random string of length chars drawn from alphabet
	String(length int, alphabet string) string
}

// CryptoRandom is the production Random backed by crypto/rand
type CryptoRandom struct{}

// New creates a CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand does not fail in practice
		return 0
	}
	return int(v.Int64())
}

// String generates a random string of the given length from the given alphabet
func (r *CryptoRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	out := make([]byte, length)
	for i := range out {
		out[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(out)
}
