package random

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
)

// CryptoSource draws uniform integers from the operating system CSPRNG.
// rand.Int rejects out-of-range samples, so results carry no modulo bias.
type CryptoSource struct{}

var _ core.RandomSource = CryptoSource{}

// NewCryptoSource creates a new crypto-backed random source
func NewCryptoSource() CryptoSource {
	return CryptoSource{}
}

// Intn returns a uniform value in [0, n)
func (CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("random: invalid bound %d", n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("random: %w", err)
	}
	return int(v.Int64()), nil
}
