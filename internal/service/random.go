package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// cryptoPick returns a uniformly distributed index in [0, n).
func cryptoPick(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("cryptoPick: n must be positive, got %d", n)
	}

	idx, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("rand.Int -> %w", err)
	}

	return int(idx.Int64()), nil
}
