package userop

import (
	"errors"
	"math/big"

	"github.com/holiman/uint256"
)

// ToUint256 converts a *big.Int quantity to a 256-bit word.
// A nil input yields zero; values wider than 256 bits are reduced modulo 2^256,
// which is what the ABI word encoding does with them.
func ToUint256(b *big.Int) *uint256.Int {
	if b == nil {
		return new(uint256.Int)
	}
	word, _ := uint256.FromBig(new(big.Int).And(b, maxUint256))
	return word
}

// FromUint256 converts a 256-bit word back to a *big.Int.
func FromUint256(u *uint256.Int) (*big.Int, error) {
	if u == nil {
		return nil, errors.New("uint256 value cannot be nil")
	}
	return u.ToBig(), nil
}

// fitsUint256 reports whether b is a non-nil quantity representable as an
// unsigned 256-bit word.
func fitsUint256(b *big.Int) bool {
	if b == nil || b.Sign() < 0 {
		return false
	}
	_, overflow := uint256.FromBig(b)
	return !overflow
}

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// orZero returns b, or a fresh zero when b is nil.
func orZero(b *big.Int) *big.Int {
	if b == nil {
		return new(big.Int)
	}
	return b
}
