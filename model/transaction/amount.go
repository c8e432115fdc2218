package transaction

import "math/big"

// Amount is a 128-bit unsigned magnitude split into two 64-bit words, the way
// the chain encodes it on the wire. Hi is a first-class part of the value,
// not an overflow marker.
type Amount struct {
	Lo uint64 `json:"lo"`
	Hi uint64 `json:"hi"`
}

// NewAmount builds an amount from its low and high words.
func NewAmount(lo, hi uint64) *Amount {
	return &Amount{Lo: lo, Hi: hi}
}

// BigInt reconstructs the full magnitude as lo + hi<<64. A fixed 64-bit
// accumulator would silently truncate, so all arithmetic on amounts goes
// through math/big.
func (a *Amount) BigInt() *big.Int {
	if a == nil {
		return new(big.Int)
	}
	ret := new(big.Int).SetUint64(a.Hi)
	ret.Lsh(ret, 64)
	return ret.Add(ret, new(big.Int).SetUint64(a.Lo))
}

// IsZero reports whether both words are zero.
func (a *Amount) IsZero() bool {
	return a == nil || (a.Lo == 0 && a.Hi == 0)
}
