package field

import (
	"math/big"

	"golang.org/x/crypto/blake2b"
)

// DefaultPrefix is the domain separation prefix used by [NewHasher].
const DefaultPrefix = "ECFIELD-BLAKE2B512-v1"

var defaultHasher = NewHasher()

// Hasher maps byte strings to field elements using BLAKE2b-512 with
// domain separation.
//
// Domain separation format: prefix + tag + input.
// The 64-byte digest is interpreted as a big-endian integer and reduced
// modulo the field prime, so the output bias is negligible for any
// 32-bit prime.
type Hasher struct {
	// Prefix is the domain separation prefix.
	Prefix string
}

// NewHasher creates a Hasher with [DefaultPrefix].
func NewHasher() *Hasher {
	return &Hasher{
		Prefix: DefaultPrefix,
	}
}

func (h *Hasher) digest(tag string, data ...[]byte) []byte {
	hasher, _ := blake2b.New512(nil)
	hasher.Write([]byte(h.Prefix))
	hasher.Write([]byte(tag))
	for _, d := range data {
		hasher.Write(d)
	}
	return hasher.Sum(nil)
}

// Hash hashes data under tag to an element of f.
func (h *Hasher) Hash(f *Field, tag string, data ...[]byte) (Element, error) {
	if err := f.valid(); err != nil {
		return Element{}, err
	}
	sum := h.digest(tag, data...)

	v := new(big.Int).SetBytes(sum)
	v.Mod(v, big.NewInt(int64(f.prime)))
	return New(int32(v.Int64()), f.prime)
}
