package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/field/babybear"
	"github.com/consensys/gnark-crypto/field/koalabear"
)

// BabyBear and KoalaBear moduli, read from gnark-crypto.
// Both are just below 2^31 and exercise the full width of an Element.
var (
	babyBearPrime  int32
	koalaBearPrime int32
)

func init() {
	babyBearPrime = modulus(babybear.Modulus())
	koalaBearPrime = modulus(koalabear.Modulus())
}

func modulus(q *big.Int) int32 {
	if !q.IsInt64() || q.Int64() > 1<<31-1 {
		panic("field: preset modulus does not fit in 31 bits")
	}
	return int32(q.Int64())
}

// BabyBear returns the field modulo 2^31 - 2^27 + 1.
func BabyBear() *Field {
	return &Field{prime: babyBearPrime}
}

// KoalaBear returns the field modulo 2^31 - 2^24 + 1.
func KoalaBear() *Field {
	return &Field{prime: koalaBearPrime}
}
