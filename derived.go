package whirl

import (
	"fmt"
	"math"
	"math/bits"
	"reflect"
)

// Uint64n returns a value in [0, bound) from one raw draw, or 0 when
// bound is 0. The reduction is a multiply-and-shift of the full draw
// against the bound; it trades a bias of at most bound/2^64 for a
// fixed draw count, which keeps bounded calls aligned with Skip.
func Uint64n(src Source, bound uint64) uint64 {
	return Uint64Range(src, 0, bound)
}

// Uint64Range returns a value in [inner, outer). When outer <= inner
// the result is inner. Exactly one raw draw is consumed either way.
func Uint64Range(src Source, inner, outer uint64) uint64 {
	u := src.Uint64()
	if outer <= inner {
		return inner
	}
	hi, _ := bits.Mul64(u, outer-inner)
	return inner + hi
}

// Int64n returns a value in [0, bound), or 0 when bound is not
// positive. Exactly one raw draw is consumed.
func Int64n(src Source, bound int64) int64 {
	return Int64Range(src, 0, bound)
}

// Int64Range returns a value in [inner, outer). When outer <= inner
// the result is inner. The width outer-inner is exact for the full
// int64 range via two's complement wraparound.
func Int64Range(src Source, inner, outer int64) int64 {
	u := src.Uint64()
	if outer <= inner {
		return inner
	}
	hi, _ := bits.Mul64(u, uint64(outer-inner))
	return inner + int64(hi)
}

// Intn returns a value in [0, n), or 0 when n is not positive.
func Intn(src Source, n int) int {
	return int(Int64Range(src, 0, int64(n)))
}

// Float64 returns a uniform dyadic rational in [0, 1): the top 53 bits
// of one raw draw scaled by 2^-53.
func Float64(src Source) float64 {
	return float64(src.Uint64()>>11) * 0x1p-53
}

// Float32 returns a uniform value in [0, 1) from the top 24 bits of
// one raw draw.
func Float32(src Source) float32 {
	return float32(src.Uint64()>>40) * 0x1p-24
}

// InclusiveFloat64 returns a value in (0, 1]; exactly 1.0 occurs with
// probability 2^-53.
func InclusiveFloat64(src Source) float64 {
	return float64(src.Uint64()>>11+1) * 0x1p-53
}

// InclusiveFloat32 returns a value in (0, 1]; exactly 1.0 occurs with
// probability 2^-24.
func InclusiveFloat32(src Source) float32 {
	return float32(src.Uint64()>>40+1) * 0x1p-24
}

// ExclusiveFloat64 returns a value strictly inside (0, 1). The
// exponent comes from the count of trailing zero bits of the raw draw
// and the mantissa from its top 52 bits, so coverage is finer near
// zero than the plain multiply approach can reach.
func ExclusiveFloat64(src Source) float64 {
	u := src.Uint64()
	return math.Float64frombits(uint64(1022-bits.TrailingZeros64(u))<<52 | u>>12)
}

// ExclusiveFloat32 returns a value strictly inside (0, 1), built the
// same way as ExclusiveFloat64 from one 64-bit draw.
func ExclusiveFloat32(src Source) float32 {
	u := src.Uint64()
	return math.Float32frombits(uint32(126-bits.TrailingZeros64(u))<<23 | uint32(u>>41))
}

// Acklam's rational approximations for the inverse normal CDF.
var (
	probitA = [6]float64{
		-3.969683028665376e+01, 2.209460984245205e+02, -2.759285104469687e+02,
		1.383577518672690e+02, -3.066479806614716e+01, 2.506628277459239e+00,
	}
	probitB = [5]float64{
		-5.447609879822406e+01, 1.615858368580409e+02, -1.556989798598866e+02,
		6.680131188771972e+01, -1.328068155288572e+01,
	}
	probitC = [6]float64{
		-7.784894002430293e-03, -3.223964580411365e-01, -2.400758277161838e+00,
		-2.549732539343734e+00, 4.374664141464968e+00, 2.938163982698783e+00,
	}
	probitD = [4]float64{
		7.784695709041462e-03, 3.224671290700398e-01, 2.445134137142996e+00,
		3.754408661907416e+00,
	}
)

// Probit maps a uniform d in (0, 1) to a standard-normal deviate with
// Acklam's algorithm. Inputs at or outside the domain clamp to -38.5
// and +38.5.
func Probit(d float64) float64 {
	switch {
	case d <= 0:
		return -38.5
	case d >= 1:
		return 38.5
	case d < 0.02425:
		q := math.Sqrt(-2 * math.Log(d))
		return (((((probitC[0]*q+probitC[1])*q+probitC[2])*q+probitC[3])*q+probitC[4])*q + probitC[5]) /
			((((probitD[0]*q+probitD[1])*q+probitD[2])*q+probitD[3])*q + 1)
	case d > 0.97575:
		q := math.Sqrt(-2 * math.Log(1-d))
		return -(((((probitC[0]*q+probitC[1])*q+probitC[2])*q+probitC[3])*q+probitC[4])*q + probitC[5]) /
			((((probitD[0]*q+probitD[1])*q+probitD[2])*q+probitD[3])*q + 1)
	default:
		q := d - 0.5
		r := q * q
		return (((((probitA[0]*r+probitA[1])*r+probitA[2])*r+probitA[3])*r+probitA[4])*r + probitA[5]) * q /
			(((((probitB[0]*r+probitB[1])*r+probitB[2])*r+probitB[3])*r+probitB[4])*r + 1)
	}
}

// Normal returns a normally distributed value with the given mean and
// standard deviation, from one raw draw.
func Normal(src Source, mean, stdDev float64) float64 {
	return Probit(ExclusiveFloat64(src))*stdDev + mean
}

// Shuffle performs a Fisher-Yates shuffle of items, consuming exactly
// len(items)-1 bounded draws.
func Shuffle[T any](src Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := int(Uint64n(src, uint64(i)+1))
		items[i], items[j] = items[j], items[i]
	}
}

// ShuffleRange shuffles items[offset : offset+length] in place.
func ShuffleRange[T any](src Source, items []T, offset, length int) error {
	if offset < 0 || length < 0 || offset+length > len(items) {
		return fmt.Errorf("whirl: shuffle range [%d, %d+%d) outside slice of length %d",
			offset, offset, length, len(items))
	}
	Shuffle(src, items[offset:offset+length])
	return nil
}

// Equal reports deep value equality: identical concrete type and
// identical state words. Generators that hide their state compare by
// full structural equality instead.
func Equal(a, b Source) bool {
	if a == nil || b == nil {
		return a == b
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if aw, ok := a.(Wrapper); ok {
		return Equal(aw.Unwrap(), b.(Wrapper).Unwrap())
	}
	if !a.Caps().Has(CapReadState) {
		return reflect.DeepEqual(a, b)
	}
	n := a.StateCount()
	if n != b.StateCount() {
		return false
	}
	for i := 0; i < n; i++ {
		av, err := a.State(i)
		if err != nil {
			return false
		}
		bv, err := b.State(i)
		if err != nil || av != bv {
			return false
		}
	}
	return true
}
