package whirl

// gamma is the golden-ratio increment shared by the additive
// generators and the seeding paths.
const gamma uint64 = 0x9E3779B97F4A7C15

// MixFast scrambles x with the SplitMix64 finalizer. Cheapest of the
// three mixers; adequate for seeding and hashing small keys.
func MixFast(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// MixStrong scrambles x with the Moremur finalizer, a stronger
// avalanche than MixFast at the cost of one more shift.
func MixStrong(x uint64) uint64 {
	x ^= x >> 27
	x *= 0x3C79AC492BA7B653
	x ^= x >> 33
	x *= 0x1C69B3F74AC4AE35
	x ^= x >> 27
	return x
}

// MixMX scrambles x with the MX3 finalizer, the most thorough mixer
// here; use it when the input bits are badly distributed.
func MixMX(x uint64) uint64 {
	const m = 0xBEA225F9EB34556D
	x ^= x >> 32
	x *= m
	x ^= x >> 29
	x *= m
	x ^= x >> 32
	x *= m
	x ^= x >> 29
	return x
}
