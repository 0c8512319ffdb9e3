// Package hashing mixes seeded integer lattice coordinates into well-distributed
// integers. All arithmetic is two's-complement wrapping so results are stable
// across platforms.
package hashing

// Per-axis primes.
const (
	PrimeX = 1619
	PrimeY = 31337
	PrimeZ = 6971
	PrimeW = 1013
)

// valueScale maps an int32 onto [-1, 1).
const valueScale = 2147483648.0

func finalize(h int64) int32 {
	h = h * h * h * 60493
	return int32((h >> 13) ^ h)
}

// Hash1 hashes a 1D lattice coordinate.
func Hash1(seed, x int64) int32 {
	return finalize(seed ^ PrimeX*x)
}

// Hash2 hashes a 2D lattice coordinate.
func Hash2(seed, x, y int64) int32 {
	h := seed ^ PrimeX*x
	h ^= PrimeY * y
	return finalize(h)
}

// Hash3 hashes a 3D lattice coordinate.
func Hash3(seed, x, y, z int64) int32 {
	h := seed ^ PrimeX*x
	h ^= PrimeY * y
	h ^= PrimeZ * z
	return finalize(h)
}

// Hash4 hashes a 4D lattice coordinate.
func Hash4(seed, x, y, z, w int64) int32 {
	h := seed ^ PrimeX*x
	h ^= PrimeY * y
	h ^= PrimeZ * z
	h ^= PrimeW * w
	return finalize(h)
}

// Value1 returns the hashed scalar in [-1, 1) for a 1D lattice point.
func Value1(seed, x int64) float64 {
	return cube(int32(seed ^ PrimeX*x))
}

// Value2 returns the hashed scalar in [-1, 1) for a 2D lattice point.
func Value2(seed, x, y int64) float64 {
	n := int32(seed ^ PrimeX*x)
	n ^= int32(PrimeY * y)
	return cube(n)
}

// Value3 returns the hashed scalar in [-1, 1) for a 3D lattice point.
func Value3(seed, x, y, z int64) float64 {
	n := int32(seed ^ PrimeX*x)
	n ^= int32(PrimeY * y)
	n ^= int32(PrimeZ * z)
	return cube(n)
}

// Value4 returns the hashed scalar in [-1, 1) for a 4D lattice point.
func Value4(seed, x, y, z, w int64) float64 {
	n := int32(seed ^ PrimeX*x)
	n ^= int32(PrimeY * y)
	n ^= int32(PrimeZ * z)
	n ^= int32(PrimeW * w)
	return cube(n)
}

func cube(n int32) float64 {
	return float64(n*n*n*60493) / valueScale
}
