package simplex

// Lattice hashing constants.
const (
	primeX         int64 = 0x5205402B9270C86F
	primeY         int64 = 0x598CD327003817B5
	primeZ         int64 = 0x5BCC226E9FA0BACB
	primeW         int64 = 0x56CC5227E58F554B
	hashMultiplier int64 = 0x53A3F72DEEC546F5
	seedFlip3D     int64 = -0x52D547B2E96ED629
	seedOffset4D   int64 = 0xE83DC3E0DA7164D

	// Doubled primes, wrapped to int64.
	primeX2 int64 = -0x5BF57FA8DB1E6F22
	primeY2 int64 = -0x4CE659B1FF8FD096
	primeZ2 int64 = -0x4867BB22C0BE8A6A
)

// Table sizes in entries, not vectors.
const (
	gradients2DSize = 128 * 2
	gradients3DSize = 256 * 4
	gradients4DSize = 512 * 4
)

// gradientSet holds one kernel's normalized gradient tables.
type gradientSet struct {
	g2 []float32
	g3 []float32
	g4 []float32
}

// newGradients normalizes the base directions by each kernel's per-dimension
// normalizer and repeats them to fill the power-of-two tables. 3D vectors are
// padded to a stride of four.
func newGradients(n2, n3, n4 float64) *gradientSet {
	return &gradientSet{
		g2: repeat(gradients2DBase, 2, 2, gradients2DSize, n2),
		g3: repeat(gradients3DBase, 3, 4, gradients3DSize, n3),
		g4: repeat(gradients4DBase, 4, 4, gradients4DSize, n4),
	}
}

func repeat(base []float64, width, stride, size int, norm float64) []float32 {
	vectors := len(base) / width
	out := make([]float32, size)
	for i := 0; i < size/stride; i++ {
		src := base[(i%vectors)*width:]
		for j := 0; j < width; j++ {
			out[i*stride+j] = float32(float64(float32(src[j])) / norm)
		}
	}
	return out
}

func (g *gradientSet) grad2(seed, xp, yp int64, dx, dy float32) float32 {
	h := (seed ^ xp ^ yp) * hashMultiplier
	h ^= h >> (64 - 7 + 1)
	gi := int(int32(h)) & (127 << 1)
	return g.g2[gi]*dx + g.g2[gi|1]*dy
}

func (g *gradientSet) grad3(seed, xp, yp, zp int64, dx, dy, dz float32) float32 {
	h := (seed ^ xp ^ yp ^ zp) * hashMultiplier
	h ^= h >> (64 - 8 + 2)
	gi := int(int32(h)) & (255 << 2)
	return (g.g3[gi]*dx + g.g3[gi|1]*dy) + g.g3[gi|2]*dz
}

func (g *gradientSet) grad4(seed, xp, yp, zp, wp int64, dx, dy, dz, dw float32) float32 {
	h := (seed ^ xp ^ yp ^ zp ^ wp) * hashMultiplier
	h ^= h >> (64 - 9 + 2)
	gi := int(int32(h)) & (511 << 2)
	return (g.g4[gi]*dx + g.g4[gi|1]*dy) + (g.g4[gi|2]*dz + g.g4[gi|3]*dw)
}

func fastFloor(x float64) int64 {
	xi := int64(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}

func fastRound(x float64) int64 {
	if x < 0 {
		return int64(x - 0.5)
	}
	return int64(x + 0.5)
}

// attn4 raises a positive attenuation to the fourth power.
func attn4(a float32) float32 {
	return (a * a) * (a * a)
}
