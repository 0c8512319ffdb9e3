package simplex

import (
	"github.com/pthm-cable/lattice/noise"
)

// Variant2D selects the 2D lattice orientation.
type Variant2D int

const (
	Classic2D Variant2D = iota
	// ImproveX points Y down the main diagonal, for views where Y is vertical.
	ImproveX
)

// Variant3D selects the 3D lattice orientation.
type Variant3D int

const (
	Classic3D Variant3D = iota
	// ImproveXY rotates so XY planar slices look best, Z being time or height.
	ImproveXY
	// ImproveXZ is ImproveXY for Y-up worlds.
	ImproveXZ
)

// Variant4D selects the 4D lattice orientation.
type Variant4D int

const (
	Classic4D Variant4D = iota
	ImproveXYImproveZW
	ImproveXYZImproveXZ
	ImproveXYZImproveXY
	ImproveXYZ
)

// lattice is one kernel's unskewed base evaluators plus the constants its
// 4D orientations differ in.
type lattice struct {
	base2 func(seed int64, xs, ys float64) float32
	base3 func(seed int64, xr, yr, zr float64) float32
	base4 func(seed int64, xs, ys, zs, ws float64) float32

	skew4 float64
	// w scale used by the ImproveXYZ family.
	wScale float64
	// ImproveXY_ImproveZW coefficients: s2 = xy*a + zw*b, t2 = zw*c + xy*d.
	zw [4]float64
}

var fastKernel = &lattice{
	base2:  fastLattice{}.base2,
	base3:  fastLattice{}.base3,
	base4:  fastLattice{}.base4,
	skew4:  float64(fastSkew4D),
	wScale: 0.2236067977499788,
	zw:     [4]float64{-0.178275657951399372, 0.215623393288842828, -0.403949762580207112, -0.375199083010075342},
}

var superKernel = &lattice{
	base2:  superLattice{}.base2,
	base3:  superLattice{}.base3,
	base4:  superLattice{}.base4,
	skew4:  float64(superSkew4D),
	wScale: 1.118033988749894,
	zw:     [4]float64{-0.28522513987434876941, 0.83897065470611435718, 0.21939749883706435719, -0.48214856493302476942},
}

func (l *lattice) noise2(seed int64, x, y float64) float32 {
	s := skew2D * (x + y)
	return l.base2(seed, x+s, y+s)
}

func (l *lattice) noise2ImproveX(seed int64, x, y float64) float32 {
	xx := x * root2Over2
	yy := y * (root2Over2 * (1 + 2*skew2D))
	return l.base2(seed, yy+xx, yy-xx)
}

func (l *lattice) noise3(seed int64, x, y, z float64) float32 {
	r := (2.0 / 3.0) * (x + y + z)
	return l.base3(seed, r-x, r-y, r-z)
}

func (l *lattice) noise3ImproveXY(seed int64, x, y, z float64) float32 {
	xy := x + y
	s2 := xy * -0.211324865405187
	zz := z * root3Over3
	return l.base3(seed, x+s2+zz, y+s2+zz, xy*-root3Over3+zz)
}

func (l *lattice) noise3ImproveXZ(seed int64, x, y, z float64) float32 {
	xz := x + z
	s2 := xz * -0.211324865405187
	yy := y * root3Over3
	return l.base3(seed, x+s2+yy, xz*-root3Over3+yy, z+s2+yy)
}

func (l *lattice) noise4(seed int64, x, y, z, w float64) float32 {
	s := l.skew4 * (x + y + z + w)
	return l.base4(seed, x+s, y+s, z+s, w+s)
}

func (l *lattice) noise4ImproveXYImproveZW(seed int64, x, y, z, w float64) float32 {
	s2 := (x+y)*l.zw[0] + (z+w)*l.zw[1]
	t2 := (z+w)*l.zw[2] + (x+y)*l.zw[3]
	return l.base4(seed, x+s2, y+s2, z+t2, w+t2)
}

func (l *lattice) noise4ImproveXYZImproveXZ(seed int64, x, y, z, w float64) float32 {
	xz := x + z
	s2 := xz * -0.21132486540518699998
	yy := y * 0.28867513459481294226
	ww := w * l.wScale
	xr, zr := x+(yy+ww+s2), z+(yy+ww+s2)
	yr := xz*-0.57735026918962599998 + (yy + ww)
	wr := y*-0.866025403784439 + ww
	return l.base4(seed, xr, yr, zr, wr)
}

func (l *lattice) noise4ImproveXYZImproveXY(seed int64, x, y, z, w float64) float32 {
	xy := x + y
	s2 := xy * -0.21132486540518699998
	zz := z * 0.28867513459481294226
	ww := w * l.wScale
	xr, yr := x+(zz+ww+s2), y+(zz+ww+s2)
	zr := xy*-0.57735026918962599998 + (zz + ww)
	wr := z*-0.866025403784439 + ww
	return l.base4(seed, xr, yr, zr, wr)
}

func (l *lattice) noise4ImproveXYZ(seed int64, x, y, z, w float64) float32 {
	xyz := x + y + z
	ww := w * l.wScale
	s2 := xyz*-0.16666666666666666 + ww
	return l.base4(seed, x+s2, y+s2, z+s2, -0.5*xyz+ww)
}

type (
	eval2Func func(seed int64, x, y float64) float32
	eval3Func func(seed int64, x, y, z float64) float32
	eval4Func func(seed int64, x, y, z, w float64) float32
)

func (l *lattice) resolve(v2 Variant2D, v3 Variant3D, v4 Variant4D) (eval2Func, eval3Func, eval4Func, error) {
	var (
		e2 eval2Func
		e3 eval3Func
		e4 eval4Func
	)
	switch v2 {
	case Classic2D:
		e2 = l.noise2
	case ImproveX:
		e2 = l.noise2ImproveX
	default:
		return nil, nil, nil, noise.Invalid("variant_2d", v2, "is not a 2D variant")
	}
	switch v3 {
	case Classic3D:
		e3 = l.noise3
	case ImproveXY:
		e3 = l.noise3ImproveXY
	case ImproveXZ:
		e3 = l.noise3ImproveXZ
	default:
		return nil, nil, nil, noise.Invalid("variant_3d", v3, "is not a 3D variant")
	}
	switch v4 {
	case Classic4D:
		e4 = l.noise4
	case ImproveXYImproveZW:
		e4 = l.noise4ImproveXYImproveZW
	case ImproveXYZImproveXZ:
		e4 = l.noise4ImproveXYZImproveXZ
	case ImproveXYZImproveXY:
		e4 = l.noise4ImproveXYZImproveXY
	case ImproveXYZ:
		e4 = l.noise4ImproveXYZ
	default:
		return nil, nil, nil, noise.Invalid("variant_4d", v4, "is not a 4D variant")
	}
	return e2, e3, e4, nil
}
