package simplex

// OpenSimplex2S "super" kernel: larger vertex radius, more contributing
// vertices per sample and smoother output than the fast kernel.

const (
	superN2 = 0.05481866495625118
	superN3 = 0.2781926117527186
	superN4 = 0.11127401889945551

	superR2 float32 = 2.0 / 3.0
	superR3 float32 = 0.75
	superR4 float32 = 0.8

	superSkew4D   float32 = 0.309016994374947
	superUnskew4D float32 = -0.138196601125011
)

var superGradients = newGradients(superN2, superN3, superN4)

// vertex4 is one candidate 4D lattice vertex relative to the base cell.
type vertex4 struct {
	dx, dy, dz, dw float32
	xp, yp, zp, wp int64
}

// vertices4D decodes every two-bit-per-axis vertex code used by lookup4D.
var vertices4D = func() [256]vertex4 {
	var out [256]vertex4
	for code := range out {
		xsv := int64(code&3) - 1
		ysv := int64(code>>2&3) - 1
		zsv := int64(code>>4&3) - 1
		wsv := int64(code>>6&3) - 1
		ssv := float32(xsv+ysv+zsv+wsv) * superUnskew4D
		out[code] = vertex4{
			dx: float32(-xsv) - ssv,
			dy: float32(-ysv) - ssv,
			dz: float32(-zsv) - ssv,
			dw: float32(-wsv) - ssv,
			xp: xsv * primeX,
			yp: ysv * primeY,
			zp: zsv * primeZ,
			wp: wsv * primeW,
		}
	}
	return out
}()

type superLattice struct{}

func (superLattice) base2(seed int64, xs, ys float64) float32 {
	g := superGradients
	xsb, ysb := fastFloor(xs), fastFloor(ys)
	xi, yi := float32(xs-float64(xsb)), float32(ys-float64(ysb))

	xp, yp := xsb*primeX, ysb*primeY

	t := (xi + yi) * unskew2DF
	dx0, dy0 := xi+t, yi+t

	var value float32
	contribute := func(dx, dy float32, hx, hy int64) {
		if a := (superR2 - dx*dx) - dy*dy; a > 0 {
			value += attn4(a) * g.grad2(seed, hx, hy, dx, dy)
		}
	}

	a0 := (superR2 - dx0*dx0) - dy0*dy0
	if a0 > 0 {
		value = attn4(a0) * g.grad2(seed, xp, yp, dx0, dy0)
	}
	if a1 := fastA1Mul*t + (fastA1Add + a0); a1 > 0 {
		dx1, dy1 := dx0-onePlus2Unskew, dy0-onePlus2Unskew
		value += attn4(a1) * g.grad2(seed, xp+primeX, yp+primeY, dx1, dy1)
	}

	xmyi := xi - yi
	if float64(t) < unskew2D {
		if xi+xmyi > 1 {
			contribute(dx0-threeUnskewPlus2, dy0-threeUnskewPlus1, xp+primeX2, yp+primeY)
		} else {
			contribute(dx0-unskew2DF, dy0-unskewPlus1, xp, yp+primeY)
		}
		if yi-xmyi > 1 {
			contribute(dx0-threeUnskewPlus1, dy0-threeUnskewPlus2, xp+primeX, yp+primeY2)
		} else {
			contribute(dx0-unskewPlus1, dy0-unskew2DF, xp+primeX, yp)
		}
	} else {
		if xi+xmyi < 0 {
			contribute(dx0+unskewPlus1, dy0+unskew2DF, xp-primeX, yp)
		} else {
			contribute(dx0-unskewPlus1, dy0-unskew2DF, xp+primeX, yp)
		}
		if yi < xmyi {
			contribute(dx0+unskew2DF, dy0+unskewPlus1, xp, yp-primeY)
		} else {
			contribute(dx0-unskew2DF, dy0-unskewPlus1, xp, yp+primeY)
		}
	}
	return value
}

// base3 evaluates the two interleaved cubic lattices, choosing among the
// vertices that can reach the sample by which octant of each cell it lies in.
func (superLattice) base3(seed int64, xr, yr, zr float64) float32 {
	g := superGradients
	xrb, yrb, zrb := fastFloor(xr), fastFloor(yr), fastFloor(zr)
	xi := float32(xr - float64(xrb))
	yi := float32(yr - float64(yrb))
	zi := float32(zr - float64(zrb))

	xrbp, yrbp, zrbp := xrb*primeX, yrb*primeY, zrb*primeZ
	seed2 := seed ^ seedFlip3D

	// -1 if positive, 0 if negative.
	xNMask := int64(-0.5 - xi)
	yNMask := int64(-0.5 - yi)
	zNMask := int64(-0.5 - zi)

	atten := func(dx, dy, dz float32) float32 {
		return ((superR3 - dx*dx) - dy*dy) - dz*dz
	}

	var value float32
	contribute := func(a float32, s, hx, hy, hz int64, dx, dy, dz float32) {
		if a > 0 {
			value += attn4(a) * g.grad3(s, hx, hy, hz, dx, dy, dz)
		}
	}

	x0 := xi + float32(xNMask)
	y0 := yi + float32(yNMask)
	z0 := zi + float32(zNMask)
	a0 := atten(x0, y0, z0)
	contribute(a0, seed, xrbp+(xNMask&primeX), yrbp+(yNMask&primeY), zrbp+(zNMask&primeZ), x0, y0, z0)

	x1, y1, z1 := xi-0.5, yi-0.5, zi-0.5
	a1 := atten(x1, y1, z1)
	contribute(a1, seed2, xrbp+primeX, yrbp+primeY, zrbp+primeZ, x1, y1, z1)

	xAFlipMask0 := float32((xNMask|1)<<1) * x1
	yAFlipMask0 := float32((yNMask|1)<<1) * y1
	zAFlipMask0 := float32((zNMask|1)<<1) * z1
	xAFlipMask1 := float32(-2-(xNMask<<2))*x1 - 1.0
	yAFlipMask1 := float32(-2-(yNMask<<2))*y1 - 1.0
	zAFlipMask1 := float32(-2-(zNMask<<2))*z1 - 1.0

	xSign, ySign, zSign := float32(xNMask|1), float32(yNMask|1), float32(zNMask|1)
	var skip5, skip9, skipD bool

	if a2 := xAFlipMask0 + a0; a2 > 0 {
		contribute(a2, seed, xrbp+(^xNMask&primeX), yrbp+(yNMask&primeY), zrbp+(zNMask&primeZ), x0-xSign, y0, z0)
	} else {
		a3 := (yAFlipMask0 + zAFlipMask0) + a0
		contribute(a3, seed, xrbp+(xNMask&primeX), yrbp+(^yNMask&primeY), zrbp+(^zNMask&primeZ), x0, y0-ySign, z0-zSign)

		if a4 := xAFlipMask1 + a1; a4 > 0 {
			contribute(a4, seed2, xrbp+(xNMask&primeX2), yrbp+primeY, zrbp+primeZ, xSign+x1, y1, z1)
			skip5 = true
		}
	}

	if a6 := yAFlipMask0 + a0; a6 > 0 {
		contribute(a6, seed, xrbp+(xNMask&primeX), yrbp+(^yNMask&primeY), zrbp+(zNMask&primeZ), x0, y0-ySign, z0)
	} else {
		a7 := (xAFlipMask0 + zAFlipMask0) + a0
		contribute(a7, seed, xrbp+(^xNMask&primeX), yrbp+(yNMask&primeY), zrbp+(^zNMask&primeZ), x0-xSign, y0, z0-zSign)

		if a8 := yAFlipMask1 + a1; a8 > 0 {
			contribute(a8, seed2, xrbp+primeX, yrbp+(yNMask&primeY2), zrbp+primeZ, x1, ySign+y1, z1)
			skip9 = true
		}
	}

	if aA := zAFlipMask0 + a0; aA > 0 {
		contribute(aA, seed, xrbp+(xNMask&primeX), yrbp+(yNMask&primeY), zrbp+(^zNMask&primeZ), x0, y0, z0-zSign)
	} else {
		aB := (xAFlipMask0 + yAFlipMask0) + a0
		contribute(aB, seed, xrbp+(^xNMask&primeX), yrbp+(^yNMask&primeY), zrbp+(zNMask&primeZ), x0-xSign, y0-ySign, z0)

		if aC := zAFlipMask1 + a1; aC > 0 {
			contribute(aC, seed2, xrbp+primeX, yrbp+primeY, zrbp+(zNMask&primeZ2), x1, y1, zSign+z1)
			skipD = true
		}
	}

	if !skip5 {
		a5 := (yAFlipMask1 + zAFlipMask1) + a1
		contribute(a5, seed2, xrbp+primeX, yrbp+(yNMask&primeY2), zrbp+(zNMask&primeZ2), x1, ySign+y1, zSign+z1)
	}
	if !skip9 {
		a9 := (xAFlipMask1 + zAFlipMask1) + a1
		contribute(a9, seed2, xrbp+(xNMask&primeX2), yrbp+primeY, zrbp+(zNMask&primeZ2), xSign+x1, y1, zSign+z1)
	}
	if !skipD {
		aD := (xAFlipMask1 + yAFlipMask1) + a1
		contribute(aD, seed2, xrbp+(xNMask&primeX2), yrbp+(yNMask&primeY2), zrbp+primeZ, xSign+x1, ySign+y1, z1)
	}
	return value
}

// base4 sums the vertices listed for the sample's region of the cell.
func (superLattice) base4(seed int64, xs, ys, zs, ws float64) float32 {
	g := superGradients
	xsb, ysb, zsb, wsb := fastFloor(xs), fastFloor(ys), fastFloor(zs), fastFloor(ws)
	xsi := float32(xs - float64(xsb))
	ysi := float32(ys - float64(ysb))
	zsi := float32(zs - float64(zsb))
	wsi := float32(ws - float64(wsb))

	ssi := (((xsi + ysi) + zsi) + wsi) * superUnskew4D
	xi, yi, zi, wi := xsi+ssi, ysi+ssi, zsi+ssi, wsi+ssi

	xsvp, ysvp, zsvp, wsvp := xsb*primeX, ysb*primeY, zsb*primeZ, wsb*primeW

	index := fastFloor(xs*4)&3 | (fastFloor(ys*4)&3)<<2 | (fastFloor(zs*4)&3)<<4 | (fastFloor(ws*4)&3)<<6

	var value float32
	for _, code := range lookup4D[index] {
		v := &vertices4D[code]
		dx, dy, dz, dw := xi+v.dx, yi+v.dy, zi+v.dz, wi+v.dw
		a := (dx*dx + dy*dy) + (dz*dz + dw*dw)
		if a < superR4 {
			a -= superR4
			a *= a
			value += (a * a) * g.grad4(seed, xsvp+v.xp, ysvp+v.yp, zsvp+v.zp, wsvp+v.wp, dx, dy, dz, dw)
		}
	}
	return value
}
