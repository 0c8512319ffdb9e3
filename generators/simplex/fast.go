package simplex

// OpenSimplex2 "fast" kernel. All lattice arithmetic is float32 and the
// operation order is significant: reordering changes low bits of the output.

const (
	skew2D     = 0.366025403784439
	unskew2D   = -0.21132486540518713
	root2Over2 = 0.7071067811865476
	root3Over3 = 0.577350269189626

	unskew2DF float32 = -0.21132486540518713

	fastN2 = 0.01001634121365712
	fastN3 = 0.07969837668935331
	fastN4 = 0.0220065933241897

	fastR2 float32 = 0.5
	fastR3 float32 = 0.6
	fastR4 float32 = 0.6

	// Precomputed float32 forms of compound unskew expressions.
	fastA1Mul        float32 = -3.154700517654419  // 2(1+2u)(1/u+2)
	fastA1Add        float32 = -0.6666666865348816 // -2(1+2u)^2
	onePlus2Unskew   float32 = 0.5773502588272095  // 1+2u
	unskewPlus1      float32 = 0.7886751294136047  // u+1
	threeUnskewPlus2 float32 = 1.366025447845459   // 3u+2
	threeUnskewPlus1 float32 = 0.3660254180431366  // 3u+1

	fastSkew4D   float32 = -0.138196601125011
	fastUnskew4D float32 = 0.309016994374947
	fastStep4D   float32 = 0.2
	fastStep4DU  float32 = 0.24721360206604004 // (step*4)*unskew
)

var fastGradients = newGradients(fastN2, fastN3, fastN4)

type fastLattice struct{}

func (fastLattice) base2(seed int64, xs, ys float64) float32 {
	g := fastGradients
	xsb, ysb := fastFloor(xs), fastFloor(ys)
	xi, yi := float32(xs-float64(xsb)), float32(ys-float64(ysb))

	xp, yp := xsb*primeX, ysb*primeY

	t := (xi + yi) * unskew2DF
	dx0, dy0 := xi+t, yi+t

	var value float32
	a0 := (fastR2 - dx0*dx0) - dy0*dy0
	if a0 > 0 {
		value = attn4(a0) * g.grad2(seed, xp, yp, dx0, dy0)
	}

	a1 := fastA1Mul*t + (fastA1Add + a0)
	if a1 > 0 {
		dx1, dy1 := dx0-onePlus2Unskew, dy0-onePlus2Unskew
		value += attn4(a1) * g.grad2(seed, xp+primeX, yp+primeY, dx1, dy1)
	}

	if dy0 > dx0 {
		dx2, dy2 := dx0-unskew2DF, dy0-unskewPlus1
		a2 := (fastR2 - dx2*dx2) - dy2*dy2
		if a2 > 0 {
			value += attn4(a2) * g.grad2(seed, xp, yp+primeY, dx2, dy2)
		}
	} else {
		dx2, dy2 := dx0-unskewPlus1, dy0-unskew2DF
		a2 := (fastR2 - dx2*dx2) - dy2*dy2
		if a2 > 0 {
			value += attn4(a2) * g.grad2(seed, xp+primeX, yp, dx2, dy2)
		}
	}
	return value
}

// base3 evaluates two offset body-centred cubic lattices on rotated
// coordinates, searching the closest vertex and the next along one axis.
func (fastLattice) base3(seed int64, xr, yr, zr float64) float32 {
	g := fastGradients
	xrb, yrb, zrb := fastRound(xr), fastRound(yr), fastRound(zr)
	xri := float32(xr - float64(xrb))
	yri := float32(yr - float64(yrb))
	zri := float32(zr - float64(zrb))

	xNSign := int64(-1.0-xri) | 1
	yNSign := int64(-1.0-yri) | 1
	zNSign := int64(-1.0-zri) | 1

	ax0 := float32(xNSign) * -xri
	ay0 := float32(yNSign) * -yri
	az0 := float32(zNSign) * -zri

	xrbp, yrbp, zrbp := xrb*primeX, yrb*primeY, zrb*primeZ

	var value float32
	a := (fastR3 - xri*xri) - (yri*yri + zri*zri)
	for l := 0; ; l++ {
		if a > 0 {
			value += attn4(a) * g.grad3(seed, xrbp, yrbp, zrbp, xri, yri, zri)
		}

		switch {
		case ax0 >= ay0 && ax0 >= az0:
			if b := (a + ax0) + ax0; b > 1 {
				b -= 1
				value += attn4(b) * g.grad3(seed, xrbp-xNSign*primeX, yrbp, zrbp, xri+float32(xNSign), yri, zri)
			}
		case ay0 > ax0 && ay0 >= az0:
			if b := (a + ay0) + ay0; b > 1 {
				b -= 1
				value += attn4(b) * g.grad3(seed, xrbp, yrbp-yNSign*primeY, zrbp, xri, yri+float32(yNSign), zri)
			}
		default:
			if b := (a + az0) + az0; b > 1 {
				b -= 1
				value += attn4(b) * g.grad3(seed, xrbp, yrbp, zrbp-zNSign*primeZ, xri, yri, zri+float32(zNSign))
			}
		}

		if l == 1 {
			break
		}

		ax0, ay0, az0 = 0.5-ax0, 0.5-ay0, 0.5-az0
		xri = float32(xNSign) * ax0
		yri = float32(yNSign) * ay0
		zri = float32(zNSign) * az0

		a += (0.75 - ax0) - (ay0 + az0)

		xrbp += (xNSign >> 1) & primeX
		yrbp += (yNSign >> 1) & primeY
		zrbp += (zNSign >> 1) & primeZ

		xNSign, yNSign, zNSign = -xNSign, -yNSign, -zNSign

		seed ^= seedFlip3D
	}
	return value
}

// base4 walks the five lattice offsets of the 4D simplex-like cell.
func (fastLattice) base4(seed int64, xs, ys, zs, ws float64) float32 {
	g := fastGradients
	xsb, ysb, zsb, wsb := fastFloor(xs), fastFloor(ys), fastFloor(zs), fastFloor(ws)
	xsi := float32(xs - float64(xsb))
	ysi := float32(ys - float64(ysb))
	zsi := float32(zs - float64(zsb))
	wsi := float32(ws - float64(wsb))

	siSum := (xsi + ysi) + (zsi + wsi)
	startingLattice := int(float64(siSum) * 1.25)

	seed += int64(startingLattice) * seedOffset4D

	startingLatticeOffset := float32(startingLattice) * -fastStep4D
	xsi += startingLatticeOffset
	ysi += startingLatticeOffset
	zsi += startingLatticeOffset
	wsi += startingLatticeOffset

	ssi := (siSum + startingLatticeOffset*4) * fastUnskew4D

	xsvp, ysvp, zsvp, wsvp := xsb*primeX, ysb*primeY, zsb*primeZ, wsb*primeW

	var value float32
	for i := 0; ; i++ {
		score0 := 1.0 + float64(ssi)*(-1.0/float64(fastUnskew4D))
		switch {
		case xsi >= ysi && xsi >= zsi && xsi >= wsi && float64(xsi) >= score0:
			xsvp += primeX
			xsi -= 1
			ssi -= fastUnskew4D
		case ysi > xsi && ysi >= zsi && ysi >= wsi && float64(ysi) >= score0:
			ysvp += primeY
			ysi -= 1
			ssi -= fastUnskew4D
		case zsi > xsi && zsi > ysi && zsi >= wsi && float64(zsi) >= score0:
			zsvp += primeZ
			zsi -= 1
			ssi -= fastUnskew4D
		case wsi > xsi && wsi > ysi && wsi > zsi && float64(wsi) >= score0:
			wsvp += primeW
			wsi -= 1
			ssi -= fastUnskew4D
		}

		dx, dy, dz, dw := xsi+ssi, ysi+ssi, zsi+ssi, wsi+ssi
		a := (dx*dx + dy*dy) + (dz*dz + dw*dw)
		if a < fastR4 {
			a -= fastR4
			a *= a
			value += (a * a) * g.grad4(seed, xsvp, ysvp, zsvp, wsvp, dx, dy, dz, dw)
		}

		if i == 4 {
			break
		}

		xsi += fastStep4D
		ysi += fastStep4D
		zsi += fastStep4D
		wsi += fastStep4D
		ssi += fastStep4DU
		seed -= seedOffset4D

		if i == startingLattice {
			xsvp -= primeX
			ysvp -= primeY
			zsvp -= primeZ
			wsvp -= primeW
			seed += seedOffset4D * 5
		}
	}
	return value
}
