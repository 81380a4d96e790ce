package bigu

// Multiplication dispatch, the scalar tiny/general scalar paths, and
// schoolbook multiplication on slices. Karatsuba lives in karatsuba.go.
// mulSchool allocates a result of the combined operand length and
// accumulates each row with a running carry — widening multiply is a
// plain uint64 product, since a single limb < beta < 2^30 means
// limb*limb < 2^60 fits comfortably in uint64 without needing math/bits.

// karatsubaCutoff is the largest operand length (in limbs) multiplied by
// schoolbook rather than Karatsuba.
const karatsubaCutoff = 48

// Mul returns x * y.
func Mul(x, y BigU) BigU {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}
	if isOneLimbOne(x) {
		return y.Clone()
	}
	if isOneLimbOne(y) {
		return x.Clone()
	}
	xw, yw := x.w, y.w
	if len(xw) == 1 && isSmallTiny(xw[0]) {
		return mulSmallScalar(y, xw[0])
	}
	if len(yw) == 1 && isSmallTiny(yw[0]) {
		return mulSmallScalar(x, yw[0])
	}
	if len(xw) == 1 {
		return mulByU32(y, xw[0])
	}
	if len(yw) == 1 {
		return mulByU32(x, yw[0])
	}

	if max(len(xw), len(yw)) <= karatsubaCutoff {
		z := mulSchool(xw, yw, 0, len(xw), 0, len(yw))
		return fromLimbsNormalized(norm(z))
	}
	z := mulKaratsuba(xw, yw, 0, len(xw), 0, len(yw), karatsubaCutoff)
	return fromLimbsNormalized(norm(z))
}

func isOneLimbOne(x BigU) bool {
	return len(x.w) == 1 && x.w[0] == 1
}

func isSmallTiny(w Word) bool {
	return w == 2 || w == 3 || w == 4
}

func mulSmallScalar(x BigU, k Word) BigU {
	z := mulByTinyAssign(x.clone(), k)
	return fromLimbsNormalized(z)
}

// mulByU32 multiplies x by the scalar y via the schoolbook scalar pass:
// walk limbs, widen to uint64, split into limb + carry.
func mulByU32(x BigU, y Word) BigU {
	w := mulByU32Raw(x.w, y)
	return fromLimbsNormalized(norm(w))
}

func mulByU32Raw(xw []Word, y Word) []Word {
	z := make([]Word, len(xw))
	var carry uint64
	y64 := uint64(y)
	for i, xi := range xw {
		p := uint64(xi)*y64 + carry
		z[i] = Word(p % beta)
		carry = p / beta
	}
	for carry != 0 {
		z = append(z, Word(carry%beta))
		carry /= beta
	}
	return z
}

// MulByU32Assign sets x to x * y in place.
func MulByU32Assign(x *BigU, y Word) {
	*x = mulByU32(*x, y)
}

// mulSchool multiplies the slices x[lox:hix] and y[loy:hiy], returning an
// un-normalized result slice of length (hix-lox)+(hiy-loy).
func mulSchool(x, y []Word, lox, hix, loy, hiy int) []Word {
	nx := hix - lox
	ny := hiy - loy
	r := make([]Word, nx+ny)
	if nx == 0 || ny == 0 {
		return r
	}
	for i := 0; i < nx; i++ {
		xi := uint64(x[lox+i])
		if xi == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < ny; j++ {
			p := xi*uint64(y[loy+j]) + carry + uint64(r[i+j])
			r[i+j] = Word(p % beta)
			carry = p / beta
		}
		// Propagate the final carry; it is < beta so it fits in one limb,
		// but may itself need to ripple if r[i+ny] is already nonzero
		// from a previous row.
		k := i + ny
		for carry != 0 {
			p := uint64(r[k]) + carry
			r[k] = Word(p % beta)
			carry = p / beta
			k++
		}
	}
	return r
}
