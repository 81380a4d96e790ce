package bigu

import "fmt"

// Public Add/Sub, their scalar fast paths, the in-place variants, and
// slice-reading helpers (addAssignSlice, subAssignNoCheckSlice). The
// multiplication and division recursions use addSlices and
// subSlicesNoCheck from karatsuba.go rather than these helpers. The
// dispatch ladder special-cases short operands (single limb, two limbs
// via a widened uint64) before falling into the general lane-wise pass.

// Add returns x + y.
func Add(x, y BigU) BigU {
	if x.IsZero() {
		return y.Clone()
	}
	if y.IsZero() {
		return x.Clone()
	}
	xw, yw := x.w, y.w
	if len(xw) == 1 && len(yw) == 1 {
		return fromUint64(uint64(xw[0]) + uint64(yw[0]))
	}
	if len(xw) == 2 && len(yw) == 2 {
		xv := uint64(xw[0]) + uint64(xw[1])*beta
		yv := uint64(yw[0]) + uint64(yw[1])*beta
		return fromUint128Sum(xv, yv)
	}
	if len(xw) == 1 {
		return addU32(y, xw[0])
	}
	if len(yw) == 1 {
		return addU32(x, yw[0])
	}

	n := len(xw)
	longer := xw
	if len(yw) > n {
		n = len(yw)
		longer = yw
	}
	z := make([]Word, n)
	k := addVV(z, xw, yw)
	copyTail(z, longer, k)
	z = carryNormalize2B(z)
	return fromLimbsNormalized(norm(z))
}

// addU32 returns x + Word(y) via the scalar cascade-carry path: add into
// the low limb, then ripple a carry of 0 or 1 through the remaining
// limbs, stopping as soon as no carry remains.
func addU32(x BigU, y Word) BigU {
	z := x.clone()
	c := y
	for i := range z {
		v := z[i] + c
		if v < beta {
			z[i] = v
			return fromLimbsNormalized(z)
		}
		z[i] = v - beta
		c = 1
	}
	if c != 0 {
		z = append(z, c)
	}
	return fromLimbsNormalized(z)
}

// AddAssign sets x to x + y in place.
func AddAssign(x *BigU, y BigU) {
	*x = Add(*x, y)
}

// addAssignSlice returns x + y[lo:hi] as a newly allocated, normalized
// limb slice, reading the addend as a slice of y rather than as an owned
// BigU. x itself is not modified.
func addAssignSlice(x []Word, y []Word, lo, hi int) []Word {
	slice := y[lo:hi]
	slice = norm(append([]Word(nil), slice...))
	if len(slice) == 1 && slice[0] == 0 {
		return x
	}
	n := len(x)
	if len(slice) > n {
		n = len(slice)
	}
	z := make([]Word, n)
	k := addVV(z, x, slice)
	if len(x) > len(slice) {
		copyTail(z, x, k)
	} else {
		copyTail(z, slice, k)
	}
	return norm(carryNormalize2B(z))
}

// Sub returns x - y. It fails with ErrUnderflow if y > x.
func Sub(x, y BigU) (BigU, error) {
	if Lt(x, y) {
		return BigU{}, fmt.Errorf("%w: %s - %s", ErrUnderflow, x.String(), y.String())
	}
	return subNoCheck(x, y), nil
}

// subNoCheck returns x - y assuming (and, in debug builds, asserting)
// y <= x. It is used by Sub after its own check and by the power-of-ten
// division path, where the caller has already proven the precondition.
// Karatsuba and Burnikel-Ziegler subtract with subSlicesNoCheck instead.
func subNoCheck(x, y BigU) BigU {
	assertInvariant(Ge(x, y), "subNoCheck: x < y")
	if y.IsZero() {
		return x.Clone()
	}
	if Eq(x, y) {
		return Zero()
	}
	xw, yw := x.w, y.w
	z := make([]Word, len(xw))
	k := subVV(z, xw, yw)
	copyTail(z, xw, k)
	z = borrowNormalize(z)
	return fromLimbsNormalized(norm(z))
}

// SubAssign sets x to x - y in place, returning ErrUnderflow (and
// leaving x unmodified) if y > x.
func SubAssign(x *BigU, y BigU) error {
	r, err := Sub(*x, y)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

// subAssignNoCheckSlice returns x - y[lo:hi] (the subtrahend read as a
// slice value, not an owned BigU) as a newly allocated, normalized limb
// slice, without the underflow check, assuming the caller has proven
// x >= the subtrahend. x itself is not modified.
func subAssignNoCheckSlice(x []Word, y []Word, lo, hi int) []Word {
	slice := norm(append([]Word(nil), y[lo:hi]...))
	if len(slice) == 1 && slice[0] == 0 {
		return x
	}
	z := make([]Word, len(x))
	k := subVV(z, x, slice)
	copyTail(z, x, k)
	return norm(borrowNormalize(z))
}
