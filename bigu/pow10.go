package bigu

// Power-of-ten helpers: the base-beta shift, decimal power
// multiplication/division, power-of-ten detection (used by division
// dispatch), and the normalization digit shift used by schoolbook
// division.
//
// MulByPow10 multiplies by growing and shifting the limb vector first,
// then scaling the residual decimal digits — cleaner than shifting and
// then filling in zeros, and produces the same result.

// MulByBetaPowAssign multiplies x in place by beta^n, by growing the limb
// vector by n limbs, shifting existing limbs up by n positions, and
// zero-filling the bottom n.
func MulByBetaPowAssign(x *BigU, n int) {
	if x.IsZero() || n == 0 {
		return
	}
	x.w = shiftUpByLimbs(x.w, n)
}

// pow10Table is the table of 10^0..10^8, the residual multipliers used
// once a power-of-ten shift has been reduced to its whole-limb quotient
// and a digit remainder in [0,8].
var pow10Table = [digitsPerW]Word{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000}

// MulByPow10 returns x * 10^n for n >= 0. It is implemented as "grow,
// move, zero-fill, then scale the residual": split n into n/9 whole-limb
// shifts and n%9 residual decimal-digit shifts, grow+shift first, then
// apply the residual as a scalar multiply.
func MulByPow10(x BigU, n int) (BigU, error) {
	if n < 0 {
		return BigU{}, ErrDomain
	}
	if x.IsZero() || n == 0 {
		return x.Clone(), nil
	}
	whole := n / digitsPerW
	residual := n % digitsPerW

	w := shiftUpByLimbs(x.w, whole)
	if residual != 0 {
		w = mulByU32Raw(w, pow10Table[residual])
	}
	return fromLimbsNormalized(norm(w)), nil
}

// DivByPow10 returns floor(x / 10^n) for n >= 0.
func DivByPow10(x BigU, n int) (BigU, error) {
	if n < 0 {
		return BigU{}, ErrDomain
	}
	if n == 0 || x.IsZero() {
		return x.Clone(), nil
	}
	whole := n / digitsPerW
	residual := n % digitsPerW

	w := x.w
	if whole >= len(w) {
		return Zero(), nil
	}
	if whole > 0 {
		w = append([]Word(nil), w[whole:]...)
	} else {
		w = append([]Word(nil), w...)
	}
	if residual != 0 {
		q, _ := divByU32Raw(w, pow10Table[residual])
		w = q
	}
	return fromLimbsNormalized(norm(w)), nil
}

// powerOfTenExponent reports (n, true) if x == 10^n for some n >= 0, or
// (0, false) otherwise. Used by FloorDiv's dispatch ladder to shortcut
// division by an exact power of ten.
func powerOfTenExponent(x BigU) (int, bool) {
	w := x.w
	n := len(w)
	last := n - 1
	if w[last] == 0 {
		return 0, false
	}
	for i := 0; i < last; i++ {
		if w[i] != 0 {
			return 0, false
		}
	}
	d := digitShiftOf(w[last])
	if d < 0 {
		return 0, false
	}
	return last*digitsPerW + d, true
}

// digitShiftOf returns n in [0,8] such that w == 10^n, or -1 if w is not
// an exact power of ten in [1, beta).
func digitShiftOf(w Word) int {
	for n, p := range pow10Table {
		if p == w {
			return n
		}
	}
	return -1
}

// normalizationDigitShift returns the decimal digit shift d in [0,8]
// needed to bring topLimb into [beta/10, beta), i.e. to give it exactly
// 9 significant decimal digits. Used by the schoolbook divisor-
// normalization step before dispatching to the 3-by-2 estimator.
func normalizationDigitShift(topLimb Word) int {
	assertInvariant(topLimb != 0, "normalizationDigitShift: zero top limb")
	threshold := Word(beta / 10)
	d := 0
	for topLimb < threshold {
		topLimb *= 10
		d++
	}
	return d
}
