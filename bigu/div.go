package bigu

import (
	"fmt"
	"math/bits"
)

// The public division façade and its dispatch ladder, the scalar/
// double-limb fast divisors, and schoolbook division with the 3-by-2
// quotient estimator. The recursive Burnikel-Ziegler path lives in
// burnikelziegler.go.
//
// cutoffBZ is the limb-count threshold above which FloorDiv switches
// from schoolbook to Burnikel-Ziegler.
const cutoffBZ = 32

// DivMod computes (floor(x/y), x mod y).
func DivMod(x, y BigU) (q, r BigU, err error) {
	qw, rw, err := divModRaw(x.w, y.w)
	if err != nil {
		return BigU{}, BigU{}, err
	}
	return fromLimbsNormalized(qw), fromLimbsNormalized(rw), nil
}

// FloorDiv returns floor(x/y).
func FloorDiv(x, y BigU) (BigU, error) {
	q, _, err := DivMod(x, y)
	return q, err
}

// FloorMod returns x - y*floor(x/y), i.e. the non-negative remainder.
func FloorMod(x, y BigU) (BigU, error) {
	_, r, err := DivMod(x, y)
	return r, err
}

// CeilDiv returns ceil(x/y).
func CeilDiv(x, y BigU) (BigU, error) {
	q, r, err := DivMod(x, y)
	if err != nil {
		return BigU{}, err
	}
	if !r.IsZero() {
		q = addU32(q, 1)
	}
	return q, nil
}

func divModRaw(xw, yw []Word) (q, r []Word, err error) {
	if isZeroSlice(yw) {
		return nil, nil, fmt.Errorf("%w", ErrDivisionByZero)
	}
	if isZeroSlice(xw) {
		return []Word{0}, []Word{0}, nil
	}
	switch cmpLimbs(xw, yw) {
	case -1:
		return []Word{0}, append([]Word(nil), xw...), nil
	case 0:
		return []Word{1}, []Word{0}, nil
	}
	if len(yw) == 1 && yw[0] == 1 {
		return append([]Word(nil), xw...), []Word{0}, nil
	}

	if len(yw) == 1 {
		qq, rr := divByU32Raw(xw, yw[0])
		return qq, []Word{rr}, nil
	}
	if len(yw) == 2 {
		qq, rr := divByU64Raw(xw, yw)
		return qq, rr, nil
	}

	if n, ok := powerOfTenExponent(BigU{w: yw}); ok {
		qBig, _ := DivByPow10(BigU{w: xw}, n)
		qq := qBig.w
		prod := Mul(qBig, BigU{w: yw})
		rBig := subNoCheck(BigU{w: xw}, prod)
		return qq, rBig.w, nil
	}

	// len(yw) in {3,4} and the general case both land here rather than
	// through a specialized widening divisor path: schoolbook and
	// Burnikel-Ziegler below already compute the identical result for
	// those widths, just without a dedicated fast path.
	if len(xw) <= 2*cutoffBZ && len(yw) <= cutoffBZ {
		qq, rr := divSchool(xw, yw)
		return qq, rr, nil
	}
	qq, rr := divBurnikelZiegler(xw, yw)
	return qq, rr, nil
}

// limbAt returns s[idx], or 0 if idx is out of [0, len(s)).
func limbAt(s []Word, idx int) Word {
	if idx < 0 || idx >= len(s) {
		return 0
	}
	return s[idx]
}

// divByU32Raw divides x by the single-limb divisor y, walking limbs
// most-to-least significant.
func divByU32Raw(x []Word, y Word) (q []Word, r Word) {
	q = make([]Word, len(x))
	var rem uint64
	y64 := uint64(y)
	for i := len(x) - 1; i >= 0; i-- {
		cur := rem*beta + uint64(x[i])
		q[i] = Word(cur / y64)
		rem = cur % y64
	}
	return norm(q), Word(rem)
}

// divByU64Raw divides x by a two-limb divisor y, walking one limb of x
// at a time and resolving each step's quotient digit via a 128-bit
// (math/bits.Div64) division of the combined remainder*beta+x[i] by the
// divisor packed into a single uint64.
func divByU64Raw(x []Word, y []Word) (q []Word, r []Word) {
	y64 := uint64(y[0]) + uint64(y[1])*beta
	q = make([]Word, len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(rem, beta)
		var c uint64
		lo, c = bits.Add64(lo, uint64(x[i]), 0)
		hi += c
		// rem < y64 from the previous step (0 initially), and y64 < beta^2
		// < 2^64, so hi = floor((rem*beta+x[i])/2^64) < y64*beta/2^64 < y64:
		// the 128-bit dividend never overflows the 64-bit divisor.
		assertInvariant(hi < y64, "divByU64Raw: dividend overflow, hi=%d y64=%d", hi, y64)
		qi, rr := bits.Div64(hi, lo, y64)
		rem = rr
		q[i] = Word(qi)
	}
	return norm(q), FromUint64(rem).w
}

// betaSquared is beta*beta, used by the 3-by-2 estimator below; it fits
// comfortably in a uint64 (1e18 < 2^63).
const betaSquared = uint64(beta) * uint64(beta)

// divSchool implements schoolbook division with the 3-by-2 quotient-digit
// estimator, after scaling both operands so the divisor's top limb has a
// full 9 significant decimal digits. xIn and yIn must be normalized with
// len(xIn) >= len(yIn) >= 2 (the 0/1/single-limb dispatch cases are
// handled by the caller).
func divSchool(xIn, yIn []Word) (q, r []Word) {
	d := normalizationDigitShift(yIn[len(yIn)-1])
	xs := norm(mulByU32Raw(append([]Word(nil), xIn...), pow10Table[d]))
	ys := norm(mulByU32Raw(append([]Word(nil), yIn...), pow10Table[d]))

	n := len(ys)
	m := len(xs) - n
	if m < 0 {
		m = 0
	}

	rem := append([]Word(nil), xs...)
	qout := make([]Word, m+1)
	yTop := uint64(ys[n-1])
	var ySecond uint64
	if n >= 2 {
		ySecond = uint64(ys[n-2])
	}
	dv := yTop*beta + ySecond

	for i := m; i >= 0; i-- {
		pos := i + n - 2
		r0 := uint64(limbAt(rem, pos))
		r1 := uint64(limbAt(rem, pos+1))
		r2 := uint64(limbAt(rem, pos+2))

		hi, lo := bits.Mul64(r2, betaSquared)
		var c uint64
		lo, c = bits.Add64(lo, r1*beta, 0)
		hi += c
		lo, c = bits.Add64(lo, r0, 0)
		hi += c

		var qhat uint64
		if dv == 0 || hi >= dv {
			qhat = uint64(betaMax)
		} else {
			qhat, _ = bits.Div64(hi, lo, dv)
			if qhat > uint64(betaMax) {
				qhat = uint64(betaMax)
			}
		}

		attempts := 0
		for {
			trial := shiftUpByLimbs(norm(mulByU32Raw(append([]Word(nil), ys...), Word(qhat))), i)
			remNorm := norm(append([]Word(nil), rem...))
			trialNorm := norm(trial)
			if cmpLimbs(remNorm, trialNorm) >= 0 {
				rem = subSlicesNoCheck(remNorm, trialNorm)
				break
			}
			assertInvariant(attempts < 2, "divSchool: correction attempts exceeded 2 at digit %d", i)
			qhat--
			attempts++
		}
		qout[i] = Word(qhat)
	}

	qout = norm(qout)
	remFinal, _ := DivByPow10(fromLimbsNormalized(norm(rem)), d)
	return qout, remFinal.w
}
