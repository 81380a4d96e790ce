package bigu

// Burnikel-Ziegler recursive division, built from 2n-by-n and 3n-by-2n
// subroutines that bottom out in divSchool once the block size drops to
// cutoffBZ. The overall shape scales the divisor so its top limb is
// "large enough", splits the dividend into n-limb blocks, processes one
// window at a time most-significant-first while accumulating a running
// remainder, and folds the per-window quotients back together.

// divBurnikelZiegler divides aIn by bIn (both normalized, len(bIn) > cutoffBZ
// or len(aIn) > 2*cutoffBZ, per the dispatch ladder in div.go) and returns
// (floor(aIn/bIn), aIn mod bIn).
func divBurnikelZiegler(aIn, bIn []Word) (q, r []Word) {
	// Normalize: bring b's top limb to a full 9 significant digits, then
	// (if still short of beta/2) boost by a small integer gap factor so
	// the 3n-by-2n correction loop's <=2 bound holds.
	d := normalizationDigitShift(bIn[len(bIn)-1])
	a := norm(mulByU32Raw(append([]Word(nil), aIn...), pow10Table[d]))
	b := norm(mulByU32Raw(append([]Word(nil), bIn...), pow10Table[d]))

	var gap Word = 1
	if b[len(b)-1] < betaHalf {
		top := b[len(b)-1]
		gap = Word(betaMax) / top
		if gap < 1 {
			gap = 1
		}
		a = norm(mulByU32Raw(a, gap))
		b = norm(mulByU32Raw(b, gap))
	}

	// Pad b to exactly n limbs by shifting both operands up by whole
	// limbs, so the top half of the divisor is normalized at every
	// recursion level. The shift is removed from the remainder below.
	n := cutoffBZ
	for n < len(b) {
		n *= 2
	}
	shift := n - len(b)
	a = shiftUpByLimbs(a, shift)
	b = shiftUpByLimbs(b, shift)
	bPadded := rawWindow(b, 0, n)

	t := (len(a) + n - 1) / n
	if t == 0 {
		t = 1
	}
	if t*n == len(a) && a[len(a)-1] >= betaHalf {
		t++
	}
	aPadded := rawWindow(a, 0, t*n)

	z := []Word{0}
	qAcc := []Word{0}
	for blockIdx := t - 1; blockIdx >= 0; blockIdx-- {
		blockStart := blockIdx * n
		aBlock := rawWindow(aPadded, blockStart, blockStart+n)
		dividend := addSlices(shiftUpByLimbs(norm(z), n), norm(aBlock))
		qi, zi := div2nByN(dividend, bPadded, n)
		z = zi
		qAcc = addSlices(shiftUpByLimbs(qAcc, n), qi)
	}

	remScaled := []Word{0}
	if len(z) > shift {
		remScaled = append([]Word(nil), z[shift:]...)
	}
	if gap != 1 {
		qq, _ := divByU32Raw(remScaled, gap)
		remScaled = qq
	}
	remBig, _ := DivByPow10(fromLimbsNormalized(norm(remScaled)), d)
	return norm(qAcc), remBig.w
}

// rawWindow returns the [lo,hi) positional window of x as an independent
// slice, zero-filling any index outside [0, len(x)). Unlike sliceValue it
// is not normalized: it preserves fixed block width, which the recursive
// split/combine steps below depend on.
func rawWindow(x []Word, lo, hi int) []Word {
	width := hi - lo
	if width <= 0 {
		return nil
	}
	out := make([]Word, width)
	for i := 0; i < width; i++ {
		idx := lo + i
		if idx >= 0 && idx < len(x) {
			out[i] = x[idx]
		}
	}
	return out
}

// combine returns hi*beta^shift + lo as a normalized slice value.
func combine(hi, lo []Word, shift int) []Word {
	return addSlices(shiftUpByLimbs(norm(append([]Word(nil), hi...)), shift), norm(append([]Word(nil), lo...)))
}

// div2nByN divides a 2n-limb-wide dividend A by an n-limb-wide normalized
// divisor B, returning a quotient of at most n+1 limbs and a remainder < B.
func div2nByN(A, B []Word, n int) (q, r []Word) {
	A = rawWindow(A, 0, 2*n)
	B = rawWindow(B, 0, n)

	if n%2 != 0 || n <= cutoffBZ {
		qq, rr, err := divModRaw(norm(A), norm(B))
		assertInvariant(err == nil, "div2nByN: base case division failed: %v", err)
		return qq, rr
	}

	half := n / 2
	A0 := rawWindow(A, 0, half)
	A1 := rawWindow(A, half, n)
	A2 := rawWindow(A, n, n+half)
	A3 := rawWindow(A, n+half, 2*n)
	B0 := rawWindow(B, 0, half)
	B1 := rawWindow(B, half, n)

	q1, rem1 := div3nBy2n(A3, A2, A1, B1, B0, half)
	rem1 = rawWindow(norm(rem1), 0, n)
	r1 := rawWindow(rem1, half, n)
	r0 := rawWindow(rem1, 0, half)

	q0, s := div3nBy2n(r1, r0, A0, B1, B0, half)

	q = norm(addSlices(shiftUpByLimbs(norm(q1), half), norm(q0)))
	return q, norm(s)
}

// div3nBy2n divides the 3*half-limb-wide value [a2,a1,a0] by the
// 2*half-limb-wide normalized divisor [b1,b0]. a2 may carry one extra
// limb beyond half width (the "add one extra block" case in
// divBurnikelZiegler); rawWindow's zero-fill/truncate-by-width handles
// both a2's nominal width and any overflow limb via norm() on the
// recombined dividend instead.
func div3nBy2n(a2, a1, a0, b1, b0 []Word, half int) (q, r []Word) {
	A1 := rawWindow(a1, 0, half)
	A0 := rawWindow(a0, 0, half)
	B0 := rawWindow(b0, 0, half)
	B1 := rawWindow(b1, 0, half)

	dividend := combine(a2, A1, half)
	qq, cc := div2nByN(dividend, B1, half)

	d := norm(mulKaratsubaOwned(norm(qq), norm(B0), karatsubaCutoff))
	rem := combine(cc, A0, half)
	fullB := combine(B1, B0, half)

	attempts := 0
	for cmpLimbs(norm(rem), d) < 0 {
		assertInvariant(attempts < 2, "div3nBy2n: correction attempts exceeded 2")
		qq = subOneSlice(norm(qq))
		rem = addSlices(norm(rem), fullB)
		attempts++
	}
	return norm(qq), subSlicesNoCheck(norm(rem), d)
}

// subOneSlice returns x-1, assuming x >= 1.
func subOneSlice(x []Word) []Word {
	return subSlicesNoCheck(x, []Word{1})
}
