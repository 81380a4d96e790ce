package bigu

import "math"

// Newton-iteration integer square root, seeded from the top one or two
// limbs.

// Isqrt returns the largest y such that y*y <= x.
func Isqrt(x BigU) BigU {
	w := x.w
	if len(w) == 1 {
		return FromUint64(isqrtU64(uint64(w[0])))
	}
	if len(w) == 2 {
		v := uint64(w[0]) + uint64(w[1])*beta
		return FromUint64(isqrtU64(v))
	}

	y := isqrtSeed(w)
	for iter := 0; ; iter++ {
		q, err := FloorDiv(x, y)
		if err != nil {
			panic(err) // y is never zero: the seed is >= 1 for x >= beta^2
		}
		sum := Add(y, q)
		nextY := shrAssign1(sum)

		// The seed is above the root, so the iterates decrease until they
		// reach floor(sqrt(x)); the first step that does not decrease
		// marks it.
		if Ge(nextY, y) {
			return y
		}
		y = nextY
		if iter > 4*x.Len()+64 {
			// Should be unreachable: from a seed about beta times the root,
			// Newton's method needs roughly 30 halving steps and then
			// O(log(L)) quadratically converging ones. Guard against
			// a non-terminating loop from a malformed seed instead of
			// spinning forever.
			return y
		}
	}
}

// isqrtU64 returns floor(sqrt(x)) for a uint64 scalar, via float64 seeding
// plus integer correction (the built-in math.Sqrt has enough precision
// for the <=1-limb and 2-limb fast paths, unlike the 1e9-scale general
// case where Newton iteration on BigU values is required).
func isqrtU64(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	y := uint64(math.Sqrt(float64(x)))
	for y*y > x {
		y--
	}
	for (y+1)*(y+1) <= x {
		y++
	}
	return y
}

// shrAssign1 returns floor(x/2) via a limb-wise halving pass carrying a
// 0/1*beta remainder down from the top limb, rather than routing through
// the general division path.
func shrAssign1(x BigU) BigU {
	w := append([]Word(nil), x.w...)
	var carry uint64
	for i := len(w) - 1; i >= 0; i-- {
		cur := carry*beta + uint64(w[i])
		w[i] = Word(cur / 2)
		carry = cur % 2
	}
	return fromLimbsNormalized(norm(w))
}

// isqrtSeed constructs the Newton-iteration seed for Isqrt on an operand
// with three or more limbs: n_trail = (L-1)/2 low-end zero limbs, a top
// limb of floor(sqrt(top 1 or 2 limbs)), and a next-significant limb set
// from the residual next-limb contribution divided by 2*msq, clamped to
// beta_max. The top limb sits at index n_trail+1, one limb above the top
// limb of the root itself, so the seed exceeds the true root by a factor
// of about beta; from there Newton's method decreases monotonically.
func isqrtSeed(w []Word) BigU {
	l := len(w)
	nTrail := (l - 1) / 2

	var topVal uint64
	var topLimbs int
	if (l-nTrail*2)%2 == 1 {
		// odd number of limbs above the trailing zeros: seed from one
		// top limb only
		topVal = uint64(w[l-1])
		topLimbs = 1
	} else {
		topVal = uint64(w[l-1])*beta + uint64(w[l-2])
		topLimbs = 2
	}
	msq := isqrtU64(topVal)
	if msq == 0 {
		msq = 1
	}

	seed := make([]Word, nTrail+2)
	seed[nTrail+1] = Word(msq)

	// Residual next-significant digit: use the next limb below the top
	// window (if any) divided by 2*msq, clamped to betaMax so it fits in
	// one limb.
	nextLimbIdx := l - topLimbs - 1
	if nextLimbIdx >= 0 {
		residual := uint64(w[nextLimbIdx])
		denom := 2 * msq
		if denom == 0 {
			denom = 1
		}
		next := residual / denom
		if next > betaMax {
			next = betaMax
		}
		seed[nTrail] = Word(next)
	}

	return fromLimbsNormalized(norm(seed))
}
