package bigu

// Limb storage invariants and the carry/borrow normalizers that restore
// them. Both passes are linear in the number of limbs and single-pass
// with a running carry or borrow, propagating it explicitly (mod beta)
// rather than relying on binary-base overflow.

// norm trims leading zero limbs, leaving at least one limb (the normal
// form of zero is a single zero limb, never an empty slice).
func norm(w []Word) []Word {
	i := len(w)
	for i > 0 && w[i-1] == 0 {
		i--
	}
	if i == 0 {
		return w[:1:1]
	}
	return w[:i]
}

// carryNormalize2B walks w least-significant-first, assuming every limb is
// in [0, 2*beta). It restores every limb to [0, beta) and returns the
// slice, with one new limb of 1 appended if a final carry remains.
func carryNormalize2B(w []Word) []Word {
	var c Word
	for i := range w {
		v := w[i] + c
		if v < beta {
			w[i] = v
			c = 0
		} else {
			w[i] = v - beta
			c = 1
		}
	}
	if c != 0 {
		w = append(w, c)
	}
	return w
}

// carryNormalize4B is the same pass for limbs known to lie in [0, 4*beta),
// as produced after a multiply-by-small-scalar pass. The carry is in
// {0,1,2,3}.
func carryNormalize4B(w []Word) []Word {
	var c Word
	for i := range w {
		v := w[i] + c
		q := v / beta
		w[i] = v - q*beta
		c = q
	}
	for c != 0 {
		w = append(w, c%beta)
		c /= beta
	}
	return w
}

// borrowNormalize walks w least-significant-first, converting wrapped
// subtraction residues back into normal-form limbs in [0, beta). A lane
// subtraction of two valid limbs in [0, beta) either stays in [0, beta)
// or wraps to a uint32 value representing a true value in (-beta, 0); the
// "w[i] + beta" and "w[i] + beta - 1" additions below rely on ordinary
// uint32 wraparound to fold that negative value back into range. Caller
// guarantees the final outgoing borrow is zero (sub only calls this once
// y <= x).
func borrowNormalize(w []Word) []Word {
	var b Word
	for i := range w {
		v := w[i]
		if b == 0 {
			if v < beta {
				continue
			}
			w[i] = v + beta
			b = 1
		} else {
			if v >= 1 && v < beta {
				w[i] = v - 1
				b = 0
			} else {
				w[i] = v + beta - 1
				b = 1
			}
		}
	}
	assertInvariant(b == 0, "borrowNormalize: final borrow %d != 0", b)
	return w
}

// normalized reports whether w already satisfies the normal-form
// invariants (used by debug assertions and tests).
func normalized(w []Word) bool {
	if len(w) == 0 {
		return false
	}
	if len(w) > 1 && w[len(w)-1] == 0 {
		return false
	}
	for _, v := range w {
		if v >= beta {
			return false
		}
	}
	return true
}
