package bigu

// Portable, lane-batched primitives: wide-register-style bulk operations
// that process simdLanes limbs per iteration before falling through to a
// scalar tail. These are plain Go loops unrolled by simdLanes rather than
// compiler intrinsics or assembly — an actual vector backend could
// replace the body of each function without changing its contract. Each
// walks the overlapping prefix of its operands lane-wise, then the
// caller copies or carries the remaining tail.

// addVV adds the overlapping prefix of x and y lane-wise into z (z, x, y
// all at least n = min(len(x), len(y)) long) and returns n, the number of
// limbs written. No carry is propagated: each z[i] may be in [0, 2*beta).
// Carry-normalize the result with carryNormalize2B before it escapes.
func addVV(z, x, y []Word) int {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	i := 0
	for ; i+simdLanes <= n; i += simdLanes {
		z[i+0] = x[i+0] + y[i+0]
		z[i+1] = x[i+1] + y[i+1]
		z[i+2] = x[i+2] + y[i+2]
		z[i+3] = x[i+3] + y[i+3]
	}
	for ; i < n; i++ {
		z[i] = x[i] + y[i]
	}
	return n
}

// subVV subtracts the overlapping prefix y from x lane-wise into z,
// leaving intentional wraparound residues in z (see borrowNormalize) for
// any lane where y[i] > x[i]. Returns n = min(len(x), len(y)).
func subVV(z, x, y []Word) int {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	i := 0
	for ; i+simdLanes <= n; i += simdLanes {
		z[i+0] = x[i+0] - y[i+0]
		z[i+1] = x[i+1] - y[i+1]
		z[i+2] = x[i+2] - y[i+2]
		z[i+3] = x[i+3] - y[i+3]
	}
	for ; i < n; i++ {
		z[i] = x[i] - y[i]
	}
	return n
}

// copyTail copies the tail src[n:] into dst[n:]; dst must be at least
// len(src) long. Used after addVV/subVV to carry over the longer
// operand's remaining high limbs unchanged.
func copyTail(dst, src []Word, n int) {
	copy(dst[n:], src[n:])
}

// mulByTinyAssign multiplies x in place by a small constant k in
// {2,3,4}, using a lane shift for powers of two and a lane-multiply
// otherwise, then carry-normalizes the resulting <=4*beta limbs. x must
// already be normalized; the result is normalized on return.
func mulByTinyAssign(x []Word, k uint32) []Word {
	switch k {
	case 2:
		for i := range x {
			x[i] <<= 1
		}
	case 4:
		for i := range x {
			x[i] <<= 2
		}
	case 3:
		for i := range x {
			x[i] = x[i] + x[i]<<1
		}
	default:
		panic("bigu: mulByTinyAssign: unsupported tiny multiplier")
	}
	return norm(carryNormalize4B(x))
}
