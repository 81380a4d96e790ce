package bigu

// cmpLimbs is a total order on magnitudes: first by limb count, then
// most-to-least significant limb.
func cmpLimbs(x, y []Word) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// Cmp returns -1, 0, or 1 as x is less than, equal to, or greater than y.
func Cmp(x, y BigU) int {
	return cmpLimbs(x.w, y.w)
}

// Lt reports whether x < y.
func Lt(x, y BigU) bool { return Cmp(x, y) < 0 }

// Le reports whether x <= y.
func Le(x, y BigU) bool { return Cmp(x, y) <= 0 }

// Gt reports whether x > y.
func Gt(x, y BigU) bool { return Cmp(x, y) > 0 }

// Ge reports whether x >= y.
func Ge(x, y BigU) bool { return Cmp(x, y) >= 0 }

// Eq reports whether x == y.
func Eq(x, y BigU) bool { return Cmp(x, y) == 0 }
