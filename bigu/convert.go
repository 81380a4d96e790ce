package bigu

import (
	"strconv"
	"strings"
)

// Construction sources and textual rendering: scalar constructors, the
// decimal digit-stream packer, and the plain/grouped renderers. Packing
// the digit stream into 9-digit blocks starting at the least-significant
// end is what makes the base-10^9 representation attractive for decimal
// I/O: it becomes a block-copy-and-parse rather than repeated division.

// FromUint8 returns the BigU value of a uint8 scalar.
func FromUint8(x uint8) BigU { return FromUint64(uint64(x)) }

// FromUint16 returns the BigU value of a uint16 scalar.
func FromUint16(x uint16) BigU { return FromUint64(uint64(x)) }

// FromUint32 returns the BigU value of a uint32 scalar.
func FromUint32(x uint32) BigU { return FromUint64(uint64(x)) }

// FromUint64 returns the BigU value of a uint64 scalar, splitting it into
// limbs by repeated division by beta.
func FromUint64(x uint64) BigU {
	if x < beta {
		return BigU{w: []Word{Word(x)}}
	}
	var w []Word
	for x > 0 {
		w = append(w, Word(x%beta))
		x /= beta
	}
	return fromLimbsNormalized(norm(w))
}

func fromUint64(x uint64) BigU {
	return FromUint64(x)
}

// fromUint128Sum computes x+y where both are known to be < beta^2 (the
// value of a two-limb BigU), so their sum is always < 2*beta^2 and fits
// comfortably in a uint64; used by Add's two-limb fast path.
func fromUint128Sum(x, y uint64) BigU {
	return FromUint64(x + y)
}

// FromBigEndianBytes interprets buf as a base-256 big-endian unsigned
// integer (the natural counterpart to math/big.Int.SetBytes) and returns
// the equivalent BigU. An empty slice yields zero.
func FromBigEndianBytes(buf []byte) BigU {
	result := Zero()
	chunk := FromUint64(256)
	for _, b := range buf {
		result = Mul(result, chunk)
		result = Add(result, FromUint64(uint64(b)))
	}
	return result
}

// FromDecimalString parses a non-negative decimal string (no sign, no
// leading/trailing whitespace, optional leading zeros) into a BigU. It
// packs the digit stream in blocks of 9 starting at the least-significant
// end.
func FromDecimalString(s string) (BigU, error) {
	if s == "" {
		return BigU{}, &strconv.NumError{Func: "FromDecimalString", Num: s, Err: strconv.ErrSyntax}
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return BigU{}, &strconv.NumError{Func: "FromDecimalString", Num: s, Err: strconv.ErrSyntax}
		}
	}
	// trim leading zeros, but keep at least one digit
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	s = s[i:]

	nLimbs := (len(s) + digitsPerW - 1) / digitsPerW
	w := make([]Word, nLimbs)
	end := len(s)
	for li := 0; li < nLimbs; li++ {
		start := end - digitsPerW
		if start < 0 {
			start = 0
		}
		v, err := strconv.ParseUint(s[start:end], 10, 32)
		if err != nil {
			return BigU{}, err
		}
		w[li] = Word(v)
		end = start
	}
	return fromLimbsNormalized(norm(w)), nil
}

// MustFromDecimalString is like FromDecimalString but panics on error; it
// exists for literal test/benchmark inputs.
func MustFromDecimalString(s string) BigU {
	v, err := FromDecimalString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders x as plain decimal: the top limb with no leading zeros,
// followed by every lower limb left-padded to 9 digits. Zero renders as
// "0".
func (x BigU) String() string {
	var b strings.Builder
	n := len(x.w)
	b.WriteString(strconv.FormatUint(uint64(x.w[n-1]), 10))
	for i := n - 2; i >= 0; i-- {
		b.WriteString(padLimb(x.w[i]))
	}
	return b.String()
}

// GroupedString renders x as decimal with a group separator (e.g. ",")
// inserted every 3 digits.
func (x BigU) GroupedString(sep string) string {
	digits := x.String()
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func padLimb(w Word) string {
	s := strconv.FormatUint(uint64(w), 10)
	if len(s) == digitsPerW {
		return s
	}
	return strings.Repeat("0", digitsPerW-len(s)) + s
}
