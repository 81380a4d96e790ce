package bigu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDivisionByZero(t *testing.T) {
	_, _, err := DivMod(mustV(t, "42"), Zero())
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDivExactWithTrailingZeros(t *testing.T) {
	q, r, err := DivMod(mustV(t, "123456780000"), mustV(t, "1000"))
	require.NoError(t, err)
	require.True(t, Eq(q, mustV(t, "123456780")))
	require.True(t, Eq(r, Zero()))
}

func TestDivisionByPowerOfTen(t *testing.T) {
	q, r, err := DivMod(mustV(t, "9876543210123456789"), mustV(t, "100000000000"))
	require.NoError(t, err)
	require.True(t, Eq(q, mustV(t, "98765432")))
	require.True(t, Eq(r, mustV(t, "10123456789")))
}

func TestDivisionIdentityAndModRange(t *testing.T) {
	cases := [][2]string{
		{"123456789012345678901234567890", "7"},
		{"918273645918273645123456789", "102938475102938475"},
		{"1000000000000000000000000000000", "999999999999"},
		{"42", "42"},
		{"41", "42"},
	}
	for _, c := range cases {
		x := mustV(t, c[0])
		y := mustV(t, c[1])
		q, r, err := DivMod(x, y)
		require.NoError(t, err)
		require.True(t, Lt(r, y), "remainder must be < divisor for %v", c)
		rebuilt := Add(Mul(q, y), r)
		require.True(t, Eq(rebuilt, x), "q*y+r != x for %v", c)
	}
}

// TestBurnikelZieglerLarge is the concrete scenario from the testable
// properties: a 400-digit dividend by a 200-digit divisor (45 and 23
// limbs, which the dispatch sends to divSchool), and a 3600-digit by
// 1800-digit variant (400 and 200 limbs, well above cutoffBZ, which takes
// the Burnikel-Ziegler path).
func TestBurnikelZieglerLarge(t *testing.T) {
	a := strings.Repeat("1234567890", 40)
	b := strings.Repeat("9876543210", 20)
	checkDivIdentity(t, a, b)

	a2 := strings.Repeat("1234567890", 360)
	b2 := strings.Repeat("9876543210", 180)
	checkDivIdentity(t, a2, b2)
}

func checkDivIdentity(t *testing.T, as, bs string) {
	t.Helper()
	x := mustV(t, as)
	y := mustV(t, bs)
	q, r, err := DivMod(x, y)
	require.NoError(t, err)
	require.True(t, Lt(r, y))
	require.True(t, Eq(Add(Mul(q, y), r), x))
}

func TestDivSchoolBurnikelZieglerAgreeStraddlingCutoff(t *testing.T) {
	for _, n := range []int{cutoffBZ - 1, cutoffBZ, cutoffBZ + 1, 2 * cutoffBZ, 2*cutoffBZ + 1} {
		divisorLen := n/2 + 1
		x := pseudoRandomLimbs(n, uint64(n)*7+1)
		y := pseudoRandomLimbs(divisorLen, uint64(n)*13+2)
		if isZeroSlice(y) {
			y = []Word{1}
		}

		qs, rs := divSchool(append([]Word(nil), x...), append([]Word(nil), y...))
		qb, rb := divBurnikelZiegler(append([]Word(nil), x...), append([]Word(nil), y...))

		require.True(t, Eq(fromLimbsNormalized(qs), fromLimbsNormalized(qb)), "quotient mismatch at n=%d", n)
		require.True(t, Eq(fromLimbsNormalized(rs), fromLimbsNormalized(rb)), "remainder mismatch at n=%d", n)
	}
}

func TestFloorModSignAndRange(t *testing.T) {
	x := mustV(t, "1000000000000000000000000000001")
	y := mustV(t, "999999999999999999999999999999")
	r, err := FloorMod(x, y)
	require.NoError(t, err)
	require.True(t, Lt(r, y))
}

func TestCeilDiv(t *testing.T) {
	q, err := CeilDiv(mustV(t, "10"), mustV(t, "3"))
	require.NoError(t, err)
	require.True(t, Eq(q, mustV(t, "4")))

	q, err = CeilDiv(mustV(t, "9"), mustV(t, "3"))
	require.NoError(t, err)
	require.True(t, Eq(q, mustV(t, "3")))
}

func TestMulByPow10MatchesGeneralMul(t *testing.T) {
	x := mustV(t, "1234567890123456789")
	for n := 0; n < 20; n++ {
		got, err := MulByPow10(x, n)
		require.NoError(t, err)
		pow10, err := Pow(mustV(t, "10"), n)
		require.NoError(t, err)
		want := Mul(x, pow10)
		require.True(t, Eq(got, want), "n=%d", n)
	}
}

func TestDivByPow10IsInverseOfMul(t *testing.T) {
	x := mustV(t, "123456789012345678901234567890")
	for n := 0; n < 15; n++ {
		scaled, err := MulByPow10(x, n)
		require.NoError(t, err)
		back, err := DivByPow10(scaled, n)
		require.NoError(t, err)
		require.True(t, Eq(back, x), "n=%d", n)
	}
}
