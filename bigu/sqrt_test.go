package bigu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsqrtExactPowersOfTen(t *testing.T) {
	got := Isqrt(mustV(t, "100000000000000000000000000000000"))
	require.True(t, Eq(got, mustV(t, "10000000000000000")))

	got = Isqrt(mustV(t, "99999999999999999999999999999999"))
	require.True(t, Eq(got, mustV(t, "9999999999999999")))
}

func TestIsqrtSmallValues(t *testing.T) {
	cases := map[string]string{
		"0":   "0",
		"1":   "1",
		"3":   "1",
		"4":   "2",
		"8":   "2",
		"9":   "3",
		"99":  "9",
		"100": "10",
	}
	for in, want := range cases {
		got := Isqrt(mustV(t, in))
		require.True(t, Eq(got, mustV(t, want)), "isqrt(%s) = %s, want %s", in, got.String(), want)
	}
}

func TestIsqrtBoundsProperty(t *testing.T) {
	cases := []string{
		"2", "10", "99999999999", "123456789012345678901234567890",
		"918273645918273645123456789012345678901234567890123456789",
	}
	for _, c := range cases {
		x := mustV(t, c)
		y := Isqrt(x)
		ySq := Mul(y, y)
		yPlus1 := addU32(y, 1)
		yPlus1Sq := Mul(yPlus1, yPlus1)
		require.True(t, Le(ySq, x), "isqrt(%s)^2 > x", c)
		require.True(t, Lt(x, yPlus1Sq), "x >= (isqrt(%s)+1)^2", c)
	}
}

func TestIsqrtMonotonic(t *testing.T) {
	prev := Zero()
	for _, c := range []string{"1", "4", "9", "16", "1000000000", "1000000000000000000"} {
		cur := Isqrt(mustV(t, c))
		require.True(t, Ge(cur, prev))
		prev = cur
	}
}
