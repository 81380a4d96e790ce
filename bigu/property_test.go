package bigu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPowBaseCases(t *testing.T) {
	x := mustV(t, "123456789")

	got, err := Pow(x, 0)
	require.NoError(t, err)
	require.True(t, Eq(got, One()))

	got, err = Pow(x, 1)
	require.NoError(t, err)
	require.True(t, Eq(got, x))
}

func TestPowTwoToSixtyFour(t *testing.T) {
	got, err := Pow(mustV(t, "2"), 64)
	require.NoError(t, err)
	require.True(t, Eq(got, mustV(t, "18446744073709551616")))
}

func TestPowAdditiveExponents(t *testing.T) {
	x := mustV(t, "7")
	for a := 0; a < 6; a++ {
		for b := 0; b < 6; b++ {
			lhs, err := Pow(x, a+b)
			require.NoError(t, err)
			pa, err := Pow(x, a)
			require.NoError(t, err)
			pb, err := Pow(x, b)
			require.NoError(t, err)
			rhs := Mul(pa, pb)
			require.True(t, Eq(lhs, rhs), "a=%d b=%d", a, b)
		}
	}
}

func TestPowExponentOutOfDomain(t *testing.T) {
	_, err := Pow(mustV(t, "2"), beta)
	require.ErrorIs(t, err, ErrDomain)

	_, err = Pow(mustV(t, "2"), -1)
	require.ErrorIs(t, err, ErrDomain)
}

func TestNormalizationIdempotent(t *testing.T) {
	cases := [][]Word{
		{0},
		{1, 0, 0},
		{5, 0},
		{999999999, 1, 0, 0},
	}
	for _, c := range cases {
		once := norm(append([]Word(nil), c...))
		twice := norm(append([]Word(nil), once...))
		require.Equal(t, once, twice)
		require.True(t, normalized(once))
	}
}

func TestComparisonTotalOrderProperty(t *testing.T) {
	values := []BigU{
		Zero(), One(),
		mustV(t, "2"),
		mustV(t, "999999999"),
		mustV(t, "1000000000"),
		mustV(t, "123456789012345678901234567890"),
	}
	for i, a := range values {
		for j, b := range values {
			c1 := Cmp(a, b)
			c2 := Cmp(b, a)
			require.Equal(t, -c1, c2, "antisymmetry failed at (%d,%d)", i, j)
			if i == j {
				require.Equal(t, 0, c1)
			}
		}
	}
	for i := range values {
		for j := range values {
			for k := range values {
				a, b, c := values[i], values[j], values[k]
				if Le(a, b) && Le(b, c) {
					require.True(t, Le(a, c), "transitivity failed for (%d,%d,%d)", i, j, k)
				}
			}
		}
	}
}
