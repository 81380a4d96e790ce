package bigu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddSmallCrossesLimbBoundary(t *testing.T) {
	got := Add(mustV(t, "123456789"), mustV(t, "876543211"))
	require.True(t, Eq(got, mustV(t, "1000000000")))
}

func TestAddCarryCascade(t *testing.T) {
	x := mustV(t, "999999999999999999999999999999")
	got := Add(x, One())
	require.True(t, Eq(got, mustV(t, "1000000000000000000000000000000")))
}

func TestAddCommutativeAssociative(t *testing.T) {
	x := mustV(t, "918273645918273645")
	y := mustV(t, "102938475102938475")
	z := mustV(t, "555555555555555555")

	require.True(t, Eq(Add(x, y), Add(y, x)))
	require.True(t, Eq(Add(Add(x, y), z), Add(x, Add(y, z))))
}

func TestAddWithZero(t *testing.T) {
	x := mustV(t, "42424242424242424242")
	require.True(t, Eq(Add(x, Zero()), x))
	require.True(t, Eq(Add(Zero(), x), x))
}

func TestSubUnderflow(t *testing.T) {
	_, err := Sub(mustV(t, "5"), mustV(t, "10"))
	require.ErrorIs(t, err, ErrUnderflow)
}

func TestSubBasic(t *testing.T) {
	got, err := Sub(mustV(t, "1000000000"), mustV(t, "1"))
	require.NoError(t, err)
	require.True(t, Eq(got, mustV(t, "999999999")))
}

func TestSubIsAddInverse(t *testing.T) {
	x := mustV(t, "918273645918273645123456789")
	y := mustV(t, "102938475102938475")
	sum := Add(x, y)
	back, err := Sub(sum, y)
	require.NoError(t, err)
	require.True(t, Eq(back, x))
}

func TestAddSubAssign(t *testing.T) {
	x := mustV(t, "10")
	AddAssign(&x, mustV(t, "32"))
	require.True(t, Eq(x, mustV(t, "42")))

	err := SubAssign(&x, mustV(t, "2"))
	require.NoError(t, err)
	require.True(t, Eq(x, mustV(t, "40")))

	err = SubAssign(&x, mustV(t, "1000"))
	require.ErrorIs(t, err, ErrUnderflow)
	require.True(t, Eq(x, mustV(t, "40")), "x must be unmodified after a failed SubAssign")
}
