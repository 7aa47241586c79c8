package decimal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroIsCanonical(t *testing.T) {
	d, err := fromParts(u128Zero, 5, true)
	require.NoError(t, err)
	require.Equal(t, Decimal{}, d)
	require.False(t, d.IsSignNegative())
}

func TestPrecisionAndScale(t *testing.T) {
	d := MustParse("123.45")
	require.Equal(t, 5, d.Precision())
	require.Equal(t, 2, d.Scale())
}

func TestSignPredicates(t *testing.T) {
	pos := MustParse("1.5")
	neg := MustParse("-1.5")
	require.True(t, pos.IsPos())
	require.False(t, pos.IsNeg())
	require.True(t, neg.IsNeg())
	require.False(t, neg.IsPos())
	require.True(t, Zero.IsZero())
	require.False(t, Zero.IsPos())
	require.False(t, Zero.IsNeg())
}

func TestAbsNegCopySign(t *testing.T) {
	neg := MustParse("-42.5")
	require.True(t, neg.Abs().IsPos())
	require.True(t, neg.Neg().IsPos())
	require.True(t, One.CopySign(neg).IsNeg())
	require.True(t, Zero.CopySign(neg).IsZero())
	require.False(t, Zero.CopySign(neg).IsNeg())
}

func TestIsInt(t *testing.T) {
	require.True(t, MustParse("10").IsInt())
	require.True(t, MustParse("10.00").IsInt())
	require.False(t, MustParse("10.01").IsInt())
	require.True(t, Zero.IsInt())
}

func TestWithinOne(t *testing.T) {
	require.True(t, MustParse("0.5").WithinOne())
	require.True(t, MustParse("-0.999").WithinOne())
	require.False(t, MustParse("1.0001").WithinOne())
}

func TestIsOne(t *testing.T) {
	require.True(t, One.IsOne())
	require.True(t, MustParse("1.00").IsOne())
	require.False(t, MustParse("1.01").IsOne())
}

func TestFromPartsOverflow(t *testing.T) {
	_, err := fromParts(pow10U128[38], 0, false) // 10^38 has 39 digits, too many
	require.Error(t, err)
	var convErr *ConvertError
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, ConvertOverflow, convErr.Kind)
}

func TestString(t *testing.T) {
	require.Equal(t, "123.45", MustParse("123.45").String())
	require.Equal(t, "-0.001", MustParse("-0.001").String())
	require.Equal(t, "0", Zero.String())
}

func TestHashAgreesWithEquality(t *testing.T) {
	a := MustParse("1.0")
	b := MustParse("1.00")
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())

	c := MustParse("2")
	require.NotEqual(t, a.Hash(), c.Hash())
}
