package decimal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdjustScaleFitsDirectly(t *testing.T) {
	wide := u256FromU128(u128FromUint64(12345))
	d, err := adjustScale(wide, 2, false)
	require.NoError(t, err)
	require.Equal(t, "123.45", d.String())
}

func TestAdjustScaleRoundsHalfUp(t *testing.T) {
	// 10^38 + 9 is a 39-digit value whose last digit rounds up into the
	// 38-digit envelope.
	raw, ok := pow10U128[38].add(u128FromUint64(9))
	require.True(t, ok)
	wide := u256FromU128(raw)
	d, err := adjustScale(wide, 0, false)
	require.NoError(t, err)
	require.Equal(t, 38, d.Precision())
}

func TestAdjustScaleUnderflowsToZero(t *testing.T) {
	wide := u256FromU128(u128One)
	d, err := adjustScale(wide, MaxScale+1, false)
	require.NoError(t, err)
	require.True(t, d.IsZero())
}

func TestAdjustScaleOverflows(t *testing.T) {
	wide := u256FromU128(u128One)
	_, err := adjustScale(wide, MinScale-1, false)
	require.Error(t, err)
}

func TestCmpMagnitudesAcrossScales(t *testing.T) {
	a := MustParse("1.50")
	b := MustParse("1.5")
	require.Equal(t, 0, a.CmpAbs(b))

	c := MustParse("1.6")
	require.Equal(t, -1, a.CmpAbs(c))
	require.Equal(t, 1, c.CmpAbs(a))
}

func TestCmpMagnitudesNegligible(t *testing.T) {
	huge := MustParse("1")
	tiny, err := fromParts(u128One, MaxScale, false)
	require.NoError(t, err)
	require.Equal(t, 1, huge.CmpAbs(tiny))
}

func TestNormalize(t *testing.T) {
	d := MustParse("1.2300")
	n := d.Normalize()
	require.Equal(t, "1.23", n.String())
	require.True(t, n.Equal(d))
}

func TestNormalizeToScale(t *testing.T) {
	d := MustParse("1.23")
	n := d.normalizeToScale(5)
	require.Equal(t, 5, n.Scale())
	require.True(t, n.Equal(d))
}
