package decimal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestU256AddSub(t *testing.T) {
	x := pow10U256[40]
	y := pow10U256[20]
	sum, ok := x.add(y)
	require.True(t, ok)
	back, ok := sum.sub(y)
	require.True(t, ok)
	require.Equal(t, x, back)
}

func TestU256ShiftRoundTrip(t *testing.T) {
	x := pow10U256[50]
	shifted := x.lsh(77).rsh(77)
	require.Equal(t, x, shifted)
}

func TestU256QuoRemU128(t *testing.T) {
	x := pow10U256[50]
	y := pow10U128[30]
	q, r := x.quoRemU128(y)
	require.True(t, r.isZero())
	require.Equal(t, pow10U256[20], q)
}

func TestU256CountDigits(t *testing.T) {
	require.Equal(t, 1, u256Zero.countDigits())
	require.Equal(t, 51, pow10U256[50].countDigits())
	one := u256FromU128(u128One)
	require.Equal(t, 1, one.countDigits())
}

func TestIsqrtU256(t *testing.T) {
	n := pow10U256[76] // 10^76, a perfect square: sqrt = 10^38
	root, rem := isqrtU256(n)
	require.True(t, rem.isZero())
	require.Equal(t, pow10U128[38], root)
}

func TestMulU128xU256(t *testing.T) {
	x := pow10U128[10]
	y := pow10U256[60]
	got, ok := mulU128xU256(x, y)
	require.True(t, ok)
	require.Equal(t, pow10U256[70], got)
}
