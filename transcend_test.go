package decimal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLnOfOne(t *testing.T) {
	result := MustParse("1").MustLn()
	require.True(t, result.IsZero())
}

func TestLnOfE(t *testing.T) {
	e := MustParse("2.718281828459045235360287471352662498")
	result := e.MustLn()
	diff := result.MustSub(MustParse("1")).Abs()
	require.True(t, diff.Cmp(MustParse("0.0001")) < 0)
}

func TestLnDomainError(t *testing.T) {
	_, err := Zero.Ln()
	require.Error(t, err)

	_, err = MustParse("-1").Ln()
	require.Error(t, err)
}

func TestLnArgumentReduction(t *testing.T) {
	// Values outside [0.7, 1.4] exercise the sqrt-based reduction loop.
	big := MustParse("1000")
	result, err := big.Ln()
	require.NoError(t, err)
	require.Equal(t, byte('6'), result.String()[0])
}

func TestExpOfZero(t *testing.T) {
	result := Zero.MustExp()
	require.True(t, result.IsOne())
}

func TestExpLnRoundTrip(t *testing.T) {
	d := MustParse("2.5")
	ln, err := d.Ln()
	require.NoError(t, err)
	back, err := ln.Exp()
	require.NoError(t, err)
	diff := d.MustSub(back).Abs()
	require.True(t, diff.Cmp(MustParse("0.0001")) < 0)
}

func TestExpNegativeArgument(t *testing.T) {
	result, err := MustParse("-1").Exp()
	require.NoError(t, err)
	require.True(t, result.WithinOne())
}

func TestPowIntegerExponent(t *testing.T) {
	result := MustParse("2").MustPow(MustParse("10"))
	require.Equal(t, "1024", result.String())

	result2 := MustParse("2").MustPow(MustParse("-1"))
	require.Equal(t, "0.5", result2.String())

	result3 := MustParse("5").MustPow(Zero)
	require.True(t, result3.IsOne())
}

func TestPowFractionalExponent(t *testing.T) {
	result, err := MustParse("4").Pow(MustParse("0.5"))
	require.NoError(t, err)
	diff := result.MustSub(MustParse("2")).Abs()
	require.True(t, diff.Cmp(MustParse("0.0001")) < 0)
}

func TestPowDomainError(t *testing.T) {
	_, err := MustParse("-2").Pow(MustParse("0.5"))
	require.Error(t, err)
}

func TestLog2Log10(t *testing.T) {
	result := MustParse("8").MustLog2()
	require.Equal(t, "3", result.Round(0).String())

	result2 := MustParse("1000").MustLog10()
	require.Equal(t, "3", result2.Round(0).String())
}

func TestLog1pExpm1(t *testing.T) {
	result, err := Zero.Log1p()
	require.NoError(t, err)
	require.True(t, result.IsZero())

	result2, err := Zero.Expm1()
	require.NoError(t, err)
	require.True(t, result2.IsZero())
}
