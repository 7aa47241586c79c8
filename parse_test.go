package decimal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	d, err := Parse("123.45")
	require.NoError(t, err)
	require.Equal(t, "123.45", d.String())

	d2, err := Parse("-0.5")
	require.NoError(t, err)
	require.Equal(t, "-0.5", d2.String())

	d3, err := Parse("+10")
	require.NoError(t, err)
	require.Equal(t, "10", d3.String())
}

func TestParseLeadingZeros(t *testing.T) {
	d, err := Parse("007.50")
	require.NoError(t, err)
	require.Equal(t, "7.5", d.String())
}

func TestParseNoIntegerPart(t *testing.T) {
	d, err := Parse(".5")
	require.NoError(t, err)
	require.Equal(t, "0.5", d.String())
}

func TestParseNoFractionPart(t *testing.T) {
	d, err := Parse("5.")
	require.NoError(t, err)
	require.Equal(t, "5", d.String())
}

func TestParseExponent(t *testing.T) {
	d, err := Parse("1.5e2")
	require.NoError(t, err)
	require.Equal(t, "150", d.String())

	d2, err := Parse("1.5E-2")
	require.NoError(t, err)
	require.Equal(t, "0.015", d2.String())

	d3, err := Parse("2e+3")
	require.NoError(t, err)
	require.Equal(t, "2000", d3.String())
}

func TestParseZero(t *testing.T) {
	d, err := Parse("0")
	require.NoError(t, err)
	require.True(t, d.IsZero())

	d2, err := Parse("-0")
	require.NoError(t, err)
	require.True(t, d2.IsZero())
	require.False(t, d2.IsSignNegative())

	d3, err := Parse("0.000")
	require.NoError(t, err)
	require.True(t, d3.IsZero())
}

func TestParseEmptyInvalid(t *testing.T) {
	_, err := Parse("")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseGarbageInvalid(t *testing.T) {
	cases := []string{"abc", "1.2.3", "--1", "1e", "1e+", ".", "-", "1_000"}
	for _, c := range cases {
		_, err := Parse(c)
		require.Errorf(t, err, "expected parse error for %q", c)
	}
}

func TestParseTooLong(t *testing.T) {
	huge := make([]byte, maxParseLen+1)
	for i := range huge {
		huge[i] = '9'
	}
	_, err := Parse(string(huge))
	require.Error(t, err)
}

func TestParseRoundsExtraDigits(t *testing.T) {
	// 39 significant digits; the 39th (a 5) rounds the 38th up.
	d, err := Parse("1.00000000000000000000000000000000000005")
	require.NoError(t, err)
	require.LessOrEqual(t, d.Precision(), MaxPrecision)
}

func TestParseOverflow(t *testing.T) {
	// more digits before the decimal point than MaxPrecision allows.
	tooMany := "1" + repeatDigit("0", 40)
	_, err := Parse(tooMany)
	require.Error(t, err)
}

func TestParseExact(t *testing.T) {
	d, err := ParseExact("1.50", 2)
	require.NoError(t, err)
	require.Equal(t, 2, d.Scale())

	_, err = ParseExact("1.567", 2)
	require.Error(t, err)
}

func repeatDigit(s string, n int) string {
	out := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s[0])
	}
	return string(out)
}
