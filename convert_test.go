package decimal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFromIntegers(t *testing.T) {
	d, err := NewFromInt64(-42)
	require.NoError(t, err)
	require.Equal(t, "-42", d.String())

	d2, err := NewFromInt64(math.MinInt64)
	require.NoError(t, err)
	require.Equal(t, "-9223372036854775808", d2.String())

	d3, err := NewFromUint64(math.MaxUint64)
	require.NoError(t, err)
	require.Equal(t, "18446744073709551615", d3.String())

	d4, err := NewFromInt32(-7)
	require.NoError(t, err)
	require.Equal(t, "-7", d4.String())
}

func TestNewFromBool(t *testing.T) {
	require.True(t, NewFromBool(true).IsOne())
	require.True(t, NewFromBool(false).IsZero())
}

func TestNewFromFloat64(t *testing.T) {
	d, err := NewFromFloat64(1.5)
	require.NoError(t, err)
	require.Equal(t, "1.5", d.String())

	_, err = NewFromFloat64(math.NaN())
	require.Error(t, err)

	_, err = NewFromFloat64(math.Inf(1))
	require.Error(t, err)
}

func TestInt64RoundTrip(t *testing.T) {
	v, err := MustParse("-9223372036854775808").Int64()
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), v)

	v2, err := MustParse("42").Int64()
	require.NoError(t, err)
	require.Equal(t, int64(42), v2)

	_, err = MustParse("1.5").Int64()
	require.Error(t, err)

	_, err = MustParse("99999999999999999999999999999999999999").Int64()
	require.Error(t, err)
}

func TestUint64(t *testing.T) {
	v, err := MustParse("18446744073709551615").Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), v)

	_, err = MustParse("-1").Uint64()
	require.Error(t, err)
}

func TestSmallIntConversions(t *testing.T) {
	v, err := MustParse("127").Int8()
	require.NoError(t, err)
	require.Equal(t, int8(127), v)

	_, err = MustParse("128").Int8()
	require.Error(t, err)

	v2, err := MustParse("255").Uint8()
	require.NoError(t, err)
	require.Equal(t, uint8(255), v2)

	_, err = MustParse("256").Uint8()
	require.Error(t, err)
}

func TestFloat64Conversion(t *testing.T) {
	v, err := MustParse("3.25").Float64()
	require.NoError(t, err)
	require.Equal(t, 3.25, v)
}

func TestBoolConversion(t *testing.T) {
	require.True(t, MustParse("1").Bool())
	require.False(t, Zero.Bool())
}
