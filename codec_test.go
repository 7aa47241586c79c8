package decimal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshalBinaryZero(t *testing.T) {
	b, err := Zero.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, b)
}

func TestMarshalBinarySmallInteger(t *testing.T) {
	d := MustParse("5")
	b, err := d.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0x05}, b)
}

func TestMarshalBinaryTwoByteInteger(t *testing.T) {
	d := MustParse("300")
	b, err := d.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0x2C, 0x01}, b) // 300 little-endian
}

// TestMarshalBinarySpecScenario reproduces spec §8 scenario 6 exactly.
func TestMarshalBinarySpecScenario(t *testing.T) {
	d := MustParse("184467440.73709551615")
	b, err := d.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, 10)
	require.Equal(t, []byte{0x02, 0x0B}, b[:2])

	var got Decimal
	require.NoError(t, got.UnmarshalBinary(b))
	require.Zero(t, d.CmpTotal(got))
}

func TestMarshalBinaryMaxSignificand(t *testing.T) {
	d := MustParse("99999999999999999999999999999999999999") // 38 nines, scale 0
	b, err := d.MarshalBinary()
	require.NoError(t, err)
	require.LessOrEqual(t, len(b), 18)
}

func TestBinaryRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "-1", "123.456", "-123.456", "0.000001", "99999999999999999999999999999999999999"}
	for _, c := range cases {
		orig := MustParse(c)
		b, err := orig.MarshalBinary()
		require.NoErrorf(t, err, "marshal %q", c)

		var got Decimal
		err = got.UnmarshalBinary(b)
		require.NoErrorf(t, err, "unmarshal %q", c)
		require.Truef(t, orig.CmpTotal(got) == 0, "round-trip mismatch for %q: got %v", c, got.String())
	}
}

func TestAppendBinary(t *testing.T) {
	d := MustParse("1.5")
	prefix := []byte{0xAA}
	out, err := d.AppendBinary(prefix)
	require.NoError(t, err)
	require.Equal(t, byte(0xAA), out[0])

	want, err := d.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, want, out[1:])
}

func TestAppendText(t *testing.T) {
	d := MustParse("1.5")
	out, err := d.AppendText([]byte("x="))
	require.NoError(t, err)
	require.Equal(t, "x=1.5", string(out))
}

func TestUnmarshalBinaryEmpty(t *testing.T) {
	var d Decimal
	err := d.UnmarshalBinary(nil)
	require.Error(t, err)
}

func TestUnmarshalBinaryOversizedSignificand(t *testing.T) {
	// A 2-byte header followed by 17 significand bytes exceeds the
	// 16-byte significand limit and must be rejected.
	data := make([]byte, 2+17)
	data[0] = 0x02
	data[1] = 0x00
	data[len(data)-1] = 0x01 // keep the high byte non-zero, as a real encoder would

	var got Decimal
	err := got.UnmarshalBinary(data)
	require.Error(t, err)
}

func TestTextMarshalUnmarshal(t *testing.T) {
	d := MustParse("42.5")
	text, err := d.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "42.5", string(text))

	var got Decimal
	err = got.UnmarshalText(text)
	require.NoError(t, err)
	require.True(t, got.Equal(d))
}

func TestJSONBareLiteral(t *testing.T) {
	d := MustParse("1.5")
	b, err := d.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, "1.5", string(b))

	var got Decimal
	err = got.UnmarshalJSON(b)
	require.NoError(t, err)
	require.True(t, got.Equal(d))
}

func TestJSONScientificFallback(t *testing.T) {
	// A short significand at an extreme scale produces a plain-form
	// string well past 40 characters, so MarshalJSON must fall back to
	// scientific notation.
	d, err := fromParts(u128One, MinScale, false)
	require.NoError(t, err)
	plain := d.String()
	require.Greater(t, len(plain), maxJSONPlainWidth)

	b, err := d.MarshalJSON()
	require.NoError(t, err)
	require.LessOrEqual(t, len(b), maxJSONPlainWidth)
	require.Contains(t, string(b), "e")

	var got Decimal
	require.NoError(t, got.UnmarshalJSON(b))
	require.True(t, got.Equal(d))
}

func TestJSONQuotedLiteral(t *testing.T) {
	var got Decimal
	err := got.UnmarshalJSON([]byte(`"1.5"`))
	require.NoError(t, err)
	require.True(t, got.Equal(MustParse("1.5")))
}

func TestJSONNull(t *testing.T) {
	var got Decimal
	err := got.UnmarshalJSON([]byte("null"))
	require.NoError(t, err)
	require.True(t, got.IsZero())
}

func TestSQLValueAndScan(t *testing.T) {
	d := MustParse("9.99")
	v, err := d.Value()
	require.NoError(t, err)
	require.Equal(t, "9.99", v)

	var got Decimal
	require.NoError(t, got.Scan("9.99"))
	require.True(t, got.Equal(d))

	require.NoError(t, got.Scan([]byte("1.5")))
	require.True(t, got.Equal(MustParse("1.5")))

	require.NoError(t, got.Scan(int64(42)))
	require.True(t, got.Equal(MustParse("42")))

	require.NoError(t, got.Scan(1.5))
	require.True(t, got.Equal(MustParse("1.5")))

	require.NoError(t, got.Scan(nil))
	require.True(t, got.IsZero())

	require.Error(t, got.Scan(struct{}{}))
}

func TestNullDecimal(t *testing.T) {
	var n NullDecimal
	require.NoError(t, n.Scan(nil))
	require.False(t, n.Valid)

	v, err := n.Value()
	require.NoError(t, err)
	require.Nil(t, v)

	b, err := n.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, "null", string(b))

	require.NoError(t, n.Scan("3.14"))
	require.True(t, n.Valid)
	require.True(t, n.Decimal.Equal(MustParse("3.14")))

	v2, err := n.Value()
	require.NoError(t, err)
	require.Equal(t, "3.14", v2)

	var n2 NullDecimal
	require.NoError(t, n2.UnmarshalJSON([]byte("null")))
	require.False(t, n2.Valid)

	require.NoError(t, n2.UnmarshalJSON([]byte("3.14")))
	require.True(t, n2.Valid)
}
