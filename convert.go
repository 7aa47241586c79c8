package decimal

import (
	"math"
	"strconv"
)

// This file implements component C9 (spec §4.9): conversions between
// Decimal and Go's primitive numeric types and bool. Floats round-trip
// through Parse/String rather than a bespoke binary-to-decimal
// algorithm, since the parser already handles exponential notation
// exactly and strconv's shortest round-trip formatting is the
// standard-library-idiomatic way to turn a float64 into its minimal
// decimal text (there is no ecosystem library in the retrieved pack
// that does this float<->decimal conversion differently).

// NewFromInt64 returns the Decimal equal to v.
func NewFromInt64(v int64) (Decimal, error) {
	neg := v < 0
	var mag uint64
	if neg {
		mag = uint64(-(v + 1)) + 1
	} else {
		mag = uint64(v)
	}
	return fromParts(u128FromUint64(mag), 0, neg)
}

// NewFromUint64 returns the Decimal equal to v.
func NewFromUint64(v uint64) (Decimal, error) {
	return fromParts(u128FromUint64(v), 0, false)
}

// NewFromInt32 returns the Decimal equal to v.
func NewFromInt32(v int32) (Decimal, error) { return NewFromInt64(int64(v)) }

// NewFromInt16 returns the Decimal equal to v.
func NewFromInt16(v int16) (Decimal, error) { return NewFromInt64(int64(v)) }

// NewFromInt8 returns the Decimal equal to v.
func NewFromInt8(v int8) (Decimal, error) { return NewFromInt64(int64(v)) }

// NewFromUint32 returns the Decimal equal to v.
func NewFromUint32(v uint32) (Decimal, error) { return NewFromUint64(uint64(v)) }

// NewFromUint16 returns the Decimal equal to v.
func NewFromUint16(v uint16) (Decimal, error) { return NewFromUint64(uint64(v)) }

// NewFromUint8 returns the Decimal equal to v.
func NewFromUint8(v uint8) (Decimal, error) { return NewFromUint64(uint64(v)) }

// NewFromBool returns One if b is true, Zero otherwise.
func NewFromBool(b bool) Decimal {
	if b {
		return One
	}
	return Zero
}

// NewFromFloat64 returns the Decimal nearest to v's shortest round-trip
// decimal representation.
func NewFromFloat64(v float64) (Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Decimal{}, newConvertError(ConvertInvalid, "non-finite float")
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	d, err := Parse(s)
	if err != nil {
		return Decimal{}, newConvertError(ConvertInvalid, s)
	}
	return d, nil
}

// NewFromFloat32 returns the Decimal nearest to v's shortest round-trip
// decimal representation.
func NewFromFloat32(v float32) (Decimal, error) {
	return NewFromFloat64(float64(v))
}

// Int64 returns d as an int64, or an error if d has a fractional part
// or does not fit.
func (d Decimal) Int64() (int64, error) {
	if !d.IsInt() {
		return 0, newConvertError(ConvertInvalid, "fractional value")
	}
	t := d.Trunc(0).normalizeToScale(0)
	if t.scale != 0 || !t.coef.isUint64() {
		return 0, newConvertError(ConvertOverflow, "int64")
	}
	v := t.coef.lo
	if !t.neg {
		if v > math.MaxInt64 {
			return 0, newConvertError(ConvertOverflow, "int64")
		}
		return int64(v), nil
	}
	if v > uint64(math.MaxInt64)+1 {
		return 0, newConvertError(ConvertOverflow, "int64")
	}
	return -int64(v), nil
}

// Uint64 returns d as a uint64, or an error if d is negative, has a
// fractional part, or does not fit.
func (d Decimal) Uint64() (uint64, error) {
	if d.neg {
		return 0, newConvertError(ConvertInvalid, "negative value")
	}
	if !d.IsInt() {
		return 0, newConvertError(ConvertInvalid, "fractional value")
	}
	t := d.Trunc(0).normalizeToScale(0)
	if t.scale != 0 || !t.coef.isUint64() {
		return 0, newConvertError(ConvertOverflow, "uint64")
	}
	return t.coef.lo, nil
}

// Int32 returns d as an int32.
func (d Decimal) Int32() (int32, error) {
	v, err := d.Int64()
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, newConvertError(ConvertOverflow, "int32")
	}
	return int32(v), nil
}

// Int16 returns d as an int16.
func (d Decimal) Int16() (int16, error) {
	v, err := d.Int64()
	if err != nil {
		return 0, err
	}
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, newConvertError(ConvertOverflow, "int16")
	}
	return int16(v), nil
}

// Int8 returns d as an int8.
func (d Decimal) Int8() (int8, error) {
	v, err := d.Int64()
	if err != nil {
		return 0, err
	}
	if v < math.MinInt8 || v > math.MaxInt8 {
		return 0, newConvertError(ConvertOverflow, "int8")
	}
	return int8(v), nil
}

// Uint32 returns d as a uint32.
func (d Decimal) Uint32() (uint32, error) {
	v, err := d.Uint64()
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, newConvertError(ConvertOverflow, "uint32")
	}
	return uint32(v), nil
}

// Uint16 returns d as a uint16.
func (d Decimal) Uint16() (uint16, error) {
	v, err := d.Uint64()
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint16 {
		return 0, newConvertError(ConvertOverflow, "uint16")
	}
	return uint16(v), nil
}

// Uint8 returns d as a uint8.
func (d Decimal) Uint8() (uint8, error) {
	v, err := d.Uint64()
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint8 {
		return 0, newConvertError(ConvertOverflow, "uint8")
	}
	return uint8(v), nil
}

// Float64 returns the nearest float64 to d.
func (d Decimal) Float64() (float64, error) {
	s := d.String()
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, newConvertError(ConvertInvalid, s)
	}
	return v, nil
}

// Float32 returns the nearest float32 to d.
func (d Decimal) Float32() (float32, error) {
	v, err := d.Float64()
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}

// Bool reports whether d is non-zero.
func (d Decimal) Bool() bool {
	return !d.IsZero()
}
