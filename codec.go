package decimal

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"strings"
)

// This file implements component C8 (spec §6.1, the binary codec) plus
// the database/sql, encoding and JSON interop added by the Go-native
// expansion (C12/C13). The dual-representation JSON handling is
// grounded on quagmt-udecimal's codec.go
// (_examples/other_examples/e12b59d2_quagmt-udecimal__codec.go.go),
// which marshals decimals as bare JSON number literals and accepts
// either a quoted or bare literal on the way back in.
//
// Binary layout (1 to 18 bytes), per spec §6.1:
//
//   - 1 byte, if d is a positive integer in [0,255] with scale 0: the
//     single byte m.
//   - 2 bytes, if d is a positive integer in [256,65535] with scale 0:
//     little-endian m.
//   - Otherwise, a 2-byte header followed by 1 to 16 little-endian
//     significand bytes:
//     byte 0 (flags): bit 0 = sign (1 = negative); bit 1 = scale-sign
//     (1 = scale non-negative, 0 = scale negative).
//     byte 1: |scale| as a uint8 (the scale range always fits one byte).
//     bytes 2..: m, little-endian, truncated at the highest non-zero
//     byte (leading zero bytes omitted).
//
// The decoder recovers which case applies from the length alone: 1 or 2
// bytes is always the bare-integer shortcut, 3 or more is always the
// header form.
func (d Decimal) MarshalBinary() ([]byte, error) {
	if !d.neg && d.scale == 0 && d.coef.hi == 0 && d.coef.lo <= 65535 {
		if d.coef.lo <= 255 {
			return []byte{byte(d.coef.lo)}, nil
		}
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(d.coef.lo))
		return buf, nil
	}

	absScale := int(d.scale)
	if absScale < 0 {
		absScale = -absScale
	}
	if absScale > 255 {
		return nil, newFormatError(FormatOutOfRange)
	}

	var flags byte
	if d.neg {
		flags |= 0x01
	}
	if d.scale >= 0 {
		flags |= 0x02
	}

	sig := littleEndianBytes(d.coef)
	if len(sig) > 16 {
		return nil, newFormatError(FormatOutOfRange)
	}
	buf := make([]byte, 2, 2+len(sig))
	buf[0] = flags
	buf[1] = byte(absScale)
	buf = append(buf, sig...)
	return buf, nil
}

// AppendBinary appends d's binary encoding, as produced by MarshalBinary,
// to b and returns the extended buffer.
func (d Decimal) AppendBinary(b []byte) ([]byte, error) {
	enc, err := d.MarshalBinary()
	if err != nil {
		return b, err
	}
	return append(b, enc...), nil
}

// AppendText appends d's default textual representation to b.
func (d Decimal) AppendText(b []byte) ([]byte, error) {
	return append(b, d.String()...), nil
}

// UnmarshalBinary decodes the format written by MarshalBinary.
func (d *Decimal) UnmarshalBinary(data []byte) error {
	switch len(data) {
	case 0:
		return newFormatError(FormatOutOfRange)
	case 1:
		result, err := fromParts(u128FromUint64(uint64(data[0])), 0, false)
		if err != nil {
			return err
		}
		*d = result
		return nil
	case 2:
		v := binary.LittleEndian.Uint16(data)
		result, err := fromParts(u128FromUint64(uint64(v)), 0, false)
		if err != nil {
			return err
		}
		*d = result
		return nil
	}

	flags := data[0]
	neg := flags&0x01 != 0
	scaleNonNeg := flags&0x02 != 0
	sig := data[2:]
	if len(sig) > 16 {
		return newFormatError(FormatOutOfRange)
	}

	absScale := int(data[1])
	scale := absScale
	if !scaleNonNeg {
		scale = -scale
	}
	coef := u128FromLittleEndianBytes(sig)
	result, err := fromParts(coef, int16(scale), neg)
	if err != nil {
		return err
	}
	*d = result
	return nil
}

func littleEndianBytes(x u128) []byte {
	if x.isZero() {
		return nil
	}
	var full [16]byte
	binary.LittleEndian.PutUint64(full[0:8], x.lo)
	binary.LittleEndian.PutUint64(full[8:16], x.hi)
	n := 16
	for n > 0 && full[n-1] == 0 {
		n--
	}
	out := make([]byte, n)
	copy(out, full[:n])
	return out
}

func u128FromLittleEndianBytes(b []byte) u128 {
	var full [16]byte
	copy(full[:], b)
	return u128{
		hi: binary.LittleEndian.Uint64(full[8:16]),
		lo: binary.LittleEndian.Uint64(full[0:8]),
	}
}

// MarshalText renders d via String, satisfying encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses text via Parse, satisfying encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// maxJSONPlainWidth is the spec §4.7 "JSON" threshold: plain form is used
// unless the decimal span exceeds this many characters, in which case the
// literal switches to scientific notation.
const maxJSONPlainWidth = 40

// MarshalJSON renders d as a bare JSON number literal, falling back to
// scientific notation when the plain form would exceed 40 characters.
func (d Decimal) MarshalJSON() ([]byte, error) {
	s := d.String()
	if len(s) <= maxJSONPlainWidth {
		return []byte(s), nil
	}
	return []byte(d.ForceScientific()), nil
}

// UnmarshalJSON accepts either a bare JSON number literal or a quoted
// string, to tolerate both "amount": 1.23 and "amount": "1.23" payloads.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		*d = Decimal{}
		return nil
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Value implements driver.Valuer, storing d as its textual representation.
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner.
func (d *Decimal) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = Decimal{}
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case int64:
		parsed, err := NewFromInt64(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case float64:
		parsed, err := NewFromFloat64(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return newConvertError(ConvertInvalid, fmt.Sprintf("unsupported Scan source %T", value))
	}
}

// NullDecimal represents a Decimal that may be SQL NULL, mirroring the
// standard library's sql.NullString.
type NullDecimal struct {
	Decimal Decimal
	Valid   bool
}

// Scan implements sql.Scanner.
func (n *NullDecimal) Scan(value any) error {
	if value == nil {
		n.Decimal, n.Valid = Decimal{}, false
		return nil
	}
	if err := n.Decimal.Scan(value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Value implements driver.Valuer.
func (n NullDecimal) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Decimal.Value()
}

// MarshalJSON renders a null NullDecimal as the JSON null literal.
func (n NullDecimal) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Decimal.MarshalJSON()
}

// UnmarshalJSON accepts the JSON null literal or anything Decimal.UnmarshalJSON accepts.
func (n *NullDecimal) UnmarshalJSON(data []byte) error {
	if strings.TrimSpace(string(data)) == "null" {
		n.Decimal, n.Valid = Decimal{}, false
		return nil
	}
	if err := n.Decimal.UnmarshalJSON(data); err != nil {
		return err
	}
	n.Valid = true
	return nil
}
