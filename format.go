package decimal

import (
	"io"
	"strconv"
	"strings"
)

// This file implements component C7 (spec §4.7): rendering a Decimal as
// text. Grounded on the digit-extraction and buffer-building style of
// quagmt-udecimal's codec.go (String/StringFixed/fillBuffer), adapted to
// the u128 coefficient and simplified to single-digit extraction rather
// than quagmt's two-digit lookup table, since correctness mattered more
// than micro-optimized throughput here.

// digitsString renders x's decimal digits with no leading zeros ("0"
// for zero).
func (x u128) digitsString() string {
	if x.isZero() {
		return "0"
	}
	var buf [40]byte
	i := len(buf)
	v := x
	for !v.isZero() {
		q, r := v.quoRem64(10)
		i--
		buf[i] = byte('0' + r)
		v = q
	}
	return string(buf[i:])
}

// formatPlain renders d in fixed-point notation with no exponent. If
// minFrac is negative, the fractional part is exactly d's natural
// scale; otherwise it is padded or truncated (without rounding -
// callers round beforehand) to exactly minFrac digits.
func (d Decimal) formatPlain(minFrac int) (string, error) {
	digits := d.coef.digitsString()
	scale := int(d.scale)

	var intPart, fracPart string
	switch {
	case scale <= 0:
		intPart = digits + strings.Repeat("0", -scale)
	case scale >= len(digits):
		intPart = "0"
		fracPart = strings.Repeat("0", scale-len(digits)) + digits
	default:
		split := len(digits) - scale
		intPart = digits[:split]
		fracPart = digits[split:]
	}

	if minFrac >= 0 {
		switch {
		case len(fracPart) > minFrac:
			fracPart = fracPart[:minFrac]
		case len(fracPart) < minFrac:
			fracPart += strings.Repeat("0", minFrac-len(fracPart))
		}
	}

	var b strings.Builder
	if d.neg {
		b.WriteByte('-')
	}
	b.WriteString(intPart)
	if len(fracPart) > 0 {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String(), nil
}

// StringFixed renders d rounded half-up to exactly precision fractional
// digits.
func (d Decimal) StringFixed(precision int) (string, error) {
	if precision < MinScale || precision > MaxScale {
		return "", newFormatError(FormatOutOfRange)
	}
	return d.Round(precision).formatPlain(precision)
}

// Simplified renders d in fixed-point notation with trailing fractional
// zeros removed, and (unlike Default) omits the leading "0" before the
// decimal point for |d| < 1.
func (d Decimal) Simplified() string {
	s, _ := d.Normalize().formatPlain(-1)
	switch {
	case strings.HasPrefix(s, "0."):
		return s[1:]
	case strings.HasPrefix(s, "-0."):
		return "-" + s[2:]
	default:
		return s
	}
}

const maxScientificWidth = 100

// Scientific fits d's textual representation into width characters,
// falling back to forced scientific notation (mantissa.fraction e±exp)
// only if the plain form does not fit. Truncated fractional digits round
// half-up; trailing zeros needed to reach width are preserved. A
// negative width renders the plain form at d's natural scale without a
// width constraint.
func (d Decimal) Scientific(width int) (string, error) {
	if width > maxScientificWidth {
		return "", newFormatError(FormatOutOfRange)
	}
	if width < 0 {
		return d.formatPlain(-1)
	}
	if s, ok := d.fitPlain(width); ok {
		return s, nil
	}
	return d.forceScientific(width)
}

// fitPlain tries to render d in plain notation within width characters,
// rounding half-up to as many fractional digits as fit. It reports
// whether a fit was found.
func (d Decimal) fitPlain(width int) (string, bool) {
	sign := 0
	if d.neg {
		sign = 1
	}
	digits := d.coef.digitsString()
	intLen := len(digits) - int(d.scale)
	if intLen < 1 {
		intLen = 1
	}
	if sign+intLen > width {
		return "", false
	}

	maxFrac := width - sign - intLen
	if maxFrac > 0 {
		maxFrac-- // room for the decimal point
	} else {
		maxFrac = 0
	}

	for {
		rounded := d.Round(maxFrac)
		s, err := rounded.formatPlain(maxFrac)
		if err != nil {
			return "", false
		}
		if len(s) <= width {
			return s, true
		}
		if maxFrac == 0 {
			return "", false
		}
		maxFrac--
	}
}

// forceScientific renders d in normalized scientific notation: one
// non-zero digit before the decimal point (or "0" for zero), followed by
// width fractional digits (rounded half-up) and a signed exponent. A
// negative width uses d's natural mantissa precision without rounding.
func (d Decimal) forceScientific(width int) (string, error) {
	digits := d.coef.digitsString()
	scale := int(d.scale)
	exponent := (len(digits) - 1) - scale

	if width >= 0 {
		targetScale := width - exponent
		rounded := d.Round(targetScale)
		digits = rounded.coef.digitsString()
		scale = int(rounded.scale)
		if rounded.IsZero() {
			exponent = 0
		} else {
			exponent = (len(digits) - 1) - scale
		}
	}

	mantissaInt := digits[:1]
	mantissaFrac := digits[1:]
	if width >= 0 {
		switch {
		case len(mantissaFrac) > width:
			mantissaFrac = mantissaFrac[:width]
		case len(mantissaFrac) < width:
			mantissaFrac += strings.Repeat("0", width-len(mantissaFrac))
		}
	}

	var b strings.Builder
	if d.neg {
		b.WriteByte('-')
	}
	b.WriteString(mantissaInt)
	if len(mantissaFrac) > 0 {
		b.WriteByte('.')
		b.WriteString(mantissaFrac)
	}
	b.WriteByte('e')
	if exponent >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(exponent))
	return b.String(), nil
}

// ForceScientific renders d in forced scientific notation at its natural
// mantissa precision, equivalent to bypassing the plain-form fit that
// Scientific attempts.
func (d Decimal) ForceScientific() string {
	s, _ := d.forceScientific(-1)
	return s
}

// WriteTo writes d's default textual representation to w, satisfying
// io.WriterTo. Write failures are reported as a FormatError wrapping
// the underlying error.
func (d Decimal) WriteTo(w io.Writer) (int64, error) {
	s := d.String()
	n, err := io.WriteString(w, s)
	if err != nil {
		return int64(n), newFormatWriteError(err)
	}
	return int64(n), nil
}

// hexDigits renders x in lowercase hexadecimal with no leading zeros
// ("0" for zero).
func (x u128) hexDigits() string {
	if x.isZero() {
		return "0"
	}
	const hexChars = "0123456789abcdef"
	var buf [32]byte
	i := len(buf)
	v := x
	for !v.isZero() {
		q, r := v.quoRem64(16)
		i--
		buf[i] = hexChars[r]
		v = q
	}
	return string(buf[i:])
}

// Hex renders d rounded to the nearest integer as a signed hexadecimal
// string. Magnitudes above (2^256-1)/16 are rejected with a FormatError
// of kind FormatOutOfRange.
func (d Decimal) Hex() (string, error) {
	r := d.Round(0)
	digits := r.coef.hexDigits()
	if r.scale < 0 {
		k := -int(r.scale)
		if k > maxPow10Index {
			return "", newFormatError(FormatOutOfRange)
		}
		w, ok := mulU128xU256(r.coef, pow10U256[k])
		if !ok || w.hi.hi>>60 != 0 {
			return "", newFormatError(FormatOutOfRange)
		}
		digits = w.lo.hexDigits()
		if !w.hi.isZero() {
			digits = w.hi.hexDigits() + strings.Repeat("0", 32-len(digits)) + digits
		}
	}
	if r.neg {
		return "-" + digits, nil
	}
	return digits, nil
}
