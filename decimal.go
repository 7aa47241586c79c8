package decimal

import (
	"fmt"
	"hash/fnv"
)

// Decimal represents a signed, fixed-point decimal number of the form
// (-1)^neg * coef * 10^-scale. Its zero value corresponds to the numeric
// value of 0.
//
// Decimal is an immutable value type: every operation on it returns a new
// Decimal, never mutates the receiver, and it is safe for concurrent use
// by multiple goroutines. This mirrors the teacher's govalues Decimal,
// generalized from a 19-digit uint64 coefficient to a 38-digit u128
// coefficient per spec §3.
type Decimal struct {
	coef  u128
	scale int16
	neg   bool
}

const (
	// MaxPrecision is the maximum number of decimal digits a Decimal's
	// significand may hold.
	MaxPrecision = 38

	// MaxScale is the largest scale a Decimal constructed through the
	// public API may carry.
	MaxScale = 130

	// MinScale is the smallest (most negative) scale a Decimal
	// constructed through the public API may carry.
	MinScale = -126

	// maxScaleEffective extends MaxScale to accommodate intermediates
	// that underflowed during a rescale; per spec §9's Open Question,
	// we adopt the wider clamp MaxScale+MaxPrecision-1 for trunc/round.
	maxScaleEffective = MaxScale + MaxPrecision - 1 // 169
)

var (
	// Zero is the canonical representation of the numeric value 0.
	Zero = Decimal{}

	// One represents the decimal value 1.
	One = Decimal{coef: u128One}

	// NegOne represents the decimal value -1.
	NegOne = Decimal{coef: u128One, neg: true}

	// Two represents the decimal value 2.
	Two = Decimal{coef: u128FromUint64(2)}

	// Ten represents the decimal value 10.
	Ten = Decimal{coef: u128FromUint64(10)}
)

// fromParts validates (m, e, s) against the Decimal invariants (spec §3)
// and returns a canonical Decimal, or an overflow error.
func fromParts(m u128, e int16, s bool) (Decimal, error) {
	if m.isDecimalOverflowed() {
		return Decimal{}, newConvertError(ConvertOverflow, "significand")
	}
	if e < MinScale || e > maxScaleEffective {
		return Decimal{}, newConvertError(ConvertOverflow, "scale")
	}
	return fromPartsUnchecked(m, e, s), nil
}

// fromPartsUnchecked builds a Decimal without validating bounds. Callers
// must have already established m <= MAX_SIG and MinScale <= e <=
// maxScaleEffective; it still canonicalizes zero (invariant I1/I2).
func fromPartsUnchecked(m u128, e int16, s bool) Decimal {
	if m.isZero() {
		return Decimal{}
	}
	return Decimal{coef: m, scale: e, neg: s}
}

// intoParts decomposes d into its significand, scale and sign, the
// inverse of fromParts.
func (d Decimal) intoParts() (m u128, e int16, s bool) {
	return d.coef, d.scale, d.neg
}

// Precision returns the number of decimal digits in d's significand
// (1 for zero).
func (d Decimal) Precision() int {
	return d.coef.prec()
}

// Scale returns d's scale: the power of ten, possibly negative, that
// d's significand is divided by to obtain d's value.
func (d Decimal) Scale() int {
	return int(d.scale)
}

// IsSignNegative reports whether d carries the negative sign bit. It
// returns false for zero, which is always non-negative (invariant I1).
func (d Decimal) IsSignNegative() bool { return d.neg }

// IsSignPositive reports whether d does not carry the negative sign bit.
func (d Decimal) IsSignPositive() bool { return !d.neg }

// IsZero reports whether d is the canonical zero.
func (d Decimal) IsZero() bool { return d.coef.isZero() }

// IsNeg reports whether d represents a value strictly less than zero.
func (d Decimal) IsNeg() bool { return d.neg && !d.coef.isZero() }

// IsPos reports whether d represents a value strictly greater than zero.
func (d Decimal) IsPos() bool { return !d.neg && !d.coef.isZero() }

// IsOne reports whether d is numerically equal to 1.
func (d Decimal) IsOne() bool {
	return d.Cmp(One) == 0
}

// Sign returns -1, 0 or +1 as d is negative, zero or positive.
func (d Decimal) Sign() int {
	switch {
	case d.IsZero():
		return 0
	case d.neg:
		return -1
	default:
		return 1
	}
}

// Abs returns the absolute value of d.
func (d Decimal) Abs() Decimal {
	d.neg = false
	return d
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	if d.IsZero() {
		return d
	}
	d.neg = !d.neg
	return d
}

// CopySign returns a Decimal with the magnitude of d and the sign of e.
func (d Decimal) CopySign(e Decimal) Decimal {
	if d.IsZero() {
		return d
	}
	d.neg = e.neg
	return d
}

// IsInt reports whether d has no fractional part, i.e. is an integer
// multiple of 1.
func (d Decimal) IsInt() bool {
	if d.scale <= 0 {
		return true
	}
	return d.coef.tzeros() >= int(d.scale)
}

// WithinOne reports whether |d| < 1.
func (d Decimal) WithinOne() bool {
	return d.IsZero() || d.Precision()-int(d.scale) <= 0
}

// String renders d in plain notation with trailing fractional zeros
// removed.
func (d Decimal) String() string {
	s, err := d.Normalize().formatPlain(-1)
	if err != nil {
		return "<invalid decimal>"
	}
	return s
}

// GoString implements fmt.GoStringer for debugging output.
func (d Decimal) GoString() string {
	return fmt.Sprintf("decimal.Decimal{%s}", d.String())
}

// Hash returns a hash of d's numeric value: normalized first so that
// numerically equal Decimals (e.g. 1.0 and 1.00) always hash identically,
// satisfying the same equals-implies-equal-hash contract Go expects of
// a map key's comparison function.
func (d Decimal) Hash() uint64 {
	n := d.normalize()
	h := fnv.New64a()
	b, _ := n.MarshalBinary()
	h.Write(b)
	return h.Sum64()
}
