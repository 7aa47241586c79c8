/*
Package decimal implements decimal fixed-point numbers with correct
rounding, for financial and scientific computation that plain binary
floating-point cannot represent exactly.

# Internal Representation

Decimal is a struct with three fields:

  - Sign:
    A boolean indicating whether the decimal is negative.
  - Coefficient:
    An unsigned 128-bit integer representing the numeric value of the
    decimal without the decimal point.
  - Scale:
    A signed integer indicating the position of the decimal point
    within the coefficient. For example, a decimal with a coefficient
    of 12345 and a scale of 2 represents the value 123.45. Conceptually,
    the scale is the inverse of the exponent in scientific notation: a
    scale of 2 corresponds to an exponent of -2. Unlike many decimal
    libraries, the scale may be negative, which lets a Decimal
    represent very large magnitudes (up to just under 10^164) without padding the
    coefficient with trailing zeros.

The numerical value of a decimal is calculated as follows:

  - -Coefficient * 10^-Scale if Sign is true.
  - Coefficient * 10^-Scale if Sign is false.

This approach allows the same numeric value to have multiple
representations: 1, 1.0 and 1.00 are numerically equal but carry
different coefficients and scales.

# Constraints Overview

The coefficient holds at most 38 decimal digits (MaxPrecision). The
scale ranges from MinScale (-126) to MaxScale (130), which together
with the 38-digit coefficient give a representable magnitude from
10^-130 up to just under 10^164.

[Subnormal numbers] are not supported to keep every representable
value exact. Decimals smaller in magnitude than 10^-MaxScale round to 0.

Special values such as [NaN], [Infinity] or [negative zeros] are not
supported. This ensures that arithmetic operations always produce
either a valid decimal or an error.

# Arithmetic Operations

Every arithmetic operation widens its operands into a 256-bit
intermediate (a u256, built from two 128-bit limbs via math/bits), so
every Add, Sub, Mul and Quo is computed exactly before being rounded
back down to MaxPrecision digits. There is no separate fast/slow tier:
the u128/u256 engine is fast enough on its own that a uint64 shortcut
followed by a big.Int fallback, as some decimal libraries use, would
only add complexity without a measurable benefit at this digit count.

[Decimal.Quo] computes its quotient with MaxPrecision extra digits of
headroom before rounding, so division results carry a full complement
of significant digits regardless of the operands' native precision.

# Transcendental Functions

[Decimal.Sqrt] computes an exact integer square root (via binary
digit-by-digit long division, no floating point involved) over a
suitably scaled wide intermediate, then rounds half-up to MaxPrecision
digits. [Decimal.Ln] and [Decimal.Exp] reduce their argument (by
repeated square-rooting or halving) into a range where a Taylor series
converges quickly, then reverse the reduction; [Decimal.Pow] computes
integer exponents exactly via repeated squaring and falls back to
exp(e*ln(d)) for fractional exponents.

# Rounding

Every operation rounds its result half-up (ties away from zero) to
MaxPrecision significant digits. This is a deliberate choice of ties-
away-from-zero over the round-half-to-even convention more commonly
seen in general-purpose decimal libraries, because half-up is the
rounding rule financial and billing systems overwhelmingly expect.

In addition to the implicit rounding every operation performs, the
package provides explicit rounding methods:

  - Half-up rounding to a given number of fractional digits: [Decimal.Round].
  - Rounding towards positive infinity: [Decimal.Ceil].
  - Rounding towards negative infinity: [Decimal.Floor].
  - Rounding towards zero: [Decimal.Trunc].

# Error Handling

Apart from the Must-prefixed variants, all methods are panic-free and
pure. The common fallible operations (parsing and the basic
arithmetic) have a Must-prefixed sibling that panics instead of
returning an error, for call sites that have already established the
operation cannot fail.

Errors come in three shapes, each wrapping a sentinel so callers can
test for a failure class with errors.Is:

  - [ParseError], returned by [Parse] and [ParseExact], identifies the
    input and why it was rejected (empty, invalid syntax, overflow, or
    underflow).
  - [ConvertError], returned by arithmetic, transcendental and
    primitive-conversion methods, identifies whether the failure was
    an invalid operation (division by zero, square root of a negative
    number, logarithm of a non-positive number) or an overflow.
  - [FormatError], returned by the rarer fallible formatting paths,
    distinguishes a downstream write failure from an out-of-range
    formatting request.

Unlike standard integers, decimals do not wrap around when exceeding
their maximum representable value; out-of-range results return an
overflow error rather than silently producing a wrong answer.

# Data Conversion

A. JSON

The package integrates with standard [encoding/json] through the
implementation of [json.Marshaler] and [json.Unmarshaler]. Decimals are
marshaled as bare JSON number literals to avoid surprising consumers
that expect a numeric type, falling back to scientific notation when
the plain form would exceed 40 characters, while UnmarshalJSON also
accepts a quoted string for interoperability with APIs that serialize
decimals as text.

B. Text and SQL

The package integrates with standard [encoding] via [encoding.TextMarshaler]
and [encoding.TextUnmarshaler], and with [database/sql] via [sql.Scanner]
and [driver.Valuer]. [NullDecimal] mirrors [sql.NullString] for columns
that may be SQL NULL.

C. Binary

[Decimal.MarshalBinary] and [Decimal.UnmarshalBinary] implement a
compact binary codec: 1 byte for a scale-0 integer in [0,255] (zero
included), 2 bytes for a scale-0 integer in [256,65535], and otherwise
a 2-byte header plus up to 16 significand bytes, for up to 18 bytes at
the largest representable value. See the codec.go documentation for the
exact layout. [Decimal.AppendBinary] and [Decimal.AppendText] append
their encoding to a caller-supplied buffer.

# Equality and Hashing

Because the same numeric value may have multiple representations (1,
1.0 and 1.00 carry different coefficients and scales but compare equal
under [Decimal.Cmp] and [Decimal.Equal]), [Decimal.Hash] first
normalizes its receiver so that numerically equal decimals always hash
identically. [Decimal.CmpTotal] is the complement: it breaks ties
between equal values by scale, for callers that need a total order over
the raw representation rather than numeric equality.

# Testing

The test suite uses [testify]'s require and assert packages for
table-driven assertions, following the convention of the wider decimal-
library ecosystem.

[Subnormal numbers]: https://en.wikipedia.org/wiki/Subnormal_number
[Infinity]: https://en.wikipedia.org/wiki/Infinity#Computing
[NaN]: https://en.wikipedia.org/wiki/NaN
[negative zeros]: https://en.wikipedia.org/wiki/Signed_zero
[sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
[sql.NullString]: https://pkg.go.dev/database/sql#NullString
[driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
[encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
[encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
[json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
[json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
[testify]: https://github.com/stretchr/testify
*/
package decimal
