package decimal

// This file implements component C6 (spec §4.6): parsing Decimal values
// from text. Grounded on the teacher's parseFint/parseBint grammar in
// govalues-decimal/decimal.go (sign, integer part, '.', fraction part,
// optional exponent), collapsed here into a single accumulator since
// the u128 coefficient already covers the full MaxPrecision range
// without a fast/slow two-tier split.
//
//	sign        ::= '+' | '-'
//	digits      ::= { '0'..'9' }
//	significand ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent    ::= ('e' | 'E') [sign] digits
//	input       ::= [sign] significand [exponent]
//
// When the significand carries more than MaxPrecision significant
// digits, the first digit beyond the cutoff is used to round the
// kept digits half-up (the "39th digit" rule); any digits after that
// are consumed only to validate syntax. The rule applies only to digits
// after the decimal point: a 39th or later significant digit before the
// point is rejected with ParseOverflow rather than rounded.

const maxParseLen = 8192

// Parse parses s into a Decimal.
func Parse(s string) (Decimal, error) {
	if len(s) == 0 {
		return Decimal{}, newParseError(ParseEmpty, s)
	}
	if len(s) > maxParseLen {
		return Decimal{}, newParseError(ParseInvalid, s)
	}
	coef, scale, neg, err := parseDigits(s)
	if err != nil {
		return Decimal{}, err
	}
	return fromPartsUnchecked(coef, int16(scale), neg), nil
}

// ParseExact is like Parse, but treats the loss of any significant
// digit during rounding to scale as an error. It is intended for
// parsing fixed-scale quantities such as monetary amounts.
func ParseExact(s string, scale int) (Decimal, error) {
	if scale < MinScale || scale > MaxScale {
		return Decimal{}, newParseError(ParseInvalid, s)
	}
	d, err := Parse(s)
	if err != nil {
		return Decimal{}, err
	}
	rounded := d.Round(scale)
	if rounded.Cmp(d) != 0 {
		return Decimal{}, newParseError(ParseInvalid, s)
	}
	return rounded, nil
}

func parseDigits(s string) (coef u128, scale int, neg bool, err error) {
	pos, width := 0, len(s)

	switch {
	case pos == width:
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	var (
		digits        int
		sawDot        bool
		hasCoef       bool
		roundingDone  bool
	)

	for pos < width {
		c := s[pos]
		if c == '.' {
			if sawDot {
				return u128{}, 0, false, newParseError(ParseInvalid, s)
			}
			sawDot = true
			pos++
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		hasCoef = true
		dv := int(c - '0')

		switch {
		case roundingDone:
			// Past the precision cutoff; consumed only for syntax.
		case digits == 0 && dv == 0:
			// Leading zero: doesn't consume significant-digit budget,
			// but still advances the fractional scale if past the dot.
			if sawDot {
				scale++
			}
		case digits < MaxPrecision:
			next, ok := coef.mul128Checked(10)
			if !ok {
				return u128{}, 0, false, newParseError(ParseOverflow, s)
			}
			sum, ok := next.add(u128FromUint64(uint64(dv)))
			if !ok {
				return u128{}, 0, false, newParseError(ParseOverflow, s)
			}
			coef = sum
			digits++
			if sawDot {
				scale++
			}
		case !sawDot:
			// A 39th+ integer digit is rejected rather than rounded.
			return u128{}, 0, false, newParseError(ParseOverflow, s)
		default:
			if dv >= 5 {
				sum, ok := coef.add(u128One)
				if !ok {
					return u128{}, 0, false, newParseError(ParseOverflow, s)
				}
				coef = sum
				if coef.cmp(pow10U128[MaxPrecision]) == 0 {
					// Rounding carried the significand to exactly
					// 10^MaxPrecision; shed the now-redundant trailing
					// zero losslessly rather than overflow.
					q, _ := coef.quoRem64(10)
					coef = q
					scale--
				}
			}
			roundingDone = true
		}
		pos++
	}
	if !hasCoef {
		return u128{}, 0, false, newParseError(ParseEmpty, s)
	}

	exp, err := parseExponent(s, &pos)
	if err != nil {
		return u128{}, 0, false, err
	}
	if pos != width {
		return u128{}, 0, false, newParseError(ParseInvalid, s)
	}

	finalScale := scale - exp
	switch {
	case coef.isZero():
		return u128{}, 0, neg, nil
	case finalScale < MinScale:
		return u128{}, 0, false, newParseError(ParseOverflow, s)
	case finalScale > MaxScale:
		return u128{}, 0, false, newParseError(ParseUnderflow, s)
	}
	return coef, finalScale, neg, nil
}

func parseExponent(s string, pos *int) (int, error) {
	width := len(s)
	if *pos >= width || (s[*pos] != 'e' && s[*pos] != 'E') {
		return 0, nil
	}
	p := *pos + 1
	eneg := false
	switch {
	case p == width:
	case s[p] == '-':
		eneg = true
		p++
	case s[p] == '+':
		p++
	}
	var exp int
	hasExpDigits := false
	for p < width && s[p] >= '0' && s[p] <= '9' {
		exp = exp*10 + int(s[p]-'0')
		if exp > 100000 {
			return 0, newParseError(ParseInvalid, s)
		}
		p++
		hasExpDigits = true
	}
	if !hasExpDigits {
		return 0, newParseError(ParseInvalid, s)
	}
	*pos = p
	if eneg {
		return -exp, nil
	}
	return exp, nil
}
