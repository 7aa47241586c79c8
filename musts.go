package decimal

import "fmt"

// MustAdd is like [Decimal.Add] but panics if computing error.
func (d Decimal) MustAdd(e Decimal) Decimal {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", d, err))
	}
	return f
}

// MustSub is like [Decimal.Sub] but panics if computing error.
func (d Decimal) MustSub(e Decimal) Decimal {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", d, err))
	}
	return f
}

// MustMul is like [Decimal.Mul] but panics if computing error.
func (d Decimal) MustMul(e Decimal) Decimal {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", d, err))
	}
	return f
}

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal) MustQuo(e Decimal) Decimal {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", d, err))
	}
	return f
}

// MustRem is like [Decimal.Rem] but panics on error.
func (d Decimal) MustRem(e Decimal) Decimal {
	f, err := d.Rem(e)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", d, err))
	}
	return f
}

// MustSqrt is like [Decimal.Sqrt] but panics on error.
func (d Decimal) MustSqrt() Decimal {
	f, err := d.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("MustSqrt(%v) failed: %v", d, err))
	}
	return f
}

// MustLn is like [Decimal.Ln] but panics on error.
func (d Decimal) MustLn() Decimal {
	f, err := d.Ln()
	if err != nil {
		panic(fmt.Sprintf("MustLn(%v) failed: %v", d, err))
	}
	return f
}

// MustExp is like [Decimal.Exp] but panics on error.
func (d Decimal) MustExp() Decimal {
	f, err := d.Exp()
	if err != nil {
		panic(fmt.Sprintf("MustExp(%v) failed: %v", d, err))
	}
	return f
}

// MustPow is like [Decimal.Pow] but panics on error.
func (d Decimal) MustPow(e Decimal) Decimal {
	f, err := d.Pow(e)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", d, err))
	}
	return f
}

// MustLog2 is like [Decimal.Log2] but panics on error.
func (d Decimal) MustLog2() Decimal {
	f, err := d.Log2()
	if err != nil {
		panic(fmt.Sprintf("MustLog2(%v) failed: %v", d, err))
	}
	return f
}

// MustLog10 is like [Decimal.Log10] but panics on error.
func (d Decimal) MustLog10() Decimal {
	f, err := d.Log10()
	if err != nil {
		panic(fmt.Sprintf("MustLog10(%v) failed: %v", d, err))
	}
	return f
}

// MustParse is like [Parse] but panics on error.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// MustParseExact is like [ParseExact] but panics on error.
func MustParseExact(s string, scale int) Decimal {
	d, err := ParseExact(s, scale)
	if err != nil {
		panic(fmt.Sprintf("MustParseExact(%q, %d) failed: %v", s, scale, err))
	}
	return d
}

// MustNewFromInt64 is like [NewFromInt64] but panics on error.
func MustNewFromInt64(v int64) Decimal {
	d, err := NewFromInt64(v)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromInt64(%d) failed: %v", v, err))
	}
	return d
}

// MustNewFromFloat64 is like [NewFromFloat64] but panics on error.
func MustNewFromFloat64(v float64) Decimal {
	d, err := NewFromFloat64(v)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromFloat64(%v) failed: %v", v, err))
	}
	return d
}
