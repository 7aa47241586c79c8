package decimal

// This file implements component C5 (spec §4.5): the transcendental
// functions Sqrt (in arith.go), Ln, Exp, Pow, plus the Log2/Log10/Log1p/
// Expm1 siblings added by the Go-native expansion. Grounded in spirit on
// the teacher's argument-reduction-plus-series approach in govalues'
// decimal.go (its bint-based Halley/Taylor log/exp internals), adapted
// here to operate directly on Decimal via the checked arithmetic in
// arith.go rather than a bespoke scratch-object-pooled big-integer
// engine: u128/u256 Decimal arithmetic converges quickly enough on its
// own that a separate fast-path integer kernel isn't needed.

// maxSeriesTerms bounds the Taylor-series loops in Ln and Exp. Both
// series are evaluated after argument reduction brings the operand
// within a small range of convergence, so they terminate in well under
// this many iterations once a term rounds away to zero at MaxPrecision
// digits; the bound exists only to guarantee termination.
const maxSeriesTerms = 200

var (
	lnLowerBound = fromPartsUnchecked(u128FromUint64(7), 1, false)  // 0.7
	lnUpperBound = fromPartsUnchecked(u128FromUint64(14), 1, false) // 1.4
)

// Ln returns the natural logarithm of d.
func (d Decimal) Ln() (Decimal, error) {
	if d.neg || d.IsZero() {
		return Decimal{}, newConvertError(ConvertInvalid, "logarithm of non-positive number")
	}
	if d.IsOne() {
		return Decimal{}, nil
	}

	x := d
	m := 0
	for x.Cmp(lnUpperBound) > 0 || x.Cmp(lnLowerBound) < 0 {
		root, err := x.Sqrt()
		if err != nil {
			return Decimal{}, err
		}
		x = root
		m++
		if m > maxSeriesTerms {
			return Decimal{}, newConvertError(ConvertOverflow, "logarithm")
		}
	}

	u, err := x.Sub(One)
	if err != nil {
		return Decimal{}, err
	}
	if u.IsZero() {
		return multiplyByPowerOfTwo(Zero, m)
	}

	term := u
	sum := Zero
	negate := false
	for k := 1; k <= maxSeriesTerms; k++ {
		signed := term
		if negate {
			signed = term.Neg()
		}
		next, err := sum.Add(signed)
		if err != nil {
			return Decimal{}, err
		}
		if term.IsZero() || next.Equal(sum) {
			break
		}
		sum = next
		term, err = term.Mul(u)
		if err != nil {
			return Decimal{}, err
		}
		kCur, err := NewFromInt64(int64(k))
		if err != nil {
			return Decimal{}, err
		}
		term, err = term.Mul(kCur)
		if err != nil {
			return Decimal{}, err
		}
		kNext, err := NewFromInt64(int64(k + 1))
		if err != nil {
			return Decimal{}, err
		}
		term, err = term.Quo(kNext)
		if err != nil {
			return Decimal{}, err
		}
		negate = !negate
	}

	return multiplyByPowerOfTwo(sum, m)
}

func multiplyByPowerOfTwo(d Decimal, m int) (Decimal, error) {
	result := d
	for i := 0; i < m; i++ {
		var err error
		result, err = result.Mul(Two)
		if err != nil {
			return Decimal{}, err
		}
	}
	return result, nil
}

// Exp returns e^d.
func (d Decimal) Exp() (Decimal, error) {
	if d.IsZero() {
		return One, nil
	}
	neg := d.neg
	x := d.Abs()
	m := 0
	for x.Cmp(One) > 0 {
		half, err := x.Quo(Two)
		if err != nil {
			return Decimal{}, err
		}
		x = half
		m++
		if m > maxSeriesTerms {
			return Decimal{}, newConvertError(ConvertOverflow, "exponential")
		}
	}

	term := One
	sum := One
	for k := 1; k <= maxSeriesTerms; k++ {
		var err error
		term, err = term.Mul(x)
		if err != nil {
			return Decimal{}, err
		}
		kk, err := NewFromInt64(int64(k))
		if err != nil {
			return Decimal{}, err
		}
		term, err = term.Quo(kk)
		if err != nil {
			return Decimal{}, err
		}
		sum, err = sum.Add(term)
		if err != nil {
			return Decimal{}, err
		}
		if term.IsZero() {
			break
		}
	}

	for i := 0; i < m; i++ {
		var err error
		sum, err = sum.Mul(sum)
		if err != nil {
			return Decimal{}, err
		}
	}

	if neg {
		return One.Quo(sum)
	}
	return sum, nil
}

// powInt raises d to the integer power n using exponentiation by
// squaring, exact wherever the intermediate products stay within
// MaxPrecision digits.
func (d Decimal) powInt(n int64) (Decimal, error) {
	if n == 0 {
		return One, nil
	}
	negExp := n < 0
	if negExp {
		n = -n
	}
	base := d
	result := One
	var err error
	for n > 0 {
		if n&1 == 1 {
			result, err = result.Mul(base)
			if err != nil {
				return Decimal{}, err
			}
		}
		n >>= 1
		if n > 0 {
			base, err = base.Mul(base)
			if err != nil {
				return Decimal{}, err
			}
		}
	}
	if negExp {
		return One.Quo(result)
	}
	return result, nil
}

// Pow returns d raised to the power e. Integer exponents are computed
// exactly via repeated squaring; fractional exponents fall back to
// exp(e * ln(d)), which requires d > 0.
func (d Decimal) Pow(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return One, nil
	}
	if e.IsInt() {
		if n, err := e.Int64(); err == nil {
			return d.powInt(n)
		}
	}
	if d.IsZero() {
		if e.neg {
			return Decimal{}, newConvertError(ConvertInvalid, "zero raised to a negative power")
		}
		return Zero, nil
	}
	if d.neg {
		return Decimal{}, newConvertError(ConvertInvalid, "non-integer power of a negative number")
	}
	ln, err := d.Ln()
	if err != nil {
		return Decimal{}, err
	}
	product, err := ln.Mul(e)
	if err != nil {
		return Decimal{}, err
	}
	return product.Exp()
}

// Log2 returns the base-2 logarithm of d.
func (d Decimal) Log2() (Decimal, error) {
	ln, err := d.Ln()
	if err != nil {
		return Decimal{}, err
	}
	base, err := Two.Ln()
	if err != nil {
		return Decimal{}, err
	}
	return ln.Quo(base)
}

// Log10 returns the base-10 logarithm of d.
func (d Decimal) Log10() (Decimal, error) {
	ln, err := d.Ln()
	if err != nil {
		return Decimal{}, err
	}
	base, err := Ten.Ln()
	if err != nil {
		return Decimal{}, err
	}
	return ln.Quo(base)
}

// Log1p returns ln(1+d), computed as Ln(d+1) at MaxPrecision digits. It
// has no separate series for small d, so digits of d beyond the 38th
// significant digit of 1+d are lost when d is close to zero.
func (d Decimal) Log1p() (Decimal, error) {
	x, err := d.Add(One)
	if err != nil {
		return Decimal{}, err
	}
	return x.Ln()
}

// Expm1 returns e^d - 1, computed as Exp(d) minus One at MaxPrecision
// digits. It has no separate series for small d, so the result keeps
// fewer than 38 significant digits when d is close to zero.
func (d Decimal) Expm1() (Decimal, error) {
	e, err := d.Exp()
	if err != nil {
		return Decimal{}, err
	}
	return e.Sub(One)
}
