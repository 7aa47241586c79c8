package decimal

// This file implements component C4 (spec §4.4): comparison, the four
// basic arithmetic operations, integer square root, rounding, and the
// small set of aggregate helpers (Sum/Mean/Prod, Clamp/Max/Min) added by
// the Go-native expansion of the spec.

// Cmp compares d and e, returning -1, 0 or +1.
func (d Decimal) Cmp(e Decimal) int {
	if d.IsZero() && e.IsZero() {
		return 0
	}
	if d.neg != e.neg {
		if d.neg {
			return -1
		}
		return 1
	}
	c := cmpMagnitudes(d.coef, d.scale, e.coef, e.scale)
	if d.neg {
		return -c
	}
	return c
}

// CmpAbs compares |d| and |e|, ignoring sign.
func (d Decimal) CmpAbs(e Decimal) int {
	return cmpMagnitudes(d.coef, d.scale, e.coef, e.scale)
}

// CmpTotal imposes a total order over Decimal's representation: it
// agrees with Cmp on numeric value, and additionally orders otherwise-
// equal values by scale, so that e.g. 1.0 sorts before 1.00. Grounded on
// the total-ordering predicate common to decimal libraries that permit
// multiple representations of the same value (spec §3 invariant I8/I9).
func (d Decimal) CmpTotal(e Decimal) int {
	if c := d.Cmp(e); c != 0 {
		return c
	}
	switch {
	case d.scale < e.scale:
		return -1
	case d.scale > e.scale:
		return 1
	default:
		return 0
	}
}

// Equal reports whether d and e are numerically equal.
func (d Decimal) Equal(e Decimal) bool { return d.Cmp(e) == 0 }

// Max returns the larger of d and e.
func (d Decimal) Max(e Decimal) Decimal {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns the smaller of d and e.
func (d Decimal) Min(e Decimal) Decimal {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Clamp restricts d to the closed interval [lo, hi].
func (d Decimal) Clamp(lo, hi Decimal) Decimal {
	if d.Cmp(lo) < 0 {
		return lo
	}
	if d.Cmp(hi) > 0 {
		return hi
	}
	return d
}

// Add returns d+e rounded half-up to MaxPrecision significant digits, or
// a ConvertError if the result's magnitude is out of range.
func (d Decimal) Add(e Decimal) (Decimal, error) {
	return addSigned(d, e)
}

// Sub returns d-e.
func (d Decimal) Sub(e Decimal) (Decimal, error) {
	return addSigned(d, e.Neg())
}

func addSigned(d, e Decimal) (Decimal, error) {
	if d.IsZero() {
		return e, nil
	}
	if e.IsZero() {
		return d, nil
	}
	small, large := d, e
	if d.scale > e.scale {
		small, large = e, d
	}
	wideSmall, wideLarge, negligible := alignMagnitudesForAddSub(small.coef, small.scale, large.coef, large.scale)
	scale := int(large.scale)
	if negligible {
		return small, nil
	}
	if small.neg == large.neg {
		sum, ok := wideSmall.add(wideLarge)
		if !ok {
			return Decimal{}, newConvertError(ConvertOverflow, "sum")
		}
		return adjustScale(sum, scale, large.neg)
	}
	switch wideSmall.cmp(wideLarge) {
	case 0:
		return Decimal{}, nil
	case 1:
		diff, _ := wideSmall.sub(wideLarge)
		return adjustScale(diff, scale, small.neg)
	default:
		diff, _ := wideLarge.sub(wideSmall)
		return adjustScale(diff, scale, large.neg)
	}
}

// Mul returns d*e.
func (d Decimal) Mul(e Decimal) (Decimal, error) {
	if d.IsZero() || e.IsZero() {
		return Decimal{}, nil
	}
	wide := d.coef.mul(e.coef)
	scale := int(d.scale) + int(e.scale)
	sign := d.neg != e.neg
	return adjustScale(wide, scale, sign)
}

// Quo returns d/e rounded half-up to MaxPrecision significant digits of
// quotient precision, per spec §4.4.3's div_round contract. It scales
// the dividend up by 10^MaxPrecision, plus the number of digits by which
// e's significand is longer than d's, before dividing so the quotient
// carries a full complement of digits regardless of the operands'
// native precision, mirroring the teacher's approach of computing
// divisions at extended precision before rounding back down.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, newConvertError(ConvertInvalid, "division by zero")
	}
	if d.IsZero() {
		return Decimal{}, nil
	}
	shift := 0
	if p1, p2 := d.coef.prec(), e.coef.prec(); p2 > p1 {
		shift = p2 - p1
	}
	// d.coef * 10^(MaxPrecision+shift) < 10^76, so it always fits.
	numerator, _ := mulU128xU256(d.coef, pow10U256[MaxPrecision+shift])
	q, r := numerator.quoRemU128(e.coef)
	r2, ok := r.add(r)
	if !ok || r2.cmp(e.coef) >= 0 {
		q, _ = q.add(u256FromU128(u128One))
	}
	scale := int(d.scale) - int(e.scale) + MaxPrecision + shift
	sign := d.neg != e.neg
	return adjustScale(q, scale, sign)
}

// QuoRem returns the truncated (toward zero) integer quotient q and the
// remainder r such that d = q*e + r and |r| < |e|.
func (d Decimal) QuoRem(e Decimal) (q, r Decimal, err error) {
	if e.IsZero() {
		return Decimal{}, Decimal{}, newConvertError(ConvertInvalid, "division by zero")
	}
	raw, err := d.Quo(e)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	q = raw.Trunc(0)
	prod, err := q.Mul(e)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	r, err = d.Sub(prod)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	return q, r, nil
}

// Rem returns the remainder of d/e, i.e. the r from QuoRem.
func (d Decimal) Rem(e Decimal) (Decimal, error) {
	_, r, err := d.QuoRem(e)
	return r, err
}

// truncTo drops digits past precision without rounding, reporting
// whether any non-zero digits were discarded.
func (d Decimal) truncTo(precision int) (Decimal, bool) {
	if d.IsZero() {
		return d, false
	}
	shift := int(d.scale) - precision
	if shift <= 0 {
		return d, false
	}
	if shift > maxPow10Index {
		return Decimal{}, true
	}
	q, r := u256FromU128(d.coef).quoRem(pow10U256[shift])
	res, err := fromParts(q.lo128(), int16(precision), d.neg)
	if err != nil {
		return Decimal{}, true
	}
	return res, !r.isZero()
}

// Trunc truncates d to precision fractional digits, discarding
// remaining digits toward zero.
func (d Decimal) Trunc(precision int) Decimal {
	t, _ := d.truncTo(precision)
	return t
}

// Round rounds d to precision fractional digits using half-up
// rounding (ties away from zero), per spec §4.4.3's div_round contract.
// This departs deliberately from govalues' round-half-to-even: the
// specification mandates half-up for every rounding boundary.
func (d Decimal) Round(precision int) Decimal {
	if d.IsZero() {
		return d
	}
	shift := int(d.scale) - precision
	if shift <= 0 {
		return d
	}
	if shift > maxPow10Index {
		return Decimal{}
	}
	wide := u256FromU128(d.coef)
	sum, ok := wide.add(roundings[shift])
	if !ok {
		sum = wide
	}
	q, _ := sum.quoRem(pow10U256[shift])
	result, err := fromParts(q.lo128(), int16(precision), d.neg)
	if err != nil {
		return Decimal{}
	}
	return result
}

// addULP adds one unit in the last place at the given precision,
// preserving d's sign; used by Ceil/Floor to round away from the
// truncated value.
func (d Decimal) addULP(precision int) Decimal {
	ulp := fromPartsUnchecked(u128One, int16(precision), d.neg)
	r, err := d.Add(ulp)
	if err != nil {
		return d
	}
	return r
}

// Ceil rounds d toward positive infinity to precision fractional digits.
func (d Decimal) Ceil(precision int) Decimal {
	t, hadRemainder := d.truncTo(precision)
	if !hadRemainder || d.neg {
		return t
	}
	return t.addULP(precision)
}

// Floor rounds d toward negative infinity to precision fractional digits.
func (d Decimal) Floor(precision int) Decimal {
	t, hadRemainder := d.truncTo(precision)
	if !hadRemainder || !d.neg {
		return t
	}
	return t.addULP(precision)
}

// isqrtU256 returns floor(sqrt(n)) and the remainder n - floor(sqrt(n))^2,
// using the classic shift-and-test binary digit-by-digit algorithm: no
// division is required, only shifts, compares and add/sub.
func isqrtU256(n u256) (u128, u256) {
	if n.isZero() {
		return u128Zero, u256Zero
	}
	shift := n.bitLen() - 1
	shift -= shift % 2
	bit := u256FromU128(u128One).lsh(uint(shift))
	var res u256
	rem := n
	for !bit.isZero() {
		trial, ok := res.add(bit)
		if ok && rem.cmp(trial) >= 0 {
			rem, _ = rem.sub(trial)
			res = res.rsh(1)
			res, _ = res.add(bit)
		} else {
			res = res.rsh(1)
		}
		bit = bit.rsh(2)
	}
	return res.lo128(), rem
}

// Sqrt returns the square root of d, rounded half-up to MaxPrecision
// significant digits. It is grounded in spirit on the teacher's Newton-
// iteration-based Sqrt (govalues decimal.go), but computes the result
// directly via integer square root over a 10^k-scaled wide intermediate,
// which the u128/u256 engine makes both exact and simpler to verify.
func (d Decimal) Sqrt() (Decimal, error) {
	if d.neg {
		return Decimal{}, newConvertError(ConvertInvalid, "square root of negative number")
	}
	if d.IsZero() {
		return Decimal{}, nil
	}
	prec := d.coef.prec()
	shift := maxPow10Index - prec
	if (int(d.scale)+shift)%2 != 0 {
		shift--
	}
	var wide u256
	if shift <= MaxPrecision {
		wide = d.coef.mul(pow10U128[shift])
	} else {
		var ok bool
		wide, ok = mulU128xU256(d.coef, pow10U256[shift])
		if !ok {
			return Decimal{}, newConvertError(ConvertOverflow, "square root")
		}
	}
	root, rem := isqrtU256(wide)
	twoRem, ok := rem.add(rem)
	threshold := u256FromU128(root)
	threshold, _ = threshold.add(threshold)
	threshold, _ = threshold.add(u256FromU128(u128One))
	if !ok || twoRem.cmp(threshold) >= 0 {
		root, _ = root.add(u128One)
	}
	resultScale := (int(d.scale) + shift) / 2
	return fromParts(root, int16(resultScale), false)
}

// Sum returns the sum of ds, each addition rounded as Add rounds, per
// spec's aggregate-helper addition.
func Sum(ds ...Decimal) (Decimal, error) {
	sum := Zero
	for _, d := range ds {
		var err error
		sum, err = sum.Add(d)
		if err != nil {
			return Decimal{}, err
		}
	}
	return sum, nil
}

// Prod returns the product of ds, each multiplication rounded as Mul
// rounds.
func Prod(ds ...Decimal) (Decimal, error) {
	prod := One
	for _, d := range ds {
		var err error
		prod, err = prod.Mul(d)
		if err != nil {
			return Decimal{}, err
		}
	}
	return prod, nil
}

// Mean returns the arithmetic mean of ds.
func Mean(ds ...Decimal) (Decimal, error) {
	if len(ds) == 0 {
		return Decimal{}, newConvertError(ConvertInvalid, "mean of empty set")
	}
	sum, err := Sum(ds...)
	if err != nil {
		return Decimal{}, err
	}
	n, err := NewFromInt64(int64(len(ds)))
	if err != nil {
		return Decimal{}, err
	}
	return sum.Quo(n)
}
