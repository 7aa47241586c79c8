package decimal

// This file implements component C3 (spec §4.3): aligning operands to a
// common scale and shrinking an over-precise wide intermediate back into
// the 38-digit envelope. It is the heart of the arithmetic kernel that
// C4 (arith.go) and C5 (transcend.go) build on.

// adjustScale takes a wide intermediate and its tentative scale, and
// returns the canonical Decimal it represents, rounding the significand
// down to MaxPrecision digits with half-up rounding if necessary. It
// mirrors spec §4.3.1 exactly.
func adjustScale(wide u256, e int, s bool) (Decimal, error) {
	d := wide.countDigits()
	g := e - d

	switch {
	case g >= MaxScale:
		// Smaller in magnitude than 10^-MaxScale: canonical zero.
		return Decimal{}, nil
	case g < MinScale:
		return Decimal{}, newConvertError(ConvertOverflow, "magnitude")
	case d <= MaxPrecision:
		if e < MinScale || e > maxScaleEffective {
			return Decimal{}, newConvertError(ConvertOverflow, "scale")
		}
		return fromPartsUnchecked(wide.lo128(), int16(e), s), nil
	}

	// d > MaxPrecision: shift right by k digits with half-up rounding.
	k := d - MaxPrecision
	if k > maxPow10Index {
		return Decimal{}, newConvertError(ConvertOverflow, "magnitude")
	}
	sum, ok := wide.add(roundings[k])
	if !ok {
		return Decimal{}, newConvertError(ConvertOverflow, "magnitude")
	}
	q, _ := sum.quoRem(pow10U256[k])
	newScale := e - k
	if newScale < MinScale || newScale > maxScaleEffective {
		return Decimal{}, newConvertError(ConvertOverflow, "scale")
	}
	return fromParts(q.lo128(), int16(newScale), s)
}

// mulU128xU256 multiplies a u128 by a u256 and reports whether the exact
// product fits back in 256 bits.
func mulU128xU256(x u128, y u256) (u256, bool) {
	lo := x.mul(y.lo) // exact, always fits 256 bits
	if y.hi.isZero() {
		return lo, true
	}
	hiPart := x.mul(y.hi)
	if !hiPart.hi.isZero() {
		// x*y.hi alone needs more than 128 bits; shifted left by another
		// 128 bits it can never fit in 256 bits.
		return u256{}, false
	}
	shifted := u256{hi: hiPart.lo}
	return lo.add(shifted)
}

// alignMagnitudesForAddSub widens the smaller-scale operand's magnitude
// (small, at scale e1) to the larger operand's scale e2 (e1 <= e2), per
// spec §4.3.2. If the scale difference is so large that large's
// contribution is negligible next to small's (small rescaled to e2 no
// longer fits 256 bits), negligible is true and wideSmall is zero.
func alignMagnitudesForAddSub(small u128, e1 int16, large u128, e2 int16) (wideSmall, wideLarge u256, negligible bool) {
	wideLarge = u256FromU128(large)
	k := int(e2) - int(e1)
	switch {
	case k == 0:
		return u256FromU128(small), wideLarge, false
	case k <= MaxPrecision:
		return small.mul(pow10U128[k]), wideLarge, false
	case k <= maxPow10Index:
		w, ok := mulU128xU256(small, pow10U256[k])
		if !ok {
			return u256Zero, wideLarge, true
		}
		return w, wideLarge, false
	default:
		return u256Zero, wideLarge, true
	}
}

// cmpMagnitudes compares the absolute values of two Decimals (ignoring
// sign), returning -1, 0 or +1, per the rescale-for-compare rule in
// spec §4.3.2.
func cmpMagnitudes(m1 u128, e1 int16, m2 u128, e2 int16) int {
	if m1.isZero() && m2.isZero() {
		return 0
	}
	switch {
	case e1 == e2:
		return m1.cmp(m2)
	case e1 < e2:
		k := int(e2) - int(e1)
		if k > MaxPrecision && !m1.isZero() {
			// m1 rescaled to e2 would need >38 extra digits, so its
			// magnitude at scale e2 dwarfs any 38-digit m2: m1 is larger.
			return 1
		}
		w1, w2, negligible := alignMagnitudesForAddSub(m1, e1, m2, e2)
		if negligible {
			if m2.isZero() {
				return 1
			}
			return -1
		}
		return w1.cmp(w2)
	default:
		return -cmpMagnitudes(m2, e2, m1, e1)
	}
}

// normalizeToScale moves trailing base-10 zeros in or out of d's
// significand to reach target where possible, per spec §4.3.3.
func (d Decimal) normalizeToScale(target int16) Decimal {
	if d.IsZero() {
		return Decimal{}
	}
	m, e, s := d.coef, d.scale, d.neg
	for e > target {
		q, r := m.quoRem64(10)
		if r != 0 {
			break
		}
		m = q
		e--
	}
	for e < target {
		next, ok := m.mul128Checked(10)
		if !ok || next.cmp(maxSig) > 0 {
			break
		}
		m = next
		e++
	}
	return fromPartsUnchecked(m, e, s)
}

// normalize returns the canonical form of d: trailing fractional zeros
// removed (or added back, to the extent the significand allows) so that
// two numerically equal Decimals always compare structurally equal
// after normalization. Hash (spec §9 Open Question) uses this form.
func (d Decimal) normalize() Decimal {
	return d.normalizeToScale(0)
}

// Normalize returns d with every trailing zero removed from its
// significand, lowering the scale by the same count (1.500 becomes 1.5,
// and 100 becomes 1 at scale -2).
func (d Decimal) Normalize() Decimal {
	if d.IsZero() {
		return d
	}
	tz := d.coef.tzeros()
	target := d.scale - int16(tz)
	return d.normalizeToScale(target)
}
