package decimal

// u256 is an unsigned 256-bit integer stored as two 128-bit limbs:
// value = hi*2^128 + lo. It is the wide intermediate type that backs
// multiplication, division and rescaling, per spec §2 component C1.
//
// Grounded on the limb-splitting approach of the quagmt-udecimal u256
// (_examples/other_examples/b646cdd4_quagmt-udecimal__u256.go.go), which
// also represents a 256-bit value as smaller fixed-width limbs (there:
// hi/lo uint64 plus a u128 carry; here: two u128 limbs, which is simpler
// given Go has no native 256-bit primitive either way).
type u256 struct {
	hi, lo u128
}

var u256Zero = u256{}

func u256FromU128(x u128) u256 { return u256{lo: x} }

func (x u256) isZero() bool { return x.hi.isZero() && x.lo.isZero() }

func (x u256) cmp(y u256) int {
	if c := x.hi.cmp(y.hi); c != 0 {
		return c
	}
	return x.lo.cmp(y.lo)
}

// fitsU128 reports whether x's high limb is zero, i.e. x fits in a u128.
func (x u256) fitsU128() bool { return x.hi.isZero() }

func (x u256) lo128() u128 { return x.lo }

// add returns x+y and whether the result did not overflow 256 bits.
func (x u256) add(y u256) (u256, bool) {
	lo, ok1 := x.lo.add(y.lo)
	var carry u128
	if !ok1 {
		carry = u128One
	}
	hi, ok2 := x.hi.add(y.hi)
	hi, ok3 := hi.add(carry)
	return u256{hi: hi, lo: lo}, ok2 && ok3
}

// sub returns x-y and whether the result did not underflow (x >= y).
func (x u256) sub(y u256) (u256, bool) {
	lo, ok1 := x.lo.sub(y.lo)
	hi, ok2 := x.hi.sub(y.hi)
	if !ok1 {
		var ok3 bool
		hi, ok3 = hi.sub(u128One)
		ok2 = ok2 && ok3
	}
	return u256{hi: hi, lo: lo}, ok2
}

// rsh returns x/2^n for n < 256.
func (x u256) rsh(n uint) u256 {
	switch {
	case n == 0:
		return x
	case n < 128:
		return u256{hi: x.hi.rsh(n), lo: x.lo.rsh(n).or(x.hi.lsh(128 - n))}
	default:
		return u256{lo: x.hi.rsh(n - 128)}
	}
}

// quoRemU128 divides the 256-bit x by the 128-bit y, returning a 256-bit
// quotient (whose high limb is zero whenever the true quotient fits in
// 128 bits) and a 128-bit remainder. It uses simple binary long division.
func (x u256) quoRemU128(y u128) (q u256, r u128) {
	if y.isZero() {
		panic("decimal: division by zero in quoRemU128")
	}
	if x.fitsU128() {
		qq, rr := x.lo.quoRem(y)
		return u256FromU128(qq), rr
	}
	// x.hi != 0: long-divide bit by bit over the full 256-bit value.
	n := x.bitLen() - y.bitLen()
	if n < 0 {
		return u256Zero, x.lo // x < y since y fits 128 bits and x.hi != 0 is impossible here... unreachable
	}
	rem := x
	var quo u256
	divisor := u256FromU128(y).lsh(uint(n))
	for i := n; i >= 0; i-- {
		if rem.cmp(divisor) >= 0 {
			rem, _ = rem.sub(divisor)
			quo = quo.setBit(uint(i))
		}
		if i > 0 {
			divisor = divisor.rsh(1)
		}
	}
	return quo, rem.lo
}

// quoRem divides x by y (both up to 256 bits) using binary long division.
func (x u256) quoRem(y u256) (q, r u256) {
	if y.isZero() {
		panic("decimal: division by zero in quoRem")
	}
	if x.cmp(y) < 0 {
		return u256Zero, x
	}
	n := x.bitLen() - y.bitLen()
	divisor := y.lsh(uint(n))
	rem := x
	var quo u256
	for i := n; i >= 0; i-- {
		if rem.cmp(divisor) >= 0 {
			rem, _ = rem.sub(divisor)
			quo = quo.setBit(uint(i))
		}
		if i > 0 {
			divisor = divisor.rsh(1)
		}
	}
	return quo, rem
}

func (x u256) lsh(n uint) u256 {
	switch {
	case n == 0:
		return x
	case n < 128:
		return u256{hi: x.hi.lsh(n).or(x.lo.rsh(128 - n)), lo: x.lo.lsh(n)}
	default:
		return u256{hi: x.lo.lsh(n - 128)}
	}
}

// or returns the bitwise OR of x and y; used to merge bits shifted
// across the 128-bit limb boundary in u256.lsh/rsh.
func (x u128) or(y u128) u128 {
	return u128{hi: x.hi | y.hi, lo: x.lo | y.lo}
}

func (x u256) setBit(i uint) u256 {
	if i < 128 {
		return u256{hi: x.hi, lo: x.lo.setBit(i)}
	}
	return u256{hi: x.hi.setBit(i - 128), lo: x.lo}
}

func (x u256) bitLen() int {
	if !x.hi.isZero() {
		return 128 + x.hi.bitLen()
	}
	return x.lo.bitLen()
}

// divRoundU128 divides the 256-bit x by the 128-bit y with half-up
// rounding on the remainder, per the div_round contract in spec §4.4.3:
// if 2*r >= y, the quotient is incremented.
func (x u256) divRoundU128(y u128) u128 {
	q, r := x.quoRemU128(y)
	r2, ok := r.add(r)
	rounds := !ok || r2.cmp(y) >= 0
	ql := q.lo128()
	if rounds {
		ql, _ = ql.add(u128One)
	}
	return ql
}

// countDigits returns the number of decimal digits of x (1 for zero),
// via binary search over pow10U256 per the count_digits contract.
func (x u256) countDigits() int {
	if x.isZero() {
		return 1
	}
	left, right := 0, len(pow10U256)
	for left < right {
		mid := (left + right) / 2
		if x.cmp(pow10U256[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// --- constant tables (spec §3 "Constant tables", §4.1) ---

// maxPow10Index is the highest exponent needed: a 38-digit number times
// a 38-digit number needs up to 76 digits to represent exactly, and the
// rescale fallback in §4.3.2 may need one more power of ten of headroom.
const maxPow10Index = 76

var (
	// pow10U128 holds 10^k for k in [0,38], the full range that fits a u128.
	pow10U128 [MaxPrecision + 1]u128

	// pow10U256 holds 10^k for k in [0,76] as specified by spec §3
	// ("POWERS_10[0..=76]").
	pow10U256 [maxPow10Index + 1]u256

	// roundings holds 5*10^(k-1) for k>=1 and 0 for k==0, used for
	// half-up rounding when shifting a value down by k digits (spec §3
	// "ROUNDINGS[0..=76]").
	roundings [maxPow10Index + 1]u256

	// maxSig is MAX_SIG = 10^38 - 1, the largest legal significand.
	maxSig u128
)

func init() {
	pow10U128[0] = u128One
	for k := 1; k < len(pow10U128); k++ {
		v, ok := pow10U128[k-1].mul128Checked(10)
		if !ok {
			panic("decimal: pow10U128 overflow during initialization")
		}
		pow10U128[k] = v
	}
	maxSig, _ = pow10U128[MaxPrecision].sub(u128One)

	pow10U256[0] = u256FromU128(u128One)
	ten := u256FromU128(u128FromUint64(10))
	for k := 1; k < len(pow10U256); k++ {
		v, ok := mulU256(pow10U256[k-1], ten)
		if !ok {
			panic("decimal: pow10U256 overflow during initialization")
		}
		pow10U256[k] = v
	}

	roundings[0] = u256Zero
	for k := 1; k < len(roundings); k++ {
		v, ok := mulU256(pow10U256[k-1], u256FromU128(u128FromUint64(5)))
		if !ok {
			panic("decimal: roundings overflow during initialization")
		}
		roundings[k] = v
	}
}

// mul128Checked multiplies x by a small uint64 y and reports whether the
// 128-bit product did not overflow, i.e. the high limb of the 256-bit
// result is zero.
func (x u128) mul128Checked(y uint64) (u128, bool) {
	p := x.mul(u128FromUint64(y))
	return p.lo, p.hi.isZero()
}

// mulU256 computes the exact product of two u256 values and reports
// whether it fits back in 256 bits (true for every table-initialization
// call site above, since those products are bounded by 10^76 < 2^256).
func mulU256(x, y u256) (u256, bool) {
	// (xh*2^128+xl)*(yh*2^128+yl) = xh*yh*2^256 + (xh*yl+xl*yh)*2^128 + xl*yl
	if !x.hi.isZero() && !y.hi.isZero() {
		return u256Zero, false
	}
	ll := x.lo.mul(y.lo)
	var mid u256
	overflow := false
	if !x.hi.isZero() {
		m := x.hi.mul(y.lo)
		if !m.hi.isZero() {
			overflow = true
		}
		mid = u256FromU128(m.lo)
	}
	if !y.hi.isZero() {
		m := x.lo.mul(y.hi)
		if !m.hi.isZero() {
			overflow = true
		}
		s, ok := mid.lo.add(m.lo)
		mid.lo = s
		if !ok {
			overflow = true
		}
	}
	shifted := mid.lsh(128)
	if !mid.fitsU128() {
		overflow = true
	}
	result, ok := ll.add(shifted)
	if !ok {
		overflow = true
	}
	return result, !overflow
}
