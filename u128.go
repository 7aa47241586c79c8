package decimal

import "math/bits"

// u128 is an unsigned 128-bit integer, stored as two 64-bit limbs:
// value = hi*2^64 + lo. It is used as the storage type for a Decimal's
// significand, which never exceeds 10^38-1 and therefore always fits.
//
// u128 is grounded on the split-limb style of the quagmt-udecimal u128/u256
// pair (_examples/other_examples/b646cdd4_quagmt-udecimal__u256.go.go),
// generalized here to a from-scratch implementation since that file's own
// u128.go was not part of the retrieved pack.
type u128 struct {
	hi, lo uint64
}

var (
	u128Zero = u128{}
	u128One  = u128{lo: 1}
)

func u128FromUint64(x uint64) u128 { return u128{lo: x} }

func (x u128) isZero() bool { return x.hi == 0 && x.lo == 0 }

func (x u128) isUint64() bool { return x.hi == 0 }

// cmp returns -1, 0 or +1 as x is less than, equal to, or greater than y.
func (x u128) cmp(y u128) int {
	switch {
	case x.hi != y.hi:
		if x.hi < y.hi {
			return -1
		}
		return 1
	case x.lo != y.lo:
		if x.lo < y.lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// add returns x+y and whether the result did not overflow 128 bits.
func (x u128) add(y u128) (u128, bool) {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi, carry := bits.Add64(x.hi, y.hi, carry)
	return u128{hi: hi, lo: lo}, carry == 0
}

// sub returns x-y and whether the result did not underflow (x >= y).
func (x u128) sub(y u128) (u128, bool) {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	hi, borrow := bits.Sub64(x.hi, y.hi, borrow)
	return u128{hi: hi, lo: lo}, borrow == 0
}

// dist returns |x-y|.
func (x u128) dist(y u128) u128 {
	if x.cmp(y) >= 0 {
		z, _ := x.sub(y)
		return z
	}
	z, _ := y.sub(x)
	return z
}

// mul returns the exact 256-bit product x*y.
func (x u128) mul(y u128) u256 {
	// Schoolbook multiplication of two 2-limb numbers into four limbs.
	hiHi, loHi := bits.Mul64(x.hi, y.hi)
	hiLo, loLo := bits.Mul64(x.lo, y.lo)
	hiMid1, loMid1 := bits.Mul64(x.hi, y.lo)
	hiMid2, loMid2 := bits.Mul64(x.lo, y.hi)

	// Accumulate the low halves of the two middle cross terms plus the
	// high half of the low-order product into the second limb, counting
	// its carries into the third.
	var carry uint64
	mid, c := bits.Add64(loMid1, loMid2, 0)
	carry += c
	mid, c = bits.Add64(mid, hiLo, 0)
	carry += c

	lo := loLo
	hi := mid

	top, c := bits.Add64(hiMid1, hiMid2, 0)
	top, c2 := bits.Add64(top, loHi, 0)
	top, c3 := bits.Add64(top, carry, 0)
	highest := hiHi + c + c2 + c3

	return u256{hi: u128{hi: highest, lo: top}, lo: u128{hi: hi, lo: lo}}
}

// lsh returns x*2^n, truncated to 128 bits (n must be < 128).
func (x u128) lsh(n uint) u128 {
	switch {
	case n == 0:
		return x
	case n < 64:
		return u128{hi: x.hi<<n | x.lo>>(64-n), lo: x.lo << n}
	default:
		return u128{hi: x.lo << (n - 64), lo: 0}
	}
}

// rsh returns x/2^n (n must be < 128).
func (x u128) rsh(n uint) u128 {
	switch {
	case n == 0:
		return x
	case n < 64:
		return u128{hi: x.hi >> n, lo: x.lo>>n | x.hi<<(64-n)}
	default:
		return u128{hi: 0, lo: x.hi >> (n - 64)}
	}
}

func (x u128) isOdd() bool { return x.lo&1 != 0 }

func (x u128) bitLen() int {
	if x.hi != 0 {
		return 64 + bits.Len64(x.hi)
	}
	return bits.Len64(x.lo)
}

// quoRem64 divides x by the uint64 y, returning the quotient (as a u128)
// and remainder.
func (x u128) quoRem64(y uint64) (q u128, r uint64) {
	if x.hi == 0 {
		return u128{lo: x.lo / y}, x.lo % y
	}
	qHi, r := bits.Div64(0, x.hi, y)
	qLo, r := bits.Div64(r, x.lo, y)
	return u128{hi: qHi, lo: qLo}, r
}

// quoRem divides x by y, both up to 128 bits, using simple binary
// long division (shift-and-subtract). It is not the fastest possible
// algorithm, but it is straightforward to verify correct and y is at
// most 38 decimal digits, so at most ~127 iterations are ever required.
func (x u128) quoRem(y u128) (q, r u128) {
	if y.isUint64() {
		qq, rr := x.quoRem64(y.lo)
		return qq, u128{lo: rr}
	}
	if x.cmp(y) < 0 {
		return u128Zero, x
	}
	n := x.bitLen() - y.bitLen()
	if n < 0 {
		return u128Zero, x
	}
	divisor := y.lsh(uint(n))
	rem := x
	var quo u128
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

func (x u128) setBit(i uint) u128 {
	if i < 64 {
		return u128{hi: x.hi, lo: x.lo | 1<<i}
	}
	return u128{hi: x.hi | 1<<(i-64), lo: x.lo}
}

// prec returns the number of decimal digits in x (1 for zero), via
// binary search over pow10U128 per the count_digits contract in spec §4.1.
func (x u128) prec() int {
	if x.isZero() {
		return 1
	}
	left, right := 0, len(pow10U128)
	for left < right {
		mid := (left + right) / 2
		if x.cmp(pow10U128[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// hasPrec reports whether x has at least prec decimal digits.
func (x u128) hasPrec(prec int) bool {
	if prec < 1 {
		return true
	}
	if prec-1 >= len(pow10U128) {
		return false
	}
	return x.cmp(pow10U128[prec-1]) >= 0
}

// isDecimalOverflowed reports whether x > MAX_SIG (10^38-1), i.e. does
// not fit the maximum legal significand.
func (x u128) isDecimalOverflowed() bool {
	return x.cmp(maxSig) > 0
}

// tzeros returns the number of trailing decimal zeros in x (0 for zero).
func (x u128) tzeros() int {
	if x.isZero() {
		return 0
	}
	p := x.prec()
	n := 0
	for k := p - 1; k >= 1; k-- {
		_, r := x.quoRem(pow10U128[k])
		if r.isZero() {
			n = k
			break
		}
	}
	return n
}
