package amount

import (
	"cmp"
	"math/big"

	"github.com/shopspring/decimal"
)

// Amount is a numeric financial quantity.
// It is implemented by [DecimalAmount] and [DiscreteAmount] only.
//
// All implementations are immutable: arithmetic returns a new amount and
// never changes its operands, so amounts are safe for concurrent use by
// multiple goroutines.
//
// Binary operations accept either representation as the operand and use the
// [Context] of the receiver.
type Amount interface {
	// Neg returns the additive inverse.
	Neg() Amount

	// Inv returns the multiplicative inverse, rounded with the context
	// rounding mode. The inverse of zero is zero.
	Inv() (Amount, error)

	// Add returns the sum of the amount and o.
	Add(o Amount) (Amount, error)

	// Sub returns the difference between the amount and o.
	Sub(o Amount) (Amount, error)

	// Mul returns the product of the amount and o.
	// The handler is used only by representations that must round the product.
	Mul(o Amount, h RemainderHandler) (Amount, error)

	// Quo returns the quotient of the amount and o, rounded with the mode of
	// the handler. The quotient of a division by zero is zero.
	Quo(o Amount, h RemainderHandler) (Amount, error)

	// Cmp compares numeric values, regardless of representation, and returns:
	//
	//	-1 if a < o
	//	 0 if a = o
	//	+1 if a > o
	Cmp(o Amount) int

	// IsPos returns true if the amount is greater than zero.
	IsPos() bool
	// IsZero returns true if the amount is zero.
	IsZero() bool
	// IsNeg returns true if the amount is less than zero.
	IsNeg() bool
	// IsMax returns true if the amount sits at the upper int64 boundary.
	IsMax() bool
	// IsMin returns true if the amount sits at the lower int64 boundary.
	IsMin() bool

	// Float64 returns the nearest float64.
	// It is meant for display only, never for further computation.
	Float64() float64

	// Decimal returns the canonical decimal form of the amount, rounded
	// half-to-even to at most the working precision of significant digits.
	Decimal() decimal.Decimal

	// ToBasis converts the amount to a count of units at basis b, rounding
	// with the mode of h and reporting the remainder to h exactly once.
	ToBasis(b Basis, h RemainderHandler) (DiscreteAmount, error)

	// Scale returns the number of digits after the decimal point.
	Scale() int

	// AssertBasis returns a [BasisMismatch] error unless the amount has
	// intrinsic basis b.
	AssertBasis(b Basis) error

	// Context returns the context the amount is bound to.
	Context() Context

	String() string

	rat() *big.Rat
	discrete() (count int64, basis Basis, ok bool)
	exact() decimal.Decimal
}

var (
	_ Amount = DecimalAmount{}
	_ Amount = DiscreteAmount{}
)

// compare orders two amounts by exact value.
// Discrete amounts at a common basis compare their counts directly.
func compare(a, b Amount) int {
	if ac, ab, ok := a.discrete(); ok {
		if bc, bb, ok := b.discrete(); ok && ab == bb {
			return cmp.Compare(ac, bc)
		}
	}
	return a.rat().Cmp(b.rat())
}

// convert expresses x as a count of units at basis b.
// The count is rounded with the mode of h, or the context rounding mode if h
// is nil, and the remainder x - count/b is reported to h.
func convert(x *big.Rat, b Basis, ctx Context, h RemainderHandler) (DiscreteAmount, error) {
	if !b.IsValid() {
		return DiscreteAmount{}, InvalidBasis.New("%d", int64(b))
	}
	units := new(big.Rat).SetInt64(int64(b))
	scaled := units.Mul(units, x)
	q, err := quo(decimal.NewFromBigInt(scaled.Num(), 0), decimal.NewFromBigInt(scaled.Denom(), 0), 0, ctx.handlerMode(h))
	if err != nil {
		return DiscreteAmount{}, err
	}
	count := q.BigInt()
	if !count.IsInt64() {
		return DiscreteAmount{}, Overflow.New("%v units at basis %v do not fit into int64", count, b)
	}
	res := DiscreteAmount{count: count.Int64(), basis: b, ctx: ctx}

	rem := new(big.Rat).Sub(x, res.rat())
	report(h, res, ratToDecimal(rem, ctx.Prec()))
	return res, nil
}
