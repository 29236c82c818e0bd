package amount

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"

	"github.com/JohnCGriffin/overflow"
	"github.com/shopspring/decimal"
)

// DiscreteAmount is a fixed-point amount: a signed count of indivisible units
// at a given basis (units per whole).
// For example, a count of 150 at basis 100 represents 1.50.
//
// Its zero value corresponds to a count of 0 at basis 1 in the [DefaultContext].
// DiscreteAmount is designed to be safe for concurrent use by multiple goroutines.
type DiscreteAmount struct {
	count int64
	basis Basis
	ctx   Context
}

// NewDiscreteAmount returns an amount equal to count / basis in the
// [DefaultContext].
//
// NewDiscreteAmount returns an [InvalidBasis] error if basis is not positive.
func NewDiscreteAmount(count int64, basis Basis) (DiscreteAmount, error) {
	return DefaultContext.NewDiscrete(count, basis)
}

// MustNewDiscreteAmount is like [NewDiscreteAmount] but panics if the amount
// cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewDiscreteAmount(count int64, basis Basis) DiscreteAmount {
	a, err := NewDiscreteAmount(count, basis)
	if err != nil {
		panic(fmt.Sprintf("NewDiscreteAmount(%v, %v) failed: %v", count, basis, err))
	}
	return a
}

// Count returns the number of units.
func (a DiscreteAmount) Count() int64 {
	return a.count
}

// Basis returns the number of units per whole.
func (a DiscreteAmount) Basis() Basis {
	if a.basis == 0 {
		return 1
	}
	return a.basis
}

func (a DiscreteAmount) withCount(count int64) DiscreteAmount {
	return DiscreteAmount{count: count, basis: a.Basis(), ctx: a.ctx}
}

// Neg returns an amount with the opposite sign.
// Negating a count of [math.MinInt64] overflows an int64, so in that single
// case Neg returns the exact [DecimalAmount] instead.
func (a DiscreteAmount) Neg() Amount {
	if a.count == math.MinInt64 {
		return DecimalAmount{value: a.exact().Neg(), ctx: a.ctx}
	}
	return a.withCount(-a.count)
}

// Inv returns 1 / a as a [DecimalAmount], rounded to the working precision
// with the context rounding mode. Inv returns zero if a is zero.
//
// Inv returns an error only if the context rounding mode is [Unnecessary]
// and the inverse cannot be represented exactly.
func (a DiscreteAmount) Inv() (Amount, error) {
	if a.count == 0 {
		return DecimalAmount{ctx: a.ctx}, nil
	}
	// 1 / (count / basis) = basis / count
	d, err := quoPrec(decimal.NewFromInt(int64(a.Basis())), decimal.NewFromInt(a.count), a.ctx.Prec(), a.ctx.Rounding)
	if err != nil {
		return nil, fmt.Errorf("computing [1 / %v]: %w", a, err)
	}
	return DecimalAmount{value: d, ctx: a.ctx}, nil
}

// Add returns the sum of amounts a and o.
// If o is discrete the sum is computed on counts at the common basis of both
// amounts, otherwise it is computed in decimal space and a [DecimalAmount] is
// returned.
//
// Add returns an [Overflow] error if a count does not fit into an int64.
func (a DiscreteAmount) Add(o Amount) (Amount, error) {
	c, err := a.add(o)
	if err != nil {
		return nil, fmt.Errorf("computing [%v + %v]: %w", a, o, err)
	}
	return c, nil
}

func (a DiscreteAmount) add(o Amount) (Amount, error) {
	oc, ob, ok := o.discrete()
	if !ok {
		return DecimalAmount{value: a.exact().Add(o.exact()), ctx: a.ctx}, nil
	}
	x, y, b, err := a.common(oc, ob)
	if err != nil {
		return nil, err
	}
	sum, ok := overflow.Add64(x, y)
	if !ok {
		return nil, Overflow.New("%d + %d", x, y)
	}
	return DiscreteAmount{count: sum, basis: b, ctx: a.ctx}, nil
}

// Sub returns the difference between amounts a and o.
// See [DiscreteAmount.Add] for the choice of representation.
//
// Sub returns an [Overflow] error if a count does not fit into an int64.
func (a DiscreteAmount) Sub(o Amount) (Amount, error) {
	c, err := a.sub(o)
	if err != nil {
		return nil, fmt.Errorf("computing [%v - %v]: %w", a, o, err)
	}
	return c, nil
}

func (a DiscreteAmount) sub(o Amount) (Amount, error) {
	oc, ob, ok := o.discrete()
	if !ok {
		return DecimalAmount{value: a.exact().Sub(o.exact()), ctx: a.ctx}, nil
	}
	x, y, b, err := a.common(oc, ob)
	if err != nil {
		return nil, err
	}
	diff, ok := overflow.Sub64(x, y)
	if !ok {
		return nil, Overflow.New("%d - %d", x, y)
	}
	return DiscreteAmount{count: diff, basis: b, ctx: a.ctx}, nil
}

// common returns the counts of a and of oc/ob rescaled to the least common
// multiple of both bases.
func (a DiscreteAmount) common(oc int64, ob Basis) (x, y int64, b Basis, err error) {
	ab := a.Basis()
	if ab == ob {
		return a.count, oc, ab, nil
	}
	l, ok := overflow.Mul64(int64(ab)/gcd(int64(ab), int64(ob)), int64(ob))
	if !ok {
		return 0, 0, 0, Overflow.New("common basis of %v and %v", ab, ob)
	}
	x, ok = overflow.Mul64(a.count, l/int64(ab))
	if !ok {
		return 0, 0, 0, Overflow.New("rescaling %d from basis %v to %v", a.count, ab, l)
	}
	y, ok = overflow.Mul64(oc, l/int64(ob))
	if !ok {
		return 0, 0, 0, Overflow.New("rescaling %d from basis %v to %v", oc, ob, l)
	}
	return x, y, Basis(l), nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Mul returns the product of amounts a and o at the basis of a.
// The exact product is rounded with the mode of h, and h is called once with
// the result and the remainder.
//
// Mul returns an error if the product does not fit into an int64 count.
func (a DiscreteAmount) Mul(o Amount, h RemainderHandler) (Amount, error) {
	r := new(big.Rat).Mul(a.rat(), o.rat())
	d, err := convert(r, a.Basis(), a.ctx, h)
	if err != nil {
		return nil, fmt.Errorf("computing [%v * %v]: %w", a, o, err)
	}
	return d, nil
}

// Quo returns the quotient of amounts a and o at the basis of a.
// The exact quotient is rounded with the mode of h, and h is called once with
// the result and the remainder.
//
// Quo returns zero at the basis of a, without calling h, if o is zero.
// Quo returns an error if the quotient does not fit into an int64 count.
func (a DiscreteAmount) Quo(o Amount, h RemainderHandler) (Amount, error) {
	if o.IsZero() {
		return a.withCount(0), nil
	}
	r := new(big.Rat).Quo(a.rat(), o.rat())
	d, err := convert(r, a.Basis(), a.ctx, h)
	if err != nil {
		return nil, fmt.Errorf("computing [%v / %v]: %w", a, o, err)
	}
	return d, nil
}

// Cmp compares amounts a and o by numeric value and returns:
//
//	-1 if a < o
//	 0 if a = o
//	+1 if a > o
//
// Counts are compared directly when o is discrete with the same basis.
func (a DiscreteAmount) Cmp(o Amount) int {
	return compare(a, o)
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a DiscreteAmount) Sign() int {
	switch {
	case a.count < 0:
		return -1
	case a.count > 0:
		return 1
	default:
		return 0
	}
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a DiscreteAmount) IsPos() bool {
	return a.count > 0
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a DiscreteAmount) IsZero() bool {
	return a.count == 0
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a DiscreteAmount) IsNeg() bool {
	return a.count < 0
}

// IsMax returns true if the count is [math.MaxInt64].
func (a DiscreteAmount) IsMax() bool {
	return a.count == math.MaxInt64
}

// IsMin returns true if the count is [math.MinInt64].
func (a DiscreteAmount) IsMin() bool {
	return a.count == math.MinInt64
}

// Float64 returns the nearest binary floating-point number.
// It should be used for display purposes only, not calculation.
func (a DiscreteAmount) Float64() float64 {
	return a.Decimal().InexactFloat64()
}

// Decimal returns count / basis. The result is exact when the basis is a
// power of ten, or has no prime factors other than 2 and 5; otherwise it is
// rounded half-to-even to the working precision.
func (a DiscreteAmount) Decimal() decimal.Decimal {
	if scale, ok := a.Basis().Scale(); ok {
		return decimal.New(a.count, -int32(scale)) //nolint:gosec
	}
	return ratToDecimal(a.rat(), a.ctx.Prec())
}

// ToBasis converts a to a count of units at basis b and calls h once with the
// result and the remainder.
// If b is a multiple of the basis of a, the count is scaled exactly and the
// remainder is zero. Otherwise the count is rounded with the mode of h.
//
// ToBasis returns an error if b is not positive, if the count does not fit
// into an int64, or if the mode of h is [Unnecessary] and rounding is needed.
func (a DiscreteAmount) ToBasis(b Basis, h RemainderHandler) (DiscreteAmount, error) {
	d, err := a.toBasis(b, h)
	if err != nil {
		return DiscreteAmount{}, fmt.Errorf("converting [%v] to basis %v: %w", a, b, err)
	}
	return d, nil
}

func (a DiscreteAmount) toBasis(b Basis, h RemainderHandler) (DiscreteAmount, error) {
	if !b.IsValid() {
		return DiscreteAmount{}, InvalidBasis.New("%d", int64(b))
	}
	ab := a.Basis()
	if b%ab != 0 {
		return convert(a.rat(), b, a.ctx, h)
	}
	count, ok := overflow.Mul64(a.count, int64(b/ab))
	if !ok {
		return DiscreteAmount{}, Overflow.New("%d units at basis %v do not fit into int64", a.count, b)
	}
	res := DiscreteAmount{count: count, basis: b, ctx: a.ctx}
	report(h, res, decimal.Decimal{})
	return res, nil
}

// Scale returns the number of digits after the decimal point: log10 of the
// basis for power-of-ten bases, or the scale of [DiscreteAmount.Decimal]
// otherwise.
func (a DiscreteAmount) Scale() int {
	if scale, ok := a.Basis().Scale(); ok {
		return scale
	}
	return int(scaleOf(a.Decimal()))
}

// AssertBasis returns a [BasisMismatch] error if the basis of a is not b.
func (a DiscreteAmount) AssertBasis(b Basis) error {
	if a.Basis() != b {
		return BasisMismatch.New("amount %v has basis %v, want %v", a, a.Basis(), b)
	}
	return nil
}

// Context returns the context a is bound to.
func (a DiscreteAmount) Context() Context {
	return a.ctx
}

// WithContext returns the same value bound to ctx.
func (a DiscreteAmount) WithContext(ctx Context) DiscreteAmount {
	return DiscreteAmount{count: a.count, basis: a.basis, ctx: ctx}
}

// String implements the [fmt.Stringer] interface and returns the plain
// rendering of [DiscreteAmount.Decimal].
// For power-of-ten bases it always shows log10(basis) fractional digits.
func (a DiscreteAmount) String() string {
	return plain(a.Decimal())
}

type discreteJSON struct {
	Count int64 `json:"count"`
	Basis Basis `json:"basis"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The amount is written as an object with "count" and "basis" fields.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a DiscreteAmount) MarshalJSON() ([]byte, error) {
	return json.Marshal(discreteJSON{Count: a.count, Basis: a.Basis()})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The context of a is kept.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *DiscreteAmount) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	var v discreteJSON
	if err := json.Unmarshal(text, &v); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", DiscreteAmount{}, err)
	}
	d, err := a.ctx.NewDiscrete(v.Count, v.Basis)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", DiscreteAmount{}, err)
	}
	*a = d
	return nil
}

func (a DiscreteAmount) rat() *big.Rat {
	return new(big.Rat).SetFrac(big.NewInt(a.count), big.NewInt(int64(a.Basis())))
}

func (a DiscreteAmount) discrete() (int64, Basis, bool) {
	return a.count, a.Basis(), true
}

func (a DiscreteAmount) exact() decimal.Decimal {
	return a.Decimal()
}

// plain renders d without exponent, keeping its scale.
func plain(d decimal.Decimal) string {
	if s := scaleOf(d); s > 0 {
		return d.StringFixed(s)
	}
	return d.String()
}
