package amount

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// DecimalAmount is a continuous amount backed by an arbitrary-precision
// decimal: an unbounded integer coefficient and a scale.
// It is best used for I/O and for intermediate results that must not lose
// precision before they are converted to a [DiscreteAmount].
//
// Its zero value corresponds to 0 in the [DefaultContext].
// DecimalAmount is designed to be safe for concurrent use by multiple goroutines.
type DecimalAmount struct {
	value decimal.Decimal
	ctx   Context
}

var (
	// ZeroDecimal is the decimal amount 0 in the [DefaultContext].
	ZeroDecimal = DecimalAmount{}
	// OneDecimal is the decimal amount 1 in the [DefaultContext].
	OneDecimal = DecimalAmount{value: decimal.New(1, 0)}
)

// NewDecimalAmount returns an amount equal to d in the [DefaultContext].
func NewDecimalAmount(d decimal.Decimal) DecimalAmount {
	return DefaultContext.NewDecimal(d)
}

// NewDecimalAmountFromInt64 returns an amount equal to coef / 10^scale in the
// [DefaultContext].
func NewDecimalAmountFromInt64(coef int64, scale int32) DecimalAmount {
	return DefaultContext.NewDecimal(decimal.New(coef, -scale))
}

// DecimalAmountOf returns the canonical decimal form of an amount as a
// DecimalAmount bound to the same context.
func DecimalAmountOf(a Amount) DecimalAmount {
	return a.Context().NewDecimal(a.Decimal())
}

// ParseDecimalAmount converts a decimal literal, such as "1.50", "-0.005"
// or "1e3", to an amount in the [DefaultContext].
func ParseDecimalAmount(s string) (DecimalAmount, error) {
	return DefaultContext.ParseDecimal(s)
}

// MustParseDecimalAmount is like [ParseDecimalAmount] but panics if the
// string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseDecimalAmount(s string) DecimalAmount {
	a, err := ParseDecimalAmount(s)
	if err != nil {
		panic(fmt.Sprintf("ParseDecimalAmount(%q) failed: %v", s, err))
	}
	return a
}

func (a DecimalAmount) zero() DecimalAmount {
	return DecimalAmount{ctx: a.ctx}
}

// Neg returns an amount with the opposite sign.
func (a DecimalAmount) Neg() Amount {
	return DecimalAmount{value: a.value.Neg(), ctx: a.ctx}
}

// Inv returns 1 / a rounded to the working precision with the context
// rounding mode.
// Inv returns zero if a is zero.
//
// Inv returns an error only if the context rounding mode is [Unnecessary]
// and the inverse cannot be represented exactly.
func (a DecimalAmount) Inv() (Amount, error) {
	if a.value.IsZero() {
		return a.zero(), nil
	}
	d, err := quoPrec(decimal.New(1, 0), a.value, a.ctx.Prec(), a.ctx.Rounding)
	if err != nil {
		return nil, fmt.Errorf("computing [1 / %v]: %w", a, err)
	}
	return DecimalAmount{value: d, ctx: a.ctx}, nil
}

// Add returns the exact sum of amounts a and o.
// Add never fails.
func (a DecimalAmount) Add(o Amount) (Amount, error) {
	return DecimalAmount{value: a.value.Add(o.exact()), ctx: a.ctx}, nil
}

// Sub returns the exact difference between amounts a and o.
// Sub never fails.
func (a DecimalAmount) Sub(o Amount) (Amount, error) {
	return DecimalAmount{value: a.value.Sub(o.exact()), ctx: a.ctx}, nil
}

// Mul returns the exact product of amounts a and o.
// The handler is not used, since a decimal product is never rounded.
// Mul never fails.
func (a DecimalAmount) Mul(o Amount, _ RemainderHandler) (Amount, error) {
	return DecimalAmount{value: a.value.Mul(o.exact()), ctx: a.ctx}, nil
}

// Quo returns the quotient of amounts a and o.
// The scale of the quotient is the greater of the scale of o and the working
// precision, and the quotient is rounded with the mode of h.
// h is then called once with the quotient and the remainder (a/o - quotient),
// rounded to the working precision.
//
// Quo returns zero, without calling h, if o is zero.
// Quo returns an error only if the mode of h is [Unnecessary] and the
// quotient cannot be represented exactly.
func (a DecimalAmount) Quo(o Amount, h RemainderHandler) (Amount, error) {
	c, err := a.quo(o, h)
	if err != nil {
		return nil, fmt.Errorf("computing [%v / %v]: %w", a, o, err)
	}
	return c, nil
}

func (a DecimalAmount) quo(o Amount, h RemainderHandler) (DecimalAmount, error) {
	e := o.exact()
	if e.IsZero() {
		return a.zero(), nil
	}
	prec := a.ctx.Prec()
	q, err := quo(a.value, e, max(scaleOf(e), prec), a.ctx.handlerMode(h))
	if err != nil {
		return DecimalAmount{}, err
	}
	res := DecimalAmount{value: q, ctx: a.ctx}

	// a/e - q = (a - q*e) / e
	rem, _ := quoPrec(a.value.Sub(q.Mul(e)), e, prec, HalfEven)
	report(h, res, rem)
	return res, nil
}

// Cmp compares amounts a and o by numeric value and returns:
//
//	-1 if a < o
//	 0 if a = o
//	+1 if a > o
func (a DecimalAmount) Cmp(o Amount) int {
	return compare(a, o)
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a DecimalAmount) Sign() int {
	return a.value.Sign()
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a DecimalAmount) IsPos() bool {
	return a.value.IsPositive()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a DecimalAmount) IsZero() bool {
	return a.value.IsZero()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a DecimalAmount) IsNeg() bool {
	return a.value.IsNegative()
}

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// IsMax returns true if a equals [math.MaxInt64].
// The check is a boundary inherited from fixed-width counts; a decimal
// amount can be larger.
func (a DecimalAmount) IsMax() bool {
	return a.value.Equal(maxInt64)
}

// IsMin returns true if a equals [math.MinInt64].
// The check is a boundary inherited from fixed-width counts; a decimal
// amount can be smaller.
func (a DecimalAmount) IsMin() bool {
	return a.value.Equal(minInt64)
}

// Float64 returns the nearest binary floating-point number.
// It should be used for display purposes only, not calculation.
func (a DecimalAmount) Float64() float64 {
	return a.value.InexactFloat64()
}

// Decimal returns the value rounded half-to-even to at most the working
// precision of significant digits. Integer digits are never rounded away.
// The stored value is not changed.
func (a DecimalAmount) Decimal() decimal.Decimal {
	return roundPrec(a.value, a.ctx.Prec())
}

// ToBasis converts the canonical decimal form of a to a count of units at
// basis b. The count is rounded with the mode of h, and h is called once with
// the result and the remainder, so that
//
//	result.Decimal() + remainder == a.Decimal()
//
// The remainder is exact when b has no prime factors other than 2 and 5.
// Digits of a beyond the working precision are dropped when the canonical
// form is taken and are not part of the remainder.
//
// ToBasis returns an error if b is not positive, if the count does not fit
// into an int64, or if the mode of h is [Unnecessary] and rounding is needed.
func (a DecimalAmount) ToBasis(b Basis, h RemainderHandler) (DiscreteAmount, error) {
	d, err := convert(a.Decimal().Rat(), b, a.ctx, h)
	if err != nil {
		return DiscreteAmount{}, fmt.Errorf("converting [%v] to basis %v: %w", a, b, err)
	}
	return d, nil
}

// Scale returns the number of digits after the decimal point in the plain
// rendering of a. Whole numbers have scale 0.
func (a DecimalAmount) Scale() int {
	return int(scaleOf(a.value))
}

// AssertBasis always returns a [BasisMismatch] error, since a decimal amount
// has no intrinsic basis.
func (a DecimalAmount) AssertBasis(b Basis) error {
	return BasisMismatch.New("decimal amount %v has no basis, want %v", a, b)
}

// Context returns the context a is bound to.
func (a DecimalAmount) Context() Context {
	return a.ctx
}

// WithContext returns the same value bound to ctx.
func (a DecimalAmount) WithContext(ctx Context) DecimalAmount {
	return DecimalAmount{value: a.value, ctx: ctx}
}

// String implements the [fmt.Stringer] interface and returns the plain
// rendering of the stored value, keeping its scale.
func (a DecimalAmount) String() string {
	return plain(a.value)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a DecimalAmount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// The context of a is kept.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *DecimalAmount) UnmarshalText(text []byte) error {
	b, err := a.ctx.ParseDecimal(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", DecimalAmount{}, err)
	}
	*a = b
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The value is written as a JSON string to avoid float conversions.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a DecimalAmount) MarshalJSON() ([]byte, error) {
	s := a.String()
	text := make([]byte, 0, len(s)+2)
	text = append(text, '"')
	text = append(text, s...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both JSON strings and numbers are accepted.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *DecimalAmount) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return a.UnmarshalText(text)
}

func (a DecimalAmount) rat() *big.Rat {
	return a.value.Rat()
}

func (a DecimalAmount) discrete() (int64, Basis, bool) {
	return 0, 0, false
}

func (a DecimalAmount) exact() decimal.Decimal {
	return a.value
}
