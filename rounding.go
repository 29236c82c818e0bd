package amount

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundingMode specifies how a value that cannot be represented exactly at
// the requested scale is rounded.
// The zero value is [HalfEven].
type RoundingMode uint8

const (
	// HalfEven rounds to the nearest neighbor, ties to the even neighbor
	// (banker's rounding).
	HalfEven RoundingMode = iota
	// HalfUp rounds to the nearest neighbor, ties away from zero.
	HalfUp
	// HalfDown rounds to the nearest neighbor, ties toward zero.
	HalfDown
	// Up rounds away from zero.
	Up
	// Down rounds toward zero (truncation).
	Down
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Floor rounds toward negative infinity.
	Floor
	// Unnecessary asserts that no rounding is needed.
	// Operations fail with [Inexact] if a discarded fraction is non-zero.
	Unnecessary
)

var roundingNames = [...]string{
	HalfEven:    "half_even",
	HalfUp:      "half_up",
	HalfDown:    "half_down",
	Up:          "up",
	Down:        "down",
	Ceiling:     "ceiling",
	Floor:       "floor",
	Unnecessary: "unnecessary",
}

// ParseRoundingMode converts a name such as "half_even" or "HALF_EVEN" to
// a rounding mode. Dashes are accepted in place of underscores.
func ParseRoundingMode(s string) (RoundingMode, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for m, n := range roundingNames {
		if n == name {
			return RoundingMode(m), nil
		}
	}
	return HalfEven, fmt.Errorf("unknown rounding mode %q", s)
}

// String implements the [fmt.Stringer] interface.
func (m RoundingMode) String() string {
	if int(m) < len(roundingNames) {
		return roundingNames[m]
	}
	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

// increment reports whether a truncated quotient must be moved one unit
// away from zero.
// sign is the sign of the exact quotient, half compares the discarded
// fraction with one half, and odd is the parity of the truncated quotient.
func (m RoundingMode) increment(sign, half int, odd bool) (bool, error) {
	switch m {
	case Up:
		return true, nil
	case Down:
		return false, nil
	case Ceiling:
		return sign > 0, nil
	case Floor:
		return sign < 0, nil
	case HalfUp:
		return half >= 0, nil
	case HalfDown:
		return half > 0, nil
	case HalfEven:
		return half > 0 || (half == 0 && odd), nil
	case Unnecessary:
		return false, Inexact.New("rounding is necessary")
	default:
		return false, fmt.Errorf("unknown rounding mode %v", m)
	}
}

// scaleOf returns the number of digits after the decimal point of d.
func scaleOf(d decimal.Decimal) int32 {
	if e := d.Exponent(); e < 0 {
		return -e
	}
	return 0
}

// adjusted returns the exponent of the most significant digit of d.
func adjusted(d decimal.Decimal) int32 {
	return int32(d.NumDigits()) + d.Exponent() - 1 //nolint:gosec
}

// quo returns d / e rounded to the given scale using mode m.
// e must not be zero.
func quo(d, e decimal.Decimal, scale int32, m RoundingMode) (decimal.Decimal, error) {
	// q is truncated toward zero and d = e*q + r exactly.
	q, r := d.QuoRem(e, scale)
	if r.IsZero() {
		return q, nil
	}
	sign := d.Sign() * e.Sign()
	// 2|r| against one unit of q times |e|
	half := r.Abs().Add(r.Abs()).Cmp(e.Abs().Shift(-scale))
	odd := q.Coefficient().Bit(0) == 1
	inc, err := m.increment(sign, half, odd)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if inc {
		q = q.Add(decimal.New(int64(sign), -scale))
	}
	return q, nil
}

// rescale returns d rounded or zero-padded to the given scale using mode m.
func rescale(d decimal.Decimal, scale int32, m RoundingMode) (decimal.Decimal, error) {
	return quo(d, decimal.New(1, 0), scale, m)
}

// quoPrec returns d / e rounded to prec significant digits using mode m,
// with trailing zeros removed down to scale 0.
// e must not be zero.
func quoPrec(d, e decimal.Decimal, prec int32, m RoundingMode) (decimal.Decimal, error) {
	if d.IsZero() {
		return decimal.Decimal{}, nil
	}
	// The leading digit of the quotient is at adjusted(d) - adjusted(e)
	// or one position lower.
	scale := prec - (adjusted(d) - adjusted(e))
	q, err := quo(d, e, scale, m)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if int32(q.NumDigits()) > prec { //nolint:gosec
		q, err = quo(d, e, scale-1, m)
		if err != nil {
			return decimal.Decimal{}, err
		}
	}
	return trim(q), nil
}

// roundPrec returns d rounded half-to-even to at most prec significant digits.
// Integer digits are never rounded away, so the result keeps a scale of at
// least zero.
func roundPrec(d decimal.Decimal, prec int32) decimal.Decimal {
	for {
		scale := scaleOf(d)
		excess := int32(d.NumDigits()) - prec //nolint:gosec
		if excess <= 0 || scale == 0 {
			return d
		}
		d = d.RoundBank(max(scale-excess, 0))
	}
}

// trim removes trailing zeros after the decimal point.
func trim(d decimal.Decimal) decimal.Decimal {
	for s := scaleOf(d); s > 0; s-- {
		t := d.Truncate(s - 1)
		if !t.Equal(d) {
			break
		}
		d = t
	}
	return d
}

// ratToDecimal returns r as a decimal.
// The result is exact when the denominator of r has no prime factors other
// than 2 and 5, otherwise it is rounded half-to-even to prec significant
// digits.
func ratToDecimal(r *big.Rat, prec int32) decimal.Decimal {
	if n, exact := r.FloatPrec(); exact {
		return decimal.NewFromBigRat(r, int32(n)) //nolint:gosec
	}
	// HalfEven never fails.
	d, _ := quoPrec(decimal.NewFromBigInt(r.Num(), 0), decimal.NewFromBigInt(r.Denom(), 0), prec, HalfEven)
	return d
}
