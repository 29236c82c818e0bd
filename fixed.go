package amount

import (
	"fmt"
	"math"
	"math/big"

	fixed "github.com/govalues/decimal"
	"github.com/shopspring/decimal"
)

// NewDecimalAmountFromFixed returns a decimal amount equal to a fixed-point
// decimal, in the [DefaultContext]. The conversion is exact.
func NewDecimalAmountFromFixed(d fixed.Decimal) DecimalAmount {
	coef := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		coef.Neg(coef)
	}
	return NewDecimalAmount(decimal.NewFromBigInt(coef, -int32(d.Scale()))) //nolint:gosec
}

// NewDiscreteAmountFromFixed returns a discrete amount whose basis is
// 10^scale of d and whose count is the coefficient of d, in the
// [DefaultContext].
//
// NewDiscreteAmountFromFixed returns an error if the scale of d is greater
// than 18 or the coefficient does not fit into an int64.
func NewDiscreteAmountFromFixed(d fixed.Decimal) (DiscreteAmount, error) {
	b, err := BasisFromScale(d.Scale())
	if err != nil {
		return DiscreteAmount{}, fmt.Errorf("converting %v: %w", d, err)
	}
	coef := d.Coef()
	var count int64
	switch {
	case d.IsNeg() && coef == -math.MinInt64:
		count = math.MinInt64
	case coef > math.MaxInt64:
		return DiscreteAmount{}, fmt.Errorf("converting %v: %w", d, Overflow.New("coefficient %d does not fit into int64", coef))
	case d.IsNeg():
		count = -int64(coef)
	default:
		count = int64(coef)
	}
	return NewDiscreteAmount(count, b)
}

// Fixed returns the canonical decimal form of a as a fixed-point decimal
// with at most [fixed.MaxPrec] digits.
//
// Fixed returns an [Overflow] error if the value needs more digits.
func (a DecimalAmount) Fixed() (fixed.Decimal, error) {
	d := a.Decimal()
	if scaleOf(d) > fixed.MaxScale || d.NumDigits()+int(max(d.Exponent(), 0)) > fixed.MaxPrec {
		return fixed.Decimal{}, fmt.Errorf("converting %v: %w", a, Overflow.New("more than %d digits", fixed.MaxPrec))
	}
	f, err := fixed.Parse(plain(d))
	if err != nil {
		return fixed.Decimal{}, fmt.Errorf("converting %v: %w", a, err)
	}
	return f, nil
}

// Fixed returns a as a fixed-point decimal whose coefficient is the count
// and whose scale is log10 of the basis.
//
// Fixed returns an [InvalidBasis] error if the basis is not a power of ten.
func (a DiscreteAmount) Fixed() (fixed.Decimal, error) {
	scale, ok := a.Basis().Scale()
	if !ok {
		return fixed.Decimal{}, fmt.Errorf("converting %v: %w", a, InvalidBasis.New("%v is not a power of ten", a.Basis()))
	}
	f, err := fixed.New(a.count, scale)
	if err != nil {
		return fixed.Decimal{}, fmt.Errorf("converting %v: %w", a, err)
	}
	return f, nil
}
