package amount

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of significant digits used by a [Context]
// whose Precision is zero.
const DefaultPrecision = 16

// Environment variables read by [ContextFromEnv].
const (
	EnvPrecision = "AMOUNT_PRECISION"
	EnvRounding  = "AMOUNT_ROUNDING"
)

// Context holds the working precision and the default rounding mode of
// amount arithmetic.
// Every amount is bound to the context it was constructed with, and binary
// operations use the context of the receiver.
// The zero value is equal to [DefaultContext].
type Context struct {
	// Precision is the maximum number of significant digits kept when an
	// amount is normalized, inverted, or converted through a non-decimal
	// basis. Zero means [DefaultPrecision].
	Precision int32

	// Rounding is used where no [RemainderHandler] supplies a mode.
	Rounding RoundingMode
}

// DefaultContext is the context used by the package-level constructors.
// It must be treated as read-only.
var DefaultContext = Context{Precision: DefaultPrecision, Rounding: HalfEven}

// NewContext returns a validated context.
func NewContext(precision int32, rounding RoundingMode) (Context, error) {
	c := Context{Precision: precision, Rounding: rounding}
	if err := c.Validate(); err != nil {
		return Context{}, err
	}
	return c, nil
}

// ParseContext converts textual precision and rounding settings to a context.
// Empty strings select the defaults.
func ParseContext(precision, rounding string) (Context, error) {
	c := DefaultContext
	if s := strings.TrimSpace(precision); s != "" {
		p, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return Context{}, fmt.Errorf("parsing precision %q: %w", precision, err)
		}
		c.Precision = int32(p)
	}
	if rounding != "" {
		m, err := ParseRoundingMode(rounding)
		if err != nil {
			return Context{}, fmt.Errorf("parsing rounding: %w", err)
		}
		c.Rounding = m
	}
	if err := c.Validate(); err != nil {
		return Context{}, err
	}
	return c, nil
}

// ContextFromEnv builds a context from the AMOUNT_PRECISION and
// AMOUNT_ROUNDING variables looked up with getenv, typically [os.Getenv].
// It is meant to be called once at process start.
func ContextFromEnv(getenv func(string) string) (Context, error) {
	c, err := ParseContext(getenv(EnvPrecision), getenv(EnvRounding))
	if err != nil {
		return Context{}, fmt.Errorf("loading context from environment: %w", err)
	}
	return c, nil
}

// Validate returns an error if the context cannot be used for arithmetic.
func (c Context) Validate() error {
	var problems []string
	if c.Precision < 0 {
		problems = append(problems, fmt.Sprintf("invalid precision %d: must not be negative", c.Precision))
	}
	if int(c.Rounding) >= len(roundingNames) {
		problems = append(problems, fmt.Sprintf("invalid rounding mode %d", uint8(c.Rounding)))
	}
	if len(problems) > 0 {
		return fmt.Errorf("context validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Prec returns the working precision, substituting [DefaultPrecision] for zero.
func (c Context) Prec() int32 {
	if c.Precision <= 0 {
		return DefaultPrecision
	}
	return c.Precision
}

// String implements the [fmt.Stringer] interface.
func (c Context) String() string {
	return fmt.Sprintf("precision=%d rounding=%v", c.Prec(), c.Rounding)
}

// NewDecimal returns a decimal amount bound to the context.
func (c Context) NewDecimal(d decimal.Decimal) DecimalAmount {
	return DecimalAmount{value: d, ctx: c}
}

// ParseDecimal converts a decimal literal to an amount bound to the context.
func (c Context) ParseDecimal(s string) (DecimalAmount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return DecimalAmount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return c.NewDecimal(d), nil
}

// NewDiscrete returns a discrete amount bound to the context.
// See also [NewDiscreteAmount].
func (c Context) NewDiscrete(count int64, basis Basis) (DiscreteAmount, error) {
	if !basis.IsValid() {
		return DiscreteAmount{}, InvalidBasis.New("%d", int64(basis))
	}
	return DiscreteAmount{count: count, basis: basis, ctx: c}, nil
}

// handlerMode returns the rounding mode of h, falling back to the context.
func (c Context) handlerMode(h RemainderHandler) RoundingMode {
	if h == nil {
		return c.Rounding
	}
	return h.RoundingMode()
}
