package amount

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example | Description                    |
//	| ------ | ------- | ------------------------------ |
//	| %s, %v | 5.678   | Amount                         |
//	| %q     | "5.678" | Quoted amount                  |
//	| %f     | 5.678   | Amount, precision is honored   |
//	| %d     | 6       | Amount rounded to an integer   |
//
// The '-', '+', ' ', and '0' format flags can be used with all verbs.
// Precision is only supported for the %f verb; rounding is half-to-even.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a DecimalAmount) Format(state fmt.State, verb rune) {
	var units *big.Int
	if verb == 'd' || verb == 'D' {
		d, _ := rescale(a.value, 0, HalfEven)
		units = d.Coefficient()
	}
	formatAmount(state, verb, "amount.DecimalAmount", a.value, units)
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example | Description                    |
//	| ------ | ------- | ------------------------------ |
//	| %s, %v | 1.50    | Amount                         |
//	| %q     | "1.50"  | Quoted amount                  |
//	| %f     | 1.50    | Amount, precision is honored   |
//	| %d     | 150     | Count of units                 |
//
// The '-', '+', ' ', and '0' format flags can be used with all verbs.
// Precision is only supported for the %f verb; rounding is half-to-even.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a DiscreteAmount) Format(state fmt.State, verb rune) {
	formatAmount(state, verb, "amount.DiscreteAmount", a.Decimal(), big.NewInt(a.count))
}

// formatAmount writes d, or units for the %d verb, to state.
func formatAmount(state fmt.State, verb rune, name string, d decimal.Decimal, units *big.Int) {
	// Rescaling
	switch verb {
	case 'f', 'F':
		if p, ok := state.Precision(); ok && p >= 0 {
			d, _ = rescale(d, int32(p), HalfEven) //nolint:gosec
		}
	case 'd', 'D':
		d = decimal.NewFromBigInt(units, 0)
	}

	// Digits
	digits := plain(d.Abs())

	// Arithmetic sign
	sign := ""
	switch {
	case d.IsNegative():
		sign = "-"
	case state.Flag('+'):
		sign = "+"
	case state.Flag(' '):
		sign = " "
	}

	// Opening and closing quotes
	quote := ""
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}

	// Calculating padding
	width := 2*len(quote) + len(sign) + len(digits)
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeros = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, 0, width)
	for range lspaces {
		buf = append(buf, ' ')
	}
	buf = append(buf, quote...)
	buf = append(buf, sign...)
	for range lzeros {
		buf = append(buf, '0')
	}
	buf = append(buf, digits...)
	buf = append(buf, quote...)
	for range tspaces {
		buf = append(buf, ' ')
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(" + name + "="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
