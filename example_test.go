package amount_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/badobaron/amount"
)

// In this example, the price before tax is derived from a price after tax
// and the value lost to rounding is kept for the books.
func Example_taxCalculation() {
	priceAfterTax := amount.MustNewDiscreteAmount(1000, 100)
	rate := amount.MustParseDecimalAmount("1.065")

	var acc amount.Accumulator
	priceBeforeTax, err := priceAfterTax.Quo(rate, &acc)
	if err != nil {
		panic(err)
	}
	vat, err := priceAfterTax.Sub(priceBeforeTax)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Price (before tax) = %v\n", priceBeforeTax)
	fmt.Printf("VAT                = %v\n", vat)
	fmt.Printf("Price (after tax)  = %v\n", priceAfterTax)
	fmt.Printf("Rounding remainder = %v\n", acc.Total())
	// Output:
	// Price (before tax) = 9.39
	// VAT                = 0.61
	// Price (after tax)  = 10.00
	// Rounding remainder = -0.0003286384976525822
}

// In this example, prices are converted to cents with banker's rounding and
// the remainders cancel out.
func Example_remainderLedger() {
	acc := &amount.Accumulator{Mode: amount.HalfEven}
	for _, p := range []string{"1.005", "2.675", "0.125"} {
		d, err := amount.MustParseDecimalAmount(p).ToBasis(100, acc)
		if err != nil {
			panic(err)
		}
		fmt.Println(d)
	}
	fmt.Println("remainder:", acc.Total())
	// Output:
	// 1.00
	// 2.68
	// 0.12
	// remainder: 0.005
}

// In this example, a bill is split three ways and the cent that cannot be
// shared is found.
func Example_splitBill() {
	total := amount.MustNewDiscreteAmount(10000, 100)
	parts := amount.MustNewDiscreteAmount(3, 1)

	share, err := total.Quo(parts, amount.Discard(amount.Down))
	if err != nil {
		panic(err)
	}
	shared, err := share.Mul(parts, amount.Discard(amount.Down))
	if err != nil {
		panic(err)
	}
	left, err := total.Sub(shared)
	if err != nil {
		panic(err)
	}
	fmt.Println("share:", share)
	fmt.Println("left: ", left)
	// Output:
	// share: 33.33
	// left:  0.01
}

func ExampleParseDecimalAmount() {
	a, err := amount.ParseDecimalAmount("-1.50")
	if err != nil {
		panic(err)
	}
	fmt.Println(a)
	// Output: -1.50
}

func ExampleNewDiscreteAmount() {
	a, err := amount.NewDiscreteAmount(150, 100)
	if err != nil {
		panic(err)
	}
	fmt.Println(a, a.Count(), a.Basis())
	// Output: 1.50 150 100
}

func ExampleDecimalAmount_Quo() {
	a := amount.MustParseDecimalAmount("10")
	b := amount.MustParseDecimalAmount("3")
	h := amount.HandlerFunc(amount.HalfEven, func(_ amount.Amount, rem decimal.Decimal) {
		fmt.Println("remainder:", rem)
	})
	q, err := a.Quo(b, h)
	if err != nil {
		panic(err)
	}
	fmt.Println(q)
	fmt.Println(q.Decimal())
	// Output:
	// remainder: 0.00000000000000003333333333333333
	// 3.3333333333333333
	// 3.333333333333333
}

func ExampleDecimalAmount_Inv() {
	a := amount.MustParseDecimalAmount("8")
	b := amount.ZeroDecimal
	x, err := a.Inv()
	if err != nil {
		panic(err)
	}
	y, err := b.Inv()
	if err != nil {
		panic(err)
	}
	fmt.Println(x, y)
	// Output: 0.125 0
}

func ExampleDecimalAmount_ToBasis() {
	a := amount.MustParseDecimalAmount("1.005")
	for _, m := range []amount.RoundingMode{amount.HalfEven, amount.HalfUp} {
		h := amount.HandlerFunc(m, func(result amount.Amount, rem decimal.Decimal) {
			fmt.Printf("%v: %v, remainder %v\n", m, result, rem)
		})
		if _, err := a.ToBasis(100, h); err != nil {
			panic(err)
		}
	}
	// Output:
	// half_even: 1.00, remainder 0.005
	// half_up: 1.01, remainder -0.005
}

func ExampleDiscreteAmount_ToBasis() {
	third := amount.MustNewDiscreteAmount(1, 3)
	h := amount.HandlerFunc(amount.HalfEven, func(_ amount.Amount, rem decimal.Decimal) {
		fmt.Println("remainder:", rem)
	})
	d, err := third.ToBasis(100, h)
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output:
	// remainder: 0.003333333333333333
	// 0.33
}

func ExampleDiscreteAmount_Add() {
	a := amount.MustNewDiscreteAmount(15, 10)
	b := amount.MustNewDiscreteAmount(25, 100)
	c, err := a.Add(b)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%v %d\n", c, c)
	// Output: 1.75 175
}

func ExampleDiscreteAmount_Neg() {
	a := amount.MustNewDiscreteAmount(-9223372036854775808, 1)
	b := a.Neg()
	fmt.Printf("%T %v\n", b, b)
	// Output: amount.DecimalAmount 9223372036854775808
}

func ExampleDiscreteAmount_AssertBasis() {
	a := amount.MustNewDiscreteAmount(150, 100)
	fmt.Println(a.AssertBasis(100))
	fmt.Println(amount.BasisMismatch.Has(a.AssertBasis(1000)))
	// Output:
	// <nil>
	// true
}

func ExampleDecimalAmount_Format() {
	a := amount.MustParseDecimalAmount("5.678")
	fmt.Printf("%v %q %.2f %d %+8s\n", a, a, a, a, a)
	// Output: 5.678 "5.678" 5.68 6   +5.678
}

func ExampleParseBasis() {
	b, err := amount.ParseBasis("1e3")
	if err != nil {
		panic(err)
	}
	scale, ok := b.Scale()
	fmt.Println(b, scale, ok)
	// Output: 1000 3 true
}

func ExampleContextFromEnv() {
	env := map[string]string{
		amount.EnvPrecision: "8",
		amount.EnvRounding:  "half_up",
	}
	ctx, err := amount.ContextFromEnv(func(key string) string { return env[key] })
	if err != nil {
		panic(err)
	}
	a, err := ctx.ParseDecimal("3")
	if err != nil {
		panic(err)
	}
	inv, err := a.Inv()
	if err != nil {
		panic(err)
	}
	fmt.Println(ctx)
	fmt.Println(inv)
	// Output:
	// precision=8 rounding=half_up
	// 0.33333333
}
