package amount

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Basis is the number of smallest indivisible units that make up one whole
// unit of an amount. For example, a basis of 100 gives two implied decimal
// places, so a count of 150 represents 1.50.
//
// A valid basis is positive. Bases that are powers of ten map onto decimal
// scales; any other positive basis is handled with exact integer ratios.
type Basis int64

// BasisFromScale returns the power-of-ten basis with the given number of
// digits after the decimal point.
//
// BasisFromScale returns an error if the scale is negative or 10^scale does
// not fit into an int64.
func BasisFromScale(scale int) (Basis, error) {
	if scale < 0 || scale > 18 {
		return 0, InvalidBasis.New("scale %d is out of range [0, 18]", scale)
	}
	b := Basis(1)
	for range scale {
		b *= 10
	}
	return b, nil
}

// ParseBasis converts a string to a basis.
// The input string must be one of the following formats:
//
//	100
//	1e2
//
// ParseBasis returns an error if the string does not represent a positive
// integer that fits into an int64.
func ParseBasis(s string) (Basis, error) {
	s = strings.TrimSpace(s)
	if mant, exp, ok := strings.Cut(s, "e"); ok && mant == "1" {
		n, err := strconv.Atoi(exp)
		if err != nil {
			return 0, InvalidBasis.New("%q", s)
		}
		return BasisFromScale(n)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, InvalidBasis.New("%q", s)
	}
	return Basis(n), nil
}

// MustParseBasis is like [ParseBasis] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding bases.
func MustParseBasis(s string) Basis {
	b, err := ParseBasis(s)
	if err != nil {
		panic(fmt.Sprintf("ParseBasis(%q) failed: %v", s, err))
	}
	return b
}

// IsValid returns true if the basis is positive.
func (b Basis) IsValid() bool {
	return b > 0
}

// Scale returns log10 of the basis and true if the basis is a power of ten.
// Otherwise it returns false.
func (b Basis) Scale() (int, bool) {
	if b <= 0 {
		return 0, false
	}
	scale := 0
	for b%10 == 0 {
		b /= 10
		scale++
	}
	return scale, b == 1
}

// String implements the [fmt.Stringer] interface.
func (b Basis) String() string {
	return strconv.FormatInt(int64(b), 10)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both numbers and quoted strings are accepted.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (b *Basis) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*b, err = ParseBasis(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Basis(0), err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a JSON number.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (b Basis) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(b), 10), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseBasis].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (b *Basis) UnmarshalText(text []byte) error {
	var err error
	*b, err = ParseBasis(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Basis(0), err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (b Basis) AppendText(text []byte) ([]byte, error) {
	return strconv.AppendInt(text, int64(b), 10), nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (b Basis) MarshalText() ([]byte, error) {
	return b.AppendText(nil)
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// The data must be the 8-byte big-endian form produced by [Basis.MarshalBinary].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (b *Basis) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return fmt.Errorf("unmarshaling %T: invalid data length %v", Basis(0), len(data))
	}
	var u uint64
	for _, c := range data {
		u = u<<8 | uint64(c)
	}
	if u == 0 || u > math.MaxInt64 {
		return fmt.Errorf("unmarshaling %T: %w", Basis(0), InvalidBasis.New("%d", u))
	}
	*b = Basis(u)
	return nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (b Basis) AppendBinary(data []byte) ([]byte, error) {
	u := uint64(b) //nolint:gosec
	for i := 7; i >= 0; i-- {
		data = append(data, byte(u>>(8*i)))
	}
	return data, nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (b Basis) MarshalBinary() ([]byte, error) {
	return b.AppendBinary(make([]byte, 0, 8))
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (b *Basis) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case int64:
		if value <= 0 {
			err = InvalidBasis.New("%d", value)
			break
		}
		*b = Basis(value)
	case string:
		*b, err = ParseBasis(value)
	case []byte:
		*b, err = ParseBasis(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Basis(0), NullBasis{}, Basis(0))
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Basis(0), err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (b Basis) Value() (driver.Value, error) {
	return int64(b), nil
}

// NullBasis represents a basis that can be null.
// Its zero value is null.
// NullBasis is not thread-safe.
type NullBasis struct {
	Basis Basis
	Valid bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Basis.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullBasis) Scan(value any) error {
	if value == nil {
		n.Basis = 0
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Basis.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Basis.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullBasis) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Basis.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Basis.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullBasis) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		n.Basis = 0
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Basis.UnmarshalJSON(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Basis.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullBasis) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Basis.MarshalJSON()
}
