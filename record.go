package amount

import (
	"database/sql/driver"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Rehydrate rebuilds a decimal amount from a stored value.
// It exists for persistence code restoring amounts it saved earlier and is
// not meant for arithmetic; use [NewDecimalAmount] or [Context.NewDecimal]
// for that.
func Rehydrate(d decimal.Decimal, ctx Context) DecimalAmount {
	return ctx.NewDecimal(d)
}

// DecimalRecord is a mutable holder of a decimal amount for persistence
// layers that construct an empty value first and fill it in later, such as
// database/sql row scanning.
//
// The zero value is ready to use and holds 0 in the [DefaultContext].
// DecimalRecord is safe for concurrent use by multiple goroutines: Scan and
// Store are serialized with readers.
type DecimalRecord struct {
	mu    sync.RWMutex
	value decimal.Decimal
	ctx   Context
}

// NewDecimalRecord returns a record holding the canonical decimal form of a.
func NewDecimalRecord(a Amount) *DecimalRecord {
	return &DecimalRecord{value: a.Decimal(), ctx: a.Context()}
}

// Amount returns the held value as an immutable amount.
func (r *DecimalRecord) Amount() DecimalAmount {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Rehydrate(r.value, r.ctx)
}

// Store replaces the held value with the canonical decimal form of a.
func (r *DecimalRecord) Store(a Amount) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = a.Decimal()
	r.ctx = a.Context()
}

// Scan implements the [sql.Scanner] interface.
// Strings, byte slices, integers, and floats are accepted; null is not.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (r *DecimalRecord) Scan(value any) error {
	var d decimal.Decimal
	var err error
	switch value := value.(type) {
	case nil:
		err = fmt.Errorf("%T does not support null values", r)
	default:
		err = d.Scan(value)
	}
	if err != nil {
		return fmt.Errorf("converting from %T to %T: %w", value, DecimalAmount{}, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = d
	return nil
}

// Value implements the [driver.Valuer] interface.
// The value is stored as a plain decimal string to keep its scale.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (r *DecimalRecord) Value() (driver.Value, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return plain(r.value), nil
}
