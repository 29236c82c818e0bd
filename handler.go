package amount

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"
)

// RemainderHandler decides how a rounding conversion rounds and what happens
// to the value it discards.
//
// HandleRemainder is called exactly once per rounding conversion with the
// result actually produced and the signed remainder, the original value minus
// the result. The sign of the remainder is consistent with the rounding mode:
// for example, rounding a positive value toward zero never yields a negative
// remainder.
//
// Whatever HandleRemainder does with the remainder (accumulate, log, reject)
// is the responsibility of the implementation.
type RemainderHandler interface {
	RoundingMode() RoundingMode
	HandleRemainder(result Amount, remainder decimal.Decimal)
}

type handlerFunc struct {
	mode RoundingMode
	fn   func(Amount, decimal.Decimal)
}

// HandlerFunc returns a handler that rounds with mode and passes every
// remainder to fn. A nil fn discards remainders.
func HandlerFunc(mode RoundingMode, fn func(result Amount, remainder decimal.Decimal)) RemainderHandler {
	return handlerFunc{mode: mode, fn: fn}
}

func (h handlerFunc) RoundingMode() RoundingMode {
	return h.mode
}

func (h handlerFunc) HandleRemainder(result Amount, remainder decimal.Decimal) {
	if h.fn != nil {
		h.fn(result, remainder)
	}
}

// Discard returns a handler that rounds with mode and drops remainders.
func Discard(mode RoundingMode) RemainderHandler {
	return handlerFunc{mode: mode}
}

// Accumulator is a handler that keeps a running total of the remainders it
// receives, for example to credit them to a ledger later.
// It is safe for concurrent use by multiple goroutines.
type Accumulator struct {
	Mode RoundingMode

	mu    sync.Mutex
	total decimal.Decimal
	calls int
}

// RoundingMode implements [RemainderHandler].
func (a *Accumulator) RoundingMode() RoundingMode {
	return a.Mode
}

// HandleRemainder implements [RemainderHandler].
func (a *Accumulator) HandleRemainder(_ Amount, remainder decimal.Decimal) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.total = a.total.Add(remainder)
	a.calls++
}

// Total returns the sum of all remainders received so far.
func (a *Accumulator) Total() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.total
}

// Calls returns the number of remainders received so far.
func (a *Accumulator) Calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

// Reset clears the total and returns its previous value.
func (a *Accumulator) Reset() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	t := a.total
	a.total = decimal.Decimal{}
	a.calls = 0
	return t
}

type logHandler struct {
	mode   RoundingMode
	logger *slog.Logger
}

// LogHandler returns a handler that rounds with mode and logs every non-zero
// remainder at debug level. A nil logger uses [slog.Default].
func LogHandler(mode RoundingMode, logger *slog.Logger) RemainderHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return logHandler{mode: mode, logger: logger}
}

func (h logHandler) RoundingMode() RoundingMode {
	return h.mode
}

func (h logHandler) HandleRemainder(result Amount, remainder decimal.Decimal) {
	if remainder.IsZero() {
		return
	}
	h.logger.LogAttrs(context.Background(), slog.LevelDebug, "rounding remainder",
		slog.String("result", result.String()),
		slog.String("remainder", remainder.String()),
		slog.String("rounding", h.mode.String()),
	)
}

// report passes the remainder to h, if any.
func report(h RemainderHandler, result Amount, remainder decimal.Decimal) {
	if h != nil {
		h.HandleRemainder(result, remainder)
	}
}
