package expense

import (
	"errors"
	"fmt"
)

var (
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrInvalidAmount     = errors.New("amount is not a valid number")
	ErrAmountPrecision   = errors.New("amount has more than 6 decimal places")
	ErrEmptyCategory     = errors.New("category cannot be empty")
	ErrEmptyDate         = errors.New("date cannot be empty")
	ErrInvalidDate       = errors.New(`invalid date format, use "MM/DD/YYYY"`)
	ErrMalformedLine     = errors.New("expected 4 fields: category,amount,date,description")
	ErrLineBreak         = errors.New("must not contain line breaks")
)

// ValidationError reports input rejected by the ledger. Err is one of the
// sentinel errors above.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v (%s %q)", e.Err, e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// LineError ties a load failure to the line of the source it came from.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// LoadError is returned by LoadFrom when some rows were skipped. Rows not
// listed here were added to the ledger.
type LoadError struct {
	Lines []*LineError
}

func (e *LoadError) Error() string {
	if len(e.Lines) == 1 {
		return "skipped 1 malformed line: " + e.Lines[0].Error()
	}
	return fmt.Sprintf("skipped %d malformed lines, first: %v", len(e.Lines), e.Lines[0])
}

func (e *LoadError) Unwrap() []error {
	errs := make([]error, len(e.Lines))
	for i, le := range e.Lines {
		errs[i] = le
	}
	return errs
}
