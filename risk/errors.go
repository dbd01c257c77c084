package risk

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFormat       = errors.New("invalid format")
	ErrAmbiguousDirection  = errors.New("ambiguous direction")
	ErrInvalidStep         = errors.New("invalid step")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidLossCutWidth = errors.New("invalid loss-cut width")
	ErrInvalidPrice        = errors.New("invalid price")
	ErrTooManyOrders       = errors.New("too many orders")
)

// Input field identifiers carried by ValidationError.
const (
	FieldStartPrice   = "start_price"
	FieldEndPrice     = "end_price"
	FieldStep         = "step"
	FieldQuantity     = "quantity"
	FieldCurrentPrice = "current_price"
	FieldLossCutRate  = "loss_cut_rate"
	FieldLossCutWidth = "loss_cut_width"
)

// ValidationError names the offending field. Kind is one of the Err* sentinels
// so callers can match with errors.Is.
type ValidationError struct {
	Field string
	Kind  error
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Field, e.Kind, e.Msg)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalid(field string, kind error, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field: field,
		Kind:  kind,
		Msg:   fmt.Sprintf(format, args...),
	}
}
