package budget

import "errors"

var (
	// ErrInvalidRate is returned when a savings rate is not a number or lies
	// outside [0,100]. The state is left unchanged.
	ErrInvalidRate = errors.New("invalid savings rate")
	// ErrInvalidExpense is returned when an expense has an empty name or a
	// non-positive amount. The ledger is left unchanged.
	ErrInvalidExpense = errors.New("invalid expense")
)
