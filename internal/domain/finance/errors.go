package finance

import "errors"

var (
	ErrInvalidMonth     = errors.New("invalid month identifier")
	ErrInvalidDateRange = errors.New("start date after end date")
)
