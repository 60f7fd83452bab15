package dice

import "errors"

var (
	// ErrConfigTooLarge indicates a configuration with too many ordered rolls to enumerate.
	ErrConfigTooLarge = errors.New("dice: configuration too large to enumerate")
	// ErrInvalidTotal indicates a non-positive combination total when building probabilities.
	ErrInvalidTotal = errors.New("dice: total combinations must be positive")
	// ErrEmptyTable indicates a probability or interval table with no entries.
	ErrEmptyTable = errors.New("dice: table has no entries")
)
