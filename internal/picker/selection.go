package picker

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrSelectionNotNumeric reports menu input that is not a whole number.
	ErrSelectionNotNumeric = errors.New("selection is not a number")
	// ErrSelectionOutOfRange reports a numeric selection outside the menu.
	ErrSelectionOutOfRange = errors.New("selection out of range")
)

// ParseSelection converts a 1-based menu answer into a zero-based index
// into a list of count entries.
func ParseSelection(input string, count int) (int, error) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSelectionNotNumeric, input)
	}
	if n < 1 || n > count {
		return 0, fmt.Errorf("%w: %d (menu has %d entries)", ErrSelectionOutOfRange, n, count)
	}
	return n - 1, nil
}
