package coins

import "errors"

// Denominations lists the coin values the machine accepts and returns,
// largest first. The order matters: MakeChange walks it greedily, which is
// optimal for this canonical set.
var Denominations = []int{100, 50, 20, 10, 5}

// ErrChange indicates an amount that cannot be represented with the
// configured denominations. With the current set every non-negative
// multiple of 5 is representable, so hitting this means malformed input
// further up the stack.
var ErrChange = errors.New("amount cannot be represented with available coins")

// IsValidDenomination reports whether amount is one of the accepted coin
// values.
func IsValidDenomination(amount int) bool {
	for _, d := range Denominations {
		if amount == d {
			return true
		}
	}
	return false
}

// MakeChange decomposes amount into a flat list of coin values, largest
// first, using the fewest coins possible. A zero amount yields an empty
// (non-nil) slice. Returns ErrChange if amount is negative or not fully
// representable.
func MakeChange(amount int) ([]int, error) {
	if amount < 0 {
		return nil, ErrChange
	}

	change := make([]int, 0)
	remaining := amount
	for _, d := range Denominations {
		for remaining >= d {
			change = append(change, d)
			remaining -= d
		}
	}

	if remaining != 0 {
		return nil, ErrChange
	}
	return change, nil
}
