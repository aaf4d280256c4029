package inventory

import (
	"errors"
	"fmt"
)

// ErrNegativeStock is returned when a movement would leave qty_on_hand below
// zero and the policy forbids it.
var ErrNegativeStock = errors.New("inventory: negative stock not allowed")

// Policy decides whether stock may go below zero. With AllowNegative set,
// sales beyond the counted stock are still recorded (overselling).
type Policy struct {
	AllowNegative bool
}

// Check validates moving current by delta.
func (p Policy) Check(productID, current, delta int64) error {
	if p.AllowNegative || delta >= 0 {
		return nil
	}
	if current+delta < 0 {
		return fmt.Errorf("%w: product %d has %d, movement %d", ErrNegativeStock, productID, current, delta)
	}
	return nil
}
