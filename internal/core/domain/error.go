package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Business errors.
	ErrInvalidOrder       = errors.New("invalid order")
	ErrInvalidProducts    = errors.New("invalid product(s)")
	ErrUnknownOrderStatus = errors.New("unknown order status")
	ErrOrderNotValid      = errors.New("order is not valid")
	ErrProductNotValid    = errors.New("product is not valid")
)

// ErrSameStatus marks SameStatusError for errors.Is checks.
var ErrSameStatus = errors.New("order already has requested status")

// SameStatusError rejects a status update that re-asserts the order's
// current status. The message carries the status label shown to the user.
type SameStatusError struct {
	Status OrderStatus
}

func (e *SameStatusError) Error() string {
	return fmt.Sprintf("order already has status %s", e.Status.Label())
}

func (e *SameStatusError) Is(target error) bool {
	return target == ErrSameStatus
}
