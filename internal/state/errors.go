package state

import "errors"

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrItemNotFound        = errors.New("cart item not found")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrCheckoutInProgress  = errors.New("checkout is in progress")
	ErrNoCheckout          = errors.New("no checkout in progress")
	ErrCheckoutAtFinalStep = errors.New("checkout is already at the confirm step")
	ErrCheckoutNotConfirm  = errors.New("checkout has not reached the confirm step")
	ErrStoreClosed         = errors.New("store is closed")
)
