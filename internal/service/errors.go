package service

import (
	"errors"
	"fmt"
	"strings"
)

// Service sentinel errors. Handlers translate these to response codes.
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductOutOfStock  = errors.New("product out of stock")
	ErrCartItemInvalid    = errors.New("cart item invalid")
	ErrCartEmpty          = errors.New("cart empty")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderCreateFailed  = errors.New("order create failed")
	ErrOrderFetchFailed   = errors.New("order fetch failed")
	ErrOrderUpdateFailed  = errors.New("order update failed")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// ValidationError reports the required checkout fields that were missing.
type ValidationError struct {
	MissingFields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.MissingFields, ", "))
}
