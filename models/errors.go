package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError reports malformed or out-of-range input. It is produced
// before anything touches persistence.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NotFoundError reports a reference to a row that does not exist.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// InsufficientStockError carries the requested and available meterage so the
// caller can offer a reduced quantity. No partial deduction has happened.
type InsufficientStockError struct {
	InventoryID uint
	Requested   decimal.Decimal
	Available   decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for inventory %d: available %sm, requested %sm",
		e.InventoryID, e.Available, e.Requested)
}

// StorageError wraps a persistence failure. The operation must be treated as
// not committed.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }
