package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Invoice ledger errors
var (
	ErrInvalidAmount       = errors.New("the amount must be positive")
	ErrInsufficientBalance = errors.New("the allocation is higher than the pending amount of the invoice")
	ErrOverflow            = errors.New("reversing the allocation would raise the pending amount above the invoice total")
	ErrInvoiceAllocated    = errors.New("an invoice with allocations cannot be deleted, delete the settling cash movements first")
)

// Cash movement errors
var (
	ErrAllocationMismatch       = errors.New("the allocated amount must equal the sum of the allocations")
	ErrAllocationProvider       = errors.New("allocations can only settle invoices of the movement's provider")
	ErrAllocationInvoiceNotOnce = errors.New("an invoice can only appear once in a movement's allocations")
	ErrMovementDirectionInvalid = errors.New("the direction must be payment or collection")
)

// Settlement sheet errors
var (
	ErrMatchDayNotUnique      = errors.New("there is already a settlement sheet for this match day")
	ErrMissingResponsible     = errors.New("a responsible person must be set for this transition")
	ErrSheetAlreadyClosed     = errors.New("the settlement sheet is already closed")
	ErrSheetAlreadyAccounted  = errors.New("the settlement sheet is already accounted")
	ErrSheetNotClosed         = errors.New("the settlement sheet must be closed before it can be accounted")
	ErrSheetNotEditable       = errors.New("the settlement sheet can only be edited while it is open")
	ErrSequenceNotUnique      = errors.New("the row sequence number is already in use on this sheet")
	ErrProviderRole           = errors.New("the provider cannot fill this role on the settlement sheet")
	ErrExpenseCategoryInvalid = errors.New("the expense category must be one of referee, venue, instructor, medic, sundry")
)

// ErrConflict is returned when a write carries a stale version, i.e. the
// resource was changed by someone else since it was loaded.
var ErrConflict = errors.New("the resource was changed concurrently, reload it and try again")
