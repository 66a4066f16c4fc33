package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceDirection states whether an invoice is to be paid to the provider
// or collected from it.
//
// swagger:enum InvoiceDirection
type InvoiceDirection string

const (
	InvoicePayable    InvoiceDirection = "payable"
	InvoiceReceivable InvoiceDirection = "receivable"
)

// Invoice is a single obligation towards or from a provider. Its pending
// amount starts at the invoice total and is only ever changed through
// cash movement allocations.
type Invoice struct {
	DefaultModel
	Provider      Provider `json:"-"`
	ProviderID    uuid.UUID
	Direction     InvoiceDirection
	Number        string
	IssueDate     time.Time
	DueDate       time.Time
	TotalAmount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PendingAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Version       uint
}

// BeforeSave sets the timezone for the dates to UTC.
func (i *Invoice) BeforeSave(_ *gorm.DB) error {
	i.IssueDate = i.IssueDate.In(time.UTC)
	i.DueDate = i.DueDate.In(time.UTC)

	return nil
}

// BeforeCreate initializes the pending amount to the invoice total and
// verifies the provider reference.
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	_ = i.DefaultModel.BeforeCreate(tx)

	if i.PendingAmount.IsZero() {
		i.PendingAmount = i.TotalAmount
	}

	return tx.First(&Provider{}, i.ProviderID).Error
}

// BeforeDelete blocks deletion of partially or fully settled invoices.
// The settling cash movements have to be deleted first, which restores the
// pending amount.
func (i *Invoice) BeforeDelete(_ *gorm.DB) error {
	if !i.PendingAmount.Equal(i.TotalAmount) {
		return ErrInvoiceAllocated
	}

	return nil
}

// applyAllocation settles part of the invoice and persists the new pending
// amount. The update is guarded by the invoice version: a concurrent change
// since the invoice was loaded fails with ErrConflict.
//
// This is the only code path lowering a pending amount. Components outside
// the allocator must never write it directly.
func (i *Invoice) applyAllocation(tx *gorm.DB, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	if amount.GreaterThan(i.PendingAmount) {
		return ErrInsufficientBalance
	}

	return i.setPendingAmount(tx, i.PendingAmount.Sub(amount))
}

// reverseAllocation restores part of the invoice's pending amount, e.g. when
// the settling cash movement is deleted. A reversal that would raise the
// pending amount above the invoice total signals a pre-existing data
// inconsistency and fails with ErrOverflow instead of clamping.
func (i *Invoice) reverseAllocation(tx *gorm.DB, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	pending := i.PendingAmount.Add(amount)
	if pending.GreaterThan(i.TotalAmount) {
		return ErrOverflow
	}

	return i.setPendingAmount(tx, pending)
}

// setPendingAmount writes the pending amount with an optimistic version
// check and updates the in-memory invoice on success.
func (i *Invoice) setPendingAmount(tx *gorm.DB, pending decimal.Decimal) error {
	res := tx.Model(&Invoice{}).
		Where("id = ? AND version = ?", i.ID, i.Version).
		Updates(map[string]any{
			"pending_amount": pending,
			"version":        i.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrConflict
	}

	i.PendingAmount = pending
	i.Version++
	return nil
}
