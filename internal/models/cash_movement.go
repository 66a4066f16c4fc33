package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MovementDirection states whether cash flows out to the provider (payment)
// or in from it (collection).
//
// swagger:enum MovementDirection
type MovementDirection string

const (
	MovementPayment    MovementDirection = "payment"
	MovementCollection MovementDirection = "collection"
)

// CashMovement is one payment or collection event against one provider.
// The allocated amount must equal the sum of the movement's allocations,
// which is enforced before anything is persisted.
type CashMovement struct {
	DefaultModel
	Provider        Provider `json:"-"`
	ProviderID      uuid.UUID
	Direction       MovementDirection
	OriginDate      time.Time
	DueDate         time.Time
	CashAmount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CheckAmount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	NetAmount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	AllocatedAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note            string
	Allocations     []Allocation
}

// Allocation links one cash movement to one invoice and carries the amount
// of that invoice settled by that movement. Allocations are created and
// deleted only together with their movement, never edited on their own.
type Allocation struct {
	DefaultModel
	CashMovementID uuid.UUID       `gorm:"uniqueIndex:allocation_movement_invoice"`
	InvoiceID      uuid.UUID       `gorm:"uniqueIndex:allocation_movement_invoice"`
	Invoice        Invoice         `json:"-"`
	Amount         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// BeforeSave sets the timezone for the dates to UTC and trims the note.
func (m *CashMovement) BeforeSave(_ *gorm.DB) error {
	if m.OriginDate.IsZero() {
		m.OriginDate = time.Now().In(time.UTC)
	} else {
		m.OriginDate = m.OriginDate.In(time.UTC)
	}
	m.DueDate = m.DueDate.In(time.UTC)
	m.Note = strings.TrimSpace(m.Note)

	return nil
}

// CreateCashMovement validates the movement's allocation contract, applies
// the allocations to their invoices and persists everything as one unit of
// work. On any failure nothing is left behind: invoice balances, allocation
// rows and the movement itself are committed together or not at all.
func CreateCashMovement(db *gorm.DB, movement *CashMovement) error {
	if err := checkAllocationContract(movement); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		return createCashMovement(tx, movement)
	})
}

// DeleteCashMovement reverses all of the movement's allocations, restoring
// the invoice pending amounts, and then deletes the allocation rows and the
// movement. Deleting an unknown movement fails with a not-found error and
// changes no invoice balance.
func DeleteCashMovement(db *gorm.DB, id uuid.UUID) error {
	var movement CashMovement
	err := db.First(&movement, id).Error
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		return deleteCashMovement(tx, movement)
	})
}

// UpdateCashMovement replaces a movement and its allocation set. There is no
// in-place partial edit of allocations: the old movement is reversed and
// deleted, then the replacement is created, all in one unit of work.
func UpdateCashMovement(db *gorm.DB, id uuid.UUID, replacement *CashMovement) error {
	if err := checkAllocationContract(replacement); err != nil {
		return err
	}

	var movement CashMovement
	err := db.First(&movement, id).Error
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		err := deleteCashMovement(tx, movement)
		if err != nil {
			return err
		}

		return createCashMovement(tx, replacement)
	})
}

// checkAllocationContract enforces the allocation-sum contract at the
// boundary, before any persistence: the caller-declared allocated amount
// must equal the sum of the allocation amounts. With no allocations the
// declared amount must be zero.
func checkAllocationContract(movement *CashMovement) error {
	if movement.Direction != MovementPayment && movement.Direction != MovementCollection {
		return ErrMovementDirectionInvalid
	}

	sum := decimal.Zero
	for _, allocation := range movement.Allocations {
		sum = sum.Add(allocation.Amount)
	}

	if !sum.Equal(movement.AllocatedAmount) {
		return ErrAllocationMismatch
	}

	return nil
}

func createCashMovement(tx *gorm.DB, movement *CashMovement) error {
	// Verify the provider reference
	err := tx.First(&Provider{}, movement.ProviderID).Error
	if err != nil {
		return err
	}

	for _, allocation := range movement.Allocations {
		var invoice Invoice
		err := tx.First(&invoice, allocation.InvoiceID).Error
		if err != nil {
			return err
		}

		if invoice.ProviderID != movement.ProviderID {
			return ErrAllocationProvider
		}

		err = invoice.applyAllocation(tx, allocation.Amount)
		if err != nil {
			return err
		}
	}

	return tx.Create(movement).Error
}

func deleteCashMovement(tx *gorm.DB, movement CashMovement) error {
	var allocations []Allocation
	err := tx.Where(&Allocation{CashMovementID: movement.ID}).Find(&allocations).Error
	if err != nil {
		return err
	}

	for _, allocation := range allocations {
		var invoice Invoice
		err := tx.First(&invoice, allocation.InvoiceID).Error
		if err != nil {
			return err
		}

		err = invoice.reverseAllocation(tx, allocation.Amount)
		if err != nil {
			return err
		}

		err = tx.Delete(&allocation).Error
		if err != nil {
			return err
		}
	}

	return tx.Delete(&movement).Error
}
