package models

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// BatchStep names the phase of a batch row replacement.
//
// swagger:enum BatchStep
type BatchStep string

const (
	BatchDelete BatchStep = "delete"
	BatchUpdate BatchStep = "update"
	BatchInsert BatchStep = "insert"
)

// BatchError reports which step of a batch replacement failed and on which
// row. The whole batch is rolled back, the error only serves diagnosis.
type BatchError struct {
	Step     BatchStep
	Sequence uint
	Err      error
}

func (e BatchError) Error() string {
	return fmt.Sprintf("batch %s failed for row %d: %v", e.Step, e.Sequence, e.Err)
}

func (e BatchError) Unwrap() error {
	return e.Err
}

// ReplaceTeamRows replaces the full team row set of a sheet with the
// working set in one unit of work: rows missing from the working set are
// deleted, changed rows are updated and rows without an ID are inserted.
// The write is guarded by the sheet version and bumps it on success.
func ReplaceTeamRows(db *gorm.DB, sheetID uuid.UUID, expectedVersion uint, working []TeamRow) error {
	return db.Transaction(func(tx *gorm.DB) error {
		sheet, err := sheetForBatch(tx, sheetID, expectedVersion)
		if err != nil {
			return err
		}

		baseline := make([]TeamRow, 0)
		err = tx.Where("team_rows.sheet_id = ?", sheetID).Find(&baseline).Error
		if err != nil {
			return err
		}

		for i := range working {
			working[i].SheetID = sheetID
		}

		deletes, updates, inserts := diffRows(baseline, working,
			func(r TeamRow) uuid.UUID { return r.ID },
			func(a, b TeamRow) bool {
				return a.Sequence == b.Sequence &&
					a.TeamName == b.TeamName &&
					a.PaymentType == b.PaymentType &&
					a.DepositReference == b.DepositReference &&
					a.TotalToPay.Equal(b.TotalToPay) &&
					a.PaidInscription.Equal(b.PaidInscription) &&
					a.PaidDeposit.Equal(b.PaidDeposit) &&
					a.PaidMatchday.Equal(b.PaidMatchday) &&
					a.Absent == b.Absent
			})

		err = applyBatch(tx, deletes, updates, inserts, func(r TeamRow) uint { return r.Sequence })
		if err != nil {
			return err
		}

		return sheet.save(tx)
	})
}

// ReplaceExpenseRows replaces the expense row set of one category of a
// sheet, leaving the other categories untouched. Otherwise it behaves like
// ReplaceTeamRows.
func ReplaceExpenseRows(db *gorm.DB, sheetID uuid.UUID, category ExpenseCategory, expectedVersion uint, working []ExpenseRow) error {
	if _, err := ParseExpenseCategory(string(category)); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		sheet, err := sheetForBatch(tx, sheetID, expectedVersion)
		if err != nil {
			return err
		}

		baseline := make([]ExpenseRow, 0)
		err = tx.
			Where("expense_rows.sheet_id = ? AND expense_rows.category = ?", sheetID, category).
			Find(&baseline).Error
		if err != nil {
			return err
		}

		for i := range working {
			working[i].SheetID = sheetID
			working[i].Category = category
		}

		deletes, updates, inserts := diffRows(baseline, working,
			func(r ExpenseRow) uuid.UUID { return r.ID },
			func(a, b ExpenseRow) bool {
				return a.Sequence == b.Sequence &&
					a.Description == b.Description &&
					uuidPtrEqual(a.ProviderID, b.ProviderID) &&
					a.Quantity.Equal(b.Quantity) &&
					a.UnitValue.Equal(b.UnitValue)
			})

		err = applyBatch(tx, deletes, updates, inserts, func(r ExpenseRow) uint { return r.Sequence })
		if err != nil {
			return err
		}

		return sheet.save(tx)
	})
}

// sheetForBatch loads the sheet and verifies that it is editable and that
// the caller saw its current version.
func sheetForBatch(tx *gorm.DB, sheetID uuid.UUID, expectedVersion uint) (*SettlementSheet, error) {
	var sheet SettlementSheet
	err := tx.First(&sheet, sheetID).Error
	if err != nil {
		return nil, err
	}

	if !sheet.Editable() {
		return nil, ErrSheetNotEditable
	}

	if sheet.Version != expectedVersion {
		return nil, ErrConflict
	}

	return &sheet, nil
}

// diffRows splits a working row set against the baseline. A working row
// with the ID of a baseline row is an update when any field differs, a
// working row without an ID is an insert and baseline rows absent from the
// working set are deletes.
func diffRows[T any](baseline, working []T, id func(T) uuid.UUID, equal func(a, b T) bool) (deletes, updates, inserts []T) {
	for _, row := range baseline {
		keep := slices.IndexFunc(working, func(w T) bool { return id(w) == id(row) })
		if keep < 0 {
			deletes = append(deletes, row)
		}
	}

	for _, row := range working {
		if id(row) == uuid.Nil {
			inserts = append(inserts, row)
			continue
		}

		existing := slices.IndexFunc(baseline, func(b T) bool { return id(b) == id(row) })
		if existing < 0 {
			// Unknown ID, treat the row as a new one
			inserts = append(inserts, row)
			continue
		}

		if !equal(baseline[existing], row) {
			updates = append(updates, row)
		}
	}

	return deletes, updates, inserts
}

// applyBatch executes the three phases in a fixed order. Deletes run first
// so that freed sequence numbers can be taken over by updates and inserts
// within the same batch.
func applyBatch[T any](tx *gorm.DB, deletes, updates, inserts []T, sequence func(T) uint) error {
	for _, row := range deletes {
		if err := tx.Delete(&row).Error; err != nil {
			return BatchError{Step: BatchDelete, Sequence: sequence(row), Err: err}
		}
	}

	for _, row := range updates {
		err := tx.Model(&row).
			Select("*").
			Omit("id", "created_at", "deleted_at").
			Updates(&row).Error
		if err != nil {
			return BatchError{Step: BatchUpdate, Sequence: sequence(row), Err: err}
		}
	}

	for _, row := range inserts {
		if err := tx.Create(&row).Error; err != nil {
			return BatchError{Step: BatchInsert, Sequence: sequence(row), Err: err}
		}
	}

	return nil
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
