package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TeamRow is one team's line on a settlement sheet: what the team owes for
// the match day and what it has paid, split by concept. Rows are ordered by
// a per-sheet sequence number.
type TeamRow struct {
	DefaultModel
	Sheet            SettlementSheet `json:"-"`
	SheetID          uuid.UUID       `gorm:"uniqueIndex:team_row_sequence"`
	Sequence         uint            `gorm:"uniqueIndex:team_row_sequence"`
	TeamName         string
	PaymentType      string
	DepositReference string
	TotalToPay       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PaidInscription  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PaidDeposit      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PaidMatchday     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Absent           bool
}

// PaidTotal is the sum of all paid concepts of the row.
func (r TeamRow) PaidTotal() decimal.Decimal {
	return r.PaidInscription.Add(r.PaidDeposit).Add(r.PaidMatchday)
}

// Debt is what the team still owes for the match day.
func (r TeamRow) Debt() decimal.Decimal {
	return r.TotalToPay.Sub(r.PaidTotal())
}

// BeforeSave trims whitespace from all strings
func (r *TeamRow) BeforeSave(_ *gorm.DB) error {
	r.TeamName = strings.TrimSpace(r.TeamName)
	r.PaymentType = strings.TrimSpace(r.PaymentType)
	r.DepositReference = strings.TrimSpace(r.DepositReference)

	return nil
}

// BeforeCreate assigns the next free sequence number and verifies that the
// sheet is still editable.
func (r *TeamRow) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	if r.Sequence == 0 {
		sequence, err := nextSequence(tx, &TeamRow{}, "sheet_id = ?", r.SheetID)
		if err != nil {
			return err
		}
		r.Sequence = sequence
	}

	return checkSheetEditable(tx, r.SheetID)
}

func (r *TeamRow) BeforeUpdate(tx *gorm.DB) error {
	return checkSheetEditable(tx, r.SheetID)
}

func (r *TeamRow) BeforeDelete(tx *gorm.DB) error {
	return checkSheetEditable(tx, r.SheetID)
}

// ExpenseCategory groups expense rows on a settlement sheet.
//
// swagger:enum ExpenseCategory
type ExpenseCategory string

const (
	ExpenseReferee    ExpenseCategory = "referee"
	ExpenseVenue      ExpenseCategory = "venue"
	ExpenseInstructor ExpenseCategory = "instructor"
	ExpenseMedic      ExpenseCategory = "medic"
	ExpenseSundry     ExpenseCategory = "sundry"
)

// ParseExpenseCategory converts a string to an ExpenseCategory.
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	category := ExpenseCategory(s)
	switch category {
	case ExpenseReferee, ExpenseVenue, ExpenseInstructor, ExpenseMedic, ExpenseSundry:
		return category, nil
	}

	return "", ErrExpenseCategoryInvalid
}

// ExpenseRow is one expense line on a settlement sheet. Rows are grouped by
// category and ordered by a per-category sequence number. The line total is
// always quantity times unit value, never stored.
type ExpenseRow struct {
	DefaultModel
	Sheet       SettlementSheet `json:"-"`
	SheetID     uuid.UUID       `gorm:"uniqueIndex:expense_row_sequence"`
	Category    ExpenseCategory `gorm:"uniqueIndex:expense_row_sequence"`
	Sequence    uint            `gorm:"uniqueIndex:expense_row_sequence"`
	Description string
	Provider    *Provider `json:"-"`
	ProviderID  *uuid.UUID
	Quantity    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	UnitValue   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// LineTotal is the amount of the row, quantity times unit value.
func (r ExpenseRow) LineTotal() decimal.Decimal {
	return r.Quantity.Mul(r.UnitValue)
}

// BeforeSave validates the category and the provider's role for it.
func (r *ExpenseRow) BeforeSave(tx *gorm.DB) error {
	r.Description = strings.TrimSpace(r.Description)

	if _, err := ParseExpenseCategory(string(r.Category)); err != nil {
		return err
	}

	if r.ProviderID == nil {
		return nil
	}

	var provider Provider
	err := tx.First(&provider, *r.ProviderID).Error
	if err != nil {
		return err
	}

	// Sundry rows accept providers of any type
	if role, restricted := categoryRoles[r.Category]; restricted && provider.Type != role {
		return ErrProviderRole
	}

	return nil
}

// BeforeCreate assigns the next free sequence number within the row's
// category and verifies that the sheet is still editable.
func (r *ExpenseRow) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	if r.Sequence == 0 {
		sequence, err := nextSequence(tx, &ExpenseRow{}, "sheet_id = ? AND category = ?", r.SheetID, r.Category)
		if err != nil {
			return err
		}
		r.Sequence = sequence
	}

	return checkSheetEditable(tx, r.SheetID)
}

func (r *ExpenseRow) BeforeUpdate(tx *gorm.DB) error {
	return checkSheetEditable(tx, r.SheetID)
}

func (r *ExpenseRow) BeforeDelete(tx *gorm.DB) error {
	return checkSheetEditable(tx, r.SheetID)
}

var categoryRoles = map[ExpenseCategory]ProviderType{
	ExpenseReferee:    ProviderTypeReferee,
	ExpenseVenue:      ProviderTypeVenue,
	ExpenseInstructor: ProviderTypeInstructor,
	ExpenseMedic:      ProviderTypeMedic,
}

// checkSheetEditable fails with ErrSheetNotEditable when the sheet is
// closed or accounted. Rows can only be changed on open sheets.
func checkSheetEditable(tx *gorm.DB, sheetID uuid.UUID) error {
	var sheet SettlementSheet
	err := tx.First(&sheet, sheetID).Error
	if err != nil {
		return err
	}

	if !sheet.Editable() {
		return ErrSheetNotEditable
	}

	return nil
}

// nextSequence returns max(sequence)+1 over the rows matching the query.
// Soft-deleted rows keep their sequence number reserved so that restored
// data cannot collide with rows added later.
func nextSequence(tx *gorm.DB, model any, query string, args ...any) (uint, error) {
	var max *uint
	err := tx.Unscoped().Model(model).
		Where(query, args...).
		Select("MAX(sequence)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}

	if max == nil {
		return 1, nil
	}

	return *max + 1, nil
}
