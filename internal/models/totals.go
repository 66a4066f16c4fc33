package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseSubtotals are the per-category expense sums of a settlement sheet.
type ExpenseSubtotals struct {
	Referee    decimal.Decimal `json:"referee" example:"240.00"`
	Venue      decimal.Decimal `json:"venue" example:"600.00"`
	Instructor decimal.Decimal `json:"instructor" example:"160.00"`
	Medic      decimal.Decimal `json:"medic" example:"0"`
	Sundry     decimal.Decimal `json:"sundry" example:"35.50"`
}

// Sum adds up all category subtotals.
func (s ExpenseSubtotals) Sum() decimal.Decimal {
	return s.Referee.Add(s.Venue).Add(s.Instructor).Add(s.Medic).Add(s.Sundry)
}

// SheetTotals are the derived figures of a settlement sheet. They are
// computed from the rows on every read and never stored, so they cannot
// drift from the data.
type SheetTotals struct {
	TotalIncome    decimal.Decimal  `json:"totalIncome" example:"4000.00"`
	Expenses       ExpenseSubtotals `json:"expenses"`
	TotalExpense   decimal.Decimal  `json:"totalExpense" example:"3000.00"`
	CashOnHand     decimal.Decimal  `json:"cashOnHand" example:"1000.00"`
	CashDifference decimal.Decimal  `json:"cashDifference" example:"0"`
}

// ComputeTotals derives the sheet figures from its rows. Absent teams
// contribute no income. The cash difference compares the cash the sheet
// says should be on hand with what was actually counted at closing.
func ComputeTotals(sheet SettlementSheet, teams []TeamRow, expenses []ExpenseRow) SheetTotals {
	totals := SheetTotals{
		TotalIncome: decimal.Zero,
	}

	for _, team := range teams {
		if team.Absent {
			continue
		}
		totals.TotalIncome = totals.TotalIncome.Add(team.PaidTotal())
	}

	for _, expense := range expenses {
		amount := expense.LineTotal()

		switch expense.Category {
		case ExpenseReferee:
			totals.Expenses.Referee = totals.Expenses.Referee.Add(amount)
		case ExpenseVenue:
			totals.Expenses.Venue = totals.Expenses.Venue.Add(amount)
		case ExpenseInstructor:
			totals.Expenses.Instructor = totals.Expenses.Instructor.Add(amount)
		case ExpenseMedic:
			totals.Expenses.Medic = totals.Expenses.Medic.Add(amount)
		case ExpenseSundry:
			totals.Expenses.Sundry = totals.Expenses.Sundry.Add(amount)
		}
	}

	totals.TotalExpense = totals.Expenses.Sum()
	totals.CashOnHand = totals.TotalIncome.Sub(totals.TotalExpense)
	totals.CashDifference = totals.CashOnHand.Sub(sheet.ActualCashCounted)

	return totals
}

// LoadSheet reads a sheet together with its rows, ordered by sequence, and
// computes its totals.
func LoadSheet(db *gorm.DB, id uuid.UUID) (SettlementSheet, []TeamRow, []ExpenseRow, SheetTotals, error) {
	var sheet SettlementSheet
	err := db.First(&sheet, id).Error
	if err != nil {
		return SettlementSheet{}, nil, nil, SheetTotals{}, err
	}

	teams := make([]TeamRow, 0)
	err = db.
		Where("team_rows.sheet_id = ?", id).
		Order("team_rows.sequence ASC").
		Find(&teams).Error
	if err != nil {
		return SettlementSheet{}, nil, nil, SheetTotals{}, err
	}

	expenses := make([]ExpenseRow, 0)
	err = db.
		Where("expense_rows.sheet_id = ?", id).
		Order("expense_rows.category ASC, expense_rows.sequence ASC").
		Find(&expenses).Error
	if err != nil {
		return SettlementSheet{}, nil, nil, SheetTotals{}, err
	}

	return sheet, teams, expenses, ComputeTotals(sheet, teams, expenses), nil
}
