package v1

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ligaoffice/backend/internal/models"
)

// TeamRowEditable represents all user configurable parameters
type TeamRowEditable struct {
	Sequence         uint            `json:"sequence" example:"3" default:"0"`           // Position of the row on the sheet, assigned automatically when 0
	TeamName         string          `json:"teamName" example:"CD Esperanza" default:""` // Name of the team
	PaymentType      string          `json:"paymentType" example:"cash" default:""`      // How the team paid
	DepositReference string          `json:"depositReference" example:"" default:""`     // Bank reference when paying by deposit
	TotalToPay       decimal.Decimal `json:"totalToPay" example:"250.00"`                // What the team owes for the match day
	PaidInscription  decimal.Decimal `json:"paidInscription" example:"0"`                // Amount paid towards the inscription
	PaidDeposit      decimal.Decimal `json:"paidDeposit" example:"0"`                    // Amount paid towards the deposit
	PaidMatchday     decimal.Decimal `json:"paidMatchday" example:"250.00"`              // Amount paid for the match day itself
	Absent           bool            `json:"absent" example:"false" default:"false"`     // Whether the team did not show up
}

func (editable TeamRowEditable) model(sheetID uuid.UUID) models.TeamRow {
	return models.TeamRow{
		SheetID:          sheetID,
		Sequence:         editable.Sequence,
		TeamName:         editable.TeamName,
		PaymentType:      editable.PaymentType,
		DepositReference: editable.DepositReference,
		TotalToPay:       editable.TotalToPay,
		PaidInscription:  editable.PaidInscription,
		PaidDeposit:      editable.PaidDeposit,
		PaidMatchday:     editable.PaidMatchday,
		Absent:           editable.Absent,
	}
}

// BatchTeamRow is one working set row of a batch replacement. A row with an
// ID replaces the stored row with that ID, a row without an ID is inserted.
type BatchTeamRow struct {
	ID uuid.UUID `json:"id" example:"0f0a7e7a-9d5d-4d8c-9f0c-2a6f6e9e7f11" default:"00000000-0000-0000-0000-000000000000"` // ID of the stored row this one replaces, empty for new rows
	TeamRowEditable
}

// TeamRowBatchRequest is the body for replacing the team rows of a sheet.
type TeamRowBatchRequest struct {
	Version uint           `json:"version" example:"3"` // The sheet version the client saw, for conflict detection
	Rows    []BatchTeamRow `json:"rows"`                // The full working set of team rows
}

type TeamRow struct {
	models.DefaultModel
	TeamRowEditable

	// These fields are computed
	PaidTotal decimal.Decimal `json:"paidTotal" example:"250.00"` // Sum of all paid concepts
	Debt      decimal.Decimal `json:"debt" example:"0"`           // What the team still owes
}

func newTeamRow(model models.TeamRow) TeamRow {
	return TeamRow{
		DefaultModel: model.DefaultModel,
		TeamRowEditable: TeamRowEditable{
			Sequence:         model.Sequence,
			TeamName:         model.TeamName,
			PaymentType:      model.PaymentType,
			DepositReference: model.DepositReference,
			TotalToPay:       model.TotalToPay,
			PaidInscription:  model.PaidInscription,
			PaidDeposit:      model.PaidDeposit,
			PaidMatchday:     model.PaidMatchday,
			Absent:           model.Absent,
		},
		PaidTotal: model.PaidTotal(),
		Debt:      model.Debt(),
	}
}

type TeamRowListResponse struct {
	Data  []TeamRow `json:"data"`                                                          // Team rows, ordered by sequence
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TeamRowResponse struct {
	Data  *TeamRow `json:"data"`                                                          // Data for the Team Row
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// ExpenseRowEditable represents all user configurable parameters
type ExpenseRowEditable struct {
	Sequence    uint            `json:"sequence" example:"2" default:"0"`                             // Position of the row within its category, assigned automatically when 0
	Description string          `json:"description" example:"Referee pair, morning shift" default:""` // What the expense is for
	ProviderID  *uuid.UUID      `json:"providerId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"`    // Provider the expense belongs to, optional
	Quantity    decimal.Decimal `json:"quantity" example:"2"`                                         // Number of units
	UnitValue   decimal.Decimal `json:"unitValue" example:"60.00"`                                    // Value of one unit
}

func (editable ExpenseRowEditable) model(sheetID uuid.UUID, category models.ExpenseCategory) models.ExpenseRow {
	return models.ExpenseRow{
		SheetID:     sheetID,
		Category:    category,
		Sequence:    editable.Sequence,
		Description: editable.Description,
		ProviderID:  editable.ProviderID,
		Quantity:    editable.Quantity,
		UnitValue:   editable.UnitValue,
	}
}

// BatchExpenseRow is one working set row of a batch replacement. A row with
// an ID replaces the stored row with that ID, a row without an ID is
// inserted.
type BatchExpenseRow struct {
	ID uuid.UUID `json:"id" example:"0f0a7e7a-9d5d-4d8c-9f0c-2a6f6e9e7f11" default:"00000000-0000-0000-0000-000000000000"` // ID of the stored row this one replaces, empty for new rows
	ExpenseRowEditable
}

// ExpenseRowBatchRequest is the body for replacing the expense rows of one
// category of a sheet.
type ExpenseRowBatchRequest struct {
	Version uint              `json:"version" example:"3"` // The sheet version the client saw, for conflict detection
	Rows    []BatchExpenseRow `json:"rows"`                // The full working set for the category
}

type ExpenseRow struct {
	models.DefaultModel
	Category models.ExpenseCategory `json:"category" example:"referee"` // Category of the expense
	ExpenseRowEditable

	// These fields are computed
	LineTotal decimal.Decimal `json:"lineTotal" example:"120.00"` // Quantity times unit value
}

func newExpenseRow(model models.ExpenseRow) ExpenseRow {
	return ExpenseRow{
		DefaultModel: model.DefaultModel,
		Category:     model.Category,
		ExpenseRowEditable: ExpenseRowEditable{
			Sequence:    model.Sequence,
			Description: model.Description,
			ProviderID:  model.ProviderID,
			Quantity:    model.Quantity,
			UnitValue:   model.UnitValue,
		},
		LineTotal: model.LineTotal(),
	}
}

type ExpenseRowListResponse struct {
	Data  []ExpenseRow `json:"data"`                                                          // Expense rows, ordered by sequence
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseRowResponse struct {
	Data  *ExpenseRow `json:"data"`                                                          // Data for the Expense Row
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
