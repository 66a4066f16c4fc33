package v1

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ligaoffice/backend/internal/models"
	"github.com/ligaoffice/backend/internal/types"
)

// SettlementSheetEditable represents all user configurable parameters
type SettlementSheetEditable struct {
	MatchDay types.Day `json:"matchDay" example:"2024-03-09"` // The match day the sheet settles, unique across sheets
}

func (editable SettlementSheetEditable) model() models.SettlementSheet {
	return models.SettlementSheet{
		MatchDay: editable.MatchDay,
	}
}

// SettlementSheetUpdateable represents the parameters that can be corrected
// on an existing sheet without going through the lifecycle transitions.
type SettlementSheetUpdateable struct {
	ActualCashCounted decimal.Decimal `json:"actualCashCounted" example:"1000.00"`                 // Cash actually counted at closing
	ClosingNote       string          `json:"closingNote" example:"10 short, see note" default:""` // Notes about the closing
	Version           uint            `json:"version" example:"3"`                                 // The sheet version the client saw, for conflict detection
}

// SheetCloseRequest is the body for closing a sheet.
type SheetCloseRequest struct {
	ResponsibleInstructorID uuid.UUID       `json:"responsibleInstructorId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"` // The instructor responsible for the match day, mandatory
	ActualCashCounted       decimal.Decimal `json:"actualCashCounted" example:"1000.00"`                                    // Cash actually counted at closing
	ClosingNote             string          `json:"closingNote" example:"" default:""`                                      // Notes about the closing
}

// SheetActorRequest is the body for accounting and reopening a sheet.
type SheetActorRequest struct {
	Actor string `json:"actor" example:"back-office: m.serrano"` // Who performs the transition, mandatory
}

type SettlementSheetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/settlement-sheets/9a22e4f4-efd9-4d3c-b2a4-f8bc5f2ee50d"`              // The settlement sheet itself
	TeamRows string `json:"teamRows" example:"https://example.com/api/v1/settlement-sheets/9a22e4f4-efd9-4d3c-b2a4-f8bc5f2ee50d/team-rows"` // Team rows of this sheet
	Expenses string `json:"expenses" example:"https://example.com/api/v1/settlement-sheets/9a22e4f4-efd9-4d3c-b2a4-f8bc5f2ee50d/expenses"` // Expense rows of this sheet
}

type SettlementSheet struct {
	models.DefaultModel
	SettlementSheetEditable
	Links SettlementSheetLinks `json:"links"`

	// These fields are managed by the lifecycle transitions
	State                   models.SheetState `json:"state" example:"closed"`                                                       // Lifecycle state derived from the timestamps
	ClosedAt                *time.Time        `json:"closedAt" example:"2024-03-09T21:10:00Z"`                                      // When the sheet was closed
	ResponsibleInstructorID *uuid.UUID        `json:"responsibleInstructorId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"`       // The instructor who signed the closing
	AccountedAt             *time.Time        `json:"accountedAt"`                                                                  // When the sheet was booked into accounting
	AccountedBy             string            `json:"accountedBy" example:"back-office: m.serrano" default:""`                      // Who booked the sheet
	ReopenedAt              *time.Time        `json:"reopenedAt"`                                                                   // When the sheet was last reopened
	ReopenedBy              string            `json:"reopenedBy" example:"back-office: m.serrano" default:""`                       // Who last reopened the sheet
	ActualCashCounted       decimal.Decimal   `json:"actualCashCounted" example:"1000.00"`                                          // Cash actually counted at closing
	ClosingNote             string            `json:"closingNote" example:"" default:""`                                            // Notes about the closing
	Version                 uint              `json:"version" example:"3"`                                                          // Version for optimistic concurrency, echo it back on writes
}

func newSettlementSheet(url string, model models.SettlementSheet) SettlementSheet {
	return SettlementSheet{
		DefaultModel: model.DefaultModel,
		SettlementSheetEditable: SettlementSheetEditable{
			MatchDay: model.MatchDay,
		},
		Links: SettlementSheetLinks{
			Self:     fmt.Sprintf("%s/v1/settlement-sheets/%s", url, model.ID),
			TeamRows: fmt.Sprintf("%s/v1/settlement-sheets/%s/team-rows", url, model.ID),
			Expenses: fmt.Sprintf("%s/v1/settlement-sheets/%s/expenses", url, model.ID),
		},
		State:                   model.State(),
		ClosedAt:                model.ClosedAt,
		ResponsibleInstructorID: model.ResponsibleInstructorID,
		AccountedAt:             model.AccountedAt,
		AccountedBy:             model.AccountedBy,
		ReopenedAt:              model.ReopenedAt,
		ReopenedBy:              model.ReopenedBy,
		ActualCashCounted:       model.ActualCashCounted,
		ClosingNote:             model.ClosingNote,
		Version:                 model.Version,
	}
}

// SettlementSheetDetail is the full sheet view with its rows and the totals
// computed from them.
type SettlementSheetDetail struct {
	SettlementSheet
	TeamRows []TeamRow          `json:"teamRows"` // Team rows, ordered by sequence
	Expenses []ExpenseRow       `json:"expenses"` // Expense rows, grouped by category and ordered by sequence
	Totals   models.SheetTotals `json:"totals"`   // Derived figures, computed on every read
}

type SettlementSheetListResponse struct {
	Data       []SettlementSheet `json:"data"`                                                          // List of Settlement Sheets
	Error      *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination       `json:"pagination"`                                                    // Pagination information
}

type SettlementSheetResponse struct {
	Data  *SettlementSheet `json:"data"`                                                          // Data for the Settlement Sheet
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SettlementSheetDetailResponse struct {
	Data  *SettlementSheetDetail `json:"data"`                                                          // The sheet with its rows and totals
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SettlementSheetQueryFilter struct {
	State    models.SheetState `form:"state" filterField:"false"`    // By lifecycle state
	FromDay  types.Day         `form:"fromDay" filterField:"false"`  // Only sheets on or after this match day
	UntilDay types.Day         `form:"untilDay" filterField:"false"` // Only sheets on or before this match day
	Offset   uint              `form:"offset" filterField:"false"`   // The offset of the first Settlement Sheet returned. Defaults to 0.
	Limit    int               `form:"limit" filterField:"false"`    // Maximum number of Settlement Sheets to return. Defaults to 50.
}
