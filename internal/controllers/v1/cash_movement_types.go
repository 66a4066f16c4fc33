package v1

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ligaoffice/backend/internal/models"
	liga_uuid "github.com/ligaoffice/backend/internal/uuid"
)

// AllocationEditable is one invoice settlement within a cash movement.
type AllocationEditable struct {
	InvoiceID uuid.UUID       `json:"invoiceId" example:"d1b7fe7e-7714-4dff-9987-9e4ecaf30787"` // ID of the invoice being settled
	Amount    decimal.Decimal `json:"amount" example:"300.00"`                                  // Amount of the invoice settled by this movement
}

// CashMovementEditable represents all user configurable parameters
type CashMovementEditable struct {
	ProviderID      uuid.UUID                `json:"providerId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"` // ID of the provider the movement settles invoices for
	Direction       models.MovementDirection `json:"direction" example:"payment" default:"payment"`             // Whether cash flows out (payment) or in (collection)
	OriginDate      time.Time                `json:"originDate" example:"2024-03-09T00:00:00Z"`                 // Date the movement happened
	DueDate         time.Time                `json:"dueDate" example:"2024-03-09T00:00:00Z"`                    // Value date of the movement
	CashAmount      decimal.Decimal          `json:"cashAmount" example:"500.00"`                               // Part of the movement settled in cash
	CheckAmount     decimal.Decimal          `json:"checkAmount" example:"300.00"`                              // Part of the movement settled by check
	NetAmount       decimal.Decimal          `json:"netAmount" example:"800.00"`                                // Net value of the movement, defaults to cash plus check when zero
	AllocatedAmount decimal.Decimal          `json:"allocatedAmount" example:"800.00"`                          // Declared sum of the allocations, must match exactly
	Note            string                   `json:"note" example:"Referee fees week 12" default:""`            // Notes about the movement
	Allocations     []AllocationEditable     `json:"allocations"`                                               // The invoices settled by this movement
}

func (editable CashMovementEditable) model() models.CashMovement {
	allocations := make([]models.Allocation, 0, len(editable.Allocations))
	for _, allocation := range editable.Allocations {
		allocations = append(allocations, models.Allocation{
			InvoiceID: allocation.InvoiceID,
			Amount:    allocation.Amount,
		})
	}

	// A declared net amount is taken as is, it is independent of the
	// allocations
	net := editable.NetAmount
	if net.IsZero() {
		net = editable.CashAmount.Add(editable.CheckAmount)
	}

	return models.CashMovement{
		ProviderID:      editable.ProviderID,
		Direction:       editable.Direction,
		OriginDate:      editable.OriginDate,
		DueDate:         editable.DueDate,
		CashAmount:      editable.CashAmount,
		CheckAmount:     editable.CheckAmount,
		NetAmount:       net,
		AllocatedAmount: editable.AllocatedAmount,
		Note:            editable.Note,
		Allocations:     allocations,
	}
}

type CashMovementLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/cash-movements/6b0ade85-7e96-4f14-86c2-b6a6cf8a0ee7"` // The cash movement itself
	Provider string `json:"provider" example:"https://example.com/api/v1/providers/af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"` // The provider the movement belongs to
}

type CashMovement struct {
	models.DefaultModel
	CashMovementEditable
	Links CashMovementLinks `json:"links"`
}

func newCashMovement(url string, model models.CashMovement) CashMovement {
	allocations := make([]AllocationEditable, 0, len(model.Allocations))
	for _, allocation := range model.Allocations {
		allocations = append(allocations, AllocationEditable{
			InvoiceID: allocation.InvoiceID,
			Amount:    allocation.Amount,
		})
	}

	return CashMovement{
		DefaultModel: model.DefaultModel,
		CashMovementEditable: CashMovementEditable{
			ProviderID:      model.ProviderID,
			Direction:       model.Direction,
			OriginDate:      model.OriginDate,
			DueDate:         model.DueDate,
			CashAmount:      model.CashAmount,
			CheckAmount:     model.CheckAmount,
			NetAmount:       model.NetAmount,
			AllocatedAmount: model.AllocatedAmount,
			Note:            model.Note,
			Allocations:     allocations,
		},
		Links: CashMovementLinks{
			Self:     fmt.Sprintf("%s/v1/cash-movements/%s", url, model.ID),
			Provider: fmt.Sprintf("%s/v1/providers/%s", url, model.ProviderID),
		},
	}
}

type CashMovementListResponse struct {
	Data       []CashMovement `json:"data"`                                                          // List of Cash Movements
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type CashMovementCreateResponse struct {
	Data  []CashMovementResponse `json:"data"`                                                          // List of the created Cash Movements or their respective error
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (m *CashMovementCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	m.Data = append(m.Data, CashMovementResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CashMovementResponse struct {
	Data  *CashMovement `json:"data"`                                                          // Data for the Cash Movement
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CashMovementQueryFilter struct {
	ProviderID liga_uuid.UUID           `form:"provider"`                                               // By ID of the provider
	Direction  models.MovementDirection `form:"direction"`                                              // By direction
	Note       string                   `form:"note" filterField:"false"`                               // By note
	FromDate   time.Time                `form:"fromDate" filterField:"false" time_format:"2006-01-02"`  // Only movements on or after this date
	UntilDate  time.Time                `form:"untilDate" filterField:"false" time_format:"2006-01-02"` // Only movements on or before this date
	Offset     uint                     `form:"offset" filterField:"false"`                             // The offset of the first Cash Movement returned. Defaults to 0.
	Limit      int                      `form:"limit" filterField:"false"`                              // Maximum number of Cash Movements to return. Defaults to 50.
}

func (f CashMovementQueryFilter) model() models.CashMovement {
	return models.CashMovement{
		ProviderID: f.ProviderID.UUID,
		Direction:  f.Direction,
	}
}
