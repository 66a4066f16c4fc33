package v1

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ligaoffice/backend/internal/models"
	liga_uuid "github.com/ligaoffice/backend/internal/uuid"
)

// InvoiceEditable represents all user configurable parameters
type InvoiceEditable struct {
	ProviderID  uuid.UUID               `json:"providerId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"` // ID of the provider the invoice belongs to
	Direction   models.InvoiceDirection `json:"direction" example:"payable" default:"payable"`             // Whether the invoice is paid to or collected from the provider
	Number      string                  `json:"number" example:"F-2024-0131" default:""`                   // The provider's invoice number
	IssueDate   time.Time               `json:"issueDate" example:"2024-03-01T00:00:00Z"`                  // Date the invoice was issued
	DueDate     time.Time               `json:"dueDate" example:"2024-03-31T00:00:00Z"`                    // Date the invoice is due
	TotalAmount decimal.Decimal         `json:"totalAmount" example:"480.00"`                              // Total amount of the invoice
}

func (editable InvoiceEditable) model() models.Invoice {
	return models.Invoice{
		ProviderID:  editable.ProviderID,
		Direction:   editable.Direction,
		Number:      editable.Number,
		IssueDate:   editable.IssueDate,
		DueDate:     editable.DueDate,
		TotalAmount: editable.TotalAmount,
	}
}

// InvoiceUpdateable represents the parameters that can still be changed
// after the invoice exists. Amounts and references are fixed at creation,
// the pending amount only changes through allocations.
type InvoiceUpdateable struct {
	Number    string    `json:"number" example:"F-2024-0131" default:""`  // The provider's invoice number
	IssueDate time.Time `json:"issueDate" example:"2024-03-01T00:00:00Z"` // Date the invoice was issued
	DueDate   time.Time `json:"dueDate" example:"2024-03-31T00:00:00Z"`   // Date the invoice is due
}

func (updateable InvoiceUpdateable) model() models.Invoice {
	return models.Invoice{
		Number:    updateable.Number,
		IssueDate: updateable.IssueDate,
		DueDate:   updateable.DueDate,
	}
}

type InvoiceLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/invoices/d1b7fe7e-7714-4dff-9987-9e4ecaf30787"`       // The invoice itself
	Provider string `json:"provider" example:"https://example.com/api/v1/providers/af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"` // The provider the invoice belongs to
}

type Invoice struct {
	models.DefaultModel
	InvoiceEditable
	Links InvoiceLinks `json:"links"`

	// These fields are computed
	PendingAmount decimal.Decimal `json:"pendingAmount" example:"180.00"` // Amount of the invoice that is not settled yet
	Version       uint            `json:"version" example:"3"`            // Version for optimistic concurrency, echo it back on writes
}

func newInvoice(url string, model models.Invoice) Invoice {
	return Invoice{
		DefaultModel: model.DefaultModel,
		InvoiceEditable: InvoiceEditable{
			ProviderID:  model.ProviderID,
			Direction:   model.Direction,
			Number:      model.Number,
			IssueDate:   model.IssueDate,
			DueDate:     model.DueDate,
			TotalAmount: model.TotalAmount,
		},
		Links: InvoiceLinks{
			Self:     fmt.Sprintf("%s/v1/invoices/%s", url, model.ID),
			Provider: fmt.Sprintf("%s/v1/providers/%s", url, model.ProviderID),
		},
		PendingAmount: model.PendingAmount,
		Version:       model.Version,
	}
}

type InvoiceListResponse struct {
	Data       []Invoice   `json:"data"`                                                          // List of Invoices
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type InvoiceCreateResponse struct {
	Data  []InvoiceResponse `json:"data"`                                                          // List of the created Invoices or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (i *InvoiceCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, InvoiceResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type InvoiceResponse struct {
	Data  *Invoice `json:"data"`                                                          // Data for the Invoice
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type InvoiceQueryFilter struct {
	ProviderID liga_uuid.UUID          `form:"provider"`                    // By ID of the provider
	Direction  models.InvoiceDirection `form:"direction"`                   // By direction
	Number     string                  `form:"number" filterField:"false"`  // By invoice number
	Pending    bool                    `form:"pending" filterField:"false"` // Only invoices with an outstanding balance
	Offset     uint                    `form:"offset" filterField:"false"`  // The offset of the first Invoice returned. Defaults to 0.
	Limit      int                     `form:"limit" filterField:"false"`   // Maximum number of Invoices to return. Defaults to 50.
}

func (f InvoiceQueryFilter) model() models.Invoice {
	return models.Invoice{
		ProviderID: f.ProviderID.UUID,
		Direction:  f.Direction,
	}
}
