package v1

import (
	"fmt"

	"github.com/ligaoffice/backend/internal/models"
)

// ProviderEditable represents all user configurable parameters
type ProviderEditable struct {
	Name string              `json:"name" example:"Colegio de Arbitros" default:""`      // Name of the provider
	Type models.ProviderType `json:"type" example:"referee"`                             // Role the provider can fill on a settlement sheet
	Note string              `json:"note" example:"Invoices monthly, net 30" default:""` // Notes about the provider
}

func (editable ProviderEditable) model() models.Provider {
	return models.Provider{
		Name: editable.Name,
		Type: editable.Type,
		Note: editable.Note,
	}
}

type ProviderLinks struct {
	Self            string `json:"self" example:"https://example.com/api/v1/providers/af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"`                              // The provider itself
	PendingInvoices string `json:"pendingInvoices" example:"https://example.com/api/v1/providers/af892e10-7e0a-4fb8-b1bc-4b6d88401ed9/pending-invoices"` // Pending invoices of this provider
	Ledger          string `json:"ledger" example:"https://example.com/api/v1/providers/af892e10-7e0a-4fb8-b1bc-4b6d88401ed9/ledger"`                    // Running balance view for this provider
}

type Provider struct {
	models.DefaultModel
	ProviderEditable
	Links ProviderLinks `json:"links"`
}

func newProvider(url string, model models.Provider) Provider {
	return Provider{
		DefaultModel: model.DefaultModel,
		ProviderEditable: ProviderEditable{
			Name: model.Name,
			Type: model.Type,
			Note: model.Note,
		},
		Links: ProviderLinks{
			Self:            fmt.Sprintf("%s/v1/providers/%s", url, model.ID),
			PendingInvoices: fmt.Sprintf("%s/v1/providers/%s/pending-invoices", url, model.ID),
			Ledger:          fmt.Sprintf("%s/v1/providers/%s/ledger", url, model.ID),
		},
	}
}

type ProviderListResponse struct {
	Data       []Provider  `json:"data"`                                                          // List of Providers
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ProviderCreateResponse struct {
	Data  []ProviderResponse `json:"data"`                                                          // List of the created Providers or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (p *ProviderCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, ProviderResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ProviderResponse struct {
	Data  *Provider `json:"data"`                                                          // Data for the Provider
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ProviderQueryFilter struct {
	Name   string              `form:"name" filterField:"false"`   // By name
	Type   models.ProviderType `form:"type"`                       // By provider type
	Note   string              `form:"note" filterField:"false"`   // By note
	Search string              `form:"search" filterField:"false"` // By string in name or note
	Offset uint                `form:"offset" filterField:"false"` // The offset of the first Provider returned. Defaults to 0.
	Limit  int                 `form:"limit" filterField:"false"`  // Maximum number of Providers to return. Defaults to 50.
}

func (f ProviderQueryFilter) model() models.Provider {
	return models.Provider{
		Type: f.Type,
	}
}

type PendingInvoicesResponse struct {
	Data  []Invoice `json:"data"`                                                          // Pending invoices, oldest obligation first
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// Ledger is the running balance view of a provider. The lines are in
// chronological order, the display lines are the same lines reversed for
// presentation, newest first.
type Ledger struct {
	models.ProviderLedger
	DisplayLines []models.LedgerLine `json:"displayLines"` // Lines in presentation order, newest first
}

func newLedger(model models.ProviderLedger) Ledger {
	return Ledger{
		ProviderLedger: model,
		DisplayLines:   model.DisplayLines(),
	}
}

type LedgerResponse struct {
	Data  *Ledger `json:"data"`                                                          // The provider's running balance view
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
