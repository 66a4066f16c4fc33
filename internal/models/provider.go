package models

import (
	"strings"

	"gorm.io/gorm"
)

// ProviderType classifies which role a provider may fill on a
// settlement sheet.
//
// swagger:enum ProviderType
type ProviderType string

const (
	ProviderTypeSupplier   ProviderType = "supplier"
	ProviderTypeReferee    ProviderType = "referee"
	ProviderTypeVenue      ProviderType = "venue"
	ProviderTypeInstructor ProviderType = "instructor"
	ProviderTypeMedic      ProviderType = "medic"
)

// Provider is a counterparty of the league: a supplier, referee, venue,
// instructor or medic. Providers are managed outside the settlement core
// and only referenced here, never mutated.
type Provider struct {
	DefaultModel
	Name string
	Type ProviderType
	Note string
}

// BeforeSave trims whitespace from all strings
func (p *Provider) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Note = strings.TrimSpace(p.Note)

	return nil
}

// PendingInvoices returns the provider's invoices with an outstanding
// balance, oldest obligation first. This is the suggested allocation order,
// callers may still settle invoices in any order they choose.
//
// An empty direction returns pending invoices of both directions.
func (p Provider) PendingInvoices(db *gorm.DB, direction InvoiceDirection) ([]Invoice, error) {
	invoices := make([]Invoice, 0)

	q := db.
		Where("invoices.provider_id = ?", p.ID).
		Where("invoices.pending_amount > 0").
		Order("datetime(invoices.due_date) ASC, datetime(invoices.created_at) ASC")

	if direction != "" {
		q = q.Where("invoices.direction = ?", direction)
	}

	err := q.Find(&invoices).Error
	if err != nil {
		return []Invoice{}, err
	}

	return invoices, nil
}
