package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	v1 "github.com/ligaoffice/backend/internal/controllers/v1"
	"github.com/ligaoffice/backend/internal/models"
	"github.com/ligaoffice/backend/test"
)

// TestInvoiceOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestInvoiceOptions() {
	tests := []struct {
		name   string
		id     string // path at the Invoices endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Invoice with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Invoice exists", suite.createTestInvoice(v1.InvoiceEditable{}).ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("http://example.com/v1/invoices/%s", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestInvoiceCreate() {
	invoice := suite.createTestInvoice(v1.InvoiceEditable{
		Number:      "F-2024-0131",
		TotalAmount: decimal.NewFromFloat(480.00),
	})

	suite.Assert().Equal("F-2024-0131", invoice.Number)
	suite.Assert().True(invoice.PendingAmount.Equal(decimal.NewFromFloat(480.00)), "Pending amount must start at the total")
}

func (suite *TestSuiteStandard) TestInvoiceCreateErrors() {
	provider := suite.createTestProvider(v1.ProviderEditable{})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Invalid body", "definitely-not-json", http.StatusBadRequest},
		{
			"Non-positive amount",
			[]v1.InvoiceEditable{{
				ProviderID:  provider.ID,
				Direction:   models.InvoicePayable,
				DueDate:     time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
				TotalAmount: decimal.NewFromFloat(-10.00),
			}},
			http.StatusBadRequest,
		},
		{
			"Unknown provider",
			[]v1.InvoiceEditable{{
				ProviderID:  uuid.New(),
				Direction:   models.InvoicePayable,
				DueDate:     time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
				TotalAmount: decimal.NewFromFloat(100.00),
			}},
			http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/invoices", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestInvoiceCreatePartialSuccess verifies that a batch with a failing
// invoice still creates the valid ones and reports the error per entry.
func (suite *TestSuiteStandard) TestInvoiceCreatePartialSuccess() {
	provider := suite.createTestProvider(v1.ProviderEditable{})

	body := []v1.InvoiceEditable{
		{
			ProviderID:  provider.ID,
			Direction:   models.InvoicePayable,
			DueDate:     time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			TotalAmount: decimal.NewFromFloat(100.00),
		},
		{
			ProviderID:  provider.ID,
			Direction:   models.InvoicePayable,
			DueDate:     time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			TotalAmount: decimal.Zero,
		},
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/invoices", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.InvoiceCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().NotNil(response.Data[0].Data, "The valid invoice must be created")
	suite.Assert().NotNil(response.Data[1].Error, "The invalid invoice must report its error")
}

func (suite *TestSuiteStandard) TestInvoiceList() {
	provider := suite.createTestProvider(v1.ProviderEditable{})
	other := suite.createTestProvider(v1.ProviderEditable{})

	first := suite.createTestInvoice(v1.InvoiceEditable{
		ProviderID:  provider.ID,
		Number:      "F-2024-0131",
		TotalAmount: decimal.NewFromFloat(500.00),
	})
	_ = suite.createTestInvoice(v1.InvoiceEditable{
		ProviderID:  other.ID,
		Direction:   models.InvoiceReceivable,
		Number:      "R-2024-0001",
		TotalAmount: decimal.NewFromFloat(200.00),
	})

	// Settle the first invoice completely
	_ = suite.createTestCashMovement(v1.CashMovementEditable{
		ProviderID:      provider.ID,
		CashAmount:      decimal.NewFromFloat(500.00),
		AllocatedAmount: decimal.NewFromFloat(500.00),
		Allocations: []v1.AllocationEditable{
			{InvoiceID: first.ID, Amount: decimal.NewFromFloat(500.00)},
		},
	})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All", "", 2},
		{"By provider", "provider=" + provider.ID.String(), 1},
		{"By direction", "direction=receivable", 1},
		{"By number", "number=F-2024", 1},
		{"Only pending", "pending=true", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/invoices?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.InvoiceListResponse
			test.DecodeResponse(t, &r, &response)
			suite.Assert().Len(response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestInvoiceUpdate() {
	invoice := suite.createTestInvoice(v1.InvoiceEditable{Number: "F-2024-0131"})

	r := test.Request(suite.T(), http.MethodPatch, invoice.Links.Self, map[string]any{
		"number": "F-2024-0132",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InvoiceResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("F-2024-0132", response.Data.Number)
	suite.Assert().True(response.Data.TotalAmount.Equal(invoice.TotalAmount), "The total amount is fixed after creation")
}

func (suite *TestSuiteStandard) TestInvoiceDelete() {
	invoice := suite.createTestInvoice(v1.InvoiceEditable{})

	r := test.Request(suite.T(), http.MethodDelete, invoice.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

// TestInvoiceDeleteAllocated verifies that invoices with allocations cannot
// be deleted before the settling cash movements are gone.
func (suite *TestSuiteStandard) TestInvoiceDeleteAllocated() {
	invoice := suite.createTestInvoice(v1.InvoiceEditable{TotalAmount: decimal.NewFromFloat(100.00)})

	movement := suite.createTestCashMovement(v1.CashMovementEditable{
		ProviderID:      invoice.ProviderID,
		CashAmount:      decimal.NewFromFloat(40.00),
		AllocatedAmount: decimal.NewFromFloat(40.00),
		Allocations: []v1.AllocationEditable{
			{InvoiceID: invoice.ID, Amount: decimal.NewFromFloat(40.00)},
		},
	})

	r := test.Request(suite.T(), http.MethodDelete, invoice.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Deleting the movement first frees the invoice
	r = test.Request(suite.T(), http.MethodDelete, movement.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, invoice.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
