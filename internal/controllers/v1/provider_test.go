package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	v1 "github.com/ligaoffice/backend/internal/controllers/v1"
	"github.com/ligaoffice/backend/internal/models"
	"github.com/ligaoffice/backend/test"
)

// TestProviderOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestProviderOptions() {
	tests := []struct {
		name   string
		id     string // path at the Providers endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Provider with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Provider exists", suite.createTestProvider(v1.ProviderEditable{}).ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("http://example.com/v1/providers/%s", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				suite.Assert().Equal("GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestProviderGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestProviderGetSingle() {
	p := suite.createTestProvider(v1.ProviderEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Provider", p.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No Provider with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"DELETE No Provider with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
		{"DELETE Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/providers/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestProviderCreate() {
	provider := suite.createTestProvider(v1.ProviderEditable{
		Name: "Colegio de Arbitros",
		Type: models.ProviderTypeReferee,
		Note: "Invoices monthly",
	})

	suite.Assert().Equal("Colegio de Arbitros", provider.Name)
	suite.Assert().Equal(models.ProviderTypeReferee, provider.Type)
	suite.Assert().Contains(provider.Links.Self, fmt.Sprintf("/v1/providers/%s", provider.ID))
	suite.Assert().Contains(provider.Links.Ledger, "/ledger")
}

func (suite *TestSuiteStandard) TestProviderCreateInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/providers", "definitely-not-json")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestProviderList() {
	_ = suite.createTestProvider(v1.ProviderEditable{Name: "Colegio de Arbitros", Type: models.ProviderTypeReferee})
	_ = suite.createTestProvider(v1.ProviderEditable{Name: "Polideportivo Norte", Type: models.ProviderTypeVenue})
	_ = suite.createTestProvider(v1.ProviderEditable{Name: "Ambulancias del Sur", Type: models.ProviderTypeMedic})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All", "", 3},
		{"By type", "type=venue", 1},
		{"By name", "name=Colegio", 1},
		{"Search", "search=sur", 1},
		{"No match", "name=doesnotexist", 0},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/providers?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ProviderListResponse
			test.DecodeResponse(t, &r, &response)
			suite.Assert().Len(response.Data, tt.count)
			suite.Assert().Equal(tt.count, response.Pagination.Count)
		})
	}
}

func (suite *TestSuiteStandard) TestProviderUpdate() {
	provider := suite.createTestProvider(v1.ProviderEditable{Name: "Colegio de Arbitros"})

	r := test.Request(suite.T(), http.MethodPatch, provider.Links.Self, map[string]any{
		"note": "Prefers checks",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProviderResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Prefers checks", response.Data.Note)
	suite.Assert().Equal("Colegio de Arbitros", response.Data.Name, "Fields not in the request body must not change")
}

func (suite *TestSuiteStandard) TestProviderDelete() {
	provider := suite.createTestProvider(v1.ProviderEditable{})

	r := test.Request(suite.T(), http.MethodDelete, provider.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, provider.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestProviderPendingInvoices() {
	provider := suite.createTestProvider(v1.ProviderEditable{})

	open := suite.createTestInvoice(v1.InvoiceEditable{
		ProviderID:  provider.ID,
		TotalAmount: decimal.NewFromFloat(480.00),
	})
	settled := suite.createTestInvoice(v1.InvoiceEditable{
		ProviderID:  provider.ID,
		TotalAmount: decimal.NewFromFloat(50.00),
	})

	_ = suite.createTestCashMovement(v1.CashMovementEditable{
		ProviderID:      provider.ID,
		CashAmount:      decimal.NewFromFloat(50.00),
		AllocatedAmount: decimal.NewFromFloat(50.00),
		Allocations: []v1.AllocationEditable{
			{InvoiceID: settled.ID, Amount: decimal.NewFromFloat(50.00)},
		},
	})

	r := test.Request(suite.T(), http.MethodGet, provider.Links.PendingInvoices, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PendingInvoicesResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(open.ID, response.Data[0].ID)
	suite.Assert().True(response.Data[0].PendingAmount.Equal(decimal.NewFromFloat(480.00)))
}

func (suite *TestSuiteStandard) TestProviderLedgerEndpoint() {
	provider := suite.createTestProvider(v1.ProviderEditable{})

	_ = suite.createTestCashMovement(v1.CashMovementEditable{
		ProviderID: provider.ID,
		Direction:  models.MovementPayment,
		CashAmount: decimal.NewFromFloat(120.00),
	})
	_ = suite.createTestCashMovement(v1.CashMovementEditable{
		ProviderID:  provider.ID,
		Direction:   models.MovementCollection,
		CheckAmount: decimal.NewFromFloat(80.00),
	})

	r := test.Request(suite.T(), http.MethodGet, provider.Links.Ledger, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LedgerResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data.Lines, 2)
	suite.Assert().True(response.Data.TotalDebit.Equal(decimal.NewFromFloat(120.00)))
	suite.Assert().True(response.Data.TotalCredit.Equal(decimal.NewFromFloat(80.00)))
	suite.Assert().True(response.Data.FinalBalance.Equal(decimal.NewFromFloat(-40.00)))

	// The display lines are the same lines, newest first
	suite.Require().Len(response.Data.DisplayLines, 2)
	suite.Assert().Equal(response.Data.Lines[1].MovementID, response.Data.DisplayLines[0].MovementID)
	suite.Assert().Equal(response.Data.Lines[0].MovementID, response.Data.DisplayLines[1].MovementID)
	suite.Assert().True(response.Data.DisplayLines[0].Balance.Equal(decimal.NewFromFloat(-40.00)), "Reversing for display must not recompute the balances")
}
