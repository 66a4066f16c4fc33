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

func (suite *TestSuiteStandard) TestTeamRowOptions() {
	sheet := suite.createTestSheet(v1.SettlementSheetEditable{})
	row := suite.createTestTeamRow(sheet.ID, v1.TeamRowEditable{})

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"Collection", fmt.Sprintf("%s/team-rows", sheet.Links.Self), http.StatusNoContent, "GET, POST, PUT"},
		{"Row", fmt.Sprintf("%s/team-rows/%d", sheet.Links.Self, row.Sequence), http.StatusNoContent, "PATCH, DELETE"},
		{"No row with this sequence", fmt.Sprintf("%s/team-rows/42", sheet.Links.Self), http.StatusNotFound, ""},
		{"Unknown sheet", fmt.Sprintf("http://example.com/v1/settlement-sheets/%s/team-rows", uuid.New()), http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.allow != "" {
				suite.Assert().Equal(tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTeamRowCreate() {
	sheet := suite.createTestSheet(v1.SettlementSheetEditable{})

	first := suite.createTestTeamRow(sheet.ID, v1.TeamRowEditable{
		TeamName:     "Atletico Centro",
		TotalToPay:   decimal.NewFromFloat(250.00),
		PaidMatchday: decimal.NewFromFloat(200.00),
	})
	second := suite.createTestTeamRow(sheet.ID, v1.TeamRowEditable{TeamName: "Deportivo Sur"})

	suite.Assert().Equal(uint(1), first.Sequence, "The first row must get sequence 1")
	suite.Assert().Equal(uint(2), second.Sequence)
	suite.Assert().True(first.PaidTotal.Equal(decimal.NewFromFloat(200.00)))
	suite.Assert().True(first.Debt.Equal(decimal.NewFromFloat(50.00)))
}

func (suite *TestSuiteStandard) TestTeamRowUpdateDelete() {
	sheet := suite.createTestSheet(v1.SettlementSheetEditable{})
	row := suite.createTestTeamRow(sheet.ID, v1.TeamRowEditable{TeamName: "Atletico Centro"})

	path := fmt.Sprintf("%s/team-rows/%d", sheet.Links.Self, row.Sequence)

	r := test.Request(suite.T(), http.MethodPatch, path, map[string]any{
		"paidMatchday": "250.00",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TeamRowResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Atletico Centro", response.Data.TeamName, "Fields not in the request body must not change")

	r = test.Request(suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestTeamRowsFrozenWhenClosed verifies that row writes are rejected once
// the sheet is closed.
func (suite *TestSuiteStandard) TestTeamRowsFrozenWhenClosed() {
	sheet := suite.createTestSheet(v1.SettlementSheetEditable{})
	row := suite.createTestTeamRow(sheet.ID, v1.TeamRowEditable{})
	instructor := suite.createTestInstructor()

	r := test.Request(suite.T(), http.MethodPost, sheet.Links.Self+"/close", v1.SheetCloseRequest{
		ResponsibleInstructorID: instructor.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	_ = suite.createTestTeamRow(sheet.ID, v1.TeamRowEditable{TeamName: "Late entry"}, http.StatusBadRequest)

	path := fmt.Sprintf("%s/team-rows/%d", sheet.Links.Self, row.Sequence)
	r = test.Request(suite.T(), http.MethodPatch, path, map[string]any{"absent": true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Reading still works
	r = test.Request(suite.T(), http.MethodGet, sheet.Links.Self+"/team-rows", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

// TestTeamRowBatchReplace verifies the working set replacement: an update,
// an insert and an implicit delete in one request.
func (suite *TestSuiteStandard) TestTeamRowBatchReplace() {
	sheet := suite.createTestSheet(v1.SettlementSheetEditable{})

	kept := suite.createTestTeamRow(sheet.ID, v1.TeamRowEditable{
		TeamName:     "Atletico Centro",
		PaidMatchday: decimal.NewFromFloat(100.00),
	})
	_ = suite.createTestTeamRow(sheet.ID, v1.TeamRowEditable{TeamName: "Deportivo Sur"})

	request := v1.TeamRowBatchRequest{
		// Creating two rows does not change the sheet version
		Version: sheet.Version,
		Rows: []v1.BatchTeamRow{
			{
				ID: kept.ID,
				TeamRowEditable: v1.TeamRowEditable{
					Sequence:     kept.Sequence,
					TeamName:     "Atletico Centro",
					PaidMatchday: decimal.NewFromFloat(150.00),
				},
			},
			{
				TeamRowEditable: v1.TeamRowEditable{
					TeamName:     "Racing Norte",
					PaidMatchday: decimal.NewFromFloat(200.00),
				},
			},
		},
	}

	r := test.Request(suite.T(), http.MethodPut, sheet.Links.Self+"/team-rows", request)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TeamRowListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(kept.ID, response.Data[0].ID)
	suite.Assert().True(response.Data[0].PaidTotal.Equal(decimal.NewFromFloat(150.00)))
	suite.Assert().Equal("Racing Norte", response.Data[1].TeamName)

	// Replaying the same request carries a stale version now
	r = test.Request(suite.T(), http.MethodPut, sheet.Links.Self+"/team-rows", request)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestExpenseRowOptions() {
	sheet := suite.createTestSheet(v1.SettlementSheetEditable{})
	row := suite.createTestExpenseRow(sheet.ID, models.ExpenseSundry, v1.ExpenseRowEditable{Description: "Water"})

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"All expenses", fmt.Sprintf("%s/expenses", sheet.Links.Self), http.StatusNoContent, "GET"},
		{"Category", fmt.Sprintf("%s/expenses/sundry", sheet.Links.Self), http.StatusNoContent, "GET, POST, PUT"},
		{"Invalid category", fmt.Sprintf("%s/expenses/travel", sheet.Links.Self), http.StatusBadRequest, ""},
		{"Row", fmt.Sprintf("%s/expenses/sundry/%d", sheet.Links.Self, row.Sequence), http.StatusNoContent, "PATCH, DELETE"},
		{"No row with this sequence", fmt.Sprintf("%s/expenses/sundry/42", sheet.Links.Self), http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.allow != "" {
				suite.Assert().Equal(tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

// TestExpenseRowProviderRole verifies that restricted categories only accept
// providers of the matching type.
func (suite *TestSuiteStandard) TestExpenseRowProviderRole() {
	sheet := suite.createTestSheet(v1.SettlementSheetEditable{})
	supplier := suite.createTestProvider(v1.ProviderEditable{})

	_ = suite.createTestExpenseRow(sheet.ID, models.ExpenseReferee, v1.ExpenseRowEditable{
		ProviderID: &supplier.ID,
		UnitValue:  decimal.NewFromFloat(60.00),
	}, http.StatusBadRequest)

	// Sundry rows accept providers of any type
	row := suite.createTestExpenseRow(sheet.ID, models.ExpenseSundry, v1.ExpenseRowEditable{
		ProviderID:  &supplier.ID,
		Description: "Cones",
		UnitValue:   decimal.NewFromFloat(15.00),
	})
	suite.Assert().Equal(models.ExpenseSundry, row.Category)
	suite.Assert().True(row.LineTotal.Equal(decimal.NewFromFloat(15.00)))
}

// TestExpenseRowsPerCategory verifies that sequences and listings are scoped
// to the category.
func (suite *TestSuiteStandard) TestExpenseRowsPerCategory() {
	sheet := suite.createTestSheet(v1.SettlementSheetEditable{})
	referee := suite.createTestProvider(v1.ProviderEditable{Type: models.ProviderTypeReferee})

	refereeRow := suite.createTestExpenseRow(sheet.ID, models.ExpenseReferee, v1.ExpenseRowEditable{
		ProviderID: &referee.ID,
		UnitValue:  decimal.NewFromFloat(60.00),
	})
	sundryRow := suite.createTestExpenseRow(sheet.ID, models.ExpenseSundry, v1.ExpenseRowEditable{
		Description: "Water",
		UnitValue:   decimal.NewFromFloat(5.00),
	})

	suite.Assert().Equal(uint(1), refereeRow.Sequence)
	suite.Assert().Equal(uint(1), sundryRow.Sequence, "Sequences run per category")

	r := test.Request(suite.T(), http.MethodGet, sheet.Links.Self+"/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	var all v1.ExpenseRowListResponse
	test.DecodeResponse(suite.T(), &r, &all)
	suite.Assert().Len(all.Data, 2)

	r = test.Request(suite.T(), http.MethodGet, sheet.Links.Self+"/expenses/referee", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	var byCategory v1.ExpenseRowListResponse
	test.DecodeResponse(suite.T(), &r, &byCategory)
	suite.Require().Len(byCategory.Data, 1)
	suite.Assert().Equal(refereeRow.ID, byCategory.Data[0].ID)
}

// TestExpenseRowBatchReplace verifies that a category replacement leaves the
// other categories untouched.
func (suite *TestSuiteStandard) TestExpenseRowBatchReplace() {
	sheet := suite.createTestSheet(v1.SettlementSheetEditable{})
	referee := suite.createTestProvider(v1.ProviderEditable{Type: models.ProviderTypeReferee})

	refereeRow := suite.createTestExpenseRow(sheet.ID, models.ExpenseReferee, v1.ExpenseRowEditable{
		ProviderID: &referee.ID,
		UnitValue:  decimal.NewFromFloat(60.00),
	})
	_ = suite.createTestExpenseRow(sheet.ID, models.ExpenseSundry, v1.ExpenseRowEditable{
		Description: "Water",
		UnitValue:   decimal.NewFromFloat(5.00),
	})

	request := v1.ExpenseRowBatchRequest{
		Version: sheet.Version,
		Rows: []v1.BatchExpenseRow{
			{
				ID: refereeRow.ID,
				ExpenseRowEditable: v1.ExpenseRowEditable{
					Sequence:   refereeRow.Sequence,
					ProviderID: &referee.ID,
					Quantity:   decimal.NewFromInt(2),
					UnitValue:  decimal.NewFromFloat(60.00),
				},
			},
			{
				ExpenseRowEditable: v1.ExpenseRowEditable{
					ProviderID: &referee.ID,
					Quantity:   decimal.NewFromInt(1),
					UnitValue:  decimal.NewFromFloat(80.00),
				},
			},
		},
	}

	r := test.Request(suite.T(), http.MethodPut, sheet.Links.Self+"/expenses/referee", request)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseRowListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2, "Only the referee category is replaced")
	suite.Assert().True(response.Data[0].LineTotal.Equal(decimal.NewFromFloat(120.00)))
	suite.Assert().True(response.Data[1].LineTotal.Equal(decimal.NewFromFloat(80.00)))

	// The sundry row is untouched
	r = test.Request(suite.T(), http.MethodGet, sheet.Links.Self+"/expenses/sundry", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	var sundry v1.ExpenseRowListResponse
	test.DecodeResponse(suite.T(), &r, &sundry)
	suite.Require().Len(sundry.Data, 1)
	suite.Assert().Equal("Water", sundry.Data[0].Description)
}

func (suite *TestSuiteStandard) TestExpenseRowInvalidCategory() {
	sheet := suite.createTestSheet(v1.SettlementSheetEditable{})

	r := test.Request(suite.T(), http.MethodGet, sheet.Links.Self+"/expenses/travel", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	_ = suite.createTestExpenseRow(sheet.ID, "travel", v1.ExpenseRowEditable{Description: "Bus"}, http.StatusBadRequest)
}
