package models_test

import (
	"github.com/shopspring/decimal"

	"github.com/ligaoffice/backend/internal/models"
)

func (suite *TestSuiteStandard) TestBatchReplaceTeamRows() {
	sheet := suite.createTestSheet(models.SettlementSheet{})

	kept := suite.createTestTeamRow(models.TeamRow{
		SheetID:      sheet.ID,
		TeamName:     "Atletico Centro",
		PaidMatchday: decimal.NewFromFloat(100.00),
	})
	dropped := suite.createTestTeamRow(models.TeamRow{
		SheetID:  sheet.ID,
		TeamName: "Deportivo Sur",
	})

	working := []models.TeamRow{
		{
			DefaultModel: models.DefaultModel{ID: kept.ID},
			Sequence:     kept.Sequence,
			TeamName:     "Atletico Centro",
			PaidMatchday: decimal.NewFromFloat(150.00),
		},
		{
			TeamName:     "Racing Norte",
			PaidMatchday: decimal.NewFromFloat(200.00),
		},
	}

	err := models.ReplaceTeamRows(models.DB, sheet.ID, sheet.Version, working)
	suite.Require().NoError(err)

	_, teams, _, totals, err := models.LoadSheet(models.DB, sheet.ID)
	suite.Require().NoError(err)
	suite.Require().Len(teams, 2)

	suite.Assert().Equal(kept.ID, teams[0].ID)
	suite.Assert().True(teams[0].PaidMatchday.Equal(decimal.NewFromFloat(150.00)), "Updated row must carry the new amount")
	suite.Assert().Equal("Racing Norte", teams[1].TeamName)
	suite.Assert().Equal(uint(3), teams[1].Sequence, "Inserted row must get a fresh sequence")
	suite.Assert().True(totals.TotalIncome.Equal(decimal.NewFromFloat(350.00)))

	err = models.DB.First(&models.TeamRow{}, dropped.ID).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	// The batch bumps the sheet version
	var reloaded models.SettlementSheet
	suite.Require().NoError(models.DB.First(&reloaded, sheet.ID).Error)
	suite.Assert().Equal(sheet.Version+1, reloaded.Version)
}

func (suite *TestSuiteStandard) TestBatchReplaceTeamRowsUnchanged() {
	sheet := suite.createTestSheet(models.SettlementSheet{})
	row := suite.createTestTeamRow(models.TeamRow{
		SheetID:      sheet.ID,
		TeamName:     "Atletico Centro",
		PaidMatchday: decimal.NewFromFloat(100.00),
	})

	working := []models.TeamRow{
		{
			DefaultModel: models.DefaultModel{ID: row.ID},
			Sequence:     row.Sequence,
			TeamName:     row.TeamName,
			PaidMatchday: row.PaidMatchday,
		},
	}

	err := models.ReplaceTeamRows(models.DB, sheet.ID, sheet.Version, working)
	suite.Require().NoError(err)

	_, teams, _, _, err := models.LoadSheet(models.DB, sheet.ID)
	suite.Require().NoError(err)
	suite.Require().Len(teams, 1)
	suite.Assert().Equal(row.ID, teams[0].ID)
}

func (suite *TestSuiteStandard) TestBatchVersionConflict() {
	sheet := suite.createTestSheet(models.SettlementSheet{})

	err := models.ReplaceTeamRows(models.DB, sheet.ID, sheet.Version+1, []models.TeamRow{
		{TeamName: "Atletico Centro"},
	})
	suite.Assert().ErrorIs(err, models.ErrConflict)

	_, teams, _, _, err := models.LoadSheet(models.DB, sheet.ID)
	suite.Require().NoError(err)
	suite.Assert().Empty(teams, "A conflicting batch must not write anything")
}

func (suite *TestSuiteStandard) TestBatchClosedSheet() {
	instructor := suite.createTestProvider(models.Provider{Type: models.ProviderTypeInstructor})
	sheet := suite.createTestSheet(models.SettlementSheet{})

	err := sheet.Close(models.DB, instructor.ID, decimal.Zero, "")
	suite.Require().NoError(err)

	err = models.ReplaceTeamRows(models.DB, sheet.ID, sheet.Version, []models.TeamRow{
		{TeamName: "Atletico Centro"},
	})
	suite.Assert().ErrorIs(err, models.ErrSheetNotEditable)
}

func (suite *TestSuiteStandard) TestBatchReplaceExpenseRowsScopedToCategory() {
	sheet := suite.createTestSheet(models.SettlementSheet{})
	referee := suite.createTestProvider(models.Provider{Name: "Referee pool", Type: models.ProviderTypeReferee})

	refereeRow := suite.createTestExpenseRow(models.ExpenseRow{
		SheetID:    sheet.ID,
		Category:   models.ExpenseReferee,
		ProviderID: &referee.ID,
		UnitValue:  decimal.NewFromFloat(60.00),
	})
	sundryRow := suite.createTestExpenseRow(models.ExpenseRow{
		SheetID:     sheet.ID,
		Description: "Water",
		UnitValue:   decimal.NewFromFloat(5.00),
	})

	working := []models.ExpenseRow{
		{
			DefaultModel: models.DefaultModel{ID: refereeRow.ID},
			Sequence:     refereeRow.Sequence,
			ProviderID:   &referee.ID,
			Quantity:     decimal.NewFromInt(2),
			UnitValue:    decimal.NewFromFloat(60.00),
		},
		{
			ProviderID: &referee.ID,
			Quantity:   decimal.NewFromInt(1),
			UnitValue:  decimal.NewFromFloat(80.00),
		},
	}

	err := models.ReplaceExpenseRows(models.DB, sheet.ID, models.ExpenseReferee, sheet.Version, working)
	suite.Require().NoError(err)

	_, _, expenses, totals, err := models.LoadSheet(models.DB, sheet.ID)
	suite.Require().NoError(err)
	suite.Require().Len(expenses, 3, "Rows of other categories must be untouched")

	suite.Assert().True(totals.Expenses.Referee.Equal(decimal.NewFromFloat(200.00)))
	suite.Assert().True(totals.Expenses.Sundry.Equal(decimal.NewFromFloat(5.00)))

	var reloadedSundry models.ExpenseRow
	suite.Require().NoError(models.DB.First(&reloadedSundry, sundryRow.ID).Error)
	suite.Assert().Equal("Water", reloadedSundry.Description)
}

func (suite *TestSuiteStandard) TestBatchReplaceExpenseRowsInvalidCategory() {
	sheet := suite.createTestSheet(models.SettlementSheet{})

	err := models.ReplaceExpenseRows(models.DB, sheet.ID, "travel", sheet.Version, nil)
	suite.Assert().ErrorIs(err, models.ErrExpenseCategoryInvalid)
}

func (suite *TestSuiteStandard) TestBatchErrorReportsRow() {
	sheet := suite.createTestSheet(models.SettlementSheet{})
	_ = suite.createTestTeamRow(models.TeamRow{SheetID: sheet.ID, TeamName: "Atletico Centro"})

	// Two inserts claiming the same sequence
	working := []models.TeamRow{
		{Sequence: 7, TeamName: "Deportivo Sur"},
		{Sequence: 7, TeamName: "Racing Norte"},
	}

	err := models.ReplaceTeamRows(models.DB, sheet.ID, sheet.Version, working)
	suite.Require().Error(err)
	suite.Assert().ErrorIs(err, models.ErrSequenceNotUnique)

	var batchErr models.BatchError
	suite.Require().ErrorAs(err, &batchErr)
	suite.Assert().Equal(models.BatchInsert, batchErr.Step)
	suite.Assert().Equal(uint(7), batchErr.Sequence)

	// The whole batch is rolled back
	_, teams, _, _, err := models.LoadSheet(models.DB, sheet.ID)
	suite.Require().NoError(err)
	suite.Assert().Len(teams, 1)
}
