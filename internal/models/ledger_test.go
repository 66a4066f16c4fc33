package models_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ligaoffice/backend/internal/models"
)

func (suite *TestSuiteStandard) TestProviderLedgerRunningBalance() {
	provider := suite.createTestProvider(models.Provider{})

	day := func(d int) time.Time {
		return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
	}

	_ = suite.createTestCashMovement(models.CashMovement{
		ProviderID: provider.ID,
		Direction:  models.MovementPayment,
		OriginDate: day(1),
		CashAmount: decimal.NewFromFloat(120.00),
		NetAmount:  decimal.NewFromFloat(120.00),
		Note:       "Referee fees week 12",
	})
	_ = suite.createTestCashMovement(models.CashMovement{
		ProviderID:  provider.ID,
		Direction:   models.MovementCollection,
		OriginDate:  day(5),
		CheckAmount: decimal.NewFromFloat(80.00),
		NetAmount:   decimal.NewFromFloat(80.00),
	})
	_ = suite.createTestCashMovement(models.CashMovement{
		ProviderID: provider.ID,
		Direction:  models.MovementPayment,
		OriginDate: day(9),
		CashAmount: decimal.NewFromFloat(50.00),
		NetAmount:  decimal.NewFromFloat(50.00),
	})

	ledger, err := provider.Ledger(models.DB)
	suite.Require().NoError(err)
	suite.Require().Len(ledger.Lines, 3)

	// Chronological order with the balance as a running sum
	suite.Assert().True(ledger.Lines[0].Debit.Equal(decimal.NewFromFloat(120.00)))
	suite.Assert().True(ledger.Lines[0].Balance.Equal(decimal.NewFromFloat(-120.00)))
	suite.Assert().True(ledger.Lines[1].Credit.Equal(decimal.NewFromFloat(80.00)))
	suite.Assert().True(ledger.Lines[1].Balance.Equal(decimal.NewFromFloat(-40.00)))
	suite.Assert().True(ledger.Lines[2].Debit.Equal(decimal.NewFromFloat(50.00)))
	suite.Assert().True(ledger.Lines[2].Balance.Equal(decimal.NewFromFloat(-90.00)))

	suite.Assert().True(ledger.TotalDebit.Equal(decimal.NewFromFloat(170.00)))
	suite.Assert().True(ledger.TotalCredit.Equal(decimal.NewFromFloat(80.00)))
	suite.Assert().True(ledger.FinalBalance.Equal(decimal.NewFromFloat(-90.00)))
	suite.Assert().True(ledger.FinalBalance.Equal(ledger.Lines[2].Balance), "Final balance must equal the balance of the last line")

	suite.Assert().Equal("Referee fees week 12", ledger.Lines[0].Note)

	// Newest first for presentation
	display := ledger.DisplayLines()
	suite.Require().Len(display, 3)
	suite.Assert().Equal(ledger.Lines[2].MovementID, display[0].MovementID)
	suite.Assert().Equal(ledger.Lines[0].MovementID, display[2].MovementID)
}

func (suite *TestSuiteStandard) TestProviderLedgerEmpty() {
	provider := suite.createTestProvider(models.Provider{})

	ledger, err := provider.Ledger(models.DB)
	suite.Require().NoError(err)

	suite.Assert().Empty(ledger.Lines)
	suite.Assert().True(ledger.FinalBalance.IsZero())
	suite.Assert().True(ledger.TotalDebit.IsZero())
	suite.Assert().True(ledger.TotalCredit.IsZero())
}

func (suite *TestSuiteStandard) TestProviderPendingInvoicesOrder() {
	provider := suite.createTestProvider(models.Provider{})

	day := func(d int) time.Time {
		return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
	}

	later := suite.createTestInvoice(models.Invoice{
		ProviderID:  provider.ID,
		DueDate:     day(20),
		TotalAmount: decimal.NewFromFloat(100.00),
	})
	earlier := suite.createTestInvoice(models.Invoice{
		ProviderID:  provider.ID,
		DueDate:     day(10),
		TotalAmount: decimal.NewFromFloat(100.00),
	})
	settled := suite.createTestInvoice(models.Invoice{
		ProviderID:  provider.ID,
		DueDate:     day(1),
		TotalAmount: decimal.NewFromFloat(50.00),
	})

	_ = suite.createTestCashMovement(models.CashMovement{
		ProviderID:      provider.ID,
		CashAmount:      decimal.NewFromFloat(50.00),
		NetAmount:       decimal.NewFromFloat(50.00),
		AllocatedAmount: decimal.NewFromFloat(50.00),
		Allocations: []models.Allocation{
			{InvoiceID: settled.ID, Amount: decimal.NewFromFloat(50.00)},
		},
	})

	pending, err := provider.PendingInvoices(models.DB, "")
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2, "Fully settled invoices must not be pending")

	suite.Assert().Equal(earlier.ID, pending[0].ID, "Oldest obligation must come first")
	suite.Assert().Equal(later.ID, pending[1].ID)
}
