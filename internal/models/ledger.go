package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LedgerLine is one cash movement rendered as a row of the provider's
// running balance view. Payments appear as debit, collections as credit.
type LedgerLine struct {
	MovementID uuid.UUID       `json:"movementId" example:"6b0ade85-7e96-4f14-86c2-b6a6cf8a0ee7"`
	Date       time.Time       `json:"date" example:"2024-03-09T00:00:00Z"`
	Note       string          `json:"note" example:"Referee fees week 12"`
	Debit      decimal.Decimal `json:"debit" example:"120.00"`
	Credit     decimal.Decimal `json:"credit" example:"0"`
	Balance    decimal.Decimal `json:"balance" example:"-120.00"`
}

// ProviderLedger is the full running balance view for one provider.
// Lines are in chronological order, the balance of the last line equals
// the final balance.
type ProviderLedger struct {
	Lines        []LedgerLine    `json:"lines"`
	TotalDebit   decimal.Decimal `json:"totalDebit" example:"1250.00"`
	TotalCredit  decimal.Decimal `json:"totalCredit" example:"800.00"`
	FinalBalance decimal.Decimal `json:"finalBalance" example:"-450.00"`
}

// Ledger folds all cash movements of the provider into a running balance,
// oldest first. The net amount of each movement feeds the balance, so a
// movement split between cash and check still counts once.
func (p Provider) Ledger(db *gorm.DB) (ProviderLedger, error) {
	var movements []CashMovement
	err := db.
		Where("cash_movements.provider_id = ?", p.ID).
		Order("datetime(cash_movements.origin_date) ASC, datetime(cash_movements.created_at) ASC").
		Find(&movements).Error
	if err != nil {
		return ProviderLedger{}, err
	}

	ledger := ProviderLedger{
		Lines:        make([]LedgerLine, 0, len(movements)),
		TotalDebit:   decimal.Zero,
		TotalCredit:  decimal.Zero,
		FinalBalance: decimal.Zero,
	}

	for _, movement := range movements {
		line := LedgerLine{
			MovementID: movement.ID,
			Date:       movement.OriginDate,
			Note:       movement.Note,
			Debit:      decimal.Zero,
			Credit:     decimal.Zero,
		}

		switch movement.Direction {
		case MovementPayment:
			line.Debit = movement.NetAmount
			ledger.TotalDebit = ledger.TotalDebit.Add(movement.NetAmount)
			ledger.FinalBalance = ledger.FinalBalance.Sub(movement.NetAmount)
		case MovementCollection:
			line.Credit = movement.NetAmount
			ledger.TotalCredit = ledger.TotalCredit.Add(movement.NetAmount)
			ledger.FinalBalance = ledger.FinalBalance.Add(movement.NetAmount)
		}

		line.Balance = ledger.FinalBalance
		ledger.Lines = append(ledger.Lines, line)
	}

	return ledger, nil
}

// DisplayLines returns a reversed copy of the ledger lines, newest first,
// for presentation. The stored lines stay chronological so that the running
// balances remain prefix sums.
func (l ProviderLedger) DisplayLines() []LedgerLine {
	lines := make([]LedgerLine, len(l.Lines))
	for i, line := range l.Lines {
		lines[len(l.Lines)-1-i] = line
	}

	return lines
}
