package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ligaoffice/backend/internal/types"
)

// SheetState is the lifecycle state of a settlement sheet.
//
// swagger:enum SheetState
type SheetState string

const (
	SheetOpen      SheetState = "open"
	SheetClosed    SheetState = "closed"
	SheetAccounted SheetState = "accounted"
)

// SettlementSheet is the cash reconciliation document for one match day.
// There is at most one sheet per match day. Rows can only be changed while
// the sheet is open, closing freezes it and accounting marks it as booked.
type SettlementSheet struct {
	DefaultModel
	MatchDay                types.Day `gorm:"uniqueIndex"`
	ClosedAt                *time.Time
	ResponsibleInstructorID *uuid.UUID
	ResponsibleInstructor   *Provider `json:"-"`
	AccountedAt             *time.Time
	AccountedBy             string
	ReopenedAt              *time.Time
	ReopenedBy              string
	ActualCashCounted       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ClosingNote             string
	Version                 uint
}

// BeforeSave trims whitespace from all strings
func (s *SettlementSheet) BeforeSave(_ *gorm.DB) error {
	s.AccountedBy = strings.TrimSpace(s.AccountedBy)
	s.ReopenedBy = strings.TrimSpace(s.ReopenedBy)
	s.ClosingNote = strings.TrimSpace(s.ClosingNote)

	return nil
}

// State derives the lifecycle state from the sheet's timestamps.
func (s SettlementSheet) State() SheetState {
	if s.AccountedAt != nil {
		return SheetAccounted
	}

	if s.ClosedAt != nil {
		return SheetClosed
	}

	return SheetOpen
}

// Editable reports whether the sheet's rows may still be changed.
// Only open sheets are editable.
func (s SettlementSheet) Editable() bool {
	return s.ClosedAt == nil
}

// Close freezes the sheet. A responsible instructor is mandatory and must
// be a provider of the instructor type. Closing an already closed sheet
// fails, closing does not touch the sheet's rows.
func (s *SettlementSheet) Close(db *gorm.DB, instructorID uuid.UUID, cashCounted decimal.Decimal, note string) error {
	if s.ClosedAt != nil {
		return ErrSheetAlreadyClosed
	}

	if instructorID == uuid.Nil {
		return ErrMissingResponsible
	}

	var instructor Provider
	err := db.First(&instructor, instructorID).Error
	if err != nil {
		return err
	}

	if instructor.Type != ProviderTypeInstructor {
		return ErrProviderRole
	}

	now := time.Now().In(time.UTC)
	s.ClosedAt = &now
	s.ResponsibleInstructorID = &instructorID
	s.ActualCashCounted = cashCounted
	s.ClosingNote = note

	return s.save(db)
}

// Account marks a closed sheet as booked into the accounting system. The
// sheet must be closed first and the booking actor is mandatory.
func (s *SettlementSheet) Account(db *gorm.DB, actor string) error {
	if s.AccountedAt != nil {
		return ErrSheetAlreadyAccounted
	}

	if s.ClosedAt == nil {
		return ErrSheetNotClosed
	}

	if strings.TrimSpace(actor) == "" {
		return ErrMissingResponsible
	}

	now := time.Now().In(time.UTC)
	s.AccountedAt = &now
	s.AccountedBy = actor

	return s.save(db)
}

// Reopen puts a closed or accounted sheet back into the open state so its
// rows can be corrected. The actor is mandatory and the reopening is logged
// since it undoes a confirmed document. Reopening a sheet that is already
// open is a no-op and records nothing.
func (s *SettlementSheet) Reopen(db *gorm.DB, actor string) error {
	if s.ClosedAt == nil {
		return nil
	}

	if strings.TrimSpace(actor) == "" {
		return ErrMissingResponsible
	}

	log.Info().
		Str("sheet", s.ID.String()).
		Str("matchDay", s.MatchDay.String()).
		Str("state", string(s.State())).
		Str("actor", actor).
		Msg("settlement sheet reopened")

	now := time.Now().In(time.UTC)
	s.ClosedAt = nil
	s.ResponsibleInstructorID = nil
	s.AccountedAt = nil
	s.AccountedBy = ""
	s.ReopenedAt = &now
	s.ReopenedBy = actor

	return s.save(db)
}

// SetClosingDetails updates the counted cash and the closing note. Unlike
// the rows, these stay editable in every state, including accounted, so a
// discrepancy found during review can still be annotated.
func (s *SettlementSheet) SetClosingDetails(db *gorm.DB, cashCounted decimal.Decimal, note string) error {
	s.ActualCashCounted = cashCounted
	s.ClosingNote = note

	return s.save(db)
}

// DeleteSettlementSheet deletes an open sheet together with its rows.
// Closed and accounted sheets cannot be deleted, they have to be reopened
// first.
func DeleteSettlementSheet(db *gorm.DB, id uuid.UUID) error {
	var sheet SettlementSheet
	err := db.First(&sheet, id).Error
	if err != nil {
		return err
	}

	if !sheet.Editable() {
		return ErrSheetNotEditable
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var teams []TeamRow
		err := tx.Where("team_rows.sheet_id = ?", id).Find(&teams).Error
		if err != nil {
			return err
		}

		for _, row := range teams {
			if err := tx.Delete(&row).Error; err != nil {
				return err
			}
		}

		var expenses []ExpenseRow
		err = tx.Where("expense_rows.sheet_id = ?", id).Find(&expenses).Error
		if err != nil {
			return err
		}

		for _, row := range expenses {
			if err := tx.Delete(&row).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&sheet).Error
	})
}

// save persists the whole sheet with an optimistic version check. A write
// carrying a stale version fails with ErrConflict and leaves the stored
// sheet untouched.
func (s *SettlementSheet) save(db *gorm.DB) error {
	version := s.Version
	s.Version++

	res := db.Model(&SettlementSheet{}).
		Where("id = ? AND version = ?", s.ID, version).
		Select("*").
		Omit("id", "created_at").
		Updates(s)
	if res.Error != nil {
		s.Version = version
		return res.Error
	}

	if res.RowsAffected == 0 {
		s.Version = version
		return ErrConflict
	}

	return nil
}
