package models

import (
	"time"
)

const (
	EntryDebit  = "DEBIT"
	EntryCredit = "CREDIT"
)

type LedgerEntry struct {
	ID           int64     `json:"id" db:"id"`
	BookingRef   string    `json:"bookingRef" db:"booking_ref"`
	UserID       int64     `json:"userId" db:"user_id"`
	EntryType    string    `json:"entryType" db:"entry_type"` // DEBIT or CREDIT
	Amount       int64     `json:"amount" db:"amount"`        // negative for DEBIT
	BalanceAfter int64     `json:"balanceAfter" db:"balance_after"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
