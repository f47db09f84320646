package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/closetshare/backend/internal/models"
	"github.com/closetshare/backend/internal/store"
)

// Transfer is the outcome of a credit movement inside a rental transaction.
type Transfer struct {
	BookingRef       string
	FromUserID       int64
	ToUserID         int64
	Amount           int64
	FromBalanceAfter int64
	ToBalanceAfter   int64
}

// CreditLedger moves credits between users as double entries.
type CreditLedger struct {
	now func() time.Time
}

func NewCreditLedger() *CreditLedger {
	return &CreditLedger{now: time.Now}
}

// TransferTx debits fromUserID and credits toUserID by amount within tx,
// writing one DEBIT and one CREDIT entry. Balance rows are locked in
// ascending id order so crossing transfers cannot deadlock.
func (l *CreditLedger) TransferTx(ctx context.Context, tx store.Tx, fromUserID, toUserID int64, bookingRef string, amount int64) (*Transfer, error) {
	firstLock, secondLock := fromUserID, toUserID
	if firstLock > secondLock {
		firstLock, secondLock = secondLock, firstLock
	}

	balances := make(map[int64]int64, 2)
	for _, userID := range []int64{firstLock, secondLock} {
		if _, locked := balances[userID]; locked {
			continue
		}
		balance, err := tx.LockUserBalance(ctx, userID)
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrUserNotFound, userID)
		}
		if err != nil {
			return nil, err
		}
		balances[userID] = balance
	}

	if balances[fromUserID] < amount {
		return nil, ErrInsufficientCredits
	}

	t := &Transfer{
		BookingRef:       bookingRef,
		FromUserID:       fromUserID,
		ToUserID:         toUserID,
		Amount:           amount,
		FromBalanceAfter: balances[fromUserID] - amount,
		ToBalanceAfter:   balances[toUserID] + amount,
	}
	if fromUserID == toUserID {
		t.FromBalanceAfter = balances[fromUserID]
		t.ToBalanceAfter = balances[fromUserID]
	}

	now := l.now().UTC()
	if err := tx.InsertLedgerEntry(ctx, &models.LedgerEntry{
		BookingRef:   bookingRef,
		UserID:       fromUserID,
		EntryType:    models.EntryDebit,
		Amount:       -amount,
		BalanceAfter: t.FromBalanceAfter,
		CreatedAt:    now,
	}); err != nil {
		return nil, err
	}

	if err := tx.InsertLedgerEntry(ctx, &models.LedgerEntry{
		BookingRef:   bookingRef,
		UserID:       toUserID,
		EntryType:    models.EntryCredit,
		Amount:       amount,
		BalanceAfter: t.ToBalanceAfter,
		CreatedAt:    now,
	}); err != nil {
		return nil, err
	}

	if fromUserID == toUserID {
		return t, nil
	}

	if err := tx.UpdateUserBalance(ctx, fromUserID, t.FromBalanceAfter); err != nil {
		return nil, err
	}
	if err := tx.UpdateUserBalance(ctx, toUserID, t.ToBalanceAfter); err != nil {
		return nil, err
	}

	return t, nil
}
