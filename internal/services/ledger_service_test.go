package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lockBalanceQuery   = "SELECT credit_balance FROM users WHERE id = \\$1 FOR UPDATE"
	updateBalanceQuery = "UPDATE users SET credit_balance = \\$1 WHERE id = \\$2"
)

func TestCreditLedger_TransferTx(t *testing.T) {
	ctx := context.Background()
	ledger := NewCreditLedger()

	t.Run("successful transfer locks lower id first", func(t *testing.T) {
		st, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockBalanceQuery).WithArgs(3).
			WillReturnRows(sqlmock.NewRows([]string{"credit_balance"}).AddRow(200))
		mock.ExpectQuery(lockBalanceQuery).WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"credit_balance"}).AddRow(500))
		mock.ExpectExec("INSERT INTO credit_ledger").
			WithArgs("ref-1", 5, "DEBIT", -110, 390, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO credit_ledger").
			WithArgs("ref-1", 3, "CREDIT", 110, 310, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectExec(updateBalanceQuery).WithArgs(390, 5).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(updateBalanceQuery).WithArgs(310, 3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := st.BeginTx(ctx)
		require.NoError(t, err)

		transfer, err := ledger.TransferTx(ctx, tx, 5, 3, "ref-1", 110)
		require.NoError(t, err)
		assert.Equal(t, int64(390), transfer.FromBalanceAfter)
		assert.Equal(t, int64(310), transfer.ToBalanceAfter)

		require.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insufficient balance writes nothing", func(t *testing.T) {
		st, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockBalanceQuery).WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"credit_balance"}).AddRow(900))
		mock.ExpectQuery(lockBalanceQuery).WithArgs(2).
			WillReturnRows(sqlmock.NewRows([]string{"credit_balance"}).AddRow(50))
		mock.ExpectRollback()

		tx, err := st.BeginTx(ctx)
		require.NoError(t, err)

		_, err = ledger.TransferTx(ctx, tx, 2, 1, "ref-2", 110)
		assert.ErrorIs(t, err, ErrInsufficientCredits)

		require.NoError(t, tx.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		st, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockBalanceQuery).WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"credit_balance"}))
		mock.ExpectRollback()

		tx, err := st.BeginTx(ctx)
		require.NoError(t, err)

		_, err = ledger.TransferTx(ctx, tx, 2, 1, "ref-3", 10)
		assert.ErrorIs(t, err, ErrUserNotFound)

		require.NoError(t, tx.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("same user locks once and keeps balance", func(t *testing.T) {
		st, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockBalanceQuery).WithArgs(4).
			WillReturnRows(sqlmock.NewRows([]string{"credit_balance"}).AddRow(300))
		mock.ExpectExec("INSERT INTO credit_ledger").
			WithArgs("ref-4", 4, "DEBIT", -50, 300, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO credit_ledger").
			WithArgs("ref-4", 4, "CREDIT", 50, 300, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		tx, err := st.BeginTx(ctx)
		require.NoError(t, err)

		transfer, err := ledger.TransferTx(ctx, tx, 4, 4, "ref-4", 50)
		require.NoError(t, err)
		assert.Equal(t, int64(300), transfer.FromBalanceAfter)

		require.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ledger write failure is returned", func(t *testing.T) {
		st, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockBalanceQuery).WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"credit_balance"}).AddRow(100))
		mock.ExpectQuery(lockBalanceQuery).WithArgs(2).
			WillReturnRows(sqlmock.NewRows([]string{"credit_balance"}).AddRow(100))
		mock.ExpectExec("INSERT INTO credit_ledger").
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		tx, err := st.BeginTx(ctx)
		require.NoError(t, err)

		_, err = ledger.TransferTx(ctx, tx, 1, 2, "ref-5", 10)
		assert.EqualError(t, err, "disk full")

		require.NoError(t, tx.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
