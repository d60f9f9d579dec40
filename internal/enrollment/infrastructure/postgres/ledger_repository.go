package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/course-store/internal/enrollment/domain"
	"github.com/Lexv0lk/course-store/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type LedgerRepository struct {
	queryExecuter database.QueryExecuter
}

func NewLedgerRepository(queryExecuter database.QueryExecuter) *LedgerRepository {
	return &LedgerRepository{
		queryExecuter: queryExecuter,
	}
}

func (lr *LedgerRepository) EnsureBalanceCreated(ctx context.Context, userID int, startValue decimal.Decimal) error {
	sql := `INSERT INTO balances (user_id, balance) VALUES ($1, $2) ON CONFLICT (user_id) DO NOTHING`

	_, err := lr.queryExecuter.Exec(ctx, sql, userID, startValue)
	if err != nil {
		return fmt.Errorf("failed to ensure balance: %w", err)
	}

	return nil
}

func (lr *LedgerRepository) FetchBalance(ctx context.Context, userID int) (decimal.Decimal, error) {
	sql := `SELECT balance FROM balances WHERE user_id = $1`

	var balance decimal.Decimal
	err := lr.queryExecuter.QueryRow(ctx, sql, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, &domain.AccountNotFoundError{Msg: fmt.Sprintf("balance of user %d not found", userID)}
		}

		return decimal.Zero, fmt.Errorf("failed to fetch balance: %w", err)
	}

	return balance, nil
}

// LockAndGetUserBalance must be the first statement of an enrollment unit of work.
func (lr *LedgerRepository) LockAndGetUserBalance(ctx context.Context, userID int) (decimal.Decimal, error) {
	lockBalanceSQL := `SELECT balance FROM balances WHERE user_id = $1 FOR UPDATE`

	var balance decimal.Decimal
	err := lr.queryExecuter.QueryRow(ctx, lockBalanceSQL, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, &domain.AccountNotFoundError{Msg: fmt.Sprintf("balance of user %d not found", userID)}
		}

		return decimal.Zero, fmt.Errorf("failed to lock balance row: %w", err)
	}

	return balance, nil
}

func (lr *LedgerRepository) ConditionalDebit(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error) {
	debitSQL := `UPDATE balances SET balance = balance - $1 WHERE user_id = $2 AND balance >= $1 RETURNING balance`

	var balance decimal.Decimal
	err := lr.queryExecuter.QueryRow(ctx, debitSQL, amount, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, &domain.InsufficientFundsError{
				Msg: fmt.Sprintf("balance of user %d does not cover %s", userID, amount.StringFixed(2)),
			}
		}

		return decimal.Zero, fmt.Errorf("failed to debit balance: %w", err)
	}

	return balance, nil
}
