package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=../../../gen/mocks/enrollment/ledger.go -package=mocks . BalanceFetcher,BalanceEnsurer

// StartBalance is credited to every ledger account on creation.
var StartBalance = decimal.NewFromInt(1000)

type BalanceFetcher interface {
	FetchBalance(ctx context.Context, userID int) (decimal.Decimal, error)
}

type BalanceEnsurer interface {
	EnsureBalanceCreated(ctx context.Context, userID int, startValue decimal.Decimal) error
}

// LedgerStore is the only writer of user balances.
type LedgerStore interface {
	// ConditionalDebit subtracts amount only if the balance covers it and
	// returns the new balance. Otherwise the balance is left untouched and an
	// InsufficientFundsError is returned.
	ConditionalDebit(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error)
}
