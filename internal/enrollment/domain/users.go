package domain

import "github.com/shopspring/decimal"

type UserInfo struct {
	UserID        int
	Balance       decimal.Decimal
	Subscriptions []Subscription
}
