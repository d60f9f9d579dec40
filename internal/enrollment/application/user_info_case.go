package application

import (
	"context"

	"github.com/Lexv0lk/course-store/internal/enrollment/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type UserInfoCase struct {
	balanceFetcher     domain.BalanceFetcher
	subscriptionLister domain.SubscriptionLister
}

func NewUserInfoCase(balanceFetcher domain.BalanceFetcher, subscriptionLister domain.SubscriptionLister) *UserInfoCase {
	return &UserInfoCase{
		balanceFetcher:     balanceFetcher,
		subscriptionLister: subscriptionLister,
	}
}

func (uic *UserInfoCase) GetUserInfo(ctx context.Context, userID int) (domain.UserInfo, error) {
	group, groupCtx := errgroup.WithContext(ctx)

	var balance decimal.Decimal
	var subscriptions []domain.Subscription

	group.Go(func() error {
		var err error
		balance, err = uic.balanceFetcher.FetchBalance(groupCtx, userID)
		return err
	})

	group.Go(func() error {
		var err error
		subscriptions, err = uic.subscriptionLister.ListUserSubscriptions(groupCtx, userID)
		return err
	})

	err := group.Wait()
	if err != nil {
		return domain.UserInfo{}, err
	}

	return domain.UserInfo{
		UserID:        userID,
		Balance:       balance,
		Subscriptions: subscriptions,
	}, nil
}
