package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=../../../gen/mocks/enrollment/subscriptions.go -package=mocks . SubscriptionChecker,SubscriptionLister

type Subscription struct {
	ID        int
	UserID    int
	CourseID  int
	GroupID   int
	CreatedAt time.Time
}

type SubscriptionChecker interface {
	HasSubscription(ctx context.Context, userID, courseID int) (bool, error)
}

type SubscriptionLister interface {
	ListUserSubscriptions(ctx context.Context, userID int) ([]Subscription, error)
}

// CatalogStore is the only writer of group member counts and subscriptions.
type CatalogStore interface {
	ListEligibleGroups(ctx context.Context, courseID int) ([]GroupLoad, error)
	// IncrementGroupMembership re-checks the capacity at write time and
	// returns a GroupFullError if the group filled up since it was listed.
	IncrementGroupMembership(ctx context.Context, groupID int) error
	// CreateSubscription returns a DuplicateSubscriptionError if the user is
	// already subscribed to the course.
	CreateSubscription(ctx context.Context, userID, courseID, groupID int) (Subscription, error)
}
