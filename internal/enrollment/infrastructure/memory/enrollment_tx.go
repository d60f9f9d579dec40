package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/Lexv0lk/course-store/internal/enrollment/domain"
	"github.com/shopspring/decimal"
)

// enrollmentTx stages its writes and reads them back on top of the committed
// rows. Nothing reaches the store before commit. It may only touch the rows of
// its scope.
type enrollmentTx struct {
	store *Store
	scope domain.EnrollmentScope

	debited      decimal.Decimal
	increments   map[int]int
	subscription *domain.Subscription
}

func newEnrollmentTx(store *Store, scope domain.EnrollmentScope) *enrollmentTx {
	return &enrollmentTx{
		store:      store,
		scope:      scope,
		debited:    decimal.Zero,
		increments: make(map[int]int),
	}
}

func (tx *enrollmentTx) ConditionalDebit(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error) {
	if userID != tx.scope.UserID {
		return decimal.Zero, fmt.Errorf("balance of user %d is outside the unit of work", userID)
	}

	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	committed, ok := s.balances[userID]
	if !ok {
		return decimal.Zero, &domain.AccountNotFoundError{Msg: fmt.Sprintf("balance of user %d not found", userID)}
	}

	balance := committed.Sub(tx.debited)
	if balance.LessThan(amount) {
		return decimal.Zero, &domain.InsufficientFundsError{
			Msg: fmt.Sprintf("balance of user %d does not cover %s", userID, amount.StringFixed(2)),
		}
	}

	tx.debited = tx.debited.Add(amount)

	return balance.Sub(amount), nil
}

func (tx *enrollmentTx) ListEligibleGroups(ctx context.Context, courseID int) ([]domain.GroupLoad, error) {
	if courseID != tx.scope.CourseID {
		return nil, fmt.Errorf("course %d is outside the unit of work", courseID)
	}

	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := make([]domain.GroupLoad, 0, len(s.courseGroups[courseID]))
	for _, groupID := range s.courseGroups[courseID] {
		group := s.groups[groupID]
		load := domain.GroupLoad{ID: group.ID, MemberCount: group.MemberCount + tx.increments[groupID], Capacity: group.Capacity}
		if load.HasFreeSeat() {
			groups = append(groups, load)
		}
	}

	slices.SortFunc(groups, func(a, b domain.GroupLoad) int {
		return cmp.Or(cmp.Compare(a.MemberCount, b.MemberCount), cmp.Compare(a.ID, b.ID))
	})

	return groups, nil
}

func (tx *enrollmentTx) IncrementGroupMembership(ctx context.Context, groupID int) error {
	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.groups[groupID]
	if !ok || group.CourseID != tx.scope.CourseID {
		return fmt.Errorf("group %d is outside the unit of work", groupID)
	}

	if group.MemberCount+tx.increments[groupID] >= group.Capacity {
		return &domain.GroupFullError{Msg: fmt.Sprintf("group %d is full", groupID)}
	}

	tx.increments[groupID]++

	return nil
}

func (tx *enrollmentTx) CreateSubscription(ctx context.Context, userID, courseID, groupID int) (domain.Subscription, error) {
	if userID != tx.scope.UserID || courseID != tx.scope.CourseID {
		return domain.Subscription{}, fmt.Errorf("subscription of user %d to course %d is outside the unit of work", userID, courseID)
	}

	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := subscriptionKey{userID: userID, courseID: courseID}
	if _, ok := s.subscriptions[key]; ok || tx.subscription != nil {
		return domain.Subscription{}, &domain.DuplicateSubscriptionError{
			Msg: fmt.Sprintf("user %d is already subscribed to course %d", userID, courseID),
		}
	}

	// ids of rolled back units are not reused, like a sequence
	s.lastSubscriptionID++
	tx.subscription = &domain.Subscription{
		ID:        s.lastSubscriptionID,
		UserID:    userID,
		CourseID:  courseID,
		GroupID:   groupID,
		CreatedAt: s.now().UTC(),
	}

	return *tx.subscription, nil
}

func (tx *enrollmentTx) HasSubscription(ctx context.Context, userID, courseID int) (bool, error) {
	if tx.subscription != nil && tx.subscription.UserID == userID && tx.subscription.CourseID == courseID {
		return true, nil
	}

	return tx.store.HasSubscription(ctx, userID, courseID)
}

// commit applies the staged writes in one critical section.
func (tx *enrollmentTx) commit() {
	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if !tx.debited.IsZero() {
		s.balances[tx.scope.UserID] = s.balances[tx.scope.UserID].Sub(tx.debited)
	}

	for groupID, increment := range tx.increments {
		s.groups[groupID].MemberCount += increment
	}

	if tx.subscription != nil {
		key := subscriptionKey{userID: tx.subscription.UserID, courseID: tx.subscription.CourseID}
		s.subscriptions[key] = *tx.subscription
	}
}
