package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Lexv0lk/course-store/internal/enrollment/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/semaphore"
)

// rowLock serializes units of work on one balance row or one course. refs
// counts the units holding or waiting for it.
type rowLock struct {
	sem  *semaphore.Weighted
	refs int
}

type subscriptionKey struct {
	userID   int
	courseID int
}

// Store keeps balances, courses, groups and subscriptions in process memory.
// Units of work are serialized per balance row and per course and stage their
// writes until commit, so readers outside a unit only see committed state. mu
// only guards the maps and is never held while waiting. Row locks are dropped
// once no unit holds or waits for them.
type Store struct {
	mu sync.Mutex

	balanceLocks map[int]*rowLock
	courseLocks  map[int]*rowLock

	balances      map[int]decimal.Decimal
	courses       map[int]domain.Course
	groups        map[int]*domain.Group
	courseGroups  map[int][]int
	subscriptions map[subscriptionKey]domain.Subscription

	lastSubscriptionID int
	now                func() time.Time
}

func NewStore() *Store {
	return &Store{
		balanceLocks:  make(map[int]*rowLock),
		courseLocks:   make(map[int]*rowLock),
		balances:      make(map[int]decimal.Decimal),
		courses:       make(map[int]domain.Course),
		groups:        make(map[int]*domain.Group),
		courseGroups:  make(map[int][]int),
		subscriptions: make(map[subscriptionKey]domain.Subscription),
		now:           time.Now,
	}
}

// AddCourse registers a course with its groups, replacing a course with the same id.
func (s *Store) AddCourse(course domain.Course, groups ...domain.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, groupID := range s.courseGroups[course.ID] {
		delete(s.groups, groupID)
	}

	groupIDs := make([]int, 0, len(groups))
	for _, group := range groups {
		if existing, ok := s.groups[group.ID]; ok && existing.CourseID != course.ID {
			return &domain.InvalidArgumentsError{Msg: fmt.Sprintf("group %d already belongs to course %d", group.ID, existing.CourseID)}
		}

		if group.Capacity <= 0 {
			group.Capacity = domain.DefaultGroupCapacity
		}

		if group.MemberCount < 0 || group.MemberCount > group.Capacity {
			return &domain.InvalidArgumentsError{Msg: fmt.Sprintf("group %d has %d members for capacity %d", group.ID, group.MemberCount, group.Capacity)}
		}

		group.CourseID = course.ID
		s.groups[group.ID] = &group
		groupIDs = append(groupIDs, group.ID)
	}

	s.courses[course.ID] = course
	s.courseGroups[course.ID] = groupIDs

	return nil
}

func (s *Store) SetBalance(userID int, balance decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.balances[userID] = balance
}

func (s *Store) GetCourse(ctx context.Context, courseID int) (domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[courseID]
	if !ok {
		return domain.Course{}, &domain.CourseUnavailableError{Msg: fmt.Sprintf("course %d not found", courseID)}
	}

	return course, nil
}

// CourseGroups returns a snapshot of the course's groups ordered by id.
func (s *Store) CourseGroups(ctx context.Context, courseID int) []domain.Group {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := make([]domain.Group, 0, len(s.courseGroups[courseID]))
	for _, groupID := range s.courseGroups[courseID] {
		groups = append(groups, *s.groups[groupID])
	}

	slices.SortFunc(groups, func(a, b domain.Group) int { return a.ID - b.ID })

	return groups
}

func (s *Store) EnsureBalanceCreated(ctx context.Context, userID int, startValue decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.balances[userID]; !ok {
		s.balances[userID] = startValue
	}

	return nil
}

func (s *Store) FetchBalance(ctx context.Context, userID int) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance, ok := s.balances[userID]
	if !ok {
		return decimal.Zero, &domain.AccountNotFoundError{Msg: fmt.Sprintf("balance of user %d not found", userID)}
	}

	return balance, nil
}

func (s *Store) HasSubscription(ctx context.Context, userID, courseID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.subscriptions[subscriptionKey{userID: userID, courseID: courseID}]
	return ok, nil
}

func (s *Store) ListUserSubscriptions(ctx context.Context, userID int) ([]domain.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subscriptions := make([]domain.Subscription, 0)
	for key, subscription := range s.subscriptions {
		if key.userID == userID {
			subscriptions = append(subscriptions, subscription)
		}
	}

	slices.SortFunc(subscriptions, func(a, b domain.Subscription) int { return a.ID - b.ID })

	return subscriptions, nil
}

// WithinEnrollment acquires the user's balance row and then the course, runs
// fn and applies its writes only if fn succeeds and ctx is still live.
func (s *Store) WithinEnrollment(ctx context.Context, scope domain.EnrollmentScope, fn domain.EnrollmentFunc) error {
	if err := s.acquireRow(ctx, s.balanceLocks, scope.UserID); err != nil {
		return &domain.TimeoutError{Msg: fmt.Sprintf("waiting for balance of user %d", scope.UserID), Err: err}
	}
	defer s.releaseRow(s.balanceLocks, scope.UserID)

	if err := s.acquireRow(ctx, s.courseLocks, scope.CourseID); err != nil {
		return &domain.TimeoutError{Msg: fmt.Sprintf("waiting for groups of course %d", scope.CourseID), Err: err}
	}
	defer s.releaseRow(s.courseLocks, scope.CourseID)

	tx := newEnrollmentTx(s, scope)

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return &domain.TimeoutError{Msg: "enrollment cancelled before commit", Err: err}
	}

	tx.commit()

	return nil
}

// acquireRow waits for the row lock of id. The lock entry lives only while a
// unit holds or waits for it.
func (s *Store) acquireRow(ctx context.Context, locks map[int]*rowLock, id int) error {
	s.mu.Lock()
	lock, ok := locks[id]
	if !ok {
		lock = &rowLock{sem: semaphore.NewWeighted(1)}
		locks[id] = lock
	}
	lock.refs++
	s.mu.Unlock()

	if err := lock.sem.Acquire(ctx, 1); err != nil {
		s.dropRowRef(locks, id)
		return err
	}

	return nil
}

func (s *Store) releaseRow(locks map[int]*rowLock, id int) {
	s.mu.Lock()
	lock := locks[id]
	s.mu.Unlock()

	lock.sem.Release(1)
	s.dropRowRef(locks, id)
}

func (s *Store) dropRowRef(locks map[int]*rowLock, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock := locks[id]
	lock.refs--
	if lock.refs == 0 {
		delete(locks, id)
	}
}
