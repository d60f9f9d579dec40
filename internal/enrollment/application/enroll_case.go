package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Lexv0lk/course-store/internal/enrollment/domain"
	"github.com/Lexv0lk/course-store/internal/pkg/logging"
)

const (
	DefaultEnrollTimeout = 5 * time.Second

	// a lost race is retried once against fresh data
	maxEnrollAttempts = 2
)

type EnrollCase struct {
	courseFinder        domain.CourseFinder
	subscriptionChecker domain.SubscriptionChecker
	balanceFetcher      domain.BalanceFetcher
	unitOfWork          domain.EnrollmentUnitOfWork

	metrics *EnrollMetrics
	logger  logging.Logger
	timeout time.Duration
}

func NewEnrollCase(
	courseFinder domain.CourseFinder,
	subscriptionChecker domain.SubscriptionChecker,
	balanceFetcher domain.BalanceFetcher,
	unitOfWork domain.EnrollmentUnitOfWork,
	metrics *EnrollMetrics,
	logger logging.Logger,
	timeout time.Duration,
) *EnrollCase {
	return &EnrollCase{
		courseFinder:        courseFinder,
		subscriptionChecker: subscriptionChecker,
		balanceFetcher:      balanceFetcher,
		unitOfWork:          unitOfWork,
		metrics:             metrics,
		logger:              logger,
		timeout:             timeout,
	}
}

// Enroll buys the course for the user with the user's balance and places
// them into the least loaded group of the course. Either the debit, the
// subscription and the group increment are all persisted, or none is.
func (ec *EnrollCase) Enroll(ctx context.Context, userID, courseID int) (domain.Subscription, error) {
	started := time.Now()

	if ec.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ec.timeout)
		defer cancel()
	}

	subscription, state, err := ec.enroll(ctx, userID, courseID)
	ec.metrics.observe(err, state, time.Since(started))

	if err != nil {
		ec.logAbort(err, state, userID, courseID)
	}

	return subscription, err
}

// enroll returns the state the enrollment ended in, or the state the last
// attempt aborted in when it failed.
func (ec *EnrollCase) enroll(ctx context.Context, userID, courseID int) (domain.Subscription, domain.EnrollmentState, error) {
	course, err := ec.checkPreconditions(ctx, userID, courseID)
	if err != nil {
		return domain.Subscription{}, domain.StateChecking, ec.classify(ctx, err)
	}

	scope := domain.EnrollmentScope{UserID: userID, CourseID: courseID}

	var (
		raceErr   error
		raceState domain.EnrollmentState
	)
	for attempt := 1; attempt <= maxEnrollAttempts; attempt++ {
		subscription, state, err := ec.runAttempt(ctx, scope, course)
		if err == nil {
			ec.logger.Info("enrollment committed",
				"user_id", userID,
				"course_id", courseID,
				"group_id", subscription.GroupID,
				"subscription_id", subscription.ID,
				"attempt", attempt,
				"state", state.String(),
			)

			return subscription, state, nil
		}

		if !isLostRace(err) || ctx.Err() != nil {
			return domain.Subscription{}, state, ec.classify(ctx, err)
		}

		raceErr, raceState = err, state
		if attempt < maxEnrollAttempts {
			ec.metrics.retries.Inc()
			ec.logger.Warn("enrollment lost a race, retrying",
				"user_id", userID,
				"course_id", courseID,
				"attempt", attempt,
				"error", err.Error(),
			)
		}
	}

	return domain.Subscription{}, raceState, lostRaceOutcome(raceErr, userID, courseID)
}

// checkPreconditions reports the first unmet precondition. The checks run
// outside the unit of work and are advisory only.
func (ec *EnrollCase) checkPreconditions(ctx context.Context, userID, courseID int) (domain.Course, error) {
	course, err := ec.courseFinder.GetCourse(ctx, courseID)
	if err != nil {
		return domain.Course{}, err
	}

	if !course.Available {
		return domain.Course{}, &domain.CourseUnavailableError{Msg: fmt.Sprintf("course %d is not available", courseID)}
	}

	enrolled, err := ec.subscriptionChecker.HasSubscription(ctx, userID, courseID)
	if err != nil {
		return domain.Course{}, err
	}

	if enrolled {
		return domain.Course{}, alreadyEnrolled(userID, courseID)
	}

	balance, err := ec.balanceFetcher.FetchBalance(ctx, userID)
	if err != nil {
		return domain.Course{}, err
	}

	if balance.LessThan(course.Price) {
		return domain.Course{}, &domain.InsufficientBalanceError{
			Msg: fmt.Sprintf("balance %s is below course price %s", balance.StringFixed(2), course.Price.StringFixed(2)),
		}
	}

	return course, nil
}

func (ec *EnrollCase) runAttempt(ctx context.Context, scope domain.EnrollmentScope, course domain.Course) (domain.Subscription, domain.EnrollmentState, error) {
	state := domain.StateChecking
	var subscription domain.Subscription

	err := ec.unitOfWork.WithinEnrollment(ctx, scope, func(ctx context.Context, tx domain.EnrollmentTx) error {
		enrolled, err := tx.HasSubscription(ctx, scope.UserID, scope.CourseID)
		if err != nil {
			return err
		}

		if enrolled {
			return alreadyEnrolled(scope.UserID, scope.CourseID)
		}

		state = domain.StateDebiting
		if _, err := tx.ConditionalDebit(ctx, scope.UserID, course.Price); err != nil {
			return err
		}

		state = domain.StateGroupSelecting
		groups, err := tx.ListEligibleGroups(ctx, scope.CourseID)
		if err != nil {
			return err
		}

		group, err := domain.SelectGroup(scope.CourseID, groups)
		if err != nil {
			return err
		}

		state = domain.StateCommitting
		subscription, err = tx.CreateSubscription(ctx, scope.UserID, scope.CourseID, group.ID)
		if err != nil {
			return err
		}

		return tx.IncrementGroupMembership(ctx, group.ID)
	})
	if err != nil {
		return domain.Subscription{}, state, err
	}

	return subscription, domain.StateCommitted, nil
}

// classify turns a failed attempt into one of the errors the caller can act
// on. A definite domain outcome wins over an expired context. Anything else is
// a TimeoutError once the context is done and a StoreFailureError before.
func (ec *EnrollCase) classify(ctx context.Context, err error) error {
	var (
		courseUnavailable   *domain.CourseUnavailableError
		alreadyEnrolledErr  *domain.AlreadyEnrolledError
		insufficientBalance *domain.InsufficientBalanceError
		noGroupAvailable    *domain.NoGroupAvailableError
		timeout             *domain.TimeoutError
		insufficientFunds   *domain.InsufficientFundsError
		accountNotFound     *domain.AccountNotFoundError
	)

	switch {
	case errors.As(err, &courseUnavailable):
		return courseUnavailable
	case errors.As(err, &alreadyEnrolledErr):
		return alreadyEnrolledErr
	case errors.As(err, &insufficientBalance):
		return insufficientBalance
	case errors.As(err, &noGroupAvailable):
		return noGroupAvailable
	case errors.As(err, &timeout):
		return timeout
	case errors.As(err, &insufficientFunds):
		return &domain.InsufficientBalanceError{Msg: insufficientFunds.Msg}
	case errors.As(err, &accountNotFound):
		return &domain.InsufficientBalanceError{Msg: accountNotFound.Msg}
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return &domain.TimeoutError{Msg: "enrollment aborted before commit", Err: ctxErr}
	}

	return &domain.StoreFailureError{Msg: "enrollment failed", Err: err}
}

// logAbort records where an enrollment aborted. Store failures are errors,
// every other outcome is an expected rejection.
func (ec *EnrollCase) logAbort(err error, abortedIn domain.EnrollmentState, userID, courseID int) {
	args := []any{
		"user_id", userID,
		"course_id", courseID,
		"state", domain.StateAborted.String(),
		"aborted_in", abortedIn.String(),
		"error", err.Error(),
	}

	if errors.Is(err, &domain.StoreFailureError{}) {
		ec.logger.Error("enrollment aborted", args...)
		return
	}

	ec.logger.Info("enrollment aborted", args...)
}

func isLostRace(err error) bool {
	return errors.Is(err, &domain.GroupFullError{}) || errors.Is(err, &domain.DuplicateSubscriptionError{})
}

func lostRaceOutcome(err error, userID, courseID int) error {
	if errors.Is(err, &domain.DuplicateSubscriptionError{}) {
		return alreadyEnrolled(userID, courseID)
	}

	return &domain.NoGroupAvailableError{Msg: fmt.Sprintf("course %d has no group with a free seat", courseID)}
}

func alreadyEnrolled(userID, courseID int) error {
	return &domain.AlreadyEnrolledError{Msg: fmt.Sprintf("user %d is already enrolled in course %d", userID, courseID)}
}
