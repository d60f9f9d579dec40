package domain

import "context"

//go:generate mockgen -destination=../../../gen/mocks/enrollment/enrollment.go -package=mocks . EnrollmentTx,EnrollmentUnitOfWork
//go:generate stringer -type=EnrollmentState -trimprefix=State

// EnrollmentScope names the rows an enrollment touches: the user's balance
// row and the course's group rows.
type EnrollmentScope struct {
	UserID   int
	CourseID int
}

// EnrollmentTx gives access to the stores inside one atomic unit.
type EnrollmentTx interface {
	LedgerStore
	CatalogStore
	SubscriptionChecker
}

type EnrollmentFunc func(ctx context.Context, tx EnrollmentTx) error

// EnrollmentUnitOfWork runs fn atomically. The user's balance row is locked
// before the course's group rows, so two units never wait on each other in
// opposite order. If fn returns an error nothing fn wrote is kept.
type EnrollmentUnitOfWork interface {
	WithinEnrollment(ctx context.Context, scope EnrollmentScope, fn EnrollmentFunc) error
}

type EnrollmentState int

const (
	StateChecking EnrollmentState = iota
	StateDebiting
	StateGroupSelecting
	StateCommitting
	StateCommitted
	StateAborted
)
