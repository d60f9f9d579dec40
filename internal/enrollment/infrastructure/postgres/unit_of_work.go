package postgres

import (
	"context"

	"github.com/Lexv0lk/course-store/internal/enrollment/domain"
	"github.com/Lexv0lk/course-store/internal/pkg/database"
)

type enrollmentTx struct {
	*LedgerRepository
	*CatalogRepository
	*SubscriptionRepository
}

type EnrollmentUnitOfWork struct {
	txManager database.TxManager
}

func NewEnrollmentUnitOfWork(txManager database.TxManager) *EnrollmentUnitOfWork {
	return &EnrollmentUnitOfWork{
		txManager: txManager,
	}
}

// WithinEnrollment runs fn in one transaction after locking the user's balance
// row and then the course's group rows.
func (uow *EnrollmentUnitOfWork) WithinEnrollment(ctx context.Context, scope domain.EnrollmentScope, fn domain.EnrollmentFunc) error {
	err := uow.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		tx := &enrollmentTx{
			LedgerRepository:       NewLedgerRepository(executor),
			CatalogRepository:      NewCatalogRepository(executor),
			SubscriptionRepository: NewSubscriptionRepository(executor),
		}

		if _, err := tx.LockAndGetUserBalance(ctx, scope.UserID); err != nil {
			return err
		}

		if err := tx.LockCourseGroups(ctx, scope.CourseID); err != nil {
			return err
		}

		return fn(ctx, tx)
	})
	if err != nil {
		return translateLockError(err)
	}

	return nil
}
