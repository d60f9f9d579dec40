package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/course-store/internal/enrollment/domain"
	"github.com/Lexv0lk/course-store/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type SubscriptionRepository struct {
	queryExecuter database.QueryExecuter
}

func NewSubscriptionRepository(queryExecuter database.QueryExecuter) *SubscriptionRepository {
	return &SubscriptionRepository{
		queryExecuter: queryExecuter,
	}
}

func (sr *SubscriptionRepository) HasSubscription(ctx context.Context, userID, courseID int) (bool, error) {
	sql := `SELECT EXISTS (SELECT 1 FROM subscriptions WHERE user_id = $1 AND course_id = $2)`

	var exists bool
	err := sr.queryExecuter.QueryRow(ctx, sql, userID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}

	return exists, nil
}

func (sr *SubscriptionRepository) ListUserSubscriptions(ctx context.Context, userID int) ([]domain.Subscription, error) {
	sql := `SELECT id, user_id, course_id, group_id, created_at FROM subscriptions WHERE user_id = $1 ORDER BY id`

	rows, err := sr.queryExecuter.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	subscriptions := make([]domain.Subscription, 0)
	for rows.Next() {
		var subscription domain.Subscription
		err := rows.Scan(&subscription.ID, &subscription.UserID, &subscription.CourseID,
			&subscription.GroupID, &subscription.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription row: %w", err)
		}

		subscriptions = append(subscriptions, subscription)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return subscriptions, nil
}

func (sr *SubscriptionRepository) CreateSubscription(ctx context.Context, userID, courseID, groupID int) (domain.Subscription, error) {
	insertSQL := `INSERT INTO subscriptions (user_id, course_id, group_id) VALUES ($1, $2, $3)
ON CONFLICT (user_id, course_id) DO NOTHING
RETURNING id, created_at`

	subscription := domain.Subscription{UserID: userID, CourseID: courseID, GroupID: groupID}
	err := sr.queryExecuter.QueryRow(ctx, insertSQL, userID, courseID, groupID).
		Scan(&subscription.ID, &subscription.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return domain.Subscription{}, &domain.DuplicateSubscriptionError{
				Msg: fmt.Sprintf("user %d is already subscribed to course %d", userID, courseID),
			}
		}

		return domain.Subscription{}, fmt.Errorf("failed to create subscription: %w", err)
	}

	return subscription, nil
}
