package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/course-store/internal/enrollment/domain"
	"github.com/Lexv0lk/course-store/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type CatalogRepository struct {
	queryExecuter database.QueryExecuter
}

func NewCatalogRepository(queryExecuter database.QueryExecuter) *CatalogRepository {
	return &CatalogRepository{
		queryExecuter: queryExecuter,
	}
}

func (cr *CatalogRepository) GetCourse(ctx context.Context, courseID int) (domain.Course, error) {
	findCourseSQL := `SELECT id, author, title, start_date, price, available FROM courses WHERE id = $1`

	var course domain.Course
	err := cr.queryExecuter.QueryRow(ctx, findCourseSQL, courseID).
		Scan(&course.ID, &course.Author, &course.Title, &course.StartDate, &course.Price, &course.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Course{}, &domain.CourseUnavailableError{Msg: fmt.Sprintf("course %d not found", courseID)}
		}

		return domain.Course{}, fmt.Errorf("failed to find course: %w", err)
	}

	return course, nil
}

// LockCourseGroups locks every group row of the course in id order.
func (cr *CatalogRepository) LockCourseGroups(ctx context.Context, courseID int) error {
	lockGroupsSQL := `SELECT id FROM course_groups WHERE course_id = $1 ORDER BY id FOR UPDATE`

	rows, err := cr.queryExecuter.Query(ctx, lockGroupsSQL, courseID)
	if err != nil {
		return fmt.Errorf("failed to lock course groups: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to lock course groups: %w", err)
	}

	return nil
}

func (cr *CatalogRepository) ListEligibleGroups(ctx context.Context, courseID int) ([]domain.GroupLoad, error) {
	eligibleGroupsSQL := `SELECT id, member_count, capacity FROM course_groups
WHERE course_id = $1 AND member_count < capacity
ORDER BY member_count, id`

	rows, err := cr.queryExecuter.Query(ctx, eligibleGroupsSQL, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible groups: %w", err)
	}
	defer rows.Close()

	groups := make([]domain.GroupLoad, 0)
	for rows.Next() {
		var group domain.GroupLoad
		if err := rows.Scan(&group.ID, &group.MemberCount, &group.Capacity); err != nil {
			return nil, fmt.Errorf("failed to scan group row: %w", err)
		}

		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list eligible groups: %w", err)
	}

	return groups, nil
}

func (cr *CatalogRepository) IncrementGroupMembership(ctx context.Context, groupID int) error {
	incrementSQL := `UPDATE course_groups SET member_count = member_count + 1 WHERE id = $1 AND member_count < capacity`

	tag, err := cr.queryExecuter.Exec(ctx, incrementSQL, groupID)
	if err != nil {
		if isCheckViolation(err) {
			return &domain.GroupFullError{Msg: fmt.Sprintf("group %d is full", groupID)}
		}

		return fmt.Errorf("failed to increment group membership: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.GroupFullError{Msg: fmt.Sprintf("group %d is full", groupID)}
	}

	return nil
}
