package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=../../../gen/mocks/enrollment/courses.go -package=mocks . CourseFinder

const DefaultGroupCapacity = 30

type CourseFinder interface {
	GetCourse(ctx context.Context, courseID int) (Course, error)
}

type Course struct {
	ID        int
	Author    string
	Title     string
	StartDate time.Time
	Price     decimal.Decimal
	Available bool
}

type Group struct {
	ID          int
	CourseID    int
	Title       string
	Number      int
	Capacity    int
	MemberCount int
}

// GroupLoad is the part of a group the assignment policy looks at.
type GroupLoad struct {
	ID          int
	MemberCount int
	Capacity    int
}

func (g GroupLoad) HasFreeSeat() bool {
	return g.MemberCount < g.Capacity
}
