package application

import (
	"errors"
	"time"

	"github.com/Lexv0lk/course-store/internal/enrollment/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeCommitted           = "committed"
	OutcomeCourseUnavailable   = "course_unavailable"
	OutcomeAlreadyEnrolled     = "already_enrolled"
	OutcomeInsufficientBalance = "insufficient_balance"
	OutcomeNoGroupAvailable    = "no_group_available"
	OutcomeTimeout             = "timeout"
	OutcomeStoreFailure        = "store_failure"
)

type EnrollMetrics struct {
	outcomes *prometheus.CounterVec
	aborts   *prometheus.CounterVec
	retries  prometheus.Counter
	duration prometheus.Histogram
}

// NewEnrollMetrics registers the enrollment collectors on registerer. A nil
// registerer leaves them unregistered.
func NewEnrollMetrics(registerer prometheus.Registerer) *EnrollMetrics {
	factory := promauto.With(registerer)

	return &EnrollMetrics{
		outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "course_store",
			Subsystem: "enrollment",
			Name:      "outcomes_total",
			Help:      "Enrollment attempts by outcome.",
		}, []string{"outcome"}),
		aborts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "course_store",
			Subsystem: "enrollment",
			Name:      "aborts_total",
			Help:      "Aborted enrollments by the state they aborted in.",
		}, []string{"state"}),
		retries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "course_store",
			Subsystem: "enrollment",
			Name:      "race_retries_total",
			Help:      "Units of work retried after losing a race for a seat or a subscription.",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "course_store",
			Subsystem: "enrollment",
			Name:      "duration_seconds",
			Help:      "Time spent in Enroll, including waiting for row locks.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *EnrollMetrics) observe(err error, state domain.EnrollmentState, elapsed time.Duration) {
	m.outcomes.WithLabelValues(outcomeLabel(err)).Inc()
	if err != nil {
		m.aborts.WithLabelValues(state.String()).Inc()
	}
	m.duration.Observe(elapsed.Seconds())
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return OutcomeCommitted
	case errors.Is(err, &domain.CourseUnavailableError{}):
		return OutcomeCourseUnavailable
	case errors.Is(err, &domain.AlreadyEnrolledError{}):
		return OutcomeAlreadyEnrolled
	case errors.Is(err, &domain.InsufficientBalanceError{}):
		return OutcomeInsufficientBalance
	case errors.Is(err, &domain.NoGroupAvailableError{}):
		return OutcomeNoGroupAvailable
	case errors.Is(err, &domain.TimeoutError{}):
		return OutcomeTimeout
	default:
		return OutcomeStoreFailure
	}
}
