package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Lexv0lk/course-store/internal/enrollment/domain"
	"github.com/Lexv0lk/course-store/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=../../../../gen/mocks/gateway/handlers.go -package=mocks . Enroller,UserInfoProvider

const CourseIDKey = "courseID"

type Enroller interface {
	Enroll(ctx context.Context, userID, courseID int) (domain.Subscription, error)
}

type UserInfoProvider interface {
	GetUserInfo(ctx context.Context, userID int) (domain.UserInfo, error)
}

type subscriptionResponse struct {
	ID        int       `json:"id"`
	User      int       `json:"user"`
	Course    int       `json:"course"`
	Group     int       `json:"group"`
	CreatedAt time.Time `json:"createdAt"`
}

type userInfoResponse struct {
	Balance       string                 `json:"balance"`
	Subscriptions []subscriptionResponse `json:"subscriptions"`
}

type EnrollmentHandler struct {
	enroller         Enroller
	userInfoProvider UserInfoProvider
	logger           logging.Logger
}

func NewEnrollmentHandler(enroller Enroller, userInfoProvider UserInfoProvider, logger logging.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		enroller:         enroller,
		userInfoProvider: userInfoProvider,
		logger:           logger,
	}
}

func (h *EnrollmentHandler) Pay(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "user is not authenticated"})
		return
	}

	courseID, err := strconv.Atoi(c.Param(CourseIDKey))
	if err != nil || courseID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid course id"})
		return
	}

	subscription, err := h.enroller.Enroll(c.Request.Context(), userID, courseID)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSubscriptionResponse(subscription))
}

func (h *EnrollmentHandler) GetInfo(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "user is not authenticated"})
		return
	}

	info, err := h.userInfoProvider.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	subscriptions := make([]subscriptionResponse, 0, len(info.Subscriptions))
	for _, subscription := range info.Subscriptions {
		subscriptions = append(subscriptions, toSubscriptionResponse(subscription))
	}

	c.JSON(http.StatusOK, userInfoResponse{
		Balance:       info.Balance.StringFixed(2),
		Subscriptions: subscriptions,
	})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *EnrollmentHandler) handleEnrollmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.CourseUnavailableError{}),
		errors.Is(err, &domain.AccountNotFoundError{}):
		c.JSON(http.StatusNotFound, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.AlreadyEnrolledError{}),
		errors.Is(err, &domain.NoGroupAvailableError{}):
		c.JSON(http.StatusConflict, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.InsufficientBalanceError{}),
		errors.Is(err, &domain.InvalidArgumentsError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.TimeoutError{}):
		c.JSON(http.StatusServiceUnavailable, gin.H{"errors": "enrollment timed out, try again"})
	default:
		h.logger.Error("request failed",
			"request_id", c.GetString(RequestIDContextKey),
			"path", c.FullPath(),
			"error", err.Error(),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}

func toSubscriptionResponse(subscription domain.Subscription) subscriptionResponse {
	return subscriptionResponse{
		ID:        subscription.ID,
		User:      subscription.UserID,
		Course:    subscription.CourseID,
		Group:     subscription.GroupID,
		CreatedAt: subscription.CreatedAt,
	}
}
