package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	gatewaymocks "github.com/Lexv0lk/course-store/gen/mocks/gateway"
	loggingmocks "github.com/Lexv0lk/course-store/gen/mocks/logging"
	"github.com/Lexv0lk/course-store/internal/enrollment/domain"
	"github.com/Lexv0lk/course-store/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestNewRouter(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	enroller := gatewaymocks.NewMockEnroller(ctrl)
	enroller.EXPECT().Enroll(gomock.Any(), 3, 7).Return(domain.Subscription{ID: 1, UserID: 3, CourseID: 7, GroupID: 1}, nil)

	handler := NewEnrollmentHandler(enroller, gatewaymocks.NewMockUserInfoProvider(ctrl), loggingmocks.NewMockLogger(ctrl))

	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "router_test_total", Help: "test"}))

	fakeAuth := func(c *gin.Context) {
		if c.GetHeader(authHeaderName) == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(jwt.UserIDContextKey, 3)
		c.Next()
	}

	router := NewRouter(handler, registry, fakeAuth)

	type testCase struct {
		name   string
		method string
		path   string
		auth   bool

		expectedStatus int
		expectedBody   string
	}

	tests := []testCase{
		{name: "health", method: http.MethodGet, path: "/health", expectedStatus: http.StatusOK, expectedBody: `"status":"ok"`},
		{name: "metrics", method: http.MethodGet, path: "/metrics", expectedStatus: http.StatusOK, expectedBody: "router_test_total"},
		{name: "api requires auth", method: http.MethodPost, path: "/api/courses/7/pay", expectedStatus: http.StatusUnauthorized},
		{name: "pay", method: http.MethodPost, path: "/api/courses/7/pay", auth: true, expectedStatus: http.StatusCreated},
		{name: "unknown route", method: http.MethodGet, path: "/api/unknown", auth: true, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		writer := httptest.NewRecorder()
		request := httptest.NewRequest(tt.method, tt.path, nil)
		if tt.auth {
			request.Header.Set(authHeaderName, "Bearer token")
		}

		router.ServeHTTP(writer, request)

		assert.Equal(t, tt.expectedStatus, writer.Code, tt.name)
		assert.NotEmpty(t, writer.Header().Get(requestIDHeaderName), tt.name)
		if tt.expectedBody != "" {
			assert.Contains(t, writer.Body.String(), tt.expectedBody, tt.name)
		}
	}
}
