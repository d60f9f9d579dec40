package http

import (
	"net/http"
	"strings"

	"github.com/Lexv0lk/course-store/internal/enrollment/domain"
	"github.com/Lexv0lk/course-store/internal/pkg/jwt"
	"github.com/Lexv0lk/course-store/internal/pkg/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	authHeaderName      = "Authorization"
	requestIDHeaderName = "X-Request-ID"

	RequestIDContextKey = "request_id"
)

func NewRequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeaderName)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDContextKey, requestID)
		c.Header(requestIDHeaderName, requestID)
		c.Next()
	}
}

// NewAuthMiddleware accepts requests carrying a valid HS256 bearer token and
// stores the token's user id under jwt.UserIDContextKey.
func NewAuthMiddleware(secretKey string, tokenParser jwt.TokenParser, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid auth header"})
			return
		}

		claims, err := tokenParser.ParseToken([]byte(secretKey), parts[1])
		if err != nil {
			logger.Warn("failed to parse user token",
				"request_id", c.GetString(RequestIDContextKey),
				"error", err.Error(),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		if claims.UserID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		c.Set(jwt.TokenContextKey, parts[1])
		c.Set(jwt.UserIDContextKey, claims.UserID)
		c.Next()
	}
}

// NewBalanceMiddleware opens a ledger account holding startBalance for users
// seen for the first time. It must run after NewAuthMiddleware.
func NewBalanceMiddleware(balanceEnsurer domain.BalanceEnsurer, startBalance decimal.Decimal, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "user is not authenticated"})
			return
		}

		err := balanceEnsurer.EnsureBalanceCreated(c.Request.Context(), userID, startBalance)
		if err != nil {
			logger.Error("failed to ensure balance",
				"request_id", c.GetString(RequestIDContextKey),
				"user_id", userID,
				"error", err.Error(),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
			return
		}

		c.Next()
	}
}

func userIDFromContext(c *gin.Context) (int, bool) {
	value, exists := c.Get(jwt.UserIDContextKey)
	if !exists {
		return 0, false
	}

	userID, ok := value.(int)
	return userID, ok
}
