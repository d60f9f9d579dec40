//go:build integration

package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/Lexv0lk/course-store/internal/pkg/database"
	"github.com/Lexv0lk/course-store/internal/pkg/jwt"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func startPostgres(t *testing.T) database.PostgresSettings {
	t.Helper()

	pg, err := tcpostgres.Run(
		t.Context(),
		"postgres:16-alpine",
		tcpostgres.WithDatabase("course_store_db"),
		tcpostgres.WithUsername("admin"),
		tcpostgres.WithPassword("password"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(context.Background()) })

	host, err := pg.Host(t.Context())
	require.NoError(t, err)
	port, err := pg.MappedPort(t.Context(), "5432/tcp")
	require.NoError(t, err)

	return database.PostgresSettings{
		User:     "admin",
		Password: "password",
		Host:     host,
		Port:     port.Port(),
		DBName:   "course_store_db",
	}
}

func concurrentPays(t *testing.T, baseURL string, userIDs []int, courseID int) map[int]int {
	t.Helper()

	requests := make([]*http.Request, 0, len(userIDs))
	for _, userID := range userIDs {
		token, err := jwt.NewJWTTokenIssuer().IssueToken([]byte(testSecret), userID, "student", time.Hour)
		require.NoError(t, err)

		req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/api/courses/%d/pay", baseURL, courseID), nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)

		requests = append(requests, req)
	}

	var (
		mu       sync.Mutex
		statuses = make(map[int]int)
		wg       sync.WaitGroup
	)

	start := make(chan struct{})
	for _, req := range requests {
		wg.Add(1)
		go func(req *http.Request) {
			defer wg.Done()
			<-start

			status := 0
			resp, err := http.DefaultClient.Do(req)
			if err == nil {
				status = resp.StatusCode
				resp.Body.Close()
			}

			mu.Lock()
			statuses[status]++
			mu.Unlock()
		}(req)
	}

	close(start)
	wg.Wait()

	return statuses
}

func TestEnrollmentApp_Postgres(t *testing.T) {
	settings := startPostgres(t)

	cfg := DefaultEnrollmentConfig()
	cfg.DbSettings = settings
	cfg.AutoMigrate = true
	cfg.JwtSecret = testSecret

	client := startApp(t, cfg)

	dbpool, err := pgxpool.New(t.Context(), settings.GetURL())
	require.NoError(t, err)
	t.Cleanup(dbpool.Close)

	t.Run("least loaded group and balance arithmetic", func(t *testing.T) {
		status, body := client.do(http.MethodPost, "/api/courses/2/pay", 1)
		require.Equal(t, http.StatusCreated, status)
		firstGroup := body["group"]

		status, body = client.do(http.MethodPost, "/api/courses/2/pay", 2)
		require.Equal(t, http.StatusCreated, status)
		assert.NotEqual(t, firstGroup, body["group"], "the second student goes to an empty group")

		status, body = client.do(http.MethodGet, "/api/info", 1)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "250.00", body["balance"])

		status, _ = client.do(http.MethodPost, "/api/courses/2/pay", 1)
		assert.Equal(t, http.StatusConflict, status)
	})

	t.Run("insufficient balance leaves no trace", func(t *testing.T) {
		_, err := dbpool.Exec(t.Context(), "INSERT INTO balances (user_id, balance) VALUES (50, 100.00)")
		require.NoError(t, err)

		status, _ := client.do(http.MethodPost, "/api/courses/1/pay", 50)
		assert.Equal(t, http.StatusBadRequest, status)

		var subscriptions int
		err = dbpool.QueryRow(t.Context(), "SELECT COUNT(*) FROM subscriptions WHERE user_id = 50").Scan(&subscriptions)
		require.NoError(t, err)
		assert.Zero(t, subscriptions)
	})

	t.Run("concurrent duplicates commit once", func(t *testing.T) {
		userIDs := make([]int, 20)
		for i := range userIDs {
			userIDs[i] = 100
		}

		// the account must exist before the race so that every request sees it
		status, _ := client.do(http.MethodGet, "/api/info", 100)
		require.Equal(t, http.StatusOK, status)

		statuses := concurrentPays(t, client.baseURL, userIDs, 1)
		assert.Equal(t, 1, statuses[http.StatusCreated])
		assert.Equal(t, 19, statuses[http.StatusConflict])

		status, body := client.do(http.MethodGet, "/api/info", 100)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "500.00", body["balance"])
		assert.Len(t, body["subscriptions"], 1)
	})

	t.Run("capacity is never exceeded", func(t *testing.T) {
		_, err := dbpool.Exec(t.Context(), `INSERT INTO courses (id, author, title, start_date, price, available)
VALUES (10, 'Rob Pike', 'Go internals', '2027-03-01', 100.00, TRUE)`)
		require.NoError(t, err)
		_, err = dbpool.Exec(t.Context(), `INSERT INTO course_groups (course_id, title, number, capacity) VALUES
(10, 'Go internals, group 1', 1, 2),
(10, 'Go internals, group 2', 2, 1)`)
		require.NoError(t, err)

		userIDs := make([]int, 8)
		for i := range userIDs {
			userIDs[i] = 200 + i
		}

		statuses := concurrentPays(t, client.baseURL, userIDs, 10)
		assert.Equal(t, 3, statuses[http.StatusCreated])
		assert.Equal(t, 5, statuses[http.StatusConflict])

		var members, subscriptions int
		err = dbpool.QueryRow(t.Context(), "SELECT SUM(member_count) FROM course_groups WHERE course_id = 10").Scan(&members)
		require.NoError(t, err)
		err = dbpool.QueryRow(t.Context(), "SELECT COUNT(*) FROM subscriptions WHERE course_id = 10").Scan(&subscriptions)
		require.NoError(t, err)
		assert.Equal(t, 3, members)
		assert.Equal(t, 3, subscriptions)

		var debited int
		err = dbpool.QueryRow(t.Context(),
			"SELECT COUNT(*) FROM balances WHERE user_id BETWEEN 200 AND 207 AND balance = 900.00").Scan(&debited)
		require.NoError(t, err)
		assert.Equal(t, 3, debited, "only committed students are charged")
	})
}
