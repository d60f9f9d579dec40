package bootstrap

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/Lexv0lk/course-store/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secret-key"

type testClient struct {
	t       *testing.T
	baseURL string
}

func (c testClient) do(method, path string, userID int) (int, map[string]any) {
	c.t.Helper()

	req, err := http.NewRequest(method, c.baseURL+path, nil)
	require.NoError(c.t, err)

	if userID > 0 {
		token, err := jwt.NewJWTTokenIssuer().IssueToken([]byte(testSecret), userID, "student", time.Hour)
		require.NoError(c.t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)

	var decoded map[string]any
	_ = json.Unmarshal(body, &decoded)

	return resp.StatusCode, decoded
}

// startApp runs the app on a random local port until the test ends.
func startApp(t *testing.T, cfg EnrollmentConfig) testClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	app := NewEnrollmentApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(t.Context())
	runErr := make(chan error, 1)
	go func() {
		runErr <- app.Run(ctx, lis)
	}()

	t.Cleanup(func() {
		cancel()
		<-runErr
		app.Shutdown()
	})

	client := testClient{t: t, baseURL: "http://" + lis.Addr().String()}
	require.Eventually(t, func() bool {
		resp, err := http.Get(client.baseURL + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	return client
}

func memoryConfig() EnrollmentConfig {
	cfg := DefaultEnrollmentConfig()
	cfg.StorageDriver = StorageDriverMemory
	cfg.SeedFile = filepath.Join("..", "infrastructure", "memory", "testdata", "seed.yaml")
	cfg.JwtSecret = testSecret

	return cfg
}

func TestEnrollmentApp_MemoryStorage(t *testing.T) {
	client := startApp(t, memoryConfig())

	status, _ := client.do(http.MethodPost, "/api/courses/1/pay", 0)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := client.do(http.MethodPost, "/api/courses/1/pay", 1)
	require.Equal(t, http.StatusCreated, status)
	assert.EqualValues(t, 1, body["user"])
	assert.EqualValues(t, 1, body["course"])
	assert.EqualValues(t, 2, body["group"], "the least loaded group is chosen")

	status, _ = client.do(http.MethodPost, "/api/courses/1/pay", 1)
	assert.Equal(t, http.StatusConflict, status)

	status, body = client.do(http.MethodGet, "/api/info", 1)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "500.00", body["balance"])
	assert.Len(t, body["subscriptions"], 1)

	status, _ = client.do(http.MethodPost, "/api/courses/1/pay", 2)
	assert.Equal(t, http.StatusBadRequest, status, "balance 100 is below price 500")

	status, _ = client.do(http.MethodPost, "/api/courses/2/pay", 3)
	assert.Equal(t, http.StatusNotFound, status, "course 2 is unavailable")

	status, _ = client.do(http.MethodPost, "/api/courses/99/pay", 3)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = client.do(http.MethodGet, "/api/info", 3)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "1000.00", body["balance"], "a new user gets the start balance")

	resp, err := http.Get(client.baseURL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	metrics, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `course_store_enrollment_outcomes_total{outcome="committed"} 1`)
	assert.Contains(t, string(metrics), `course_store_enrollment_outcomes_total{outcome="already_enrolled"} 1`)
}

func TestEnrollmentApp_RunFails(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string
		cfg  func() EnrollmentConfig
	}

	tests := []testCase{
		{
			name: "missing seed file",
			cfg: func() EnrollmentConfig {
				cfg := memoryConfig()
				cfg.SeedFile = filepath.Join("testdata", "missing.yaml")
				return cfg
			},
		},
		{
			name: "unknown storage driver",
			cfg: func() EnrollmentConfig {
				cfg := memoryConfig()
				cfg.StorageDriver = "redis"
				return cfg
			},
		},
		{
			name: "database unreachable",
			cfg: func() EnrollmentConfig {
				cfg := memoryConfig()
				cfg.StorageDriver = StorageDriverPostgres
				cfg.DbSettings.Host = "127.0.0.1"
				cfg.DbSettings.Port = "1"
				return cfg
			},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lis, err := net.Listen("tcp", "127.0.0.1:0")
			require.NoError(t, err)
			defer lis.Close()

			ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
			defer cancel()

			app := NewEnrollmentApp(tt.cfg(), slog.New(slog.NewTextHandler(io.Discard, nil)))
			assert.Error(t, app.Run(ctx, lis))
			app.Shutdown()
		})
	}
}
