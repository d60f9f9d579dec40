package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrySetFromEnv(t *testing.T) {
	t.Setenv("COURSE_STORE_TEST_VALUE", "from-env")

	val := "default"
	TrySetFromEnv("COURSE_STORE_TEST_VALUE", &val)
	assert.Equal(t, "from-env", val)

	missing := "default"
	TrySetFromEnv("COURSE_STORE_TEST_MISSING", &missing)
	assert.Equal(t, "default", missing)
}

func TestTrySetDurationFromEnv(t *testing.T) {
	t.Setenv("COURSE_STORE_TEST_TIMEOUT", "750ms")

	val := time.Second
	require.NoError(t, TrySetDurationFromEnv("COURSE_STORE_TEST_TIMEOUT", &val))
	assert.Equal(t, 750*time.Millisecond, val)

	t.Setenv("COURSE_STORE_TEST_TIMEOUT", "soon")
	assert.Error(t, TrySetDurationFromEnv("COURSE_STORE_TEST_TIMEOUT", &val))
	assert.Equal(t, 750*time.Millisecond, val)
}

func TestTrySetBoolFromEnv(t *testing.T) {
	t.Setenv("COURSE_STORE_TEST_FLAG", "true")

	val := false
	require.NoError(t, TrySetBoolFromEnv("COURSE_STORE_TEST_FLAG", &val))
	assert.True(t, val)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("COURSE_STORE_TEST_DOTENV=loaded\n"), 0o600))
	t.Setenv("COURSE_STORE_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("COURSE_STORE_TEST_DOTENV"))

	err := LoadDotEnv(filepath.Join(dir, "missing.env"), path)
	require.NoError(t, err)

	assert.Equal(t, "loaded", os.Getenv("COURSE_STORE_TEST_DOTENV"))
}
