package cmd

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brk3/momentum/internal/calendar"
	"github.com/brk3/momentum/internal/config"
	"github.com/brk3/momentum/internal/server"
	"github.com/brk3/momentum/internal/storage/memory"
	"github.com/brk3/momentum/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTestAPI(t *testing.T) string {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("MOMENTUM_CONFIG", "")

	svc := tracker.New(memory.New(), calendar.SystemClock{})
	apiCfg := &config.Config{CORS: config.CORSConfig{AllowedOrigins: []string{"*"}}}
	ts := httptest.NewServer(server.New(apiCfg, svc).Router())
	t.Cleanup(ts.Close)
	return ts.URL
}

func run(t *testing.T, api string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--api", api}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestHabitsAddListToggle(t *testing.T) {
	api := startTestAPI(t)

	out, err := run(t, api, "habits", "add", "guitar", "--category", "creative")
	require.NoError(t, err)
	assert.Contains(t, out, `Added "guitar"`)

	id := strings.TrimSuffix(out[strings.LastIndex(out, "(")+1:], ")\n")

	out, err = run(t, api, "toggle", id)
	require.NoError(t, err)
	assert.Contains(t, out, "marked done")
	assert.Contains(t, out, "Streak 1")

	out, err = run(t, api, "habits", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "guitar")

	out, err = run(t, api, "summary", id)
	require.NoError(t, err)
	assert.Contains(t, out, "total days:     1")

	_, err = run(t, api, "habits", "rm", id)
	require.NoError(t, err)
	_, err = run(t, api, "summary", id)
	assert.Error(t, err)
}

func TestToggle_RejectsBadDate(t *testing.T) {
	api := startTestAPI(t)
	_, err := run(t, api, "toggle", "any", "01/02/2024")
	assert.Error(t, err)
}

func TestReflectAndQuote(t *testing.T) {
	api := startTestAPI(t)

	_, err := run(t, api, "reflect", "2024", "3", "A", "calm", "month")
	require.NoError(t, err)
	out, err := run(t, api, "reflect", "2024", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "A calm month")

	out, err = run(t, api, "quote", "--seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 5 motivations")
}

func TestActivityRange(t *testing.T) {
	api := startTestAPI(t)

	_, err := run(t, api, "habits", "add", "walk")
	require.NoError(t, err)

	out, err := run(t, api, "activity", "--start", "2024-02-27", "--end", "2024-03-01")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[2], "2024-02-29"))
	assert.True(t, strings.HasSuffix(lines[0], "0/1"))

	_, err = run(t, api, "activity", "--start", "2023-01-01", "--end", "2024-03-01")
	assert.Error(t, err)
}

func TestTrendAndHeatmap(t *testing.T) {
	api := startTestAPI(t)

	out, err := run(t, api, "trend", "--days", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "%"))

	out, err = run(t, api, "heatmap", "--year", "2023")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 13)
}
