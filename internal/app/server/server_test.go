package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"hrpulse/internal/platform/config"
	"hrpulse/internal/platform/seed"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig() config.Config {
	return config.Config{
		Addr:               "127.0.0.1:0",
		Environment:        "test",
		MaxBodyBytes:       1048576,
		RateLimitPerMinute: 100,
		Timezone:           "UTC",
		ShutdownTimeout:    time.Second,
		ReadHeaderTimeout:  time.Second,
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	app, err := New(testConfig())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx, ln) }()

	transport := &http.Transport{DisableKeepAlives: true}
	client := &http.Client{Transport: transport, Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "ok", string(body))
	transport.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestNewLoadsFixturesFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, seed.Embedded(), 0o600))

	cfg := testConfig()
	cfg.FixturesPath = path
	app, err := New(cfg)
	require.NoError(t, err)
	assert.NotNil(t, app.Router)

	cfg.FixturesPath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = New(cfg)
	assert.Error(t, err)
}

func TestNewRejectsUnknownTimezone(t *testing.T) {
	cfg := testConfig()
	cfg.Timezone = "Mars/Olympus"
	_, err := New(cfg)
	assert.Error(t, err)
}
