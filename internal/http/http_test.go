// Package http provides the HTTP API server and its middleware stack.
package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	passphraseHTTP "github.com/allisson/passgen/internal/passphrase/http"
	passphraseUsecase "github.com/allisson/passgen/internal/passphrase/usecase"
	passwordHTTP "github.com/allisson/passgen/internal/password/http"
	passwordService "github.com/allisson/passgen/internal/password/service"
	passwordUsecase "github.com/allisson/passgen/internal/password/usecase"

	"github.com/allisson/passgen/internal/passphrase/service"
	wordlistUsecase "github.com/allisson/passgen/internal/wordlist/usecase"
)

// TestMain sets Gin to test mode and checks for goroutine leaks.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	goleak.VerifyTestMain(m)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestHandlers builds the full handler set backed by in-memory sources.
func createTestHandlers() Handlers {
	logger := testLogger()

	resolver := wordlistUsecase.NewWordSourceResolver(nil, "", logger)
	passphraseUC := passphraseUsecase.NewPassphraseUseCase(
		resolver,
		service.NewSelector(),
		service.NewFormatter(),
		logger,
	)
	passwordUC := passwordUsecase.NewPasswordUseCase(passwordService.NewGenerator(), logger)

	return Handlers{
		Passphrase: passphraseHTTP.NewPassphraseHandler(passphraseUC, logger),
		Password:   passwordHTTP.NewPasswordHandler(passwordUC, logger),
	}
}

func createTestServer(opts Options) *Server {
	return NewServer(nil, "localhost", 8080, testLogger(), createTestHandlers(), opts)
}

func TestHealthHandler(t *testing.T) {
	server := createTestServer(Options{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response["status"])
}

func TestReadinessHandler_NilDB(t *testing.T) {
	server := createTestServer(Options{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	server.GetHandler().ServeHTTP(w, req)

	// Without a configured database there is nothing to check.
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_GeneratePassphraseRoute(t *testing.T) {
	server := createTestServer(Options{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/passphrases", strings.NewReader(`{"word_count":3}`))
	req.Header.Set("Content-Type", "application/json")
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Passphrases []string `json:"passphrases"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Passphrases, 1)
	assert.Len(t, strings.Split(response.Passphrases[0], "-"), 3)
}

func TestServer_GeneratePasswordRoute(t *testing.T) {
	server := createTestServer(Options{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/passwords", strings.NewReader(`{"length":20}`))
	req.Header.Set("Content-Type", "application/json")
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Passwords []string `json:"passwords"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Passwords, 1)
	assert.Len(t, response.Passwords[0], 20)
}

func TestServer_WordListRoutesNotMountedWithoutHandler(t *testing.T) {
	server := createTestServer(Options{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/word-lists", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_RequestIDHeader(t *testing.T) {
	server := createTestServer(Options{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestRateLimitMiddleware(t *testing.T) {
	server := createTestServer(Options{
		RateLimitEnabled:        true,
		RateLimitRequestsPerSec: 1,
		RateLimitBurst:          2,
	})

	statuses := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		server.GetHandler().ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	// Burst of 2 allowed, the rest rejected.
	assert.Equal(t, http.StatusOK, statuses[0])
	assert.Equal(t, http.StatusOK, statuses[1])
	assert.Equal(t, http.StatusTooManyRequests, statuses[2])
	assert.Equal(t, http.StatusTooManyRequests, statuses[3])
}

func TestRateLimitMiddleware_PerClient(t *testing.T) {
	server := createTestServer(Options{
		RateLimitEnabled:        true,
		RateLimitRequestsPerSec: 1,
		RateLimitBurst:          1,
	})

	request := func(addr string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = addr
		server.GetHandler().ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, request("10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, request("10.0.0.1:1234"))
	// A different client has its own bucket.
	assert.Equal(t, http.StatusOK, request("10.0.0.2:1234"))
}

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, parseOrigins(""))
	assert.Equal(t, []string{"https://a.example"}, parseOrigins("https://a.example"))
	assert.Equal(t,
		[]string{"https://a.example", "https://b.example"},
		parseOrigins(" https://a.example , https://b.example ,"),
	)
}

func TestCreateCORSMiddleware(t *testing.T) {
	logger := testLogger()

	assert.Nil(t, createCORSMiddleware(false, "https://a.example", logger))
	assert.Nil(t, createCORSMiddleware(true, "", logger))
	assert.NotNil(t, createCORSMiddleware(true, "https://a.example", logger))
}

func TestCORSHeaders(t *testing.T) {
	server := NewServer(nil, "localhost", 8080, testLogger(), createTestHandlers(), Options{
		CORSEnabled:      true,
		CORSAllowOrigins: "https://app.example",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://app.example")
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
}
