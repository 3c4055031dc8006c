package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger implements the Logger interface for testing
type MockLogger struct {
	mu   sync.Mutex
	logs []LogEntry
}

type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

func (m *MockLogger) add(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, LogEntry{Level: level, Message: msg, Fields: fields})
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) { m.add("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields map[string]interface{})  { m.add("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields map[string]interface{})  { m.add("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields map[string]interface{}) { m.add("ERROR", msg, fields) }

func TestRequestLoggingMiddleware_LogsRequestMethodAndPath(t *testing.T) {
	logger := &MockLogger{}
	handler := RequestLoggingMiddleware(logger)(okHandler())

	req := httptest.NewRequest("POST", "/render?x=1", nil)
	req.RemoteAddr = "192.168.1.1:1234"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, logger.logs, 2)

	startLog := logger.logs[0]
	assert.Equal(t, "INFO", startLog.Level)
	assert.Equal(t, "Request started", startLog.Message)
	assert.Equal(t, "POST", startLog.Fields["method"])
	assert.Equal(t, "/render", startLog.Fields["path"])
	assert.Equal(t, "192.168.1.1", startLog.Fields["remote_ip"])

	completeLog := logger.logs[1]
	assert.Equal(t, "Request completed", completeLog.Message)
	assert.Equal(t, http.StatusOK, completeLog.Fields["status"])
}

func TestRequestLoggingMiddleware_LogsResponseStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		responseStatus int
		expectedLogs   int
		expectError    bool
	}{
		{"200 OK", http.StatusOK, 2, false},
		{"404 Not Found", http.StatusNotFound, 2, false},
		{"500 Internal Server Error", http.StatusInternalServerError, 3, true},
		{"503 Service Unavailable", http.StatusServiceUnavailable, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &MockLogger{}
			handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.responseStatus)
			}))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))

			require.Len(t, logger.logs, tt.expectedLogs)
			assert.Equal(t, tt.responseStatus, logger.logs[1].Fields["status"])
			if tt.expectError {
				assert.Equal(t, "ERROR", logger.logs[2].Level)
				assert.Contains(t, logger.logs[2].Message, "server error")
			}
		})
	}
}

func TestRequestLoggingMiddleware_LogsRequestDuration(t *testing.T) {
	logger := &MockLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))

	durationMs := logger.logs[1].Fields["duration_ms"].(int64)
	assert.GreaterOrEqual(t, durationMs, int64(50))
}

func TestRequestLoggingMiddleware_RequestIDInContextAndHeader(t *testing.T) {
	logger := &MockLogger{}
	var seen string
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	requestID := logger.logs[0].Fields["request_id"].(string)
	assert.Len(t, requestID, 36)
	assert.Equal(t, requestID, logger.logs[1].Fields["request_id"])
	assert.Equal(t, requestID, seen)
	assert.Equal(t, requestID, rec.Header().Get(RequestIDHeader))
}

func TestRequestLoggingMiddleware_ReusesValidIncomingID(t *testing.T) {
	logger := &MockLogger{}
	handler := RequestLoggingMiddleware(logger)(okHandler())
	incoming := "6f1c1d5e-4d1b-4b8e-9a7e-2f8d8f3b9c10"

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, incoming, rec.Header().Get(RequestIDHeader))

	req = httptest.NewRequest("GET", "/health", nil)
	req.Header.Set(RequestIDHeader, "not a uuid")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEqual(t, "not a uuid", rec.Header().Get(RequestIDHeader))
}

func TestResponseWriter_CapturesStatusCode(t *testing.T) {
	rw := &responseWriter{
		ResponseWriter: httptest.NewRecorder(),
		statusCode:     http.StatusOK,
	}

	rw.WriteHeader(http.StatusCreated)
	assert.Equal(t, http.StatusCreated, rw.statusCode)
	assert.True(t, rw.written)

	rw.WriteHeader(http.StatusBadRequest)
	assert.Equal(t, http.StatusCreated, rw.statusCode)
}

func TestResponseWriter_DefaultsTo200(t *testing.T) {
	rw := &responseWriter{
		ResponseWriter: httptest.NewRecorder(),
		statusCode:     http.StatusOK,
	}

	_, _ = rw.Write([]byte("test"))
	assert.Equal(t, http.StatusOK, rw.statusCode)
	assert.True(t, rw.written)
}

func TestLoggingRoundTripper(t *testing.T) {
	var forwarded string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		forwarded = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	logger := &MockLogger{}
	client := &http.Client{Transport: &LoggingRoundTripper{Logger: logger}}

	req, err := http.NewRequestWithContext(WithRequestID(context.Background(), "req-123"), "GET", upstream.URL, nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "req-123", forwarded)
	require.Len(t, logger.logs, 2)
	assert.Equal(t, "Outgoing HTTP response", logger.logs[1].Message)
	assert.Equal(t, http.StatusOK, logger.logs[1].Fields["status"])
}

func TestLoggingRoundTripper_Error(t *testing.T) {
	logger := &MockLogger{}
	client := &http.Client{Transport: &LoggingRoundTripper{Logger: logger}}

	_, err := client.Get("http://127.0.0.1:1/")

	assert.Error(t, err)
	assert.Equal(t, "ERROR", logger.logs[len(logger.logs)-1].Level)
}
