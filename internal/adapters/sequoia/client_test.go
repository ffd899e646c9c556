package sequoia

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuzawa-san/wawona/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &Client{BaseURL: server.URL, HTTPClient: server.Client()}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestClientSendsFixedAndTokenHeaders(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, pendingTasksPath, r.URL.Path)
		assert.Equal(t, "tok-1", r.Header.Get("token"))
		assert.Equal(t, "admin", r.Header.Get("agent"))
		assert.Equal(t, "4", r.Header.Get("devicetype"))
		assert.Equal(t, "https://login.sequoia.com", r.Header.Get("origin"))
		assert.Equal(t, "application/json;charset=UTF-8", r.Header.Get("content-type"))
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"tasks":[{"taskId":"t-1"},{"taskId":42}]}}`)
	})

	ids, err := client.PendingTasks(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t-1", "42"}, ids)
}

func TestClientUnauthorizedMatchesSentinel(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, status, `{"success":false,"message":"expired"}`)
		})

		_, err := client.PendingTasks(context.Background(), "stale")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)

		var transportErr *domain.TransportError
		require.True(t, errors.As(err, &transportErr))
		assert.Equal(t, status, transportErr.StatusCode)
	}
}

func TestClientSurfacesBadRequestMessage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"success":false,"message":"Email not registered"}`)
	})

	err := client.VerifyIdentity(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)

	var transportErr *domain.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, http.StatusBadRequest, transportErr.StatusCode)
	assert.Equal(t, "Email not registered", transportErr.Message)
	assert.Contains(t, err.Error(), "Email not registered")
}

func TestClientServerErrorWithoutJSONBody(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := client.Locations(context.Background(), "tok")
	var transportErr *domain.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, http.StatusBadGateway, transportErr.StatusCode)
	assert.Empty(t, transportErr.Message)
}

func TestClientMalformedJSONIsTransportError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":`)
	})

	_, err := client.Locations(context.Background(), "tok")
	var transportErr *domain.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, http.StatusOK, transportErr.StatusCode)
	assert.Error(t, transportErr.Err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

func TestClientMissingDataIsTransportError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":null}`)
	})

	_, err := client.Locations(context.Background(), "tok")
	var transportErr *domain.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Contains(t, err.Error(), "missing data")
}

func TestClientTimesOutWithoutCallerDeadline(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"tasks":[]}}`)
	}))
	t.Cleanup(server.Close)

	client := &Client{BaseURL: server.URL, HTTPClient: server.Client(), RequestTimeout: 20 * time.Millisecond}

	_, err := client.PendingTasks(context.Background(), "tok")
	var transportErr *domain.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClientRejectsInvalidBaseURL(t *testing.T) {
	t.Parallel()

	for _, base := range []string{"", "ftp://example.com", "https://"} {
		client := &Client{BaseURL: base}
		_, err := client.PendingTasks(context.Background(), "tok")
		require.Error(t, err, base)
	}
}

func TestClientTracesRedactedExchange(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"userDetails":{"apiToken":"sekret-token","oktaStatus":"SUCCESS"}}}`)
	})
	client.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := client.Login(context.Background(), "ada@example.com", "hunter2")
	require.NoError(t, err)

	out := logs.String()
	assert.Contains(t, out, "api request")
	assert.Contains(t, out, "api response")
	assert.Contains(t, out, "ada@example.com")
	assert.Contains(t, out, redacted)
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "sekret-token")
}

func TestClientSkipsTracingAboveDebug(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"tasks":[]}}`)
	})
	client.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo}))

	_, err := client.PendingTasks(context.Background(), "tok")
	require.NoError(t, err)
	assert.Empty(t, logs.String())
}

func TestRedactJSON(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", redactJSON(nil))
	assert.Equal(t, "<8 bytes>", redactJSON([]byte("not json")))
	assert.JSONEq(t,
		`{"email":"a@b.c","password":"[REDACTED]","nested":[{"passCode":"[REDACTED]","ok":1}]}`,
		redactJSON([]byte(`{"email":"a@b.c","password":"pw","nested":[{"passCode":"123456","ok":1}]}`)),
	)
}
