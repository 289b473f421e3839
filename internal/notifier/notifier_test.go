package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core).Sugar())

	require.NoError(t, n.Notify(context.Background(), "AAPL", "body"))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "report", entry.Message)
	assert.Equal(t, "AAPL", entry.ContextMap()["subject"])
}

type failing struct{ calls int }

func (f *failing) Notify(context.Context, string, string) error {
	f.calls++
	return errors.New("down")
}

func TestMulti(t *testing.T) {
	f := &failing{}
	core, logs := observer.New(zap.InfoLevel)
	m := Multi{f, NewLogNotifier(zap.New(core).Sugar())}

	err := m.Notify(context.Background(), "s", "t")
	assert.EqualError(t, err, "down")
	assert.Equal(t, 1, f.calls)
	assert.Equal(t, 1, logs.Len())
}

func TestWebhookNotifier_Delivers(t *testing.T) {
	var got webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, 0, zaptest.NewLogger(t).Sugar())
	require.NoError(t, n.Notify(context.Background(), "scan", "hello"))
	assert.Equal(t, webhookPayload{Subject: "scan", Text: "hello"}, got)
}

func TestWebhookNotifier_Retries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, 3, zaptest.NewLogger(t).Sugar())
	n.Backoff = time.Millisecond
	require.NoError(t, n.Notify(context.Background(), "scan", "hello"))
	assert.Equal(t, int32(3), calls.Load())
}

func TestWebhookNotifier_GivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, 2, zaptest.NewLogger(t).Sugar())
	n.Backoff = time.Millisecond
	err := n.Notify(context.Background(), "scan", "hello")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "all 3 attempts failed"))
	assert.Contains(t, err.Error(), "status 502")
	assert.Equal(t, int32(3), calls.Load())
}
