package form

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dongycare/checker-backend/internal/entity"
	pkgretry "github.com/dongycare/checker-backend/internal/pkg/retry"
)

type attemptLog struct {
	mu         sync.Mutex
	times      []time.Time
	requestIDs []string
}

func (l *attemptLog) record(r *http.Request) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.times = append(l.times, time.Now())
	l.requestIDs = append(l.requestIDs, r.Header.Get("X-Request-ID"))
	return len(l.times)
}

func (l *attemptLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.times)
}

func fastRetry() *pkgretry.Config {
	return &pkgretry.Config{Attempts: 3, Delay: 10 * time.Millisecond, MaxDelay: 40 * time.Millisecond}
}

func testRequest() *entity.AnalyzeRequest {
	return &entity.AnalyzeRequest{
		SystemPrompt: "prompt",
		ContentParts: []entity.Part{{Text: "Triệu chứng của tôi là: tóc rụng"}},
	}
}

func TestSendBacksOffAndRecovers(t *testing.T) {
	var log attemptLog
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if log.record(r) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":{"ketLuan":"ok"}}`))
	}))
	defer srv.Close()

	sender := NewHTTPSender(srv.URL, &pkgretry.Config{Attempts: 3, Delay: time.Second, MaxDelay: 8 * time.Second})

	raw, err := sender.Send(context.Background(), testRequest())
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"results":{"ketLuan":"ok"}}` {
		t.Errorf("unexpected body: %s", raw)
	}

	if log.count() != 3 {
		t.Fatalf("expected 3 attempts, got %d", log.count())
	}

	// Delay doubles between attempts: >=1s before the second try,
	// >=2s before the third.
	if gap := log.times[1].Sub(log.times[0]); gap < time.Second {
		t.Errorf("first backoff too short: %v", gap)
	}
	if gap := log.times[2].Sub(log.times[1]); gap < 2*time.Second {
		t.Errorf("second backoff too short: %v", gap)
	}

	for i, id := range log.requestIDs {
		if id == "" || id != log.requestIDs[0] {
			t.Errorf("attempt %d has request id %q, want %q", i+1, id, log.requestIDs[0])
		}
	}
}

func TestSendExhaustsOnServerError(t *testing.T) {
	var log attemptLog
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.record(r)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	sender := NewHTTPSender(srv.URL, fastRetry())

	_, err := sender.Send(context.Background(), testRequest())
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if transportErr.Status != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", transportErr.Status)
	}
	if log.count() != 3 {
		t.Errorf("expected 3 attempts, got %d", log.count())
	}
}

func TestSendSurfacesRelayEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"API Key not configured."}`))
	}))
	defer srv.Close()

	sender := NewHTTPSender(srv.URL, fastRetry())

	_, err := sender.Send(context.Background(), testRequest())
	var relayErr *RelayError
	if !errors.As(err, &relayErr) {
		t.Fatalf("expected RelayError, got %v", err)
	}
	if relayErr.Message != "API Key not configured." {
		t.Errorf("unexpected message: %q", relayErr.Message)
	}
}

func TestSendDoesNotRetryClientErrors(t *testing.T) {
	var log attemptLog
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.record(r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid request body"}`))
	}))
	defer srv.Close()

	sender := NewHTTPSender(srv.URL, fastRetry())

	_, err := sender.Send(context.Background(), testRequest())
	var relayErr *RelayError
	if !errors.As(err, &relayErr) {
		t.Fatalf("expected RelayError, got %v", err)
	}
	if log.count() != 1 {
		t.Errorf("client error was retried: %d attempts", log.count())
	}
}

func TestSendRejectsMalformedSuccess(t *testing.T) {
	var log attemptLog
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.record(r)
		w.Write([]byte("definitely not json"))
	}))
	defer srv.Close()

	sender := NewHTTPSender(srv.URL, fastRetry())

	_, err := sender.Send(context.Background(), testRequest())
	if !errors.Is(err, entity.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
	if log.count() != 1 {
		t.Errorf("malformed success was retried: %d attempts", log.count())
	}
}

func TestSendRetriesNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	sender := NewHTTPSender(srv.URL, fastRetry())

	start := time.Now()
	_, err := sender.Send(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected an error against a closed server")
	}
	// 3 attempts with 10ms+20ms backoff
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("network failure not retried, finished in %v", elapsed)
	}
}
