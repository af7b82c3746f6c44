package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mlb-companion/internal/metrics"
)

type stubRefresher struct {
	mu     sync.Mutex
	err    error
	calls  int
	tokens []string
}

func (s *stubRefresher) Refresh(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.tokens = append(s.tokens, token)
	return s.err
}

func (s *stubRefresher) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition never became true")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestStartRefreshesImmediately(t *testing.T) {
	refresher := &stubRefresher{}
	p := New(refresher, nil, metrics.NewRecorder(), time.Hour, "service-token")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	waitFor(t, func() bool { return refresher.callCount() >= 1 })

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
}

func TestRefreshSendsConfiguredToken(t *testing.T) {
	refresher := &stubRefresher{}
	p := New(refresher, nil, nil, time.Hour, "service-token")

	p.refreshOnce(context.Background())

	refresher.mu.Lock()
	defer refresher.mu.Unlock()
	if len(refresher.tokens) != 1 || refresher.tokens[0] != "service-token" {
		t.Fatalf("tokens sent = %q", refresher.tokens)
	}
}

func TestStatusTracksSuccess(t *testing.T) {
	refresher := &stubRefresher{}
	p := New(refresher, nil, nil, time.Hour, "service-token")

	p.refreshOnce(context.Background())

	status := p.Status()
	if !status.IsReady() {
		t.Fatalf("status not ready: %+v", status)
	}
	if status.ConsecutiveFailures != 0 {
		t.Errorf("failures = %d", status.ConsecutiveFailures)
	}
	if status.LastSuccess.IsZero() {
		t.Error("last success not recorded")
	}
}

func TestStatusTracksConsecutiveFailures(t *testing.T) {
	refresher := &stubRefresher{err: errors.New("backend down")}
	p := New(refresher, nil, nil, time.Hour, "service-token")

	for i := 0; i < 3; i++ {
		p.refreshOnce(context.Background())
	}

	status := p.Status()
	if status.ConsecutiveFailures != 3 {
		t.Errorf("failures = %d", status.ConsecutiveFailures)
	}
	if status.LastError == "" {
		t.Error("last error not recorded")
	}
	if status.IsReady() {
		t.Error("repeatedly failing poller must not be ready")
	}
}

func TestRecoveryResetsFailureCount(t *testing.T) {
	refresher := &stubRefresher{err: errors.New("backend down")}
	p := New(refresher, nil, nil, time.Hour, "service-token")

	p.refreshOnce(context.Background())
	refresher.err = nil
	p.refreshOnce(context.Background())

	status := p.Status()
	if status.ConsecutiveFailures != 0 {
		t.Errorf("failures = %d after recovery", status.ConsecutiveFailures)
	}
	if !status.IsReady() {
		t.Error("recovered poller must be ready")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	p := New(&stubRefresher{}, nil, nil, time.Hour, "service-token")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("first stop: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}

func TestDefaultIntervalApplies(t *testing.T) {
	p := New(&stubRefresher{}, nil, nil, 0, "service-token")
	if p.interval != defaultInterval {
		t.Fatalf("interval = %v", p.interval)
	}
}
