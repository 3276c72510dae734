package storage

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gofolio/internal/config"
)

func testMongoConfig() config.MongoConfig {
	return config.MongoConfig{
		URI:                "mongodb://127.0.0.1:1",
		Database:           "gofolio_test",
		MaxPoolSize:        5,
		ConnectTimeoutMS:   500,
		MaxConnectAttempts: 2,
		RetryBaseDelayMS:   50,
	}
}

// lazyClient builds a driver client without touching the network; the driver
// only dials on first use.
func lazyClient(t *testing.T) *mongo.Client {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:27017"))
	if err != nil {
		t.Fatalf("build client: %v", err)
	}
	return client
}

func TestConnManagerEmptyURIMeansFallback(t *testing.T) {
	cfg := testMongoConfig()
	cfg.URI = ""
	m := NewConnManager(cfg, slog.Default())
	m.dial = func(ctx context.Context) (*mongo.Client, error) {
		t.Fatal("dial must not be called without a connection string")
		return nil, nil
	}

	m.Connect(context.Background())

	if !m.UsingFallback() {
		t.Fatal("expected fallback mode")
	}
	if m.HasActiveConnection() {
		t.Fatal("no connection should be active")
	}
	if m.Status() != StatusFallback {
		t.Fatalf("status = %q", m.Status())
	}
}

func TestConnManagerFallbackAfterRetriesExhausted(t *testing.T) {
	m := NewConnManager(testMongoConfig(), slog.Default())
	dials := 0
	m.dial = func(ctx context.Context) (*mongo.Client, error) {
		dials++
		return nil, errors.New("connection refused")
	}

	start := time.Now()
	m.Connect(context.Background())
	elapsed := time.Since(start)

	if dials != 2 {
		t.Fatalf("expected 2 attempts, got %d", dials)
	}
	if !m.UsingFallback() {
		t.Fatal("expected fallback mode after exhausting retries")
	}
	// two fast failures plus one 50ms backoff, with generous slack
	if elapsed > 2*time.Second {
		t.Fatalf("Connect took %v, retry budget is not bounded", elapsed)
	}

	report := m.Report()
	if report.Status != StatusFallback || !report.UsingFallback {
		t.Fatalf("report = %+v", report)
	}
	if report.ConnectionTime != "" {
		t.Fatalf("no connection was made, report carries time %q", report.ConnectionTime)
	}
}

func TestConnManagerAttemptsAreBoundedByTimeout(t *testing.T) {
	m := NewConnManager(testMongoConfig(), slog.Default())
	m.dial = func(ctx context.Context) (*mongo.Client, error) {
		// simulate a hung dial that only the per-attempt deadline stops
		<-ctx.Done()
		return nil, ctx.Err()
	}

	start := time.Now()
	m.Connect(context.Background())
	elapsed := time.Since(start)

	// 2 attempts x 500ms timeout + 50ms backoff, with slack for a slow runner
	if elapsed > 3*time.Second {
		t.Fatalf("Connect took %v, attempts are not cut off by the timeout", elapsed)
	}
	if !m.UsingFallback() {
		t.Fatal("expected fallback mode")
	}
}

func TestConnManagerSuccessfulConnectClearsFallback(t *testing.T) {
	m := NewConnManager(testMongoConfig(), slog.Default())
	m.dial = func(ctx context.Context) (*mongo.Client, error) {
		return nil, errors.New("connection refused")
	}
	m.Connect(context.Background())
	if !m.UsingFallback() {
		t.Fatal("expected fallback mode after the first Connect")
	}

	m.dial = func(ctx context.Context) (*mongo.Client, error) {
		return lazyClient(t), nil
	}
	m.Connect(context.Background())

	if m.UsingFallback() {
		t.Fatal("successful reconnect must clear the fallback flag")
	}
	if !m.HasActiveConnection() {
		t.Fatal("expected an active connection")
	}
	if m.Status() != "connected" {
		t.Fatalf("status = %q", m.Status())
	}
	if m.Database() == nil {
		t.Fatal("expected a database handle")
	}

	report := m.Report()
	if report.ConnectionTime == "" {
		t.Fatal("report should carry the connection time")
	}
	if _, err := time.Parse(time.RFC3339, report.ConnectionTime); err != nil {
		t.Fatalf("connection time %q is not RFC3339: %v", report.ConnectionTime, err)
	}

	if err := m.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
	if m.HasActiveConnection() {
		t.Fatal("connection still active after Close")
	}
	if m.Database() != nil {
		t.Fatal("database handle survives Close")
	}
}

func TestConnManagerConnectHonorsCancellation(t *testing.T) {
	cfg := testMongoConfig()
	cfg.RetryBaseDelayMS = 60_000
	m := NewConnManager(cfg, slog.Default())
	m.dial = func(ctx context.Context) (*mongo.Client, error) {
		return nil, errors.New("connection refused")
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	m.Connect(ctx)
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("Connect ignored cancellation, took %v", elapsed)
	}
	if !m.UsingFallback() {
		t.Fatal("canceled Connect must leave the process in fallback mode")
	}
}

func TestConnManagerHeartbeatTogglesState(t *testing.T) {
	m := NewConnManager(testMongoConfig(), slog.Default())
	m.dial = func(ctx context.Context) (*mongo.Client, error) {
		return lazyClient(t), nil
	}
	m.Connect(context.Background())

	m.observeHeartbeat(false)
	if m.HasActiveConnection() {
		t.Fatal("failed heartbeat should mark the connection down")
	}
	if m.UsingFallback() {
		t.Fatal("heartbeat loss must not set the fallback flag")
	}
	if m.Status() != "disconnected" {
		t.Fatalf("status = %q", m.Status())
	}

	m.observeHeartbeat(true)
	if !m.HasActiveConnection() {
		t.Fatal("recovered heartbeat should mark the connection up")
	}
	if m.Status() != "connected" {
		t.Fatalf("status = %q", m.Status())
	}
}

func TestConnManagerHeartbeatIgnoredBeforeFirstConnect(t *testing.T) {
	m := NewConnManager(testMongoConfig(), slog.Default())

	m.observeHeartbeat(true)
	if m.HasActiveConnection() {
		t.Fatal("heartbeat must not establish a connection Connect never made")
	}
	if m.Status() != "uninitialized" {
		t.Fatalf("status = %q", m.Status())
	}
}

func TestConnStateString(t *testing.T) {
	cases := map[ConnState]string{
		StateUninitialized: "uninitialized",
		StateConnecting:    "connecting",
		StateConnected:     "connected",
		StateDisconnecting: "disconnecting",
		StateDisconnected:  "disconnected",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("ConnState(%d).String() = %q, want %q", state, got, want)
		}
	}
}
