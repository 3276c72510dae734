package storage

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"gofolio/internal/config"
	"gofolio/internal/metrics"
)

// ConnState mirrors the driver-level connection lifecycle.
type ConnState int32

const (
	StateUninitialized ConnState = iota
	StateConnecting
	StateConnected
	StateDisconnecting
	StateDisconnected
)

func (s ConnState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateDisconnecting:
		return "disconnecting"
	case StateDisconnected:
		return "disconnected"
	default:
		return "uninitialized"
	}
}

// StatusFallback is the status string reported while the fallback flag is set.
const StatusFallback = "using fallback storage"

// StatusReport is the shape the health endpoint serves.
type StatusReport struct {
	Status         string `json:"status"`
	UsingFallback  bool   `json:"usingFallback"`
	ConnectionTime string `json:"connectionTime"`
}

// ConnManager owns the document-database connection lifecycle. Connect never
// returns an error: exhausting the retry budget switches the process into
// fallback mode instead, and the HTTP server keeps serving from memory.
type ConnManager struct {
	cfg    config.MongoConfig
	logger *slog.Logger

	// dial is swappable in tests; the default dials and pings the real backend.
	dial func(ctx context.Context) (*mongo.Client, error)

	mu            sync.RWMutex
	client        *mongo.Client
	state         ConnState
	usingFallback bool
	connectedAt   time.Time
}

// NewConnManager builds a manager for the configured backend. No I/O happens
// until Connect is called.
func NewConnManager(cfg config.MongoConfig, logger *slog.Logger) *ConnManager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &ConnManager{
		cfg:    cfg,
		logger: logger,
		state:  StateUninitialized,
	}
	m.dial = m.defaultDial
	return m
}

func (m *ConnManager) defaultDial(ctx context.Context) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(m.cfg.URI).
		SetMaxPoolSize(m.cfg.MaxPoolSize).
		SetServerSelectionTimeout(m.cfg.ConnectTimeout()).
		SetServerMonitor(m.serverMonitor())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to %q: %w", m.cfg.Database, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping %q: %w", m.cfg.Database, err)
	}
	return client, nil
}

// serverMonitor observes the driver's own reconnect handling through its
// heartbeat events. The fallback flag is untouched here; only a successful
// Connect clears it.
func (m *ConnManager) serverMonitor() *event.ServerMonitor {
	return &event.ServerMonitor{
		ServerHeartbeatSucceeded: func(*event.ServerHeartbeatSucceededEvent) {
			m.observeHeartbeat(true)
		},
		ServerHeartbeatFailed: func(*event.ServerHeartbeatFailedEvent) {
			m.observeHeartbeat(false)
		},
	}
}

func (m *ConnManager) observeHeartbeat(ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Connect owns the initial transition; heartbeats only toggle an
	// established connection between connected and disconnected.
	if m.state != StateConnected && m.state != StateDisconnected {
		return
	}
	if ok && m.state != StateConnected {
		m.state = StateConnected
		m.logger.Info("document database connection restored")
	}
	if !ok && m.state != StateDisconnected {
		m.state = StateDisconnected
		m.logger.Warn("document database connection lost, serving from memory until it returns")
	}
	metrics.SetConnectionUp(m.state == StateConnected)
}

// Connect attempts the connection with a bounded retry budget, each attempt
// raced against the configured timeout. Failure is a mode switch, not an
// error: the fallback flag is set and the caller proceeds on in-memory
// storage. A later successful Connect clears the flag.
func (m *ConnManager) Connect(ctx context.Context) {
	if m.cfg.URI == "" {
		m.enterFallback("no connection string configured, using in-memory storage")
		return
	}

	m.setState(StateConnecting)

	for attempt := 1; attempt <= m.cfg.MaxConnectAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, m.cfg.ConnectTimeout())
		client, err := m.dial(attemptCtx)
		cancel()

		if err == nil {
			m.mu.Lock()
			m.client = client
			m.state = StateConnected
			m.usingFallback = false
			m.connectedAt = time.Now().UTC()
			m.mu.Unlock()
			metrics.SetConnectionUp(true)
			m.logger.Info("document database connected",
				slog.String("database", m.cfg.Database),
				slog.Int("attempt", attempt),
			)
			return
		}

		m.logger.Warn("document database connection attempt failed",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", m.cfg.MaxConnectAttempts),
			slog.Any("error", err),
		)

		if attempt < m.cfg.MaxConnectAttempts {
			backoff := time.Duration(attempt) * m.cfg.RetryBaseDelay()
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				m.enterFallback("connection attempt canceled, using in-memory storage")
				return
			}
		}
	}

	m.enterFallback("document database unreachable, using in-memory storage")
}

func (m *ConnManager) enterFallback(reason string) {
	m.mu.Lock()
	m.state = StateDisconnected
	m.usingFallback = true
	m.mu.Unlock()
	metrics.SetConnectionUp(false)
	m.logger.Warn(reason)
}

func (m *ConnManager) setState(s ConnState) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// Status returns the live connection state, or the fallback string once the
// retry budget is spent.
func (m *ConnManager) Status() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.usingFallback {
		return StatusFallback
	}
	return m.state.String()
}

// UsingFallback reports whether the manager has given up on the backend for
// this session.
func (m *ConnManager) UsingFallback() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.usingFallback
}

// HasActiveConnection is true only while the state is exactly connected.
func (m *ConnManager) HasActiveConnection() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == StateConnected
}

// Report builds the health-endpoint payload.
func (m *ConnManager) Report() StatusReport {
	m.mu.RLock()
	defer m.mu.RUnlock()

	report := StatusReport{
		UsingFallback: m.usingFallback,
	}
	if m.usingFallback {
		report.Status = StatusFallback
	} else {
		report.Status = m.state.String()
	}
	if !m.connectedAt.IsZero() {
		report.ConnectionTime = m.connectedAt.Format(time.RFC3339)
	}
	return report
}

// Database returns a handle to the configured database, or nil before a
// connection is established.
func (m *ConnManager) Database() *mongo.Database {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.client == nil {
		return nil
	}
	return m.client.Database(m.cfg.Database)
}

// Close disconnects gracefully. In fallback mode there is nothing to close.
func (m *ConnManager) Close(ctx context.Context) error {
	m.mu.Lock()
	client := m.client
	if client == nil {
		m.mu.Unlock()
		return nil
	}
	m.client = nil
	m.state = StateDisconnecting
	m.mu.Unlock()

	err := client.Disconnect(ctx)

	m.setState(StateDisconnected)
	metrics.SetConnectionUp(false)
	if err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	return nil
}
