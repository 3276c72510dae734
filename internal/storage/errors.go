package storage

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotConnected is returned by the durable adapter when no connection has
// been established yet. The facade treats it like any other durable failure
// and falls back.
var ErrNotConnected = errors.New("document database not connected")

// IsConnectivityError reports whether an error points at the backend being
// unreachable rather than at the operation itself.
func IsConnectivityError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotConnected) {
		return true
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return true
	}

	// Gateways and proxies sometimes flatten driver errors into strings.
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "connection refused") ||
		strings.Contains(lower, "no reachable servers") ||
		strings.Contains(lower, "server selection error")
}

// IsDuplicateKeyError reports whether a write hit a unique index.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if mongo.IsDuplicateKeyError(err) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate key")
}
