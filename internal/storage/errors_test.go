package storage

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsConnectivityError(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{ErrNotConnected, true},
		{fmt.Errorf("dial database: %w", ErrNotConnected), true},
		{errors.New("dial tcp 127.0.0.1:27017: connection refused"), true},
		{errors.New("server selection error: context deadline exceeded"), true},
		{errors.New("no reachable servers"), true},
		{errors.New("document validation failed"), false},
	}
	for _, tc := range cases {
		if got := IsConnectivityError(tc.err); got != tc.want {
			t.Errorf("IsConnectivityError(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestIsDuplicateKeyError(t *testing.T) {
	if IsDuplicateKeyError(nil) {
		t.Error("nil is not a duplicate key error")
	}
	if !IsDuplicateKeyError(errors.New("E11000 duplicate key error collection: gofolio.users")) {
		t.Error("flattened duplicate key message not recognized")
	}
	if IsDuplicateKeyError(errors.New("connection refused")) {
		t.Error("connectivity error misclassified as duplicate key")
	}
}
