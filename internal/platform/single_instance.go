// Package platform holds the small OS-facing helpers RoundClock needs.
package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another RoundClock process holds the lock.
var ErrAlreadyRunning = errors.New("roundclock is already running")

// InstanceGuard holds the single-instance lock for the lifetime of the
// process. The lock is a loopback listener on a port derived from the
// application name, so it disappears with the process even on a crash.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance binds the deterministic lock port, failing when
// another instance already owns it.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", lockPort(appName)))
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	return &InstanceGuard{listener: listener}, nil
}

// Release frees the lock early; otherwise process exit releases it.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

// lockPort spreads application names over the upper dynamic port range.
func lockPort(appName string) int {
	const (
		base = 41000
		span = 8000
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	return base + int(hash.Sum32()%span)
}
