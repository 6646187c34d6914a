package entity

import "errors"

var (
	// ErrNotFound is returned by every lookup or mutation that misses.
	ErrNotFound = errors.New("not found")

	// ErrCorruptState is returned when a persisted value under a known
	// key cannot be decoded. The wrapped message carries the key.
	ErrCorruptState = errors.New("corrupt state")
)
