package usecase

import "time"

const (
	// DefaultLockTimeout bounds how long an operation waits for account locks.
	DefaultLockTimeout = 5 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// OutcomeSuccess is reported to a Recorder for operations that returned no error.
	OutcomeSuccess = "success"
)
