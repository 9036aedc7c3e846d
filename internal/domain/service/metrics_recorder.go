package service

import "time"

// OutcomeOK is the outcome of a successful operation.
const OutcomeOK = "ok"

// MetricsRecorder counts use case outcomes.
type MetricsRecorder interface {
	// ObserveOperation records one finished operation with its outcome error code, or OutcomeOK.
	ObserveOperation(operation, outcome string, elapsed time.Duration)

	// ObservePublishFailure records an entry event that could not be delivered.
	ObservePublishFailure(eventType EntryEventType)
}
