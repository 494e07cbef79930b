package events

import (
	"time"

	"github.com/spec-kit/console-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	// EventAccountWritePartialFailure marks a dual-write sequence that
	// stopped between the identity provider and the document store,
	// leaving a visible divergence for out-of-band remediation.
	EventAccountWritePartialFailure EventType = "account_write_partial_failure"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AccountWritePartialFailurePayload records how far a dual-write got
// before it failed.
type AccountWritePartialFailurePayload struct {
	Operation      string      `json:"operation"`
	PrincipalID    string      `json:"principal_id,omitempty"`
	Email          string      `json:"email,omitempty"`
	Role           domain.Role `json:"role,omitempty"`
	CompletedSteps []string    `json:"completed_steps"`
	FailedStep     string      `json:"failed_step"`
	Cause          string      `json:"cause"`
}
