package service

import (
	"context"
	"strings"
	"time"

	helper "ksms_backend/internals/helpers"
)

// Call is the state of one receiver's active call.
type Call struct {
	ReceiverID string    `json:"receiver_id"`
	CallerID   string    `json:"caller_id"`
	StartedAt  time.Time `json:"started_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Registry tracks at most one active call per receiver. Entries expire after the TTL.
type Registry interface {
	Initiate(ctx context.Context, receiverID, callerID string) (*Call, error)
	End(ctx context.Context, receiverID string) error
	Active(ctx context.Context, receiverID string) (*Call, error)
}

const DefaultTTL = time.Hour

func errBusy(receiverID string) error {
	return helper.Conflict("Receiver %s is already in a call", receiverID)
}

func errNoCall() error { return helper.NotFound("No active call found") }

func checkIDs(receiverID, callerID string) error {
	switch {
	case strings.TrimSpace(receiverID) == "":
		return helper.InvalidField("receiver_id", "is required")
	case strings.TrimSpace(callerID) == "":
		return helper.InvalidField("caller_id", "is required")
	case receiverID == callerID:
		return helper.InvalidField("caller_id", "cannot call yourself")
	}
	return nil
}
