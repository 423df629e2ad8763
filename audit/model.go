package audit

import (
	"encoding/json"
	"time"
)

type AuditLog struct {
	Timestamp  time.Time       `json:"timestamp"`
	ActorID    string          `json:"actor_id"`
	Action     string          `json:"action"`
	PropertyID string          `json:"property_id"`
	TargetID   string          `json:"target_id"`
	Details    json.RawMessage `json:"details,omitempty"`
}
