package model

import (
	"time"
)

type NotificationSeverity string

const (
	SeveritySuccess NotificationSeverity = "success"
	SeverityError   NotificationSeverity = "error"
	SeverityInfo    NotificationSeverity = "info"
)

// Notification is an ephemeral user-facing message. It is never persisted;
// each one self-removes from the queue after its display duration.
type Notification struct {
	ID        string               `json:"id"`
	Message   string               `json:"message"`
	Severity  NotificationSeverity `json:"severity"`
	CreatedAt time.Time            `json:"created_at"`
}
