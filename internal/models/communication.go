package models

import "time"

// Communication represents a row in the communications table.
// Metadata is stored as a jsonb column.
type Communication struct {
	CommunicationID string            `db:"communication_id"`
	ClientID        string            `db:"client_id"`
	Type            string            `db:"type"`
	Subject         string            `db:"subject"`
	Content         string            `db:"content"`
	Status          string            `db:"status"`
	SentAt          *time.Time        `db:"sent_at"`
	ScheduledAt     *time.Time        `db:"scheduled_at"`
	Metadata        map[string]string `db:"metadata"`
	AuditFields
}
