package domain

import "time"

// CommunicationType is the channel of a communication record.
type CommunicationType string

const (
	CommunicationEmail CommunicationType = "EMAIL"
	CommunicationSMS   CommunicationType = "SMS"
)

// CommunicationStatus marks whether a communication record was emitted
// immediately or is scheduled for a future date.
type CommunicationStatus string

const (
	CommunicationSent      CommunicationStatus = "SENT"
	CommunicationScheduled CommunicationStatus = "SCHEDULED"
)

// Metadata keys recorded on rule-generated communications for audit and
// duplicate-firing detection.
const (
	MetadataRuleID     = "rule_id"
	MetadataInvoiceID  = "invoice_id"
	MetadataTemplateID = "template_id"
)

// Communication is a rendered reminder message record. The system produces
// records only; actual delivery is an external concern. Communications are
// written by manual user action and by the reminder engine, and are never
// mutated by ledger operations.
type Communication struct {
	CommunicationID string              `json:"communicationID"`
	ClientID        string              `json:"clientID"`
	Type            CommunicationType   `json:"type"`
	Subject         string              `json:"subject"`
	Content         string              `json:"content"`
	Status          CommunicationStatus `json:"status"`
	SentAt          *time.Time          `json:"sentAt,omitempty"`
	ScheduledAt     *time.Time          `json:"scheduledAt,omitempty"`
	Metadata        map[string]string   `json:"metadata,omitempty"`
	AuditFields
}
