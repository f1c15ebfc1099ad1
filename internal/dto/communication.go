package dto

import (
	"time"

	"github.com/pverdier/creance_manager_app/internal/core/domain"
)

// CreateCommunicationRequest defines the data for a manually recorded
// communication. A future ScheduledAt marks the record SCHEDULED.
type CreateCommunicationRequest struct {
	ClientID    string     `json:"clientID" binding:"required"`
	Type        string     `json:"type" binding:"required,oneof=EMAIL SMS"`
	Subject     string     `json:"subject"`
	Content     string     `json:"content" binding:"required"`
	ScheduledAt *time.Time `json:"scheduledAt"`
}

// CommunicationResponse defines the data returned for a communication record.
type CommunicationResponse struct {
	CommunicationID string            `json:"communicationID"`
	ClientID        string            `json:"clientID"`
	Type            string            `json:"type"`
	Subject         string            `json:"subject"`
	Content         string            `json:"content"`
	Status          string            `json:"status"`
	SentAt          *time.Time        `json:"sentAt,omitempty"`
	ScheduledAt     *time.Time        `json:"scheduledAt,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	CreatedBy       string            `json:"createdBy"`
}

// ToCommunicationResponse converts a domain.Communication to its DTO
func ToCommunicationResponse(c *domain.Communication) CommunicationResponse {
	return CommunicationResponse{
		CommunicationID: c.CommunicationID,
		ClientID:        c.ClientID,
		Type:            string(c.Type),
		Subject:         c.Subject,
		Content:         c.Content,
		Status:          string(c.Status),
		SentAt:          c.SentAt,
		ScheduledAt:     c.ScheduledAt,
		Metadata:        c.Metadata,
		CreatedAt:       c.CreatedAt,
		CreatedBy:       c.CreatedBy,
	}
}

// ToListCommunicationResponse converts a slice of domain.Communication to DTOs
func ToListCommunicationResponse(comms []domain.Communication) []CommunicationResponse {
	res := make([]CommunicationResponse, len(comms))
	for i, c := range comms {
		res[i] = ToCommunicationResponse(&c)
	}
	return res
}

// ListCommunicationsParams defines query parameters for listing communications.
type ListCommunicationsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListCommunicationsResponse wraps the list of communications.
type ListCommunicationsResponse struct {
	Communications []CommunicationResponse `json:"communications"`
}
