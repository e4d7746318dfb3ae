package amqp

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/cashclaim/internal/core/domain"
)

const claimEventVersion = 1

// ClaimStatusMessage is the JSON body published when a claim changes status.
type ClaimStatusMessage struct {
	Version     int       `json:"version"`
	ClaimID     int64     `json:"claim_id"`
	User        string    `json:"user"`
	Amount      int64     `json:"amount"`
	Status      string    `json:"status"`
	ProcessedBy string    `json:"processed_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewClaimStatusMessage(event domain.ClaimEvent) *ClaimStatusMessage {
	return &ClaimStatusMessage{
		Version:     claimEventVersion,
		ClaimID:     event.ClaimID,
		User:        event.UserName,
		Amount:      event.Amount,
		Status:      string(event.Status),
		ProcessedBy: event.ProcessedBy,
		OccurredAt:  event.OccurredAt.UTC(),
	}
}

func (m *ClaimStatusMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RoutingKey is claim.<status>, so consumers can bind to e.g. claim.paid only.
func (m *ClaimStatusMessage) RoutingKey() string {
	return "claim." + m.Status
}

func ClaimStatusMessageFromJSON(data []byte) (*ClaimStatusMessage, error) {
	var msg ClaimStatusMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
