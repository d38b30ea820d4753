package dto

import (
	"bytes"
	"encoding/json"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/usecase"
)

// EventRequest represents the body of POST /event.
// Pointers distinguish missing fields from zero values.
type EventRequest struct {
	Type      *string         `json:"type"`
	Amount    json.RawMessage `json:"amount"`
	UserID    *int64          `json:"user_id"`
	Timestamp *int64          `json:"t"`
}

// ToUseCase checks that every field is present and converts the body to the
// use case request. Missing or malformed fields are reported per field name.
func (r EventRequest) ToUseCase() (usecase.EventRequest, map[string]string) {
	details := map[string]string{}
	var req usecase.EventRequest

	if r.Type == nil {
		details["type"] = "This field is required."
	} else {
		req.Type = *r.Type
	}

	if amount, problem := r.amountString(); problem != "" {
		details["amount"] = problem
	} else {
		req.Amount = amount
	}

	switch {
	case r.UserID == nil:
		details["user_id"] = "This field is required."
	case *r.UserID < 1:
		details["user_id"] = "Ensure this value is greater than or equal to 1."
	default:
		req.UserID = uint64(*r.UserID)
	}

	if r.Timestamp == nil {
		details["t"] = "This field is required."
	} else {
		req.Timestamp = *r.Timestamp
	}

	if len(details) > 0 {
		return usecase.EventRequest{}, details
	}
	return req, nil
}

// amountString accepts the amount as a JSON string or a JSON number.
// A non-empty problem describes why the field was rejected.
func (r EventRequest) amountString() (amount string, problem string) {
	raw := bytes.TrimSpace(r.Amount)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", "This field is required."
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", invalidNumber
		}
		return s, ""
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", invalidNumber
	}
	return n.String(), ""
}

const invalidNumber = "A valid number is required."

// EventResponse represents one stored event in the history view
type EventResponse struct {
	ID        uint64 `json:"id"`
	UserID    uint64 `json:"user_id"`
	Type      string `json:"type"`
	Amount    string `json:"amount"`
	Timestamp int64  `json:"t"`
}

// NewEventResponses converts ledger events for the history view
func NewEventResponses(events []*entity.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, EventResponse{
			ID:        e.ID,
			UserID:    e.UserID,
			Type:      string(e.TransactionType),
			Amount:    e.FormattedAmount(),
			Timestamp: e.Timestamp,
		})
	}
	return out
}

// EventHistoryResponse wraps a user's newest events
type EventHistoryResponse struct {
	UserID uint64          `json:"user_id"`
	Events []EventResponse `json:"events"`
}
