package models

import "encoding/json"

// Event types pushed to realtime subscribers of a complaint topic.
const (
	EventComplaintUpdated = "complaint_updated"
	EventResponseAdded    = "response_added"
)

// DecodeEvent parses a pub/sub payload back into an Event.
func DecodeEvent(payload []byte) (Event, error) {
	var event Event
	err := json.Unmarshal(payload, &event)
	return event, err
}

// Event is the payload fanned out to every viewer subscribed to a
// complaint. It deliberately carries no row data: clients re-fetch the
// current state on receipt, which is safe because responses are
// immutable and complaint updates are last-write-wins.
type Event struct {
	Type        string `json:"type"`
	ComplaintID string `json:"complaint_id"`
	// EntityID identifies the row that changed (response id or the
	// complaint id itself).
	EntityID string `json:"entity_id,omitempty"`
}
