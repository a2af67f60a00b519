// Package hub fans complaint change events out to connected viewers.
// Each client subscribes to exactly one complaint topic; Redis pub/sub
// bridges server instances so a write on one instance reaches viewers
// connected to another.
package hub

import (
	"campusvoice/backend/internal/models"
	"campusvoice/backend/internal/storage"
	"campusvoice/backend/pkg/logger"
)

// ManagerService routes events to subscribers. All subscription state
// is owned by the Run goroutine; other goroutines talk to it through
// the channels, so no lock is needed.
type ManagerService struct {
	RegisterCh   chan Client
	UnregisterCh chan Client
	// EventCh receives decoded events from the Redis listener. Exposed
	// so tests can inject events without a broker.
	EventCh chan models.Event

	subscribers map[string]map[Client]struct{}

	Storage *storage.Service
}

func NewManagerService(s *storage.Service) *ManagerService {
	return &ManagerService{
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		EventCh:      make(chan models.Event),
		subscribers:  make(map[string]map[Client]struct{}),
		Storage:      s,
	}
}

// StartPubSubListener consumes the Redis change feed for all complaint
// topics and forwards decoded events into EventCh.
func (m *ManagerService) StartPubSubListener() {
	if m.Storage == nil || m.Storage.Redis == nil {
		return
	}

	go func() {
		pubsub := m.Storage.SubscribeToComplaints()
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			event, err := models.DecodeEvent([]byte(msg.Payload))
			if err != nil {
				logger.Errorf("[hub] undecodable pubsub payload on %s: %v", msg.Channel, err)
				continue
			}
			m.EventCh <- event
		}
	}()
}

// Run is the hub's dispatch loop. Meant to be launched once as a
// goroutine from the server bootstrap.
func (m *ManagerService) Run() {
	m.StartPubSubListener()

	for {
		select {
		case client := <-m.RegisterCh:
			topic := client.GetComplaintID()
			if m.subscribers[topic] == nil {
				m.subscribers[topic] = make(map[Client]struct{})
			}
			m.subscribers[topic][client] = struct{}{}
			logger.Debug().
				Str("user_id", client.GetUserID()).
				Str("complaint_id", topic).
				Msg("subscriber registered")

		case client := <-m.UnregisterCh:
			m.drop(client)

		case event := <-m.EventCh:
			for client := range m.subscribers[event.ComplaintID] {
				select {
				case client.GetSendChannel() <- event:
				default:
					// A viewer that cannot keep up is disconnected; it
					// can reconnect and re-fetch.
					m.drop(client)
				}
			}
		}
	}
}

// SubscriberCount reports how many clients watch a complaint. Only
// safe to call when the Run loop is quiescent; tests use it.
func (m *ManagerService) SubscriberCount(complaintID string) int {
	return len(m.subscribers[complaintID])
}

func (m *ManagerService) drop(client Client) {
	topic := client.GetComplaintID()
	if set, ok := m.subscribers[topic]; ok {
		if _, ok := set[client]; ok {
			delete(set, client)
			if len(set) == 0 {
				delete(m.subscribers, topic)
			}
			client.Close()
		}
	}
}
