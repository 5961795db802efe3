package websocket

import (
	"encoding/json"
	"time"

	"freelancehub/pkg/logger"
)

// Event types carried over the relay. A send_message is rebroadcast as a
// receive_message to every other room member; the sender gets no echo. The
// relay persists nothing and guarantees nothing: members absent at
// broadcast time never see the event. REST message creation remains the
// durable path and clients persist-then-broadcast.
const (
	EventJoinRoom       = "join_room"
	EventLeaveRoom      = "leave_room"
	EventSendMessage    = "send_message"
	EventReceiveMessage = "receive_message"
	EventPing           = "ping"
	EventPong           = "pong"
	EventError          = "error"
)

type Event struct {
	Type           string          `json:"type"`
	ConversationID string          `json:"conversationId,omitempty"`
	Data           json.RawMessage `json:"data,omitempty"`
	Timestamp      string          `json:"timestamp,omitempty"`
}

// HandleClientEvent processes one incoming relay event.
func (m *Manager) HandleClientEvent(client *Client, payload []byte) {
	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		logger.Warn("Invalid relay event from client %s: %v", client.ID, err)
		m.sendError(client, "invalid event format")
		return
	}

	switch event.Type {
	case EventPing:
		m.sendEvent(client, Event{Type: EventPong})

	case EventJoinRoom:
		if event.ConversationID == "" {
			m.sendError(client, "missing conversationId")
			return
		}
		m.JoinRoom(event.ConversationID, client)
		logger.Debug("Client %s joined room %s", client.ID, event.ConversationID)

	case EventLeaveRoom:
		if event.ConversationID == "" {
			m.sendError(client, "missing conversationId")
			return
		}
		m.LeaveRoom(event.ConversationID, client)
		logger.Debug("Client %s left room %s", client.ID, event.ConversationID)

	case EventSendMessage:
		if event.ConversationID == "" {
			m.sendError(client, "missing conversationId")
			return
		}
		out, err := json.Marshal(Event{
			Type:           EventReceiveMessage,
			ConversationID: event.ConversationID,
			Data:           event.Data,
			Timestamp:      time.Now().UTC().Format(time.RFC3339),
		})
		if err != nil {
			logger.Error("Failed to marshal relay event: %v", err)
			return
		}
		m.BroadcastToRoomExcept(event.ConversationID, client.ID, out)

	default:
		logger.Debug("Unknown relay event type %q from client %s", event.Type, client.ID)
		m.sendError(client, "unknown event type")
	}
}

func (m *Manager) sendEvent(client *Client, event Event) {
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal relay event: %v", err)
		return
	}

	sent, alive := m.trySend(client, payload)
	if !sent && alive {
		logger.Warn("Client %s send buffer full, dropping connection", client.ID)
		m.removeClient(client)
	}
}

func (m *Manager) sendError(client *Client, message string) {
	data, _ := json.Marshal(map[string]string{"error": message})
	m.sendEvent(client, Event{Type: EventError, Data: data})
}
