package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"freelancehub/pkg/logger"
)

// Client represents one WebSocket connection. UserID is set when the
// connection presented a valid token and is empty otherwise; room
// membership is keyed by the connection ID, so an unauthenticated client
// can still join rooms and relay events.
type Client struct {
	ID     string
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte

	// closed is set once the manager removes the client and closes Send.
	// Guarded by Manager.mutex.
	closed bool
}

// Manager owns all active connections and their room membership. Rooms are
// named by conversation identifier and exist only while they have members;
// nothing here is persisted.
type Manager struct {
	clients    map[string]*Client
	rooms      map[string]map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		rooms:      make(map[string]map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.ID] = client
				m.mutex.Unlock()
				logger.Debug("Client registered: %s", client.ID)

			case client := <-m.Unregister:
				m.removeClient(client)

			case <-ctx.Done():
				return
			}
		}
	}()
}

func (m *Manager) removeClient(client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, ok := m.clients[client.ID]; !ok {
		return
	}

	delete(m.clients, client.ID)
	for roomID, members := range m.rooms {
		if _, ok := members[client.ID]; ok {
			delete(members, client.ID)
			if len(members) == 0 {
				delete(m.rooms, roomID)
			}
		}
	}
	client.closed = true
	close(client.Send)
	logger.Debug("Client unregistered: %s", client.ID)
}

func (m *Manager) JoinRoom(roomID string, client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	members, ok := m.rooms[roomID]
	if !ok {
		members = make(map[string]*Client)
		m.rooms[roomID] = members
	}
	members[client.ID] = client
}

func (m *Manager) LeaveRoom(roomID string, client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	members, ok := m.rooms[roomID]
	if !ok {
		return
	}
	delete(members, client.ID)
	if len(members) == 0 {
		delete(m.rooms, roomID)
	}
}

// RoomSize reports the current number of members in a room.
func (m *Manager) RoomSize(roomID string) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.rooms[roomID])
}

// BroadcastToRoomExcept delivers a payload to every room member except the
// named connection. Delivery is best-effort: a client whose send buffer is
// full is dropped rather than blocking the broadcast.
func (m *Manager) BroadcastToRoomExcept(roomID, exceptClientID string, payload []byte) {
	m.mutex.RLock()
	var slow []*Client
	for _, client := range m.rooms[roomID] {
		if client.ID == exceptClientID {
			continue
		}
		select {
		case client.Send <- payload:
		default:
			slow = append(slow, client)
		}
	}
	m.mutex.RUnlock()

	for _, client := range slow {
		logger.Warn("Client %s send buffer full, dropping connection", client.ID)
		m.removeClient(client)
	}
}

// trySend queues a payload for a client. It reports whether the payload was
// queued and whether the client is still registered; queueing fails for a
// live client only when its send buffer is full. removeClient closes Send
// under the write lock, so holding the read lock here keeps the channel open
// for the duration of the send.
func (m *Manager) trySend(client *Client, payload []byte) (sent, alive bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if client.closed {
		return false, false
	}

	select {
	case client.Send <- payload:
		return true, true
	default:
		return false, true
	}
}
