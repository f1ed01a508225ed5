package ws

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"cafe-ledger/entities"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 5 * time.Second

// Conn is the part of *websocket.Conn the manager writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Manager keeps track of dashboard connections subscribed to the sales feed.
type Manager struct {
	mu          sync.RWMutex
	writeMu     sync.Mutex
	connections map[string]Conn // subscriberID -> conn
	log         *zap.Logger
}

func NewManager(log *zap.Logger) *Manager {
	return &Manager{connections: make(map[string]Conn), log: log}
}

// Register adds a subscriber and returns its generated id.
func (m *Manager) Register(conn Conn) string {
	id := uuid.New().String()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[id] = conn
	return id
}

// Unregister removes a subscriber and closes its connection.
func (m *Manager) Unregister(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if conn, ok := m.connections[id]; ok {
		_ = conn.Close()
		delete(m.connections, id)
	}
}

// Send writes a text message to one subscriber.
func (m *Manager) Send(id string, payload []byte) error {
	m.mu.RLock()
	conn, ok := m.connections[id]
	m.mu.RUnlock()
	if !ok || conn == nil {
		return errors.New("subscriber not connected")
	}
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, payload)
}

// Broadcast writes payload to every subscriber, dropping the ones that fail.
func (m *Manager) Broadcast(payload []byte) {
	for _, id := range m.List() {
		if err := m.Send(id, payload); err != nil {
			m.log.Warn("dropping websocket subscriber", zap.String("subscriber", id), zap.Error(err))
			m.Unregister(id)
		}
	}
}

// List returns a copy of current subscriber ids.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.connections))
	for id := range m.connections {
		ids = append(ids, id)
	}
	return ids
}

// SaleEvent is the frame pushed to subscribers after a sale is committed.
type SaleEvent struct {
	Type      string                  `json:"type"`
	Sale      entities.Sale           `json:"sale"`
	Item      *entities.InventoryItem `json:"item"`
	Timestamp string                  `json:"timestamp"`
}

// SaleRecorded publishes a committed sale. item is nil for manual sales.
func (m *Manager) SaleRecorded(sale entities.Sale, item *entities.InventoryItem) {
	b, err := json.Marshal(SaleEvent{
		Type:      "sale_recorded",
		Sale:      sale,
		Item:      item,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		m.log.Error("failed to encode sale event", zap.Error(err))
		return
	}
	m.Broadcast(b)
}
