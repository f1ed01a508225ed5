package ws

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"cafe-ledger/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	fail     bool
	closed   bool
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("broken pipe")
	}
	c.messages = append(c.messages, data)
	return nil
}

func (c *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func TestManager_RegisterAndUnregister(t *testing.T) {
	m := NewManager(zap.NewNop())
	conn := &fakeConn{}

	id := m.Register(conn)
	assert.NotEmpty(t, id)
	assert.Equal(t, []string{id}, m.List())

	m.Unregister(id)
	assert.Empty(t, m.List())
	assert.True(t, conn.closed)
	assert.Error(t, m.Send(id, []byte("x")))
}

func TestManager_BroadcastDropsBrokenSubscribers(t *testing.T) {
	m := NewManager(zap.NewNop())
	good := &fakeConn{}
	bad := &fakeConn{fail: true}
	m.Register(good)
	m.Register(bad)

	m.Broadcast([]byte(`{"type":"ping"}`))

	assert.Len(t, good.messages, 1)
	assert.Len(t, m.List(), 1)
	assert.True(t, bad.closed)
}

func TestManager_SaleRecorded(t *testing.T) {
	m := NewManager(zap.NewNop())
	conn := &fakeConn{}
	m.Register(conn)

	sale := entities.Sale{ID: 7, Amount: decimal.NewFromInt(15), ItemsSold: "Latte Beans x 3"}
	item := &entities.InventoryItem{ID: 1, ItemName: "Latte Beans", Quantity: 7}
	m.SaleRecorded(sale, item)

	require.Len(t, conn.messages, 1)
	var event SaleEvent
	require.NoError(t, json.Unmarshal(conn.messages[0], &event))
	assert.Equal(t, "sale_recorded", event.Type)
	assert.Equal(t, "Latte Beans x 3", event.Sale.ItemsSold)
	require.NotNil(t, event.Item)
	assert.Equal(t, 7, event.Item.Quantity)
}
