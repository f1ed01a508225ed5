package handlers

import (
	"net/http"

	"cafe-ledger/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WSHandler serves the live sales feed.
type WSHandler struct {
	mgr *ws.Manager
	log *zap.Logger
}

func NewWSHandler(mgr *ws.Manager, log *zap.Logger) *WSHandler {
	return &WSHandler{mgr: mgr, log: log.Named("ws")}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleSalesFeed upgrades to websocket and keeps the subscriber registered
// until the client goes away. Incoming frames are ignored.
// GET /ws
func (h *WSHandler) HandleSalesFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	id := h.mgr.Register(conn)
	h.log.Info("subscriber connected", zap.String("subscriber", id))
	defer func() {
		h.mgr.Unregister(id)
		h.log.Info("subscriber disconnected", zap.String("subscriber", id))
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("read error", zap.String("subscriber", id), zap.Error(err))
			}
			return
		}
	}
}

// GetSubscribers lists the ids of connected feed subscribers
// GET /api/v1/feed/subscribers
func (h *WSHandler) GetSubscribers(c *gin.Context) {
	ids := h.mgr.List()
	c.JSON(http.StatusOK, gin.H{
		"data":  ids,
		"count": len(ids),
	})
}
