package shop

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"pickles_back_end/internal/cache"
	"pickles_back_end/internal/handlers"
)

const (
	pingInterval = 30 * time.Second
	writeTimeout = 10 * time.Second
)

// origine vérifiée par défaut (même hôte)
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type cartMessage struct {
	Type  string `json:"type"`
	Items any    `json:"items"`
	Total string `json:"total"`
	Count int    `json:"count"`
}

// CartSocket gère la synchronisation temps réel du panier de la session
func (h *Handler) CartSocket(c *gin.Context) {
	sid := c.GetString("session_id")
	ctx := c.Request.Context()

	// abonnement avant l'upgrade : aucune mise à jour perdue entre l'état initial et la boucle
	sub, err := h.Carts.Subscribe(ctx, sid)
	if err != nil {
		log.Printf("❌ Erreur abonnement panier %s: %v", sid, err)
		handlers.Error(c, http.StatusInternalServerError, "Cart sync unavailable")
		return
	}
	defer sub.Close()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	// lecture en continu pour traiter pong/close côté client
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	if err := h.pushCart(ctx, conn, sid, "cart_snapshot"); err != nil {
		log.Printf("❌ Erreur envoi WebSocket: %v", err)
		return
	}

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return
		case msg, ok := <-sub.Messages():
			if !ok {
				return
			}
			if msg != cache.CartUpdated && msg != cache.CartCleared {
				continue
			}
			if err := h.pushCart(ctx, conn, sid, "cart_"+msg); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}

func (h *Handler) pushCart(ctx context.Context, conn *websocket.Conn, sid, kind string) error {
	current, err := h.Carts.View(ctx, sid)
	if err != nil {
		return err
	}

	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(cartMessage{
		Type:  kind,
		Items: current.Items,
		Total: current.Total().StringFixed(2),
		Count: current.Len(),
	})
}
