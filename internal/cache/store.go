package cache

import (
	"context"
	"time"

	"pickles_back_end/internal/models"
)

// CartStore conserve le panier de chaque session, indexé par l'identifiant de session
type CartStore interface {
	// Load renvoie le panier de la session, vide s'il n'existe pas encore
	Load(ctx context.Context, sessionID string) (models.Cart, error)
	Save(ctx context.Context, sessionID string, cart models.Cart) error
	// Take lit et vide le panier en une seule opération
	Take(ctx context.Context, sessionID string) (models.Cart, error)
}

// Broker publie et diffuse des messages texte par canal (pub/sub)
type Broker interface {
	Publish(ctx context.Context, channel, payload string) error
	Subscribe(ctx context.Context, channel string) (Subscription, error)
}

type Subscription interface {
	Messages() <-chan string
	Close() error
}

// Counter compteur à fenêtre fixe pour le rate limiting
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	Get(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
}

// Messages publiés sur le canal d'un panier
const (
	CartUpdated = "updated"
	CartCleared = "cleared"
)

// CartChannel canal pub/sub (et clé Redis) du panier d'une session
func CartChannel(sessionID string) string {
	return "cart:" + sessionID
}

func emptyCart(sessionID string) models.Cart {
	return models.Cart{SessionID: sessionID, Items: []models.Item{}}
}

func copyCart(c models.Cart) models.Cart {
	items := make([]models.Item, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}
