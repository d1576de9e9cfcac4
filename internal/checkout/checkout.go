package checkout

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"pickles_back_end/internal/cart"
	"pickles_back_end/internal/models"
)

// Notifier est appelé uniquement à la confirmation d'une commande
type Notifier interface {
	OrderPlaced(ctx context.Context, order models.Order) error
}

type Flow struct {
	carts     *cart.Service
	notifiers []Notifier
	now       func() time.Time
}

func NewFlow(carts *cart.Service, notifiers ...Notifier) *Flow {
	return &Flow{carts: carts, notifiers: notifiers, now: time.Now}
}

// Review renvoie le panier à valider, sans mutation
func (f *Flow) Review(ctx context.Context, sessionID string) (models.Cart, error) {
	return f.carts.View(ctx, sessionID)
}

// Confirm vide le panier et construit la commande. Les erreurs des notifiers sont
// journalisées : le panier est déjà vidé, il n'y a pas de retour arrière.
func (f *Flow) Confirm(ctx context.Context, sessionID, username string) (models.Order, error) {
	previous, err := f.carts.Clear(ctx, sessionID)
	if err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Username:  username,
		Items:     previous.Items,
		Total:     previous.Total(),
		PlacedAt:  f.now(),
	}

	if len(order.Items) == 0 {
		log.Printf("⚠️ Checkout confirmé avec un panier vide (session %s)", sessionID)
		return order, nil
	}

	log.Printf("📦 Commande %s confirmée : %d articles, total %s", order.Reference(), len(order.Items), order.Total.StringFixed(2))
	for _, n := range f.notifiers {
		if err := n.OrderPlaced(ctx, order); err != nil {
			log.Printf("❌ Notification commande %s échouée: %v", order.Reference(), err)
		}
	}
	return order, nil
}
