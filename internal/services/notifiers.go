package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"pickles_back_end/internal/cache"
	"pickles_back_end/internal/models"
)

// OrdersChannel canal pub/sub des commandes confirmées
const OrdersChannel = "orders"

// OrderPublisher diffuse la commande en JSON sur le broker
type OrderPublisher struct {
	Broker  cache.Broker
	Channel string
}

func NewOrderPublisher(b cache.Broker) *OrderPublisher {
	return &OrderPublisher{Broker: b, Channel: OrdersChannel}
}

func (p *OrderPublisher) OrderPlaced(ctx context.Context, order models.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encodage commande: %w", err)
	}
	if err := p.Broker.Publish(ctx, p.Channel, string(data)); err != nil {
		return fmt.Errorf("publication commande %s: %w", order.Reference(), err)
	}
	return nil
}

type LogNotifier struct{}

func (LogNotifier) OrderPlaced(_ context.Context, order models.Order) error {
	who := order.Username
	if who == "" {
		who = "invité"
	}
	log.Printf("📦 Nouvelle commande %s de %s : %d articles, ₹%s",
		order.Reference(), who, len(order.Items), order.Total.StringFixed(2))
	return nil
}
