package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart est le panier d'une session : une suite ordonnée de copies d'articles.
// Les doublons sont permis, pas d'agrégation de quantité.
type Cart struct {
	SessionID string    `json:"session_id"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Cart) Len() int {
	return len(c.Items)
}

// Total somme des prix
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price)
	}
	return total
}
