package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order est construite à la confirmation du checkout puis transmise aux notifiers.
// Elle n'est jamais persistée.
type Order struct {
	ID        string          `json:"id"`
	SessionID string          `json:"session_id"`
	Username  string          `json:"username,omitempty"`
	Items     []Item          `json:"items"`
	Total     decimal.Decimal `json:"total"`
	PlacedAt  time.Time       `json:"placed_at"`
}

// Reference courte affichée au client
func (o Order) Reference() string {
	if len(o.ID) < 8 {
		return o.ID
	}
	return "ORD-" + o.ID[:8]
}

// Receipt résumé d'une commande, assez petit pour tenir dans le cookie de session
type Receipt struct {
	Reference string          `json:"reference"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	PlacedAt  time.Time       `json:"placed_at"`
}

func (o Order) Receipt() Receipt {
	return Receipt{
		Reference: o.Reference(),
		Total:     o.Total,
		ItemCount: len(o.Items),
		PlacedAt:  o.PlacedAt,
	}
}
