package models

import "github.com/shopspring/decimal"

// Catégories fixes du catalogue
const (
	CategoryPickles = "pickles"
	CategorySnacks  = "snacks"
)

// Item est un article du catalogue, immuable après le démarrage
type Item struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Category string          `json:"category"`
	Veg      bool            `json:"veg"`
}
