// Package catalog contient la liste statique des articles de la boutique.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"pickles_back_end/internal/models"
)

// Catalog est en lecture seule après sa construction
type Catalog struct {
	items []models.Item
}

// New construit un catalogue ; l'ordre des articles est conservé
func New(items ...models.Item) *Catalog {
	cp := make([]models.Item, len(items))
	copy(cp, items)
	return &Catalog{items: cp}
}

// Default renvoie le catalogue de la boutique (cornichons puis snacks)
func Default() *Catalog {
	return New(
		item(1, "Gongura Pickle", 120, "images/gongurapickle.jpg", models.CategoryPickles, true),
		item(2, "Lemon Pickle", 100, "images/lemon.jpg", models.CategoryPickles, true),
		item(3, "Chilli Pickle", 130, "images/chillipickle.jpg", models.CategoryPickles, true),
		item(4, "Chicken Pickle", 180, "images/chiken.jpg", models.CategoryPickles, false),
		item(5, "Prawn Pickle", 200, "images/prwan.jpg", models.CategoryPickles, false),

		item(6, "Murukku", 60, "images/murukulu.jpg", models.CategorySnacks, true),
		item(7, "Mixture", 70, "images/mixture.jpg", models.CategorySnacks, true),
		item(8, "Kajjikaya", 80, "images/kajikaya.jpg", models.CategorySnacks, true),
		item(9, "Chekkalu", 50, "images/chekkalu.jpg", models.CategorySnacks, true),
		item(10, "Boondi", 65, "images/boondi.jpg", models.CategorySnacks, true),
		item(11, "Chakodi", 55, "images/chekodilu.jpg", models.CategorySnacks, true),
	)
}

func item(id int, name string, price int64, image, category string, veg bool) models.Item {
	return models.Item{
		ID:       id,
		Name:     name,
		Price:    decimal.NewFromInt(price),
		Image:    image,
		Category: category,
		Veg:      veg,
	}
}

// All renvoie pickles ++ snacks
func (c *Catalog) All() []models.Item {
	return append(c.Pickles(), c.Snacks()...)
}

func (c *Catalog) Pickles() []models.Item {
	return c.filter(func(it models.Item) bool { return it.Category == models.CategoryPickles })
}

func (c *Catalog) Snacks() []models.Item {
	return c.filter(func(it models.Item) bool { return it.Category == models.CategorySnacks })
}

func (c *Catalog) VegPickles() []models.Item {
	return c.filter(func(it models.Item) bool { return it.Category == models.CategoryPickles && it.Veg })
}

func (c *Catalog) NonVegPickles() []models.Item {
	return c.filter(func(it models.Item) bool { return it.Category == models.CategoryPickles && !it.Veg })
}

// Find parcourt le catalogue combiné et renvoie une copie de l'article
func (c *Catalog) Find(id int) (models.Item, bool) {
	for _, it := range c.All() {
		if it.ID == id {
			return it, true
		}
	}
	return models.Item{}, false
}

// Search recherche sans tenir compte de la casse dans les noms
func (c *Catalog) Search(q string) []models.Item {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return c.All()
	}
	return c.filter(func(it models.Item) bool {
		return strings.Contains(strings.ToLower(it.Name), q)
	})
}

func (c *Catalog) filter(keep func(models.Item) bool) []models.Item {
	out := []models.Item{}
	for _, it := range c.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
