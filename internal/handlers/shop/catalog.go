package shop

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pickles_back_end/internal/handlers"
	"pickles_back_end/internal/models"
)

// GET /
func (h *Handler) Home(c *gin.Context) {
	ctx := c.Request.Context()
	handlers.Render(c, http.StatusOK, "home.html", gin.H{
		"title":   "",
		"pickles": h.views(ctx, h.Catalog.Pickles()),
		"snacks":  h.views(ctx, h.Catalog.Snacks()),
	})
}

func (h *Handler) Pickles(c *gin.Context) {
	h.listing(c, "Pickles", h.Catalog.Pickles())
}

func (h *Handler) Snacks(c *gin.Context) {
	h.listing(c, "Snacks", h.Catalog.Snacks())
}

func (h *Handler) VegPickles(c *gin.Context) {
	h.listing(c, "Veg Pickles", h.Catalog.VegPickles())
}

func (h *Handler) NonVegPickles(c *gin.Context) {
	h.listing(c, "Non-Veg Pickles", h.Catalog.NonVegPickles())
}

// GET /search?q=
func (h *Handler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	items := h.Catalog.Search(q)

	handlers.Render(c, http.StatusOK, "products.html", gin.H{
		"title": "Search results",
		"query": q,
		"items": h.views(c.Request.Context(), items),
		"count": len(items),
	})
}

func (h *Handler) listing(c *gin.Context, title string, items []models.Item) {
	handlers.Render(c, http.StatusOK, "products.html", gin.H{
		"title": title,
		"items": h.views(c.Request.Context(), items),
		"count": len(items),
	})
}

func (h *Handler) About(c *gin.Context) {
	handlers.Render(c, http.StatusOK, "about.html", gin.H{"title": "About"})
}
