package shop

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pickles_back_end/internal/cart"
	"pickles_back_end/internal/checkout"
	"pickles_back_end/internal/handlers"
	"pickles_back_end/internal/middleware"
	"pickles_back_end/internal/models"
)

const sessionCheckoutState = "checkout_state"

// GET /add_to_cart/:id
func (h *Handler) AddToCart(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handlers.Error(c, http.StatusNotFound, "Not found")
		return
	}

	sid := c.GetString("session_id")
	_, item, err := h.Carts.Add(c.Request.Context(), sid, id)
	switch {
	case errors.Is(err, cart.ErrItemNotFound):
		middleware.AddFlash(c, middleware.FlashWarning, "Item not found.")
	case err != nil:
		log.Printf("❌ Erreur ajout panier (session %s): %v", sid, err)
		handlers.Error(c, http.StatusInternalServerError, "Cart unavailable")
		return
	default:
		advance(c, checkout.AddItem)
		middleware.AddFlash(c, middleware.FlashSuccess, item.Name+" added to cart.")
	}

	handlers.RedirectBack(c, "/")
}

// GET /cart : lecture seule
func (h *Handler) ViewCart(c *gin.Context) {
	current, err := h.Carts.View(c.Request.Context(), c.GetString("session_id"))
	if err != nil {
		log.Printf("❌ Erreur lecture panier: %v", err)
		handlers.Error(c, http.StatusInternalServerError, "Cart unavailable")
		return
	}

	data := cartData(current)
	data["title"] = "Cart"
	handlers.Render(c, http.StatusOK, "cart.html", data)
}

func cartData(c models.Cart) gin.H {
	return gin.H{
		"items": c.Items,
		"total": c.Total(),
		"count": c.Len(),
	}
}

// advance applique une transition du checkout à l'état stocké en session
func advance(c *gin.Context, ev checkout.Event) checkout.State {
	next := checkout.Next(checkout.ParseState(middleware.Get(c, sessionCheckoutState)), ev)
	middleware.Set(c, sessionCheckoutState, string(next))
	return next
}
