package shop

import (
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"pickles_back_end/internal/checkout"
	"pickles_back_end/internal/handlers"
	"pickles_back_end/internal/middleware"
	"pickles_back_end/internal/models"
	"pickles_back_end/internal/utils"
)

// Reçu de la dernière commande, conservé en session pour /order_success
const (
	sessionOrderRef    = "last_order_ref"
	sessionOrderTotal  = "last_order_total"
	sessionOrderCount  = "last_order_count"
	sessionOrderPlaced = "last_order_placed"
)

// GET /checkout
func (h *Handler) ReviewCheckout(c *gin.Context) {
	current, err := h.Checkout.Review(c.Request.Context(), c.GetString("session_id"))
	if err != nil {
		log.Printf("❌ Erreur lecture panier (checkout): %v", err)
		handlers.Error(c, http.StatusInternalServerError, "Cart unavailable")
		return
	}

	state := advance(c, checkout.Review)

	data := cartData(current)
	data["title"] = "Checkout"
	data["state"] = state
	handlers.Render(c, http.StatusOK, "checkout.html", data)
}

// POST /checkout : vide le panier puis redirige vers /order_success
func (h *Handler) ConfirmCheckout(c *gin.Context) {
	order, err := h.Checkout.Confirm(c.Request.Context(), c.GetString("session_id"), c.GetString("username"))
	if err != nil {
		log.Printf("❌ Erreur confirmation commande: %v", err)
		handlers.Error(c, http.StatusInternalServerError, "Checkout failed")
		return
	}

	advance(c, checkout.Confirm)
	storeReceipt(c, order.Receipt())
	middleware.AddFlash(c, middleware.FlashSuccess, "Order placed successfully!")
	handlers.Redirect(c, "/order_success")
}

// GET /order_success : relit la session, sans effet de bord sur le panier
func (h *Handler) OrderSuccess(c *gin.Context) {
	state := advance(c, checkout.Acknowledge)

	data := gin.H{"title": "Order placed", "state": state}
	if receipt, ok := loadReceipt(c); ok {
		data["receipt"] = receipt
		if uri, err := utils.ReceiptQRDataURI(receipt); err != nil {
			log.Printf("⚠️ QR du reçu %s non généré: %v", receipt.Reference, err)
		} else {
			data["qr"] = template.URL(uri)
		}
	}
	handlers.Render(c, http.StatusOK, "success.html", data)
}

func storeReceipt(c *gin.Context, r models.Receipt) {
	middleware.Set(c, sessionOrderRef, r.Reference)
	middleware.Set(c, sessionOrderTotal, r.Total.String())
	middleware.Set(c, sessionOrderCount, strconv.Itoa(r.ItemCount))
	middleware.Set(c, sessionOrderPlaced, r.PlacedAt.UTC().Format(time.RFC3339))
}

func loadReceipt(c *gin.Context) (models.Receipt, bool) {
	ref := middleware.Get(c, sessionOrderRef)
	if ref == "" {
		return models.Receipt{}, false
	}

	total, err := decimal.NewFromString(middleware.Get(c, sessionOrderTotal))
	if err != nil {
		return models.Receipt{}, false
	}
	count, _ := strconv.Atoi(middleware.Get(c, sessionOrderCount))
	placed, _ := time.Parse(time.RFC3339, middleware.Get(c, sessionOrderPlaced))

	return models.Receipt{Reference: ref, Total: total, ItemCount: count, PlacedAt: placed}, true
}
