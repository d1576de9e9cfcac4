package shop

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"pickles_back_end/internal/handlers"
	"pickles_back_end/internal/middleware"
	"pickles_back_end/internal/utils"
)

const contactSendTimeout = 30 * time.Second

func (h *Handler) ContactPage(c *gin.Context) {
	handlers.Render(c, http.StatusOK, "contact.html", gin.H{
		"title": "Contact",
		"form":  utils.ContactMessage{},
	})
}

// POST /contact
func (h *Handler) SubmitContact(c *gin.Context) {
	var form utils.ContactMessage
	if err := c.ShouldBind(&form); err != nil {
		handlers.Error(c, http.StatusBadRequest, "Invalid form")
		return
	}
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Message = strings.TrimSpace(form.Message)

	if form.Name == "" || form.Email == "" || form.Message == "" {
		middleware.AddFlash(c, middleware.FlashWarning, "Please fill in all fields.")
		handlers.Render(c, http.StatusBadRequest, "contact.html", gin.H{
			"title": "Contact",
			"form":  form,
		})
		return
	}

	if h.Contact != nil {
		// l'envoi SMTP ne bloque pas la réponse
		go func(msg utils.ContactMessage) {
			ctx, cancel := context.WithTimeout(context.Background(), contactSendTimeout)
			defer cancel()
			if err := h.Contact.ForwardContact(ctx, msg); err != nil {
				log.Printf("❌ Transfert du message de contact échoué: %v", err)
			}
		}(form)
	} else {
		log.Printf("✉️ Message de contact de %s <%s>", form.Name, form.Email)
	}

	middleware.AddFlash(c, middleware.FlashSuccess, "Thanks for contacting us! We'll get back to you soon.")
	handlers.Redirect(c, "/contact")
}
