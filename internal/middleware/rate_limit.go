package middleware

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"pickles_back_end/internal/cache"
)

const cartWindow = time.Minute

// CartRateLimit limite les ajouts au panier par session (anti-spam)
func CartRateLimit(counter cache.Counter, max int) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetString("session_id")
		if sid == "" || max <= 0 {
			c.Next()
			return
		}

		key := "cart_add:" + sid
		n, err := counter.Incr(c.Request.Context(), key, cartWindow)
		if err != nil {
			// compteur indisponible : on laisse passer
			log.Printf("⚠️ Rate limit panier indisponible: %v", err)
			c.Next()
			return
		}

		if n > int64(max) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many items added. Slow down a little.",
				"retry_after": int(cartWindow.Seconds()),
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", max))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", int64(max)-n))
		c.Next()
	}
}

// LoginRateLimit compte les échecs (401) par nom d'utilisateur. Au-delà de max,
// le compte est bloqué jusqu'à expiration de la fenêtre. Un login réussi remet à zéro.
func LoginRateLimit(counter cache.Counter, max int, cooldown time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := attemptedUsername(c)
		if username == "" || max <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "login_attempts:" + username

		attempts, err := counter.Get(ctx, key)
		if err != nil {
			log.Printf("⚠️ Rate limit login indisponible: %v", err)
			c.Next()
			return
		}
		if attempts >= int64(max) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Too many failed attempts. Try again in %d minutes.", int(cooldown.Minutes())),
				"retry_after": int(cooldown.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()

		switch c.Writer.Status() {
		case http.StatusUnauthorized:
			n, err := counter.Incr(ctx, key, cooldown)
			if err != nil {
				log.Printf("⚠️ Échec comptage tentative login: %v", err)
				return
			}
			if n >= int64(max) {
				log.Printf("⚠️ Login bloqué pour %s après %d échecs", username, n)
			}
		case http.StatusFound, http.StatusOK:
			if attempts > 0 {
				if err := counter.Reset(ctx, key); err != nil {
					log.Printf("⚠️ Remise à zéro des tentatives de %s échouée: %v", username, err)
				}
			}
		}
	}
}

type loginAttempt struct {
	Username string `form:"username" json:"username"`
}

// attemptedUsername lit le nom d'utilisateur du formulaire ou du corps JSON.
// Le corps JSON reste en cache dans le contexte pour le handler (ShouldBindBodyWith).
func attemptedUsername(c *gin.Context) string {
	if c.ContentType() == binding.MIMEJSON {
		var in loginAttempt
		if err := c.ShouldBindBodyWith(&in, binding.JSON); err != nil {
			return ""
		}
		return strings.TrimSpace(in.Username)
	}
	return strings.TrimSpace(c.PostForm("username"))
}
