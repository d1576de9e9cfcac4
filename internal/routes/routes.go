package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"pickles_back_end/internal/cache"
	"pickles_back_end/internal/cart"
	"pickles_back_end/internal/catalog"
	"pickles_back_end/internal/checkout"
	"pickles_back_end/internal/config"
	"pickles_back_end/internal/handlers/account"
	"pickles_back_end/internal/handlers/admin"
	"pickles_back_end/internal/handlers/shop"
	"pickles_back_end/internal/middleware"
	"pickles_back_end/internal/services"
	"pickles_back_end/internal/templates"
	"pickles_back_end/internal/users"
)

// Deps tout ce dont le routeur a besoin, construit par cmd/server
type Deps struct {
	Config   config.Config
	Sessions sessions.Store
	Catalog  *catalog.Catalog
	Carts    *cart.Service
	Checkout *checkout.Flow
	Users    *users.Store
	Counter  cache.Counter
	Images   services.ImageResolver
	Contact  shop.ContactForwarder
}

func RegisterRoutes(r *gin.Engine, d Deps) error {
	tmpl, err := templates.Load()
	if err != nil {
		return fmt.Errorf("chargement templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	if len(d.Config.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.Config.CORSOrigins,
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	if d.Config.StaticDir != "" {
		r.Static("/static", d.Config.StaticDir)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	shopH := &shop.Handler{
		Catalog:  d.Catalog,
		Carts:    d.Carts,
		Checkout: d.Checkout,
		Images:   d.Images,
		Contact:  d.Contact,
	}
	accountH := &account.Handler{Users: d.Users, Carts: d.Carts}
	adminH := &admin.Handler{Users: d.Users}

	site := r.Group("/", middleware.Sessions(d.Sessions))

	// Catalogue
	site.GET("/", shopH.Home)
	site.GET("/pickles", shopH.Pickles)
	site.GET("/snacks", shopH.Snacks)
	site.GET("/veg_pickles", shopH.VegPickles)
	site.GET("/non_veg_pickles", shopH.NonVegPickles)
	site.GET("/search", shopH.Search)
	site.GET("/about", shopH.About)
	site.GET("/contact", shopH.ContactPage)
	site.POST("/contact", shopH.SubmitContact)

	// Panier
	site.GET("/add_to_cart/:id", middleware.CartRateLimit(d.Counter, d.Config.CartRateLimit), shopH.AddToCart)
	site.GET("/cart", shopH.ViewCart)
	site.GET("/cart/ws", shopH.CartSocket)

	// Checkout
	site.GET("/checkout", shopH.ReviewCheckout)
	site.POST("/checkout", shopH.ConfirmCheckout)
	site.GET("/order_success", shopH.OrderSuccess)

	// Comptes
	site.GET("/register", accountH.RegisterPage)
	site.POST("/register", accountH.Register)
	site.GET("/login", accountH.LoginPage)
	site.POST("/login", middleware.LoginRateLimit(d.Counter, d.Config.LoginMaxAttempts, d.Config.LoginCooldown), accountH.Login)
	site.GET("/logout", accountH.Logout)

	// Admin
	site.GET("/admin/users", middleware.RequireAdmin, adminH.ListUsers)

	return nil
}
