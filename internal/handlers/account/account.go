package account

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"pickles_back_end/internal/cart"
	"pickles_back_end/internal/handlers"
	"pickles_back_end/internal/middleware"
	"pickles_back_end/internal/users"
)

type Handler struct {
	Users *users.Store
	Carts *cart.Service
}

type credentials struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

func (h *Handler) RegisterPage(c *gin.Context) {
	handlers.Render(c, http.StatusOK, "register.html", gin.H{"title": "Register"})
}

// POST /register
func (h *Handler) Register(c *gin.Context) {
	var in credentials
	if err := bind(c, &in); err != nil {
		handlers.Error(c, http.StatusBadRequest, "Invalid form")
		return
	}

	_, err := h.Users.Register(in.Username, in.Password)
	switch {
	case errors.Is(err, users.ErrMissingFields):
		h.fail(c, http.StatusBadRequest, "register.html", "Register", "Username and password are required.")
		return
	case errors.Is(err, users.ErrUsernameTaken):
		h.fail(c, http.StatusConflict, "register.html", "Register", "Username already exists!")
		return
	case err != nil:
		log.Printf("❌ Erreur inscription: %v", err)
		handlers.Error(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	middleware.AddFlash(c, middleware.FlashSuccess, "Registered successfully!")
	handlers.Redirect(c, "/login")
}

func (h *Handler) LoginPage(c *gin.Context) {
	handlers.Render(c, http.StatusOK, "login.html", gin.H{"title": "Login"})
}

// POST /login : le panier de la session est conservé
func (h *Handler) Login(c *gin.Context) {
	var in credentials
	if err := bind(c, &in); err != nil {
		handlers.Error(c, http.StatusBadRequest, "Invalid form")
		return
	}

	user, err := h.Users.Authenticate(in.Username, in.Password)
	switch {
	case errors.Is(err, users.ErrMissingFields):
		h.fail(c, http.StatusBadRequest, "login.html", "Login", "Username and password are required.")
		return
	case errors.Is(err, users.ErrInvalidCredentials):
		log.Printf("⚠️ Échec de connexion pour %q", in.Username)
		h.fail(c, http.StatusUnauthorized, "login.html", "Login", "Invalid credentials!")
		return
	case err != nil:
		log.Printf("❌ Erreur connexion: %v", err)
		handlers.Error(c, http.StatusInternalServerError, "Login failed")
		return
	}

	// nouvel identifiant de session à la connexion ; le panier suit
	previous := middleware.Login(c, user.Username, user.Role)
	if h.Carts != nil {
		if _, err := h.Carts.Transfer(c.Request.Context(), previous, c.GetString("session_id")); err != nil {
			log.Printf("❌ Transfert du panier de %s échoué: %v", user.Username, err)
		}
	}
	middleware.AddFlash(c, middleware.FlashSuccess, "Login successful!")
	log.Printf("✅ %s connecté", user.Username)
	handlers.Redirect(c, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	middleware.Logout(c)
	middleware.AddFlash(c, middleware.FlashSuccess, "Logged out successfully!")
	handlers.Redirect(c, "/")
}

// bind accepte formulaire et JSON. Le corps JSON a pu être lu par LoginRateLimit,
// on passe donc par la copie mise en cache.
func bind(c *gin.Context, in *credentials) error {
	if c.ContentType() == binding.MIMEJSON {
		return c.ShouldBindBodyWith(in, binding.JSON)
	}
	return c.ShouldBind(in)
}

// fail affiche de nouveau le formulaire avec l'avertissement
func (h *Handler) fail(c *gin.Context, status int, page, title, message string) {
	middleware.AddFlash(c, middleware.FlashWarning, message)
	handlers.Render(c, status, page, gin.H{"title": title})
}
