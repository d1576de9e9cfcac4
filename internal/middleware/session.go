package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"pickles_back_end/internal/config"
)

const (
	SessionName = "pickles_session"

	sessionKey = "session"
	dirtyKey   = "session_dirty"

	keySessionID = "sid"
	keyUsername  = "username"
	keyRole      = "role"
)

// Catégories de flash, reprises telles quelles dans les templates
const (
	FlashSuccess = "success"
	FlashWarning = "warning"
)

type Notice struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

func NewCookieStore(cfg config.Config) *sessions.CookieStore {
	secret := cfg.SessionSecret
	if secret == "" {
		log.Println("⚠️ SESSION_SECRET manquant, secret de développement utilisé")
		secret = "pickles-dev-secret-change-me"
	}

	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(cfg.SessionMaxAge)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.SessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Sessions charge le cookie, attribue un identifiant de session au premier passage
// et expose session_id, username et role dans le contexte gin
func Sessions(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := store.Get(c.Request, SessionName)
		if err != nil {
			// cookie illisible (secret changé, cookie altéré) : nouvelle session
			log.Printf("⚠️ Session invalide, réinitialisée: %v", err)
		}

		sid, _ := sess.Values[keySessionID].(string)
		if sid == "" {
			sid = uuid.NewString()
			sess.Values[keySessionID] = sid
			c.Set(dirtyKey, true)
		}

		c.Set(sessionKey, sess)
		c.Set("session_id", sid)
		if username, ok := sess.Values[keyUsername].(string); ok && username != "" {
			c.Set("username", username)
			c.Set("role", sess.Values[keyRole])
		}

		c.Next()
	}
}

func Session(c *gin.Context) *sessions.Session {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(*sessions.Session); ok {
			return sess
		}
	}
	return nil
}

// SaveSession écrit le cookie si la session a changé depuis le dernier enregistrement.
// À appeler une fois, avant d'écrire la réponse.
func SaveSession(c *gin.Context) {
	sess := Session(c)
	if sess == nil || !c.GetBool(dirtyKey) {
		return
	}
	if err := sess.Save(c.Request, c.Writer); err != nil {
		log.Printf("❌ Erreur sauvegarde session: %v", err)
		return
	}
	c.Set(dirtyKey, false)
}

func Get(c *gin.Context, key string) string {
	if sess := Session(c); sess != nil {
		v, _ := sess.Values[key].(string)
		return v
	}
	return ""
}

func Set(c *gin.Context, key, value string) {
	if sess := Session(c); sess != nil {
		sess.Values[key] = value
		c.Set(dirtyKey, true)
	}
}

func Delete(c *gin.Context, key string) {
	if sess := Session(c); sess != nil {
		delete(sess.Values, key)
		c.Set(dirtyKey, true)
	}
}

// Login enregistre l'utilisateur et attribue un nouvel identifiant de session.
// Renvoie l'ancien identifiant pour que l'appelant y récupère le panier.
func Login(c *gin.Context, username, role string) (previousID string) {
	previousID = c.GetString("session_id")
	sid := uuid.NewString()
	Set(c, keySessionID, sid)
	c.Set("session_id", sid)

	Set(c, keyUsername, username)
	Set(c, keyRole, role)
	c.Set("username", username)
	c.Set("role", role)
	return previousID
}

func Logout(c *gin.Context) {
	Delete(c, keyUsername)
	Delete(c, keyRole)
	c.Set("username", "")
	c.Set("role", "")
}

func AddFlash(c *gin.Context, category, message string) {
	if sess := Session(c); sess != nil {
		sess.AddFlash(message, category)
		c.Set(dirtyKey, true)
	}
}

// Flashes consomme les notices en attente, succès d'abord puis avertissements.
// La session est marquée modifiée ; l'appelant l'enregistre avec SaveSession.
func Flashes(c *gin.Context) []Notice {
	sess := Session(c)
	if sess == nil {
		return nil
	}

	var out []Notice
	for _, category := range []string{FlashSuccess, FlashWarning} {
		for _, f := range sess.Flashes(category) {
			if msg, ok := f.(string); ok {
				out = append(out, Notice{Category: category, Message: msg})
			}
		}
	}
	if len(out) > 0 {
		c.Set(dirtyKey, true)
	}
	return out
}
