package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"pickles_back_end/internal/middleware"
	"pickles_back_end/internal/models"
)

// Render négocie HTML (par défaut) ou JSON et ajoute les données communes à toutes les pages.
// Les notices flash sont consommées ici et la session est enregistrée une seule fois.
func Render(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["messages"] = middleware.Flashes(c)
	middleware.SaveSession(c)
	data["username"] = c.GetString("username")
	data["is_admin"] = c.GetString("role") == models.RoleAdmin
	if _, ok := data["query"]; !ok {
		data["query"] = ""
	}

	c.Negotiate(status, gin.Negotiate{
		Offered:  []string{binding.MIMEHTML, binding.MIMEJSON},
		HTMLName: page,
		Data:     data,
	})
}

// Redirect sauvegarde la session puis redirige (302)
func Redirect(c *gin.Context, location string) {
	middleware.SaveSession(c)
	c.Redirect(http.StatusFound, location)
}

// RedirectBack renvoie vers le referer s'il pointe sur ce site, sinon vers fallback
func RedirectBack(c *gin.Context, fallback string) {
	Redirect(c, SameHostReferer(c.Request, fallback))
}

func SameHostReferer(r *http.Request, fallback string) string {
	ref := r.Referer()
	if ref == "" {
		return fallback
	}

	u, err := url.Parse(ref)
	if err != nil {
		return fallback
	}
	if u.Host != "" && u.Host != r.Host {
		return fallback
	}

	target := u.RequestURI()
	// "//evil.com" serait interprété comme une URL absolue
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return fallback
	}
	return target
}

// Error réponse JSON d'erreur, comme le reste de l'API
func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
