package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pickles_back_end/internal/models"
)

// RequireAdmin vérifie que l'utilisateur connecté a le rôle "admin"
func RequireAdmin(c *gin.Context) {
	if c.GetString("username") == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
		c.Abort()
		return
	}
	if c.GetString("role") != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admins only"})
		c.Abort()
		return
	}
	c.Next()
}
