package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pickles_back_end/internal/handlers"
	"pickles_back_end/internal/users"
)

type Handler struct {
	Users *users.Store
}

// ListUsers GET /admin/users, derrière middleware.RequireAdmin
func (h *Handler) ListUsers(c *gin.Context) {
	list := h.Users.List()
	handlers.Render(c, http.StatusOK, "admin_users.html", gin.H{
		"title": "Users",
		"users": list,
		"total": len(list),
	})
}
