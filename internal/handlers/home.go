package handlers

import (
	"net/http"

	"github.com/alimgiray/showcase/internal/middleware"
	"github.com/gin-gonic/gin"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Index lists the entry points and who is logged in
func (h *HomeHandler) Index(c *gin.Context) {
	data := gin.H{
		"name":     "showcase",
		"projects": "/api/projects",
		"draft":    "/api/draft",
		"login":    "/auth/github",
		"user":     nil,
	}
	if session := middleware.GetSession(c); session != nil {
		data["user"] = gin.H{"id": session.UserID, "githubUsername": session.Username, "name": session.Name}
	}
	if errorMsg := c.Query("error"); errorMsg != "" {
		data["error"] = errorMsg
	}

	c.JSON(http.StatusOK, data)
}
