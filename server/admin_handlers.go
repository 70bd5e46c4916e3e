package server

import (
	"errors"
	"net/http"

	"github.com/example/craftshop/pkg/admin"
	"github.com/example/craftshop/pkg/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) listContactMessages(c *gin.Context) {
	rows, err := s.admin.ListMessages(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to list contact messages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": rows, "total": len(rows)})
}

func (s *Server) updateContactMessageStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actorID := ""
	if user := auth.UserFrom(c); user != nil {
		actorID = user.ID
	}

	msg, err := s.admin.UpdateMessageStatus(c.Request.Context(), actorID, c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, admin.ErrMessageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			s.logger.Error("failed to update message status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update message"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (s *Server) listUserRoles(c *gin.Context) {
	rows, err := s.admin.ListRoles(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to list user roles", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load roles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"roles": rows, "total": len(rows)})
}

// importProductMedia accepts a CSV upload, either as a multipart "file"
// field or as the raw request body.
func (s *Server) importProductMedia(c *gin.Context) {
	actorID := ""
	if user := auth.UserFrom(c); user != nil {
		actorID = user.ID
	}

	body := c.Request.Body
	if file, _, err := c.Request.FormFile("file"); err == nil {
		defer file.Close()
		body = file
	}

	report, err := s.admin.ImportMediaCSV(c.Request.Context(), actorID, body)
	if err != nil {
		s.logger.Error("media import failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "import failed"})
		return
	}
	c.JSON(http.StatusOK, report)
}
