package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetHistoryHandler returns the session's chat history (oldest first).
// @Summary      Get chat history
// @Tags         History
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of entries, default 50"
// @Header       200    {string}  X-Session-ID  "Optional session ID, defaults to \"default\""
// @Success      200    {object}  map[string][]models.ChatHistory
// @Failure      500    {object}  map[string]string  "Failed to load history"
// @Router       /api/history [get]
func (h *Handlers) GetHistoryHandler(c *gin.Context) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		sessionID = "default"
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	history, err := h.db.GetChatHistory(sessionID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load chat history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

// ClearHistoryHandler deletes the session's chat history.
// @Summary      Clear chat history
// @Tags         History
// @Produce      json
// @Header       200  {string}  X-Session-ID       "Optional session ID, defaults to \"default\""
// @Success      200  {object}  map[string]string  "History cleared"
// @Failure      500  {object}  map[string]string  "Failed to clear history"
// @Router       /api/history [delete]
func (h *Handlers) ClearHistoryHandler(c *gin.Context) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		sessionID = "default"
	}

	if err := h.db.ClearChatHistory(sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear chat history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chat history cleared"})
}
