package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"groupbook.app/concierge/internal/http/dto"
)

// TurnService processes one user turn and returns the assistant response.
type TurnService interface {
	HandleTurn(ctx context.Context, userID, prompt string) (string, error)
}

type ChatHandler struct {
	turns TurnService
}

func NewChatHandler(turns TurnService) *ChatHandler {
	return &ChatHandler{turns: turns}
}

func (h *ChatHandler) Post(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UserMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid user message request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.turns.HandleTurn(ctx, req.UserID, req.Text)
	if err != nil {
		slog.ErrorContext(ctx, "failed to handle turn", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to handle message"})
		return
	}

	c.JSON(http.StatusOK, dto.UserMessageResponse{Response: response})
}
