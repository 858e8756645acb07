package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"groupbook.app/concierge/internal/http/dto"
	"groupbook.app/concierge/internal/vote"
)

// GroupHandler receives inbound group chat messages (including vote button
// clicks) and serves vote tallies.
type GroupHandler struct {
	log   *vote.Log
	tally *vote.Tally
}

func NewGroupHandler(log *vote.Log, tally *vote.Tally) *GroupHandler {
	return &GroupHandler{log: log, tally: tally}
}

func (h *GroupHandler) PostMessage(c *gin.Context) {
	ctx := c.Request.Context()
	groupID := c.Param("group_id")

	var req dto.GroupMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid group message request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.log.Append(vote.Message{
		GroupID: groupID,
		Sender:  req.Sender,
		Text:    req.Text,
	})

	slog.InfoContext(ctx, "group message recorded", "group_id", groupID, "sender", req.Sender)
	c.JSON(http.StatusAccepted, dto.GroupMessageResponse{Accepted: true})
}

func (h *GroupHandler) VoteResults(c *gin.Context) {
	groupID := c.Param("group_id")

	result := h.tally.Count(groupID)

	c.JSON(http.StatusOK, dto.VoteResultsResponse{
		Status:         result.Status,
		GroupID:        result.GroupID,
		Results:        result.Results,
		WinningOptions: result.WinningOptions,
	})
}
