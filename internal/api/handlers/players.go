package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tsmith4014/gridiron-guru-ai/internal/models"
	"github.com/tsmith4014/gridiron-guru-ai/internal/services"
	"github.com/tsmith4014/gridiron-guru-ai/pkg/utils"
)

// PlayerHandler serves the bundled draft board.
type PlayerHandler struct {
	store *services.PlayerStore
}

func NewPlayerHandler(store *services.PlayerStore) *PlayerHandler {
	return &PlayerHandler{store: store}
}

// ListPlayers handles GET /api/v1/players
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	if pos := c.Query("position"); pos != "" {
		position, err := models.ParsePosition(pos)
		if err != nil {
			utils.SendValidationError(c, "Invalid position filter", err.Error())
			return
		}
		players, err := h.store.ListByPosition(position)
		if err != nil {
			utils.SendInternalError(c, "Failed to list players: "+err.Error())
			return
		}
		utils.SendSuccess(c, gin.H{"players": players})
		return
	}

	players, err := h.store.List()
	if err != nil {
		utils.SendInternalError(c, "Failed to list players: "+err.Error())
		return
	}
	utils.SendSuccess(c, gin.H{"players": players})
}
