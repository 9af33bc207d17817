package api

import (
	"net/http"

	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SeasonHandler struct {
	seasonCommands commands.SeasonCommands
	seasonQueries  queries.SeasonQueries
}

func NewSeasonHandler(seasonCommands commands.SeasonCommands, seasonQueries queries.SeasonQueries) *SeasonHandler {
	return &SeasonHandler{
		seasonCommands: seasonCommands,
		seasonQueries:  seasonQueries,
	}
}

// GET /seasons/:id/resources/:resourceId/ranking
func (h *SeasonHandler) GetRankingPreview(c *gin.Context) {
	seasonID, resourceID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	views, err := h.seasonQueries.RankingPreview(c.Request.Context(), seasonID, resourceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRankedApplicationViews(views))
}

// POST /seasons/:id/resources/:resourceId/allocate
func (h *SeasonHandler) Allocate(c *gin.Context) {
	seasonID, resourceID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	ranked, err := h.seasonCommands.Allocate(c.Request.Context(), seasonID, resourceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRankedApplications(ranked))
}

func (h *SeasonHandler) pathIDs(c *gin.Context) (seasonID, resourceID uuid.UUID, ok bool) {
	seasonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid season ID"})
		return uuid.Nil, uuid.Nil, false
	}
	resourceID, err = uuid.Parse(c.Param("resourceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource ID"})
		return uuid.Nil, uuid.Nil, false
	}
	return seasonID, resourceID, true
}
