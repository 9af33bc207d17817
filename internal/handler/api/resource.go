package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "venuebook/internal/handler/dto/request"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/handler/middleware"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ResourceHandler struct {
	engineQueries    queries.EngineQueries
	resourceCommands commands.ResourceCommands
}

func NewResourceHandler(engineQueries queries.EngineQueries, resourceCommands commands.ResourceCommands) *ResourceHandler {
	return &ResourceHandler{
		engineQueries:    engineQueries,
		resourceCommands: resourceCommands,
	}
}

// GET /resources/:id/grid?weekday=0..6
func (h *ResourceHandler) GetDayGrid(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource ID"})
		return
	}
	weekday, err := strconv.Atoi(c.Query("weekday"))
	if err != nil || weekday < 0 || weekday > 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weekday must be 0 (Sunday) through 6 (Saturday)"})
		return
	}

	view, err := h.engineQueries.DayGrid(c.Request.Context(), resourceID, time.Weekday(weekday))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayGridView(view))
}

// GET /resources/:id/availability?start=...&end=...&quantity=N
func (h *ResourceHandler) GetAvailability(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource ID"})
		return
	}
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must be RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be RFC3339"})
		return
	}
	quantity := 1
	if raw := c.Query("quantity"); raw != "" {
		if quantity, err = strconv.Atoi(raw); err != nil || quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be a positive integer"})
			return
		}
	}

	view, err := h.engineQueries.Availability(c.Request.Context(), queries.AvailabilityParams{
		ResourceID: resourceID,
		Start:      start,
		End:        end,
		Quantity:   quantity,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// POST /resources/:id/quote
func (h *ResourceHandler) Quote(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource ID"})
		return
	}

	var req reqdto.QuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	breakdown, err := h.engineQueries.Quote(c.Request.Context(), queries.QuoteParams{
		ResourceID:     resourceID,
		UserID:         actor.UserID,
		OrganizationID: actor.OrganizationID,
		Start:          req.StartTime,
		End:            req.EndTime,
		Quantity:       req.Quantity,
		Attendees:      req.Attendees,
		DiscountCode:   req.GetDiscountCode(),
		ServiceIDs:     req.ServiceIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// PUT /resources/:id/hours
func (h *ResourceHandler) UpdateHours(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource ID"})
		return
	}

	var req reqdto.UpdateResourceHoursRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if _, err := h.resourceCommands.UpdateHours(c.Request.Context(), resourceID, req.ToRawDayHours()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
