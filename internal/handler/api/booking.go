package api

import (
	"net/http"
	"strconv"

	reqdto "venuebook/internal/handler/dto/request"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/handler/middleware"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// POST /bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.bookingCommands.Create(c.Request.Context(), commands.CreateBookingParams{
		TenantID:       actor.TenantID,
		ResourceID:     req.ResourceID,
		UserID:         actor.UserID,
		OrganizationID: actor.OrganizationID,
		Start:          req.StartTime,
		End:            req.EndTime,
		Quantity:       req.Quantity,
		Attendees:      req.Attendees,
		DiscountCode:   req.GetDiscountCode(),
		ServiceIDs:     req.ServiceIDs,
		Metadata:       req.Metadata,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBooking(result.Booking, result.Breakdown))
}

// GET /bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// GET /bookings
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	limit, after, ok := listPageParams(c)
	if !ok {
		return
	}

	items, next, err := h.bookingQueries.ListByUser(c.Request.Context(), actor.UserID, after, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingListPage(items, next))
}

// GET /resources/:id/bookings
func (h *BookingHandler) GetResourceBookings(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource ID"})
		return
	}

	limit, after, ok := listPageParams(c)
	if !ok {
		return
	}

	items, next, err := h.bookingQueries.ListByResource(c.Request.Context(), resourceID, after, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingListPage(items, next))
}

// listPageParams reads the limit and cursor query parameters. On a bad
// limit it writes the 400 response itself and reports ok=false.
func listPageParams(c *gin.Context) (int, *queries.Cursor, bool) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		var err error
		if limit, err = strconv.Atoi(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return 0, nil, false
		}
	}
	var after *queries.Cursor
	if raw := c.Query("cursor"); raw != "" {
		after = &queries.Cursor{After: raw}
	}
	return limit, after, true
}

// POST /bookings/:id/approve
func (h *BookingHandler) ApproveBooking(c *gin.Context) {
	h.transition(c, func(id uuid.UUID, req reqdto.TransitionRequest) (*resdto.BookingResponse, error) {
		b, err := h.bookingCommands.Approve(c.Request.Context(), id, req.Version)
		if err != nil {
			return nil, err
		}
		return resdto.FromBooking(b, nil), nil
	})
}

// POST /bookings/:id/reject
func (h *BookingHandler) RejectBooking(c *gin.Context) {
	h.transition(c, func(id uuid.UUID, req reqdto.TransitionRequest) (*resdto.BookingResponse, error) {
		b, err := h.bookingCommands.Reject(c.Request.Context(), id, req.Version, req.GetReason())
		if err != nil {
			return nil, err
		}
		return resdto.FromBooking(b, nil), nil
	})
}

// POST /bookings/:id/cancel
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.transition(c, func(id uuid.UUID, req reqdto.TransitionRequest) (*resdto.BookingResponse, error) {
		result, err := h.bookingCommands.Cancel(c.Request.Context(), id, req.Version, req.GetReason())
		if err != nil {
			return nil, err
		}
		return resdto.FromBooking(result.Booking, nil).WithRefundEligible(result.RefundEligible), nil
	})
}

// POST /bookings/:id/complete
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	h.transition(c, func(id uuid.UUID, req reqdto.TransitionRequest) (*resdto.BookingResponse, error) {
		b, err := h.bookingCommands.Complete(c.Request.Context(), id, req.Version)
		if err != nil {
			return nil, err
		}
		return resdto.FromBooking(b, nil), nil
	})
}

// POST /bookings/:id/reschedule
func (h *BookingHandler) RescheduleBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	var req reqdto.RescheduleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.bookingCommands.Reschedule(c.Request.Context(), commands.RescheduleParams{
		BookingID: id,
		Version:   req.Version,
		Start:     req.StartTime,
		End:       req.EndTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(result.Booking, result.Breakdown))
}

func (h *BookingHandler) transition(c *gin.Context, op func(uuid.UUID, reqdto.TransitionRequest) (*resdto.BookingResponse, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	var req reqdto.TransitionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	resp, err := op(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
