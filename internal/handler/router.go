package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venuebook/internal/handler/api"
	"venuebook/internal/handler/middleware"
	"venuebook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	resourceHandler *api.ResourceHandler,
	bookingHandler *api.BookingHandler,
	seasonHandler *api.SeasonHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, resourceHandler, bookingHandler, seasonHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	resourceHandler *api.ResourceHandler,
	bookingHandler *api.BookingHandler,
	seasonHandler *api.SeasonHandler,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.RequireActor())
	{
		resources := apiGroup.Group("/resources")
		{
			addRoutes(resources, []route{
				{Method: http.MethodGet, Path: "/:id/grid", Handler: resourceHandler.GetDayGrid},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: resourceHandler.GetAvailability},
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: bookingHandler.GetResourceBookings},
				{Method: http.MethodPost, Path: "/:id/quote", Handler: resourceHandler.Quote},
				{Method: http.MethodPut, Path: "/:id/hours", Handler: resourceHandler.UpdateHours},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.GetUserBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: bookingHandler.ApproveBooking},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: bookingHandler.RejectBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: bookingHandler.CompleteBooking},
				{Method: http.MethodPost, Path: "/:id/reschedule", Handler: bookingHandler.RescheduleBooking},
			})
		}

		seasons := apiGroup.Group("/seasons")
		{
			addRoutes(seasons, []route{
				{Method: http.MethodGet, Path: "/:id/resources/:resourceId/ranking", Handler: seasonHandler.GetRankingPreview},
				{Method: http.MethodPost, Path: "/:id/resources/:resourceId/allocate", Handler: seasonHandler.Allocate},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
