package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"backroom-api/internal/handler/api"
	"backroom-api/internal/handler/httperr"
	"backroom-api/internal/handler/middleware"
	"backroom-api/internal/pkg/config"
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
	logger *slog.Logger,
	mailHandler *api.MailHandler,
	enquiryHandler *api.EnquiryHandler,
	bookingHandler *api.BookingHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, mailHandler, enquiryHandler, bookingHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	mailHandler *api.MailHandler,
	enquiryHandler *api.EnquiryHandler,
	bookingHandler *api.BookingHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httperr.Response{
			Status:  http.StatusNotFound,
			Success: false,
			Error:   "Endpoint not found",
		})
	})

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/send-email", Handler: mailHandler.SendEmail},
			{Method: http.MethodPost, Path: "/send-bulk-email", Handler: mailHandler.SendBulkEmail},
			{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.Create},
		})

		enquiries := apiGroup.Group("/enquiries")
		{
			addRoutes(enquiries, []route{
				{Method: http.MethodPost, Path: "/private-hire", Handler: enquiryHandler.SubmitPrivateHire},
				{Method: http.MethodPost, Path: "/careers", Handler: enquiryHandler.SubmitCareer},
				{Method: http.MethodPost, Path: "/general", Handler: enquiryHandler.SubmitGeneral},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: adminHandler.ListBookings},
				{Method: http.MethodGet, Path: "/inquiries/pending", Handler: adminHandler.ListPendingInquiries},
				{Method: http.MethodPost, Path: "/bookings/:paymentIntentId/capture", Handler: adminHandler.CaptureBooking},
				{Method: http.MethodPost, Path: "/bookings/:paymentIntentId/cancel", Handler: adminHandler.CancelBooking},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Backroom Leeds email service is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
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
