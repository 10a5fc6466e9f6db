package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"appointment-engine/internal/domain/staff"
	"appointment-engine/internal/handler/api"
	"appointment-engine/internal/handler/middleware"
	"appointment-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Health          *api.HealthHandler
	Bookings        *api.BookingHandler
	EditRequests    *api.EditRequestHandler
	BookingRequests *api.BookingRequestHandler
	JobCards        *api.JobCardHandler
	Availability    *api.AvailabilityHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, logger *middleware.Logger) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.Middleware())
	engine.Use(middleware.RateLimitMiddleware(cfg.RateLimit))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", h.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staffOnly := authMiddleware.RequireRoleAtLeast(staff.RoleTherapist)
	adminOnly := authMiddleware.RequireRoleAtLeast(staff.RoleAdmin)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Bookings.Create, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodGet, Path: "", Handler: h.Bookings.List, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodGet, Path: "/reception-desk", Handler: h.Bookings.ReceptionDesk, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodGet, Path: "/calendar", Handler: h.Bookings.Calendar, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/check-in", Handler: h.Bookings.CheckIn, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.Get, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Bookings.Update, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Bookings.Delete, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPost, Path: "/:id/collect-payment", Handler: h.Bookings.CollectPayment, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		editRequests := apiGroup.Group("/session-edit-requests")
		{
			addRoutes(editRequests, []route{
				{Method: http.MethodPost, Path: "", Handler: h.EditRequests.Create},
				{Method: http.MethodGet, Path: "", Handler: h.EditRequests.List, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.EditRequests.Update, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.EditRequests.Delete, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		bookingRequests := apiGroup.Group("/booking-requests")
		{
			addRoutes(bookingRequests, []route{
				{Method: http.MethodPost, Path: "", Handler: h.BookingRequests.Create},
				{Method: http.MethodGet, Path: "", Handler: h.BookingRequests.List, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.BookingRequests.Get, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.BookingRequests.Update, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.BookingRequests.Reject, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.BookingRequests.Delete, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/job-cards", Handler: h.JobCards.Create, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodGet, Path: "/availability/providers/:id", Handler: h.Availability.ForProvider, Mw: []gin.HandlerFunc{staffOnly}},
		})
	}
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
