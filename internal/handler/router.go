package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"resort-engine/internal/handler/api"
	"resort-engine/internal/handler/middleware"
	"resort-engine/internal/infra/metrics"
	"resort-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Customer    *api.CustomerHandler
	Reservation *api.ReservationHandler
	Billing     *api.BillingHandler
	Resource    *api.ResourceHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, m, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.Locale())
	if m != nil {
		engine.Use(m.Middleware())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	if m != nil {
		engine.GET("/metrics", m.Handler())
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/customers", Handler: h.Customer.Register},
		})

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())
		staff := []gin.HandlerFunc{authMiddleware.RequireStaff()}

		addRoutes(authed, []route{
			{Method: http.MethodPost, Path: "/me/verification-code", Handler: h.Customer.RequestCode},
			{Method: http.MethodPost, Path: "/me/verify", Handler: h.Customer.Verify},

			{Method: http.MethodPost, Path: "/quotes/:kind", Handler: h.Reservation.Quote},
			{Method: http.MethodPost, Path: "/reservations/:kind", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.List},
			{Method: http.MethodGet, Path: "/reservations/:kind/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPost, Path: "/reservations/:kind/:id/:action", Handler: h.Reservation.Transition},
			{Method: http.MethodDelete, Path: "/reservations/:kind/:id", Handler: h.Reservation.Delete},

			{Method: http.MethodGet, Path: "/invoices", Handler: h.Billing.Invoices},
			{Method: http.MethodGet, Path: "/payments", Handler: h.Billing.Payments},
			{Method: http.MethodPost, Path: "/payments", Handler: h.Billing.Pay},

			{Method: http.MethodGet, Path: "/resources", Handler: h.Resource.List},
			{Method: http.MethodGet, Path: "/resources/:id", Handler: h.Resource.Get},
			{Method: http.MethodGet, Path: "/resources/:id/rates", Handler: h.Resource.Rates},
			{Method: http.MethodPost, Path: "/resources", Handler: h.Resource.Create, Mw: staff},
			{Method: http.MethodPatch, Path: "/resources/:id", Handler: h.Resource.Update, Mw: staff},
			{Method: http.MethodDelete, Path: "/resources/:id", Handler: h.Resource.Delete, Mw: staff},
			{Method: http.MethodPut, Path: "/resources/:id/rates/:weekday", Handler: h.Resource.SetWeeklyRate, Mw: staff},
			{Method: http.MethodPost, Path: "/resources/:id/overrides", Handler: h.Resource.AddOverride, Mw: staff},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
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
