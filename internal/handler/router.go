package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"evcharge/internal/handler/api"
	"evcharge/internal/handler/middleware"
	"evcharge/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	stationHandler *api.StationHandler,
	chargerHandler *api.ChargerHandler,
	clientHandler *api.ClientHandler,
	reservationHandler *api.ReservationHandler,
	discountHandler *api.DiscountHandler,
	checkoutHandler *api.CheckoutHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, stationHandler, chargerHandler, clientHandler, reservationHandler, discountHandler, checkoutHandler)
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
	stationHandler *api.StationHandler,
	chargerHandler *api.ChargerHandler,
	clientHandler *api.ClientHandler,
	reservationHandler *api.ReservationHandler,
	discountHandler *api.DiscountHandler,
	checkoutHandler *api.CheckoutHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/stations"), []route{
			{Method: http.MethodPost, Path: "", Handler: stationHandler.CreateStation},
			{Method: http.MethodGet, Path: "", Handler: stationHandler.ListStations},
			{Method: http.MethodGet, Path: "/:id", Handler: stationHandler.GetStation},
			{Method: http.MethodGet, Path: "/:id/chargers", Handler: stationHandler.ListChargers},
			{Method: http.MethodGet, Path: "/:id/quote", Handler: stationHandler.QuotePrice},
			{Method: http.MethodGet, Path: "/:id/discount-rules", Handler: discountHandler.ListStationRules},
		})

		addRoutes(apiGroup.Group("/chargers"), []route{
			{Method: http.MethodPost, Path: "", Handler: chargerHandler.CreateCharger},
			{Method: http.MethodGet, Path: "/:id", Handler: chargerHandler.GetCharger},
			{Method: http.MethodPost, Path: "/:id/maintenance", Handler: chargerHandler.SetUnderMaintenance},
			{Method: http.MethodPost, Path: "/:id/available", Handler: chargerHandler.SetAvailable},
			{Method: http.MethodPost, Path: "/:id/in-use", Handler: chargerHandler.SetInUse},
			{Method: http.MethodGet, Path: "/:id/reservations", Handler: withParamAlias("id", "chargerId", reservationHandler.ListChargerReservations)},
		})

		addRoutes(apiGroup.Group("/clients"), []route{
			{Method: http.MethodPost, Path: "", Handler: clientHandler.RegisterClient},
			{Method: http.MethodGet, Path: "/:id/reservations", Handler: withParamAlias("id", "clientId", reservationHandler.ListClientReservations)},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
			{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.CancelReservation},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: reservationHandler.CompleteReservation},
		})

		addRoutes(apiGroup.Group("/discount-rules"), []route{
			{Method: http.MethodPost, Path: "", Handler: discountHandler.CreateRule},
			{Method: http.MethodPut, Path: "/:id", Handler: discountHandler.UpdateRule},
			{Method: http.MethodDelete, Path: "/:id", Handler: discountHandler.DeleteRule},
		})

		addRoutes(apiGroup.Group("/checkout"), []route{
			{Method: http.MethodPost, Path: "/sessions", Handler: checkoutHandler.StartCheckout},
			{Method: http.MethodPost, Path: "/confirm", Handler: checkoutHandler.ConfirmCheckout},
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}

// withParamAlias exposes a path param under the name the handler reads, so one
// listing handler serves both nested routes.
func withParamAlias(from, to string, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Params = append(c.Params, gin.Param{Key: to, Value: c.Param(from)})
		h(c)
	}
}
