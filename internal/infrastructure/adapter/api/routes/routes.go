package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler of the API
type Handlers struct {
	Raffle        *handler.RaffleHandler
	Purchase      *handler.PurchaseHandler
	Prize         *handler.PrizeHandler
	Draw          *handler.DrawHandler
	PaymentMethod *handler.PaymentMethodHandler
	Health        *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, adminAuth gin.HandlerFunc) {
	router.GET("/health", h.Health.Health)

	api := router.Group("/api")
	{
		api.GET("/payment-methods", h.PaymentMethod.ListActive)
		api.GET("/purchases", h.Purchase.PurchasesByEmail)

		raffles := api.Group("/raffles")
		raffles.GET("/active", h.Raffle.GetActive)
		raffles.GET("/:id", h.Raffle.Get)
		raffles.GET("/:id/numbers/occupied", h.Purchase.OccupiedNumbers)
		raffles.GET("/:id/numbers/available", h.Purchase.AvailableNumbers)
		raffles.GET("/:id/numbers/:number/available", h.Purchase.NumberAvailable)
		raffles.POST("/:id/purchases", h.Purchase.Purchase)
		raffles.GET("/:id/prizes", h.Prize.ListByRaffle)
		raffles.GET("/:id/winners", h.Draw.ListWinners)
	}

	admin := router.Group("/api/admin", adminAuth)
	{
		raffles := admin.Group("/raffles")
		raffles.GET("", h.Raffle.List)
		raffles.POST("", h.Raffle.Create)
		raffles.GET("/stats", h.Raffle.Stats)
		raffles.PUT("/:id", h.Raffle.Update)
		raffles.DELETE("/:id", h.Raffle.Cancel)
		raffles.GET("/:id/can-sell", h.Raffle.CanSell)
		raffles.GET("/:id/consistency", h.Raffle.CheckSoldCounter)
		raffles.GET("/:id/tickets", h.Purchase.ListTickets)
		raffles.GET("/:id/tickets/unverified", h.Purchase.ListUnverified)
		raffles.GET("/:id/purchases", h.Purchase.PurchasesByRaffle)
		raffles.GET("/:id/purchases/cancelled", h.Purchase.CancelledPurchases)
		raffles.GET("/:id/prizes", h.Prize.ListAllByRaffle)
		raffles.POST("/:id/prizes", h.Prize.Create)
		raffles.POST("/:id/prizes/batch", h.Prize.CreateBatch)
		raffles.GET("/:id/prizes/free-positions", h.Prize.FreePositions)
		raffles.POST("/:id/draw", h.Draw.DrawMultiple)
		raffles.POST("/:id/draw/single", h.Draw.DrawSingle)

		admin.PUT("/active-raffle/:id", h.Raffle.Activate)
		admin.DELETE("/active-raffle", h.Raffle.DeactivateAll)

		admin.POST("/transactions/:txnId/verify", h.Purchase.VerifyTransaction)
		admin.POST("/transactions/:txnId/cancel", h.Purchase.CancelTransaction)
		admin.POST("/tickets/:id/verify", h.Purchase.VerifyTicket)
		admin.PUT("/tickets/:id/proof", h.Purchase.ReplaceProof)

		prizes := admin.Group("/prizes")
		prizes.GET("/:id", h.Prize.Get)
		prizes.PUT("/:id", h.Prize.Update)
		prizes.DELETE("/:id", h.Prize.Delete)
		prizes.POST("/:id/assign", h.Prize.Assign)
		prizes.POST("/:id/unassign", h.Prize.Unassign)

		admin.GET("/winners", h.Draw.ListAllWinners)
		admin.PATCH("/winners/:id/delivery", h.Draw.UpdateDelivery)

		methods := admin.Group("/payment-methods")
		methods.GET("", h.PaymentMethod.ListAll)
		methods.POST("", h.PaymentMethod.Create)
		methods.GET("/:code", h.PaymentMethod.Get)
		methods.PUT("/:code", h.PaymentMethod.Update)
		methods.DELETE("/:code", h.PaymentMethod.Delete)
		methods.PATCH("/:code/toggle", h.PaymentMethod.Toggle)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, corsOrigins []string) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(corsOrigins))
}
