package routes

import (
	"profast/config"
	parcelController "profast/controllers/parcel"
	paymentController "profast/controllers/payment"
	riderController "profast/controllers/rider"
	trackingController "profast/controllers/tracking"
	userController "profast/controllers/user"
	"profast/httpServices/payments"
	"profast/logger"
	"profast/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	verifier := middleware.NewRSATokenVerifier(cfg.PublicKeyURL)
	auth := middleware.NewAuth(db, verifier)
	gateway := payments.NewClient(cfg.PaymentBaseURL, cfg.PaymentSecretKey)

	asyncLogger := logger.NewAsyncLogger(db)
	go asyncLogger.ProcessLog()

	parcels := parcelController.NewParcelController(db, asyncLogger)
	users := userController.NewUserController(db, asyncLogger)
	riders := riderController.NewRiderController(db, asyncLogger)
	paymentsCtrl := paymentController.NewPaymentController(db, asyncLogger, gateway)
	trackings := trackingController.NewTrackingController(db, asyncLogger)

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Profast server is cooking")
	})

	api := app.Group("/api")

	/*=============================================================================
	| Parcel Routes
	===============================================================================*/
	api.Get("/parcels", auth.RequireAuth(), auth.RequireSubjectMatch(), parcels.Index)
	api.Get("/parcels/delivery/status-count", auth.RequireAuth(), auth.RequireSubjectMatch(), auth.RequireAdmin(), parcels.StatusCount)
	api.Get("/parcels/:id", auth.RequireAuth(), auth.RequireSubjectMatch(), parcels.Show)
	api.Post("/parcels", auth.RequireAuth(), auth.RequireSubjectMatch(), parcels.Store)
	api.Patch("/parcels/:id/assign", auth.RequireAuth(), auth.RequireSubjectMatch(), auth.RequireAdmin(), parcels.Assign)
	api.Patch("/parcels/:id/status", auth.RequireAuth(), auth.RequireSubjectMatch(), auth.RequireRider(), parcels.UpdateStatus)
	api.Patch("/parcels/:id/cashout", auth.RequireAuth(), auth.RequireSubjectMatch(), auth.RequireRider(), parcels.Cashout)
	api.Delete("/parcels/:id", auth.RequireAuth(), auth.RequireSubjectMatch(), parcels.Destroy)

	// Rider task views over parcels
	api.Get("/rider/parcels", auth.RequireAuth(), auth.RequireSubjectMatch(), auth.RequireRider(), parcels.RiderTasks)
	api.Get("/rider/completed-parcels", auth.RequireAuth(), auth.RequireSubjectMatch(), auth.RequireRider(), parcels.RiderCompleted)

	/*=============================================================================
	| Tracking Routes
	===============================================================================*/
	api.Get("/trackings/:trackingId", auth.RequireAuth(), auth.RequireSubjectMatch(), trackings.History)
	api.Post("/trackings", auth.RequireAuth(), auth.RequireSubjectMatch(), trackings.Store)

	/*=============================================================================
	| Payment Routes
	===============================================================================*/
	api.Get("/payments", auth.RequireAuth(), auth.RequireSubjectMatch(), paymentsCtrl.Index)
	api.Post("/payments", auth.RequireAuth(), auth.RequireSubjectMatch(), paymentsCtrl.Store)
	api.Post("/create-payment-intent", auth.RequireAuth(), auth.RequireSubjectMatch(), paymentsCtrl.CreateIntent)

	/*=============================================================================
	| User Routes
	===============================================================================*/
	api.Post("/users", users.Login)
	api.Get("/users/search", auth.RequireAuth(), auth.RequireSubjectMatch(), auth.RequireAdmin(), users.Search)
	api.Get("/users/:email/role", auth.RequireAuth(), users.GetRole)
	api.Patch("/users/:id/role", auth.RequireAuth(), auth.RequireSubjectMatch(), auth.RequireAdmin(), users.UpdateRole)

	/*=============================================================================
	| Rider Routes
	===============================================================================*/
	api.Post("/riders", auth.RequireAuth(), auth.RequireSubjectMatch(), riders.Apply)
	api.Get("/riders/pending", auth.RequireAuth(), auth.RequireSubjectMatch(), auth.RequireAdmin(), riders.Pending)
	api.Get("/riders/active", auth.RequireAuth(), auth.RequireSubjectMatch(), auth.RequireAdmin(), riders.Active)
	api.Get("/riders/available", auth.RequireAuth(), auth.RequireSubjectMatch(), auth.RequireAdmin(), riders.Available)
	api.Patch("/riders/:id/status", auth.RequireAuth(), auth.RequireSubjectMatch(), auth.RequireAdmin(), riders.UpdateStatus)
}
