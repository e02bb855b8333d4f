package routes

import (
	"RealEstateAPI/handlers"
	"RealEstateAPI/middleware"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handlers.HealthCheck)

	api := e.Group("/api")
	api.GET("/", handlers.HealthCheck)

	uc := handlers.NewUserController()
	api.POST("/users", uc.CreateUser)
	api.GET("/users/:firebase_uid", uc.GetUser)
	api.PUT("/users/:firebase_uid", uc.UpdateUser)
	api.GET("/users", uc.ListUsers)

	pc := handlers.NewPropertyController()
	api.POST("/properties", pc.CreateProperty)
	api.GET("/properties/:property_id", pc.GetProperty)
	api.PUT("/properties/:property_id", pc.UpdateProperty)
	api.GET("/properties", pc.ListProperties)
	api.DELETE("/properties/:property_id", pc.DeleteProperty)

	lc := handlers.NewListingController()
	api.POST("/listings", lc.CreateListing)
	api.GET("/listings/:listing_id", lc.GetListing)
	api.PUT("/listings/:listing_id", lc.UpdateListing)
	api.GET("/listings", lc.ListListings)

	dc := handlers.NewDocumentController()
	api.POST("/verification-documents", dc.CreateDocument)
	api.GET("/verification-documents/:document_id", dc.GetDocument)
	api.GET("/verification-documents", dc.ListDocuments)
	api.PUT("/verification-documents/:document_id/verify", dc.VerifyDocument)

	sc := handlers.NewSavedListingController()
	api.POST("/saved-listings", sc.CreateSavedListing)
	api.GET("/saved-listings", sc.ListSavedListings)
	api.DELETE("/saved-listings/:saved_id", sc.DeleteSavedListing)

	cc := handlers.NewComparisonController()
	api.POST("/comparisons", cc.CreateComparison)
	api.GET("/comparisons", cc.ListComparisons)
	api.DELETE("/comparisons/:comparison_id", cc.DeleteComparison)

	rc := handlers.NewReviewController()
	api.POST("/reviews", rc.CreateReview)
	api.GET("/reviews", rc.ListReviews)
	api.DELETE("/reviews/:review_id", rc.DeleteReview)

	mc := handlers.NewMessageController()
	api.POST("/messages", mc.CreateMessage)
	api.GET("/messages", mc.ListMessages)
	api.PUT("/messages/:message_id/read", mc.MarkMessageRead)

	nc := handlers.NewNotificationController()
	api.POST("/notifications", nc.CreateNotification)
	api.GET("/notifications", nc.ListNotifications)
	api.PUT("/notifications/:notification_id/read", nc.MarkNotificationRead)

	alc := handlers.NewAuditLogController()
	api.POST("/audit-logs", alc.CreateAuditLog)
	api.GET("/audit-logs", alc.ListAuditLogs)

	admin := api.Group("/admin", middleware.JWTMiddleware())
	ac := handlers.NewAdminController()
	admin.PUT("/users/:firebase_uid/suspend", ac.SuspendUser)
	admin.PUT("/users/:firebase_uid/ban", ac.BanUser)
	admin.GET("/analytics", ac.GetAnalytics)
}
