package routes

import (
	"github.com/notmarkmiranda/golf-dads-api-sub000/controllers"
	"github.com/notmarkmiranda/golf-dads-api-sub000/middlewares"
	"github.com/notmarkmiranda/golf-dads-api-sub000/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Devices      *services.DeviceService
	Prefs        *services.PreferenceService
	Groups       *services.GroupService
	Postings     *services.PostingService
	Reservations *services.ReservationService
	Hub          *services.RealtimeHub
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	deviceCtl := controllers.NewDeviceController(d.Devices)
	notificationCtl := controllers.NewNotificationController(d.Prefs)
	groupCtl := controllers.NewGroupController(d.Groups)
	postingCtl := controllers.NewPostingController(d.Postings)
	reservationCtl := controllers.NewReservationController(d.Reservations)
	realtimeCtl := controllers.NewRealtimeController(d.Hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.DELETE("/profile", controllers.DeleteAccount)

		user.POST("/devices", deviceCtl.Register)
		user.DELETE("/devices", deviceCtl.Unregister)

		user.GET("/notifications", notificationCtl.ListDeliveries)
		user.GET("/notifications/preferences", notificationCtl.GetPreferences)
		user.PUT("/notifications/preferences", notificationCtl.UpdatePreferences)

		user.GET("/ws", realtimeCtl.NotificationsWS)
	}

	groups := r.Group("/groups")
	groups.Use(middlewares.AuthMiddleware())
	{
		groups.POST("", groupCtl.Create)
		groups.POST("/join", groupCtl.Join)
		groups.GET("/:id/members", groupCtl.Members)
		groups.POST("/:id/mute", groupCtl.Mute)
		groups.DELETE("/:id/membership", groupCtl.Leave)
	}

	postings := r.Group("/postings")
	postings.Use(middlewares.AuthMiddleware())
	{
		postings.POST("", postingCtl.Create)
		postings.GET("", postingCtl.Upcoming)
		postings.GET("/:id", postingCtl.Get)
		postings.POST("/:id/join", postingCtl.Join)
		postings.DELETE("/:id", postingCtl.Delete)
	}

	reservations := r.Group("/reservations")
	reservations.Use(middlewares.AuthMiddleware())
	{
		reservations.POST("", reservationCtl.Create)
		reservations.GET("", reservationCtl.ListMine)
		reservations.DELETE("/:id", reservationCtl.Cancel)
	}

	return r
}
