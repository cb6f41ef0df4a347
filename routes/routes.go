package routes

import (
	"github.com/gin-gonic/gin"

	"sitzy/internal/handlers"
	"sitzy/internal/i18n"
	"sitzy/internal/middleware"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Car        *handlers.CarHandler
	Invitation *handlers.InvitationHandler
	Seat       *handlers.SeatHandler
	Driver     *handlers.DriverHandler
	Dashboard  *handlers.DashboardHandler
	Ride       *handlers.RideHandler
}

// Setup registers the API surface. GET /invitations/:token is the single
// unauthenticated route besides auth itself: the token is the credential.
func Setup(router *gin.Engine, h *Handlers, auth middleware.Authenticator, loc *i18n.Localizer) {
	authRequired := middleware.AuthRequired(auth, loc)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	cars := router.Group("/cars")
	cars.Use(authRequired)
	{
		cars.GET("/me", h.Car.GetMyCar)
		cars.POST("", h.Car.CreateCar)
		cars.PATCH("/:car_id", h.Car.UpdateCar)
		cars.DELETE("/:car_id", h.Car.DeleteCar)

		cars.POST("/:car_id/invite", h.Invitation.CreateInvitation)
		cars.GET("/:car_id/invitations", h.Invitation.ListSentInvitations)

		cars.POST("/:car_id/driver", h.Driver.AssignDriver)
		cars.DELETE("/:car_id/driver", h.Driver.RevokeDriver)
		cars.GET("/:car_id/driver", h.Driver.GetActiveDriver)
	}

	invitations := router.Group("/invitations")
	{
		invitations.GET("/:token", h.Invitation.GetInvitation)
		invitations.GET("", authRequired, h.Invitation.ListReceivedInvitations)
		invitations.POST("/:token/accept", authRequired, h.Invitation.AcceptInvitation)
		invitations.POST("/:token/reject", authRequired, h.Invitation.RejectInvitation)
		invitations.DELETE("/:token", authRequired, h.Invitation.CancelInvitation)
	}

	seats := router.Group("/seats")
	seats.Use(authRequired)
	{
		seats.GET("", h.Seat.ListSeats)
		seats.POST("/choose", h.Seat.ChooseSeat)
		seats.PATCH("/change", h.Seat.ChangeSeat)
		seats.DELETE("/me", h.Seat.ReleaseSeat)
	}

	router.GET("/dashboard", authRequired, h.Dashboard.GetDashboard)

	rides := router.Group("/rides")
	rides.Use(authRequired)
	{
		rides.POST("", h.Ride.NotImplemented)
		rides.GET("/:ride_id", h.Ride.NotImplemented)
		rides.PATCH("/:ride_id", h.Ride.NotImplemented)
		rides.DELETE("/:ride_id", h.Ride.NotImplemented)
		rides.POST("/:ride_id/book", h.Ride.NotImplemented)
		rides.DELETE("/:ride_id/book", h.Ride.NotImplemented)
	}
}
