package router

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"wittycar/internal/auth"
	"wittycar/internal/errors"
	"wittycar/internal/handler"
	"wittycar/internal/httputil"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	vehicleHandler *handler.VehicleHandler,
	serviceRecordHandler *handler.ServiceRecordHandler,
	appointmentHandler *handler.AppointmentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/health", func(c echo.Context) error {
		return httputil.OK(c, "WittyCar API is healthy", nil)
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Secured routes (require a bearer token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if stderrors.Is(err, echojwt.ErrJWTMissing) {
				return httputil.Fail(c, errors.Unauthenticated("access token is required"))
			}
			return httputil.Fail(c, errors.Unauthenticated("invalid or expired token"))
		},
	}))

	secured.GET("/auth/profile", authHandler.GetProfile)
	secured.PUT("/auth/profile", authHandler.UpdateProfile)
	secured.POST("/auth/verify-email", authHandler.VerifyEmail)
	secured.POST("/auth/deactivate", authHandler.Deactivate)

	secured.GET("/vehicles", vehicleHandler.ListVehicles)
	secured.POST("/vehicles", vehicleHandler.CreateVehicle)
	secured.GET("/vehicles/:vehicleId/service-records", serviceRecordHandler.ListServiceRecords)
	secured.POST("/vehicles/:vehicleId/service-records", serviceRecordHandler.CreateServiceRecord)
	secured.GET("/vehicles/:id", vehicleHandler.GetVehicle)
	secured.PUT("/vehicles/:id", vehicleHandler.UpdateVehicle)
	secured.DELETE("/vehicles/:id", vehicleHandler.DeleteVehicle)

	secured.GET("/appointments", appointmentHandler.ListAppointments)
	secured.POST("/appointments", appointmentHandler.CreateAppointment)
	secured.GET("/appointments/:id", appointmentHandler.GetAppointment)
	secured.PUT("/appointments/:id", appointmentHandler.UpdateAppointment)
	secured.DELETE("/appointments/:id", appointmentHandler.DeleteAppointment)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
