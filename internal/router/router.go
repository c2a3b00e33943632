package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"parklot/internal/auth"
	"parklot/internal/config"
	"parklot/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	accountHandler *handler.AccountHandler,
	vehicleHandler *handler.VehicleHandler,
	parkingHandler *handler.ParkingHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Auth routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/logout", authHandler.Logout)
	api.GET("/auth/check", authHandler.Check)

	// Account routes
	api.POST("/accounts", accountHandler.CreateAccount)
	api.GET("/accounts", accountHandler.ListAccounts)
	api.GET("/accounts/:id", accountHandler.GetAccount)
	api.PUT("/accounts/:id", accountHandler.UpdateAccount)
	api.DELETE("/accounts/:id", accountHandler.DeleteAccount)

	// Vehicle routes
	api.POST("/vehicles", vehicleHandler.CreateVehicle)
	api.GET("/vehicles", vehicleHandler.ListVehicles)
	api.GET("/vehicles/account/:id", vehicleHandler.ListVehiclesByAccount)
	api.GET("/vehicles/:id", vehicleHandler.GetVehicle)
	api.PUT("/vehicles/:id", vehicleHandler.UpdateVehicle)
	api.DELETE("/vehicles/:id", vehicleHandler.DeleteVehicle)

	// Parking session routes
	api.POST("/sessions/entry", parkingHandler.RegisterEntry)
	api.PUT("/sessions/exit/:id", parkingHandler.RegisterExit)
	api.GET("/sessions", parkingHandler.ListSessions)
	api.GET("/sessions/active", parkingHandler.ListActiveSessions)
	api.GET("/sessions/:id", parkingHandler.GetSession)
	api.DELETE("/sessions/:id", parkingHandler.DeleteSession)

	// Secured routes (require a valid session cookie)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.SessionSecret),
		TokenLookup: "cookie:" + auth.CookieName,
	}))

	secured.GET("/auth/me", func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		claims, _ := token.Claims.(jwt.MapClaims)
		return c.JSON(http.StatusOK, echo.Map{"token_claims": claims})
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
