package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Kirojava/Arsenic/internal/auth"
	"github.com/Kirojava/Arsenic/internal/cache"
	"github.com/Kirojava/Arsenic/internal/config"
	"github.com/Kirojava/Arsenic/internal/handler"
	"github.com/Kirojava/Arsenic/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	cacheClient *cache.Client,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	committeeHandler *handler.CommitteeHandler,
	contentHandler *handler.ContentHandler,
	registrationHandler *handler.RegistrationHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		if err := cacheClient.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusOK, echo.Map{"status": "degraded", "redis": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Public marketing reads
	api.GET("/committees", committeeHandler.List)
	api.GET("/committees/:id", committeeHandler.Get)
	api.GET("/team", contentHandler.ListTeam)
	api.GET("/events", contentHandler.ListEvents)
	api.GET("/gallery", contentHandler.ListGallery)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/users/me", userHandler.Me)
	secured.PATCH("/users/:id", userHandler.Update)
	secured.POST("/registrations", registrationHandler.Create)

	// Admin surface
	admin := secured.Group("", auth.RequireRole(model.RoleAdmin))
	admin.GET("/registrations", registrationHandler.List)
	admin.POST("/registrations/verify", registrationHandler.Verify)
	admin.PATCH("/registrations/:id", registrationHandler.Update)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
