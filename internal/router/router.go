package router

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"regadmin/internal/auth"
	"regadmin/internal/config"
	"regadmin/internal/errors"
	"regadmin/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *zap.Logger,
	jwtSvc *auth.JWTService,
	gate *auth.Gate,
	authHandler *handler.AuthHandler,
	actionHandler *handler.ActionHandler,
	roleHandler *handler.RoleHandler,
	branchHandler *handler.BranchHandler,
	userHandler *handler.UserHandler,
	contentHandler *handler.ContentHandler,
	eventHandler *handler.EventHandler,
	sliderHandler *handler.HeroSliderHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(requestLogger(log))
	e.Use(deadline(cfg.RequestTimeout))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := e.Group("/api")

	// Public routes. The content image stream stays open so browsers can
	// embed it without a bearer header.
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh-token", authHandler.Refresh)
	api.GET("/content/:contentId/details/:detailId/images/:imageId", contentHandler.GetImage)

	// Everything below requires a verified access token and a live account.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ContextKey: auth.ContextKeyClaims,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtSvc.VerifyAccessToken(token)
		},
		ErrorHandler: gate.ErrorHandler,
	}), gate.LoadUser)

	admins := gate.RequireRoles("SystemAdmin", "Admin")
	staff := gate.RequireRoles("Admin", "Staff")
	system := gate.RequireRoles("SystemAdmin")

	secured.POST("/auth/register", authHandler.Register, admins)
	secured.GET("/auth/me", authHandler.Me)
	secured.PATCH("/auth/reset/change-password", authHandler.ChangePassword)
	secured.PATCH("/auth/reset/admin", authHandler.ResetPasswordByAdmin, admins)

	// Permission actions, the most sensitive surface.
	secured.POST("/action", actionHandler.Create, system)
	secured.GET("/action", actionHandler.List, system)
	secured.GET("/action/:actionId", actionHandler.Get, system)
	secured.PUT("/action/:actionId", actionHandler.Update, system)
	secured.DELETE("/action/:actionId", actionHandler.Delete, system)

	secured.POST("/role", roleHandler.Create, admins)
	secured.GET("/role", roleHandler.List, admins)
	secured.GET("/role/:roleId", roleHandler.Get, admins)
	secured.PUT("/role/:roleId", roleHandler.Update, admins)
	secured.DELETE("/role/:roleId", roleHandler.Delete, admins)

	secured.POST("/branch", branchHandler.Create, admins)
	secured.GET("/branch", branchHandler.List)
	secured.GET("/branch/:branchId", branchHandler.Get)
	secured.PUT("/branch/:branchId", branchHandler.Update, admins)
	secured.DELETE("/branch/:branchId", branchHandler.Delete, admins)

	secured.POST("/user/register", authHandler.Register, admins)
	secured.POST("/user/register-with-info", userHandler.RegisterWithInfo, admins)
	secured.GET("/user", userHandler.List, admins)
	secured.GET("/user/user-info", userHandler.ListUserInfo, staff)
	secured.GET("/user/user-info/:userInfoId", userHandler.GetUserInfo, staff)
	secured.PUT("/user/user-info/:userInfoId", userHandler.UpdateUserInfo, staff)
	secured.GET("/user/:userId", userHandler.Get, admins)
	secured.PUT("/user/:userId", userHandler.Update, admins)
	secured.DELETE("/user/:userId", userHandler.Delete, admins)

	secured.POST("/content", contentHandler.Create, staff)
	secured.GET("/content", contentHandler.List)
	secured.GET("/content/:contentId", contentHandler.Get)
	secured.PUT("/content/:contentId", contentHandler.Update, staff)
	secured.DELETE("/content/:contentId", contentHandler.Delete, staff)

	secured.POST("/event", eventHandler.Create, staff)
	secured.GET("/event", eventHandler.List, staff)
	secured.GET("/event/:eventId", eventHandler.Get, staff)
	secured.PUT("/event/:eventId", eventHandler.Update, staff)
	secured.DELETE("/event/:eventId", eventHandler.Delete, staff)

	secured.POST("/hero-slider", sliderHandler.Create, staff)
	secured.GET("/hero-slider", sliderHandler.List)
	secured.GET("/hero-slider/:sliderId", sliderHandler.GetImage)
	secured.DELETE("/hero-slider/:sliderId", sliderHandler.Delete, staff)
}

// requestLogger logs one structured line per request.
func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
				log.Error("request", fields...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	})
}

// deadline bounds every request. A handler that overruns surfaces as a 504
// with the Timeout envelope code.
func deadline(timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if timeout <= 0 {
				return next(c)
			}
			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)
			if err != nil && stderrors.Is(err, context.DeadlineExceeded) && !c.Response().Committed {
				status := http.StatusGatewayTimeout
				return c.JSON(status, echo.Map{
					"code":    errors.StatusText(status),
					"message": "Timeout",
				})
			}
			return err
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
