package httpv1

import (
	"net/http"

	"github.com/Egor213/LogiGraph/internal/metrics"
	"github.com/Egor213/LogiGraph/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
)

const metricsSubsystem = "logigraph"

func ConfigureRouter(e *echo.Echo, services *service.Services, graphqlHandler http.Handler) {
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger())
	e.Use(metrics.Middleware(metricsSubsystem))

	e.Any("/graphql", echo.WrapHandler(graphqlHandler))
	e.GET("/healthz", healthz(services.Health))
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(log.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency_ms": v.Latency.Milliseconds(),
				"remote_ip":  v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("HTTP request failed")
				return nil
			}
			entry.Debug("HTTP request")
			return nil
		},
	})
}

func healthz(hs service.Health) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := hs.Check(c.Request().Context()); err != nil {
			log.WithError(err).Warn("Health check failed")
			return c.String(http.StatusServiceUnavailable, "unavailable")
		}
		return c.String(http.StatusOK, "ok")
	}
}
