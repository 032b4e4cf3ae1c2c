package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/finbank/transaction-service/internal/pkg/database"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := BuildInfo{
		Version:     os.Getenv("VERSION"),
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}
	if buildInfo.Version == "" {
		buildInfo.Version = "development"
	}

	return func(c echo.Context) error {
		buildInfo.ServerTime = time.Now()

		return c.JSON(http.StatusOK, buildInfo)
	}
}

// NewReadyHandler creates a readiness handler that verifies the Redis
// cache dependency. The ledger itself is in-process and always ready.
func NewReadyHandler(redisClient *database.RedisClient) echo.HandlerFunc {
	return func(c echo.Context) error {
		if redisClient != nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()

			if err := redisClient.GetClient().Ping(ctx).Err(); err != nil {
				return c.String(http.StatusServiceUnavailable, "redis unavailable")
			}
		}
		return c.String(http.StatusOK, "OK")
	}
}

// RegisterHealthEndpoints registers the health check endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, redisClient *database.RedisClient) {
	e.GET("/ping", NewPingHandler(serviceName))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", NewReadyHandler(redisClient))
}
