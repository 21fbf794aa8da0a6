package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// Checker reports whether a dependency is usable
type Checker func(ctx context.Context) error

// ReadinessReport is the body of /ready
type ReadinessReport struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

const checkTimeout = 2 * time.Second

// NewPingHandler returns build information for the service
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	info := BuildInfo{
		Version:     envOr("VERSION", "development"),
		GitCommit:   envOr("GIT_COMMIT", "unknown"),
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}

	return func(c echo.Context) error {
		resp := info
		resp.ServerTime = time.Now()
		return c.JSON(http.StatusOK, resp)
	}
}

// NewReadyHandler runs every checker and answers 503 when any fails
func NewReadyHandler(checks map[string]Checker) echo.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), checkTimeout)
		defer cancel()

		report := ReadinessReport{Status: "ok", Dependencies: make(map[string]string, len(names))}
		for _, name := range names {
			if err := checks[name](ctx); err != nil {
				report.Status = "unavailable"
				report.Dependencies[name] = err.Error()
				continue
			}
			report.Dependencies[name] = "ok"
		}

		if report.Status != "ok" {
			return c.JSON(http.StatusServiceUnavailable, report)
		}
		return c.JSON(http.StatusOK, report)
	}
}

// RegisterHealthEndpoints registers liveness and readiness endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checks map[string]Checker) {
	e.GET("/ping", NewPingHandler(serviceName))

	live := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	e.GET("/health", live)
	e.GET("/healthz", live)

	e.GET("/ready", NewReadyHandler(checks))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
