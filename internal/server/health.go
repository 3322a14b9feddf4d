package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/yigit/personnel/internal/pkg/logger"
)

// DBPinger is satisfied by *db.PostgresDB and *pgxpool.Pool.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker reports whether the service can reach its store.
type HealthChecker struct {
	db DBPinger
}

func NewHealthChecker(db DBPinger) *HealthChecker {
	return &HealthChecker{db: db}
}

func (h *HealthChecker) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := logger.Ctx(req.Context())
	log.Debug().Msg("Performing health checks...")

	status := make(map[string]string)
	overallStatus := http.StatusOK

	if err := h.db.Ping(req.Context()); err != nil {
		status["database"] = "unavailable"
		overallStatus = http.StatusServiceUnavailable
		log.Warn().Err(err).Msg("Health check failed: DB ping")
	} else {
		status["database"] = "ok"
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(overallStatus)
	if err := json.NewEncoder(writer).Encode(status); err != nil {
		log.Error().Err(err).Msg("Failed to write health check response")
	}

	log.Debug().Int("status", overallStatus).Msg("Health checks completed")
}
