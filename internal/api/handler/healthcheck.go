package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/rinori/sales-ledger-api/pkg/log"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde 503 quando o banco não responde dentro de 2s
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := map[string]string{
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		}

		if err := db.Ping(ctx); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("healthcheck: banco indisponível")
			status["database"] = "unavailable"
			writeJSON(w, r, http.StatusServiceUnavailable, status)
			return
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
