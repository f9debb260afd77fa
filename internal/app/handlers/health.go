package handlers

import (
	"log/slog"
	"net/http"
)

const livenessBody = "Bot is running"

// HealthHandler обрабатывает GET / — проверку живости хостингом
func HealthHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(livenessBody)); err != nil {
			log.Error("failed to write liveness response", slog.Any("error", err))
		}
	}
}
