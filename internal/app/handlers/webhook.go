package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rushapp/rush-bot/internal/service"
	"github.com/rushapp/rush-bot/internal/telegram"
)

// WebhookHandler обрабатывает POST / — доставку апдейта Telegram.
// Ответ всегда 200 с пустым телом, включая внутренние сбои и битый JSON:
// о проблеме пользователь узнаёт из ответа бота, а не из HTTP-статуса,
// иначе Telegram будет бесконечно передоставлять апдейт.
func WebhookHandler(log *slog.Logger, updates service.UpdateService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.WebhookHandler"
		logger := log.With(slog.String("op", op))

		var update telegram.Update
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			logger.Error("invalid update: decoding error", slog.Any("error", err))
			w.WriteHeader(http.StatusOK)
			return
		}

		// Апдейт проводится до конца синхронно, до отправки ответа
		if err := updates.ProcessUpdate(r.Context(), update); err != nil {
			logger.Error("failed to process update", slog.Any("error", err))
		}
		w.WriteHeader(http.StatusOK)
	}
}
