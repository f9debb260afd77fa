package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/rushapp/rush-bot/internal/telegram"
)

const startCommand = "start"

const (
	welcomeTemplate = "Hi, %s! 👋\n\n" +
		"Welcome to Rush App! 🤭\n\n" +
		"Here you can earn Our coin by mining! 😊\n\n" +
		"Invite Friends to earn more coins together, and level up faster! 😊"
	errorReply       = "Error. please try again"
	startButtonLabel = "open Rush App"
)

// UpdateService синхронно проводит один апдейт Telegram до конца
type UpdateService interface {
	ProcessUpdate(ctx context.Context, update telegram.Update) error
}

type updateService struct {
	log        *slog.Logger
	onboarding OnboardingService
	tg         telegram.Messenger
	webAppURL  string
}

func NewUpdateService(log *slog.Logger, onboarding OnboardingService, tg telegram.Messenger, webAppURL string) UpdateService {
	return &updateService{
		log:        log,
		onboarding: onboarding,
		tg:         tg,
		webAppURL:  webAppURL,
	}
}

// ProcessUpdate обрабатывает команду /start: онбординг и приветственный ответ.
// Приветствие с кнопкой мини-приложения отправляется и существующему пользователю.
// При ошибке онбординга пользователь получает просьбу повторить попытку,
// сама ошибка возвращается вызывающему только для логирования.
func (s *updateService) ProcessUpdate(ctx context.Context, update telegram.Update) error {
	const op = "service.UpdateService.ProcessUpdate"

	msg := update.Message
	if msg == nil || msg.From == nil || msg.Command() != startCommand {
		return nil
	}

	from := msg.From
	logger := s.log.With(slog.String("op", op), slog.Int64("userID", from.ID))
	logger.Info("processing start command")

	input := OnboardInput{
		UserID:       strconv.FormatInt(from.ID, 10),
		FirstName:    from.FirstName,
		LastName:     from.LastName,
		Username:     from.Username,
		LanguageCode: from.LanguageCode,
		IsPremium:    from.IsPremium,
		CommandText:  msg.Text,
	}

	if _, err := s.onboarding.Onboard(ctx, input); err != nil {
		logger.Error("onboarding failed", slog.Any("error", err))
		if serr := s.tg.SendMessage(ctx, msg.Chat.ID, msg.MessageID, errorReply, nil); serr != nil {
			logger.Error("failed to send error reply", slog.Any("error", serr))
		}
		return fmt.Errorf("%s: onboarding failed: %w", op, err)
	}

	welcome := fmt.Sprintf(welcomeTemplate, from.FirstName)
	keyboard := telegram.NewWebAppKeyboard(startButtonLabel, s.webAppURL)
	if err := s.tg.SendMessage(ctx, msg.Chat.ID, msg.MessageID, welcome, keyboard); err != nil {
		logger.Error("failed to send welcome message", slog.Any("error", err))
		return fmt.Errorf("%s: failed to send welcome message: %w", op, err)
	}
	return nil
}
