package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rushapp/rush-bot/internal/domain/models"
	"github.com/rushapp/rush-bot/internal/storage"
)

// реферальный код — второй токен команды /start вида ref_<id реферера>
const referralPrefix = "ref_"

// размер бонуса реферера за приглашённого пользователя
const (
	ReferralBonus        = 100
	ReferralBonusPremium = 500
)

const defaultLanguageCode = "en"

var validate = validator.New()

// OnboardInput — данные нового пользователя из команды /start
type OnboardInput struct {
	UserID       string `validate:"required"`
	FirstName    string `validate:"required"`
	LastName     string
	Username     string
	LanguageCode string
	IsPremium    bool
	CommandText  string
}

// OnboardingService создаёт запись пользователя при первом контакте
type OnboardingService interface {
	Onboard(ctx context.Context, input OnboardInput) (bool, error)
}

type onboardingService struct {
	log      *slog.Logger
	userRepo storage.UserStorage
	avatars  AvatarService
}

func NewOnboardingService(log *slog.Logger, userRepo storage.UserStorage, avatars AvatarService) OnboardingService {
	return &onboardingService{
		log:      log,
		userRepo: userRepo,
		avatars:  avatars,
	}
}

// Onboard идемпотентно создаёт запись пользователя.
// Если запись уже есть — ничего не меняет и возвращает created=false;
// реферальный бонус начисляется только при первичном создании.
func (s *onboardingService) Onboard(ctx context.Context, input OnboardInput) (bool, error) {
	const op = "service.OnboardingService.Onboard"
	logger := s.log.With(slog.String("op", op), slog.String("userID", input.UserID))

	if err := validate.Struct(input); err != nil {
		return false, fmt.Errorf("%s: invalid input: %w", op, err)
	}
	if input.LanguageCode == "" {
		input.LanguageCode = defaultLanguageCode
	}

	// Проверяем, есть ли пользователь: повторный /start — no-op
	if _, err := s.userRepo.GetUserByID(ctx, input.UserID); err == nil {
		logger.Info("user already exists, skipping onboarding")
		return false, nil
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return false, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	user := models.NewUser(input.UserID, input.FirstName, input.LastName, input.Username, input.LanguageCode, input.IsPremium)

	// Захват аватара не критичен: при любом сбое поле остаётся пустым
	if telegramID, perr := strconv.ParseInt(input.UserID, 10, 64); perr == nil {
		user.UserImage = s.avatars.Capture(ctx, telegramID)
	} else {
		logger.Warn("non-numeric user id, skipping avatar capture")
	}

	// Начисляем бонус рефереру, если код валиден и такой пользователь существует
	if referrerID, ok := ParseReferralCode(input.CommandText); ok {
		if _, err := s.userRepo.GetUserByID(ctx, referrerID); err == nil {
			bonus := int64(ReferralBonus)
			if input.IsPremium {
				bonus = ReferralBonusPremium
			}
			entry := models.ReferralEntry{
				AddedValue: bonus,
				FirstName:  input.FirstName,
				LastName:   input.LastName,
				UserImage:  user.UserImage,
			}
			if err := s.userRepo.CreditReferral(ctx, referrerID, input.UserID, bonus, entry); err != nil {
				logger.Error("failed to credit referrer", slog.Any("error", err))
				return false, fmt.Errorf("%s: failed to credit referrer: %w", op, err)
			}
			user.ReferredBy = referrerID
			logger.Info("referral bonus credited",
				slog.String("referrerID", referrerID),
				slog.Int64("bonus", bonus),
			)
		} else if !errors.Is(err, storage.ErrUserNotFound) {
			logger.Error("failed to get referrer", slog.Any("error", err))
			return false, fmt.Errorf("%s: failed to get referrer: %w", op, err)
		}
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			// параллельный /start того же пользователя успел первым
			logger.Warn("user was created concurrently, keeping existing record")
			return false, nil
		}
		logger.Error("failed to create user", slog.Any("error", err))
		return false, fmt.Errorf("%s: failed to create user: %w", op, err)
	}

	logger.Info("user onboarded", slog.Bool("referred", user.ReferredBy != ""))
	return true, nil
}

// ParseReferralCode извлекает ID реферера из текста команды.
// Код — второй токен с префиксом ref_ и непустым остатком.
func ParseReferralCode(text string) (string, bool) {
	tokens := strings.Fields(text)
	if len(tokens) < 2 || !strings.HasPrefix(tokens[1], referralPrefix) {
		return "", false
	}
	referrerID := tokens[1][len(referralPrefix):]
	if referrerID == "" {
		return "", false
	}
	return referrerID, true
}
