package service

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/rushapp/rush-bot/internal/storage"
	"github.com/rushapp/rush-bot/internal/telegram"
)

// AvatarService переносит текущее фото профиля Telegram в блоб-хранилище.
// Результат явно опционален: nil — аватара нет, это не ошибка.
type AvatarService interface {
	Capture(ctx context.Context, userID int64) *string
}

type avatarService struct {
	log  *slog.Logger
	tg   telegram.Messenger
	blob storage.BlobStorage
}

func NewAvatarService(log *slog.Logger, tg telegram.Messenger, blob storage.BlobStorage) AvatarService {
	return &avatarService{
		log:  log,
		tg:   tg,
		blob: blob,
	}
}

// Capture скачивает самое свежее фото профиля и загружает его в бакет,
// возвращая подписанный URL. Любой сбой на этом пути (нет фото, ошибка
// скачивания или загрузки) не прерывает онбординг — возвращается nil.
func (s *avatarService) Capture(ctx context.Context, userID int64) *string {
	const op = "service.AvatarService.Capture"
	logger := s.log.With(slog.String("op", op), slog.Int64("userID", userID))

	fileID, err := s.tg.LatestProfilePhotoFileID(ctx, userID)
	if err != nil {
		logger.Warn("failed to get profile photo", slog.Any("error", err))
		return nil
	}
	if fileID == "" {
		logger.Info("user has no profile photo")
		return nil
	}

	data, err := s.tg.DownloadFile(ctx, fileID)
	if err != nil {
		logger.Warn("failed to download profile photo", slog.Any("error", err))
		return nil
	}

	url, err := s.blob.UploadUserImage(ctx, strconv.FormatInt(userID, 10), data, "image/jpeg")
	if err != nil {
		logger.Warn("failed to upload profile photo", slog.Any("error", err))
		return nil
	}

	logger.Info("profile photo captured")
	return &url
}
