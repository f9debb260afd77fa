package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Messenger — исходящие вызовы Bot API, которые нужны онбордингу
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, replyTo int, text string, markup *InlineKeyboardMarkup) error
	LatestProfilePhotoFileID(ctx context.Context, userID int64) (string, error)
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
}

// Client — обёртка над tgbotapi.BotAPI с клиентом для скачивания файлов
type Client struct {
	api  *tgbotapi.BotAPI
	http *http.Client
}

func NewClient(token string) (*Client, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot api: %w", err)
	}
	return &Client{
		api:  api,
		http: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// SendMessage отправляет текстовый ответ пользователю.
// replyTo — ID исходного сообщения, 0 — отправка без reply.
func (c *Client) SendMessage(ctx context.Context, chatID int64, replyTo int, text string, markup *InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if replyTo != 0 {
		msg.ReplyToMessageID = replyTo
	}
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	if _, err := c.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// LatestProfilePhotoFileID возвращает file_id самого свежего фото профиля
// (последний размер — самый крупный). Пустая строка — фото у пользователя нет.
func (c *Client) LatestProfilePhotoFileID(ctx context.Context, userID int64) (string, error) {
	photos, err := c.api.GetUserProfilePhotos(tgbotapi.UserProfilePhotosConfig{
		UserID: userID,
		Limit:  1,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get user profile photos: %w", err)
	}
	if photos.TotalCount == 0 || len(photos.Photos) == 0 || len(photos.Photos[0]) == 0 {
		return "", nil
	}
	sizes := photos.Photos[0]
	return sizes[len(sizes)-1].FileID, nil
}

// DownloadFile скачивает содержимое файла по file_id через
// https://api.telegram.org/file/bot<TOKEN>/<file_path>
func (c *Client) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := c.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(c.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build file request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("file download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file body: %w", err)
	}
	return data, nil
}
