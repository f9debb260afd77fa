package app

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/rushapp/rush-bot/internal/config"
	"github.com/rushapp/rush-bot/internal/telegram"
)

// App держит клиенты внешних сервисов.
// Инициализируются один раз на процесс и переиспользуются всеми запросами.
type App struct {
	Config    *config.Config
	Logger    *slog.Logger
	Firestore *firestore.Client
	Bucket    *gcs.BucketHandle
	Telegram  *telegram.Client
}

// NewApp создаёт новый экземпляр App
func NewApp(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	fbApp, err := firebase.NewApp(ctx,
		&firebase.Config{StorageBucket: cfg.Firebase.StorageBucket},
		option.WithCredentialsJSON([]byte(cfg.Firebase.ServiceAccount)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	db, err := fbApp.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	st, err := fbApp.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	bucket, err := st.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to get storage bucket: %w", err)
	}

	tg, err := telegram.NewClient(cfg.Telegram.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}

	app := &App{
		Config:    cfg,
		Logger:    log,
		Firestore: db,
		Bucket:    bucket,
		Telegram:  tg,
	}

	return app, nil
}

// Close освобождает клиенты с внутренними соединениями
func (a *App) Close() error {
	return a.Firestore.Close()
}
