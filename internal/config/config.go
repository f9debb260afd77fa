package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string           `yaml:"env" env:"ENV" env-default:"development"` // environment
	HTTPServer HTTPServerConfig `yaml:"http_server"`
	Telegram   TelegramConfig   `yaml:"telegram"`
	Firebase   FirebaseConfig   `yaml:"firebase"`
}

// HTTPServerConfig структура http сервера
type HTTPServerConfig struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// TelegramConfig настройка Bot API и мини-приложения
type TelegramConfig struct {
	Token     string `yaml:"-" env:"BOT_TOKEN" env-required:"true"`
	WebAppURL string `yaml:"web_app_url" env:"WEB_APP_URL" env-default:"https://rushminiapp.netlify.app/"`
}

// FirebaseConfig настройка Firestore и бакета с аватарами
type FirebaseConfig struct {
	ServiceAccount string        `yaml:"-" env:"FIREBASE_SERVICE_ACCOUNT" env-required:"true"` // JSON сервисного аккаунта
	StorageBucket  string        `yaml:"storage_bucket" env:"STORAGE_BUCKET" env-default:"afri-cloud-app.appspot.com"`
	SignedURLTTL   time.Duration `yaml:"signed_url_ttl" env:"SIGNED_URL_TTL" env-default:"8760h"` // 365 дней
}

// MustLoad загружает конфигурацию из файла по CONFIG_PATH.
// Без файла читаем только переменные окружения: на вебхук-хостинге файла обычно нет.
func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		return MustLoadFromEnv()
	}
	return MustLoadByPath(configPath)
}

func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return path
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file not found: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can't read config file %s", configPath)
	}

	return &cfg
}

func MustLoadFromEnv() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("can't read config from environment: %v", err)
	}

	return &cfg
}
