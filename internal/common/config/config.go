package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"3333"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:5173"`
	}

	DatabaseURL string `env:"DATABASE_URL,required"`

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Admin struct {
		Username string `env:"ADMIN_USERNAME,required"`
		Password string `env:"ADMIN_PASSWORD,required"`
	}

	Telegram struct {
		BotToken string `env:"BOT_TOKEN"`
		Debug    bool   `env:"TELEGRAM_DEBUG" envDefault:"false"`
	}
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// Игнорируем ошибку, если .env файл не найден
		// В production окружении переменные могут быть установлены напрямую
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
