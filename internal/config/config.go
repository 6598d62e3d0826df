// Package config предоставляет структуры и функцию для загрузки настроек
// из переменных окружения. Единственная внешняя настройка сервиса — порт
// HTTP-сервера (PORT, по умолчанию 5000); файлов конфигурации нет.
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env        string `env:"ENV" env-default:"local"`
	HTTPServer
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	Port        string        `env:"PORT" env-default:"5000"`
	TimeoutHTTP time.Duration `env:"HTTP_TIMEOUT" env-default:"30s"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// MustLoad загружает конфиг из окружения; завершает процесс при ошибке разбора.
func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

// Address возвращает адрес для прослушивания в формате ":порт".
func (c *Config) Address() string {
	return ":" + c.Port
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Port: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n",
		c.Env,
		c.Port,
		c.TimeoutHTTP,
		c.IdleTimeout,
	)
}
