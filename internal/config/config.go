package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server       Server       `toml:"server"`
	Database     Database     `toml:"database"`
	Logs         Logs         `toml:"logs"`
	Metrics      Metrics      `toml:"metrics"`
	StaffService StaffService `toml:"staff_service"`
}

// Server настройки HTTP-сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения для lib/pq
func (d *Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки Prometheus-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StaffService настройки клиента StaffService
type StaffService struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load загружает конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return &cfg, nil
}
