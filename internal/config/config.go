package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	MemberService MemberServiceConfig `toml:"member_service"`
	Schedule      ScheduleConfig      `toml:"schedule"`
	Reservation   ReservationConfig   `toml:"reservation"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
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

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"` // DEBUG, INFO, WARN, ERROR
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// MemberServiceConfig настройки интеграции со справочником клиентов
type MemberServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// ScheduleConfig сетка слотов рабочего дня студии
type ScheduleConfig struct {
	DayOpenTime         string `toml:"day_open_time"`  // HH:MM
	DayCloseTime        string `toml:"day_close_time"` // HH:MM
	SlotDurationMinutes int    `toml:"slot_duration_minutes"`
}

// ReservationConfig политики записи
//
// По умолчанию обе политики выключены: слот может держать несколько
// подтверждённых сессий (групповые тренировки), а запись поверх
// исчерпанной квоты допускается и разбирается тренером вручную
type ReservationConfig struct {
	// ExclusiveSlots запрещает подтверждать сессию в слот,
	// где уже есть другая подтверждённая
	ExclusiveSlots bool `toml:"exclusive_slots"`

	// EnforceQuotaCap отклоняет новые записи при исчерпанной квоте пакета
	EnforceQuotaCap bool `toml:"enforce_quota_cap"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults заполняет опущенные поля сетки слотов значениями по умолчанию
func (c *Config) applyDefaults() {
	if c.Schedule.DayOpenTime == "" {
		c.Schedule.DayOpenTime = domain.DefaultDayOpenTime
	}
	if c.Schedule.DayCloseTime == "" {
		c.Schedule.DayCloseTime = domain.DefaultDayCloseTime
	}
	if c.Schedule.SlotDurationMinutes == 0 {
		c.Schedule.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	if c.Schedule.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		c.Schedule.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("schedule.slot_duration_minutes must be between %d and %d",
			domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	return nil
}
