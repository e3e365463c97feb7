package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

var (
	// ErrInvalidConfig возвращается, если конфигурация не прошла проверку
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация приложения
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Booking   BookingConfig   `toml:"booking"`
	Mail      MailConfig      `toml:"mail"`
	SMTP      SMTPConfig      `toml:"smtp"`
	AMQP      AMQPConfig      `toml:"amqp"`
	Redis     RedisConfig     `toml:"redis"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Auth      AuthConfig      `toml:"auth"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

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
	// AutoMigrate применять миграции при старте
	AutoMigrate bool `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig глобальные правила доступности слотов
type BookingConfig struct {
	// DatesPerDay максимум видимых слотов в день (0 = без ограничения)
	DatesPerDay int `toml:"dates_per_day"`
	// DaysDeadline минимум дней до слота (0 = только будущие слоты)
	DaysDeadline int `toml:"days_deadline"`
	// Timezone часовой пояс для календарных дней
	Timezone string `toml:"timezone"`
	// EnabledDateTypes типы, доступные в публичной части
	EnabledDateTypes []string `toml:"enabled_date_types"`
	// WebAddress базовый адрес для ссылок в письмах
	WebAddress string `toml:"web_address"`

	location *time.Location
}

// Location загруженный часовой пояс
func (c BookingConfig) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// Rules правила фильтра доступности
func (c BookingConfig) Rules() domain.BookingRules {
	return domain.BookingRules{
		DatesPerDay:  c.DatesPerDay,
		DaysDeadline: c.DaysDeadline,
		Location:     c.Location(),
	}
}

// IsDateTypeEnabled проверяет, включен ли тип в публичной части
func (c BookingConfig) IsDateTypeEnabled(dateType string) bool {
	for _, dt := range c.EnabledDateTypes {
		if dt == dateType {
			return true
		}
	}
	return false
}

type MailConfig struct {
	// Transport smtp | amqp | log
	Transport   string `toml:"transport"`
	FromAddress string `toml:"from_address"`
	Timeout     int    `toml:"timeout"` // секунды
}

type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	// TLS none | opportunistic | mandatory
	TLS string `toml:"tls"`
}

// Addr адрес SMTP сервера host:port
func (c SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type AMQPConfig struct {
	URL   string `toml:"url"`
	Queue string `toml:"queue"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// RateLimitConfig token bucket для публичных POST запросов
type RateLimitConfig struct {
	Enabled        bool   `toml:"enabled"`
	Capacity       int    `toml:"capacity"`
	RefillTokens   int    `toml:"refill_tokens"`
	RefillInterval int    `toml:"refill_interval"` // секунды
	TTL            int    `toml:"ttl"`             // секунды
	Prefix         string `toml:"prefix"`
	// TrustedProxies IP или CIDR прокси, чьему X-Real-IP можно верить
	TrustedProxies []string `toml:"trusted_proxies"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	Issuer    string `toml:"issuer"`
}

// Load читает .env (если есть), затем TOML файл, применяет переменные окружения и значения по умолчанию
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv переопределяет секреты из окружения
func applyEnv(cfg *Config) {
	overrides := map[string]*string{
		"DB_PASSWORD":    &cfg.Database.Password,
		"JWT_SECRET":     &cfg.Auth.JWTSecret,
		"SMTP_PASSWORD":  &cfg.SMTP.Password,
		"AMQP_URL":       &cfg.AMQP.URL,
		"REDIS_PASSWORD": &cfg.Redis.Password,
	}
	for key, target := range overrides {
		if v := os.Getenv(key); v != "" {
			*target = v
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "rehearsal-booking"
	}
	if cfg.Booking.Timezone == "" {
		cfg.Booking.Timezone = "Europe/Berlin"
	}
	if len(cfg.Booking.EnabledDateTypes) == 0 {
		cfg.Booking.EnabledDateTypes = []string{domain.DateTypeChoir, domain.DateTypeChamberChoir}
	}
	cfg.Booking.WebAddress = strings.TrimSuffix(cfg.Booking.WebAddress, "/")
	if cfg.Mail.Transport == "" {
		cfg.Mail.Transport = "log"
	}
	if cfg.Mail.Timeout == 0 {
		cfg.Mail.Timeout = 10
	}
	if cfg.SMTP.TLS == "" {
		cfg.SMTP.TLS = "opportunistic"
	}
	if cfg.AMQP.Queue == "" {
		cfg.AMQP.Queue = "mail.outbound"
	}
	if cfg.RateLimit.Capacity < 1 {
		cfg.RateLimit.Capacity = 20
	}
	if cfg.RateLimit.RefillTokens < 1 {
		cfg.RateLimit.RefillTokens = 1
	}
	if cfg.RateLimit.RefillInterval <= 0 {
		cfg.RateLimit.RefillInterval = 3
	}
	if minTTL := 5 * cfg.RateLimit.RefillInterval; cfg.RateLimit.TTL < minTTL {
		cfg.RateLimit.TTL = minTTL
	}
	if cfg.RateLimit.Prefix == "" {
		cfg.RateLimit.Prefix = "rl"
	}
}

func (c *Config) validate() error {
	loc, err := time.LoadLocation(c.Booking.Timezone)
	if err != nil {
		return fmt.Errorf("%w: booking.timezone %q: %v", ErrInvalidConfig, c.Booking.Timezone, err)
	}
	c.Booking.location = loc

	if c.Booking.DatesPerDay < 0 {
		return fmt.Errorf("%w: booking.dates_per_day must not be negative", ErrInvalidConfig)
	}
	if c.Booking.DaysDeadline < 0 {
		return fmt.Errorf("%w: booking.days_deadline must not be negative", ErrInvalidConfig)
	}

	switch c.Mail.Transport {
	case "smtp", "amqp", "log":
	default:
		return fmt.Errorf("%w: unknown mail.transport %q", ErrInvalidConfig, c.Mail.Transport)
	}

	switch c.SMTP.TLS {
	case "none", "opportunistic", "mandatory":
	default:
		return fmt.Errorf("%w: unknown smtp.tls %q", ErrInvalidConfig, c.SMTP.TLS)
	}

	for _, proxy := range c.RateLimit.TrustedProxies {
		if net.ParseIP(proxy) == nil {
			if _, _, err := net.ParseCIDR(proxy); err != nil {
				return fmt.Errorf("%w: rate_limit.trusted_proxies %q is neither IP nor CIDR", ErrInvalidConfig, proxy)
			}
		}
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required", ErrInvalidConfig)
	}

	return nil
}
