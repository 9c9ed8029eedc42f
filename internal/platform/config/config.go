package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full runtime configuration, assembled from the environment.
type Config struct {
	Server    Server
	Database  DatabaseConfig
	Auth      AuthConfig
	Mail      MailConfig
	Paystack  PaystackConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Kafka     KafkaConfig
	Reconcile ReconcileConfig
	LogLevel  slog.Level
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	Environment    string
	AllowedOrigins []string
	// TrustedProxies lists proxy IPs or CIDRs allowed to set X-Forwarded-For.
	TrustedProxies []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
}

// Production reports whether cookies must be Secure and SameSite=None.
func (s Server) Production() bool {
	return s.Environment == "production"
}

// DatabaseConfig locates the Postgres instance. URL wins over the PG* parts.
type DatabaseConfig struct {
	URL             string
	Host            string
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN returns a lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host,
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + d.SSLMode,
	}
	return u.String()
}

// AuthConfig configures session tokens and their cookie.
type AuthConfig struct {
	JWTSecret    string
	TokenTTL     time.Duration
	CookieDomain string
	OTPTTL       time.Duration
}

// MailConfig configures the SMTP relay. An empty Host disables delivery.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

// PaystackConfig configures the payment gateway client.
type PaystackConfig struct {
	SecretKey           string
	BaseURL             string
	DonationCallbackURL string
	FrontendURL         string
	Timeout             time.Duration
}

// PaymentCallbackURL is where the gateway sends the payer after an order payment.
func (p PaystackConfig) PaymentCallbackURL() string {
	return strings.TrimRight(p.FrontendURL, "/") + "/payment/callback"
}

// RedisConfig configures the optional rate limit store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// RateLimitConfig configures the per-IP request gate.
type RateLimitConfig struct {
	Disabled     bool
	GeneralLimit int
	AuthLimit    int
	Window       time.Duration
}

// KafkaConfig configures payment status events. No brokers disables publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// ReconcileConfig configures the background reconciliation sweep.
// A zero Interval disables it.
type ReconcileConfig struct {
	Interval    time.Duration
	Grace       time.Duration
	Lookback    time.Duration
	Concurrency int
}

// Load reads an optional .env file and then builds the config from the environment.
func Load() (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	cfg := Config{
		Server: Server{
			Addr:           addrFromEnv(),
			Environment:    getEnv("NODE_ENV", getEnv("APP_ENV", "development")),
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3001,https://isinrimuseum.org")),
			TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),
			ReadTimeout:    getDuration("HTTP_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:   getDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:    getDuration("HTTP_IDLE_TIMEOUT", 2*time.Minute),
		},
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			Host:            getEnv("PGHOST", "localhost:5432"),
			Name:            getEnv("PGDATABASE", "museum"),
			User:            getEnv("PGUSER", "postgres"),
			Password:        os.Getenv("PGPASSWORD"),
			SSLMode:         getEnv("PGSSLMODE", "require"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Auth: AuthConfig{
			JWTSecret:    os.Getenv("JWT_SECRET"),
			TokenTTL:     getDuration("SESSION_TTL", 7*24*time.Hour),
			CookieDomain: os.Getenv("COOKIE_DOMAIN"),
			OTPTTL:       getDuration("OTP_TTL", 24*time.Hour),
		},
		Mail: MailConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			Sender:   os.Getenv("SENDER_EMAIL"),
		},
		Paystack: PaystackConfig{
			SecretKey:           os.Getenv("PAYSTACK_SECRET_KEY"),
			BaseURL:             getEnv("PAYSTACK_BASE_URL", "https://api.paystack.co"),
			DonationCallbackURL: os.Getenv("PAYSTACK_CALLBACK_URL"),
			FrontendURL:         getEnv("FRONTEND_URL", "http://localhost:3001"),
			Timeout:             getDuration("PAYSTACK_TIMEOUT", 15*time.Second),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		RateLimit: RateLimitConfig{
			Disabled:     getBool("RATELIMIT_DISABLED", false),
			GeneralLimit: getInt("RATELIMIT_GENERAL", 100),
			AuthLimit:    getInt("RATELIMIT_AUTH", 10),
			Window:       getDuration("RATELIMIT_WINDOW", time.Minute),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:   getEnv("KAFKA_PAYMENT_TOPIC", "museum.payment.status"),
		},
		Reconcile: ReconcileConfig{
			Interval:    getDuration("RECONCILE_INTERVAL", 10*time.Minute),
			Grace:       getDuration("RECONCILE_GRACE", 30*time.Minute),
			Lookback:    getDuration("RECONCILE_LOOKBACK", 48*time.Hour),
			Concurrency: getInt("RECONCILE_CONCURRENCY", 4),
		},
		LogLevel: parseLevel(getEnv("LOG_LEVEL", "info")),
	}

	if cfg.Auth.JWTSecret == "" {
		if cfg.Server.Production() {
			return Config{}, fmt.Errorf("JWT_SECRET is required in production")
		}
		// Use a default for development - must be overridden in production
		cfg.Auth.JWTSecret = "dev-secret-key-change-in-production"
	}
	return cfg, nil
}

// addrFromEnv honours PORT (hosting platforms set it) and falls back to :3000.
func addrFromEnv() string {
	if addr := os.Getenv("MUSEUM_ADDR"); addr != "" {
		return addr
	}
	return ":" + getEnv("PORT", "3000")
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

// splitList parses a comma separated list, dropping blanks and trailing slashes
// so "https://isinrimuseum.org/" matches the Origin header browsers send.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo
	}
	return level
}
