package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN renders the connection string for pgx.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(d.User), url.QueryEscape(d.Pass), d.Host, d.Port, d.Name)
}

// Kafka stores order-intake consumer settings. Empty brokers/topic/group
// disable the consumer.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Auth stores bearer-token verification settings.
type Auth struct {
	JWTSecret string
}

// Dispatch stores order-assignment tunables.
type Dispatch struct {
	DefaultRadiusM      float64
	OperationTimeout    time.Duration
	FallbackCourierRate decimal.Decimal
}

// RateLimit stores courier API rate limiting settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Ops stores the debug/metrics listener settings.
type Ops struct {
	Addr string
	User string
	Pass string
}

// Config stores all service settings.
type Config struct {
	Port      int
	DB        DB
	Kafka     Kafka
	Auth      Auth
	Dispatch  Dispatch
	RateLimit RateLimit
	Ops       Ops
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		DB:        DefaultDB(),
		Kafka:     DefaultKafka(),
		Auth:      DefaultAuth(),
		Dispatch:  DefaultDispatch(),
		RateLimit: DefaultRateLimit(),
		Ops:       DefaultOps(),
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	pflag.CommandLine.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.CommandLine.StringVar(&cfg.Ops.Addr, "ops-addr", cfg.Ops.Addr, "ops (pprof/metrics) listen address")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = p
	}

	setString(&cfg.DB.Host, "POSTGRES_HOST")
	setString(&cfg.DB.Port, "POSTGRES_PORT")
	setString(&cfg.DB.User, "POSTGRES_USER")
	setString(&cfg.DB.Pass, "POSTGRES_PASSWORD")
	setString(&cfg.DB.Name, "POSTGRES_DB")

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitCSV(v)
	}
	setString(&cfg.Kafka.Topic, "KAFKA_ORDERS_TOPIC")
	setString(&cfg.Kafka.GroupID, "KAFKA_GROUP_ID")

	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")

	if v := os.Getenv("DISPATCH_DEFAULT_RADIUS_M"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid DISPATCH_DEFAULT_RADIUS_M %q: %w", v, err)
		}
		cfg.Dispatch.DefaultRadiusM = r
	}
	if v := os.Getenv("DISPATCH_OPERATION_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid DISPATCH_OPERATION_TIMEOUT %q: %w", v, err)
		}
		cfg.Dispatch.OperationTimeout = d
	}
	if v := os.Getenv("COURIER_RATE_FALLBACK"); v != "" {
		rate, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("invalid COURIER_RATE_FALLBACK %q: %w", v, err)
		}
		cfg.Dispatch.FallbackCourierRate = rate
	}

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_ENABLED %q: %w", v, err)
		}
		cfg.RateLimit.Enabled = b
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_RPS %q: %w", v, err)
		}
		cfg.RateLimit.Rate = r
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		b, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_BURST %q: %w", v, err)
		}
		cfg.RateLimit.Burst = b
	}

	setString(&cfg.Ops.Addr, "OPS_ADDR")
	setString(&cfg.Ops.User, "OPS_USER")
	setString(&cfg.Ops.Pass, "OPS_PASS")
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func validate(cfg *Config) error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return fmt.Errorf("invalid postgres port %q: %w", cfg.DB.Port, err)
	}
	if cfg.Dispatch.DefaultRadiusM <= 0 {
		return fmt.Errorf("invalid default radius: %f", cfg.Dispatch.DefaultRadiusM)
	}
	if cfg.Dispatch.OperationTimeout <= 0 {
		return fmt.Errorf("invalid operation timeout: %s", cfg.Dispatch.OperationTimeout)
	}
	if cfg.Dispatch.FallbackCourierRate.IsNegative() {
		return fmt.Errorf("invalid courier rate fallback: %s", cfg.Dispatch.FallbackCourierRate)
	}
	return nil
}
