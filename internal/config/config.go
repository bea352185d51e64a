package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN renders the pgx connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Kafka stores broker settings for the notification pipeline.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Notifier stores retry settings for partner notification delivery.
type Notifier struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// Outbox stores outbox relay settings.
type Outbox struct {
	PollInterval time.Duration
	BatchSize    int
}

// RateLimit stores HTTP rate limiter settings.
type RateLimit struct {
	RPS   int
	Burst int
}

// Pprof stores the debug server settings. Port 0 disables it.
type Pprof struct {
	Port int
	User string
	Pass string
}

// Config stores the full service configuration.
type Config struct {
	Port      int
	DB        DB
	Kafka     Kafka
	Notifier  Notifier
	Outbox    Outbox
	RateLimit RateLimit
	Pprof     Pprof
}

/// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		DB:        DefaultDB(),
		Kafka:     DefaultKafka(),
		Notifier:  DefaultNotifier(),
		Outbox:    DefaultOutbox(),
		RateLimit: DefaultRateLimit(),
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}

	readEnvStr("POSTGRES_HOST", &cfg.DB.Host)
	readEnvStr("POSTGRES_PORT", &cfg.DB.Port)
	readEnvStr("POSTGRES_USER", &cfg.DB.User)
	readEnvStr("POSTGRES_PASSWORD", &cfg.DB.Pass)
	readEnvStr("POSTGRES_DB", &cfg.DB.Name)

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitBrokers(v)
	}
	readEnvStr("KAFKA_TOPIC", &cfg.Kafka.Topic)
	readEnvStr("KAFKA_GROUP_ID", &cfg.Kafka.GroupID)

	readEnvStr("INSURANCE_BASE_URL", &cfg.Notifier.BaseURL)
	if err := readEnvDuration("INSURANCE_TIMEOUT", &cfg.Notifier.Timeout); err != nil {
		return nil, err
	}
	if err := readEnvInt("NOTIFY_MAX_RETRIES", &cfg.Notifier.MaxRetries); err != nil {
		return nil, err
	}
	if err := readEnvDuration("NOTIFY_BASE_DELAY", &cfg.Notifier.BaseDelay); err != nil {
		return nil, err
	}
	if err := readEnvDuration("NOTIFY_MAX_DELAY", &cfg.Notifier.MaxDelay); err != nil {
		return nil, err
	}

	if err := readEnvDuration("OUTBOX_POLL_INTERVAL", &cfg.Outbox.PollInterval); err != nil {
		return nil, err
	}
	if err := readEnvInt("OUTBOX_BATCH_SIZE", &cfg.Outbox.BatchSize); err != nil {
		return nil, err
	}

	if err := readEnvInt("RATE_LIMIT_RPS", &cfg.RateLimit.RPS); err != nil {
		return nil, err
	}
	if err := readEnvInt("RATE_LIMIT_BURST", &cfg.RateLimit.Burst); err != nil {
		return nil, err
	}

	if err := readEnvInt("PPROF_PORT", &cfg.Pprof.Port); err != nil {
		return nil, err
	}
	readEnvStr("PPROF_USER", &cfg.Pprof.User)
	readEnvStr("PPROF_PASS", &cfg.Pprof.Pass)

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return nil, fmt.Errorf("invalid postgres port: %q", cfg.DB.Port)
	}
	return cfg, nil
}

func readEnvStr(name string, dst *string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

func readEnvInt(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %q", name, v)
	}
	*dst = n
	return nil
}

func readEnvDuration(name string, dst *time.Duration) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %q", name, v)
	}
	*dst = d
	return nil
}

func splitBrokers(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
