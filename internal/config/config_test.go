package config_test

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"service-assistance/internal/config"
)

func resetFlags(t *testing.T) {
	t.Helper()
	old := pflag.CommandLine
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	pflag.CommandLine.SetOutput(io.Discard)
	oldArgs := os.Args
	os.Args = []string{oldArgs[0]}
	t.Cleanup(func() {
		pflag.CommandLine = old
		os.Args = oldArgs
	})
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"PORT",
		"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
		"KAFKA_BROKERS", "KAFKA_TOPIC", "KAFKA_GROUP_ID",
		"INSURANCE_BASE_URL", "INSURANCE_TIMEOUT",
		"NOTIFY_MAX_RETRIES", "NOTIFY_BASE_DELAY", "NOTIFY_MAX_DELAY",
		"OUTBOX_POLL_INTERVAL", "OUTBOX_BATCH_SIZE",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"PPROF_PORT", "PPROF_USER", "PPROF_PASS",
	} {
		t.Setenv(name, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, 8080, cfg.Port)

	require.Equal(t, "127.0.0.1", cfg.DB.Host)
	require.Equal(t, "5432", cfg.DB.Port)
	require.Equal(t, "myuser", cfg.DB.User)
	require.Equal(t, "mypassword", cfg.DB.Pass)
	require.Equal(t, "assistance_db", cfg.DB.Name)

	require.Empty(t, cfg.Kafka.Brokers)
	require.Equal(t, "assistance.notifications", cfg.Kafka.Topic)

	require.Equal(t, 5, cfg.Notifier.MaxRetries)
	require.Equal(t, time.Minute, cfg.Notifier.BaseDelay)
	require.Equal(t, 16*time.Minute, cfg.Notifier.MaxDelay)

	require.Equal(t, time.Second, cfg.Outbox.PollInterval)
	require.Equal(t, 100, cfg.Outbox.BatchSize)

	require.Equal(t, 0, cfg.Pprof.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("PORT", "9090")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "15432")
	t.Setenv("POSTGRES_USER", "u")
	t.Setenv("POSTGRES_PASSWORD", "p")
	t.Setenv("POSTGRES_DB", "service")
	t.Setenv("KAFKA_BROKERS", "b1:9092, b2:9092")
	t.Setenv("KAFKA_TOPIC", "jobs")
	t.Setenv("INSURANCE_BASE_URL", "http://partner.local")
	t.Setenv("NOTIFY_MAX_RETRIES", "3")
	t.Setenv("NOTIFY_BASE_DELAY", "2s")
	t.Setenv("NOTIFY_MAX_DELAY", "32s")
	t.Setenv("OUTBOX_POLL_INTERVAL", "500ms")
	t.Setenv("OUTBOX_BATCH_SIZE", "10")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "db", cfg.DB.Host)
	require.Equal(t, "postgres://u:p@db:15432/service", cfg.DB.DSN())
	require.Equal(t, []string{"b1:9092", "b2:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, "jobs", cfg.Kafka.Topic)
	require.Equal(t, "http://partner.local", cfg.Notifier.BaseURL)
	require.Equal(t, 3, cfg.Notifier.MaxRetries)
	require.Equal(t, 2*time.Second, cfg.Notifier.BaseDelay)
	require.Equal(t, 32*time.Second, cfg.Notifier.MaxDelay)
	require.Equal(t, 500*time.Millisecond, cfg.Outbox.PollInterval)
	require.Equal(t, 10, cfg.Outbox.BatchSize)
}

func TestLoad_InvalidPort(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("PORT", "70000")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_InvalidPostgresPort(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("POSTGRES_PORT", "not-a-number")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_InvalidDuration(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("NOTIFY_BASE_DELAY", "bad-delay")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_FlagsParseError(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	os.Args = []string{os.Args[0], "--port=not-a-number"}

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
	require.Contains(t, err.Error(), "parse flags")
}
