package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "assistance_db",
}

var defaultKafka = Kafka{
	Topic:   "assistance.notifications",
	GroupID: "assistance-notifier",
}

var defaultNotifier = Notifier{
	Timeout:    5 * time.Second,
	MaxRetries: 5,
	BaseDelay:  time.Minute,
	MaxDelay:   16 * time.Minute,
}

var defaultOutbox = Outbox{
	PollInterval: time.Second,
	BatchSize:    100,
}

var defaultRateLimit = RateLimit{
	RPS:   50,
	Burst: 100,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default Kafka settings. Brokers stay empty so
// Kafka is off unless configured.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultNotifier returns the default notification retry settings.
func DefaultNotifier() Notifier {
	return defaultNotifier
}

// DefaultOutbox returns the default outbox relay settings.
func DefaultOutbox() Outbox {
	return defaultOutbox
}

// DefaultRateLimit returns the default HTTP rate limiter settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
