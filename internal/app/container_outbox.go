package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-assistance/internal/config"
	"service-assistance/internal/domain"
	"service-assistance/internal/logx"
	"service-assistance/internal/notify"
	"service-assistance/internal/outbox"
	"service-assistance/internal/repository"
	"service-assistance/internal/transport/kafka"
)

func newProducer(cfg *config.Config) (*kafka.Producer, error) {
	return kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
}

type outboxRelayIn struct {
	dig.In

	Logger    logx.Logger
	Repo      *repository.OutboxRepo
	Producer  *kafka.Producer
	Cfg       *config.Config
	Published prometheus.Counter `name:"outbox_published_total"`
}

// newOutboxRelay wires the relay; nil when Kafka is not configured, in which
// case committed jobs stay in the outbox until a broker appears.
func newOutboxRelay(in outboxRelayIn) *outbox.Relay {
	if in.Producer == nil {
		return nil
	}
	publish := func(j domain.OutboxJob) error {
		return in.Producer.Publish(notify.Job{RequestID: j.RequestID, EnqueuedAt: j.CreatedAt})
	}
	return outbox.NewRelay(in.Logger, in.Repo, publish, in.Cfg.Outbox.PollInterval, in.Cfg.Outbox.BatchSize, in.Published)
}

func registerOutbox(container *dig.Container) error {
	return provideAll(container,
		newProducer,
		newOutboxRelay,
	)
}
