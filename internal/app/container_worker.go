package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-assistance/internal/config"
	"service-assistance/internal/gateway/insurance"
	"service-assistance/internal/logx"
	"service-assistance/internal/notify"
	"service-assistance/internal/transport/kafka"
)

func newInsuranceClient(cfg *config.Config) *insurance.Client {
	return insurance.NewClient(insurance.Config{
		BaseURL: cfg.Notifier.BaseURL,
		Timeout: cfg.Notifier.Timeout,
	})
}

type schedulerIn struct {
	dig.In

	Client   *insurance.Client
	Logger   logx.Logger
	Cfg      *config.Config
	Retries  prometheus.Counter `name:"notification_retries_total"`
	Failures prometheus.Counter `name:"notification_failures_total"`
}

func newScheduler(in schedulerIn) (*notify.Scheduler, error) {
	if in.Client == nil {
		return nil, fmt.Errorf("INSURANCE_BASE_URL is required for the notification worker")
	}
	return notify.NewScheduler(in.Client, in.Logger, in.Retries, in.Failures, notify.RetryConfig{
		MaxRetries: in.Cfg.Notifier.MaxRetries,
		BaseDelay:  in.Cfg.Notifier.BaseDelay,
		MaxDelay:   in.Cfg.Notifier.MaxDelay,
	}), nil
}

func newNotificationsConsumer(logger logx.Logger, cfg *config.Config, h kafka.HandleFunc) (*kafka.Consumer, error) {
	return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, h)
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		newInsuranceClient,
		newScheduler,
		makeNotificationsHandler,
		newNotificationsConsumer,
	)
}
