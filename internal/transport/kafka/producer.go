package kafka

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/IBM/sarama"

	"service-assistance/internal/notify"
)

// newSyncProducer is swapped in tests
var newSyncProducer = sarama.NewSyncProducer

// Producer publishes notification jobs to Kafka.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducer creates a new Kafka producer. Returns nil when Kafka is not configured.
func NewProducer(brokers []string, topic string) (*Producer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true

	p, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &Producer{producer: p, topic: topic}, nil
}

// Publish sends one notification job. Keyed by request id so redeliveries of
// the same request land on the same partition.
func (p *Producer) Publish(job notify.Job) error {
	if p == nil {
		return fmt.Errorf("kafka producer not configured")
	}

	value, err := json.Marshal(FromJob(job))
	if err != nil {
		return fmt.Errorf("marshal notification job: %w", err)
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(job.RequestID, 10)),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("publish notification job for request %d: %w", job.RequestID, err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
