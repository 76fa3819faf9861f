package publisher

import (
	"context"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/segmentio/kafka-go"
)

const writeTimeout = 10 * time.Second

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
	}
}

func (k *DefaultKafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	km := make([]kafka.Message, 0, len(msgs))
	now := time.Now()
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  now,
			Topic: topic,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	return k.writer.WriteMessages(ctx, km...)
}

func (k *DefaultKafkaPublisher) Close() error {
	return k.writer.Close()
}

// NoopPublisher drops every message. Used when Kafka is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(string, ...domain.Message) error { return nil }
