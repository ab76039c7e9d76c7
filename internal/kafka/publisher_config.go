package kafka

import (
	"time"

	"github.com/segmentio/kafka-go"
)

type PublisherConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
	MaxAttempts  int
	RetryInitial time.Duration
	RetryMax     time.Duration
}

// writerConfig — повторы делает сам Publisher, поэтому у kafka.Writer одна попытка.
// Ключ сообщения — request id, Hash держит отчёты одного запроса в одной партиции.
func (c *PublisherConfig) writerConfig() *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Topic:                  c.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            1,
		WriteTimeout:           c.WriteTimeout,
		AllowAutoTopicCreation: true,
	}
}
