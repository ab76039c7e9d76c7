//go:build integration

package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	ikafka "github.com/Gunvolt24/sand_conformance/internal/kafka"
)

// ReportTopic — уникальный топик отчётов для теста: "<base>-<name>-<suffix>".
func (e *KafkaEnv) ReportTopic(name string) string {
	return fmt.Sprintf("%s-%s-%s", e.BaseTopic, name, UniqSuffix())
}

// PublisherConfig — конфигурация публикатора, направленная в контейнер; повторы с короткими паузами.
func (e *KafkaEnv) PublisherConfig(topic string) *ikafka.PublisherConfig {
	return &ikafka.PublisherConfig{
		Brokers:      e.Brokers,
		Topic:        topic,
		WriteTimeout: 10 * time.Second,
		MaxAttempts:  5,
		RetryInitial: 200 * time.Millisecond,
		RetryMax:     2 * time.Second,
	}
}

// EnsureReportTopic — создаёт топик отчётов из конфигурации публикатора и ждёт его готовности.
// Уже существующий топик — не ошибка.
func EnsureReportTopic(ctx context.Context, cfg *ikafka.PublisherConfig) error {
	if len(cfg.Brokers) == 0 {
		return errors.New("no brokers in publisher config")
	}
	broker := cfg.Brokers[0]

	conn, err := kafka.Dial("tcp", broker)
	if err != nil {
		return err
	}
	defer conn.Close()

	// топики создаёт контроллер кластера
	ctrl, err := conn.Controller()
	if err != nil {
		return err
	}
	admin, err := kafka.Dial("tcp", net.JoinHostPort(ctrl.Host, strconv.Itoa(ctrl.Port)))
	if err != nil {
		return err
	}
	defer admin.Close()

	err = admin.CreateTopics(kafka.TopicConfig{
		Topic:             cfg.Topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
	if err != nil && !strings.Contains(strings.ToLower(err.Error()), "already exists") {
		return err
	}

	return waitTopicReady(ctx, broker, cfg.Topic)
}

// ReadEnvelope — читает первое сообщение топика отчётов и декодирует конверт.
func ReadEnvelope(ctx context.Context, cfg *ikafka.PublisherConfig) (ikafka.Envelope, kafka.Message, error) {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       cfg.Topic,
		StartOffset: kafka.FirstOffset,
	})
	defer r.Close()

	msg, err := r.ReadMessage(ctx)
	if err != nil {
		return ikafka.Envelope{}, kafka.Message{}, fmt.Errorf("read report from %s: %w", cfg.Topic, err)
	}

	var env ikafka.Envelope
	if err := json.Unmarshal(msg.Value, &env); err != nil {
		return ikafka.Envelope{}, msg, fmt.Errorf("decode report envelope: %w", err)
	}
	return env, msg, nil
}

func waitTopicReady(ctx context.Context, broker, topic string) error {
	deadline := time.Now().Add(5 * time.Second)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		c, err := kafka.Dial("tcp", broker)
		if err == nil {
			parts, perr := c.ReadPartitions(topic)
			_ = c.Close()
			if perr == nil && len(parts) > 0 {
				return nil
			}
			err = perr
		}

		if time.Now().After(deadline) {
			if err != nil {
				return fmt.Errorf("topic %q not ready: %w", topic, err)
			}
			return fmt.Errorf("topic %q not ready", topic)
		}
		time.Sleep(200 * time.Millisecond)
	}
}
