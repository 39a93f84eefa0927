package services

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"connectfour/internal/config"
	"connectfour/internal/models"
	"connectfour/pkg/logger"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/scram"
	"go.uber.org/zap"
)

// EventPublisher receives the lifecycle events of every game.
type EventPublisher interface {
	PublishGameStarted(ctx context.Context, event models.GameStartedEvent) error
	PublishMoveMade(ctx context.Context, event models.MoveMadeEvent) error
	PublishGameCompleted(ctx context.Context, event models.GameCompletedEvent) error
	Close() error
}

// NopPublisher drops every event. It is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishGameStarted(context.Context, models.GameStartedEvent) error {
	return nil
}

func (NopPublisher) PublishMoveMade(context.Context, models.MoveMadeEvent) error {
	return nil
}

func (NopPublisher) PublishGameCompleted(context.Context, models.GameCompletedEvent) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}

// NewEventPublisher returns a Kafka producer when brokers are configured and
// a NopPublisher otherwise.
func NewEventPublisher(cfg *config.Config) (EventPublisher, error) {
	if !cfg.KafkaEnabled() {
		logger.Log.Info("Kafka disabled, game events will not be published")
		return NopPublisher{}, nil
	}
	return NewKafkaProducer(cfg)
}

func saslMechanism(cfg *config.Config) (sasl.Mechanism, error) {
	if cfg.Kafka.Username == "" {
		return nil, nil
	}
	return scram.Mechanism(scram.SHA256, cfg.Kafka.Username, cfg.Kafka.Password)
}

func tlsConfig(cfg *config.Config) *tls.Config {
	if !cfg.Kafka.TLS {
		return nil
	}
	return &tls.Config{MinVersion: tls.VersionTLS12}
}

type KafkaProducer struct {
	writer *kafka.Writer
}

func NewKafkaProducer(cfg *config.Config) (*KafkaProducer, error) {
	mechanism, err := saslMechanism(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create SASL mechanism: %w", err)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Kafka.Brokers...),
		Topic:        cfg.Kafka.TopicEvents,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
		Compression:  kafka.Snappy,
		Transport: &kafka.Transport{
			SASL: mechanism,
			TLS:  tlsConfig(cfg),
		},
	}

	logger.Log.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("topic", cfg.Kafka.TopicEvents),
	)
	return &KafkaProducer{writer: writer}, nil
}

func (kp *KafkaProducer) PublishGameStarted(ctx context.Context, event models.GameStartedEvent) error {
	return kp.publish(ctx, event.GameID.String(), event)
}

func (kp *KafkaProducer) PublishMoveMade(ctx context.Context, event models.MoveMadeEvent) error {
	return kp.publish(ctx, event.GameID.String(), event)
}

func (kp *KafkaProducer) PublishGameCompleted(ctx context.Context, event models.GameCompletedEvent) error {
	return kp.publish(ctx, event.GameID.String(), event)
}

// publish keys messages by game so every event of one game lands on the same
// partition in order.
func (kp *KafkaProducer) publish(ctx context.Context, key string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := kp.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write failed: %w", err)
	}

	logger.Log.Debug("Event published to Kafka", zap.Int("size", len(data)))
	return nil
}

func (kp *KafkaProducer) Close() error {
	if kp.writer != nil {
		return kp.writer.Close()
	}
	return nil
}

// EventSink consumes decoded game events.
type EventSink interface {
	ProcessGameStarted(event models.GameStartedEvent)
	ProcessMoveMade(event models.MoveMadeEvent)
	ProcessGameCompleted(event models.GameCompletedEvent)
}

type KafkaConsumer struct {
	reader *kafka.Reader
	sink   EventSink
}

func NewKafkaConsumer(cfg *config.Config, sink EventSink) (*KafkaConsumer, error) {
	if !cfg.KafkaEnabled() {
		return nil, errors.New("no kafka brokers configured")
	}
	mechanism, err := saslMechanism(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create SASL mechanism: %w", err)
	}

	dialer := &kafka.Dialer{
		Timeout:       10 * time.Second,
		DualStack:     true,
		SASLMechanism: mechanism,
		TLS:           tlsConfig(cfg),
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Kafka.Brokers,
		Topic:          cfg.Kafka.TopicEvents,
		GroupID:        cfg.Kafka.GroupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
		Dialer:         dialer,
	})

	logger.Log.Info("Kafka consumer initialized",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("topic", cfg.Kafka.TopicEvents),
		zap.String("group", cfg.Kafka.GroupID),
	)

	return &KafkaConsumer{reader: reader, sink: sink}, nil
}

// Start reads until ctx is cancelled.
func (kc *KafkaConsumer) Start(ctx context.Context) {
	logger.Log.Info("Starting Kafka consumer...")

	for {
		msg, err := kc.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logger.Log.Info("Kafka consumer stopped")
				return
			}
			logger.Log.Error("Kafka read error", zap.Error(err))
			select {
			case <-ctx.Done():
				logger.Log.Info("Kafka consumer stopped")
				return
			case <-time.After(5 * time.Second):
			}
			continue
		}

		if err := DispatchEvent(msg.Value, kc.sink); err != nil {
			logger.Log.Error("Failed to process event", zap.Error(err), zap.Int64("offset", msg.Offset))
		}
	}
}

// DispatchEvent decodes one JSON event and hands it to sink by type.
func DispatchEvent(data []byte, sink EventSink) error {
	var base struct {
		Type models.KafkaEventType `json:"type"`
	}
	if err := json.Unmarshal(data, &base); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	switch base.Type {
	case models.EventGameStarted:
		var event models.GameStartedEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return fmt.Errorf("failed to unmarshal %s: %w", base.Type, err)
		}
		sink.ProcessGameStarted(event)
	case models.EventMoveMade:
		var event models.MoveMadeEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return fmt.Errorf("failed to unmarshal %s: %w", base.Type, err)
		}
		sink.ProcessMoveMade(event)
	case models.EventGameCompleted:
		var event models.GameCompletedEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return fmt.Errorf("failed to unmarshal %s: %w", base.Type, err)
		}
		sink.ProcessGameCompleted(event)
	default:
		return fmt.Errorf("unknown event type %q", base.Type)
	}
	return nil
}

func (kc *KafkaConsumer) Close() error {
	if kc.reader != nil {
		return kc.reader.Close()
	}
	return nil
}
