package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"billing_gateway/config"
	"billing_gateway/internal/domain/entities"
	"billing_gateway/internal/infrastructure/logging"
	"billing_gateway/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

var ErrKafkaDisabled = errors.New("kafka publisher disabled: no brokers configured")

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// SnapshotPublisher writes one message per persisted snapshot. Messages are
// keyed by kind and resource id, so all events of one resource land on the
// same partition in order.
type SnapshotPublisher struct {
	writer messageWriter
	logger logrus.FieldLogger
}

var _ interfaces.IEventPublisher = (*SnapshotPublisher)(nil)

func NewSnapshotPublisher(cfg config.KafkaConfig) (*SnapshotPublisher, error) {
	if !cfg.Enabled() {
		return nil, ErrKafkaDisabled
	}
	return newSnapshotPublisher(&kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.SnapshotTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: 10 * time.Second,
	}), nil
}

func newSnapshotPublisher(w messageWriter) *SnapshotPublisher {
	return &SnapshotPublisher{writer: w, logger: logging.NewModuleLogger("snapshot-publisher")}
}

func (p *SnapshotPublisher) Publish(ctx context.Context, event entities.SnapshotEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(string(event.Kind) + ":" + event.ResourceID),
		Value: b,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(event.Kind)},
		},
	})
	if err != nil {
		return err
	}
	p.logger.WithFields(logrus.Fields{"kind": event.Kind, "resource_id": event.ResourceID}).Debug("snapshot event published")
	return nil
}

func (p *SnapshotPublisher) Close() error { return p.writer.Close() }
