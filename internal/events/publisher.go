// Package events publishes back-office audit events to Kafka. Publishing is
// best-effort: failures are logged and never fail the admin action.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/tokokita/tokokita-admin-service/internal/config"
)

// EventType identifies an audit event.
type EventType string

const (
	EventTypeOrderPlaced    EventType = "order.placed"
	EventTypeStockRestocked EventType = "stock.restocked"
)

// AuditEvent is the wire format for admin audit events.
type AuditEvent struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	Actor     string          `json:"actor"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// OrderPlaced is the payload of an order.placed event.
type OrderPlaced struct {
	OrderID    string  `json:"order_id"`
	CustomerID string  `json:"customer_id"`
	ItemCount  int     `json:"item_count"`
	Total      float64 `json:"total"`
}

// Publisher emits audit events.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, actor string, placed OrderPlaced) error
	PublishStockRestocked(ctx context.Context, actor string) error
	Close() error
}

// Ensure implementations satisfy Publisher.
var (
	_ Publisher = (*KafkaPublisher)(nil)
	_ Publisher = (*NoopPublisher)(nil)
	_ Publisher = (*MockPublisher)(nil)
)

// KafkaPublisher publishes audit events to Kafka.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *logrus.Entry
}

// NewKafkaPublisher creates a Kafka-based audit publisher.
func NewKafkaPublisher(cfg config.KafkaConfig, logger *logrus.Entry) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.AuditTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}

	return &KafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

// PublishOrderPlaced records a completed order-composition workflow.
func (p *KafkaPublisher) PublishOrderPlaced(ctx context.Context, actor string, placed OrderPlaced) error {
	data, err := json.Marshal(placed)
	if err != nil {
		return err
	}
	return p.publish(ctx, EventTypeOrderPlaced, actor, placed.OrderID, data)
}

// PublishStockRestocked records a restock-all invocation.
func (p *KafkaPublisher) PublishStockRestocked(ctx context.Context, actor string) error {
	return p.publish(ctx, EventTypeStockRestocked, actor, "stock", nil)
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType EventType, actor, key string, data []byte) error {
	event := &AuditEvent{
		ID:        generateEventID(),
		Type:      eventType,
		Actor:     actor,
		Data:      data,
		Timestamp: time.Now(),
	}

	eventData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: eventData,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "event_id", Value: []byte(event.ID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.WithFields(logrus.Fields{
			"event_id":   event.ID,
			"event_type": event.Type,
			"error":      err.Error(),
		}).Error("Failed to publish audit event")
		return err
	}

	p.logger.WithFields(logrus.Fields{
		"event_id":   event.ID,
		"event_type": event.Type,
	}).Info("Audit event published")

	return nil
}

// Close closes the Kafka writer.
func (p *KafkaPublisher) Close() error {
	p.logger.Info("Closing audit publisher")
	return p.writer.Close()
}

func generateEventID() string {
	return "evt_" + time.Now().Format("20060102150405.000000")
}

// NoopPublisher discards events; used when audit events are disabled.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (NoopPublisher) PublishOrderPlaced(ctx context.Context, actor string, placed OrderPlaced) error {
	return nil
}

func (NoopPublisher) PublishStockRestocked(ctx context.Context, actor string) error { return nil }

func (NoopPublisher) Close() error { return nil }

// MockPublisher records events for tests.
type MockPublisher struct {
	Placed    []OrderPlaced
	Restocked int
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) PublishOrderPlaced(ctx context.Context, actor string, placed OrderPlaced) error {
	m.Placed = append(m.Placed, placed)
	return nil
}

func (m *MockPublisher) PublishStockRestocked(ctx context.Context, actor string) error {
	m.Restocked++
	return nil
}

func (m *MockPublisher) Close() error { return nil }
