package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"quiz-service/domain"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const EventTypeHeader = "event-type"

type Config struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventRelay writes room events to a Kafka topic keyed by room id, so all
// events of one room land on one partition in order.
type EventRelay struct {
	writer messageWriter
	topic  string
}

func NewEventRelay(cfg Config) *EventRelay {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		WriteTimeout:           cfg.WriteTimeout,
		AllowAutoTopicCreation: true,
	}
	return &EventRelay{writer: w, topic: cfg.Topic}
}

// Ping dials the first reachable broker.
func Ping(ctx context.Context, brokers []string) error {
	var lastErr error
	for _, broker := range brokers {
		conn, err := kafka.DialContext(ctx, "tcp", broker)
		if err != nil {
			lastErr = err
			continue
		}
		conn.Close()
		zap.L().Info("connected to Kafka", zap.String("broker", broker))
		return nil
	}
	if lastErr == nil {
		lastErr = errors.New("no brokers configured")
	}
	return fmt.Errorf("kafka unreachable: %w", lastErr)
}

func (r *EventRelay) Name() string { return "kafka" }

func (r *EventRelay) Relay(ctx context.Context, event domain.RoomEvent) error {
	value, err := Encode(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.RoomID),
		Value: value,
		Time:  event.Timestamp,
		Headers: []kafka.Header{
			{Key: EventTypeHeader, Value: []byte(event.Type)},
		},
	}
	if err := r.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write to %s: %w", r.topic, err)
	}
	return nil
}

func (r *EventRelay) Close() error {
	return r.writer.Close()
}

// Encode turns event into a serialized google.protobuf.Struct with the fields
// roomId, type, timestamp (RFC 3339) and content.
func Encode(event domain.RoomEvent) ([]byte, error) {
	content, err := toValue(event.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s content: %w", event.Type, err)
	}

	envelope := &structpb.Struct{Fields: map[string]*structpb.Value{
		"roomId":    structpb.NewStringValue(event.RoomID),
		"type":      structpb.NewStringValue(event.Type),
		"timestamp": structpb.NewStringValue(event.Timestamp.UTC().Format(time.RFC3339Nano)),
		"content":   content,
	}}
	return proto.MarshalOptions{Deterministic: true}.Marshal(envelope)
}

// Decode is the inverse of Encode, for consumers and tests.
func Decode(data []byte) (*structpb.Struct, error) {
	envelope := &structpb.Struct{}
	if err := proto.Unmarshal(data, envelope); err != nil {
		return nil, err
	}
	return envelope, nil
}

// toValue goes through JSON so payload structs keep their wire field names.
func toValue(content any) (*structpb.Value, error) {
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return structpb.NewValue(generic)
}
