package kafka

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/RaikyD/vila-sales-api/internal/domain"
	"github.com/RaikyD/vila-sales-api/internal/logger"
	"github.com/segmentio/kafka-go"
)

// Producer publishes query audit events. Writes are async: PublishQuery
// returns once the message is queued and delivery errors are logged.
type Producer struct {
	w *kafka.Writer
}

func NewProducer(brokersSTR, topic string) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(splitBrokers(brokersSTR)...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					logger.Warn("[kafka] audit delivery failed", "count", len(messages), "err", err)
				}
			},
		},
	}
}

func (p *Producer) Close() error {
	return p.w.Close()
}

func (p *Producer) PublishQuery(ctx context.Context, ev domain.QueryEvent) error {
	msg, err := queryMessage(ev)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, msg)
}

func queryMessage(ev domain.QueryEvent) (kafka.Message, error) {
	b, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(ev.Endpoint),
		Value: b,
		Time:  ev.At,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: "event-id", Value: []byte(ev.ID.String())},
		},
	}, nil
}

func splitBrokers(s string) []string {
	var out []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
