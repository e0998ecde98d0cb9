package kafka

import (
	"context"
	"encoding/json"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Notifier publishes fire-and-forget change notifications. Delivery is not
// guaranteed: a publish failure is logged and dropped, never surfaced to the
// request that triggered it.
type Notifier interface {
	Notify(topic, key string, payload any)
}

type writerNotifier struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

func NewNotifier(writer *kafkago.Writer, logger ...*zap.Logger) Notifier {
	l := zap.L().Named("kafka.notifier")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.notifier")
	}
	if writer == nil {
		return nopNotifier{}
	}
	return &writerNotifier{writer: writer, logger: l}
}

func (n *writerNotifier) Notify(topic, key string, payload any) {
	value, err := json.Marshal(payload)
	if err != nil {
		n.logger.Error("marshal notification failed", zap.String("topic", topic), zap.Error(err))
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := n.writer.WriteMessages(ctx, kafkago.Message{
			Topic: topic,
			Key:   []byte(key),
			Value: value,
		})
		if err != nil {
			n.logger.Warn("notification publish failed",
				zap.String("topic", topic),
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}()
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string, any) {}
