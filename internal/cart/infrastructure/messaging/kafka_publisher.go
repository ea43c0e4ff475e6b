package messaging

import (
	"context"

	"github.com/wyfcoding/pizzeria/internal/cart/domain"
	"github.com/wyfcoding/pizzeria/pkg/mq"
)

// KafkaEventPublisher 将购物车领域事件投递到 Kafka
type KafkaEventPublisher struct {
	producer *mq.KafkaProducer
}

func NewKafkaEventPublisher(producer *mq.KafkaProducer) domain.EventPublisher {
	return &KafkaEventPublisher{producer: producer}
}

func (p *KafkaEventPublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	return p.producer.SendMessage(ctx, topic, key, event)
}

// NoopEventPublisher 在未启用 Kafka 时使用的空实现
type NoopEventPublisher struct{}

func NewNoopEventPublisher() domain.EventPublisher {
	return &NoopEventPublisher{}
}

func (p *NoopEventPublisher) Publish(context.Context, string, string, any) error {
	return nil
}
