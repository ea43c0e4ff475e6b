package domain

import "context"

// EventPublisher 订单领域事件发布端口
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}
