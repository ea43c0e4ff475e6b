package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wyfcoding/pizzeria/internal/cart/domain"
	"github.com/wyfcoding/pizzeria/pkg/logger"
)

// CartRedisRepository 购物车的 Redis 存储。
// 每个购物车一个键，整车 JSON 序列化后整体读写，最后写入者胜出。
type CartRedisRepository struct {
	client    redis.UniversalClient
	keyPrefix string
	ttl       time.Duration
}

func NewCartRedisRepository(client redis.UniversalClient, ttl time.Duration) domain.CartRepository {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &CartRedisRepository{
		client:    client,
		keyPrefix: "cart:",
		ttl:       ttl,
	}
}

func (r *CartRedisRepository) key(cartID string) string {
	return r.keyPrefix + cartID
}

// Get 读取购物车。键不存在或内容损坏时返回空购物车而不是错误。
func (r *CartRedisRepository) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	data, err := r.client.Get(ctx, r.key(cartID)).Bytes()
	if err == redis.Nil {
		return domain.NewCart(cartID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart from redis: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		logger.Warn(ctx, "discarding corrupt cart payload", "cart_id", cartID, "error", err)
		return domain.NewCart(cartID), nil
	}
	return &cart, nil
}

func (r *CartRedisRepository) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := r.client.Set(ctx, r.key(cart.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart to redis: %w", err)
	}
	return nil
}

func (r *CartRedisRepository) Delete(ctx context.Context, cartID string) error {
	if err := r.client.Del(ctx, r.key(cartID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart from redis: %w", err)
	}
	return nil
}
