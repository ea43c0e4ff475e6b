package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wyfcoding/pizzeria/internal/menu/domain"
)

// MenuRedisRepository 菜单数据的 Redis 缓存。
// 缓存缺失返回 (nil, nil)，由上层回源。
type MenuRedisRepository struct {
	client     redis.UniversalClient
	catalogKey string
	pricingKey string
	ttl        time.Duration
}

func NewMenuRedisRepository(client redis.UniversalClient, ttl time.Duration) *MenuRedisRepository {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &MenuRedisRepository{
		client:     client,
		catalogKey: "menu:specialty",
		pricingKey: "menu:pricing",
		ttl:        ttl,
	}
}

func (r *MenuRedisRepository) GetCatalog(ctx context.Context) ([]domain.SpecialtyPizza, error) {
	data, err := r.client.Get(ctx, r.catalogKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var pizzas []domain.SpecialtyPizza
	if err := json.Unmarshal(data, &pizzas); err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (r *MenuRedisRepository) SetCatalog(ctx context.Context, pizzas []domain.SpecialtyPizza) error {
	if len(pizzas) == 0 {
		return nil
	}
	data, err := json.Marshal(pizzas)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.catalogKey, data, r.ttl).Err()
}

func (r *MenuRedisRepository) GetPricing(ctx context.Context) (*domain.PricingTable, error) {
	data, err := r.client.Get(ctx, r.pricingKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var table domain.PricingTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *MenuRedisRepository) SetPricing(ctx context.Context, table *domain.PricingTable) error {
	if table == nil {
		return nil
	}
	data, err := json.Marshal(table)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.pricingKey, data, r.ttl).Err()
}
