package application

import (
	"context"

	"github.com/wyfcoding/pizzeria/internal/menu/domain"
	"github.com/wyfcoding/pizzeria/pkg/logger"
	"golang.org/x/sync/singleflight"
)

// MenuQueryService 菜单查询服务。
// 上游菜单数据经 Redis 缓存，miss 时回源并用 singleflight 防止并发击穿。
// 缓存读写失败只记日志不阻断，直接回源。
type MenuQueryService struct {
	source domain.CatalogSource
	cache  domain.MenuCache
	sfg    singleflight.Group
}

func NewMenuQueryService(source domain.CatalogSource, cache domain.MenuCache) *MenuQueryService {
	return &MenuQueryService{
		source: source,
		cache:  cache,
	}
}

// GetSpecialtyPizzas 返回招牌披萨列表
func (s *MenuQueryService) GetSpecialtyPizzas(ctx context.Context) ([]domain.SpecialtyPizza, error) {
	v, err, _ := s.sfg.Do("catalog", func() (interface{}, error) {
		if s.cache != nil {
			pizzas, err := s.cache.GetCatalog(ctx)
			if err != nil {
				logger.Warn(ctx, "menu catalog cache read failed", "error", err)
			} else if pizzas != nil {
				return pizzas, nil
			}
		}

		pizzas, err := s.source.SpecialtyPizzas(ctx)
		if err != nil {
			return nil, err
		}

		if s.cache != nil {
			if err := s.cache.SetCatalog(ctx, pizzas); err != nil {
				logger.Warn(ctx, "menu catalog cache write failed", "error", err)
			}
		}
		return pizzas, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.SpecialtyPizza), nil
}

// GetSpecialtyPizza 按 ID 查找单个招牌披萨
func (s *MenuQueryService) GetSpecialtyPizza(ctx context.Context, id string) (*domain.SpecialtyPizza, error) {
	pizzas, err := s.GetSpecialtyPizzas(ctx)
	if err != nil {
		return nil, err
	}
	for i := range pizzas {
		if pizzas[i].ID == id {
			return &pizzas[i], nil
		}
	}
	return nil, domain.ErrPizzaNotFound
}

// GetPricing 返回价格表
func (s *MenuQueryService) GetPricing(ctx context.Context) (*domain.PricingTable, error) {
	v, err, _ := s.sfg.Do("pricing", func() (interface{}, error) {
		if s.cache != nil {
			table, err := s.cache.GetPricing(ctx)
			if err != nil {
				logger.Warn(ctx, "pricing cache read failed", "error", err)
			} else if table != nil {
				return table, nil
			}
		}

		table, err := s.source.PricingTable(ctx)
		if err != nil {
			return nil, err
		}

		if s.cache != nil {
			if err := s.cache.SetPricing(ctx, table); err != nil {
				logger.Warn(ctx, "pricing cache write failed", "error", err)
			}
		}
		return table, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.PricingTable), nil
}
