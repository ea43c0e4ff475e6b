package application

import (
	"context"

	"github.com/wyfcoding/pizzeria/internal/cart/domain"
)

// CartQueryService 购物车查询服务
type CartQueryService struct {
	repo domain.CartRepository
}

// NewCartQueryService 创建购物车查询服务实例
func NewCartQueryService(repo domain.CartRepository) *CartQueryService {
	return &CartQueryService{repo: repo}
}

// GetCart 获取购物车。购物车不存在时返回空购物车。
func (s *CartQueryService) GetCart(ctx context.Context, cartID string) (*CartDTO, error) {
	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return NewCartDTO(cart), nil
}
