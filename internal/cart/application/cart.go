package application

import (
	"context"

	"github.com/wyfcoding/pizzeria/internal/cart/domain"
	"github.com/wyfcoding/pizzeria/pkg/metrics"
)

// CartApplicationService 购物车服务门面，整合命令服务和查询服务
type CartApplicationService struct {
	commandService *CartCommandService
	queryService   *CartQueryService
}

// NewCartApplicationService 创建购物车服务门面实例
func NewCartApplicationService(
	repo domain.CartRepository,
	menu MenuProvider,
	namer NameSuggester,
	publisher domain.EventPublisher,
	m *metrics.Metrics,
) *CartApplicationService {
	return &CartApplicationService{
		commandService: NewCartCommandService(repo, menu, namer, publisher, m),
		queryService:   NewCartQueryService(repo),
	}
}

// GetCart 获取购物车视图
func (s *CartApplicationService) GetCart(ctx context.Context, cartID string) (*CartDTO, error) {
	return s.queryService.GetCart(ctx, cartID)
}

// AddSpecialty 添加招牌披萨并返回更新后的购物车
func (s *CartApplicationService) AddSpecialty(ctx context.Context, cmd AddSpecialtyCommand) (*CartDTO, error) {
	cart, err := s.commandService.AddSpecialty(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return NewCartDTO(cart), nil
}

// AddCustom 添加自选披萨并返回更新后的购物车
func (s *CartApplicationService) AddCustom(ctx context.Context, cmd AddCustomCommand) (*CartDTO, error) {
	cart, err := s.commandService.AddCustom(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return NewCartDTO(cart), nil
}

// UpdateQuantity 修改行项目份数并返回更新后的购物车
func (s *CartApplicationService) UpdateQuantity(ctx context.Context, cmd UpdateQuantityCommand) (*CartDTO, error) {
	cart, err := s.commandService.UpdateQuantity(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return NewCartDTO(cart), nil
}

// RemoveItem 移除行项目并返回更新后的购物车
func (s *CartApplicationService) RemoveItem(ctx context.Context, cmd RemoveItemCommand) (*CartDTO, error) {
	cart, err := s.commandService.RemoveItem(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return NewCartDTO(cart), nil
}

// ClearCart 清空购物车
func (s *CartApplicationService) ClearCart(ctx context.Context, cmd ClearCartCommand) error {
	return s.commandService.ClearCart(ctx, cmd)
}
