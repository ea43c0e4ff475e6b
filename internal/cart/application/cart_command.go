package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wyfcoding/pizzeria/internal/cart/domain"
	menudomain "github.com/wyfcoding/pizzeria/internal/menu/domain"
	"github.com/wyfcoding/pizzeria/pkg/logger"
	"github.com/wyfcoding/pizzeria/pkg/metrics"
)

// MenuProvider 命令服务需要的菜单查询端口
type MenuProvider interface {
	GetSpecialtyPizza(ctx context.Context, id string) (*menudomain.SpecialtyPizza, error)
	GetPricing(ctx context.Context) (*menudomain.PricingTable, error)
}

// NameSuggester 自选披萨起名端口
type NameSuggester interface {
	SuggestName(ctx context.Context, toppings []menudomain.Topping) string
}

// AddSpecialtyCommand 添加招牌披萨命令。
// ToppingOverrides 以配料名到状态（removed/regular/extra）的映射表示
// 对默认配料的修改，未出现的默认配料保持 regular。
type AddSpecialtyCommand struct {
	CartID           string
	PizzaID          string
	Size             menudomain.Size
	Quantity         int
	ToppingOverrides map[string]string
}

// ToppingSelection 自选披萨的单个配料选择
type ToppingSelection struct {
	Name     string
	Quantity menudomain.ToppingQuantity
}

// AddCustomCommand 添加自选披萨命令
type AddCustomCommand struct {
	CartID   string
	Size     menudomain.Size
	Quantity int
	Toppings []ToppingSelection
}

// UpdateQuantityCommand 修改行项目份数命令
type UpdateQuantityCommand struct {
	CartID   string
	ItemID   string
	Quantity int
}

// RemoveItemCommand 移除行项目命令
type RemoveItemCommand struct {
	CartID string
	ItemID string
}

// ClearCartCommand 清空购物车命令
type ClearCartCommand struct {
	CartID string
}

// CartCommandService 购物车命令服务
type CartCommandService struct {
	repo      domain.CartRepository
	menu      MenuProvider
	namer     NameSuggester
	publisher domain.EventPublisher
	metrics   *metrics.Metrics
}

// NewCartCommandService 创建购物车命令服务实例
func NewCartCommandService(
	repo domain.CartRepository,
	menu MenuProvider,
	namer NameSuggester,
	publisher domain.EventPublisher,
	m *metrics.Metrics,
) *CartCommandService {
	return &CartCommandService{
		repo:      repo,
		menu:      menu,
		namer:     namer,
		publisher: publisher,
		metrics:   m,
	}
}

// AddSpecialty 处理添加招牌披萨。
// 招牌披萨按菜单尺寸价计价，配料修改不影响价格。
func (s *CartCommandService) AddSpecialty(ctx context.Context, cmd AddSpecialtyCommand) (*domain.Cart, error) {
	if !cmd.Size.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSize, cmd.Size)
	}

	pizza, err := s.menu.GetSpecialtyPizza(ctx, cmd.PizzaID)
	if err != nil {
		return nil, err
	}

	total, err := pizza.TotalPrice(cmd.Size, cmd.Quantity)
	if err != nil {
		return nil, err
	}

	sel := domain.NewSpecialtySelection(pizza.Toppings)
	for name, stateValue := range cmd.ToppingOverrides {
		state, err := domain.ParseToppingState(stateValue)
		if err != nil {
			return nil, err
		}
		if err := sel.Set(name, state); err != nil {
			return nil, err
		}
	}

	item := domain.LineItem{
		ID: uuid.New().String(),
		Pizza: domain.Pizza{
			Name:              pizza.Name,
			Type:              domain.PizzaTypeSpecialty,
			Size:              cmd.Size,
			Toppings:          sel.Toppings(),
			ToppingExclusions: sel.Exclusions(),
			Quantity:          cmd.Quantity,
			TotalPrice:        total,
		},
	}
	return s.appendItem(ctx, cmd.CartID, item)
}

// AddCustom 处理添加自选披萨。
// 价格为基础价加所选配料增量再乘份数，名字由起名服务生成。
func (s *CartCommandService) AddCustom(ctx context.Context, cmd AddCustomCommand) (*domain.Cart, error) {
	if !cmd.Size.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSize, cmd.Size)
	}

	table, err := s.menu.GetPricing(ctx)
	if err != nil {
		return nil, err
	}

	sel := domain.NewCustomSelection()
	for _, t := range cmd.Toppings {
		if !t.Quantity.Valid() {
			return nil, fmt.Errorf("invalid topping quantity %q", t.Quantity)
		}
		sel.Set(t.Name, t.Quantity)
	}
	toppings := sel.Toppings()

	total, err := menudomain.ComputeCustomPrice(table, cmd.Size, toppings, cmd.Quantity)
	if err != nil {
		return nil, err
	}

	item := domain.LineItem{
		ID: uuid.New().String(),
		Pizza: domain.Pizza{
			Name:       s.namer.SuggestName(ctx, toppings),
			Type:       domain.PizzaTypeCustom,
			Size:       cmd.Size,
			Toppings:   toppings,
			Quantity:   cmd.Quantity,
			TotalPrice: total,
		},
	}
	return s.appendItem(ctx, cmd.CartID, item)
}

func (s *CartCommandService) appendItem(ctx context.Context, cartID string, item domain.LineItem) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.AddItem(item)
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.CartItemsAddedTotal.Inc()
	}
	s.publish(ctx, "cart.item.added", cart.ID, domain.CartItemAddedEvent{
		CartID:     cart.ID,
		ItemID:     item.ID,
		PizzaName:  item.Pizza.Name,
		PizzaType:  item.Pizza.Type,
		Quantity:   item.Pizza.Quantity,
		TotalPrice: item.Pizza.TotalPrice.String(),
		Timestamp:  time.Now(),
	})
	return cart, nil
}

// UpdateQuantity 处理修改行项目份数
func (s *CartCommandService) UpdateQuantity(ctx context.Context, cmd UpdateQuantityCommand) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, cmd.CartID)
	if err != nil {
		return nil, err
	}

	old, ok := cart.Item(cmd.ItemID)
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	oldQuantity := old.Pizza.Quantity

	if err := cart.UpdateQuantity(cmd.ItemID, cmd.Quantity); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}

	s.publish(ctx, "cart.quantity.updated", cart.ID, domain.CartQuantityUpdatedEvent{
		CartID:      cart.ID,
		ItemID:      cmd.ItemID,
		OldQuantity: oldQuantity,
		NewQuantity: cmd.Quantity,
		Timestamp:   time.Now(),
	})
	return cart, nil
}

// RemoveItem 处理移除行项目。行项目不存在时不报错。
func (s *CartCommandService) RemoveItem(ctx context.Context, cmd RemoveItemCommand) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, cmd.CartID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(cmd.ItemID)
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}

	s.publish(ctx, "cart.item.removed", cart.ID, domain.CartItemRemovedEvent{
		CartID:    cart.ID,
		ItemID:    cmd.ItemID,
		Timestamp: time.Now(),
	})
	return cart, nil
}

// ClearCart 处理清空购物车
func (s *CartCommandService) ClearCart(ctx context.Context, cmd ClearCartCommand) error {
	if err := s.repo.Delete(ctx, cmd.CartID); err != nil {
		return err
	}

	s.publish(ctx, "cart.cleared", cmd.CartID, domain.CartClearedEvent{
		CartID:    cmd.CartID,
		Timestamp: time.Now(),
	})
	return nil
}

// publish 事件投递尽力而为，失败只记日志，不影响命令结果
func (s *CartCommandService) publish(ctx context.Context, topic string, key string, event any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, topic, key, event); err != nil {
		logger.Warn(ctx, "failed to publish cart event", "topic", topic, "error", err)
	}
}
