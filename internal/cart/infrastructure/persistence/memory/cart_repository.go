package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/wyfcoding/pizzeria/internal/cart/domain"
)

// CartMemoryRepository 进程内购物车存储，用于本地开发与测试
type CartMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

func NewCartMemoryRepository() *CartMemoryRepository {
	return &CartMemoryRepository{carts: make(map[string][]byte)}
}

func (r *CartMemoryRepository) Get(_ context.Context, cartID string) (*domain.Cart, error) {
	r.mu.RLock()
	data, ok := r.carts[cartID]
	r.mu.RUnlock()
	if !ok {
		return domain.NewCart(cartID), nil
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return domain.NewCart(cartID), nil
	}
	return &cart, nil
}

func (r *CartMemoryRepository) Save(_ context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.carts[cart.ID] = data
	r.mu.Unlock()
	return nil
}

func (r *CartMemoryRepository) Delete(_ context.Context, cartID string) error {
	r.mu.Lock()
	delete(r.carts, cartID)
	r.mu.Unlock()
	return nil
}
