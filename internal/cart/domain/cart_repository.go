package domain

import "context"

type CartRepository interface {
	Get(ctx context.Context, cartID string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	Delete(ctx context.Context, cartID string) error
}
