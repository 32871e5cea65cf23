package contract

import "context"

// Repository describes contract data needs from use cases.
type Repository interface {
	List(ctx context.Context, limit int) ([]Contract, error)
	ListByPlayer(ctx context.Context, playerID string) ([]Contract, error)
}
