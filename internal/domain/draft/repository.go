package draft

import "context"

// Repository describes draft data needs from use cases.
type Repository interface {
	ListPicks(ctx context.Context, year, limit int) ([]Pick, error)
}
