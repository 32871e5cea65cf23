package franchise

import "context"

// Repository describes franchise data needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Franchise, error)
}
