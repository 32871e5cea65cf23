package season

import (
	"context"

	"github.com/riskibarqy/hoops-reference/internal/domain/player"
)

// Repository describes season data needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Season, error)
	GetByID(ctx context.Context, seasonID string) (Season, bool, error)
	ListStandings(ctx context.Context, seasonID string) ([]Standing, error)
	GetLeaders(ctx context.Context, seasonID string) (Leaders, error)
	ListAwards(ctx context.Context, seasonID string) ([]player.Award, error)
	ListPlayoffSeries(ctx context.Context, seasonID string) ([]PlayoffSeries, error)
}
