package team

import (
	"context"

	"github.com/riskibarqy/hoops-reference/internal/domain/player"
)

// Repository describes team data needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	ListRoster(ctx context.Context, teamID string) ([]player.Player, error)
	ListSeasonStats(ctx context.Context, teamID string) ([]SeasonStats, error)
}
