package player

import "context"

// Repository describes player data needs from use cases.
type Repository interface {
	Search(ctx context.Context, query SearchQuery) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	ListSeasonStats(ctx context.Context, playerID string) ([]SeasonStats, error)
	ListAdvancedStats(ctx context.Context, playerID string) ([]AdvancedStats, error)
	ListShootingStats(ctx context.Context, playerID string) ([]ShootingStats, error)
	ListAdjustedShooting(ctx context.Context, playerID string) ([]AdjustedShooting, error)
	ListPlayByPlayStats(ctx context.Context, playerID string) ([]PlayByPlayStats, error)
	ListGameLogs(ctx context.Context, playerID, seasonID string) ([]GameLog, error)
	ListSplits(ctx context.Context, playerID, seasonID string) ([]Split, error)
	ListAwards(ctx context.Context, playerID string) ([]Award, error)
	ListSeasonIDs(ctx context.Context, playerID string) ([]string, error)
}
