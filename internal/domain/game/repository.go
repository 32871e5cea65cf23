package game

import "context"

// Repository describes game data needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Game, error)
	GetByID(ctx context.Context, gameID string) (Game, bool, error)
	ListBoxScores(ctx context.Context, gameID string) ([]BoxScoreLine, error)
	// GetStats reports exists=false when the API has no team stats for the game.
	GetStats(ctx context.Context, gameID string) (TeamGameStats, bool, error)
}
