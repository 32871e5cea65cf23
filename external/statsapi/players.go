package statsapi

import (
	"context"
	"net/url"

	"github.com/riskibarqy/hoops-reference/internal/domain/player"
)

type PlayerRepository struct {
	client *Client
}

func NewPlayerRepository(client *Client) *PlayerRepository {
	return &PlayerRepository{client: client}
}

func (r *PlayerRepository) Search(ctx context.Context, query player.SearchQuery) ([]player.Player, error) {
	values := url.Values{}
	setString(values, "search", query.Search)
	setString(values, "letter", query.Letter)
	setInt(values, "limit", query.Limit)
	setInt(values, "offset", query.Offset)
	return getList[player.Player](ctx, r.client, "/players", values)
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	return getOne[player.Player](ctx, r.client, "/players/"+escape(playerID))
}

func (r *PlayerRepository) ListSeasonStats(ctx context.Context, playerID string) ([]player.SeasonStats, error) {
	return getList[player.SeasonStats](ctx, r.client, "/players/"+escape(playerID)+"/stats", nil)
}

func (r *PlayerRepository) ListAdvancedStats(ctx context.Context, playerID string) ([]player.AdvancedStats, error) {
	return getList[player.AdvancedStats](ctx, r.client, "/players/"+escape(playerID)+"/advanced", nil)
}

func (r *PlayerRepository) ListShootingStats(ctx context.Context, playerID string) ([]player.ShootingStats, error) {
	return getList[player.ShootingStats](ctx, r.client, "/players/"+escape(playerID)+"/shooting", nil)
}

func (r *PlayerRepository) ListAdjustedShooting(ctx context.Context, playerID string) ([]player.AdjustedShooting, error) {
	return getList[player.AdjustedShooting](ctx, r.client, "/players/"+escape(playerID)+"/adjusted_shooting", nil)
}

func (r *PlayerRepository) ListPlayByPlayStats(ctx context.Context, playerID string) ([]player.PlayByPlayStats, error) {
	return getList[player.PlayByPlayStats](ctx, r.client, "/players/"+escape(playerID)+"/playbyplay", nil)
}

// ListGameLogs returns every game when seasonID is empty.
func (r *PlayerRepository) ListGameLogs(ctx context.Context, playerID, seasonID string) ([]player.GameLog, error) {
	values := url.Values{}
	setString(values, "season_id", seasonID)
	return getList[player.GameLog](ctx, r.client, "/players/"+escape(playerID)+"/gamelog", values)
}

func (r *PlayerRepository) ListSplits(ctx context.Context, playerID, seasonID string) ([]player.Split, error) {
	values := url.Values{}
	setString(values, "season_id", seasonID)
	return getList[player.Split](ctx, r.client, "/players/"+escape(playerID)+"/splits", values)
}

func (r *PlayerRepository) ListAwards(ctx context.Context, playerID string) ([]player.Award, error) {
	return getList[player.Award](ctx, r.client, "/players/"+escape(playerID)+"/awards", nil)
}

func (r *PlayerRepository) ListSeasonIDs(ctx context.Context, playerID string) ([]string, error) {
	return getList[string](ctx, r.client, "/players/"+escape(playerID)+"/seasons", nil)
}
