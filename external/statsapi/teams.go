package statsapi

import (
	"context"
	"net/url"

	"github.com/riskibarqy/hoops-reference/internal/domain/game"
	"github.com/riskibarqy/hoops-reference/internal/domain/player"
	"github.com/riskibarqy/hoops-reference/internal/domain/team"
)

type TeamRepository struct {
	client *Client
}

func NewTeamRepository(client *Client) *TeamRepository {
	return &TeamRepository{client: client}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	return getList[team.Team](ctx, r.client, "/teams", nil)
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	return getOne[team.Team](ctx, r.client, "/teams/"+escape(teamID))
}

func (r *TeamRepository) ListRoster(ctx context.Context, teamID string) ([]player.Player, error) {
	return getList[player.Player](ctx, r.client, "/teams/"+escape(teamID)+"/roster", nil)
}

func (r *TeamRepository) ListSeasonStats(ctx context.Context, teamID string) ([]team.SeasonStats, error) {
	return getList[team.SeasonStats](ctx, r.client, "/teams/"+escape(teamID)+"/stats", nil)
}

type GameRepository struct {
	client *Client
}

func NewGameRepository(client *Client) *GameRepository {
	return &GameRepository{client: client}
}

func (r *GameRepository) List(ctx context.Context, filter game.Filter) ([]game.Game, error) {
	values := url.Values{}
	setString(values, "date", filter.Date)
	setString(values, "team_id", filter.TeamID)
	setInt(values, "limit", filter.Limit)
	setInt(values, "offset", filter.Offset)
	return getList[game.Game](ctx, r.client, "/games", values)
}

func (r *GameRepository) GetByID(ctx context.Context, gameID string) (game.Game, bool, error) {
	return getOne[game.Game](ctx, r.client, "/games/"+escape(gameID))
}

func (r *GameRepository) ListBoxScores(ctx context.Context, gameID string) ([]game.BoxScoreLine, error) {
	return getList[game.BoxScoreLine](ctx, r.client, "/boxscores/"+escape(gameID), nil)
}

// GetStats treats both a 404 and a null body as "no stats recorded".
func (r *GameRepository) GetStats(ctx context.Context, gameID string) (game.TeamGameStats, bool, error) {
	stats, exists, err := getOne[*game.TeamGameStats](ctx, r.client, "/games/"+escape(gameID)+"/stats")
	if err != nil || !exists || stats == nil {
		return game.TeamGameStats{}, false, err
	}
	return *stats, true, nil
}
