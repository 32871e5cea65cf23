package statsapi

import (
	"context"
	"net/url"
	"strconv"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/hoops-reference/internal/domain/contract"
	"github.com/riskibarqy/hoops-reference/internal/domain/draft"
	"github.com/riskibarqy/hoops-reference/internal/domain/franchise"
	"github.com/riskibarqy/hoops-reference/internal/domain/player"
	"github.com/riskibarqy/hoops-reference/internal/domain/season"
)

type SeasonRepository struct {
	client *Client
}

func NewSeasonRepository(client *Client) *SeasonRepository {
	return &SeasonRepository{client: client}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	return getList[season.Season](ctx, r.client, "/seasons", nil)
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	return getOne[season.Season](ctx, r.client, "/seasons/"+escape(seasonID))
}

func (r *SeasonRepository) ListStandings(ctx context.Context, seasonID string) ([]season.Standing, error) {
	return getList[season.Standing](ctx, r.client, "/seasons/"+escape(seasonID)+"/standings", nil)
}

// GetLeaders returns the category map as sent; categories may be missing.
func (r *SeasonRepository) GetLeaders(ctx context.Context, seasonID string) (season.Leaders, error) {
	out := season.Leaders{}
	if err := r.client.doJSON(ctx, "/seasons/"+escape(seasonID)+"/leaders", nil, &out); err != nil {
		if crerr.Is(err, errNotFound) {
			return season.Leaders{}, nil
		}
		return nil, err
	}
	return out, nil
}

func (r *SeasonRepository) ListAwards(ctx context.Context, seasonID string) ([]player.Award, error) {
	return getList[player.Award](ctx, r.client, "/seasons/"+escape(seasonID)+"/awards", nil)
}

func (r *SeasonRepository) ListPlayoffSeries(ctx context.Context, seasonID string) ([]season.PlayoffSeries, error) {
	return getList[season.PlayoffSeries](ctx, r.client, "/seasons/"+escape(seasonID)+"/playoffs", nil)
}

type DraftRepository struct {
	client *Client
}

func NewDraftRepository(client *Client) *DraftRepository {
	return &DraftRepository{client: client}
}

func (r *DraftRepository) ListPicks(ctx context.Context, year, limit int) ([]draft.Pick, error) {
	values := url.Values{}
	if year > 0 {
		values.Set("year", strconv.Itoa(year))
	}
	setInt(values, "limit", limit)
	return getList[draft.Pick](ctx, r.client, "/draft/picks", values)
}

type ContractRepository struct {
	client *Client
}

func NewContractRepository(client *Client) *ContractRepository {
	return &ContractRepository{client: client}
}

func (r *ContractRepository) List(ctx context.Context, limit int) ([]contract.Contract, error) {
	values := url.Values{}
	setInt(values, "limit", limit)
	return getList[contract.Contract](ctx, r.client, "/contracts", values)
}

func (r *ContractRepository) ListByPlayer(ctx context.Context, playerID string) ([]contract.Contract, error) {
	return getList[contract.Contract](ctx, r.client, "/players/"+escape(playerID)+"/contracts", nil)
}

type FranchiseRepository struct {
	client *Client
}

func NewFranchiseRepository(client *Client) *FranchiseRepository {
	return &FranchiseRepository{client: client}
}

func (r *FranchiseRepository) List(ctx context.Context) ([]franchise.Franchise, error) {
	return getList[franchise.Franchise](ctx, r.client, "/franchises", nil)
}
