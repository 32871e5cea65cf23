package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/a-h/templ"
	"github.com/riskibarqy/hoops-reference/external/statsapi"
	"github.com/riskibarqy/hoops-reference/internal/app"
	"github.com/riskibarqy/hoops-reference/internal/config"
	"github.com/riskibarqy/hoops-reference/internal/domain/stattable"
	"github.com/riskibarqy/hoops-reference/internal/domain/statview"
	"github.com/riskibarqy/hoops-reference/internal/interfaces/web/view"
	"github.com/riskibarqy/hoops-reference/internal/platform/logging"
	"github.com/riskibarqy/hoops-reference/internal/platform/workpool"
	"github.com/riskibarqy/hoops-reference/internal/usecase"
	"github.com/spf13/cobra"
)

type profileView func(p usecase.PlayerProfile) []stattable.Row

var profileViews = map[stattable.TableID]profileView{
	stattable.TablePerGame: func(p usecase.PlayerProfile) []stattable.Row {
		return statview.PerGame(p.SeasonStats, p.Player)
	},
	stattable.TableTotals: func(p usecase.PlayerProfile) []stattable.Row {
		return statview.Totals(p.SeasonStats, p.Player)
	},
	stattable.TablePerMinute: func(p usecase.PlayerProfile) []stattable.Row {
		return statview.Per36(p.SeasonStats, p.Player)
	},
	stattable.TablePerPoss: func(p usecase.PlayerProfile) []stattable.Row {
		return statview.Per100(p.SeasonStats, p.Player)
	},
	stattable.TableAdvanced: func(p usecase.PlayerProfile) []stattable.Row {
		return statview.Advanced(p.Advanced, p.SeasonStats, p.Player)
	},
	stattable.TableShooting: func(p usecase.PlayerProfile) []stattable.Row {
		return statview.Shooting(p.Shooting, p.SeasonStats, p.Player)
	},
	stattable.TableAdjShooting: func(p usecase.PlayerProfile) []stattable.Row {
		return statview.AdjustedShooting(p.AdjustedShooting, p.Player)
	},
	stattable.TablePBP: func(p usecase.PlayerProfile) []stattable.Row {
		return statview.PlayByPlay(p.PlayByPlay, p.SeasonStats, p.Player)
	},
	stattable.TableAwards: func(p usecase.PlayerProfile) []stattable.Row {
		return statview.Awards(p.Awards, nil)
	},
	stattable.TableContracts: func(p usecase.PlayerProfile) []stattable.Row {
		return statview.Contracts(p.Contracts, nil)
	},
}

func renderViews() []string {
	out := []string{string(stattable.TablePlayerGameLog), string(stattable.TableSplits)}
	for id := range profileViews {
		out = append(out, string(id))
	}
	slices.Sort(out)
	return out
}

func renderCmd() *cobra.Command {
	var playerID, seasonID, baseURL string
	cmd := &cobra.Command{
		Use:   "render <view>",
		Short: "Fetch a player's data and print one rendered table as HTML",
		Long:  "Views: " + strings.Join(renderViews(), ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if baseURL != "" {
				cfg.StatsAPIBaseURL = baseURL
			}

			logger := logging.NewConsole(cfg.LogLevel)
			defer func() { _ = logger.Sync() }()

			pool, err := workpool.New(cfg.StatsAPIMaxConcurrency)
			if err != nil {
				return err
			}
			defer pool.Release()

			svc := newPlayerService(cfg, logger, pool)
			component, err := renderPlayerTable(cmd, svc, stattable.TableID(args[0]), playerID, seasonID)
			if err != nil {
				return err
			}
			if err := component.Render(cmd.Context(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("render %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().StringVar(&playerID, "player", "", "Player id, e.g. jamesle01")
	cmd.Flags().StringVar(&seasonID, "season", "", "Season id for game logs and splits, e.g. 2023-24")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Override STATS_API_BASE_URL")
	_ = cmd.MarkFlagRequired("player")
	return cmd
}

func newPlayerService(cfg config.Config, logger *logging.Logger, pool *workpool.Pool) *usecase.PlayerService {
	client := app.NewStatsClient(cfg, logger)
	return usecase.NewPlayerService(
		statsapi.NewPlayerRepository(client),
		statsapi.NewContractRepository(client),
		pool,
		logger,
		cfg.PlayersPageSize,
	)
}

func renderPlayerTable(cmd *cobra.Command, svc *usecase.PlayerService, id stattable.TableID, playerID, seasonID string) (templ.Component, error) {
	ctx := cmd.Context()

	switch id {
	case stattable.TablePlayerGameLog:
		page, err := svc.GameLog(ctx, playerID, seasonID)
		if err != nil {
			return nil, err
		}
		warnFailed(cmd, page.Failed)
		return view.Table(stattable.Schema(id), statview.GameLog(page.Logs, page.Player)), nil
	case stattable.TableSplits:
		page, err := svc.Splits(ctx, playerID, seasonID)
		if err != nil {
			return nil, err
		}
		warnFailed(cmd, page.Failed)
		return view.Table(stattable.Schema(id), statview.Splits(page.Splits)), nil
	}

	mapRows, ok := profileViews[id]
	if !ok {
		return nil, fmt.Errorf("unknown view %q, expected one of: %s", id, strings.Join(renderViews(), ", "))
	}
	profile, err := svc.Profile(ctx, playerID)
	if err != nil {
		return nil, err
	}
	warnFailed(cmd, profile.Failed)
	return view.Table(stattable.Schema(id), mapRows(profile)), nil
}

func warnFailed(cmd *cobra.Command, failed []string) {
	if len(failed) == 0 {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not load %s\n", strings.Join(failed, ", "))
}
