package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/riskibarqy/hoops-reference/internal/domain/contract"
	"github.com/riskibarqy/hoops-reference/internal/domain/draft"
	"github.com/riskibarqy/hoops-reference/internal/domain/franchise"
	"github.com/riskibarqy/hoops-reference/internal/domain/team"
	"github.com/riskibarqy/hoops-reference/internal/platform/logging"
	"github.com/riskibarqy/hoops-reference/internal/platform/workpool"
)

const (
	draftClassLimit = 60
	contractsLimit  = 100
	minDraftYear    = 1947
)

type DraftClass struct {
	Year   int
	Picks  []draft.Pick
	Teams  []team.Team
	Failed []string
}

type DraftService struct {
	draftRepo   draft.Repository
	teamRepo    team.Repository
	pool        *workpool.Pool
	logger      *logging.Logger
	defaultYear int
}

func NewDraftService(draftRepo draft.Repository, teamRepo team.Repository, pool *workpool.Pool, logger *logging.Logger, defaultYear int) *DraftService {
	if logger == nil {
		logger = logging.Default()
	}
	if defaultYear < minDraftYear {
		defaultYear = draft.DefaultYear
	}
	return &DraftService{
		draftRepo:   draftRepo,
		teamRepo:    teamRepo,
		pool:        pool,
		logger:      logger,
		defaultYear: defaultYear,
	}
}

// Class loads one draft class. A missing or unparsable year falls back to the
// configured default class.
func (s *DraftService) Class(ctx context.Context, year string) (DraftClass, error) {
	ctx, span := startPage(ctx, "draft", "usecase.DraftService.Class")
	defer span.End()

	out := DraftClass{Year: s.defaultYear}
	if v, err := strconv.Atoi(strings.TrimSpace(year)); err == nil && v >= minDraftYear {
		out.Year = v
	}

	g := s.pool.Group(ctx)
	fetchInto(g, "picks", &out.Picks, func(ctx context.Context) ([]draft.Pick, error) {
		return s.draftRepo.ListPicks(ctx, out.Year, draftClassLimit)
	})
	fetchInto(g, "teams", &out.Teams, s.teamRepo.List)
	out.Failed = settle(ctx, s.logger, g)

	return out, nil
}

type ContractList struct {
	Contracts []contract.Contract
	Teams     []team.Team
	Failed    []string
}

type ContractService struct {
	contractRepo contract.Repository
	teamRepo     team.Repository
	pool         *workpool.Pool
	logger       *logging.Logger
}

func NewContractService(contractRepo contract.Repository, teamRepo team.Repository, pool *workpool.Pool, logger *logging.Logger) *ContractService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ContractService{
		contractRepo: contractRepo,
		teamRepo:     teamRepo,
		pool:         pool,
		logger:       logger,
	}
}

func (s *ContractService) List(ctx context.Context) (ContractList, error) {
	ctx, span := startPage(ctx, "contracts", "usecase.ContractService.List")
	defer span.End()

	var out ContractList
	g := s.pool.Group(ctx)
	fetchInto(g, "contracts", &out.Contracts, func(ctx context.Context) ([]contract.Contract, error) {
		return s.contractRepo.List(ctx, contractsLimit)
	})
	fetchInto(g, "teams", &out.Teams, s.teamRepo.List)
	out.Failed = settle(ctx, s.logger, g)

	return out, nil
}

type FranchiseList struct {
	Franchises []franchise.Franchise
	Failed     []string
}

type FranchiseService struct {
	franchiseRepo franchise.Repository
	pool          *workpool.Pool
	logger        *logging.Logger
}

func NewFranchiseService(franchiseRepo franchise.Repository, pool *workpool.Pool, logger *logging.Logger) *FranchiseService {
	if logger == nil {
		logger = logging.Default()
	}
	return &FranchiseService{
		franchiseRepo: franchiseRepo,
		pool:          pool,
		logger:        logger,
	}
}

func (s *FranchiseService) List(ctx context.Context) (FranchiseList, error) {
	ctx, span := startPage(ctx, "franchises", "usecase.FranchiseService.List")
	defer span.End()

	var out FranchiseList
	g := s.pool.Group(ctx)
	fetchInto(g, "franchises", &out.Franchises, s.franchiseRepo.List)
	out.Failed = settle(ctx, s.logger, g)

	return out, nil
}
