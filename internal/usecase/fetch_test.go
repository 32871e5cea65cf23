package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/hoops-reference/internal/domain/franchise"
	franchisemock "github.com/riskibarqy/hoops-reference/internal/mocks/domain/franchise"
	"github.com/riskibarqy/hoops-reference/internal/platform/logging"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSettleLogsPageAndSection(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.WarnLevel)
	franchiseRepo := franchisemock.NewRepository(t)
	service := NewFranchiseService(franchiseRepo, newTestPool(t), logging.FromZap(zap.New(core)))

	franchiseRepo.
		On("List", mock.MatchedBy(func(ctx context.Context) bool {
			return logging.PageFromContext(ctx) == "franchises"
		})).
		Return([]franchise.Franchise(nil), errUpstream).
		Once()

	got, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Failed) != 1 || got.Failed[0] != "franchises" {
		t.Fatalf("unexpected failed sections: %v", got.Failed)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("unexpected entry count: %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields[logging.PageKey] != "franchises" || fields["section"] != "franchises" {
		t.Fatalf("unexpected log fields: %v", fields)
	}
}
