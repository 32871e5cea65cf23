package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/riskibarqy/hoops-reference/internal/usecase"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid input", err: fmt.Errorf("%w: bad letter", usecase.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("%w: player=x", usecase.ErrNotFound), want: http.StatusNotFound},
		{name: "breaker open", err: fmt.Errorf("list teams: %w", usecase.ErrDependencyUnavailable), want: http.StatusServiceUnavailable},
		{name: "upstream error", err: errors.New("provider status=500"), want: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(context.Background(), tt.err)
			if got.HTTPStatus != tt.want {
				t.Fatalf("unexpected status: got=%d want=%d", got.HTTPStatus, tt.want)
			}
			if got.Message == "" {
				t.Fatalf("expected a message for %v", tt.err)
			}
		})
	}
}
