package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/riskibarqy/hoops-reference/internal/platform/logging"
	"github.com/riskibarqy/hoops-reference/internal/platform/workpool"
)

// fetchInto runs fn on the group and stores its result in dst. On failure dst
// is left untouched so the page renders the section empty or with its preset.
func fetchInto[T any](g *workpool.Group, section string, dst *T, fn func(context.Context) (T, error)) {
	g.Go(section, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	})
}

// settle waits for every section, logs each failure and returns the names of
// the sections that could not be loaded. ctx carries the page name from
// startPage.
func settle(ctx context.Context, logger *logging.Logger, g *workpool.Group) []string {
	err := g.Wait()
	if err == nil {
		return nil
	}

	var failed []string
	for _, e := range unjoin(err) {
		section := "unknown"
		var taskErr *workpool.TaskError
		if errors.As(e, &taskErr) {
			section = taskErr.Name
		}
		failed = append(failed, section)
		logger.WarnContext(ctx, "page section failed to load, rendering without it",
			"section", section,
			"error", e,
		)
	}
	sort.Strings(failed)
	return failed
}

func unjoin(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
