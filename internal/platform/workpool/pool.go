package workpool

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/panics"
)

const defaultSize = 16

// Pool is a process-wide bounded worker pool for upstream fetches.
type Pool struct {
	ants *ants.Pool
}

func New(size int) (*Pool, error) {
	if size < 1 {
		size = defaultSize
	}
	p, err := ants.NewPool(size)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	return &Pool{ants: p}, nil
}

func (p *Pool) Release() {
	if p == nil || p.ants == nil {
		return
	}
	p.ants.Release()
}

func (p *Pool) Running() int {
	return p.ants.Running()
}

func (p *Pool) Cap() int {
	return p.ants.Cap()
}

// Group starts a set of tasks that share ctx. Tasks must not start groups of
// their own on the same pool.
func (p *Pool) Group(ctx context.Context) *Group {
	return &Group{pool: p, ctx: ctx}
}

// Group collects the outcome of tasks submitted to a Pool.
type Group struct {
	pool *Pool
	ctx  context.Context
	wg   sync.WaitGroup

	mu   sync.Mutex
	errs []error
}

// Go runs fn on the pool. A returned error or a panic is recorded under name
// and never affects the other tasks.
func (g *Group) Go(name string, fn func(ctx context.Context) error) {
	g.wg.Add(1)
	err := g.pool.ants.Submit(func() {
		defer g.wg.Done()
		g.record(name, run(g.ctx, fn))
	})
	if err != nil {
		g.wg.Done()
		g.record(name, fmt.Errorf("submit task: %w", err))
	}
}

// Wait blocks until every task finished and joins their errors.
func (g *Group) Wait() error {
	g.wg.Wait()
	g.mu.Lock()
	defer g.mu.Unlock()
	return errors.Join(g.errs...)
}

func (g *Group) record(name string, err error) {
	if err == nil {
		return
	}
	g.mu.Lock()
	g.errs = append(g.errs, &TaskError{Name: name, Err: err})
	g.mu.Unlock()
}

func run(ctx context.Context, fn func(context.Context) error) (err error) {
	var catcher panics.Catcher
	catcher.Try(func() {
		err = fn(ctx)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		return recovered.AsError()
	}
	return err
}

// TaskError names the task that failed.
type TaskError struct {
	Name string
	Err  error
}

func (e *TaskError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

func (e *TaskError) Unwrap() error {
	return e.Err
}
