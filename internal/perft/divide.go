package perft

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/lgbarn/libchess-go/internal/chess"
	"github.com/lgbarn/libchess-go/internal/engine"
	"github.com/lgbarn/libchess-go/internal/errors"
	"github.com/lgbarn/libchess-go/internal/worker"
)

// MoveCount is the node count below one root move.
type MoveCount struct {
	Move  chess.Move
	Nodes uint64
}

// DivideResult holds per-move node counts, sorted by move text.
type DivideResult struct {
	Moves []MoveCount
	Nodes uint64
}

// options configures Divide.
type options struct {
	ctx        context.Context
	workers    int
	bufferSize int
	cache      Cache
	out        io.Writer
}

// Option configures Divide.
type Option func(*options)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithBufferSize sets the work channel buffer size.
func WithBufferSize(size int) Option {
	return func(o *options) {
		if size >= 1 {
			o.bufferSize = size
		}
	}
}

// WithCache memoises subtree counts. With more than one worker the cache
// must be safe for concurrent use, e.g. hashing.ThreadSafeNodeCache.
func WithCache(cache Cache) Option {
	return func(o *options) {
		o.cache = cache
	}
}

// WithContext lets the caller abandon a Divide. Root moves not yet expanded
// when ctx is done are skipped and Divide returns ctx.Err().
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOutput writes one "move: nodes" line per root move and a total line
// to w once the counts are complete.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// Divide counts the nodes below each legal root move. Root moves are
// expanded in parallel, each on its own copy of the board.
func Divide(board *chess.Board, depth int, opts ...Option) (*DivideResult, error) {
	if depth < 1 {
		return nil, fmt.Errorf("perft depth %d: %w", depth, errors.ErrInvalidArgument)
	}

	o := options{ctx: context.Background(), workers: 1, bufferSize: 16}
	for _, opt := range opts {
		opt(&o)
	}

	moves := engine.LegalMoves(board)
	ctx, cache := o.ctx, o.cache
	pool := worker.NewPoolWithOptions(func(item worker.WorkItem) worker.ProcessResult {
		if err := ctx.Err(); err != nil {
			return worker.ProcessResult{Move: item.Move, Index: item.Index, Error: err}
		}
		return worker.ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Nodes: count(item.Board, item.Depth, cache),
		}
	}, worker.WithWorkers(o.workers), worker.WithBufferSize(o.bufferSize))
	pool.Start()

	go func() {
		for i, move := range moves {
			if pool.IsStopped() {
				break
			}
			child := board.Copy()
			engine.MakeMove(child, move)
			pool.Submit(worker.WorkItem{Board: child, Move: move, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	result := &DivideResult{Moves: make([]MoveCount, len(moves))}
	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil {
			if firstErr == nil {
				firstErr = r.Error
				pool.Stop()
			}
			continue
		}
		result.Moves[r.Index] = MoveCount{Move: r.Move, Nodes: r.Nodes}
		result.Nodes += r.Nodes
	}
	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(result.Moves, func(i, j int) bool {
		return result.Moves[i].Move.String() < result.Moves[j].Move.String()
	})

	if o.out != nil {
		if err := result.Write(o.out); err != nil {
			return result, err
		}
	}
	return result, nil
}

// Write prints the result in divide format.
func (r *DivideResult) Write(w io.Writer) error {
	for _, mc := range r.Moves {
		if _, err := fmt.Fprintf(w, "%s: %d\n", mc.Move, mc.Nodes); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total: %d\n", r.Nodes)
	return err
}
