// Package engine wraps a board.Board with the bookkeeping a driver (GTP,
// console, ...) needs: versioned identity, mutex-guarded access, and
// komi/board-size configuration. It owns no search or evaluation logic --
// that is a driver/player concern.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/seekerror/build"
	"github.com/seekerror/gongo/pkg/board"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

const defaultSize = 9

// Engine encapsulates one running game: the board plus the metadata a
// protocol driver needs to answer "name"/"version"/"komi" style queries.
type Engine struct {
	name, author string

	size int
	komi float64
	seed int64

	b  *board.Board
	mu sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithBoardSize sets the initial board side length. Defaults to 9.
func WithBoardSize(size int) Option {
	return func(e *Engine) {
		e.size = size
	}
}

// WithKomi sets the initial komi. Has no effect on legality -- see
// board.Board.Result, which is a placeholder stone-count result.
func WithKomi(komi float64) Option {
	return func(e *Engine) {
		e.komi = komi
	}
}

// WithZobrist configures the engine to use the given random seed instead of
// the default seed of zero.
func WithZobrist(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// New creates an engine under the given name and author, ready to play.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		size:   defaultSize,
	}
	for _, fn := range opts {
		fn(e)
	}

	_ = e.Reset(ctx)

	logw.Infof(ctx, "Initialized engine: %v, size=%v, komi=%v", e.Name(), e.size, e.komi)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// BoardSize returns the current board side length.
func (e *Engine) BoardSize() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.size
}

// Komi returns the current komi.
func (e *Engine) Komi() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.komi
}

// SetBoardSize changes the board side length and resets the game.
func (e *Engine) SetBoardSize(ctx context.Context, size int) error {
	e.mu.Lock()
	e.size = size
	e.mu.Unlock()

	return e.Reset(ctx)
}

// SetKomi changes the komi. Does not reset the game.
func (e *Engine) SetKomi(komi float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.komi = komi
}

// Board returns a defensive copy of the current board. Safe to retain and
// inspect across later Reset/Play/TakeBack calls on the engine.
func (e *Engine) Board() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.Clone()
}

// Reset starts a fresh, empty game at the current board size.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, err := board.NewBoard(e.size, e.seed)
	if err != nil {
		return err
	}
	e.b = b

	logw.Infof(ctx, "New board: %v", e.b)
	return nil
}

// Play applies a move (point or PASS) for the side to move.
func (e *Engine) Play(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Play %v", move)

	if err := e.b.Push(move); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	logw.Infof(ctx, "Play %v: %v", move, e.b)
	return nil
}

// TakeBack undoes the latest move.
func (e *Engine) TakeBack(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.b.History()) == 0 {
		return fmt.Errorf("no move to take back")
	}

	e.b.Pop()
	logw.Infof(ctx, "Takeback: %v", e.b)
	return nil
}
