// Package gtp implements a driver for using an engine.Engine under the Go
// Text Protocol.
//
// See: https://www.lysator.liu.se/~gunnar/gtp/gtp2-spec-draft2/gtp2-spec.html
package gtp

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/seekerror/gongo/pkg/engine"
	"github.com/seekerror/gongo/pkg/player"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
	"go.uber.org/atomic"
)

// DefaultSearchDepth is the ply depth genmove searches to when the driver
// was not given an explicit one via NewDriver.
const DefaultSearchDepth = 2

const ProtocolName = "gtp"

// handler processes one GTP command's arguments and returns its response
// text, or an error for GTP's "?" failure response.
type handler func(ctx context.Context, d *Driver, args []string) (string, error)

var handlers map[string]handler

func init() {
	handlers = map[string]handler{
		"protocol_version": func(ctx context.Context, d *Driver, args []string) (string, error) {
			return "2", nil
		},
		"name": func(ctx context.Context, d *Driver, args []string) (string, error) {
			return d.e.Name(), nil
		},
		"version": func(ctx context.Context, d *Driver, args []string) (string, error) {
			return "", nil
		},
		"known_command": handleKnownCommand,
		"list_commands": handleListCommands,
		"boardsize":     handleBoardSize,
		"clear_board":   handleClearBoard,
		"komi":          handleKomi,
		"play":          handlePlay,
		"genmove":       handleGenMove,
		"undo":          handleUndo,
		"showboard":     handleShowBoard,
		"final_score":   handleFinalScore,
		"quit":          handleQuit,
	}
}

var wordRegexp = regexp.MustCompile(`\S+`)

// Driver implements a GTP driver for an engine.
type Driver struct {
	iox.AsyncCloser

	e *engine.Engine

	search player.AlphaBeta
	tt     *player.TranspositionTable

	active atomic.Bool // genmove search in flight

	out chan<- string
}

// IsSearching reports whether a genmove search is currently running.
func (d *Driver) IsSearching() bool {
	return d.active.Load()
}

// NewDriver creates a GTP driver wrapping e, reading commands from in.
// genmove is backed by pkg/player's alpha-beta search at DefaultSearchDepth;
// use WithSearchDepth to override it.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string, opts ...DriverOption) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		search:      player.AlphaBeta{Depth: DefaultSearchDepth},
		tt:          player.NewTranspositionTable(),
		out:         out,
	}
	for _, fn := range opts {
		fn(d)
	}
	d.search.TT = d.tt

	go d.process(ctx, in)

	return d, out
}

// DriverOption configures a Driver at construction time.
type DriverOption func(*Driver)

// WithSearchDepth overrides the ply depth genmove searches to.
func WithSearchDepth(depth int) DriverOption {
	return func(d *Driver) {
		d.search.Depth = depth
	}
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "GTP protocol initialized")

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			id, cmd, args := parseCommand(line)
			if cmd == "" {
				break
			}

			fn, known := handlers[cmd]
			if !known {
				d.reply(id, false, "unknown command")
				break
			}

			result, err := fn(ctx, d, args)
			if err != nil {
				d.reply(id, false, err.Error())
				break
			}
			d.reply(id, true, result)

			if cmd == "quit" {
				return
			}

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

// reply writes a GTP response line: "=[id] text\n\n" on success, or
// "?[id] text\n\n" on failure.
func (d *Driver) reply(id string, success bool, text string) {
	marker := "="
	if !success {
		marker = "?"
	}

	d.out <- fmt.Sprintf("%v%v %v", marker, id, text)
	d.out <- ""
}

// parseCommand splits a raw input line into an optional numeric id, the
// command name, and its arguments, per the GTP command grammar. Comments
// (starting with "#") and control characters are stripped first.
func parseCommand(line string) (id, cmd string, args []string) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.Map(func(r rune) rune {
		if (r < ' ' && r != '\t' && r != '\n') || r == 0x7f {
			return -1
		}
		return r
	}, line)
	fields := wordRegexp.FindAllString(line, -1)
	if len(fields) == 0 {
		return "", "", nil
	}

	if _, err := strconv.Atoi(fields[0]); err == nil {
		id = fields[0]
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return id, "", nil
	}
	return id, fields[0], fields[1:]
}

func handleKnownCommand(ctx context.Context, d *Driver, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("wrong number of arguments")
	}
	_, ok := handlers[args[0]]
	return strconv.FormatBool(ok), nil
}

func handleListCommands(ctx context.Context, d *Driver, args []string) (string, error) {
	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "\n"), nil
}

func handleBoardSize(ctx context.Context, d *Driver, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("wrong number of arguments")
	}
	size, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("unacceptable size")
	}
	if err := d.e.SetBoardSize(ctx, size); err != nil {
		return "", fmt.Errorf("unacceptable size")
	}
	return "", nil
}

func handleClearBoard(ctx context.Context, d *Driver, args []string) (string, error) {
	if err := d.e.Reset(ctx); err != nil {
		return "", err
	}
	return "", nil
}

func handleKomi(ctx context.Context, d *Driver, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("wrong number of arguments")
	}
	komi, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return "", fmt.Errorf("syntax error")
	}
	d.e.SetKomi(komi)
	return "", nil
}

func handlePlay(ctx context.Context, d *Driver, args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("wrong number of arguments")
	}
	// args[0] is the color (black/white), which this board tracks itself via
	// Turn() rather than accepting out of band; only the vertex matters.
	if err := d.e.Play(ctx, strings.ToUpper(args[1])); err != nil {
		return "", fmt.Errorf("illegal move")
	}
	return "", nil
}

func handleGenMove(ctx context.Context, d *Driver, args []string) (string, error) {
	b := d.e.Board()
	if b.IsGameOver() {
		return "PASS", nil
	}

	d.active.Store(true)
	_, pv := d.search.Search(ctx, b)
	d.active.Store(false)

	move := "PASS"
	if len(pv.Moves) > 0 {
		move = pv.Moves[0]
	}

	if err := d.e.Play(ctx, move); err != nil {
		return "", err
	}
	return move, nil
}

func handleUndo(ctx context.Context, d *Driver, args []string) (string, error) {
	if err := d.e.TakeBack(ctx); err != nil {
		return "", err
	}
	return "", nil
}

func handleShowBoard(ctx context.Context, d *Driver, args []string) (string, error) {
	return "\n" + d.e.Board().String(), nil
}

func handleFinalScore(ctx context.Context, d *Driver, args []string) (string, error) {
	return d.e.Board().Result(), nil
}

func handleQuit(ctx context.Context, d *Driver, args []string) (string, error) {
	return "", nil
}
