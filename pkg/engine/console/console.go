// Package console implements a line-oriented debug driver for an
// engine.Engine: not a real protocol, just enough to poke a board from a
// terminal while developing.
package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/seekerror/gongo/pkg/board"
	"github.com/seekerror/gongo/pkg/engine"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

const ProtocolName = "console"

// Driver implements a console driver for debugging.
type Driver struct {
	iox.AsyncCloser

	e *engine.Engine

	out chan<- string
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		out:         out,
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())
	d.printBoard(ctx)

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Fields(strings.TrimSpace(line))
			if len(parts) == 0 {
				break
			}

			cmd := parts[0]
			args := parts[1:]

			switch strings.ToLower(cmd) {
			case "reset", "r":
				if err := d.e.Reset(ctx); err != nil {
					logw.Errorf(ctx, "Reset failed: %v", err)
					break
				}
				d.printBoard(ctx)

			case "size":
				if len(args) == 0 {
					d.out <- fmt.Sprintf("size: %v", d.e.BoardSize())
					break
				}
				var size int
				if _, err := fmt.Sscanf(args[0], "%d", &size); err != nil {
					d.out <- fmt.Sprintf("invalid size: %v", args[0])
					break
				}
				if err := d.e.SetBoardSize(ctx, size); err != nil {
					d.out <- fmt.Sprintf("invalid size: %v", err)
					break
				}
				d.printBoard(ctx)

			case "komi":
				if len(args) == 0 {
					d.out <- fmt.Sprintf("komi: %v", d.e.Komi())
					break
				}
				var komi float64
				if _, err := fmt.Sscanf(args[0], "%g", &komi); err != nil {
					d.out <- fmt.Sprintf("invalid komi: %v", args[0])
					break
				}
				d.e.SetKomi(komi)

			case "undo", "u":
				if err := d.e.TakeBack(ctx); err != nil {
					d.out <- fmt.Sprintf("undo failed: %v", err)
					break
				}
				d.printBoard(ctx)

			case "print", "p":
				d.printBoard(ctx)

			case "legal":
				d.out <- strings.Join(d.e.Board().LegalMoves(), " ")

			case "quit", "exit", "q":
				return

			case "":
				// ignore empty command

			default:
				// Assume move if not a recognized command.

				if err := d.e.Play(ctx, strings.ToUpper(cmd)); err != nil {
					d.out <- fmt.Sprintf("invalid move: '%v': %v", cmd, err)
				} else {
					d.printBoard(ctx)
				}
			}

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

func (d *Driver) printBoard(ctx context.Context) {
	b := d.e.Board()

	d.out <- ""
	d.out <- b.String()
	d.out <- fmt.Sprintf("result: %v, onboard{b=%v w=%v}", b.Result(), b.OnBoard(board.Black), b.OnBoard(board.White))
	d.out <- ""

	logw.Debugf(ctx, "Board printed")
}
