package gtp_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/seekerror/gongo/pkg/engine"
	"github.com/seekerror/gongo/pkg/engine/gtp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run feeds cmds (one command per line, "quit" appended) into a fresh driver
// and collects every non-empty response line until the driver closes. The
// reply to the appended "quit" is checked and dropped, so the result holds
// one reply per command in cmds.
func run(t *testing.T, opts []gtp.DriverOption, cmds ...string) []string {
	t.Helper()

	ctx := context.Background()
	e := engine.New(ctx, "gongo", "test", engine.WithBoardSize(5))

	in := make(chan string, len(cmds)+1)
	for _, c := range cmds {
		in <- c
	}
	in <- "quit"
	close(in)

	d, out := gtp.NewDriver(ctx, e, in, opts...)

	var lines []string
	select {
	case <-d.Closed():
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not close in time")
	}

drain:
	for {
		select {
		case line, ok := <-out:
			if !ok {
				break drain
			}
			if line != "" {
				lines = append(lines, line)
			}
		default:
			break drain
		}
	}

	require.NotEmpty(t, lines)
	require.Equal(t, "= ", lines[len(lines)-1], "reply to quit")
	return lines[:len(lines)-1]
}

func TestDriver_ProtocolVersion(t *testing.T) {
	lines := run(t, nil, "protocol_version")
	require.NotEmpty(t, lines)
	assert.Equal(t, "= 2", lines[0])
}

func TestDriver_UnknownCommand(t *testing.T) {
	lines := run(t, nil, "bogus")
	require.NotEmpty(t, lines)
	assert.Equal(t, "? unknown command", lines[0])
}

func TestDriver_KnownCommand(t *testing.T) {
	lines := run(t, nil, "known_command genmove", "known_command bogus")
	require.Len(t, lines, 2)
	assert.Equal(t, "= true", lines[0])
	assert.Equal(t, "= false", lines[1])
}

func TestDriver_PlayAndShowBoard(t *testing.T) {
	lines := run(t, nil, "play black C3", "showboard")
	require.Len(t, lines, 2)
	assert.Equal(t, "= ", lines[0])
	assert.True(t, strings.Contains(lines[1], "X"))
}

func TestDriver_GenMove_PassesOnGameOver(t *testing.T) {
	lines := run(t, nil, "play black pass", "play white pass", "genmove black")
	require.Len(t, lines, 3)
	assert.Equal(t, "= PASS", lines[2])
}

func TestDriver_GenMove_PlaysLegalMove(t *testing.T) {
	lines := run(t, []gtp.DriverOption{gtp.WithSearchDepth(1)}, "genmove black")
	require.Len(t, lines, 1)
	assert.NotEqual(t, "= PASS", lines[0])
}
