// gongo is a simple Go (Weiqi) engine, speaking GTP or a line-oriented
// console protocol for debugging.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/seekerror/gongo/pkg/engine"
	"github.com/seekerror/gongo/pkg/engine/console"
	"github.com/seekerror/gongo/pkg/engine/gtp"
	"github.com/seekerror/logw"
)

var (
	size  = flag.Int("size", 9, "Board side length")
	komi  = flag.Float64("komi", 7.5, "Komi")
	seed  = flag.Int64("seed", 0, "Zobrist hash table seed")
	depth = flag.Int("depth", gtp.DefaultSearchDepth, "genmove alpha-beta search depth")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: gongo [options]

GONGO is a simple GTP Go (Weiqi) engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "gongo", "seekerror",
		engine.WithBoardSize(*size),
		engine.WithKomi(*komi),
		engine.WithZobrist(*seed))

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case gtp.ProtocolName:
		driver, out := gtp.NewDriver(ctx, e, in, gtp.WithSearchDepth(*depth))
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	case console.ProtocolName:
		driver, out := console.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
