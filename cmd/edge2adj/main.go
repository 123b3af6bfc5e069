// SPDX-License-Identifier: MIT

// Command edge2adj converts an edgelist graph file into an adjacencylist
// graph file. The conversion streams through temporary files beside the
// output, so graphs larger than memory are fine.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/merelind/lapwing/graphio"
)

const helpMessage = `
edge2adj converts an edgelist graph file into an adjacencylist graph file.

Usage: edge2adj [options] <input.edgelist> <output.adjacencylist>

  -v    (flag)    Debug level logging
`

func main() {
	verbose := flag.Bool("v", false, "debug level logging")
	flag.Usage = func() { fmt.Fprint(os.Stderr, helpMessage) }
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	in, out := flag.Arg(0), flag.Arg(1)
	log.Info().Str("edgelist", in).Str("adjacencylist", out).Msg("converting")

	start := time.Now()
	if err := graphio.EdgelistToAdjacencylist(in, out); err != nil {
		log.Fatal().Err(err).Msg("conversion failed")
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("done")
}
