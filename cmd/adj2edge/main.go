// SPDX-License-Identifier: MIT

// Command adj2edge converts an adjacencylist graph file into an edgelist
// graph file, streaming line by line. Isolated vertices have no edgelist
// representation and are dropped.
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
adj2edge converts an adjacencylist graph file into an edgelist graph file.

Usage: adj2edge [options] <input.adjacencylist> <output.edgelist>

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
	log.Info().Str("adjacencylist", in).Str("edgelist", out).Msg("converting")

	start := time.Now()
	if err := graphio.AdjacencylistToEdgelist(in, out); err != nil {
		log.Fatal().Err(err).Msg("conversion failed")
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("done")
}
