// Command tchess is the representative driver for the position and
// move-generation core: interactive play with a menu-driven session,
// or batch verification against a perft-style file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/SkeleSkele/TChess/internal/cli"
	"github.com/SkeleSkele/TChess/internal/store"
)

var (
	dbDir = flag.String("db", "", "database directory for saved games and the perft cache (default: platform data dir)")
	depth = flag.Int("depth", 1, "search depth for perft-file mode")
)

func main() {
	flag.Parse()

	s, err := openStore()
	if err != nil {
		log.Printf("warning: persistence disabled: %v", err)
		s = nil
	} else {
		defer s.Close()
	}

	if flag.NArg() == 1 {
		runPerftFile(flag.Arg(0), s)
		return
	}

	sess := cli.NewSession(os.Stdin, os.Stdout, s)
	sess.Run()
}

func openStore() (*store.Store, error) {
	if *dbDir != "" {
		return store.Open(*dbDir)
	}
	return store.OpenDefault()
}

func runPerftFile(path string, s *store.Store) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("tchess: %v", err)
	}
	defer f.Close()

	if err := cli.RunPerftFile(f, *depth, os.Stdout, s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
