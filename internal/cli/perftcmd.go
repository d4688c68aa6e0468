package cli

import (
	"fmt"
	"io"

	"github.com/SkeleSkele/TChess/internal/perft"
	"github.com/SkeleSkele/TChess/internal/store"
)

// RunPerftFile runs every case in a perft-style file at the given
// depth, printing a pass/fail line per case and a summary. If s is
// non-nil, each computed count is written to it, keyed by FEN and
// depth; cached counts are not read back.
func RunPerftFile(r io.Reader, depth int, out io.Writer, s *store.Store) error {
	results, err := perft.RunFile(r, depth)
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if s != nil {
			if err := s.CachePerft(res.FEN, depth, res.Got); err != nil {
				fmt.Fprintf(out, "warning: cache write failed for %q: %v\n", res.FEN, err)
			}
		}
		status := "PASS"
		if !res.Passed() {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(out, "%s  depth=%d got=%d want=%d  %s\n", status, depth, res.Got, res.Expected, res.FEN)
	}

	fmt.Fprintf(out, "%d/%d passed\n", len(results)-failed, len(results))
	if failed > 0 {
		return fmt.Errorf("perft: %d of %d cases failed", failed, len(results))
	}
	return nil
}
