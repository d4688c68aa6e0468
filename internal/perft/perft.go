// Package perft counts leaf nodes of the legal-move search tree at a
// fixed depth, the standard way to check a move generator for
// correctness against known reference values.
package perft

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SkeleSkele/TChess/internal/board"
	"github.com/SkeleSkele/TChess/internal/fen"
)

// Count returns the number of leaf nodes reachable from p in exactly
// depth plies, playing only legal moves. Count(p, 0) is 1 by
// definition: the empty line is itself one leaf.
func Count(p *board.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return int64(moves.Len())
	}
	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		p.MakeMove(&m)
		nodes += Count(p, depth-1)
		p.UnmakeMove(&m)
	}
	return nodes
}

// Result is one line of a perft file: a position and the leaf count
// it's expected to produce at the file's fixed depth.
type Result struct {
	FEN      string
	Expected int64
	Got      int64
}

// Passed reports whether the computed count matched the expected one.
func (r Result) Passed() bool { return r.Got == r.Expected }

// RunFile reads perft test cases from r, one per line, in the form
// "<FEN>,<expected-count>", and returns the computed count for each
// against the given depth. Blank lines and lines starting with '#' are
// skipped.
func RunFile(r io.Reader, depth int) ([]Result, error) {
	var results []Result
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		idx := strings.LastIndex(line, ",")
		if idx < 0 {
			return nil, fmt.Errorf("perft: line %d: missing comma separator: %q", lineNo, line)
		}
		fenStr := strings.TrimSpace(line[:idx])
		countStr := strings.TrimSpace(line[idx+1:])
		expected, err := strconv.ParseInt(countStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("perft: line %d: invalid count %q: %w", lineNo, countStr, err)
		}
		pos, err := fen.Parse(fenStr)
		if err != nil {
			return nil, fmt.Errorf("perft: line %d: %w", lineNo, err)
		}
		got := Count(pos, depth)
		results = append(results, Result{FEN: fenStr, Expected: expected, Got: got})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
