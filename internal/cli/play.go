package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/SkeleSkele/TChess/internal/board"
	"github.com/SkeleSkele/TChess/internal/fen"
	"github.com/SkeleSkele/TChess/internal/store"
)

// Session drives an interactive game loop against stdin/stdout, backed
// by an optional Store for saving games.
type Session struct {
	pos    *board.Position
	moves  []board.Move
	store  *store.Store
	in     *bufio.Scanner
	out    io.Writer
	resign bool
}

// NewSession starts a session from the standard opening array.
func NewSession(in io.Reader, out io.Writer, s *store.Store) *Session {
	return &Session{
		pos:   board.StartingPosition(),
		store: s,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run executes the menu loop described by the CLI surface: single
// character, case-insensitive commands M (move), D (offer/accept
// draw), R (resign), H (help), E (exit).
func (s *Session) Run() {
	fmt.Fprintln(s.out, "tchess interactive session. Type H for help.")
	fmt.Fprint(s.out, RenderBoard(s.pos))

	for {
		if s.pos.IsCheckmate() {
			winner := s.pos.SideToMove.Other()
			fmt.Fprintf(s.out, "Checkmate. %s wins.\n", winner)
			return
		}
		if s.pos.IsStalemate() {
			fmt.Fprintln(s.out, "Stalemate. Draw.")
			return
		}

		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			return
		}
		cmd := strings.ToUpper(strings.TrimSpace(s.in.Text()))
		if cmd == "" {
			continue
		}

		switch cmd[0] {
		case 'M':
			s.handleMove()
		case 'D':
			fmt.Fprintln(s.out, "Draw agreed.")
			return
		case 'R':
			fmt.Fprintf(s.out, "%s resigns. %s wins.\n", s.pos.SideToMove, s.pos.SideToMove.Other())
			return
		case 'H':
			s.printHelp()
		case 'E':
			fmt.Fprintln(s.out, "Goodbye.")
			return
		default:
			fmt.Fprintf(s.out, "Unrecognized command %q. Type H for help.\n", cmd)
		}
	}
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, "Commands: M (make a move), D (draw), R (resign), H (help), E (exit)")
}

// handleMove reads a UCI-style move string, matches it against the
// legal move list, and applies it. The core never validates user
// intent beyond this lookup; unmatched input is reported and retried.
func (s *Session) handleMove() {
	fmt.Fprint(s.out, "move (e.g. e2e4, e7e8q): ")
	if !s.in.Scan() {
		return
	}
	text := strings.TrimSpace(s.in.Text())

	legal := s.pos.LegalMoves()
	var match *board.Move
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if strings.EqualFold(m.String(), text) {
			match = &m
			break
		}
	}
	if match == nil {
		fmt.Fprintf(s.out, "%q is not a legal move.\n", text)
		return
	}

	s.pos.MakeMove(match)
	s.moves = append(s.moves, *match)
	fmt.Fprint(s.out, RenderBoard(s.pos))
}

// SaveGame persists the session under name, recording the starting FEN
// and the UCI move history. It returns an error if the session has no
// store.
func (s *Session) SaveGame(name, startFEN string) error {
	if s.store == nil {
		return fmt.Errorf("cli: no store configured for this session")
	}
	uciMoves := make([]string, len(s.moves))
	for i, m := range s.moves {
		uciMoves[i] = m.String()
	}
	return s.store.SaveGame(name, store.SavedGame{
		StartFEN: startFEN,
		Moves:    uciMoves,
	})
}

// LoadSession reconstructs a session by replaying a saved game's move
// history from its starting position.
func LoadSession(g store.SavedGame, in io.Reader, out io.Writer, s *store.Store) (*Session, error) {
	pos, err := fen.Parse(g.StartFEN)
	if err != nil {
		return nil, fmt.Errorf("cli: replay saved game: %w", err)
	}
	sess := &Session{
		pos:   pos,
		store: s,
		in:    bufio.NewScanner(in),
		out:   out,
	}
	for _, uci := range g.Moves {
		m, err := board.ParseMove(uci, sess.pos)
		if err != nil {
			return nil, fmt.Errorf("cli: replay move %q: %w", uci, err)
		}
		if !sess.pos.IsLegal(m) {
			return nil, fmt.Errorf("cli: replay move %q is not legal", uci)
		}
		sess.pos.MakeMove(&m)
		sess.moves = append(sess.moves, m)
	}
	return sess, nil
}
