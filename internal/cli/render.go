// Package cli implements the interactive text driver and perft-file
// runner described as the representative CLI surface: a menu-driven
// play loop plus a batch mode for verifying move counts against a
// reference file.
package cli

import (
	"strings"

	"github.com/SkeleSkele/TChess/internal/board"
)

var pieceSymbols = [12]rune{
	'♔', '♕', '♖', '♗', '♘', '♙',
	'♚', '♛', '♜', '♝', '♞', '♟',
}

// RenderBoard formats a position as an 8x8 grid with file/rank labels,
// followed by a state summary: side to move, castling rights, the
// en-passant target when there is one, and a check notice when in check.
func RenderBoard(p *board.Position) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteString("  ")
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(board.NewSquare(file, rank))
			symbol := '.'
			if piece != board.NoPiece {
				symbol = pieceSymbols[piece]
			}
			sb.WriteRune(symbol)
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")

	sb.WriteString("Side to move: ")
	sb.WriteString(p.SideToMove.String())
	sb.WriteByte('\n')

	sb.WriteString("Castling: ")
	sb.WriteString(p.Flags.String())
	sb.WriteByte('\n')

	if ep, ok := p.EnPassantTarget(); ok {
		sb.WriteString("En passant: ")
		sb.WriteString(ep.String())
		sb.WriteByte('\n')
	}

	if p.InCheck(p.SideToMove) {
		sb.WriteString("Check!\n")
	}

	return sb.String()
}
