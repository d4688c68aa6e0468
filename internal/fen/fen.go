// Package fen parses and formats Forsyth-Edwards Notation, the
// standard text serialization for a chess position.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SkeleSkele/TChess/internal/board"
)

// Start is the FEN for the standard game opening array.
const Start = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse reads a FEN string's six space-separated fields: piece
// placement, side to move, castling rights, en-passant target square,
// halfmove clock, and fullmove number. The fullmove number is accepted
// but not retained — Position tracks no field for it.
func Parse(s string) (*board.Position, error) {
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen: need at least 4 fields, got %d: %q", len(fields), s)
	}

	pos := board.EmptyPosition()
	if err := parsePlacement(pos, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		pos.SideToMove = board.White
	case "b":
		pos.SideToMove = board.Black
	default:
		return nil, fmt.Errorf("fen: invalid side to move %q", fields[1])
	}

	if err := parseCastling(pos, fields[2]); err != nil {
		return nil, err
	}

	if fields[3] == "-" {
		pos.SetEPFile(-1)
	} else {
		sq, err := board.ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid en-passant square %q: %w", fields[3], err)
		}
		pos.SetEPFile(sq.File())
	}

	if len(fields) > 4 {
		clock, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid halfmove clock %q: %w", fields[4], err)
		}
		pos.HalfmoveClock = uint16(clock)
	}

	return pos, nil
}

func parsePlacement(pos *board.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen: need 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("fen: too many squares in rank %d", rank+1)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := board.PieceFromChar(byte(c))
			if piece == board.NoPiece {
				return fmt.Errorf("fen: invalid piece character %q", c)
			}
			pos.Place(piece, board.NewSquare(file, rank))
			file++
		}
		if file != 8 {
			return fmt.Errorf("fen: rank %d covers %d squares, want 8", rank+1, file)
		}
	}
	return nil
}

func parseCastling(pos *board.Position, castling string) error {
	if castling == "-" {
		return nil
	}
	for _, c := range castling {
		switch c {
		case 'K':
			pos.Flags |= board.FlagWhiteShortCastle
		case 'Q':
			pos.Flags |= board.FlagWhiteLongCastle
		case 'k':
			pos.Flags |= board.FlagBlackShortCastle
		case 'q':
			pos.Flags |= board.FlagBlackLongCastle
		default:
			return fmt.Errorf("fen: invalid castling character %q", c)
		}
	}
	return nil
}

// Format renders a Position back to its FEN string. The fullmove number
// is always written as 1, since Position does not track it.
func Format(pos *board.Position) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			piece := pos.PieceAt(sq)
			if piece == board.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if pos.SideToMove == board.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(pos.Flags.String())

	sb.WriteByte(' ')
	if ep, ok := pos.EnPassantTarget(); ok {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(pos.HalfmoveClock)))
	sb.WriteString(" 1")

	return sb.String()
}
