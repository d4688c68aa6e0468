package board

import "log"

// deBruijn64 is the forward De Bruijn sequence multiplier used to turn an
// isolated low bit into a perfect-hash index into lsbLookup.
const deBruijn64 uint64 = 0x03f79d71b4cb0a89

// lsbLookup[((bb&-bb)*deBruijn64)>>58] is the index of the least
// significant set bit of bb, for any non-zero 64-bit bb.
var lsbLookup = [64]Square{
	0, 1, 48, 2, 57, 49, 28, 3,
	61, 58, 50, 42, 38, 29, 17, 4,
	62, 55, 59, 36, 53, 51, 43, 22,
	45, 39, 33, 30, 24, 18, 12, 5,
	63, 47, 56, 27, 60, 41, 37, 16,
	54, 35, 52, 21, 44, 32, 23, 11,
	46, 26, 40, 15, 34, 20, 31, 10,
	25, 14, 19, 9, 13, 8, 7, 6,
}

// LSBIndex returns the index of the least significant set bit of bb.
// bb must be non-zero; callers are expected to guard with a non-zero
// test. A zero input is a contract violation: it is logged and
// NoSquare is returned rather than panicking.
func LSBIndex(bb Bitboard) Square {
	if bb == 0 {
		log.Printf("board: LSBIndex called on an empty bitboard")
		return NoSquare
	}
	isolated := uint64(bb) & (-uint64(bb))
	return lsbLookup[(isolated*deBruijn64)>>58]
}
