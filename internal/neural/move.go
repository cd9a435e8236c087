package neural

import "strings"

// Square is a board square in rank*8+file addressing, a1 = 0.
type Square int

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func NewSquare(rank, file int) Square {
	return Square(rank*8 + file)
}

func (sq Square) Rank() int {
	return int(sq) >> 3
}

func (sq Square) File() int {
	return int(sq) & 7
}

// Mirror flips the square vertically (a1 <-> a8).
func (sq Square) Mirror() Square {
	return sq ^ 56
}

func (sq Square) String() string {
	return string(fileNames[sq.File()]) + string(rankNames[sq.Rank()])
}

func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return 0, false
	}
	var file = strings.IndexByte(fileNames, s[0])
	var rank = strings.IndexByte(rankNames, s[1])
	if file < 0 || rank < 0 {
		return 0, false
	}
	return NewSquare(rank, file), true
}

type Promotion int

const (
	PromotionNone Promotion = iota
	PromotionQueen
	PromotionRook
	PromotionBishop
	PromotionKnight
)

func (p Promotion) String() string {
	switch p {
	case PromotionQueen:
		return "q"
	case PromotionRook:
		return "r"
	case PromotionBishop:
		return "b"
	case PromotionKnight:
		return "n"
	}
	return ""
}

// Move is a move as seen by the network: squares are relative to the side
// to move, so Black's moves are stored mirrored.
type Move struct {
	from      Square
	to        Square
	promotion Promotion
	castling  bool
}

type MoveList []Move

func NewMove(from, to Square) Move {
	return Move{from: from, to: to}
}

func (m Move) From() Square {
	return m.from
}

func (m Move) To() Square {
	return m.to
}

func (m Move) Promotion() Promotion {
	return m.promotion
}

func (m Move) Castling() bool {
	return m.castling
}

func (m *Move) SetTo(to Square) {
	m.to = to
}

func (m *Move) SetPromotion(p Promotion) {
	m.promotion = p
}

func (m *Move) SetCastling() {
	m.castling = true
}

func (m *Move) Mirror() {
	m.from = m.from.Mirror()
	m.to = m.to.Mirror()
}

func (m Move) String() string {
	return m.from.String() + m.to.String() + m.promotion.String()
}

// ParseMove reads a move in coordinate notation (e2e4, a7a8q).
// Castling is not inferred.
func ParseMove(s string) (Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, false
	}
	from, ok := ParseSquare(s[0:2])
	if !ok {
		return Move{}, false
	}
	to, ok := ParseSquare(s[2:4])
	if !ok {
		return Move{}, false
	}
	var m = NewMove(from, to)
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			m.promotion = PromotionQueen
		case 'r':
			m.promotion = PromotionRook
		case 'b':
			m.promotion = PromotionBishop
		case 'n':
			m.promotion = PromotionKnight
		default:
			return Move{}, false
		}
	}
	return m, true
}
