package neural

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

const StartposFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// BitBoards is the piece set of one side seen from a chosen point of view.
type BitBoards struct {
	Pawns, Knights, Bishops, Rooks, Queens, King uint64
}

func (bb BitBoards) mirror() BitBoards {
	return BitBoards{
		Pawns:   bits.ReverseBytes64(bb.Pawns),
		Knights: bits.ReverseBytes64(bb.Knights),
		Bishops: bits.ReverseBytes64(bb.Bishops),
		Rooks:   bits.ReverseBytes64(bb.Rooks),
		Queens:  bits.ReverseBytes64(bb.Queens),
		King:    bits.ReverseBytes64(bb.King),
	}
}

type Castlings struct {
	WeCanOOO, WeCanOO, TheyCanOOO, TheyCanOO bool
}

// ChessBoard presents a dragontoothmg board the way the network sees it:
// the side to move is always "ours", and Black's view is mirrored.
type ChessBoard struct {
	board dragontoothmg.Board
	// piece placement, side, castling and en passant fields of the FEN
	key       string
	castlings string
}

func NewChessBoard(fen string) (result ChessBoard, err error) {
	if len(strings.Fields(fen)) < 4 {
		return ChessBoard{}, fmt.Errorf("parse fen failed %v", fen)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse fen failed %v: %v", fen, r)
		}
	}()
	result.board = dragontoothmg.ParseFen(fen)
	if result.board.White.Kings == 0 || result.board.Black.Kings == 0 {
		return ChessBoard{}, fmt.Errorf("parse fen failed %v", fen)
	}
	result.update()
	return result, nil
}

func (b *ChessBoard) update() {
	var fields = strings.Fields(b.board.ToFen())
	b.key = strings.Join(fields[:4], " ")
	b.castlings = fields[2]
}

// Flipped reports whether the board is seen from Black's side.
func (b *ChessBoard) Flipped() bool {
	return !b.board.Wtomove
}

func (b *ChessBoard) Equal(other *ChessBoard) bool {
	return b.key == other.key
}

func (b *ChessBoard) Castlings() Castlings {
	var has = func(c byte) bool {
		return strings.IndexByte(b.castlings, c) >= 0
	}
	if b.board.Wtomove {
		return Castlings{
			WeCanOOO:   has('Q'),
			WeCanOO:    has('K'),
			TheyCanOOO: has('q'),
			TheyCanOO:  has('k'),
		}
	}
	return Castlings{
		WeCanOOO:   has('q'),
		WeCanOO:    has('k'),
		TheyCanOOO: has('Q'),
		TheyCanOO:  has('K'),
	}
}

// Perspective returns both sides' pieces as seen by Black (mirrored) or White.
func (b *ChessBoard) Perspective(black bool) (ours, theirs BitBoards) {
	ours = sideBoards(&b.board.White)
	theirs = sideBoards(&b.board.Black)
	if black {
		return theirs.mirror(), ours.mirror()
	}
	return ours, theirs
}

func sideBoards(bb *dragontoothmg.Bitboards) BitBoards {
	return BitBoards{
		Pawns:   bb.Pawns,
		Knights: bb.Knights,
		Bishops: bb.Bishops,
		Rooks:   bb.Rooks,
		Queens:  bb.Queens,
		King:    bb.Kings,
	}
}

func (b *ChessBoard) own() *dragontoothmg.Bitboards {
	if b.board.Wtomove {
		return &b.board.White
	}
	return &b.board.Black
}

func (b *ChessBoard) GenerateLegalMoves() MoveList {
	var moves = b.board.GenerateLegalMoves()
	var result = make(MoveList, 0, len(moves))
	for i := range moves {
		result = append(result, b.toNeural(moves[i]))
	}
	return result
}

func (b *ChessBoard) toNeural(dm dragontoothmg.Move) Move {
	var from = Square(dm.From())
	var to = Square(dm.To())
	var m = NewMove(from, to)
	m.promotion = promotionFromPiece(dm.Promote())
	if b.own().Kings&(uint64(1)<<uint(from)) != 0 && abs(from.File()-to.File()) == 2 {
		m.castling = true
	}
	if b.Flipped() {
		m.Mirror()
	}
	return m
}

func promotionFromPiece(p dragontoothmg.Piece) Promotion {
	switch p {
	case dragontoothmg.Queen:
		return PromotionQueen
	case dragontoothmg.Rook:
		return PromotionRook
	case dragontoothmg.Bishop:
		return PromotionBishop
	case dragontoothmg.Knight:
		return PromotionKnight
	}
	return PromotionNone
}

// ApplyMove plays a move given in the network's orientation. It reports
// whether the move resets the fifty-move counter.
func (b *ChessBoard) ApplyMove(m Move) (bool, error) {
	var target = m
	if b.Flipped() {
		target.Mirror()
	}
	var moves = b.board.GenerateLegalMoves()
	for i := range moves {
		var dm = moves[i]
		if Square(dm.From()) != target.from ||
			Square(dm.To()) != target.to ||
			promotionFromPiece(dm.Promote()) != target.promotion {
			continue
		}
		var reset = b.own().Pawns&(uint64(1)<<uint(target.from)) != 0 ||
			dragontoothmg.IsCapture(dm, &b.board)
		b.board.Apply(dm)
		b.update()
		return reset, nil
	}
	return false, fmt.Errorf("illegal move %v in %v", m, b.board.ToFen())
}

var startposBoard, _ = NewChessBoard(StartposFen)
