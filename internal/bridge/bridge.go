// Package bridge translates moves from the source board (SAN-aware) into the
// network's move encoding.
package bridge

import (
	"github.com/notnil/chess"
	"golang.org/x/exp/slices"

	"github.com/ChizhovVadim/trainingdata/internal/neural"
)

var promotions = [...]neural.Promotion{
	chess.NoPieceType: neural.PromotionNone,
	chess.King:        neural.PromotionNone,
	chess.Queen:       neural.PromotionQueen,
	chess.Rook:        neural.PromotionRook,
	chess.Bishop:      neural.PromotionBishop,
	chess.Knight:      neural.PromotionKnight,
	chess.Pawn:        neural.PromotionNone,
}

// ToNeural converts a move legal in pos. Castling is recognised as a king
// moving two files and normalised to the g- or c-file. The result is mirrored
// when Black is to move.
func ToNeural(pos *chess.Position, m *chess.Move) neural.Move {
	var from = neural.NewSquare(int(m.S1().Rank()), int(m.S1().File()))
	var to = neural.NewSquare(int(m.S2().Rank()), int(m.S2().File()))
	var result = neural.NewMove(from, to)
	if p := m.Promo(); int(p) < len(promotions) {
		result.SetPromotion(promotions[p])
	}
	if isCastling(pos, m) {
		var file = 2
		if from.File() < to.File() {
			file = 6
		}
		result.SetTo(neural.NewSquare(to.Rank(), file))
		result.SetCastling()
	}
	if pos.Turn() == chess.Black {
		result.Mirror()
	}
	return result
}

func isCastling(pos *chess.Position, m *chess.Move) bool {
	if m.HasTag(chess.KingSideCastle) || m.HasTag(chess.QueenSideCastle) {
		return true
	}
	if pos.Board().Piece(m.S1()).Type() != chess.King {
		return false
	}
	var df = int(m.S1().File()) - int(m.S2().File())
	return df > 1 || df < -1
}

// Verify reports whether move occurs exactly once among legal.
func Verify(move neural.Move, legal neural.MoveList) bool {
	var i = slices.Index(legal, move)
	if i < 0 {
		return false
	}
	return slices.Index(legal[i+1:], move) < 0
}
