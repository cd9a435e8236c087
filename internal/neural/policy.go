package neural

// PolicySize is the number of addressable moves in the policy head.
const PolicySize = 1858

var (
	policyIndex    [64][64]int
	promotionIndex [64][64][3]int
	policyMoves    [PolicySize]string
)

// NNIndex returns the policy index of the move. Regular moves are numbered
// by from-square then to-square over every queen-line and knight destination.
// Queen, rook and bishop promotions follow at the end. A knight promotion
// shares the index of the plain pawn move.
func (m Move) NNIndex() int {
	switch m.promotion {
	case PromotionQueen:
		return promotionIndex[m.from][m.to][0]
	case PromotionRook:
		return promotionIndex[m.from][m.to][1]
	case PromotionBishop:
		return promotionIndex[m.from][m.to][2]
	}
	return policyIndex[m.from][m.to]
}

// PolicyMove returns the move with the given policy index in coordinate notation.
func PolicyMove(index int) string {
	return policyMoves[index]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func isQueenLine(from, to Square) bool {
	var df = abs(from.File() - to.File())
	var dr = abs(from.Rank() - to.Rank())
	if from == to {
		return false
	}
	return df == 0 || dr == 0 || df == dr
}

func isKnightJump(from, to Square) bool {
	var df = abs(from.File() - to.File())
	var dr = abs(from.Rank() - to.Rank())
	return df == 1 && dr == 2 || df == 2 && dr == 1
}

func init() {
	var n = 0
	for from := Square(0); from < 64; from++ {
		for to := Square(0); to < 64; to++ {
			policyIndex[from][to] = -1
			if isQueenLine(from, to) || isKnightJump(from, to) {
				policyIndex[from][to] = n
				policyMoves[n] = from.String() + to.String()
				n++
			}
		}
	}
	var promotions = [3]Promotion{PromotionQueen, PromotionRook, PromotionBishop}
	for from := NewSquare(6, 0); from <= NewSquare(6, 7); from++ {
		for to := NewSquare(7, 0); to <= NewSquare(7, 7); to++ {
			if abs(from.File()-to.File()) > 1 {
				continue
			}
			for i, p := range promotions {
				promotionIndex[from][to][i] = n
				policyMoves[n] = from.String() + to.String() + p.String()
				n++
			}
		}
	}
	if n != PolicySize {
		panic("neural: bad policy size")
	}
}
