package trainingdata

import (
	"github.com/ChizhovVadim/trainingdata/internal/neural"
)

type GameResult int

const (
	Draw GameResult = iota
	WhiteWon
	BlackWon
)

// ParseGameResult maps a PGN result string. Anything other than a decisive
// result, unfinished games included, counts as a draw.
func ParseGameResult(s string) GameResult {
	switch s {
	case "1-0":
		return WhiteWon
	case "0-1":
		return BlackWon
	}
	return Draw
}

func (r GameResult) String() string {
	switch r {
	case WhiteWon:
		return "1-0"
	case BlackWon:
		return "0-1"
	}
	return "1/2-1/2"
}

const (
	historyDepth = 8
	fillPolicy   = neural.FillEmptyHistoryFenOnly
)

// Synthesize builds the record for the last position of history, where
// played is the move made from it and legal are all legal moves there.
func Synthesize(
	result GameResult,
	history *neural.PositionHistory,
	played neural.Move,
	legal neural.MoveList,
	q float64,
) V4TrainingData {
	var rec = V4TrainingData{Version: Version}

	for i := range rec.Probabilities {
		rec.Probabilities[i] = ProbabilityIllegal
	}
	for _, m := range legal {
		rec.Probabilities[m.NNIndex()] = ProbabilityLegal
	}
	rec.Probabilities[played.NNIndex()] = ProbabilityPlayed

	var planes = neural.EncodePositionForNN(history, historyDepth, fillPolicy)
	for i := range rec.Planes {
		rec.Planes[i] = reverseBitsInBytes(planes[i].Mask)
	}

	var position = history.Last()
	var black = position.IsBlackToMove()
	var castlings = position.GetBoard().Castlings()
	rec.CastlingUsOOO = boolToUint8(castlings.WeCanOOO)
	rec.CastlingUsOO = boolToUint8(castlings.WeCanOO)
	rec.CastlingThemOOO = boolToUint8(castlings.TheyCanOOO)
	rec.CastlingThemOO = boolToUint8(castlings.TheyCanOO)
	rec.SideToMove = boolToUint8(black)
	rec.Rule50Count = uint8(min(position.GetNoCaptureNoPawnPly(), 255))

	switch result {
	case WhiteWon:
		rec.Result = 1
	case BlackWon:
		rec.Result = -1
	}
	if black {
		rec.Result = -rec.Result
	}
	if result == Draw {
		rec.RootD = 1
		rec.BestD = 1
	}

	var storedQ = float32(q)
	if black {
		storedQ = -storedQ
	}
	rec.RootQ = storedQ
	rec.BestQ = storedQ
	return rec
}

// reverseBitsInBytes mirrors every byte of x horizontally (file a <-> h).
func reverseBitsInBytes(x uint64) uint64 {
	x = (x>>1)&0x5555555555555555 | (x&0x5555555555555555)<<1
	x = (x>>2)&0x3333333333333333 | (x&0x3333333333333333)<<2
	x = (x>>4)&0x0F0F0F0F0F0F0F0F | (x&0x0F0F0F0F0F0F0F0F)<<4
	return x
}

func boolToUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
