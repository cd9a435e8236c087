package neural

const (
	MoveHistory    = 8
	PlanesPerBoard = 13
	AuxPlaneBase   = PlanesPerBoard * MoveHistory
	InputPlaneSize = AuxPlaneBase + 8
)

type FillEmptyHistory int

const (
	FillEmptyHistoryNo FillEmptyHistory = iota
	FillEmptyHistoryFenOnly
	FillEmptyHistoryAlways
)

type InputPlane struct {
	Mask  uint64
	Value float32
}

func (p *InputPlane) SetAll() {
	p.Mask = ^uint64(0)
}

func (p *InputPlane) Fill(value float32) {
	p.SetAll()
	p.Value = value
}

type InputPlanes []InputPlane

// EncodePositionForNN encodes the last position of the history together with
// up to historyPlanes earlier positions, all from the current mover's view.
func EncodePositionForNN(history *PositionHistory, historyPlanes int, fill FillEmptyHistory) InputPlanes {
	var result = make(InputPlanes, InputPlaneSize)
	for i := range result {
		result[i].Value = 1
	}

	{
		var last = history.Last()
		var castlings = last.GetBoard().Castlings()
		if castlings.WeCanOOO {
			result[AuxPlaneBase+0].SetAll()
		}
		if castlings.WeCanOO {
			result[AuxPlaneBase+1].SetAll()
		}
		if castlings.TheyCanOOO {
			result[AuxPlaneBase+2].SetAll()
		}
		if castlings.TheyCanOO {
			result[AuxPlaneBase+3].SetAll()
		}
		if last.IsBlackToMove() {
			result[AuxPlaneBase+4].SetAll()
		}
		result[AuxPlaneBase+5].Fill(float32(last.GetNoCaptureNoPawnPly()))
		// AuxPlaneBase+6 is the unused move count plane.
		result[AuxPlaneBase+7].SetAll()
	}

	var flip = false
	var historyIdx = history.GetLength() - 1
	for i := 0; i < min(historyPlanes, MoveHistory); i++ {
		var position = history.GetPositionAt(max(historyIdx, 0))
		if historyIdx < 0 && fill == FillEmptyHistoryNo {
			break
		}
		if historyIdx < 0 && fill == FillEmptyHistoryFenOnly &&
			position.GetBoard().Equal(&startposBoard) {
			break
		}
		var black = position.IsBlackToMove()
		if flip {
			black = !black
		}
		var ours, theirs = position.GetBoard().Perspective(black)
		var base = i * PlanesPerBoard
		result[base+0].Mask = ours.Pawns
		result[base+1].Mask = ours.Knights
		result[base+2].Mask = ours.Bishops
		result[base+3].Mask = ours.Rooks
		result[base+4].Mask = ours.Queens
		result[base+5].Mask = ours.King
		result[base+6].Mask = theirs.Pawns
		result[base+7].Mask = theirs.Knights
		result[base+8].Mask = theirs.Bishops
		result[base+9].Mask = theirs.Rooks
		result[base+10].Mask = theirs.Queens
		result[base+11].Mask = theirs.King
		if position.GetRepetitions() >= 1 {
			result[base+12].SetAll()
		}
		flip = !flip
		historyIdx--
	}
	return result
}
