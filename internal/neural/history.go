package neural

type Position struct {
	board       ChessBoard
	rule50Ply   int
	repetitions int
	gamePly     int
}

func (p *Position) GetBoard() *ChessBoard {
	return &p.board
}

func (p *Position) IsBlackToMove() bool {
	return p.board.Flipped()
}

func (p *Position) GetNoCaptureNoPawnPly() int {
	return p.rule50Ply
}

func (p *Position) GetRepetitions() int {
	return p.repetitions
}

func (p *Position) GetGamePly() int {
	return p.gamePly
}

// PositionHistory is the append-only list of positions reached in a game.
type PositionHistory struct {
	positions []Position
}

func (h *PositionHistory) Reset(board ChessBoard, rule50Ply, gamePly int) {
	h.positions = h.positions[:0]
	h.positions = append(h.positions, Position{
		board:     board,
		rule50Ply: rule50Ply,
		gamePly:   gamePly,
	})
}

func (h *PositionHistory) Append(m Move) error {
	var last = h.Last()
	var next = Position{
		board:   last.board,
		gamePly: last.gamePly + 1,
	}
	reset, err := next.board.ApplyMove(m)
	if err != nil {
		return err
	}
	if !reset {
		next.rule50Ply = last.rule50Ply + 1
	}
	h.positions = append(h.positions, next)
	h.positions[len(h.positions)-1].repetitions = h.computeLastMoveRepetitions()
	return nil
}

func (h *PositionHistory) computeLastMoveRepetitions() int {
	var last = h.Last()
	if last.rule50Ply < 4 {
		return 0
	}
	for idx := len(h.positions) - 3; idx >= 0; idx -= 2 {
		var pos = &h.positions[idx]
		if pos.board.Equal(&last.board) {
			return 1 + pos.repetitions
		}
		if pos.rule50Ply < 2 {
			return 0
		}
	}
	return 0
}

func (h *PositionHistory) Last() *Position {
	return &h.positions[len(h.positions)-1]
}

func (h *PositionHistory) GetLength() int {
	return len(h.positions)
}

func (h *PositionHistory) GetPositionAt(idx int) *Position {
	return &h.positions[idx]
}
