package bridge

import (
	"testing"

	"github.com/notnil/chess"

	"github.com/ChizhovVadim/trainingdata/internal/neural"
)

func decode(t *testing.T, fen, san string) (*chess.Position, *chess.Move) {
	t.Helper()
	opt, err := chess.FEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	var pos = chess.NewGame(opt).Position()
	m, err := chess.AlgebraicNotation{}.Decode(pos, san)
	if err != nil {
		t.Fatal(err)
	}
	return pos, m
}

func TestToNeural(t *testing.T) {
	var tests = []struct {
		fen      string
		san      string
		move     string
		castling bool
	}{
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "e4", "e2e4", false},
		{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1", "e5", "e2e4", false},
		{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1", "Nf6", "g1f3", false},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "O-O", "e1g1", true},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "O-O-O", "e1c1", true},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "O-O", "e1g1", true},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "O-O-O", "e1c1", true},
		{"4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a8=Q+", "a7a8q", false},
		{"4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a8=R", "a7a8r", false},
		{"4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a8=B", "a7a8b", false},
		{"4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a8=N", "a7a8n", false},
		{"4k3/8/8/8/8/8/p7/4K3 b - - 0 1", "a1=Q+", "a7a8q", false},
	}
	for _, test := range tests {
		var pos, m = decode(t, test.fen, test.san)
		var got = ToNeural(pos, m)
		if got.String() != test.move || got.Castling() != test.castling {
			t.Errorf("%v %v: got %v castling %v, want %v castling %v",
				test.fen, test.san, got, got.Castling(), test.move, test.castling)
		}
	}
}

func TestToNeuralMatchesNeuralBoard(t *testing.T) {
	var fens = []string{
		"r3k2r/pppq1ppp/2npbn2/2b1p3/2B1P3/2NPBN2/PPPQ1PPP/R3K2R w KQkq - 4 8",
		"r3k2r/pppq1ppp/2npbn2/2b1p3/2B1P3/2NPBN2/PPPQ1PPP/R3K2R b KQkq - 4 8",
		"1n2k3/P6P/8/8/8/8/p6p/1N2K3 w - - 0 1",
		"1n2k3/P6P/8/8/8/8/p6p/1N2K3 b - - 0 1",
	}
	for _, fen := range fens {
		opt, err := chess.FEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		var pos = chess.NewGame(opt).Position()
		board, err := neural.NewChessBoard(fen)
		if err != nil {
			t.Fatal(err)
		}
		var legal = board.GenerateLegalMoves()
		var valid = pos.ValidMoves()
		if len(valid) != len(legal) {
			t.Errorf("%v: %v source moves, %v neural moves", fen, len(valid), len(legal))
		}
		for _, m := range valid {
			var nm = ToNeural(pos, m)
			if !Verify(nm, legal) {
				t.Errorf("%v: move %v (%v) not found", fen, m, nm)
			}
		}
	}
}

func TestToNeuralMirrorTwice(t *testing.T) {
	var tests = []struct {
		fen       string
		san       string
		from, to  string
		promotion neural.Promotion
		castling  bool
	}{
		{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1", "e5", "e7", "e5", neural.PromotionNone, false},
		{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1", "Nf6", "g8", "f6", neural.PromotionNone, false},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "O-O", "e8", "g8", neural.PromotionNone, true},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "O-O-O", "e8", "c8", neural.PromotionNone, true},
		{"4k3/8/8/8/8/8/p7/4K3 b - - 0 1", "a1=Q+", "a2", "a1", neural.PromotionQueen, false},
		{"4k3/8/8/8/8/8/p7/4K3 b - - 0 1", "a1=N", "a2", "a1", neural.PromotionKnight, false},
		{"4k3/8/8/8/8/8/1p6/R3K3 b - - 0 1", "bxa1=R+", "b2", "a1", neural.PromotionRook, false},
	}
	for _, test := range tests {
		var pos, m = decode(t, test.fen, test.san)
		var nm = ToNeural(pos, m)
		var mirrored = nm
		mirrored.Mirror()
		if mirrored.From().String() != test.from || mirrored.To().String() != test.to {
			t.Errorf("%v %v: mirrored back %v, want %v%v", test.fen, test.san, mirrored, test.from, test.to)
		}
		if mirrored.From() != neural.NewSquare(int(m.S1().Rank()), int(m.S1().File())) {
			t.Errorf("%v %v: from %v, source %v", test.fen, test.san, mirrored.From(), m.S1())
		}
		if mirrored.Promotion() != test.promotion || nm.Promotion() != test.promotion {
			t.Errorf("%v %v: promotion %v", test.fen, test.san, mirrored.Promotion())
		}
		if mirrored.Castling() != test.castling || nm.Castling() != test.castling {
			t.Errorf("%v %v: castling %v", test.fen, test.san, mirrored.Castling())
		}
		mirrored.Mirror()
		if mirrored != nm {
			t.Errorf("%v %v: %v after two mirrors, want %v", test.fen, test.san, mirrored, nm)
		}
	}
}

func TestVerify(t *testing.T) {
	var e2e4 = neural.NewMove(neural.NewSquare(1, 4), neural.NewSquare(3, 4))
	var castle = neural.NewMove(neural.NewSquare(0, 4), neural.NewSquare(0, 6))
	var plain = castle
	castle.SetCastling()
	var tests = []struct {
		move  neural.Move
		legal neural.MoveList
		want  bool
	}{
		{e2e4, neural.MoveList{e2e4}, true},
		{e2e4, nil, false},
		{e2e4, neural.MoveList{e2e4, e2e4}, false},
		{castle, neural.MoveList{e2e4, castle}, true},
		{plain, neural.MoveList{e2e4, castle}, false},
	}
	for i, test := range tests {
		if got := Verify(test.move, test.legal); got != test.want {
			t.Errorf("case %v: Verify = %v, want %v", i, got, test.want)
		}
	}
}
