package convert

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"

	"github.com/ChizhovVadim/trainingdata/internal/bridge"
	"github.com/ChizhovVadim/trainingdata/internal/neural"
	"github.com/ChizhovVadim/trainingdata/internal/pgn"
	"github.com/ChizhovVadim/trainingdata/internal/score"
	"github.com/ChizhovVadim/trainingdata/internal/trainingdata"
)

// ConvertGame replays a game on the source board and the network board in
// lockstep and writes one record per accepted ply. It reports whether any
// record was written. A returned error describes why the game stopped early;
// records written before that point are kept.
func (c *Converter) ConvertGame(game pgn.Game, gameID int) (written bool, err error) {
	var fen = normalizeFen(game.Fen)
	var logger = c.logger.With().Int("game", gameID).Logger()
	logger.Debug().Str("fen", fen).Str("result", game.Result).Msg("started new game")

	opt, err := chess.FEN(fen)
	if err != nil {
		return false, fmt.Errorf("%w %q: %v", ErrBadPosition, fen, err)
	}
	var pos = chess.NewGame(opt).Position()
	board, err := neural.NewChessBoard(fen)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBadPosition, err)
	}
	var history neural.PositionHistory
	history.Reset(board, 0, 0)

	var result = trainingdata.ParseGameResult(game.Result)
	var shard = c.shard(gameID)

	var writer ChunkWriter
	defer func() {
		if writer == nil {
			return
		}
		written = true
		if ferr := writer.Finalize(); ferr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrOutput, ferr)
		}
	}()

	for ply, token := range game.Moves {
		move, derr := chess.AlgebraicNotation{}.Decode(pos, token.Value)
		if derr != nil {
			return false, fmt.Errorf("%w %q at ply %d: %v", ErrIllegalMove, token.Value, ply, derr)
		}

		logger.Debug().Str("san", token.Value).Msg("read move")
		if token.Comment != "" {
			logger.Debug().Str("san", token.Value).Str("comment", token.Comment).Msg("pgn comment")
		}

		var bad = isBadMove(token.Nag)

		var q float64
		if token.Comment != "" {
			var s float64
			if pos.Update(move).Status() == chess.Checkmate {
				s = score.MateScore
				if pos.Turn() == chess.Black {
					s = -score.MateScore
				}
			} else {
				var ok bool
				s, ok = score.ExtractScore(token.Comment)
				if !ok {
					return false, fmt.Errorf("%w in %q at ply %d", ErrMissingEvaluation, token.Comment, ply)
				}
			}
			q = score.WinProbability(s)
		} else if c.settings.FishtestMode {
			return false, fmt.Errorf("%w at ply %d", ErrMissingAnnotation, ply)
		}

		var nm = bridge.ToNeural(pos, move)
		var legal = history.Last().GetBoard().GenerateLegalMoves()
		if !bridge.Verify(nm, legal) {
			logger.Warn().
				Str("san", token.Value).
				Str("move", nm.String()).
				Int("ply", ply).
				Msg("move not found")
		}

		if !bad {
			if writer == nil {
				writer, err = c.newWriter(shard, gameID)
				if err != nil {
					writer = nil
					return false, fmt.Errorf("%w: %v", ErrOutput, err)
				}
			}
			var rec = trainingdata.Synthesize(result, &history, nm, legal, q)
			if err := writer.WriteChunk(&rec); err != nil {
				return false, fmt.Errorf("%w: %v", ErrOutput, err)
			}
			c.stats.Records++
		}

		if err := history.Append(nm); err != nil {
			return false, fmt.Errorf("%w %q at ply %d: %v", ErrIllegalMove, token.Value, ply, err)
		}
		pos = pos.Update(move)
	}
	logger.Debug().Msg("game end")
	return false, nil
}

// Poor, very poor, speculative and dubious moves are replayed but not recorded.
func isBadMove(nag int) bool {
	switch nag {
	case pgn.NagMistake, pgn.NagBlunder, pgn.NagSpeculative, pgn.NagDubious:
		return true
	}
	return false
}

// normalizeFen defaults to the initial position and completes a FEN that
// lacks the move counters.
func normalizeFen(fen string) string {
	var fields = strings.Fields(fen)
	switch len(fields) {
	case 0:
		return neural.StartposFen
	case 4:
		return strings.Join(fields, " ") + " 0 1"
	case 5:
		return strings.Join(fields, " ") + " 1"
	}
	return strings.Join(fields, " ")
}
