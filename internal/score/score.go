package score

import (
	"math"
	"regexp"
	"strconv"
)

// MateScore is the saturating score used for forced mates.
const MateScore = 128.0

var (
	evalRegex       = regexp.MustCompile(`\{([+-]?\d+\.\d+)/`)
	mateRegex       = regexp.MustCompile(`\{#([+-]?\d+)/`)
	cutechessMateRe = regexp.MustCompile(`\{([+-])M(\d+)/`)
)

// ExtractScore finds an engine evaluation in a PGN comment such as
// "{0.25/20 0.1s}" or "{#-3/12}". Mate annotations return ±MateScore.
func ExtractScore(comment string) (float64, bool) {
	if m := evalRegex.FindStringSubmatch(comment); m != nil {
		var score, err = strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		return score, true
	}
	if m := mateRegex.FindStringSubmatch(comment); m != nil {
		if m[1][0] == '-' {
			return -MateScore, true
		}
		return MateScore, true
	}
	if m := cutechessMateRe.FindStringSubmatch(comment); m != nil {
		if m[1] == "-" {
			return -MateScore, true
		}
		return MateScore, true
	}
	return 0, false
}

// WinProbability maps a pawn-unit score to (-1, 1).
func WinProbability(score float64) float64 {
	return 2*sigmoid(0.4*score) - 1
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
