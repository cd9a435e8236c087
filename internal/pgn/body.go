package pgn

import (
	"strconv"
	"strings"
	"unicode"
)

var suffixNags = map[string]int{
	"!":  NagGood,
	"?":  NagMistake,
	"!!": NagBrilliant,
	"??": NagBlunder,
	"!?": NagSpeculative,
	"?!": NagDubious,
}

// ParsePgnBody splits the movetext of a game into move tokens. Move numbers,
// variations, line comments and the result marker are dropped. Comments and
// annotation glyphs are attached to the preceding move.
func ParsePgnBody(bodyRaw string) []Token {
	var result []Token
	var inComment, inLineComment bool
	var variationDepth int
	var body = &strings.Builder{}

	var addComment = func(comment string) {
		if variationDepth > 0 || len(result) == 0 {
			return
		}
		var last = &result[len(result)-1]
		if last.Comment != "" {
			last.Comment += " "
		}
		last.Comment += comment
	}

	var flush = func() {
		if body.Len() == 0 {
			return
		}
		var word = body.String()
		body.Reset()
		if variationDepth > 0 {
			return
		}
		addWord(&result, word)
	}

	for _, rune := range bodyRaw {
		if inComment {
			body.WriteRune(rune)
			if rune == '}' {
				addComment(body.String())
				body.Reset()
				inComment = false
			}
		} else if inLineComment {
			if rune == '\n' {
				inLineComment = false
			}
		} else if rune == '.' {
			body.Reset()
		} else if unicode.IsSpace(rune) {
			flush()
		} else if rune == '{' {
			flush()
			inComment = true
			body.WriteRune(rune)
		} else if rune == ';' {
			flush()
			inLineComment = true
		} else if rune == '(' {
			flush()
			variationDepth++
		} else if rune == ')' {
			flush()
			if variationDepth > 0 {
				variationDepth--
			}
		} else {
			body.WriteRune(rune)
		}
	}
	if !inComment {
		flush()
	}
	return result
}

func addWord(result *[]Token, word string) {
	if isGameResult(word) {
		return
	}
	if strings.HasPrefix(word, "$") {
		if nag, err := strconv.Atoi(word[1:]); err == nil && len(*result) != 0 {
			(*result)[len(*result)-1].Nag = nag
		}
		return
	}
	if nag, found := suffixNags[word]; found {
		if len(*result) != 0 {
			(*result)[len(*result)-1].Nag = nag
		}
		return
	}
	var move = strings.TrimRight(word, "!?")
	if move == "" {
		return
	}
	var token = Token{Value: move}
	if suffix := word[len(move):]; suffix != "" {
		token.Nag = suffixNags[suffix]
	}
	*result = append(*result, token)
}

func isGameResult(s string) bool {
	return s == GameResultNone ||
		s == GameResultWhiteWin ||
		s == GameResultBlackWin ||
		s == GameResultDraw
}
