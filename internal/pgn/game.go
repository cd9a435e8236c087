package pgn

import (
	"regexp"
	"strings"
)

// ParseGame splits tags and movetext. Moves are not validated here.
func ParseGame(raw GameRaw) Game {
	var tags = parseTags(raw.Tags)
	var result, _ = tagValue(tags, "Result")
	if result == "" {
		result = bodyResult(raw.BodyRaw)
	}
	var fen, _ = tagValue(tags, "FEN")
	return Game{
		Tags:   tags,
		Result: result,
		Fen:    strings.TrimSpace(fen),
		Moves:  ParsePgnBody(raw.BodyRaw),
	}
}

func bodyResult(body string) string {
	var fields = strings.Fields(body)
	if len(fields) != 0 && isGameResult(fields[len(fields)-1]) {
		return fields[len(fields)-1]
	}
	return ""
}

func parseTags(lines []string) []Tag {
	var tags = make([]Tag, 0, len(lines))
	for _, line := range lines {
		for _, match := range tagPairRegex.FindAllStringSubmatch(line, -1) {
			tags = append(tags, Tag{Key: match[1], Value: match[2]})
		}
	}
	return tags
}

func tagValue(tags []Tag, key string) (string, bool) {
	for _, tag := range tags {
		if tag.Key == key {
			return tag.Value, true
		}
	}
	return "", false
}

var tagPairRegex = regexp.MustCompile(`\[(\w+)\s+"((?:[^"\\]|\\.)*)"\]`)
