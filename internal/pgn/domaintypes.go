package pgn

const (
	GameResultNone     = "*"
	GameResultWhiteWin = "1-0"
	GameResultBlackWin = "0-1"
	GameResultDraw     = "1/2-1/2"
)

// Numeric annotation glyphs written as move suffixes.
const (
	NagNone        = 0
	NagGood        = 1
	NagMistake     = 2
	NagBrilliant   = 3
	NagBlunder     = 4
	NagSpeculative = 5
	NagDubious     = 6
)

type Tag struct {
	Key   string
	Value string
}

type GameRaw struct {
	Tags    []string
	BodyRaw string
}

type Game struct {
	Tags   []Tag
	Result string
	Fen    string
	Moves  []Token
}

// Token is a move in SAN with the comment (braces included) and the
// annotation glyph that followed it.
type Token struct {
	Value   string
	Comment string
	Nag     int
}

func (g *Game) TagValue(key string) (string, bool) {
	return tagValue(g.Tags, key)
}
