package pgn

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const maxLineSize = 1 << 20

// WalkPgnFile opens a plain or compressed PGN file and calls onGame for every game.
func WalkPgnFile(
	filepath string,
	onGame func(GameRaw) error,
) error {
	r, err := OpenFile(filepath)
	if err != nil {
		return err
	}
	defer r.Close()
	return WalkPgn(r, onGame)
}

func WalkPgn(
	r io.Reader,
	onGame func(GameRaw) error,
) error {
	var tags []string
	var body = &strings.Builder{}
	var hasBody, inComment, tagsClosed bool

	var flush = func() error {
		if !hasBody || strings.TrimSpace(body.String()) == "" {
			return nil
		}
		return onGame(GameRaw{
			Tags:    tags,
			BodyRaw: body.String(),
		})
	}

	var scanner = bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		var line = scanner.Text()
		if !inComment && strings.HasPrefix(line, "%") {
			continue
		}
		if !inComment && strings.HasPrefix(line, "[") {
			if hasBody {
				if err := flush(); err != nil {
					return err
				}
				hasBody = false
				tags = nil
				body.Reset()
			} else if tagsClosed {
				// previous tag block had no movetext
				tags = nil
				body.Reset()
			}
			tagsClosed = false
			tags = append(tags, line)
		} else if !hasBody && strings.TrimSpace(line) == "" {
			tagsClosed = len(tags) != 0
			body.WriteString("\n")
		} else {
			hasBody = true
			inComment = scanComment(line, inComment)
			body.WriteString(line)
			body.WriteString("\n")
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return flush()
}

// scanComment reports whether a brace comment is still open after line.
func scanComment(line string, inComment bool) bool {
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case inComment:
			if c == '}' {
				inComment = false
			}
		case c == '{':
			inComment = true
		case c == ';':
			return false
		}
	}
	return inComment
}

// OpenFile opens a PGN file, decompressing .gz, .bz2 and .zst files.
func OpenFile(filepath string) (io.ReadCloser, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(filepath, ".gz"):
		zr, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, err
		}
		return &decompressReader{Reader: zr, closers: []io.Closer{zr, file}}, nil
	case strings.HasSuffix(filepath, ".bz2"):
		br, err := bzip2.NewReader(file, nil)
		if err != nil {
			file.Close()
			return nil, err
		}
		return &decompressReader{Reader: br, closers: []io.Closer{br, file}}, nil
	case strings.HasSuffix(filepath, ".zst"):
		dec, err := zstd.NewReader(file)
		if err != nil {
			file.Close()
			return nil, err
		}
		var rc = dec.IOReadCloser()
		return &decompressReader{Reader: rc, closers: []io.Closer{rc, file}}, nil
	}
	return file, nil
}

type decompressReader struct {
	io.Reader
	closers []io.Closer
}

func (r *decompressReader) Close() error {
	var result error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && result == nil {
			result = err
		}
	}
	return result
}
