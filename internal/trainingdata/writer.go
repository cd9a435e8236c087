package trainingdata

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// Writer stores the records of one game as a gzip chunk
// <dir>/supervised-<shard>/game_<id>.gz.
type Writer struct {
	path    string
	file    *os.File
	zw      *gzip.Writer
	bw      *bufio.Writer
	records int
}

func ChunkPath(dir string, shard string, gameID int) string {
	return filepath.Join(dir, "supervised-"+shard, fmt.Sprintf("game_%06d.gz", gameID))
}

func NewWriter(dir string, shard string, gameID int) (*Writer, error) {
	var path = ChunkPath(dir, shard, gameID)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	var zw = gzip.NewWriter(file)
	return &Writer{
		path: path,
		file: file,
		zw:   zw,
		bw:   bufio.NewWriter(zw),
	}, nil
}

func (w *Writer) Path() string {
	return w.path
}

func (w *Writer) Records() int {
	return w.records
}

func (w *Writer) WriteChunk(rec *V4TrainingData) error {
	if err := rec.WriteBinary(w.bw); err != nil {
		return fmt.Errorf("write %v: %w", w.path, err)
	}
	w.records++
	return nil
}

// Finalize flushes and closes the chunk. It is safe to call more than once.
func (w *Writer) Finalize() error {
	if w.file == nil {
		return nil
	}
	var err = w.bw.Flush()
	if zerr := w.zw.Close(); err == nil {
		err = zerr
	}
	if ferr := w.file.Close(); err == nil {
		err = ferr
	}
	w.file = nil
	if err != nil {
		return fmt.Errorf("finalize %v: %w", w.path, err)
	}
	return nil
}

// ReadChunk reads all records of a chunk written by Writer.
func ReadChunk(path string) ([]V4TrainingData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	zr, err := gzip.NewReader(file)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	var br = bufio.NewReader(zr)
	var result []V4TrainingData
	for {
		if _, err := br.Peek(1); err != nil {
			break
		}
		var rec V4TrainingData
		if err := rec.ReadBinary(br); err != nil {
			return nil, fmt.Errorf("read %v: %w", path, err)
		}
		result = append(result, rec)
	}
	return result, nil
}
