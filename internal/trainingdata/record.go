package trainingdata

import (
	"encoding/binary"
	"io"

	"github.com/ChizhovVadim/trainingdata/internal/neural"
)

const (
	Version    = 4
	PlaneCount = 104
	RecordSize = 8292
)

// Probability vector entries.
const (
	ProbabilityIllegal = -1
	ProbabilityLegal   = 0
	ProbabilityPlayed  = 1
)

// V4TrainingData is one training sample. The field order and sizes are the
// on-disk format: packed, little-endian, RecordSize bytes.
type V4TrainingData struct {
	Version         uint32
	Probabilities   [neural.PolicySize]float32
	Planes          [PlaneCount]uint64
	CastlingUsOOO   uint8
	CastlingUsOO    uint8
	CastlingThemOOO uint8
	CastlingThemOO  uint8
	SideToMove      uint8
	Rule50Count     uint8
	MoveCount       uint8
	Result          int8
	RootQ           float32
	BestQ           float32
	RootD           float32
	BestD           float32
}

func (r *V4TrainingData) WriteBinary(w io.Writer) error {
	return binary.Write(w, binary.LittleEndian, r)
}

func (r *V4TrainingData) ReadBinary(rd io.Reader) error {
	return binary.Read(rd, binary.LittleEndian, r)
}
