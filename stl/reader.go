package stl

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/wrthold/slicegeo/geom"
)

// defaultZPrecision is the z-snapping precision used when loading a mesh,
// matching the teacher's own default tolerance for "nominally identical"
// values.
const defaultZPrecision = 0.0001

// Stl is a loaded mesh plus the z-snapper shared across every facet, so
// nominally identical heights collapse to one bucket.
type Stl struct {
	Facets       []Facet
	HeightSnapper *geom.CoordinatesHash
}

// Load decodes a binary STL file: an 80-byte header (ignored), a uint32 LE
// triangle count, then per triangle a 12-byte normal (ignored), 3 vertices
// of 3 little-endian float32 each, and a 2-byte attribute (ignored). Each
// coordinate is promoted to float64; z is snapped immediately through the
// shared height snapper.
func Load(path string) (*Stl, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a binary STL stream, see Load.
func Decode(r io.Reader) (*Stl, error) {
	header := make([]byte, 84)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	count := binary.LittleEndian.Uint32(header[80:84])

	s := &Stl{HeightSnapper: geom.NewCoordinatesHash(defaultZPrecision)}
	s.Facets = make([]Facet, 0, count)

	record := make([]byte, 50)
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, record); err != nil {
			return nil, fmt.Errorf("%w: facet %d: %v", ErrTruncated, i, err)
		}
		facet, err := decodeFacet(record, s.HeightSnapper)
		if err != nil {
			return nil, err
		}
		s.Facets = append(s.Facets, facet)
	}
	debugLog("loaded %d facets", len(s.Facets))
	return s, nil
}

func decodeFacet(record []byte, heightSnapper *geom.CoordinatesHash) (Facet, error) {
	var f Facet
	// record[0:12] is the facet normal, ignored.
	offset := 12
	for v := 0; v < 3; v++ {
		x := float64(readFloat32(record, offset))
		y := float64(readFloat32(record, offset+4))
		z := float64(readFloat32(record, offset+8))
		if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z) {
			return Facet{}, ErrNaNCoordinate
		}
		f.Points[v] = geom.Point3{X: x, Y: y, Z: heightSnapper.Add(z)}
		offset += 12
	}
	// record[48:50] is the 2-byte attribute, ignored.
	return f, nil
}

func readFloat32(b []byte, offset int) float32 {
	bits := binary.LittleEndian.Uint32(b[offset : offset+4])
	return math.Float32frombits(bits)
}
