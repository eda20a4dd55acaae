package scene

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/flatgeom/flatgeom/pkg/geometry"
)

// Fingerprint returns a digest of the scene's entries, stable across
// processes for identical contents. Two snapshots with the same names and
// shapes in the same order hash identically, so callers can detect change
// without diffing entries. Entry ids do not participate.
func (s *Scene) Fingerprint() uint64 {
	d := xxhash.New()
	for _, e := range s.Snapshot() {
		_, _ = d.WriteString(e.Name)
		writeShape(d, e.Shape)
	}
	return d.Sum64()
}

func writeShape(d *xxhash.Digest, s geometry.Shape) {
	writeByte(d, byte(s.Kind()))
	switch v := s.(type) {
	case geometry.Vector:
		writeFloats(d, v.X, v.Y)
	case geometry.Line:
		writeFloats(d, v.Origin.X, v.Origin.Y, v.Direction.X, v.Direction.Y)
	case geometry.LineSegment:
		writeFloats(d, v.Start.X, v.Start.Y, v.End.X, v.End.Y)
	case geometry.Circle:
		writeFloats(d, v.Center.X, v.Center.Y, v.Radius)
	case geometry.Rectangle:
		writeFloats(d, v.Origin.X, v.Origin.Y, v.Size.X, v.Size.Y)
	case geometry.OrientedRectangle:
		writeFloats(d, v.Center.X, v.Center.Y, v.HalfExtents.X, v.HalfExtents.Y, v.Rotation)
	}
}

func writeByte(d *xxhash.Digest, b byte) {
	_, _ = d.Write([]byte{b})
}

func writeFloats(d *xxhash.Digest, values ...float64) {
	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}
}
