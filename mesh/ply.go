package mesh

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// PLYType is the serialization format of a PLY file.
type PLYType int

const (
	// PLYAscii writes human-readable element lines.
	PLYAscii PLYType = 0
	// PLYBinary writes little-endian packed elements.
	PLYBinary PLYType = 1
)

// ToPLY writes the mesh to out as a PLY polygon file: float positions and
// normals, uchar colors, and uchar-counted int triangle faces. An empty
// mesh produces a valid zero-element file.
func ToPLY(m *Mesh, out io.Writer, outputType PLYType) error {
	if m == nil {
		return errors.New("error no mesh to write")
	}

	var format string
	switch outputType {
	case PLYAscii:
		format = "ascii"
	case PLYBinary:
		format = "binary_little_endian"
	default:
		return errors.Errorf("unknown ply type %d", outputType)
	}

	var err error
	_, err = fmt.Fprintf(out, "ply\n"+
		"format %s 1.0\n"+
		"element vertex %d\n"+
		"property float x\n"+
		"property float y\n"+
		"property float z\n"+
		"property float nx\n"+
		"property float ny\n"+
		"property float nz\n"+
		"property uchar red\n"+
		"property uchar green\n"+
		"property uchar blue\n"+
		"element face %d\n"+
		"property list uchar int vertex_indices\n"+
		"end_header\n",
		format,
		m.VertexCount(),
		m.TriangleCount())
	if err != nil {
		return err
	}

	return writePLYData(m, out, outputType)
}

func writePLYData(m *Mesh, out io.Writer, plytype PLYType) error {
	var err error
	for _, v := range m.vertices {
		switch plytype {
		case PLYBinary:
			buf := make([]byte, 27)
			binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(v.Position.X)))
			binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(float32(v.Position.Y)))
			binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(float32(v.Position.Z)))
			binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(float32(v.Normal.X)))
			binary.LittleEndian.PutUint32(buf[16:], math.Float32bits(float32(v.Normal.Y)))
			binary.LittleEndian.PutUint32(buf[20:], math.Float32bits(float32(v.Normal.Z)))
			buf[24] = colorByte(v.Color.R)
			buf[25] = colorByte(v.Color.G)
			buf[26] = colorByte(v.Color.B)
			_, err = out.Write(buf)
		case PLYAscii:
			_, err = fmt.Fprintf(out, "%f %f %f %f %f %f %d %d %d\n",
				v.Position.X, v.Position.Y, v.Position.Z,
				v.Normal.X, v.Normal.Y, v.Normal.Z,
				colorByte(v.Color.R), colorByte(v.Color.G), colorByte(v.Color.B))
		}
		if err != nil {
			return err
		}
	}

	for i := 0; i+2 < len(m.indices); i += 3 {
		switch plytype {
		case PLYBinary:
			buf := make([]byte, 13)
			buf[0] = 3
			binary.LittleEndian.PutUint32(buf[1:], m.indices[i])
			binary.LittleEndian.PutUint32(buf[5:], m.indices[i+1])
			binary.LittleEndian.PutUint32(buf[9:], m.indices[i+2])
			_, err = out.Write(buf)
		case PLYAscii:
			_, err = fmt.Fprintf(out, "3 %d %d %d\n", m.indices[i], m.indices[i+1], m.indices[i+2])
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteToPLYFile writes the mesh to a PLY file at the given path.
func WriteToPLYFile(fn string, m *Mesh, outputType PLYType) (err error) {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		err = multierr.Combine(err, cerr)
	}()
	return ToPLY(m, f, outputType)
}

// colorByte quantizes a [0,1] channel to the uchar PLY expects.
func colorByte(f float32) byte {
	v := int(f*255 + .5)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return byte(v)
}
