package plot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"math"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

const inchesPerMeter = 39.37007874015748

// withDPI returns a copy of the PNG in b with a pHYs chunk recording dpi.
// An existing pHYs chunk is replaced.
func withDPI(b []byte, dpi float64) ([]byte, error) {
	if !bytes.HasPrefix(b, pngSignature) {
		return nil, errors.New("not a PNG")
	}

	ppm := uint32(math.Round(dpi * inchesPerMeter))
	data := make([]byte, 9)
	binary.BigEndian.PutUint32(data[0:4], ppm)
	binary.BigEndian.PutUint32(data[4:8], ppm)
	data[8] = 1 // unit is the meter

	out := bytes.NewBuffer(make([]byte, 0, len(b)+21))
	out.Write(pngSignature)

	inserted := false
	for off := len(pngSignature); off < len(b); {
		typ, end, err := chunkAt(b, off)
		if err != nil {
			return nil, err
		}

		if typ != "pHYs" {
			out.Write(b[off:end])
		}
		if typ == "IHDR" && !inserted {
			writeChunk(out, "pHYs", data)
			inserted = true
		}
		off = end
	}

	if !inserted {
		return nil, errors.New("PNG has no IHDR chunk")
	}
	return out.Bytes(), nil
}

// readDPI returns the dots per inch recorded in a PNG's pHYs chunk.
func readDPI(b []byte) (float64, bool) {
	if !bytes.HasPrefix(b, pngSignature) {
		return 0, false
	}

	for off := len(pngSignature); off < len(b); {
		typ, end, err := chunkAt(b, off)
		if err != nil {
			return 0, false
		}
		if typ == "pHYs" && end-off == 21 && b[off+16] == 1 {
			ppm := binary.BigEndian.Uint32(b[off+8 : off+12])
			return float64(ppm) / inchesPerMeter, true
		}
		off = end
	}
	return 0, false
}

// chunkAt returns the type of the chunk starting at off and the offset just past it.
func chunkAt(b []byte, off int) (string, int, error) {
	if off+8 > len(b) {
		return "", 0, errors.New("truncated PNG chunk header")
	}
	n := int(binary.BigEndian.Uint32(b[off : off+4]))
	end := off + 12 + n
	if n < 0 || end > len(b) {
		return "", 0, errors.New("truncated PNG chunk")
	}
	return string(b[off+4 : off+8]), end, nil
}

func writeChunk(buf *bytes.Buffer, typ string, data []byte) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(data)))
	buf.Write(n[:])

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)

	buf.WriteString(typ)
	buf.Write(data)

	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	buf.Write(sum[:])
}
