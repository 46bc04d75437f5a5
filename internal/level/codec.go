package level

import (
	"encoding/binary"
	"fmt"
	"io"
)

// EncodeChunks appends the used portion of the chunk array to w as
// little-endian int16 fields and returns the number of bytes written.
func EncodeChunks(w io.Writer, cd *ChunkData) (int, error) {
	shorts := cd.NumChunks * ChunkFields
	if err := binary.Write(w, binary.LittleEndian, cd.Data[:shorts]); err != nil {
		return 0, fmt.Errorf("level: cannot encode chunks: %w", err)
	}
	return shorts * 2, nil
}

// DecodeChunks reads numChunks chunks from r starting at the given byte
// offset and returns chunk data with derived fields populated.
func DecodeChunks(r io.ReadSeeker, offset int64, numChunks int) (*ChunkData, error) {
	if numChunks < 1 || numChunks > MaxChunks {
		return nil, fmt.Errorf("level: bad chunk count %d", numChunks)
	}
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("level: cannot seek to chunk data: %w", err)
	}
	cd := &ChunkData{NumChunks: numChunks}
	shorts := numChunks * ChunkFields
	if err := binary.Read(r, binary.LittleEndian, cd.Data[:shorts]); err != nil {
		return nil, fmt.Errorf("level: cannot decode chunks: %w", err)
	}
	cd.UpdateDerived()
	return cd, nil
}
