package fontdb

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/image/font/sfnt"
)

// faceMeta is the metadata extracted from one face at registration time.
type faceMeta struct {
	family string
	weight Weight
	index  int
}

// parseFaces extracts family name and weight for every face in data.
// Single fonts yield one entry with index 0; collections yield one entry
// per face.
func parseFaces(data []byte) ([]faceMeta, error) {
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("fontdb: failed to parse font: %w", err)
	}

	offsets := faceOffsets(data)

	var metas []faceMeta
	for i := 0; i < coll.NumFonts(); i++ {
		f, err := coll.Font(i)
		if err != nil {
			continue
		}
		family, err := f.Name(nil, sfnt.NameIDFamily)
		if err != nil || family == "" {
			if family, err = f.Name(nil, sfnt.NameIDFull); err != nil {
				continue
			}
		}
		weight := WeightNormal
		if i < len(offsets) {
			if w, ok := weightClass(data, offsets[i]); ok {
				weight = w
			}
		}
		metas = append(metas, faceMeta{family: family, weight: weight, index: i})
	}
	if len(metas) == 0 {
		return nil, ErrNoFaces
	}
	return metas, nil
}

const (
	ttcTag         = 0x74746366 // 'ttcf'
	os2Tag         = 0x4f532f32 // 'OS/2'
	weightOffset   = 4          // usWeightClass within the OS/2 table
	ttcHeaderSize  = 12
	tableDirHeader = 12
	tableRecordLen = 16
)

// faceOffsets returns the byte offset of the table directory of each face.
// A plain TTF/OTF has one face at offset 0; a TTC lists per-face offsets in
// its header.
func faceOffsets(data []byte) []uint32 {
	if len(data) < ttcHeaderSize || binary.BigEndian.Uint32(data) != ttcTag {
		return []uint32{0}
	}
	numFonts := binary.BigEndian.Uint32(data[8:])
	offsets := make([]uint32, 0, numFonts)
	for i := uint32(0); i < numFonts; i++ {
		pos := ttcHeaderSize + 4*int(i)
		if pos+4 > len(data) {
			break
		}
		offsets = append(offsets, binary.BigEndian.Uint32(data[pos:]))
	}
	return offsets
}

// weightClass reads usWeightClass from the OS/2 table of the face whose
// table directory starts at offset. Fonts without an OS/2 table (some
// old-style TrueType fonts) report no weight.
func weightClass(data []byte, offset uint32) (Weight, bool) {
	dir := int(offset)
	if dir+tableDirHeader > len(data) {
		return 0, false
	}
	numTables := int(binary.BigEndian.Uint16(data[dir+4:]))
	for i := 0; i < numTables; i++ {
		rec := dir + tableDirHeader + i*tableRecordLen
		if rec+tableRecordLen > len(data) {
			return 0, false
		}
		if binary.BigEndian.Uint32(data[rec:]) != os2Tag {
			continue
		}
		tableOff := int(binary.BigEndian.Uint32(data[rec+8:]))
		if tableOff+weightOffset+2 > len(data) {
			return 0, false
		}
		w := binary.BigEndian.Uint16(data[tableOff+weightOffset:])
		if w < 1 || w > 1000 {
			return 0, false
		}
		return Weight(w), true
	}
	return 0, false
}
