/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package unitype

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// byteWriter builds big-endian font data for tests.
type byteWriter struct {
	buffer bytes.Buffer
}

// write writes a series of fixed-size values to `w`.
func (w *byteWriter) write(fields ...interface{}) *byteWriter {
	for _, f := range fields {
		if err := binary.Write(&w.buffer, binary.BigEndian, f); err != nil {
			panic(fmt.Sprintf("write type check error: %T", f))
		}
	}
	return w
}

// pad pads the buffer with zeros to a multiple of 4 bytes.
func (w *byteWriter) pad() {
	for w.buffer.Len()%4 != 0 {
		w.buffer.WriteByte(0)
	}
}

func (w *byteWriter) bytes() []byte {
	return w.buffer.Bytes()
}

type testTable struct {
	tag  string
	data []byte
}

// buildFont assembles an sfnt file with the tables laid out contiguously in the given
// order, each padded to 4 bytes. Directory entries are written in the same order and carry
// correct checksums. The head checkSumAdjustment is set for the whole file.
func buildFont(version uint32, tables ...testTable) []byte {
	numTables := len(tables)
	searchRange, entrySelector, rangeShift := binarySearchParams(uint16(numTables))

	w := &byteWriter{}
	w.write(version, uint16(numTables), searchRange, entrySelector, rangeShift)

	offset := uint32(offsetTableLength + tableRecordLength*numTables)
	for _, t := range tables {
		tag := MakeTag(t.tag)
		w.write(tag, tableChecksum(tag, t.data), offset, uint32(len(t.data)))
		offset += (uint32(len(t.data)) + 3) &^ 3
	}
	for _, t := range tables {
		w.write(t.data)
		w.pad()
	}

	data := w.bytes()
	dir, err := DecodeDirectory(data)
	if err != nil {
		panic(err)
	}
	if head, ok := dir.Lookup(MakeTag("head")); ok && head.Length >= 12 {
		adj := int64(head.Offset) + 8
		binary.BigEndian.PutUint32(data[adj:], checksumMagic-fontChecksum(data, adj))
	}
	return data
}

// entryOffset returns the file offset of directory entry `i`.
func entryOffset(i int) int {
	return offsetTableLength + tableRecordLength*i
}

// patchEntry overwrites the offset and length of directory entry `i`.
func patchEntry(data []byte, i int, offset, length uint32) {
	base := entryOffset(i)
	binary.BigEndian.PutUint32(data[base+8:], offset)
	binary.BigEndian.PutUint32(data[base+12:], length)
}

func headData(magic uint32, unitsPerEm uint16) []byte {
	w := &byteWriter{}
	w.write(uint16(1), uint16(0), Fixed(0x00012000), uint32(0), magic)
	w.write(uint16(0x000B), unitsPerEm, LongDateTime(3600), LongDateTime(86400))
	w.write(int16(-100), int16(-200), int16(1000), int16(900))
	w.write(uint16(MacStyleBold|MacStyleItalic), uint16(8), int16(2), int16(1), int16(0))
	return w.bytes()
}

func hheaData(numberOfHMetrics uint16) []byte {
	w := &byteWriter{}
	w.write(uint16(1), uint16(0), FWord(800), FWord(-200), FWord(90))
	w.write(UFWord(1200), FWord(-50), FWord(-60), FWord(1100))
	w.write(int16(1), int16(0), int16(0))
	w.write(int16(0), int16(0), int16(0), int16(0)) // reserved
	w.write(int16(0), numberOfHMetrics)
	return w.bytes()
}

func maxpData05(numGlyphs uint16) []byte {
	return (&byteWriter{}).write(maxpVersion05, numGlyphs).bytes()
}

func maxpData10(numGlyphs uint16, p MaxpProfile) []byte {
	w := &byteWriter{}
	w.write(maxpVersion10, numGlyphs)
	w.write(p.MaxPoints, p.MaxContours, p.MaxCompositePoints, p.MaxCompositeContours)
	w.write(p.MaxZones, p.MaxTwilightPoints, p.MaxStorage, p.MaxFunctionDefs, p.MaxInstructionDefs)
	w.write(p.MaxStackElements, p.MaxSizeOfInstructions, p.MaxComponentElements, p.MaxComponentDepth)
	return w.bytes()
}

type testName struct {
	platformID uint16
	encodingID uint16
	languageID uint16
	nameID     uint16
	data       []byte
}

// nameData builds a format 0 name table.
func nameData(names ...testName) []byte {
	w := &byteWriter{}
	w.write(uint16(0), uint16(len(names)), uint16(6+nameRecordLength*len(names)))
	var storage []byte
	for _, n := range names {
		w.write(n.platformID, n.encodingID, n.languageID, n.nameID, uint16(len(n.data)), uint16(len(storage)))
		storage = append(storage, n.data...)
	}
	w.write(storage)
	return w.bytes()
}

func postData(version uint32) []byte {
	w := &byteWriter{}
	w.write(Fixed(version), Fixed(-12*65536), FWord(-100), FWord(50), uint32(1))
	w.write(uint32(0), uint32(0), uint32(0), uint32(0))
	return w.bytes()
}

func utf16BE(s string) []byte {
	b, err := utf16be.NewEncoder().Bytes([]byte(s))
	if err != nil {
		panic(err)
	}
	return b
}

// testProfile has a distinct value in every maxp version 1.0 field.
var testProfile = MaxpProfile{
	MaxPoints:             101,
	MaxContours:           102,
	MaxCompositePoints:    103,
	MaxCompositeContours:  104,
	MaxZones:              2,
	MaxTwilightPoints:     106,
	MaxStorage:            107,
	MaxFunctionDefs:       108,
	MaxInstructionDefs:    109,
	MaxStackElements:      110,
	MaxSizeOfInstructions: 111,
	MaxComponentElements:  112,
	MaxComponentDepth:     113,
}

// testFont returns a well-formed font with head, hhea, maxp, name and post tables.
func testFont() []byte {
	return buildFont(SfntVersionTrueType,
		testTable{"head", headData(headMagicNumber, 2048)},
		testTable{"hhea", hheaData(3)},
		testTable{"maxp", maxpData10(3, testProfile)},
		testTable{"name", nameData(testName{PlatformWindows, 1, 0x0409, NameFamily, utf16BE("Test Font")})},
		testTable{"post", postData(0x00030000)},
	)
}
