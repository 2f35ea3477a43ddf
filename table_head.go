/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package unitype

import (
	"github.com/unidoc/unitype/common"
)

const (
	headMagicNumber = 0x5F0F3CF5

	minUnitsPerEm = 16
	maxUnitsPerEm = 16384
)

// HeadTable is the font header (head).
// https://docs.microsoft.com/en-us/typography/opentype/spec/head
type HeadTable struct {
	MajorVersion       uint16
	MinorVersion       uint16
	FontRevision       Fixed
	ChecksumAdjustment uint32
	MagicNumber        uint32
	Flags              uint16
	UnitsPerEm         uint16
	Created            LongDateTime
	Modified           LongDateTime
	XMin               int16
	YMin               int16
	XMax               int16
	YMax               int16
	MacStyle           uint16
	LowestRecPPEM      uint16
	FontDirectionHint  int16
	IndexToLocFormat   int16 // 0 for short loca offsets, 1 for long.
	GlyphDataFormat    int16
}

// macStyle bits.
const (
	MacStyleBold      = 1 << 0
	MacStyleItalic    = 1 << 1
	MacStyleUnderline = 1 << 2
	MacStyleOutline   = 1 << 3
	MacStyleShadow    = 1 << 4
	MacStyleCondensed = 1 << 5
	MacStyleExtended  = 1 << 6
)

// IsBold returns true if the bold bit of macStyle is set.
func (t *HeadTable) IsBold() bool { return t.MacStyle&MacStyleBold != 0 }

// IsItalic returns true if the italic bit of macStyle is set.
func (t *HeadTable) IsItalic() bool { return t.MacStyle&MacStyleItalic != 0 }

// HasLongOffsets returns true if the loca table uses 32-bit offsets.
func (t *HeadTable) HasLongOffsets() bool { return t.IndexToLocFormat != 0 }

// parseHead decodes the head table from `r`, which covers exactly the table.
func parseHead(r *byteCursor, rep *reporter) (*HeadTable, error) {
	t := &HeadTable{}
	err := r.read(&t.MajorVersion, &t.MinorVersion, &t.FontRevision)
	if err != nil {
		return nil, err
	}
	if t.MajorVersion != 1 {
		rep.warn("unexpected version %d.%d", t.MajorVersion, t.MinorVersion)
	}

	err = r.read(&t.ChecksumAdjustment)
	if err != nil {
		return nil, err
	}
	magicOffset := r.fileOffset()
	err = r.read(&t.MagicNumber)
	if err != nil {
		return nil, err
	}
	if t.MagicNumber != headMagicNumber {
		common.Log.Debug("Error: got magic number 0x%X", t.MagicNumber)
		return nil, corruptTable("head", magicOffset, "magic number 0x%08X, expected 0x%08X",
			t.MagicNumber, headMagicNumber)
	}

	err = r.read(&t.Flags, &t.UnitsPerEm, &t.Created, &t.Modified)
	if err != nil {
		return nil, err
	}
	if t.UnitsPerEm < minUnitsPerEm || t.UnitsPerEm > maxUnitsPerEm {
		rep.warn("unitsPerEm %d outside %d..%d", t.UnitsPerEm, minUnitsPerEm, maxUnitsPerEm)
	}

	err = r.read(&t.XMin, &t.YMin, &t.XMax, &t.YMax)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.MacStyle, &t.LowestRecPPEM, &t.FontDirectionHint, &t.IndexToLocFormat, &t.GlyphDataFormat)
	if err != nil {
		return nil, err
	}
	return t, nil
}
