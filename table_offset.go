/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package unitype

import (
	"fmt"
	"math/bits"

	"github.com/unidoc/unitype/common"
)

// sfnt versions accepted in the offset table.
const (
	SfntVersionTrueType uint32 = 0x00010000
	SfntVersionCFF      uint32 = 0x4F54544F // 'OTTO'
)

const (
	offsetTableLength = 12
	tableRecordLength = 16
)

// offsetTable is the sfnt header at the start of the file.
type offsetTable struct {
	sfntVersion   uint32
	numTables     uint16
	searchRange   uint16
	entrySelector uint16
	rangeShift    uint16
}

func parseOffsetTable(r *byteCursor) (*offsetTable, error) {
	if r.len() < offsetTableLength {
		return nil, newDecodeError(KindMalformedDirectory, "", 0,
			"file is %d bytes, the sfnt header needs %d", r.len(), offsetTableLength)
	}

	ot := &offsetTable{}
	err := r.read(&ot.sfntVersion, &ot.numTables, &ot.searchRange)
	if err != nil {
		return nil, err
	}

	if ot.sfntVersion != SfntVersionTrueType && ot.sfntVersion != SfntVersionCFF {
		common.Log.Debug("Unsupported sfnt version 0x%08X", ot.sfntVersion)
		return nil, newDecodeError(KindUnsupportedFormat, "", 0,
			"sfnt version 0x%08X (%q)", ot.sfntVersion, Tag{
				byte(ot.sfntVersion >> 24), byte(ot.sfntVersion >> 16),
				byte(ot.sfntVersion >> 8), byte(ot.sfntVersion),
			}.String())
	}

	err = r.read(&ot.entrySelector, &ot.rangeShift)
	if err != nil {
		return nil, err
	}

	return ot, nil
}

// binarySearchParams returns the expected searchRange, entrySelector and rangeShift for
// a directory with `numTables` entries.
func binarySearchParams(numTables uint16) (searchRange, entrySelector, rangeShift uint16) {
	if numTables == 0 {
		return 0, 0, 0
	}
	entrySelector = uint16(bits.Len16(numTables) - 1)
	searchRange = tableRecordLength << entrySelector
	rangeShift = numTables*tableRecordLength - searchRange
	return searchRange, entrySelector, rangeShift
}

// consistencyWarnings checks the binary search fields. These exist only to speed up table
// lookup, so mismatches are reported rather than rejected.
func (ot *offsetTable) consistencyWarnings() []string {
	var warnings []string
	searchRange, entrySelector, rangeShift := binarySearchParams(ot.numTables)
	if ot.searchRange != searchRange {
		warnings = append(warnings, fmt.Sprintf("searchRange is %d, expected %d", ot.searchRange, searchRange))
	}
	if ot.entrySelector != entrySelector {
		warnings = append(warnings, fmt.Sprintf("entrySelector is %d, expected %d", ot.entrySelector, entrySelector))
	}
	if ot.rangeShift != rangeShift {
		warnings = append(warnings, fmt.Sprintf("rangeShift is %d, expected %d", ot.rangeShift, rangeShift))
	}
	return warnings
}
