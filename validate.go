/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package unitype

import (
	"encoding/binary"

	"github.com/unidoc/unitype/common"
)

// Validate checks that every table of the font in `data` lies within the data, that each
// table matches the checksum in its directory entry and that the checkSumAdjustment of
// the head table is consistent with the whole file. The first failure is returned.
func Validate(data []byte) error {
	dir, err := DecodeDirectory(data)
	if err != nil {
		return err
	}
	if !dir.HasTable("head") {
		common.Log.Debug("head table missing")
		return corruptTable("head", -1, "table missing")
	}

	var first error
	verifyChecksums(data, dir, func(err error) {
		if first == nil {
			first = err
		}
	})
	return first
}

// verifyChecksums calls `fail` for every table with bounds or checksum problems and for a
// wrong head checkSumAdjustment.
func verifyChecksums(data []byte, dir *TableDirectory, fail func(err error)) {
	common.Log.Debug("Validating font tables")
	boundsOK := true
	for _, e := range dir.Entries {
		if e.end() > int64(len(data)) {
			boundsOK = false
			fail(newDecodeError(KindOutOfBounds, e.Tag.String(), int64(e.Offset),
				"table of %d bytes extends past the end of the %d byte font", e.Length, len(data)))
			continue
		}
		checksum := tableChecksum(e.Tag, data[e.Offset:e.end()])
		if checksum != e.Checksum {
			common.Log.Debug("Invalid checksum for '%s' (%d != %d)", e.Tag, checksum, e.Checksum)
			fail(corruptTable(e.Tag.String(), int64(e.Offset),
				"checksum 0x%08X, directory has 0x%08X", checksum, e.Checksum))
		}
	}

	head, ok := dir.Lookup(MakeTag("head"))
	if !ok || !boundsOK || head.Length < 12 {
		return
	}
	adjOffset := int64(head.Offset) + 8
	adjustment := binary.BigEndian.Uint32(data[adjOffset:])
	expected := checksumMagic - fontChecksum(data, adjOffset)
	if adjustment != expected {
		common.Log.Debug("file checksum mismatch")
		fail(corruptTable("head", adjOffset,
			"checkSumAdjustment 0x%08X, expected 0x%08X", adjustment, expected))
	}
}
