/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package unitype

import (
	"bytes"
	"fmt"

	"github.com/unidoc/unitype/common"
)

// DirectoryEntry is a table record: the tag, checksum, file offset and size of one table.
type DirectoryEntry struct {
	Tag      Tag
	Checksum uint32
	Offset   uint32
	Length   uint32
}

func (e *DirectoryEntry) read(r *byteCursor) error {
	return r.read(&e.Tag, &e.Checksum, &e.Offset, &e.Length)
}

// end returns the offset one past the last byte of the table. Computed in 64 bits so that
// offset+length cannot wrap.
func (e DirectoryEntry) end() int64 {
	return int64(e.Offset) + int64(e.Length)
}

// TableDirectory is the decoded sfnt header and table directory.
// Entries are kept in file order. A tag occurring more than once is malformed; every
// entry is retained, Lookup returns the first one and the tag is listed in Duplicates.
type TableDirectory struct {
	SfntVersion   uint32
	NumTables     uint16
	SearchRange   uint16
	EntrySelector uint16
	RangeShift    uint16
	Entries       []DirectoryEntry
	Duplicates    []Tag
	Warnings      []string

	index map[Tag]int
}

// DecodeDirectory decodes the sfnt header and table directory at the start of `data`.
// Table bounds are not checked here, that happens when a table is decoded.
func DecodeDirectory(data []byte) (*TableDirectory, error) {
	return parseTableDirectory(newByteCursor(data))
}

func parseTableDirectory(r *byteCursor) (*TableDirectory, error) {
	ot, err := parseOffsetTable(r)
	if err != nil {
		return nil, err
	}

	numTables := int(ot.numTables)
	if offsetTableLength+tableRecordLength*numTables > r.len() {
		common.Log.Debug("Directory with %d tables exceeds file size %d", numTables, r.len())
		return nil, newDecodeError(KindMalformedDirectory, "", offsetTableLength,
			"%d table records need %d bytes, file has %d",
			numTables, tableRecordLength*numTables, r.len()-offsetTableLength)
	}

	d := &TableDirectory{
		SfntVersion:   ot.sfntVersion,
		NumTables:     ot.numTables,
		SearchRange:   ot.searchRange,
		EntrySelector: ot.entrySelector,
		RangeShift:    ot.rangeShift,
		Entries:       make([]DirectoryEntry, 0, numTables),
		Warnings:      ot.consistencyWarnings(),
		index:         make(map[Tag]int, numTables),
	}
	for _, w := range d.Warnings {
		common.Log.Debug("Offset table: %s", w)
	}

	for i := 0; i < numTables; i++ {
		var rec DirectoryEntry
		if err := rec.read(r); err != nil {
			return nil, err
		}
		if _, dup := d.index[rec.Tag]; dup {
			common.Log.Debug("Duplicate table record for '%s'", rec.Tag)
			d.Duplicates = append(d.Duplicates, rec.Tag)
			d.Warnings = append(d.Warnings, fmt.Sprintf("duplicate table record for '%s'", rec.Tag))
		} else {
			d.index[rec.Tag] = len(d.Entries)
		}
		d.Entries = append(d.Entries, rec)
	}

	return d, nil
}

// Lookup returns the directory entry for table `t`.
func (d *TableDirectory) Lookup(t Tag) (DirectoryEntry, bool) {
	if d == nil {
		return DirectoryEntry{}, false
	}
	i, ok := d.index[t]
	if !ok {
		return DirectoryEntry{}, false
	}
	return d.Entries[i], true
}

// HasTable returns true if the directory has an entry for `tableName`, e.g. "cvt" or "OS/2".
func (d *TableDirectory) HasTable(tableName string) bool {
	_, has := d.Lookup(MakeTag(tableName))
	return has
}

// IsCFF returns true for fonts with CFF outlines ('OTTO').
func (d *TableDirectory) IsCFF() bool {
	return d.SfntVersion == SfntVersionCFF
}

func (d *TableDirectory) String() string {
	var buf bytes.Buffer
	for i, e := range d.Entries {
		buf.WriteString(fmt.Sprintf("Table record %d: '%s' checksum=0x%08X offset=%d length=%d\n",
			i+1, e.Tag, e.Checksum, e.Offset, e.Length))
	}
	return buf.String()
}
