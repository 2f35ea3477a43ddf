/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package unitype

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/unidoc/unitype/common"
)

// Platform IDs.
const (
	PlatformUnicode   = 0
	PlatformMacintosh = 1
	PlatformWindows   = 3
)

// Name IDs with a predefined meaning.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name#name-ids
const (
	NameCopyright      = 0
	NameFamily         = 1
	NameSubfamily      = 2
	NameUniqueID       = 3
	NameFullName       = 4
	NameVersion        = 5
	NamePostScriptName = 6
	NameTrademark      = 7
	NameManufacturer   = 8
	NameDesigner       = 9
	NameDescription    = 10
)

const nameRecordLength = 12

// NameTable represents the Naming table (name).
// The naming table allows multilingual strings to be associated with the font.
// These strings can represent copyright notices, font names, family names, style names, and so on.
type NameTable struct {
	// format >= 0
	Format       uint16
	Count        uint16
	StringOffset uint16
	Records      []NameRecord // len = count, in table order.

	// format = 1 adds
	LangTagCount   uint16
	LangTagRecords []LangTagRecord // len = langTagCount
}

// LangTagRecord is a language tag referenced by language IDs >= 0x8000 in format 1 tables.
type LangTagRecord struct {
	Length uint16
	Offset uint16
	Data   []byte // actual string data (UTF-16BE format).
}

// String returns the decoded language tag, e.g. "en-US".
func (ltr LangTagRecord) String() string {
	s, _, err := transform.String(utf16be.NewDecoder(), string(ltr.Data))
	if err != nil {
		return string(ltr.Data)
	}
	return s
}

// NameRecord references one string in the string storage.
type NameRecord struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	Length     uint16
	Offset     uint16
	Data       []byte // actual string data.
}

var utf16be = xunicode.UTF16(xunicode.BigEndian, xunicode.IgnoreBOM)

// nameEncoding returns the encoding of strings for the platform and encoding IDs. The wide
// flag marks Windows multi-byte encodings, which store every byte in a 16-bit unit.
func nameEncoding(platformID, encodingID uint16) (enc encoding.Encoding, wide bool) {
	switch platformID {
	case PlatformUnicode:
		return utf16be, false
	case PlatformMacintosh:
		switch encodingID {
		case 0: // Roman
			return charmap.Macintosh, false
		case 1: // Japanese
			return japanese.ShiftJIS, false
		case 2: // Traditional Chinese
			return traditionalchinese.Big5, false
		case 3: // Korean
			return korean.EUCKR, false
		case 25: // Simplified Chinese
			return simplifiedchinese.GBK, false
		}
	case PlatformWindows:
		// When building a Unicode font for Windows, the platform ID should be 3 and the encoding ID should be 1,
		// and the referenced string data must be encoded in UTF-16BE. When building a symbol font for Windows,
		// the platform ID should be 3 and the encoding ID should be 0, and the referenced string data must be
		// encoded in UTF-16BE. (https://docs.microsoft.com/en-us/typography/opentype/spec/name).
		switch encodingID {
		case 0, 1, 10:
			return utf16be, false
		case 2: // ShiftJIS
			return japanese.ShiftJIS, true
		case 3: // PRC
			return simplifiedchinese.GBK, true
		case 4: // Big5
			return traditionalchinese.Big5, true
		case 5: // Wansung
			return korean.EUCKR, true
		}
	}
	return nil, false
}

// narrow drops the zero high bytes of 16-bit units holding single-byte characters.
func narrow(data []byte) []byte {
	res := make([]byte, 0, len(data))
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] != 0 {
			res = append(res, data[i])
		}
		res = append(res, data[i+1])
	}
	if len(data)%2 == 1 {
		res = append(res, data[len(data)-1])
	}
	return res
}

// Decoded returns the string data decoded according to the record's platform and encoding.
// The bool is false if the encoding is not supported or the data does not decode, in which
// case only the raw Data is available.
func (nr NameRecord) Decoded() (string, bool) {
	enc, wide := nameEncoding(nr.PlatformID, nr.EncodingID)
	if enc == nil {
		return "", false
	}
	data := nr.Data
	if wide {
		data = narrow(data)
	}
	s, _, err := transform.String(enc.NewDecoder(), string(data))
	if err != nil {
		common.Log.Debug("name record %d/%d/%d: %v", nr.PlatformID, nr.EncodingID, nr.NameID, err)
		return "", false
	}
	return s, true
}

// String returns the decoded string with unprintable runes quoted. Undecodable records
// are rendered as hex bytes.
func (nr NameRecord) String() string {
	s, ok := nr.Decoded()
	if !ok {
		return fmt.Sprintf("<% X>", nr.Data)
	}
	return makePrintable(s)
}

// makePrintable replaces unprintable runes with quotes runes, returning printable string.
func makePrintable(str string) string {
	var buf bytes.Buffer
	for _, r := range str {
		if unicode.IsPrint(r) || r == '\n' {
			buf.WriteRune(r)
		} else {
			buf.WriteString(strconv.QuoteRune(r))
		}
	}
	return buf.String()
}

// rank orders records for Lookup, lower is preferred.
func (nr NameRecord) rank() int {
	switch {
	case nr.PlatformID == PlatformWindows && nr.EncodingID == 1 && nr.LanguageID == 0x0409:
		return 0
	case nr.PlatformID == PlatformWindows && nr.EncodingID == 1:
		return 1
	case nr.PlatformID == PlatformUnicode:
		return 2
	case nr.PlatformID == PlatformMacintosh && nr.EncodingID == 0 && nr.LanguageID == 0:
		return 3
	case nr.PlatformID == PlatformMacintosh && nr.EncodingID == 0:
		return 4
	}
	return 5
}

// Lookup returns the string for `nameID`. When several records carry the name, Windows
// Unicode BMP (3/1) is preferred, US English first, then Unicode platform records, then
// Macintosh Roman, then the first other record that decodes. Ties go to the earlier record.
func (t *NameTable) Lookup(nameID uint16) (string, bool) {
	if t == nil {
		return "", false
	}
	best := -1
	var bestStr string
	for _, nr := range t.Records {
		if nr.NameID != nameID {
			continue
		}
		rank := nr.rank()
		if best >= 0 && rank >= best {
			continue
		}
		s, ok := nr.Decoded()
		if !ok {
			continue
		}
		best, bestStr = rank, s
	}
	return bestStr, best >= 0
}

// GetNameByID returns the string for `nameID`, or an empty string if there is none.
func (t *NameTable) GetNameByID(nameID uint16) string {
	s, _ := t.Lookup(nameID)
	return s
}

// NameIDs returns the distinct name IDs in the table in ascending order.
func (t *NameTable) NameIDs() []uint16 {
	if t == nil {
		return nil
	}
	seen := map[uint16]bool{}
	var ids []uint16
	for _, nr := range t.Records {
		if !seen[nr.NameID] {
			seen[nr.NameID] = true
			ids = append(ids, nr.NameID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Names returns the selected string for every name ID that has a decodable record.
func (t *NameTable) Names() map[uint16]string {
	names := map[uint16]string{}
	for _, id := range t.NameIDs() {
		if s, ok := t.Lookup(id); ok {
			names[id] = s
		}
	}
	return names
}

// parseNameTable decodes the name table from `r`, which covers exactly the table. The
// string data is addressed from the table start but read through `file`, so every string
// is checked against the whole font data.
func parseNameTable(r, file *byteCursor, rep *reporter) (*NameTable, error) {
	t := &NameTable{}
	err := r.read(&t.Format, &t.Count, &t.StringOffset)
	if err != nil {
		return nil, err
	}
	if t.Format > 1 {
		common.Log.Debug("ERROR: format > 1 (%d)", t.Format)
		return nil, corruptTable("name", r.base, "format %d", t.Format)
	}

	// Check the record array fits before allocating for it.
	if err := r.check(int64(r.offset()), int64(t.Count)*nameRecordLength); err != nil {
		return nil, err
	}
	t.Records = make([]NameRecord, int(t.Count))
	for i := range t.Records {
		nr := &t.Records[i]
		err = r.read(&nr.PlatformID, &nr.EncodingID, &nr.LanguageID, &nr.NameID, &nr.Length, &nr.Offset)
		if err != nil {
			return nil, err
		}
	}

	if t.Format == 1 {
		err = r.read(&t.LangTagCount)
		if err != nil {
			return nil, err
		}
		for i := 0; i < int(t.LangTagCount); i++ {
			var ltr LangTagRecord
			err = r.read(&ltr.Length, &ltr.Offset)
			if err != nil {
				return nil, err
			}
			t.LangTagRecords = append(t.LangTagRecords, ltr)
		}
	}
	if int(t.StringOffset) < r.offset() {
		rep.warn("string storage at %d overlaps the records ending at %d", t.StringOffset, r.offset())
	}

	// Get the actual string data.
	for i := range t.Records {
		nr := &t.Records[i]
		nr.Data, err = readNameString(r, file, t.StringOffset, nr.Offset, nr.Length, rep)
		if err != nil {
			return nil, err
		}
	}
	for i := range t.LangTagRecords {
		ltr := &t.LangTagRecords[i]
		ltr.Data, err = readNameString(r, file, t.StringOffset, ltr.Offset, ltr.Length, rep)
		if err != nil {
			return nil, err
		}
	}

	common.Log.Debug("Name records: %d", len(t.Records))
	for _, nr := range t.Records {
		common.Log.Trace("%d %d %d - '%s' (%d)", nr.PlatformID, nr.EncodingID, nr.NameID, nr, len(nr.Data))
	}
	return t, nil
}

// readNameString reads `length` bytes at tableStart+stringOffset+offset. Strings outside the
// font data are an error. Strings past the table end but inside the data are read and
// reported.
func readNameString(r, file *byteCursor, stringOffset, offset, length uint16, rep *reporter) ([]byte, error) {
	rel := int64(stringOffset) + int64(offset)
	s, err := file.slice(r.base+rel, int64(length), "name")
	if err != nil {
		common.Log.Debug("name string offset outside font data")
		return nil, err
	}
	if rel+int64(length) > int64(r.len()) {
		rep.warn("string at %d (length %d) extends past the table end %d", rel, length, r.len())
	}
	return s.readBytes(int(length))
}
