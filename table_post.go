/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package unitype

import "github.com/unidoc/unitype/common"

// PostTable represents the header of a PostScript (post) table.
// This table contains additional information needed for use on PostScript printers.
//
//   - version 1.0 is used the font file contains exactly the 258 glyphs in the standard Macintosh TrueType font file.
//   - version 2.0 is used for fonts that contain some glyphs not in the standard set or have different ordering.
//   - version 2.5 can handle nonstandard ordering of the standard mac glyphs via offsets.
//   - version 3.0 has no glyph name data.
//
// Only the 32-byte header is decoded, the glyph names of versions 2.0 and 2.5 are not.
type PostTable struct {
	Version            Fixed
	ItalicAngle        Fixed // in degrees, counter-clockwise from the vertical.
	UnderlinePosition  FWord
	UnderlineThickness FWord
	IsFixedPitch       uint32
	MinMemType42       uint32
	MaxMemType42       uint32
	MinMemType1        uint32
	MaxMemType1        uint32
}

// FixedPitch returns true if the font is monospaced.
func (t *PostTable) FixedPitch() bool {
	return t.IsFixedPitch != 0
}

/*
 See https://developer.apple.com/fonts/TrueType-Reference-Manual/RM06/Chap6post.html
 and https://docs.microsoft.com/en-us/typography/opentype/spec/post
 for details regarding the format.
*/

func parsePost(r *byteCursor, rep *reporter) (*PostTable, error) {
	t := &PostTable{}
	err := r.read(&t.Version, &t.ItalicAngle, &t.UnderlinePosition, &t.UnderlineThickness, &t.IsFixedPitch)
	if err != nil {
		return nil, err
	}
	err = r.read(&t.MinMemType42, &t.MaxMemType42, &t.MinMemType1, &t.MaxMemType1)
	if err != nil {
		return nil, err
	}

	switch uint32(t.Version) {
	case 0x00010000, 0x00020000, 0x00025000, 0x00030000:
		common.Log.Trace("post version %s", t.Version.Version())
	case 0x00040000:
		// Apple specific, maps glyphs to character codes.
	default:
		rep.warn("unknown version 0x%08X", uint32(t.Version))
	}
	return t, nil
}
