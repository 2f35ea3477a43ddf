/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package unitype

import "github.com/unidoc/unitype/common"

const (
	maxpVersion05 Fixed = 0x00005000
	maxpVersion10 Fixed = 0x00010000
)

// MaxpTable represents the Maximum Profile (maxp) table.
// This table establishes the memory requirements for the font.
type MaxpTable struct {
	// Version 0.5 and above:
	Version   Fixed
	NumGlyphs uint16

	// Profile holds the version 1.0 fields. Nil for version 0.5 tables, which are used
	// by fonts with CFF outlines.
	Profile *MaxpProfile
}

// MaxpProfile holds the fields a version 1.0 maxp table adds.
type MaxpProfile struct {
	MaxPoints             uint16
	MaxContours           uint16
	MaxCompositePoints    uint16
	MaxCompositeContours  uint16
	MaxZones              uint16
	MaxTwilightPoints     uint16
	MaxStorage            uint16
	MaxFunctionDefs       uint16
	MaxInstructionDefs    uint16
	MaxStackElements      uint16
	MaxSizeOfInstructions uint16
	MaxComponentElements  uint16
	MaxComponentDepth     uint16
}

// parseMaxp decodes the maxp table. The declared version decides the layout: a version 0.5
// table is never read past numGlyphs even if the table is longer.
func parseMaxp(r *byteCursor, rep *reporter) (*MaxpTable, error) {
	t := &MaxpTable{}

	err := r.read(&t.Version, &t.NumGlyphs)
	if err != nil {
		return nil, err
	}
	if t.NumGlyphs == 0 {
		rep.warn("numGlyphs is zero")
	}

	if t.Version < maxpVersion10 {
		if t.Version != maxpVersion05 {
			rep.warn("unknown version 0x%08X, reading as version 0.5", uint32(t.Version))
		}
		common.Log.Trace("maxp version %s: %d glyphs", t.Version.Version(), t.NumGlyphs)
		return t, nil
	}
	if t.Version != maxpVersion10 {
		rep.warn("unknown version 0x%08X, reading as version 1.0", uint32(t.Version))
	}

	p := &MaxpProfile{}
	err = r.read(&p.MaxPoints, &p.MaxContours, &p.MaxCompositePoints, &p.MaxCompositeContours)
	if err != nil {
		return nil, err
	}

	err = r.read(&p.MaxZones, &p.MaxTwilightPoints, &p.MaxStorage, &p.MaxFunctionDefs, &p.MaxInstructionDefs)
	if err != nil {
		return nil, err
	}

	err = r.read(&p.MaxStackElements, &p.MaxSizeOfInstructions, &p.MaxComponentElements, &p.MaxComponentDepth)
	if err != nil {
		return nil, err
	}
	t.Profile = p
	return t, nil
}
