/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package unitype

// OS2Table represents the OS/2 and Windows metrics table. Fields a version does not
// define are left zero.
// https://docs.microsoft.com/en-us/typography/opentype/spec/os2
type OS2Table struct {
	// Version 0+
	Version             uint16
	XAvgCharWidth       int16
	UsWeightClass       uint16
	UsWidthClass        uint16
	FsType              uint16
	YSubscriptXSize     int16
	YSubscriptYSize     int16
	YSubscriptXOffset   int16
	YSubscriptYOffset   int16
	YSuperscriptXSize   int16
	YSuperscriptYSize   int16
	YSuperscriptXOffset int16
	YSuperscriptYOffset int16
	YStrikeoutSize      int16
	YStrikeoutPosition  int16
	SFamilyClass        int16
	Panose              [10]uint8
	UlUnicodeRange1     uint32 // Bits 0-31.
	UlUnicodeRange2     uint32 // Bits 32-63.
	UlUnicodeRange3     uint32 // Bits 64-95.
	UlUnicodeRange4     uint32 // Bits 96-127.
	AchVendID           Tag
	FsSelection         uint16
	UsFirstCharIndex    uint16
	UsLastCharIndex     uint16
	STypoAscender       int16
	STypoDescender      int16
	STypoLineGap        int16
	UsWinAscent         uint16
	UsWinDescent        uint16

	// Version 1-5.
	UlCodePageRange1 uint32 // Bits 0-31
	UlCodePageRange2 uint32 // Bits 32-63.

	// Version 2-5
	SxHeight      int16
	SCapHeight    int16
	UsDefaultChar uint16
	UsBreakChar   uint16
	UsMaxContext  uint16

	// Version 5
	UsLowerOpticalPointSize uint16
	UsUpperOpticalPointSize uint16
}

func parseOS2Table(r *byteCursor, rep *reporter) (*OS2Table, error) {
	t := &OS2Table{}
	err := r.read(&t.Version, &t.XAvgCharWidth, &t.UsWeightClass, &t.UsWidthClass, &t.FsType)
	if err != nil {
		return nil, err
	}
	if t.Version > 5 {
		rep.warn("unknown version %d, reading version 5 fields", t.Version)
	}

	err = r.read(&t.YSubscriptXSize, &t.YSubscriptYSize, &t.YSubscriptXOffset, &t.YSubscriptYOffset)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.YSuperscriptXSize, &t.YSuperscriptYSize, &t.YSuperscriptXOffset, &t.YSuperscriptYOffset)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.YStrikeoutSize, &t.YStrikeoutPosition, &t.SFamilyClass)
	if err != nil {
		return nil, err
	}

	for i := range t.Panose {
		err = r.read(&t.Panose[i])
		if err != nil {
			return nil, err
		}
	}

	err = r.read(&t.UlUnicodeRange1, &t.UlUnicodeRange2, &t.UlUnicodeRange3, &t.UlUnicodeRange4)
	if err != nil {
		return nil, err
	}
	err = r.read(&t.AchVendID, &t.FsSelection, &t.UsFirstCharIndex, &t.UsLastCharIndex, &t.STypoAscender)
	if err != nil {
		return nil, err
	}
	err = r.read(&t.STypoDescender, &t.STypoLineGap, &t.UsWinAscent, &t.UsWinDescent)
	if err != nil {
		return nil, err
	}

	if t.Version == 0 {
		return t, nil
	}

	// version >= 1.
	err = r.read(&t.UlCodePageRange1, &t.UlCodePageRange2)
	if err != nil {
		return nil, err
	}
	if t.Version == 1 {
		return t, nil
	}

	// version 2-5.
	err = r.read(&t.SxHeight, &t.SCapHeight, &t.UsDefaultChar, &t.UsBreakChar, &t.UsMaxContext)
	if err != nil {
		return nil, err
	}
	if t.Version < 5 {
		return t, nil
	}

	// version >= 5.
	err = r.read(&t.UsLowerOpticalPointSize, &t.UsUpperOpticalPointSize)
	if err != nil {
		return nil, err
	}

	return t, nil
}
