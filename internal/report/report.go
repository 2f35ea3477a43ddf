/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package report renders decoded font metadata as text or YAML.
package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/unidoc/unitype"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned by Write for formats other than FormatText and FormatYAML.
var ErrUnknownFormat = errors.New("unknown report format")

// Write writes the report for `m` to `w` in `format`.
func Write(w io.Writer, m *unitype.FontMetadata, format string) error {
	switch format {
	case FormatText:
		return WriteText(w, m)
	case FormatYAML:
		return WriteYAML(w, m)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

type fontView struct {
	SfntVersion string           `yaml:"sfntVersion"`
	Tables      []tableView      `yaml:"tables"`
	Head        *headView        `yaml:"head,omitempty"`
	Hhea        *hheaView        `yaml:"hhea,omitempty"`
	Maxp        *maxpView        `yaml:"maxp,omitempty"`
	Name        *nameView        `yaml:"name,omitempty"`
	Post        *postView        `yaml:"post,omitempty"`
	OS2         *os2View         `yaml:"os2,omitempty"`
	Diagnostics []diagnosticView `yaml:"diagnostics,omitempty"`
}

type tableView struct {
	Tag      string `yaml:"tag"`
	Checksum string `yaml:"checksum"`
	Offset   uint32 `yaml:"offset"`
	Length   uint32 `yaml:"length"`
}

type headView struct {
	Version      string  `yaml:"version"`
	FontRevision float64 `yaml:"fontRevision"`
	UnitsPerEm   uint16  `yaml:"unitsPerEm"`
	Created      string  `yaml:"created"`
	Modified     string  `yaml:"modified"`
	XMin         int16   `yaml:"xMin"`
	YMin         int16   `yaml:"yMin"`
	XMax         int16   `yaml:"xMax"`
	YMax         int16   `yaml:"yMax"`
	MacStyle     uint16  `yaml:"macStyle"`
	Bold         bool    `yaml:"bold"`
	Italic       bool    `yaml:"italic"`
	LongOffsets  bool    `yaml:"longOffsets"`
}

type hheaView struct {
	Ascender         int16  `yaml:"ascender"`
	Descender        int16  `yaml:"descender"`
	LineGap          int16  `yaml:"lineGap"`
	AdvanceWidthMax  uint16 `yaml:"advanceWidthMax"`
	NumberOfHMetrics uint16 `yaml:"numberOfHMetrics"`
}

type maxpView struct {
	Version   string           `yaml:"version"`
	NumGlyphs uint16           `yaml:"numGlyphs"`
	Profile   *maxpProfileView `yaml:"profile,omitempty"` // nil for version 0.5.
}

type maxpProfileView struct {
	MaxPoints         uint16 `yaml:"maxPoints"`
	MaxContours       uint16 `yaml:"maxContours"`
	MaxComponentDepth uint16 `yaml:"maxComponentDepth"`
	MaxStackElements  uint16 `yaml:"maxStackElements"`
}

type nameView struct {
	Format  uint16           `yaml:"format"`
	Family  string           `yaml:"family,omitempty"`
	Records []nameRecordView `yaml:"records"`
}

type nameRecordView struct {
	PlatformID uint16 `yaml:"platformID"`
	EncodingID uint16 `yaml:"encodingID"`
	LanguageID uint16 `yaml:"languageID"`
	NameID     uint16 `yaml:"nameID"`
	Value      string `yaml:"value"`
}

type postView struct {
	Version            string  `yaml:"version"`
	ItalicAngle        float64 `yaml:"italicAngle"`
	UnderlinePosition  int16   `yaml:"underlinePosition"`
	UnderlineThickness int16   `yaml:"underlineThickness"`
	FixedPitch         bool    `yaml:"fixedPitch"`
}

type os2View struct {
	Version       uint16 `yaml:"version"`
	WeightClass   uint16 `yaml:"weightClass"`
	WidthClass    uint16 `yaml:"widthClass"`
	FsType        uint16 `yaml:"fsType"`
	VendorID      string `yaml:"vendorID"`
	TypoAscender  int16  `yaml:"typoAscender"`
	TypoDescender int16  `yaml:"typoDescender"`
	TypoLineGap   int16  `yaml:"typoLineGap"`
	WinAscent     uint16 `yaml:"winAscent"`
	WinDescent    uint16 `yaml:"winDescent"`
	XHeight       int16  `yaml:"xHeight,omitempty"`
	CapHeight     int16  `yaml:"capHeight,omitempty"`
}

type diagnosticView struct {
	Table    string `yaml:"table,omitempty"`
	Severity string `yaml:"severity"`
	Message  string `yaml:"message"`
}

func sfntVersionString(v uint32) string {
	switch v {
	case unitype.SfntVersionTrueType:
		return "TrueType"
	case unitype.SfntVersionCFF:
		return "CFF"
	}
	return fmt.Sprintf("0x%08X", v)
}

func newFontView(m *unitype.FontMetadata) *fontView {
	v := &fontView{SfntVersion: sfntVersionString(m.SfntVersion)}
	if m.Directory != nil {
		for _, e := range m.Directory.Entries {
			v.Tables = append(v.Tables, tableView{
				Tag:      e.Tag.String(),
				Checksum: fmt.Sprintf("0x%08X", e.Checksum),
				Offset:   e.Offset,
				Length:   e.Length,
			})
		}
	}

	if t := m.Head; t != nil {
		v.Head = &headView{
			Version:      fmt.Sprintf("%d.%d", t.MajorVersion, t.MinorVersion),
			FontRevision: t.FontRevision.Float64(),
			UnitsPerEm:   t.UnitsPerEm,
			Created:      t.Created.Time().Format(time.RFC3339),
			Modified:     t.Modified.Time().Format(time.RFC3339),
			XMin:         t.XMin,
			YMin:         t.YMin,
			XMax:         t.XMax,
			YMax:         t.YMax,
			MacStyle:     t.MacStyle,
			Bold:         t.IsBold(),
			Italic:       t.IsItalic(),
			LongOffsets:  t.HasLongOffsets(),
		}
	}
	if t := m.Hhea; t != nil {
		v.Hhea = &hheaView{
			Ascender:         int16(t.Ascender),
			Descender:        int16(t.Descender),
			LineGap:          int16(t.LineGap),
			AdvanceWidthMax:  uint16(t.AdvanceWidthMax),
			NumberOfHMetrics: t.NumberOfHMetrics,
		}
	}
	if t := m.Maxp; t != nil {
		v.Maxp = &maxpView{Version: t.Version.Version(), NumGlyphs: t.NumGlyphs}
		if p := t.Profile; p != nil {
			v.Maxp.Profile = &maxpProfileView{
				MaxPoints:         p.MaxPoints,
				MaxContours:       p.MaxContours,
				MaxComponentDepth: p.MaxComponentDepth,
				MaxStackElements:  p.MaxStackElements,
			}
		}
	}
	if t := m.Name; t != nil {
		v.Name = &nameView{Format: t.Format, Family: m.FamilyName()}
		for _, nr := range t.Records {
			v.Name.Records = append(v.Name.Records, nameRecordView{
				PlatformID: nr.PlatformID,
				EncodingID: nr.EncodingID,
				LanguageID: nr.LanguageID,
				NameID:     nr.NameID,
				Value:      nr.String(),
			})
		}
	}
	if t := m.Post; t != nil {
		v.Post = &postView{
			Version:            t.Version.Version(),
			ItalicAngle:        t.ItalicAngle.Float64(),
			UnderlinePosition:  int16(t.UnderlinePosition),
			UnderlineThickness: int16(t.UnderlineThickness),
			FixedPitch:         t.FixedPitch(),
		}
	}
	if t := m.OS2; t != nil {
		v.OS2 = &os2View{
			Version:       t.Version,
			WeightClass:   t.UsWeightClass,
			WidthClass:    t.UsWidthClass,
			FsType:        t.FsType,
			VendorID:      t.AchVendID.String(),
			TypoAscender:  t.STypoAscender,
			TypoDescender: t.STypoDescender,
			TypoLineGap:   t.STypoLineGap,
			WinAscent:     t.UsWinAscent,
			WinDescent:    t.UsWinDescent,
			XHeight:       t.SxHeight,
			CapHeight:     t.SCapHeight,
		}
	}

	for _, d := range m.Diagnostics {
		v.Diagnostics = append(v.Diagnostics, diagnosticView{
			Table:    d.Table,
			Severity: d.Severity.String(),
			Message:  d.Message,
		})
	}
	return v
}
