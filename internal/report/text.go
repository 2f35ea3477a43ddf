/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/unidoc/unitype"
)

// WriteText writes a human readable report of `m` to `w`.
func WriteText(w io.Writer, m *unitype.FontMetadata) error {
	v := newFontView(m)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "sfnt version:\t%s\n", v.SfntVersion)
	fmt.Fprintf(tw, "tables:\t%d\n", len(v.Tables))
	for _, t := range v.Tables {
		fmt.Fprintf(tw, "  %s\toffset %d\tlength %d\tchecksum %s\n", t.Tag, t.Offset, t.Length, t.Checksum)
	}

	if h := v.Head; h != nil {
		fmt.Fprintln(tw, "head:")
		fmt.Fprintf(tw, "  version:\t%s\n", h.Version)
		fmt.Fprintf(tw, "  fontRevision:\t%g\n", h.FontRevision)
		fmt.Fprintf(tw, "  unitsPerEm:\t%d\n", h.UnitsPerEm)
		fmt.Fprintf(tw, "  created:\t%s\n", h.Created)
		fmt.Fprintf(tw, "  modified:\t%s\n", h.Modified)
		fmt.Fprintf(tw, "  bbox:\t%d %d %d %d\n", h.XMin, h.YMin, h.XMax, h.YMax)
		fmt.Fprintf(tw, "  macStyle:\t0x%04X (bold %t, italic %t)\n", h.MacStyle, h.Bold, h.Italic)
		fmt.Fprintf(tw, "  longOffsets:\t%t\n", h.LongOffsets)
	}
	if h := v.Hhea; h != nil {
		fmt.Fprintln(tw, "hhea:")
		fmt.Fprintf(tw, "  ascender:\t%d\n", h.Ascender)
		fmt.Fprintf(tw, "  descender:\t%d\n", h.Descender)
		fmt.Fprintf(tw, "  lineGap:\t%d\n", h.LineGap)
		fmt.Fprintf(tw, "  advanceWidthMax:\t%d\n", h.AdvanceWidthMax)
		fmt.Fprintf(tw, "  numberOfHMetrics:\t%d\n", h.NumberOfHMetrics)
	}
	if p := v.Maxp; p != nil {
		fmt.Fprintln(tw, "maxp:")
		fmt.Fprintf(tw, "  version:\t%s\n", p.Version)
		fmt.Fprintf(tw, "  numGlyphs:\t%d\n", p.NumGlyphs)
		if pr := p.Profile; pr != nil {
			fmt.Fprintf(tw, "  maxPoints:\t%d\n", pr.MaxPoints)
			fmt.Fprintf(tw, "  maxContours:\t%d\n", pr.MaxContours)
			fmt.Fprintf(tw, "  maxComponentDepth:\t%d\n", pr.MaxComponentDepth)
			fmt.Fprintf(tw, "  maxStackElements:\t%d\n", pr.MaxStackElements)
		}
	}
	if n := v.Name; n != nil {
		fmt.Fprintln(tw, "name:")
		fmt.Fprintf(tw, "  format:\t%d\n", n.Format)
		fmt.Fprintf(tw, "  family:\t%s\n", n.Family)
		for _, nr := range n.Records {
			fmt.Fprintf(tw, "  %d/%d/0x%04X\t%d\t%s\n", nr.PlatformID, nr.EncodingID, nr.LanguageID, nr.NameID, nr.Value)
		}
	}
	if p := v.Post; p != nil {
		fmt.Fprintln(tw, "post:")
		fmt.Fprintf(tw, "  version:\t%s\n", p.Version)
		fmt.Fprintf(tw, "  italicAngle:\t%g\n", p.ItalicAngle)
		fmt.Fprintf(tw, "  underline:\tposition %d, thickness %d\n", p.UnderlinePosition, p.UnderlineThickness)
		fmt.Fprintf(tw, "  fixedPitch:\t%t\n", p.FixedPitch)
	}
	if o := v.OS2; o != nil {
		fmt.Fprintln(tw, "OS/2:")
		fmt.Fprintf(tw, "  version:\t%d\n", o.Version)
		fmt.Fprintf(tw, "  weightClass:\t%d\n", o.WeightClass)
		fmt.Fprintf(tw, "  widthClass:\t%d\n", o.WidthClass)
		fmt.Fprintf(tw, "  fsType:\t0x%04X\n", o.FsType)
		fmt.Fprintf(tw, "  vendorID:\t%s\n", o.VendorID)
		fmt.Fprintf(tw, "  typo metrics:\t%d %d %d\n", o.TypoAscender, o.TypoDescender, o.TypoLineGap)
		fmt.Fprintf(tw, "  win metrics:\t%d %d\n", o.WinAscent, o.WinDescent)
	}

	if len(v.Diagnostics) > 0 {
		fmt.Fprintln(tw, "diagnostics:")
		for _, d := range m.Diagnostics {
			fmt.Fprintf(tw, "  %s\n", d)
		}
	}
	return tw.Flush()
}
