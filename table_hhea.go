/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package unitype

// HheaTable represents the horizontal header table (hhea).
// This table contains information for horizontal layout.
// https://docs.microsoft.com/en-us/typography/opentype/spec/hhea
type HheaTable struct {
	MajorVersion        uint16
	MinorVersion        uint16
	Ascender            FWord
	Descender           FWord
	LineGap             FWord
	AdvanceWidthMax     UFWord
	MinLeftSideBearing  FWord
	MinRightSideBearing FWord
	XMaxExtent          FWord
	CaretSlopeRise      int16
	CaretSlopeRun       int16
	CaretOffset         int16
	MetricDataFormat    int16
	NumberOfHMetrics    uint16 // Number of hMetric entries in 'hmtx' table.
}

func parseHhea(r *byteCursor, rep *reporter) (*HheaTable, error) {
	t := &HheaTable{}
	err := r.read(&t.MajorVersion, &t.MinorVersion)
	if err != nil {
		return nil, err
	}
	if t.MajorVersion != 1 {
		rep.warn("unexpected version %d.%d", t.MajorVersion, t.MinorVersion)
	}

	err = r.read(&t.Ascender, &t.Descender, &t.LineGap)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.AdvanceWidthMax, &t.MinLeftSideBearing, &t.MinRightSideBearing, &t.XMaxExtent)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.CaretSlopeRise, &t.CaretSlopeRun, &t.CaretOffset)
	if err != nil {
		return nil, err
	}

	// Skip over reserved bytes.
	err = r.skip(4 * 2)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.MetricDataFormat, &t.NumberOfHMetrics)
	if err != nil {
		return nil, err
	}
	if t.NumberOfHMetrics == 0 {
		rep.warn("numberOfHMetrics is zero")
	}
	return t, nil
}
