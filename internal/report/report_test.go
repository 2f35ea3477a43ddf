/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package report

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"

	"github.com/unidoc/unitype"
)

func decodeGoRegular(t *testing.T) *unitype.FontMetadata {
	t.Helper()
	m, err := unitype.Decode(goregular.TTF)
	require.NoError(t, err)
	require.NotNil(t, m.Head)
	require.NotNil(t, m.Name)
	return m
}

// truncatedFont has a single head entry pointing past the end of the data.
func truncatedFont() []byte {
	data := make([]byte, 28)
	binary.BigEndian.PutUint32(data[0:], unitype.SfntVersionTrueType)
	binary.BigEndian.PutUint16(data[4:], 1)
	binary.BigEndian.PutUint16(data[6:], 16)
	copy(data[12:], "head")
	binary.BigEndian.PutUint32(data[20:], 28)
	binary.BigEndian.PutUint32(data[24:], 54)
	return data
}

func TestWriteText(t *testing.T) {
	m := decodeGoRegular(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, FormatText))
	out := buf.String()

	assert.Contains(t, out, "TrueType")
	assert.Regexp(t, fmt.Sprintf(`tables:\s+%d\n`, len(m.Directory.Entries)), out)
	assert.Regexp(t, fmt.Sprintf(`unitsPerEm:\s+%d\n`, m.Head.UnitsPerEm), out)
	assert.Regexp(t, fmt.Sprintf(`numGlyphs:\s+%d\n`, m.Maxp.NumGlyphs), out)
	assert.Regexp(t, `family:\s+`+regexp.QuoteMeta(m.FamilyName())+`\n`, out)
	assert.NotContains(t, out, "diagnostics:")
}

func TestWriteTextDiagnostics(t *testing.T) {
	m, err := unitype.Decode(truncatedFont())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, m))
	out := buf.String()
	assert.Contains(t, out, "diagnostics:")
	assert.Contains(t, out, "error: head: read out of bounds")
	assert.NotContains(t, out, "unitsPerEm")
}

func TestWriteYAML(t *testing.T) {
	m := decodeGoRegular(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, FormatYAML))

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "TrueType", doc["sfntVersion"])
	assert.Len(t, doc["tables"], len(m.Directory.Entries))

	head, ok := doc["head"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, int(m.Head.UnitsPerEm), head["unitsPerEm"])

	name, ok := doc["name"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, m.FamilyName(), name["family"])
	assert.Len(t, name["records"], len(m.Name.Records))

	assert.NotContains(t, doc, "diagnostics")
}

func TestWriteYAMLDiagnostics(t *testing.T) {
	m, err := unitype.Decode(truncatedFont())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, m))

	var doc struct {
		Head        interface{}      `yaml:"head"`
		Diagnostics []diagnosticView `yaml:"diagnostics"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Nil(t, doc.Head)
	require.Len(t, doc.Diagnostics, 1)
	assert.Equal(t, "head", doc.Diagnostics[0].Table)
	assert.Equal(t, "error", doc.Diagnostics[0].Severity)
}

func TestWriteUnknownFormat(t *testing.T) {
	m := decodeGoRegular(t)
	err := Write(&bytes.Buffer{}, m, "xml")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

// maxpFont is a font holding only the maxp table `maxp`.
func maxpFont(maxp []byte) []byte {
	data := make([]byte, 28, 28+len(maxp))
	binary.BigEndian.PutUint32(data[0:], unitype.SfntVersionTrueType)
	binary.BigEndian.PutUint16(data[4:], 1)
	binary.BigEndian.PutUint16(data[6:], 16)
	copy(data[12:], "maxp")
	binary.BigEndian.PutUint32(data[20:], 28)
	binary.BigEndian.PutUint32(data[24:], uint32(len(maxp)))
	return append(data, maxp...)
}

func TestMaxpProfileZeroValues(t *testing.T) {
	v10 := make([]byte, 32)
	binary.BigEndian.PutUint32(v10[0:], 0x00010000)
	binary.BigEndian.PutUint16(v10[4:], 4)
	binary.BigEndian.PutUint16(v10[6:], 10)  // maxPoints
	binary.BigEndian.PutUint16(v10[8:], 2)   // maxContours
	binary.BigEndian.PutUint16(v10[24:], 64) // maxStackElements

	v05 := make([]byte, 6)
	binary.BigEndian.PutUint32(v05[0:], 0x00005000)
	binary.BigEndian.PutUint16(v05[4:], 4)

	testcases := []struct {
		name       string
		maxp       []byte
		hasProfile bool
	}{
		{"version 1.0", v10, true},
		{"version 0.5", v05, false},
	}

	for _, tcase := range testcases {
		t.Run(tcase.name, func(t *testing.T) {
			m, err := unitype.Decode(maxpFont(tcase.maxp))
			require.NoError(t, err)
			require.NotNil(t, m.Maxp)

			var buf bytes.Buffer
			require.NoError(t, WriteYAML(&buf, m))
			var doc struct {
				Maxp struct {
					NumGlyphs int                    `yaml:"numGlyphs"`
					Profile   map[string]interface{} `yaml:"profile"`
				} `yaml:"maxp"`
			}
			require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
			assert.Equal(t, 4, doc.Maxp.NumGlyphs)

			buf.Reset()
			require.NoError(t, WriteText(&buf, m))
			text := buf.String()

			if !tcase.hasProfile {
				assert.Nil(t, doc.Maxp.Profile)
				assert.NotContains(t, text, "maxComponentDepth")
				return
			}
			assert.Equal(t, map[string]interface{}{
				"maxPoints":         10,
				"maxContours":       2,
				"maxComponentDepth": 0,
				"maxStackElements":  64,
			}, doc.Maxp.Profile)
			assert.Regexp(t, `maxComponentDepth:\s+0\n`, text)
			assert.Regexp(t, `maxStackElements:\s+64\n`, text)
		})
	}
}
