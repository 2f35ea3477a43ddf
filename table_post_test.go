/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package unitype

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostTable(t *testing.T) {
	m, err := Decode(testFont())
	require.NoError(t, err)
	require.NotNil(t, m.Post)

	expected := &PostTable{
		Version:            0x00030000,
		ItalicAngle:        -12 * 65536,
		UnderlinePosition:  -100,
		UnderlineThickness: 50,
		IsFixedPitch:       1,
	}
	assert.Equal(t, expected, m.Post)
	assert.True(t, m.Post.FixedPitch())
	assert.Equal(t, -12.0, m.Post.ItalicAngle.Float64())
}

func TestPostVersions(t *testing.T) {
	// Version 2.0 glyph name data follows the header and is not decoded.
	v2 := (&byteWriter{}).write(postData(0x00020000), uint16(2), uint16(0), uint16(258), uint8(1), []byte("a")).bytes()

	testcases := []struct {
		name     string
		data     []byte
		version  Fixed
		warnings int
		err      error
	}{
		{"1.0", postData(0x00010000), 0x00010000, 0, nil},
		{"2.0 with glyph names", v2, 0x00020000, 0, nil},
		{"2.5", postData(0x00025000), 0x00025000, 0, nil},
		{"4.0", postData(0x00040000), 0x00040000, 0, nil},
		{"unknown", postData(0x00050000), 0x00050000, 1, nil},
		{"truncated", postData(0x00030000)[:20], 0, 0, ErrOutOfBounds},
	}

	for _, tcase := range testcases {
		t.Run(tcase.name, func(t *testing.T) {
			m, err := Decode(buildFont(SfntVersionTrueType, testTable{"post", tcase.data}))
			require.NoError(t, err)
			if tcase.err != nil {
				assert.Nil(t, m.Post)
				assert.True(t, errors.Is(m.TableError("post"), tcase.err))
				return
			}
			require.NotNil(t, m.Post)
			assert.Equal(t, tcase.version, m.Post.Version)
			assert.Len(t, m.Diagnostics, tcase.warnings)
		})
	}
}
