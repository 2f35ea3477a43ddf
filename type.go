/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package unitype

import (
	"fmt"
	"strings"
	"time"
)

/*
Types in truetype fonts:
https://docs.microsoft.com/en-us/typography/opentype/spec/otff

Data Type	Description
--------------------------------------------------------
uint8	  8-bit unsigned integer.
int8	  8-bit signed integer.
uint16	  16-bit unsigned integer.
int16	  16-bit signed integer.
uint32	  32-bit unsigned integer.
int32	  32-bit signed integer.
Fixed	  32-bit signed fixed-point number (16.16)
FWORD	  int16 that describes a quantity in font design units.
UFWORD	  uint16 that describes a quantity in font design units.
LONGDATETIME
          Date represented in number of seconds since 12:00 midnight, January 1, 1904.
          The value is represented as a signed 64-bit integer.
Tag	      Array of four uint8s (length = 32 bits) used to identify a table,
          design-variation axis, script, language system, feature, or baseline
Offset16  Short offset to a table, same as uint16, NULL offset = 0x0000
Offset32  Long offset to a table, same as uint32, NULL offset = 0x00000000
*/

// Fixed is a 32-bit signed fixed-point number (16.16).
type Fixed int32

// FWord is a quantity in font design units.
type FWord int16

// UFWord is an unsigned quantity in font design units.
type UFWord uint16

// LongDateTime is the number of seconds since 12:00 midnight, January 1, 1904 (UTC).
type LongDateTime int64

// Tag identifies a table. Tags are compared as raw bytes.
type Tag [4]byte

type offset16 uint16
type offset32 uint32

// String returns the tag with trailing space padding removed.
func (t Tag) String() string {
	return strings.TrimRight(string(t[:]), " ")
}

// MakeTag returns the tag for `s`, truncated or padded with spaces to 4 bytes.
func MakeTag(s string) Tag {
	t := Tag{' ', ' ', ' ', ' '}
	copy(t[:], s)
	return t
}

// Parts returns the integral and fractional portions of `f`.
func (f Fixed) Parts() (int16, uint16) {
	return int16(uint32(f) >> 16), uint16(uint32(f) & 0xFFFF)
}

// Float64 returns `f` as a float64.
func (f Fixed) Float64() float64 {
	return float64(f) / 65536.0
}

// Version formats `f` as a table version number. Table versions put the minor version
// in the top nibble of the fractional part, e.g. 0x00025000 is version 2.5.
func (f Fixed) Version() string {
	major, minor := f.Parts()
	return fmt.Sprintf("%d.%d", major, minor>>12)
}

// zeroTime is 1904-01-01T00:00:00Z as a unix timestamp.
const zeroTime int64 = -2082844800

// Time returns `d` as a time in UTC.
func (d LongDateTime) Time() time.Time {
	return time.Unix(int64(d)+zeroTime, 0).UTC()
}
