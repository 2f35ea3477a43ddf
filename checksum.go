/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package unitype

import "encoding/binary"

// checksumMagic is the value the whole-font checksum plus head.checkSumAdjustment adds up to.
const checksumMagic = 0xB1B0AFBA

// calcChecksum returns the sum of `data` read as big-endian uint32 words, with the final
// word padded with zeros.
func calcChecksum(data []byte) uint32 {
	var sum uint32
	n := len(data) &^ 3
	for i := 0; i < n; i += 4 {
		sum += binary.BigEndian.Uint32(data[i:])
	}
	if n < len(data) {
		var last [4]byte
		copy(last[:], data[n:])
		sum += binary.BigEndian.Uint32(last[:])
	}
	return sum
}

// tableChecksum returns the checksum of table `tag`. The checkSumAdjustment field of the
// head table counts as zero.
func tableChecksum(tag Tag, data []byte) uint32 {
	sum := calcChecksum(data)
	if tag == MakeTag("head") && len(data) >= 12 {
		sum -= binary.BigEndian.Uint32(data[8:12])
	}
	return sum
}

// fontChecksum returns the checksum of the whole font with the checkSumAdjustment field at
// `adjustmentOffset` counting as zero.
func fontChecksum(data []byte, adjustmentOffset int64) uint32 {
	if adjustmentOffset < 0 || adjustmentOffset+4 > int64(len(data)) {
		return calcChecksum(data)
	}
	dup := make([]byte, len(data))
	copy(dup, data)
	binary.BigEndian.PutUint32(dup[adjustmentOffset:], 0)
	return calcChecksum(dup)
}
