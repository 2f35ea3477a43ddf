/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package unitype

import (
	"encoding/binary"

	"github.com/unidoc/unitype/common"
)

// byteCursor is a big-endian reader over a window of the font data. Offsets passed to seek
// and slice are relative to the start of the window. Every read is checked against the
// window before any byte is touched, a failed read or seek leaves the position unchanged.
type byteCursor struct {
	data  []byte // the window, data[0] is at file offset `base`.
	base  int64
	pos   int
	table string // table being read, for error reporting.
}

// newByteCursor returns a cursor over the entire font `data`.
func newByteCursor(data []byte) *byteCursor {
	return &byteCursor{data: data}
}

// offset returns the current position relative to the window.
func (r *byteCursor) offset() int {
	return r.pos
}

// fileOffset returns the current absolute position in the font data.
func (r *byteCursor) fileOffset() int64 {
	return r.base + int64(r.pos)
}

// len returns the size of the window.
func (r *byteCursor) len() int {
	return len(r.data)
}

func (r *byteCursor) outOfBounds(off int64, n int64) error {
	return newDecodeError(KindOutOfBounds, r.table, r.base+off,
		"need %d bytes at %d, window is %d bytes", n, off, len(r.data))
}

// check validates that `n` bytes are available at `off`.
func (r *byteCursor) check(off int64, n int64) error {
	if off < 0 || n < 0 || off+n > int64(len(r.data)) {
		return r.outOfBounds(off, n)
	}
	return nil
}

// seek moves the cursor to `off`. Seeking to the end of the window is allowed.
func (r *byteCursor) seek(off int64) error {
	if err := r.check(off, 0); err != nil {
		return err
	}
	r.pos = int(off)
	return nil
}

// skip advances the cursor by `n` bytes.
func (r *byteCursor) skip(n int) error {
	return r.seek(int64(r.pos) + int64(n))
}

// slice returns a new cursor over `length` bytes at `off`, for reading `table`.
func (r *byteCursor) slice(off, length int64, table string) (*byteCursor, error) {
	if err := r.check(off, length); err != nil {
		return nil, withTable(err, table)
	}
	return &byteCursor{
		data:  r.data[off : off+length],
		base:  r.base + off,
		table: table,
	}, nil
}

// next returns the next `n` bytes and advances the cursor. The result aliases the font data.
func (r *byteCursor) next(n int) ([]byte, error) {
	if err := r.check(int64(r.pos), int64(n)); err != nil {
		return nil, err
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// readBytes reads `n` bytes into a newly allocated slice.
func (r *byteCursor) readBytes(n int) ([]byte, error) {
	b, err := r.next(n)
	if err != nil {
		return nil, err
	}
	dup := make([]byte, n)
	copy(dup, b)
	return dup, nil
}

// read reads a series of fields from `r`.
func (r *byteCursor) read(fields ...interface{}) error {
	for _, f := range fields {
		var err error
		switch t := f.(type) {
		case *uint8:
			*t, err = r.readUint8()
		case *int8:
			*t, err = r.readInt8()
		case *uint16:
			*t, err = r.readUint16()
		case *int16:
			*t, err = r.readInt16()
		case *uint32:
			*t, err = r.readUint32()
		case *int32:
			*t, err = r.readInt32()
		case *int64:
			*t, err = r.readInt64()
		case *Fixed:
			*t, err = r.readFixed()
		case *FWord:
			*t, err = r.readFword()
		case *UFWord:
			*t, err = r.readUfword()
		case *LongDateTime:
			*t, err = r.readLongdatetime()
		case *Tag:
			*t, err = r.readTag()
		case *offset16:
			*t, err = r.readOffset16()
		case *offset32:
			*t, err = r.readOffset32()
		default:
			common.Log.Debug("Unsupported type: %T (read)", t)
			return errTypeCheck
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *byteCursor) readUint8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *byteCursor) readInt8() (int8, error) {
	v, err := r.readUint8()
	return int8(v), err
}

func (r *byteCursor) readUint16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *byteCursor) readInt16() (int16, error) {
	v, err := r.readUint16()
	return int16(v), err
}

func (r *byteCursor) readUint32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *byteCursor) readInt32() (int32, error) {
	v, err := r.readUint32()
	return int32(v), err
}

func (r *byteCursor) readInt64() (int64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func (r *byteCursor) readFixed() (Fixed, error) {
	v, err := r.readInt32()
	return Fixed(v), err
}

func (r *byteCursor) readFword() (FWord, error) {
	v, err := r.readInt16()
	return FWord(v), err
}

func (r *byteCursor) readUfword() (UFWord, error) {
	v, err := r.readUint16()
	return UFWord(v), err
}

func (r *byteCursor) readLongdatetime() (LongDateTime, error) {
	v, err := r.readInt64()
	return LongDateTime(v), err
}

func (r *byteCursor) readTag() (Tag, error) {
	var t Tag
	b, err := r.next(4)
	if err != nil {
		return t, err
	}
	copy(t[:], b)
	return t, nil
}

func (r *byteCursor) readOffset16() (offset16, error) {
	v, err := r.readUint16()
	return offset16(v), err
}

func (r *byteCursor) readOffset32() (offset32, error) {
	v, err := r.readUint32()
	return offset32(v), err
}
