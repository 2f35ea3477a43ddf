/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package unitype

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned when the sfnt version is neither 0x00010000 nor 'OTTO'.
	ErrUnsupportedFormat = errors.New("unsupported font format")
	// ErrMalformedDirectory is returned when the sfnt header or table directory cannot be read.
	ErrMalformedDirectory = errors.New("malformed table directory")
	// ErrOutOfBounds is returned when a read would pass the end of its table or of the buffer.
	ErrOutOfBounds = errors.New("read out of bounds")
	// ErrCorruptTable is returned when a table's content fails a consistency check.
	ErrCorruptTable = errors.New("corrupt table")

	errTypeCheck = errors.New("type check error")
)

// ErrorKind classifies a DecodeError.
type ErrorKind int

// Kinds of decoding errors.
const (
	KindUnsupportedFormat ErrorKind = iota + 1
	KindMalformedDirectory
	KindOutOfBounds
	KindCorruptTable
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnsupportedFormat:
		return "UnsupportedFormat"
	case KindMalformedDirectory:
		return "MalformedDirectory"
	case KindOutOfBounds:
		return "OutOfBounds"
	case KindCorruptTable:
		return "CorruptTable"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindUnsupportedFormat:
		return ErrUnsupportedFormat
	case KindMalformedDirectory:
		return ErrMalformedDirectory
	case KindOutOfBounds:
		return ErrOutOfBounds
	case KindCorruptTable:
		return ErrCorruptTable
	}
	return nil
}

// DecodeError describes a failure to decode a font or one of its tables.
// Offset is the absolute file offset at which the problem was detected, or -1 if unknown.
type DecodeError struct {
	Kind   ErrorKind
	Table  string // empty for errors in the sfnt header or directory.
	Offset int64
	Reason string
}

func (e *DecodeError) Error() string {
	msg := e.Kind.sentinel().Error()
	if e.Table != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Table)
	}
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s at offset %d", msg, e.Offset)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is reports whether `target` is the sentinel error of the kind of `e`, such that
// errors.Is(err, ErrCorruptTable) holds for a corrupt table error.
func (e *DecodeError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func newDecodeError(kind ErrorKind, table string, offset int64, format string, args ...interface{}) *DecodeError {
	return &DecodeError{
		Kind:   kind,
		Table:  table,
		Offset: offset,
		Reason: fmt.Sprintf(format, args...),
	}
}

// corruptTable returns a CorruptTable error for `table`.
func corruptTable(table string, offset int64, format string, args ...interface{}) *DecodeError {
	return newDecodeError(KindCorruptTable, table, offset, format, args...)
}

// withTable attributes `err` to `table` if it is a DecodeError without a table.
func withTable(err error, table string) error {
	var derr *DecodeError
	if errors.As(err, &derr) && derr.Table == "" {
		dup := *derr
		dup.Table = table
		return &dup
	}
	return err
}
