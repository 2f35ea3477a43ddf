/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package unitype

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/unidoc/unitype/common"
)

// Severity tells whether a Diagnostic cost a table (SeverityError) or is informational.
type Severity int

// Diagnostic severities.
const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is a problem found while decoding. Table is empty for problems in the sfnt
// header or directory. Err is set for errors.
type Diagnostic struct {
	Table    string
	Severity Severity
	Message  string
	Err      error
}

func (d Diagnostic) String() string {
	if d.Table == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Table, d.Message)
}

// reporter collects the diagnostics of one table decode.
type reporter struct {
	table string
	diags []Diagnostic
}

func (rep *reporter) warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	common.Log.Debug("%s: %s", rep.table, msg)
	rep.diags = append(rep.diags, Diagnostic{
		Table:    rep.table,
		Severity: SeverityWarning,
		Message:  msg,
	})
}

func (rep *reporter) fail(err error) {
	common.Log.Debug("%s: %v", rep.table, err)
	rep.diags = append(rep.diags, Diagnostic{
		Table:    rep.table,
		Severity: SeverityError,
		Message:  err.Error(),
		Err:      err,
	})
}

// FontMetadata is the decoded metadata of a font. A table pointer is nil if the font
// has no such table or if the table failed to decode, the latter having an error in
// Diagnostics.
type FontMetadata struct {
	SfntVersion uint32
	Directory   *TableDirectory

	Head *HeadTable
	Hhea *HheaTable
	Maxp *MaxpTable
	Name *NameTable
	Post *PostTable
	OS2  *OS2Table

	Diagnostics []Diagnostic
}

// TableError returns the error that prevented table `tableName` from being decoded, or nil.
func (m *FontMetadata) TableError(tableName string) error {
	for _, d := range m.Diagnostics {
		if d.Severity == SeverityError && d.Table == tableName {
			return d.Err
		}
	}
	return nil
}

// Errors returns the diagnostics that cost a table.
func (m *FontMetadata) Errors() []Diagnostic {
	var res []Diagnostic
	for _, d := range m.Diagnostics {
		if d.Severity == SeverityError {
			res = append(res, d)
		}
	}
	return res
}

// FamilyName returns the font family name from the name table.
func (m *FontMetadata) FamilyName() string {
	return m.Name.GetNameByID(NameFamily)
}

// DecodeOptions controls DecodeWithOptions.
type DecodeOptions struct {
	// Concurrent decodes the tables on separate goroutines. The result is the same as
	// for sequential decoding.
	Concurrent bool

	// VerifyChecksums adds a warning for every table whose checksum does not match its
	// directory entry and for a wrong head checkSumAdjustment.
	VerifyChecksums bool
}

// tableDecoder decodes one kind of table into its slot of the metadata. `r` covers exactly
// the table, `file` the whole font.
type tableDecoder func(r, file *byteCursor, rep *reporter, m *FontMetadata) error

var tableDecoders = map[Tag]tableDecoder{
	MakeTag("head"): func(r, _ *byteCursor, rep *reporter, m *FontMetadata) error {
		t, err := parseHead(r, rep)
		if err == nil {
			m.Head = t
		}
		return err
	},
	MakeTag("hhea"): func(r, _ *byteCursor, rep *reporter, m *FontMetadata) error {
		t, err := parseHhea(r, rep)
		if err == nil {
			m.Hhea = t
		}
		return err
	},
	MakeTag("maxp"): func(r, _ *byteCursor, rep *reporter, m *FontMetadata) error {
		t, err := parseMaxp(r, rep)
		if err == nil {
			m.Maxp = t
		}
		return err
	},
	MakeTag("name"): func(r, file *byteCursor, rep *reporter, m *FontMetadata) error {
		t, err := parseNameTable(r, file, rep)
		if err == nil {
			m.Name = t
		}
		return err
	},
	MakeTag("post"): func(r, _ *byteCursor, rep *reporter, m *FontMetadata) error {
		t, err := parsePost(r, rep)
		if err == nil {
			m.Post = t
		}
		return err
	},
	MakeTag("OS/2"): func(r, _ *byteCursor, rep *reporter, m *FontMetadata) error {
		t, err := parseOS2Table(r, rep)
		if err == nil {
			m.OS2 = t
		}
		return err
	},
}

// Decode decodes the table directory and metadata tables of the font in `data`.
// `data` is not modified and must not be modified while Decode runs. The returned
// metadata shares no memory with `data`.
//
// An error is returned only if the sfnt header or table directory cannot be decoded.
// Problems with individual tables are recorded in the Diagnostics of the result.
func Decode(data []byte) (*FontMetadata, error) {
	return DecodeWithOptions(data, DecodeOptions{})
}

// DecodeWithOptions is Decode with options.
func DecodeWithOptions(data []byte, opts DecodeOptions) (*FontMetadata, error) {
	file := newByteCursor(data)
	dir, err := parseTableDirectory(file)
	if err != nil {
		return nil, err
	}

	m := &FontMetadata{
		SfntVersion: dir.SfntVersion,
		Directory:   dir,
	}
	for _, w := range dir.Warnings {
		m.Diagnostics = append(m.Diagnostics, Diagnostic{Severity: SeverityWarning, Message: w})
	}

	type job struct {
		decode tableDecoder
		entry  DirectoryEntry
		rep    *reporter
	}
	var jobs []*job
	for i, e := range dir.Entries {
		decode, known := tableDecoders[e.Tag]
		if !known {
			common.Log.Trace("Skipping table '%s'", e.Tag)
			continue
		}
		if dir.index[e.Tag] != i {
			// Duplicate, already reported by the directory.
			continue
		}
		jobs = append(jobs, &job{decode: decode, entry: e, rep: &reporter{table: e.Tag.String()}})
	}

	run := func(j *job) {
		r, err := file.slice(int64(j.entry.Offset), int64(j.entry.Length), j.rep.table)
		if err == nil {
			err = j.decode(r, file, j.rep, m)
		}
		if err != nil {
			j.rep.fail(tableFailure(err, j.rep.table))
		}
	}

	if opts.Concurrent {
		// Every job writes a different field of m and its own reporter.
		var g errgroup.Group
		for _, j := range jobs {
			j := j
			g.Go(func() error {
				run(j)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for _, j := range jobs {
			run(j)
		}
	}

	for _, j := range jobs {
		m.Diagnostics = append(m.Diagnostics, j.rep.diags...)
	}

	if opts.VerifyChecksums {
		verifyChecksums(data, dir, func(err error) {
			d := Diagnostic{Severity: SeverityWarning, Message: err.Error(), Err: err}
			var derr *DecodeError
			if errors.As(err, &derr) {
				d.Table = derr.Table
			}
			m.Diagnostics = append(m.Diagnostics, d)
		})
	}

	return m, nil
}

// tableFailure attributes `err` to `table`. Errors other than DecodeErrors cannot come
// from well-formed decoder code and are reported as corrupt table errors.
func tableFailure(err error, table string) error {
	var derr *DecodeError
	if errors.As(err, &derr) {
		return withTable(err, table)
	}
	return &DecodeError{Kind: KindCorruptTable, Table: table, Offset: -1, Reason: err.Error()}
}
