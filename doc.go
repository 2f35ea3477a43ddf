/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package unitype decodes the sfnt container used by TrueType and OpenType font files.
// It reads the table directory and the metadata tables head, hhea, maxp, name, post and
// OS/2 from a font held in memory. Outline, character mapping and hinting tables are not
// interpreted.
//
// A malformed table does not prevent the other tables from being decoded: its slot in
// FontMetadata is left nil and the failure is recorded in FontMetadata.Diagnostics.
package unitype
