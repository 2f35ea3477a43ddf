/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/unidoc/unitype"
)

// WriteYAML writes `m` to `w` as a YAML document.
func WriteYAML(w io.Writer, m *unitype.FontMetadata) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newFontView(m)); err != nil {
		return err
	}
	return enc.Close()
}
