// SPDX-License-Identifier: MIT

package worksheet

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matrixlab/matrix"
)

// LastName is the name under which the latest matrix result is kept.
const LastName = "_"

// Document is a parsed worksheet.
type Document struct {
	Matrices map[string][][]float64 `yaml:"matrices"`
	Steps    []Step                 `yaml:"steps"`
}

// Step is a single operation of a worksheet.
type Step struct {
	Op     string   `yaml:"op"`
	Args   []string `yaml:"args,omitempty"`
	Scalar *float64 `yaml:"scalar,omitempty"` // scale
	Axis   string   `yaml:"axis,omitempty"`   // sum, mean
	Rows   int      `yaml:"rows,omitempty"`   // reshape, identity, random
	Cols   int      `yaml:"cols,omitempty"`   // reshape, random
	Low    float64  `yaml:"low,omitempty"`    // random
	High   float64  `yaml:"high,omitempty"`   // random
	Save   string   `yaml:"save,omitempty"`
}

// Parse decodes a worksheet from r. Unknown fields are rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	doc := &Document{}
	if err := dec.Decode(doc); err != nil {
		if err == io.EOF {
			return doc, nil
		}
		return nil, fmt.Errorf("worksheet: decode: %w", err)
	}
	if _, ok := doc.Matrices[LastName]; ok {
		return nil, fmt.Errorf("matrix %q: %w", LastName, ErrReservedName)
	}

	return doc, nil
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(b []byte) (*Document, error) {
	return Parse(bytes.NewReader(b))
}

// ParseFile reads and decodes the worksheet at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Env builds the named matrices of d. Names are processed in sorted order so
// the first reported error is stable.
func (d *Document) Env() (map[string]*matrix.Dense, error) {
	names := make([]string, 0, len(d.Matrices))
	for name := range d.Matrices {
		names = append(names, name)
	}
	sort.Strings(names)

	env := make(map[string]*matrix.Dense, len(names))
	for _, name := range names {
		m, err := matrix.FromRows(d.Matrices[name])
		if err != nil {
			return nil, fmt.Errorf("matrix %q: %w", name, err)
		}
		env[name] = m
	}

	return env, nil
}
