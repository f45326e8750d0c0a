package csvexcel

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/models"
	"gopkg.in/yaml.v3"
)

// Profile is a saved set of conversion options loaded from YAML.
// Nil fields leave the corresponding option untouched.
type Profile struct {
	Delimiter *string `yaml:"delimiter"`
	Encoding  *string `yaml:"encoding"`
	Sheet     *string `yaml:"sheet"`
	Header    *bool   `yaml:"header"`
	Index     *bool   `yaml:"index"`
	Transpose *bool   `yaml:"transpose"`
}

// LoadProfile reads a profile file. Unknown keys are rejected.
//
// Example:
//
//	delimiter: ";"
//	encoding: latin-1
//	sheet: Q1
//	header: true
//	index: false
//	transpose: true
func LoadProfile(path string) (Profile, error) {
	var p Profile

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p, models.NewKindError(ErrInputNotFound, err)
		}
		return p, models.NewKindError(ErrIO, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, models.NewKindError(ErrInvalidOptions, fmt.Errorf("profile %s: %w", path, err))
	}
	return p, nil
}

// Apply overlays the profile's set fields onto opts.
func (p Profile) Apply(opts Options) (Options, error) {
	if p.Delimiter != nil {
		d, err := ParseDelimiter(*p.Delimiter)
		if err != nil {
			return opts, err
		}
		opts.Delimiter = d
	}
	if p.Encoding != nil {
		opts.Encoding = *p.Encoding
	}
	if p.Sheet != nil {
		opts.Sheet = ParseSheetSelector(*p.Sheet)
	}
	if p.Header != nil {
		opts.HasHeader = *p.Header
	}
	if p.Index != nil {
		opts.IncludeIndex = *p.Index
	}
	if p.Transpose != nil {
		opts.Transpose = *p.Transpose
	}
	return opts, nil
}
