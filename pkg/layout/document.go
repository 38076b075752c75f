package layout

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridster/pkg/errors"
	"github.com/matzehuels/gridster/pkg/grid"
)

// =============================================================================
// Document
// =============================================================================

// Document is the serialized form of a grid: configuration overrides and
// the items to place, in placement order.
type Document struct {
	Grid  grid.Overrides `json:"grid" toml:"grid"`
	Items []ItemSpec     `json:"items" toml:"items"`
}

// ItemSpec describes one item. Sizes of 0 select the grid defaults. An item
// is pinned only when both Row and Col are set; otherwise it is
// auto-placed.
type ItemSpec struct {
	ID    string `json:"id,omitempty" toml:"id,omitempty"`
	Row   *int   `json:"row,omitempty" toml:"row,omitempty"`
	Col   *int   `json:"col,omitempty" toml:"col,omitempty"`
	SizeX int    `json:"size_x,omitempty" toml:"size_x,omitempty"`
	SizeY int    `json:"size_y,omitempty" toml:"size_y,omitempty"`

	MinSizeX int `json:"min_size_x,omitempty" toml:"min_size_x,omitempty"`
	MinSizeY int `json:"min_size_y,omitempty" toml:"min_size_y,omitempty"`
	MaxSizeX int `json:"max_size_x,omitempty" toml:"max_size_x,omitempty"`
	MaxSizeY int `json:"max_size_y,omitempty" toml:"max_size_y,omitempty"`
}

// Pinned reports whether both Row and Col are set.
func (s ItemSpec) Pinned() bool { return s.Row != nil && s.Col != nil }

// =============================================================================
// Reading
// =============================================================================

// ReadJSON decodes a JSON document from r. Unknown keys are an error.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json layout")
	}
	return doc, nil
}

// ReadTOML decodes a TOML document from r. Unknown keys are an error.
// ReadTOML does not close r.
func ReadTOML(r io.Reader) (Document, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml layout")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Document{}, errors.New(errors.ErrCodeInvalidFormat, "unknown keys in toml layout: %s", strings.Join(keys, ", "))
	}
	return doc, nil
}

// ReadFile validates path, opens it and decodes it according to its
// extension.
func ReadFile(path string) (Document, error) {
	if err := errors.ValidateLayoutPath(path); err != nil {
		return Document{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return Document{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	if isTOML(path) {
		return ReadTOML(f)
	}
	return ReadJSON(f)
}

// =============================================================================
// Writing
// =============================================================================

// WriteJSON encodes doc as indented JSON.
func WriteJSON(doc Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode json layout")
	}
	return nil
}

// WriteTOML encodes doc as TOML.
func WriteTOML(doc Document, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode toml layout")
	}
	return nil
}

// WriteFile writes doc to path in the format its extension names.
func WriteFile(doc Document, path string) error {
	if err := errors.ValidateLayoutPath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()

	if isTOML(path) {
		return WriteTOML(doc, f)
	}
	return WriteJSON(doc, f)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
