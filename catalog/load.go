package catalog

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadCatalog decodes a YAML or JSON sequence of catalog records and builds
// a Catalog from them.
//
// Record fields: id, bl_id, ld_color, bl_color, name, offset, dimensions,
// cost, mass, safety, coolness, valid_forward_axes.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var raws []rawEntry
	if err := yaml.NewDecoder(r).Decode(&raws); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("LoadCatalog: %w", err)
	}
	entries := make([]Entry, 0, len(raws))
	for i, raw := range raws {
		e, err := raw.entry()
		if err != nil {
			return nil, fmt.Errorf("LoadCatalog: record %d: %w", i, err)
		}
		entries = append(entries, e)
	}

	return New(entries)
}

// LoadCatalogFile opens path and calls LoadCatalog.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadCatalogFile: %w", err)
	}
	defer f.Close()

	return LoadCatalog(f)
}

// LoadPalette scans a palette XML document and collects the text of every
// ITEMID nested in an ITEM element, at any depth.
//
// Errors: ErrEmptyPalette when no item id is found, or the XML decode error.
func LoadPalette(r io.Reader) (ValidTypeSet, error) {
	var (
		dec    = xml.NewDecoder(r)
		ids    []string
		inItem int
		inID   bool
		text   strings.Builder
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return ValidTypeSet{}, fmt.Errorf("LoadPalette: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Local == "ITEM":
				inItem++
			case t.Name.Local == "ITEMID" && inItem > 0:
				inID = true
				text.Reset()
			}
		case xml.CharData:
			if inID {
				text.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "ITEM":
				inItem--
			case "ITEMID":
				if inID {
					ids = append(ids, strings.TrimSpace(text.String()))
					inID = false
				}
			}
		}
	}
	if len(ids) == 0 {
		return ValidTypeSet{}, ErrEmptyPalette
	}

	return NewValidTypeSet(ids...), nil
}

// LoadPaletteFile opens path and calls LoadPalette.
func LoadPaletteFile(path string) (ValidTypeSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return ValidTypeSet{}, fmt.Errorf("LoadPaletteFile: %w", err)
	}
	defer f.Close()

	return LoadPalette(f)
}
