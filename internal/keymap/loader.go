package keymap

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/frudas24/swipekeys/internal/gesture"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk form of a layout. Each cell maps a direction name
// (tap, n, ne, e, se, s, sw, w, nw) to a one-character string or an integer
// key code.
type Document struct {
	Name string             `json:"name" yaml:"name" toml:"name"`
	Rows [][]map[string]any `json:"rows" yaml:"rows" toml:"rows"`
}

// Load reads a layout file. The format is chosen by extension: .yaml/.yml,
// .toml or .json.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Parse(data, formatFor(path), strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes layout data in the given format ("yaml", "toml" or "json").
// fallbackName is used when the document does not name itself.
func Parse(data []byte, format, fallbackName string) (*Table, error) {
	var doc Document
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidLayout, format)
	}
	if strings.TrimSpace(doc.Name) == "" {
		doc.Name = fallbackName
	}
	return FromDocument(doc)
}

// FromDocument validates a decoded document and builds its table.
func FromDocument(doc Document) (*Table, error) {
	rows := make([][]Cell, len(doc.Rows))
	for r, docRow := range doc.Rows {
		rows[r] = make([]Cell, len(docRow))
		for c, entries := range docRow {
			cell, err := parseCell(entries)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d key %d: %v", ErrInvalidLayout, r, c, err)
			}
			rows[r][c] = cell
		}
	}
	return New(doc.Name, rows)
}

// ToDocument converts a table back to its on-disk form. Printable codes are
// written as characters, everything else as integers.
func ToDocument(t *Table) Document {
	src := t.Rows()
	doc := Document{Name: t.Name(), Rows: make([][]map[string]any, len(src))}
	for r, row := range src {
		doc.Rows[r] = make([]map[string]any, len(row))
		for c, cell := range row {
			entries := map[string]any{}
			for idx, code := range cell {
				if code == Sentinel {
					continue
				}
				dir, _ := gesture.DirectionFromIndex(idx)
				entries[dir.String()] = formatCode(code)
			}
			doc.Rows[r][c] = entries
		}
	}
	return doc
}

// formatFor maps a file extension to a decoder name.
func formatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	default:
		return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
}

// parseCell converts direction-name entries into a cell.
func parseCell(entries map[string]any) (Cell, error) {
	var cell Cell
	for name, raw := range entries {
		dir, err := gesture.ParseDirection(name)
		if err != nil {
			return Cell{}, err
		}
		code, err := parseCode(raw)
		if err != nil {
			return Cell{}, fmt.Errorf("%s: %w", name, err)
		}
		cell[dir.Index()] = code
	}
	return cell, nil
}

// parseCode accepts a single-rune string or an integer in int32 range.
func parseCode(raw any) (int32, error) {
	switch v := raw.(type) {
	case nil:
		return Sentinel, nil
	case string:
		if utf8.RuneCountInString(v) != 1 {
			return 0, fmt.Errorf("want exactly one character, got %q", v)
		}
		r, _ := utf8.DecodeRuneInString(v)
		return r, nil
	case int:
		return intCode(int64(v))
	case int64:
		return intCode(v)
	case uint64:
		if v > math.MaxInt32 {
			return 0, fmt.Errorf("code %d out of range", v)
		}
		return int32(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("code %v is not an integer", v)
		}
		return intCode(int64(v))
	default:
		return 0, fmt.Errorf("unsupported value %v (%T)", raw, raw)
	}
}

// intCode range-checks an integer key code.
func intCode(v int64) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("code %d out of range", v)
	}
	return int32(v), nil
}

// formatCode renders a code as a string when it is a printable rune.
func formatCode(code int32) any {
	if code > 0 && unicode.IsPrint(code) {
		return string(rune(code))
	}
	return int64(code)
}
