package keymap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlLayout = `
name: tiny
rows:
  - - {tap: a, n: b, w: "1"}
    - {tap: c, s: -5}
  - - {tap: " ", e: 10}
    - {}
`

const tomlLayout = `
name = "tiny"
rows = [
  [{tap = "a", n = "b", w = "1"}, {tap = "c", s = -5}],
  [{tap = " ", e = 10}, {}],
]
`

const jsonLayout = `{"name":"tiny","rows":[[{"tap":"a","n":"b","w":"1"},{"tap":"c","s":-5}],[{"tap":" ","e":10},{}]]}`

// TestParse_AllFormats verifies every supported format yields the same table.
func TestParse_AllFormats(t *testing.T) {
	for format, data := range map[string]string{"yaml": yamlLayout, "toml": tomlLayout, "json": jsonLayout} {
		t.Run(format, func(t *testing.T) {
			tbl, err := Parse([]byte(data), format, "fallback")
			require.NoError(t, err)
			assert.Equal(t, "tiny", tbl.Name())

			rows, cols := tbl.Dims()
			assert.Equal(t, 2, rows)
			assert.Equal(t, 2, cols)

			assertCode(t, tbl, 0, 0, 0, 'a')
			assertCode(t, tbl, 0, 0, 1, 'b')
			assertCode(t, tbl, 0, 0, 7, '1')
			assertCode(t, tbl, 0, 1, 5, KeyDelete)
			assertCode(t, tbl, 1, 0, 0, ' ')
			assertCode(t, tbl, 1, 0, 3, KeyEnter)

			_, ok, err := tbl.Lookup(1, 1, 1)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

// TestParse_Errors verifies malformed layouts are rejected.
func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unknown direction", data: `{"rows":[[{"up":"a"}]]}`},
		{name: "multi-character", data: `{"rows":[[{"n":"ab"}]]}`},
		{name: "empty string", data: `{"rows":[[{"n":""}]]}`},
		{name: "fractional code", data: `{"rows":[[{"n":1.5}]]}`},
		{name: "ragged rows", data: `{"rows":[[{},{}],[{}]]}`},
		{name: "no rows", data: `{"name":"x"}`},
		{name: "wrong type", data: `{"rows":[[{"n":true}]]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data), "json", "x")
			require.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

// TestParse_UnsupportedFormat verifies unknown formats are rejected.
func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte("x"), "ini", "x")
	require.ErrorIs(t, err, ErrInvalidLayout)
}

// TestLoad_NameFallsBackToFileName verifies unnamed documents take the file name.
func TestLoad_NameFallsBackToFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbers.yml")
	require.NoError(t, os.WriteFile(path, []byte("rows:\n  - - {tap: \"1\"}\n"), 0o600))

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "numbers", tbl.Name())
	assertCode(t, tbl, 0, 0, 0, '1')
}

// TestLoad_MissingFile verifies read errors surface.
func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestToDocument_RoundTrip verifies the default layout survives export and import.
func TestToDocument_RoundTrip(t *testing.T) {
	back, err := FromDocument(ToDocument(Default()))
	require.NoError(t, err)
	assert.Equal(t, Default().Name(), back.Name())
	assert.Equal(t, Default().Rows(), back.Rows())
}

// assertCode checks a single mapped entry.
func assertCode(t *testing.T, tbl *Table, row, col, dir int, want int32) {
	t.Helper()
	code, ok, err := tbl.Lookup(row, col, dir)
	require.NoError(t, err)
	assert.True(t, ok, "(%d,%d,%d) unmapped", row, col, dir)
	assert.Equal(t, want, code, "(%d,%d,%d)", row, col, dir)
}
