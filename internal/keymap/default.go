package keymap

// DefaultName names the built-in layout.
const DefaultName = "phonepad"

// defaultRows is a phone-pad layout: letters on tap/N/E(/S), digits on W.
// Column order per cell: tap, n, ne, e, se, s, sw, w, nw.
var defaultRows = [][]Cell{
	{{'!', '?', 0, 0, 0, 0, 0, '1', 0}, {'a', 'b', 0, 'c', 0, 0, 0, '2', 0}, {'d', 'e', 0, 'f', 0, 0, 0, '3', 0}, {0, 0, 0, 0, 0, 0, 0, 0, 0}},
	{{'g', 'h', 0, 'i', 0, 0, 0, '4', 0}, {'j', 'k', 0, 'l', 0, 0, 0, '5', 0}, {'m', 'n', 0, 'o', 0, 0, 0, '6', 0}, {'.', ',', 0, 0, 0, 0, 0, 0, 0}},
	{{'p', 'q', 0, 'r', 0, 's', 0, '7', 0}, {'t', 'u', 0, 'v', 0, 0, 0, '8', 0}, {'w', 'x', 0, 'y', 0, 'z', 0, '9', 0}, {KeyDelete, 0, 0, 0, 0, 0, 0, 0, 0}},
	{{0, 0, 0, 0, 0, 0, 0, 0, 0}, {':', ';', 0, 0, 0, 0, 0, '0', 0}, {' ', 0, 0, 0, 0, 0, 0, 0, 0}, {KeyEnter, 0, 0, 0, 0, 0, 0, 0, 0}},
}

var defaultTable = mustNew(DefaultName, defaultRows)

// Default returns the built-in 4x4 layout. The table is shared and immutable.
func Default() *Table {
	return defaultTable
}

// mustNew panics on an invalid built-in layout.
func mustNew(name string, rows [][]Cell) *Table {
	t, err := New(name, rows)
	if err != nil {
		panic(err)
	}
	return t
}
