// Package testutil provides recording fakes for control tests.
package testutil

// FakeSink records delivered codes, option requests and taps.
type FakeSink struct {
	Codes   []int32
	Options int
	Taps    [][2]int
}

// OnResolvedCode records a code.
func (f *FakeSink) OnResolvedCode(code int32) error {
	f.Codes = append(f.Codes, code)
	return nil
}

// OnLongPressOptions records an options request.
func (f *FakeSink) OnLongPressOptions() error {
	f.Options++
	return nil
}

// OnTap records a tap.
func (f *FakeSink) OnTap(row, col int) error {
	f.Taps = append(f.Taps, [2]int{row, col})
	return nil
}
