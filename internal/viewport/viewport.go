// Package viewport carries the client's layout width into rendering decisions.
package viewport

import "strconv"

// CompactBreakpoint is the width below which compact layouts are used.
const CompactBreakpoint = 768

// Viewport is the client's reported layout size. A zero width means unknown.
type Viewport struct {
	Width int `json:"width"`
}

// Parse reads a width value such as a query parameter. Invalid or negative
// input yields an unknown viewport.
func Parse(s string) Viewport {
	w, err := strconv.Atoi(s)
	if err != nil || w < 0 {
		return Viewport{}
	}
	return Viewport{Width: w}
}

// Compact reports whether a narrow layout should be used.
func (v Viewport) Compact() bool {
	return v.Width > 0 && v.Width < CompactBreakpoint
}
