// @lixen: #focus{render[surface]}
package render

// Surface is a full-screen text target redrawn once per tick
// Any error is fatal for the tick; there is no degraded fallback
type Surface interface {
	// Size queries current dimensions in cells
	Size() (width, height int, err error)

	// Clear homes the cursor and blanks the visible region
	Clear() error

	// DrawString writes s starting at column x, row y; s is pre-clipped
	DrawString(x, y int, s string) error

	// Show flushes the frame so nothing is left half-drawn
	Show() error
}
