package engine

// DisplaySink draws frames for the controller.
// Errors returned by a sink are logged and never stop the simulation.
type DisplaySink interface {
	// Render draws the frame.
	Render(f Frame) error

	// Clear wipes the display and hides the cursor.
	Clear() error

	// ClearRows wipes the first n rows of the display.
	ClearRows(n int) error
}
