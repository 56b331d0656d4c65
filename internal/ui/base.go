package ui

// Base provides size bookkeeping for view models.
// Embed it in a model to get SetSize/Width/Height.
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// ContentWidth returns the width left inside a bordered, padded panel.
func (b Base) ContentWidth() int {
	return max(b.width-PanelChrome, MinContentWidth)
}

// ListHeight returns available rows after subtracting overhead.
func (b Base) ListHeight(overhead int) int {
	return max(b.height-overhead, 1)
}
