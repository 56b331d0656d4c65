package ui

import "testing"

func TestBase(t *testing.T) {
	var b Base
	b.SetSize(100, 30)

	if b.Width() != 100 || b.Height() != 30 {
		t.Errorf("size = %dx%d, want 100x30", b.Width(), b.Height())
	}
	if got := b.ContentWidth(); got != 96 {
		t.Errorf("ContentWidth() = %d, want 96", got)
	}
	if got := b.ListHeight(PanelOverhead); got != 24 {
		t.Errorf("ListHeight() = %d, want 24", got)
	}
}

func TestBase_Small(t *testing.T) {
	var b Base
	b.SetSize(10, 3)

	if got := b.ContentWidth(); got != MinContentWidth {
		t.Errorf("ContentWidth() = %d, want %d", got, MinContentWidth)
	}
	if got := b.ListHeight(PanelOverhead); got != 1 {
		t.Errorf("ListHeight() = %d, want 1", got)
	}
}
