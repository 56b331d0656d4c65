// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across views.
const (
	// ScrollMargin is the number of items kept visible above/below the cursor.
	ScrollMargin = 3

	// BorderHeight is the vertical space consumed by a panel border.
	BorderHeight = 2

	// HeaderHeight is the title line plus the separator below it.
	HeaderHeight = 2

	// FooterHeight is the key-help line plus the separator above it.
	FooterHeight = 2

	// PanelOverhead is the vertical space a panel spends outside its list.
	PanelOverhead = BorderHeight + HeaderHeight + FooterHeight

	// PanelChrome is the horizontal space taken by border (2) and padding (2).
	PanelChrome = 4

	// MinContentWidth keeps text layout sane on very narrow terminals.
	MinContentWidth = 20
)
