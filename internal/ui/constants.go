// Package ui holds layout constants and shared pieces of the terminal UI.
package ui

const (
	// ScrollMargin is the number of rows kept visible around the cursor.
	ScrollMargin = 3

	// BorderHeight is the vertical space taken by a panel border.
	BorderHeight = 2

	// HeaderHeight is a panel title line plus its separator.
	HeaderHeight = 2

	// PanelOverhead is everything in a panel that is not list rows.
	PanelOverhead = BorderHeight + HeaderHeight

	// StatusHeight is the notice line under the panels.
	StatusHeight = 1
)
